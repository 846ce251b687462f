package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestReconcileCashClose(t *testing.T) {
	entries := []DayLedgerEntry{
		{CategoryType: AccountRevenue, Method: MethodPix, Amount: d("100")},
		{CategoryType: AccountExpense, Method: MethodPix, Amount: d("10")},
		{CategoryType: AccountRevenue, Method: MethodCash, Amount: d("55.50")},
	}
	counted := map[PaymentMethod]decimal.Decimal{
		MethodPix:  d("95"),
		MethodCash: d("55.50"),
	}

	result := ReconcileCashClose(entries, counted)

	assert.True(t, result.ExpectedByMethod[MethodPix].Equal(d("90")), "expected PIX = revenue − expense")
	assert.True(t, result.ExpectedByMethod[MethodCash].Equal(d("55.50")))
	assert.True(t, result.ExpectedByMethod[MethodFiado].IsZero(), "untouched methods default to zero")
	assert.True(t, result.ExpectedTotal.Equal(d("145.50")))
	assert.True(t, result.CountedTotal.Equal(d("150.50")))
	assert.True(t, result.Difference.Equal(d("5")), "difference = counted − expected")
}

func TestReconcileCashClose_EmptyDay(t *testing.T) {
	result := ReconcileCashClose(nil, nil)

	assert.Len(t, result.ExpectedByMethod, len(AllPaymentMethods))
	assert.Len(t, result.CountedByMethod, len(AllPaymentMethods))
	assert.True(t, result.Difference.IsZero())
}

func TestReconcileCashClose_NegativeDifference(t *testing.T) {
	entries := []DayLedgerEntry{
		{CategoryType: AccountRevenue, Method: MethodCash, Amount: d("200")},
	}
	counted := map[PaymentMethod]decimal.Decimal{MethodCash: d("180.25")}

	result := ReconcileCashClose(entries, counted)

	assert.True(t, result.Difference.Equal(d("-19.75")))
}

func TestDayRange(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	start, end := DayRange(time.Date(2026, 3, 14, 23, 57, 12, 0, loc))

	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, loc), end)
}
