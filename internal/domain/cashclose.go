package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies an account category.
type AccountType string

const (
	AccountRevenue AccountType = "REVENUE"
	AccountExpense AccountType = "EXPENSE"
)

func (t AccountType) Valid() bool {
	return t == AccountRevenue || t == AccountExpense
}

// DayLedgerEntry is the projection of a posted LedgerEntry that reconciliation
// consumes: only entries dated within the target day AND carrying a payment
// method are fed in.
type DayLedgerEntry struct {
	CategoryType AccountType
	Method       PaymentMethod
	Amount       decimal.Decimal
}

// CashCloseResult holds the full reconciliation of one day.
type CashCloseResult struct {
	ExpectedByMethod map[PaymentMethod]decimal.Decimal
	CountedByMethod  map[PaymentMethod]decimal.Decimal
	ExpectedTotal    decimal.Decimal
	CountedTotal     decimal.Decimal
	// Difference = counted − expected, rounded to 2 decimals. A nonzero value
	// is informational, never an error.
	Difference decimal.Decimal
}

// ReconcileCashClose computes expected totals per payment method from the
// day's ledger entries (REVENUE adds, EXPENSE subtracts) and compares against
// the operator's physical count. Methods missing from the counted map default
// to zero; both output maps always carry every payment method.
func ReconcileCashClose(entries []DayLedgerEntry, counted map[PaymentMethod]decimal.Decimal) CashCloseResult {
	expected := make(map[PaymentMethod]decimal.Decimal, len(AllPaymentMethods))
	normalized := make(map[PaymentMethod]decimal.Decimal, len(AllPaymentMethods))
	for _, m := range AllPaymentMethods {
		expected[m] = decimal.Zero
		normalized[m] = counted[m]
	}

	for _, e := range entries {
		if !e.Method.Valid() {
			continue
		}
		amount := e.Amount
		if e.CategoryType != AccountRevenue {
			amount = amount.Neg()
		}
		expected[e.Method] = expected[e.Method].Add(amount)
	}

	expectedTotal := decimal.Zero
	countedTotal := decimal.Zero
	for _, m := range AllPaymentMethods {
		expectedTotal = expectedTotal.Add(expected[m])
		countedTotal = countedTotal.Add(normalized[m])
	}

	return CashCloseResult{
		ExpectedByMethod: expected,
		CountedByMethod:  normalized,
		ExpectedTotal:    expectedTotal,
		CountedTotal:     countedTotal,
		Difference:       round2(countedTotal.Sub(expectedTotal)),
	}
}

// DayRange returns [midnight, midnight+24h) for the given instant, in its
// location. Reconciliation and cash-close records key on the range start.
func DayRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
