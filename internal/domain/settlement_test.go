package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPaymentSufficiency(t *testing.T) {
	totals := CalculateTabTotals([]TabTotalItem{item("2", "25")}, d("0"), d("10"))
	require.True(t, totals.Total.Equal(d("55")))

	t.Run("underpaid by more than a cent fails", func(t *testing.T) {
		err := CheckPaymentSufficiency(totals, []PaymentInput{
			{Method: MethodPix, Amount: d("50")},
		})
		var insufficient *InsufficientPaymentError
		require.ErrorAs(t, err, &insufficient)
		assert.True(t, insufficient.Remaining.Equal(d("5")))
	})

	t.Run("exact payment passes", func(t *testing.T) {
		assert.NoError(t, CheckPaymentSufficiency(totals, []PaymentInput{
			{Method: MethodCash, Amount: d("55")},
		}))
	})

	t.Run("one cent short still passes", func(t *testing.T) {
		assert.NoError(t, CheckPaymentSufficiency(totals, []PaymentInput{
			{Method: MethodCash, Amount: d("54.99")},
		}))
	})

	t.Run("two cents short fails", func(t *testing.T) {
		err := CheckPaymentSufficiency(totals, []PaymentInput{
			{Method: MethodCash, Amount: d("54.98")},
		})
		assert.Error(t, err)
	})

	t.Run("split methods accumulate", func(t *testing.T) {
		assert.NoError(t, CheckPaymentSufficiency(totals, []PaymentInput{
			{Method: MethodPix, Amount: d("30")},
			{Method: MethodCash, Amount: d("25")},
		}))
	})

	t.Run("overpayment passes", func(t *testing.T) {
		assert.NoError(t, CheckPaymentSufficiency(totals, []PaymentInput{
			{Method: MethodCash, Amount: d("60")},
		}))
	})
}

func TestRemainingAmount_NoPayments(t *testing.T) {
	totals := CalculateTabTotals([]TabTotalItem{item("1", "12.30")}, d("0"), d("0"))
	remaining := RemainingAmount(totals, nil)
	assert.True(t, remaining.Equal(d("12.30")))
}

func TestInsufficientPaymentError_Message(t *testing.T) {
	err := &InsufficientPaymentError{Remaining: d("7.5")}
	assert.Equal(t, "Pagamento insuficiente. Falta 7.50 para encerrar a comanda", err.Error())

	var target *InsufficientPaymentError
	assert.True(t, errors.As(err, &target))
}
