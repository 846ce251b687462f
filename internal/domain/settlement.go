package domain

import "github.com/shopspring/decimal"

// paymentTolerance absorbs one cent of rounding noise between the computed
// total and the accumulated payments. Strictly currency-tolerant, not exact.
var paymentTolerance = decimal.NewFromFloat(0.01)

// RemainingAmount is round2(total − totalPaid). Negative when overpaid.
func RemainingAmount(totals TabTotals, payments []PaymentInput) decimal.Decimal {
	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p.Amount)
	}
	return round2(totals.Total.Sub(paid))
}

// CheckPaymentSufficiency gates the OPEN/BILLING → PAID transition: it fails
// with InsufficientPaymentError (carrying the remaining amount) when the
// accumulated payments leave more than one cent owed.
func CheckPaymentSufficiency(totals TabTotals, payments []PaymentInput) error {
	remaining := RemainingAmount(totals, payments)
	if remaining.GreaterThan(paymentTolerance) {
		return &InsufficientPaymentError{Remaining: remaining}
	}
	return nil
}
