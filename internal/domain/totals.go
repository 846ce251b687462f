package domain

import "github.com/shopspring/decimal"

// TabTotalItem is the projection of a TabItem that totals care about.
type TabTotalItem struct {
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Canceled  bool
}

// TabTotals is the computed bill of a tab.
type TabTotals struct {
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal
	ServiceFee decimal.Decimal
	Total      decimal.Decimal
}

// round2 rounds half away from zero at 2 decimals — the single rounding rule
// for every stored or displayed amount. decimal.Round implements exactly that.
func round2(v decimal.Decimal) decimal.Decimal { return v.Round(2) }

// CalculateTabTotals computes subtotal/discount/serviceFee/total for a tab.
//
// Canceled items are excluded from the subtotal. The discount is clamped to
// [0, subtotal] — exceeding the subtotal is not an error. Rounding is applied
// independently at each of the four outputs, so total may differ from
// subtotal − discount + serviceFee by one cent in edge cases; that matches the
// stored figures and is intentional.
func CalculateTabTotals(items []TabTotalItem, discount, serviceFeePercent decimal.Decimal) TabTotals {
	subtotal := decimal.Zero
	for _, item := range items {
		if item.Canceled {
			continue
		}
		subtotal = subtotal.Add(item.UnitPrice.Mul(item.Quantity))
	}
	subtotal = round2(subtotal)

	bounded := discount
	if bounded.IsNegative() {
		bounded = decimal.Zero
	}
	if bounded.GreaterThan(subtotal) {
		bounded = subtotal
	}

	base := subtotal.Sub(bounded)
	serviceFee := round2(base.Mul(serviceFeePercent).Div(decimal.NewFromInt(100)))
	total := round2(base.Add(serviceFee))

	return TabTotals{
		Subtotal:   subtotal,
		Discount:   round2(bounded),
		ServiceFee: serviceFee,
		Total:      total,
	}
}
