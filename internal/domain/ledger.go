package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod enumerates the accepted payment methods.
type PaymentMethod string

const (
	MethodPix     PaymentMethod = "PIX"
	MethodCredit  PaymentMethod = "CREDIT"
	MethodDebit   PaymentMethod = "DEBIT"
	MethodCash    PaymentMethod = "CASH"
	MethodVoucher PaymentMethod = "VOUCHER"
	MethodFiado   PaymentMethod = "FIADO"
)

// AllPaymentMethods in presentation order. Cash-close maps carry one key per
// method even when the day had no movement on it.
var AllPaymentMethods = []PaymentMethod{
	MethodPix, MethodCredit, MethodDebit, MethodCash, MethodVoucher, MethodFiado,
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodPix, MethodCredit, MethodDebit, MethodCash, MethodVoucher, MethodFiado:
		return true
	}
	return false
}

// PaymentInput is one collected payment of a tab.
type PaymentInput struct {
	Method PaymentMethod
	Amount decimal.Decimal
}

// RevenueEntryMeta carries everything besides the payments that a generated
// ledger entry needs.
type RevenueEntryMeta struct {
	CategoryID        uuid.UUID
	TabID             uuid.UUID
	CreatedByID       uuid.UUID
	Date              time.Time
	DescriptionPrefix string
}

// RevenueLedgerEntry is one entry to be posted at settlement.
type RevenueLedgerEntry struct {
	CategoryID  uuid.UUID
	TabID       uuid.UUID
	CreatedByID uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Method      PaymentMethod
}

const defaultRevenuePrefix = "Receita de comanda"

// AggregatePaymentsByMethod groups payments by method, each group's sum
// independently rounded to 2 decimals. Groups come out in first-seen order.
func AggregatePaymentsByMethod(payments []PaymentInput) []PaymentInput {
	sums := make(map[PaymentMethod]decimal.Decimal, len(payments))
	var order []PaymentMethod

	for _, p := range payments {
		if _, ok := sums[p.Method]; !ok {
			order = append(order, p.Method)
		}
		sums[p.Method] = sums[p.Method].Add(p.Amount)
	}

	grouped := make([]PaymentInput, 0, len(order))
	for _, m := range order {
		grouped = append(grouped, PaymentInput{Method: m, Amount: round2(sums[m])})
	}
	return grouped
}

// BuildRevenueLedgerEntries converts a tab's payments into one categorized
// ledger entry per payment method. An empty payment list yields an empty
// result — the settlement gate never reaches here with zero payments, but the
// builder tolerates it.
func BuildRevenueLedgerEntries(payments []PaymentInput, meta RevenueEntryMeta) []RevenueLedgerEntry {
	prefix := meta.DescriptionPrefix
	if prefix == "" {
		prefix = defaultRevenuePrefix
	}

	grouped := AggregatePaymentsByMethod(payments)
	entries := make([]RevenueLedgerEntry, 0, len(grouped))
	for _, g := range grouped {
		entries = append(entries, RevenueLedgerEntry{
			CategoryID:  meta.CategoryID,
			TabID:       meta.TabID,
			CreatedByID: meta.CreatedByID,
			Date:        meta.Date,
			Description: fmt.Sprintf("%s (%s)", prefix, g.Method),
			Amount:      g.Amount,
			Method:      g.Method,
		})
	}
	return entries
}
