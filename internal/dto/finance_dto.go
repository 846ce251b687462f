package dto

import "github.com/shopspring/decimal"

// ─── Account categories ──────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name     string  `json:"name"      validate:"required,min=2,max=120"`
	Type     string  `json:"type"      validate:"required,oneof=REVENUE EXPENSE"`
	ParentID *string `json:"parent_id" validate:"omitempty,uuid"`
}

type CategoryResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	ParentID *string `json:"parent_id,omitempty"`
}

// ─── Ledger entries ──────────────────────────────────────────────────────────

type CreateLedgerEntryRequest struct {
	Date        string          `json:"date"           validate:"required,datetime=2006-01-02"`
	CategoryID  string          `json:"category_id"    validate:"required,uuid"`
	Description string          `json:"description"    validate:"required,min=3,max=240"`
	Amount      decimal.Decimal `json:"amount"         validate:"required,gt=0"`
	// Optional — manual entries without a method are invisible to cash close
	PaymentMethod *string `json:"payment_method" validate:"omitempty,oneof=PIX CREDIT DEBIT CASH VOUCHER FIADO"`
}

type LedgerEntryResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	CategoryID    string          `json:"category_id"`
	CategoryName  string          `json:"category_name,omitempty"`
	CategoryType  string          `json:"category_type,omitempty"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod *string         `json:"payment_method,omitempty"`
	RelatedTabID  *string         `json:"related_tab_id,omitempty"`
}

// LedgerFilter is bound from the query string of GET /v1/finance/entries.
type LedgerFilter struct {
	// Month in YYYY-MM; empty = current month
	Month string `form:"month" validate:"omitempty,datetime=2006-01"`
}

// ─── Cash close ──────────────────────────────────────────────────────────────

type CreateCashCloseRequest struct {
	Date        string  `json:"date"        validate:"required,datetime=2006-01-02"`
	Shift       *string `json:"shift"       validate:"omitempty,max=80"`
	Observation *string `json:"observation" validate:"omitempty,max=240"`
	// Counted amounts per payment method; missing methods default to zero
	Counted map[string]decimal.Decimal `json:"counted" validate:"required"`
}

type CashCloseResponse struct {
	ID            string                     `json:"id"`
	Date          string                     `json:"date"`
	Shift         *string                    `json:"shift,omitempty"`
	Expected      map[string]decimal.Decimal `json:"expected"`
	Counted       map[string]decimal.Decimal `json:"counted"`
	ExpectedTotal decimal.Decimal            `json:"expected_total"`
	CountedTotal  decimal.Decimal            `json:"counted_total"`
	Difference    decimal.Decimal            `json:"difference"`
	Observation   *string                    `json:"observation,omitempty"`
	CreatedAt     string                     `json:"created_at"`
}
