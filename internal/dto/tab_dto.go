package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateTabRequest struct {
	Kind         string  `json:"kind"          validate:"required,oneof=TABLE BAR DELIVERY"`
	TableNumber  *int    `json:"table_number"  validate:"omitempty,min=1"`
	CustomerName *string `json:"customer_name" validate:"omitempty,max=120"`
}

type AddItemRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  decimal.Decimal `json:"quantity"   validate:"required,gt=0"`
	Note      *string         `json:"note"       validate:"omitempty,max=240"`
}

type CancelItemRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=250"`
}

type DiscountRequest struct {
	Discount decimal.Decimal `json:"discount" validate:"min=0"`
}

type PaymentRequest struct {
	Method string          `json:"method" validate:"required,oneof=PIX CREDIT DEBIT CASH VOUCHER FIADO"`
	Amount decimal.Decimal `json:"amount" validate:"required,gt=0"`
}

type UpdateTabStatusRequest struct {
	NextStatus string `json:"next_status" validate:"required,oneof=OPEN BILLING PAID CANCELED"`
}

// TabFilter is bound from the query string of GET /v1/tabs.
type TabFilter struct {
	Status string `form:"status"` // OPEN | BILLING | PAID | CANCELED | all
	Kind   string `form:"kind"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TabItemResponse struct {
	ID           string          `json:"id"`
	ProductID    *string         `json:"product_id"`
	Name         string          `json:"name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Quantity     decimal.Decimal `json:"quantity"`
	Note         *string         `json:"note,omitempty"`
	Canceled     bool            `json:"canceled"`
	CancelReason *string         `json:"cancel_reason,omitempty"`
}

type TabPaymentResponse struct {
	ID     string          `json:"id"`
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

type TabTotalsResponse struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Discount   decimal.Decimal `json:"discount"`
	ServiceFee decimal.Decimal `json:"service_fee"`
	Total      decimal.Decimal `json:"total"`
	Paid       decimal.Decimal `json:"paid"`
	Remaining  decimal.Decimal `json:"remaining"`
}

type TabResponse struct {
	ID           string               `json:"id"`
	Code         string               `json:"code"`
	Kind         string               `json:"kind"`
	Status       string               `json:"status"`
	TableNumber  *int                 `json:"table_number,omitempty"`
	CustomerName *string              `json:"customer_name,omitempty"`
	Items        []TabItemResponse    `json:"items"`
	Payments     []TabPaymentResponse `json:"payments"`
	Totals       TabTotalsResponse    `json:"totals"`
	OpenedAt     string               `json:"opened_at"`
	ClosedAt     *string              `json:"closed_at,omitempty"`
}

type TabListItem struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Kind        string          `json:"kind"`
	Status      string          `json:"status"`
	TableNumber *int            `json:"table_number,omitempty"`
	Total       decimal.Decimal `json:"total"`
	OpenedAt    string          `json:"opened_at"`
}

type TabListResponse struct {
	Data  []TabListItem `json:"data"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}
