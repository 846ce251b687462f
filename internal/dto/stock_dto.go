package dto

import "github.com/shopspring/decimal"

type CreateStockMovementRequest struct {
	ProductID string           `json:"product_id" validate:"required,uuid"`
	Type      string           `json:"type"       validate:"required,oneof=IN OUT ADJUST"`
	Quantity  decimal.Decimal  `json:"quantity"   validate:"required,gt=0"`
	UnitCost  *decimal.Decimal `json:"unit_cost"  validate:"omitempty,min=0"`
	Note      string           `json:"note"       validate:"required,min=3,max=240"`
}

type StockMovementResponse struct {
	ID           string           `json:"id"`
	ProductID    string           `json:"product_id"`
	ProductName  string           `json:"product_name,omitempty"`
	Type         string           `json:"type"`
	Quantity     decimal.Decimal  `json:"quantity"`
	UnitCost     *decimal.Decimal `json:"unit_cost,omitempty"`
	Note         string           `json:"note"`
	RelatedTabID *string          `json:"related_tab_id,omitempty"`
	CreatedAt    string           `json:"created_at"`
}

// StockMovementFilter is bound from the query string of GET /v1/stock/movements.
type StockMovementFilter struct {
	ProductID string `form:"product_id" validate:"omitempty,uuid"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}
