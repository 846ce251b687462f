package dto

import "github.com/shopspring/decimal"

type UpdateSettingsRequest struct {
	AllowAddItemsWhenBilling bool            `json:"allow_add_items_when_billing"`
	DefaultServiceFeePercent decimal.Decimal `json:"default_service_fee_percent" validate:"min=0,max=100"`
	EnableStockModule        bool            `json:"enable_stock_module"`
	EnableCustomerFields     bool            `json:"enable_customer_fields"`
}

type SettingsResponse struct {
	AllowAddItemsWhenBilling bool            `json:"allow_add_items_when_billing"`
	DefaultServiceFeePercent decimal.Decimal `json:"default_service_fee_percent"`
	EnableStockModule        bool            `json:"enable_stock_module"`
	EnableCustomerFields     bool            `json:"enable_customer_fields"`
}
