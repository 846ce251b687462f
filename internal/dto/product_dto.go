package dto

import "github.com/shopspring/decimal"

type ProductRequest struct {
	Name          string           `json:"name"           validate:"required,min=2,max=120"`
	Category      string           `json:"category"       validate:"required,min=2,max=80"`
	Price         decimal.Decimal  `json:"price"          validate:"required,gt=0"`
	Cost          *decimal.Decimal `json:"cost"           validate:"omitempty,min=0"`
	ControlsStock bool             `json:"controls_stock"`
	MinStock      *int             `json:"min_stock"      validate:"omitempty,min=0"`
}

type ProductFilter struct {
	Category        string `form:"category"`
	Search          string `form:"search"`
	IncludeInactive bool   `form:"include_inactive"`
	Page            int    `form:"page,default=1"   validate:"min=1"`
	Limit           int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ProductResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	Price         decimal.Decimal  `json:"price"`
	Cost          *decimal.Decimal `json:"cost,omitempty"`
	ControlsStock bool             `json:"controls_stock"`
	MinStock      *int             `json:"min_stock,omitempty"`
	Active        bool             `json:"active"`
}
