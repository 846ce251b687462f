package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Settings is a singleton row (id = 1) holding the operational flags. Reads
// upsert the row with defaults so a fresh database behaves sensibly.
type Settings struct {
	ID                       int             `gorm:"primaryKey"`
	AllowAddItemsWhenBilling bool            `gorm:"not null;default:true"`
	DefaultServiceFeePercent decimal.Decimal `gorm:"type:decimal(5,2);not null;default:10"`
	EnableStockModule        bool            `gorm:"not null;default:true"`
	EnableCustomerFields     bool            `gorm:"not null;default:false"`
	UpdatedByID              *uuid.UUID      `gorm:"type:uuid"`
	UpdatedAt                time.Time
}

func (Settings) TableName() string { return "settings" }

// DefaultSettings is what the singleton upsert creates on first read.
func DefaultSettings() *Settings {
	return &Settings{
		ID:                       1,
		AllowAddItemsWhenBilling: true,
		DefaultServiceFeePercent: decimal.NewFromInt(10),
		EnableStockModule:        true,
		EnableCustomerFields:     false,
	}
}
