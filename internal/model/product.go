package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Price is copied into TabItem snapshots at add
// time, so edits here never rewrite history.
type Product struct {
	ID       uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name     string           `gorm:"index;not null"`
	Category string           `gorm:"not null"`
	Price    decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	Cost     *decimal.Decimal `gorm:"type:decimal(12,2)"`
	// ControlsStock enables automatic OUT movements at settlement
	ControlsStock bool `gorm:"not null;default:false"`
	MinStock      *int
	Active        bool `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
