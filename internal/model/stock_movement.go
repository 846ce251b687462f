package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/raweer420/CRMBUTECO/internal/domain"
)

// StockMovement records every stock change. Settlement writes aggregated OUT
// movements (one per product per tab); manual IN/OUT/ADJUST come from the
// stock endpoints. Movements are never updated or deleted.
type StockMovement struct {
	ID           uuid.UUID                `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID    uuid.UUID                `gorm:"type:uuid;not null;index"`
	Type         domain.StockMovementType `gorm:"type:varchar(10);not null"`
	Quantity     decimal.Decimal          `gorm:"type:decimal(10,3);not null"`
	UnitCost     *decimal.Decimal         `gorm:"type:decimal(12,2)"`
	Note         string                   `gorm:"not null"`
	RelatedTabID *uuid.UUID               `gorm:"type:uuid;index"`
	CreatedByID  uuid.UUID                `gorm:"type:uuid;not null"`
	CreatedAt    time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}
