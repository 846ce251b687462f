package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/raweer420/CRMBUTECO/internal/domain"
)

// AccountCategory classifies ledger entries as revenue or expense, with an
// optional parent for grouping in reports.
type AccountCategory struct {
	ID        uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string             `gorm:"uniqueIndex:idx_category_name_type;not null"`
	Type      domain.AccountType `gorm:"type:varchar(10);uniqueIndex:idx_category_name_type;not null"`
	ParentID  *uuid.UUID         `gorm:"type:uuid"`
	CreatedAt time.Time

	Parent *AccountCategory `gorm:"foreignKey:ParentID"`
}

func (AccountCategory) TableName() string { return "account_categories" }

// LedgerEntry is a posted accounting record. Amounts are rounded to 2 decimals
// before storage. Revenue entries generated at settlement carry the payment
// method so the cash close can attribute them; manual entries may omit it.
type LedgerEntry struct {
	ID            uuid.UUID             `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date          time.Time             `gorm:"not null;index"`
	CategoryID    uuid.UUID             `gorm:"type:uuid;not null;index"`
	Description   string                `gorm:"not null"`
	Amount        decimal.Decimal       `gorm:"type:decimal(12,2);not null"`
	PaymentMethod *domain.PaymentMethod `gorm:"type:varchar(10);index"`
	RelatedTabID  *uuid.UUID            `gorm:"type:uuid;index"`
	CreatedByID   uuid.UUID             `gorm:"type:uuid;not null"`
	CreatedAt     time.Time

	Category *AccountCategory `gorm:"foreignKey:CategoryID"`
}
