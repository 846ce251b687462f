package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/raweer420/CRMBUTECO/internal/domain"
)

// Tab is an open running bill (mesa, balcão or delivery) accumulating items
// and payments. Status lifecycle is owned by domain.CanTransitionTabStatus.
type Tab struct {
	ID     uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code   string           `gorm:"uniqueIndex;not null"`
	Kind   domain.TabKind   `gorm:"type:varchar(10);not null"`
	Status domain.TabStatus `gorm:"type:varchar(10);not null;default:'OPEN';index"`
	// TableNumber only set for kind TABLE
	TableNumber  *int
	CustomerName *string
	Discount     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	// ServiceFeePercent is snapshotted from settings at open time
	ServiceFeePercent decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	OpenedByID        uuid.UUID       `gorm:"type:uuid;not null"`
	ClosedByID        *uuid.UUID      `gorm:"type:uuid"`
	OpenedAt          time.Time       `gorm:"not null"`
	ClosedAt          *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Items    []TabItem `gorm:"foreignKey:TabID"`
	Payments []Payment `gorm:"foreignKey:TabID"`
}

// TabItem snapshots product name and unit price at add time — later catalog
// price changes never touch posted items. A canceled item keeps its row for
// audit and is excluded from every total.
type TabItem struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TabID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID         *uuid.UUID      `gorm:"type:uuid;index"`
	NameSnapshot      string          `gorm:"not null"`
	UnitPriceSnapshot decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// Quantity is fractional — weight-based items sell by the kilo
	Quantity     decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	Note         *string
	AddedByID    uuid.UUID `gorm:"type:uuid;not null"`
	CanceledAt   *time.Time
	CanceledByID *uuid.UUID `gorm:"type:uuid"`
	CancelReason *string
	CreatedAt    time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

// Payment is one collected amount. Payments accumulate; there is no void
// operation — corrections happen via ledger, not by deleting payments.
type Payment struct {
	ID           uuid.UUID            `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TabID        uuid.UUID            `gorm:"type:uuid;not null;index"`
	Method       domain.PaymentMethod `gorm:"type:varchar(10);not null"`
	Amount       decimal.Decimal      `gorm:"type:decimal(12,2);not null"`
	ReceivedByID uuid.UUID            `gorm:"type:uuid;not null"`
	CreatedAt    time.Time
}
