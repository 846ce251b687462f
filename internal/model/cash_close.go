package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/raweer420/CRMBUTECO/internal/domain"
)

// CashClose is the end-of-day reconciliation record. Immutable once created —
// there is no update or delete path.
type CashClose struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	// Date is the day start (midnight); one close per day+shift
	Date  time.Time `gorm:"not null;index"`
	Shift *string
	// Difference = counted − expected across all methods; informational only
	Difference  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Observation *string
	ClosedByID  uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time

	Amounts []CashCloseAmount `gorm:"foreignKey:CashCloseID"`
}

func (CashClose) TableName() string { return "cash_closes" }

// CashCloseAmount is the per-method pair of expected (ledger-derived) and
// counted (operator-entered) totals of one close.
type CashCloseAmount struct {
	ID          uuid.UUID            `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CashCloseID uuid.UUID            `gorm:"type:uuid;not null;index"`
	Method      domain.PaymentMethod `gorm:"type:varchar(10);not null"`
	Expected    decimal.Decimal      `gorm:"type:decimal(12,2);not null"`
	Counted     decimal.Decimal      `gorm:"type:decimal(12,2);not null"`
}

func (CashCloseAmount) TableName() string { return "cash_close_amounts" }
