package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records every mutating operation: who did what to which entity,
// with before/after JSON snapshots. Rows are append-only.
type AuditLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ActorUserID uuid.UUID `gorm:"type:uuid;not null;index"`
	Action      string    `gorm:"not null;index"`
	Entity      string    `gorm:"not null"`
	EntityID    *string
	BeforeJSON  []byte    `gorm:"type:jsonb"`
	AfterJSON   []byte    `gorm:"type:jsonb"`
	CreatedAt   time.Time `gorm:"index"`
}
