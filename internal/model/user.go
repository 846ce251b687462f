package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/raweer420/CRMBUTECO/internal/domain"
)

// Roles. RBAC resolves these into capability booleans at the HTTP boundary
// (middleware.ResolveCapabilities) — services never see a role.
const (
	RoleAdmin   = domain.RoleAdmin
	RoleManager = domain.RoleManager
	RoleCashier = domain.RoleCashier
	RoleWaiter  = domain.RoleWaiter
	RoleStock   = domain.RoleStock
)

// User is a system operator with role-based access.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidRole reports whether r is one of the five known roles.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleCashier, RoleWaiter, RoleStock:
		return true
	}
	return false
}
