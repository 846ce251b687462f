package repository

import (
	"context"
	"time"

	"github.com/raweer420/CRMBUTECO/internal/domain"
	"github.com/raweer420/CRMBUTECO/internal/dto"
	"github.com/raweer420/CRMBUTECO/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TabRepository defines the data access contract for tabs.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via fakes.
type TabRepository interface {
	Create(ctx context.Context, t *model.Tab) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Tab, error)
	FindByCode(ctx context.Context, code string) (*model.Tab, error)
	List(ctx context.Context, filter dto.TabFilter) ([]model.Tab, int64, error)

	// ExistsByCode is the cheap uniqueness probe for the code generator.
	ExistsByCode(ctx context.Context, code string) (bool, error)

	CreateItem(ctx context.Context, item *model.TabItem) error
	FindItemByID(ctx context.Context, itemID uuid.UUID) (*model.TabItem, error)
	CancelItem(ctx context.Context, itemID, canceledBy uuid.UUID, reason string, at time.Time) error

	UpdateDiscount(ctx context.Context, id uuid.UUID, discount decimal.Decimal) error

	// ApplyTransition writes a non-settling status change with its close
	// metadata (set for CANCELED, cleared otherwise).
	ApplyTransition(ctx context.Context, id uuid.UUID, status domain.TabStatus, closedAt *time.Time, closedBy *uuid.UUID) error

	// Used inside the payment transaction — callers must pass the tx instance.
	UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status domain.TabStatus) error
	CreatePaymentTx(tx *gorm.DB, p *model.Payment) error

	// Used inside the settlement transaction — callers must pass the tx instance.
	FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Tab, error)

	// SettleTx flips the tab to PAID only when its current status still allows
	// settlement. Returns the number of rows affected: zero means another
	// request settled (or canceled) the tab first.
	SettleTx(tx *gorm.DB, id uuid.UUID, closedBy uuid.UUID, closedAt time.Time) (int64, error)

	// ReopenTx reverts a PAID tab back to BILLING, clearing close metadata.
	ReopenTx(tx *gorm.DB, id uuid.UUID) (int64, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type tabRepo struct{ db *gorm.DB }

func NewTabRepository(db *gorm.DB) TabRepository { return &tabRepo{db: db} }

func (r *tabRepo) DB() *gorm.DB { return r.db }

func (r *tabRepo) Create(ctx context.Context, t *model.Tab) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tabRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Tab, error) {
	var t model.Tab
	err := r.db.WithContext(ctx).
		Preload("Items.Product").
		Preload("Payments").
		First(&t, "id = ?", id).Error
	return &t, err
}

func (r *tabRepo) FindByCode(ctx context.Context, code string) (*model.Tab, error) {
	var t model.Tab
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&t).Error
	return &t, err
}

func (r *tabRepo) List(ctx context.Context, filter dto.TabFilter) ([]model.Tab, int64, error) {
	var tabs []model.Tab
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Tab{})

	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Kind != "" {
		q = q.Where("kind = ?", filter.Kind)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Items").Preload("Payments").
		Order("opened_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&tabs).Error

	return tabs, total, err
}

func (r *tabRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Tab{}).
		Where("code = ?", code).
		Count(&n).Error
	return n > 0, err
}

func (r *tabRepo) CreateItem(ctx context.Context, item *model.TabItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *tabRepo) FindItemByID(ctx context.Context, itemID uuid.UUID) (*model.TabItem, error) {
	var item model.TabItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", itemID).Error
	return &item, err
}

func (r *tabRepo) CancelItem(ctx context.Context, itemID, canceledBy uuid.UUID, reason string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.TabItem{}).
		Where("id = ? AND canceled_at IS NULL", itemID).
		Updates(map[string]interface{}{
			"canceled_at":    at,
			"canceled_by_id": canceledBy,
			"cancel_reason":  reason,
		}).Error
}

func (r *tabRepo) UpdateDiscount(ctx context.Context, id uuid.UUID, discount decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.Tab{}).
		Where("id = ?", id).
		Update("discount", discount).Error
}

func (r *tabRepo) ApplyTransition(ctx context.Context, id uuid.UUID, status domain.TabStatus, closedAt *time.Time, closedBy *uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Tab{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       status,
			"closed_at":    closedAt,
			"closed_by_id": closedBy,
		}).Error
}

func (r *tabRepo) UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status domain.TabStatus) error {
	return tx.Model(&model.Tab{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *tabRepo) CreatePaymentTx(tx *gorm.DB, p *model.Payment) error {
	return tx.Create(p).Error
}

func (r *tabRepo) FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Tab, error) {
	var t model.Tab
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Items.Product").
		Preload("Payments").
		First(&t, "id = ?", id).Error
	return &t, err
}

func (r *tabRepo) SettleTx(tx *gorm.DB, id uuid.UUID, closedBy uuid.UUID, closedAt time.Time) (int64, error) {
	res := tx.Model(&model.Tab{}).
		Where("id = ? AND status IN ?", id, []domain.TabStatus{domain.StatusOpen, domain.StatusBilling}).
		Updates(map[string]interface{}{
			"status":       domain.StatusPaid,
			"closed_by_id": closedBy,
			"closed_at":    closedAt,
		})
	return res.RowsAffected, res.Error
}

func (r *tabRepo) ReopenTx(tx *gorm.DB, id uuid.UUID) (int64, error) {
	res := tx.Model(&model.Tab{}).
		Where("id = ? AND status = ?", id, domain.StatusPaid).
		Updates(map[string]interface{}{
			"status":       domain.StatusBilling,
			"closed_by_id": nil,
			"closed_at":    nil,
		})
	return res.RowsAffected, res.Error
}
