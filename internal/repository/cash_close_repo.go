package repository

import (
	"context"
	"time"

	"github.com/raweer420/CRMBUTECO/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CashCloseRepository interface {
	// Create persists the close and its per-method amounts atomically.
	Create(ctx context.Context, c *model.CashClose) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CashClose, error)
	FindByDateShift(ctx context.Context, date time.Time, shift *string) (*model.CashClose, error)
	List(ctx context.Context, from, to time.Time) ([]model.CashClose, error)
}

type cashCloseRepo struct{ db *gorm.DB }

func NewCashCloseRepository(db *gorm.DB) CashCloseRepository { return &cashCloseRepo{db: db} }

func (r *cashCloseRepo) Create(ctx context.Context, c *model.CashClose) error {
	// Amounts ride along via the association; gorm inserts both in one tx.
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cashCloseRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CashClose, error) {
	var c model.CashClose
	err := r.db.WithContext(ctx).Preload("Amounts").First(&c, "id = ?", id).Error
	return &c, err
}

func (r *cashCloseRepo) FindByDateShift(ctx context.Context, date time.Time, shift *string) (*model.CashClose, error) {
	var c model.CashClose
	q := r.db.WithContext(ctx).Preload("Amounts").Where("date = ?", date)
	if shift == nil {
		q = q.Where("shift IS NULL")
	} else {
		q = q.Where("shift = ?", *shift)
	}
	err := q.First(&c).Error
	return &c, err
}

func (r *cashCloseRepo) List(ctx context.Context, from, to time.Time) ([]model.CashClose, error) {
	var closes []model.CashClose
	err := r.db.WithContext(ctx).
		Preload("Amounts").
		Where("date >= ? AND date < ?", from, to).
		Order("date DESC").
		Find(&closes).Error
	return closes, err
}
