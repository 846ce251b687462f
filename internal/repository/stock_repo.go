package repository

import (
	"context"

	"github.com/raweer420/CRMBUTECO/internal/dto"
	"github.com/raweer420/CRMBUTECO/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StockRepository interface {
	Create(ctx context.Context, m *model.StockMovement) error
	// CreateBatchTx inserts settlement deductions inside the caller's tx.
	CreateBatchTx(tx *gorm.DB, movements []model.StockMovement) error
	// DeleteByTabTx removes a tab's automatic deductions when it is reopened.
	DeleteByTabTx(tx *gorm.DB, tabID uuid.UUID) error
	List(ctx context.Context, filter dto.StockMovementFilter) ([]model.StockMovement, int64, error)
}

type stockRepo struct{ db *gorm.DB }

func NewStockRepository(db *gorm.DB) StockRepository { return &stockRepo{db: db} }

func (r *stockRepo) Create(ctx context.Context, m *model.StockMovement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *stockRepo) CreateBatchTx(tx *gorm.DB, movements []model.StockMovement) error {
	if len(movements) == 0 {
		return nil
	}
	return tx.Create(&movements).Error
}

func (r *stockRepo) DeleteByTabTx(tx *gorm.DB, tabID uuid.UUID) error {
	return tx.Where("related_tab_id = ?", tabID).Delete(&model.StockMovement{}).Error
}

func (r *stockRepo) List(ctx context.Context, filter dto.StockMovementFilter) ([]model.StockMovement, int64, error) {
	var movements []model.StockMovement
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.StockMovement{})

	if filter.ProductID != "" {
		q = q.Where("product_id = ?", filter.ProductID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Product").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&movements).Error

	return movements, total, err
}
