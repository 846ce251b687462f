package repository

import (
	"context"

	"github.com/raweer420/CRMBUTECO/internal/dto"
	"github.com/raweer420/CRMBUTECO/internal/model"

	"gorm.io/gorm"
)

// AuditRepository persists audit records. Writes arrive through the async
// worker, reads through the admin listing endpoint.
type AuditRepository interface {
	Create(ctx context.Context, entry *model.AuditLog) error
	List(ctx context.Context, filter dto.AuditFilter) ([]model.AuditLog, int64, error)
}

type auditRepo struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) AuditRepository { return &auditRepo{db: db} }

func (r *auditRepo) Create(ctx context.Context, entry *model.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditRepo) List(ctx context.Context, filter dto.AuditFilter) ([]model.AuditLog, int64, error) {
	var logs []model.AuditLog
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.AuditLog{})

	if filter.Entity != "" {
		q = q.Where("entity = ?", filter.Entity)
	}
	if filter.Action != "" {
		q = q.Where("action = ?", filter.Action)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&logs).Error

	return logs, total, err
}
