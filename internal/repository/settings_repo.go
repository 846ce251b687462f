package repository

import (
	"context"
	"errors"

	"github.com/raweer420/CRMBUTECO/internal/model"

	"gorm.io/gorm"
)

// SettingsRepository manages the singleton settings row (id = 1).
type SettingsRepository interface {
	Get(ctx context.Context) (*model.Settings, error)
	Update(ctx context.Context, s *model.Settings) error
}

type settingsRepo struct{ db *gorm.DB }

func NewSettingsRepository(db *gorm.DB) SettingsRepository { return &settingsRepo{db: db} }

func (r *settingsRepo) Get(ctx context.Context) (*model.Settings, error) {
	var s model.Settings
	err := r.db.WithContext(ctx).First(&s, "id = 1").Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// First access seeds the defaults so every caller sees a row.
		def := model.DefaultSettings()
		if err := r.db.WithContext(ctx).Create(def).Error; err != nil {
			return nil, err
		}
		return def, nil
	}
	return &s, err
}

func (r *settingsRepo) Update(ctx context.Context, s *model.Settings) error {
	s.ID = 1
	return r.db.WithContext(ctx).Save(s).Error
}
