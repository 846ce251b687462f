package repository

import (
	"context"
	"errors"
	"time"

	"github.com/raweer420/CRMBUTECO/internal/domain"
	"github.com/raweer420/CRMBUTECO/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FinanceRepository covers account categories and the revenue/expense ledger.
// Ledger rows are append-only: corrections are new entries, never updates.
type FinanceRepository interface {
	CreateCategory(ctx context.Context, c *model.AccountCategory) error
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*model.AccountCategory, error)
	FindCategoryByNameType(ctx context.Context, name string, typ domain.AccountType) (*model.AccountCategory, error)
	ListCategories(ctx context.Context) ([]model.AccountCategory, error)

	// FindOrCreateCategoryTx resolves the settlement revenue category inside
	// the caller's tx, creating it on first use.
	FindOrCreateCategoryTx(tx *gorm.DB, name string, typ domain.AccountType) (*model.AccountCategory, error)

	CreateEntry(ctx context.Context, e *model.LedgerEntry) error
	// CreateEntriesTx inserts settlement-generated rows inside the caller's tx.
	CreateEntriesTx(tx *gorm.DB, entries []model.LedgerEntry) error
	// DeleteEntriesByTabTx removes a tab's revenue rows when it is reopened.
	DeleteEntriesByTabTx(tx *gorm.DB, tabID uuid.UUID) error
	ListEntries(ctx context.Context, from, to time.Time) ([]model.LedgerEntry, error)

	// ListDayEntries returns category type, method and amount for every entry
	// of the day that carries a payment method. Feeds cash-close expectation.
	ListDayEntries(ctx context.Context, from, to time.Time) ([]domain.DayLedgerEntry, error)

	DB() *gorm.DB
}

type financeRepo struct{ db *gorm.DB }

func NewFinanceRepository(db *gorm.DB) FinanceRepository { return &financeRepo{db: db} }

func (r *financeRepo) DB() *gorm.DB { return r.db }

func (r *financeRepo) CreateCategory(ctx context.Context, c *model.AccountCategory) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *financeRepo) FindCategoryByID(ctx context.Context, id uuid.UUID) (*model.AccountCategory, error) {
	var c model.AccountCategory
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *financeRepo) FindCategoryByNameType(ctx context.Context, name string, typ domain.AccountType) (*model.AccountCategory, error) {
	var c model.AccountCategory
	err := r.db.WithContext(ctx).
		Where("name = ? AND type = ?", name, typ).
		First(&c).Error
	return &c, err
}

func (r *financeRepo) ListCategories(ctx context.Context) ([]model.AccountCategory, error) {
	var cats []model.AccountCategory
	err := r.db.WithContext(ctx).Order("type ASC, name ASC").Find(&cats).Error
	return cats, err
}

func (r *financeRepo) FindOrCreateCategoryTx(tx *gorm.DB, name string, typ domain.AccountType) (*model.AccountCategory, error) {
	var c model.AccountCategory
	err := tx.Where("name = ? AND type = ?", name, typ).First(&c).Error
	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	c = model.AccountCategory{Name: name, Type: typ}
	if err := tx.Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *financeRepo) CreateEntry(ctx context.Context, e *model.LedgerEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *financeRepo) CreateEntriesTx(tx *gorm.DB, entries []model.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return tx.Create(&entries).Error
}

func (r *financeRepo) DeleteEntriesByTabTx(tx *gorm.DB, tabID uuid.UUID) error {
	return tx.Where("related_tab_id = ?", tabID).Delete(&model.LedgerEntry{}).Error
}

func (r *financeRepo) ListEntries(ctx context.Context, from, to time.Time) ([]model.LedgerEntry, error) {
	var entries []model.LedgerEntry
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("date >= ? AND date < ?", from, to).
		Order("date DESC, created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *financeRepo) ListDayEntries(ctx context.Context, from, to time.Time) ([]domain.DayLedgerEntry, error) {
	var rows []domain.DayLedgerEntry
	err := r.db.WithContext(ctx).
		Model(&model.LedgerEntry{}).
		Select("account_categories.type AS category_type, ledger_entries.payment_method AS method, ledger_entries.amount AS amount").
		Joins("JOIN account_categories ON account_categories.id = ledger_entries.category_id").
		Where("ledger_entries.date >= ? AND ledger_entries.date < ?", from, to).
		Where("ledger_entries.payment_method IS NOT NULL").
		Scan(&rows).Error
	return rows, err
}
