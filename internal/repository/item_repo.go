package repository

import (
	"context"
	"strings"

	"invtrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemRepository defines the data access contract for items. Services depend
// on this interface, not on the concrete GORM implementation, enabling clean
// unit testing via stubs.
type ItemRepository interface {
	List(ctx context.Context) ([]model.Item, error)
	Search(ctx context.Context, term string) ([]model.Item, error)
	ListLowStock(ctx context.Context) ([]model.Item, error)
	DeleteByName(ctx context.Context, name string) (bool, error)
	Summarize(ctx context.Context) (*Summary, error)

	// Used inside transactions — callers must pass the tx instance
	FindByNameTx(tx *gorm.DB, name string) (*model.Item, error)
	SaveTx(tx *gorm.DB, item *model.Item) error
	UpdateQuantityTx(tx *gorm.DB, id uuid.UUID, quantity int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

// Summary carries the aggregates for the snapshot report.
type Summary struct {
	TotalItems  int64
	TotalUnits  int64
	PerCategory []CategoryCount
}

// CategoryCount is one per-category aggregate, ordered by Units descending.
type CategoryCount struct {
	Category string
	Items    int64
	Units    int64
}

type itemRepo struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) ItemRepository { return &itemRepo{db: db} }

func (r *itemRepo) List(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *itemRepo) Search(ctx context.Context, term string) ([]model.Item, error) {
	var items []model.Item
	pattern := "%" + strings.ToLower(term) + "%"
	err := r.db.WithContext(ctx).
		Where("lower(name) LIKE ? OR lower(category) LIKE ?", pattern, pattern).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (r *itemRepo) ListLowStock(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Where("quantity <= reorder_level").
		Order("quantity ASC").
		Find(&items).Error
	return items, err
}

func (r *itemRepo) DeleteByName(ctx context.Context, name string) (bool, error) {
	res := r.db.WithContext(ctx).Where("name = ?", name).Delete(&model.Item{})
	return res.RowsAffected > 0, res.Error
}

func (r *itemRepo) Summarize(ctx context.Context) (*Summary, error) {
	var totals struct {
		TotalItems int64
		TotalUnits int64
	}
	if err := r.db.WithContext(ctx).Model(&model.Item{}).
		Select("COUNT(*) AS total_items, COALESCE(SUM(quantity), 0) AS total_units").
		Scan(&totals).Error; err != nil {
		return nil, err
	}

	var perCategory []CategoryCount
	if err := r.db.WithContext(ctx).Model(&model.Item{}).
		Select("category, COUNT(*) AS items, COALESCE(SUM(quantity), 0) AS units").
		Group("category").
		Order("units DESC").
		Scan(&perCategory).Error; err != nil {
		return nil, err
	}

	return &Summary{
		TotalItems:  totals.TotalItems,
		TotalUnits:  totals.TotalUnits,
		PerCategory: perCategory,
	}, nil
}

func (r *itemRepo) FindByNameTx(tx *gorm.DB, name string) (*model.Item, error) {
	var item model.Item
	if err := tx.Where("name = ?", name).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepo) SaveTx(tx *gorm.DB, item *model.Item) error {
	return tx.Save(item).Error
}

func (r *itemRepo) UpdateQuantityTx(tx *gorm.DB, id uuid.UUID, quantity int) error {
	return tx.Model(&model.Item{}).Where("id = ?", id).
		Update("quantity", quantity).Error
}

func (r *itemRepo) DB() *gorm.DB { return r.db }
