package service_test

import (
	"context"
	"sort"
	"strings"
	"testing"

	"invtrack/internal/apperror"
	"invtrack/internal/dto"
	"invtrack/internal/model"
	"invtrack/internal/repository"
	"invtrack/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory ItemRepository stub ────────────────────────────────────────────

type stubItemRepo struct {
	items map[uuid.UUID]*model.Item
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{items: make(map[uuid.UUID]*model.Item)}
}

func (r *stubItemRepo) List(_ context.Context) ([]model.Item, error) {
	result := make([]model.Item, 0, len(r.items))
	for _, item := range r.items {
		result = append(result, *item)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *stubItemRepo) Search(_ context.Context, term string) ([]model.Item, error) {
	term = strings.ToLower(term)
	var result []model.Item
	for _, item := range r.items {
		if strings.Contains(strings.ToLower(item.Name), term) ||
			strings.Contains(strings.ToLower(item.Category), term) {
			result = append(result, *item)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *stubItemRepo) ListLowStock(_ context.Context) ([]model.Item, error) {
	var result []model.Item
	for _, item := range r.items {
		if item.Quantity <= item.ReorderLevel {
			result = append(result, *item)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Quantity < result[j].Quantity })
	return result, nil
}

func (r *stubItemRepo) DeleteByName(_ context.Context, name string) (bool, error) {
	for id, item := range r.items {
		if item.Name == name {
			delete(r.items, id)
			return true, nil
		}
	}
	return false, nil
}

func (r *stubItemRepo) Summarize(_ context.Context) (*repository.Summary, error) {
	s := &repository.Summary{}
	byCategory := make(map[string]*repository.CategoryCount)
	for _, item := range r.items {
		s.TotalItems++
		s.TotalUnits += int64(item.Quantity)
		c, ok := byCategory[item.Category]
		if !ok {
			c = &repository.CategoryCount{Category: item.Category}
			byCategory[item.Category] = c
		}
		c.Items++
		c.Units += int64(item.Quantity)
	}
	for _, c := range byCategory {
		s.PerCategory = append(s.PerCategory, *c)
	}
	sort.Slice(s.PerCategory, func(i, j int) bool { return s.PerCategory[i].Units > s.PerCategory[j].Units })
	return s, nil
}

func (r *stubItemRepo) FindByNameTx(_ *gorm.DB, name string) (*model.Item, error) {
	for _, item := range r.items {
		if item.Name == name {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubItemRepo) SaveTx(_ *gorm.DB, item *model.Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = item
	return nil
}

func (r *stubItemRepo) UpdateQuantityTx(_ *gorm.DB, id uuid.UUID, quantity int) error {
	item, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.Quantity = quantity
	return nil
}

func (r *stubItemRepo) DB() *gorm.DB { return nil }

// Ensure the stub satisfies the interface at compile time.
var _ repository.ItemRepository = (*stubItemRepo)(nil)

// ── Helpers ──────────────────────────────────────────────────────────────────

func seedItem(repo *stubItemRepo, name, category string, quantity, reorderLevel int) *model.Item {
	item := &model.Item{
		ID:           uuid.New(),
		Name:         name,
		Category:     category,
		Quantity:     quantity,
		ReorderLevel: reorderLevel,
	}
	repo.items[item.ID] = item
	return item
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestUpsertCreatesItem(t *testing.T) {
	repo := newStubItemRepo()
	svc := service.NewInventoryService(repo)

	resp, err := svc.Upsert(context.Background(), dto.UpsertItemRequest{
		Name:         "Widget",
		Category:     "Hardware",
		Quantity:     10,
		ReorderLevel: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Widget", resp.Name)
	assert.Equal(t, "Hardware", resp.Category)
	assert.Equal(t, 10, resp.Quantity)
	assert.Equal(t, 3, resp.ReorderLevel)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, dto.ItemResponse{Name: "Widget", Category: "Hardware", Quantity: 10, ReorderLevel: 3}, items[0])
}

func TestUpsertReplacesExistingKeepingID(t *testing.T) {
	repo := newStubItemRepo()
	svc := service.NewInventoryService(repo)

	first := seedItem(repo, "Widget", "Hardware", 10, 3)

	_, err := svc.Upsert(context.Background(), dto.UpsertItemRequest{
		Name:         "Widget",
		Category:     "Tools",
		Quantity:     7,
		ReorderLevel: 2,
	})
	require.NoError(t, err)

	// Still exactly one row, same ID, fields fully replaced
	require.Len(t, repo.items, 1)
	stored := repo.items[first.ID]
	require.NotNil(t, stored)
	assert.Equal(t, "Tools", stored.Category)
	assert.Equal(t, 7, stored.Quantity)
	assert.Equal(t, 2, stored.ReorderLevel)
}

func TestUpsertDefaultsCategory(t *testing.T) {
	repo := newStubItemRepo()
	svc := service.NewInventoryService(repo)

	resp, err := svc.Upsert(context.Background(), dto.UpsertItemRequest{Name: "Bolt", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, "General", resp.Category)
}

func TestUpsertEmptyNameRejected(t *testing.T) {
	repo := newStubItemRepo()
	svc := service.NewInventoryService(repo)

	_, err := svc.Upsert(context.Background(), dto.UpsertItemRequest{Name: "   "})
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Empty(t, repo.items)
}

func TestAdjustQuantitySubtract(t *testing.T) {
	repo := newStubItemRepo()
	svc := service.NewInventoryService(repo)
	seedItem(repo, "Widget", "Hardware", 10, 3)

	newQuantity, err := svc.AdjustQuantity(context.Background(), dto.AdjustQuantityRequest{
		Name:      "Widget",
		Delta:     5,
		Direction: dto.AdjustSubtract,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, newQuantity)
}

func TestAdjustQuantityAdd(t *testing.T) {
	repo := newStubItemRepo()
	svc := service.NewInventoryService(repo)
	seedItem(repo, "Widget", "Hardware", 5, 3)

	newQuantity, err := svc.AdjustQuantity(context.Background(), dto.AdjustQuantityRequest{
		Name:      "Widget",
		Delta:     4,
		Direction: dto.AdjustAdd,
	})
	require.NoError(t, err)
	assert.Equal(t, 9, newQuantity)
}

func TestAdjustQuantityBelowZeroRejected(t *testing.T) {
	repo := newStubItemRepo()
	svc := service.NewInventoryService(repo)
	item := seedItem(repo, "Widget", "Hardware", 5, 3)

	_, err := svc.AdjustQuantity(context.Background(), dto.AdjustQuantityRequest{
		Name:      "Widget",
		Delta:     20,
		Direction: dto.AdjustSubtract,
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidState)
	// Rejected adjustment leaves quantity unchanged
	assert.Equal(t, 5, repo.items[item.ID].Quantity)
}

func TestAdjustQuantityUnknownItem(t *testing.T) {
	repo := newStubItemRepo()
	svc := service.NewInventoryService(repo)

	_, err := svc.AdjustQuantity(context.Background(), dto.AdjustQuantityRequest{
		Name:      "Ghost",
		Delta:     1,
		Direction: dto.AdjustAdd,
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestSearchMatchesNameOrCategoryCaseInsensitive(t *testing.T) {
	repo := newStubItemRepo()
	svc := service.NewInventoryService(repo)
	seedItem(repo, "Widget", "Hardware", 10, 3)
	seedItem(repo, "Gasket", "hardware spares", 4, 10)
	seedItem(repo, "Manual", "Docs", 2, 1)

	items, err := svc.Search(context.Background(), "HARD")
	require.NoError(t, err)
	require.Len(t, items, 2)
	// Ordered by name
	assert.Equal(t, "Gasket", items[0].Name)
	assert.Equal(t, "Widget", items[1].Name)
}

func TestSearchEmptyTermRejected(t *testing.T) {
	repo := newStubItemRepo()
	svc := service.NewInventoryService(repo)

	_, err := svc.Search(context.Background(), "  ")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestListLowStockExactBoundary(t *testing.T) {
	repo := newStubItemRepo()
	svc := service.NewInventoryService(repo)
	seedItem(repo, "Plenty", "A", 50, 5)  // above threshold
	seedItem(repo, "AtLevel", "A", 5, 5)  // quantity == reorder level
	seedItem(repo, "Empty", "B", 0, 10)   // below

	items, err := svc.ListLowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	// Quantity ascending
	assert.Equal(t, "Empty", items[0].Name)
	assert.Equal(t, "AtLevel", items[1].Name)
}

func TestDeleteItem(t *testing.T) {
	repo := newStubItemRepo()
	svc := service.NewInventoryService(repo)
	seedItem(repo, "Widget", "Hardware", 10, 3)

	deleted, err := svc.Delete(context.Background(), "Widget")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(context.Background(), "Widget")
	require.NoError(t, err)
	assert.False(t, deleted)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSummarizeOrdersCategoriesByUnits(t *testing.T) {
	repo := newStubItemRepo()
	svc := service.NewInventoryService(repo)
	seedItem(repo, "Widget", "Hardware", 10, 3)
	seedItem(repo, "Gasket", "Hardware", 5, 3)
	seedItem(repo, "Label roll", "Supplies", 120, 20)

	resp, err := svc.Summarize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalItems)
	assert.Equal(t, 135, resp.TotalUnits)
	require.Len(t, resp.PerCategory, 2)
	assert.Equal(t, dto.CategorySummary{Category: "Supplies", Items: 1, Units: 120}, resp.PerCategory[0])
	assert.Equal(t, dto.CategorySummary{Category: "Hardware", Items: 2, Units: 15}, resp.PerCategory[1])
}
