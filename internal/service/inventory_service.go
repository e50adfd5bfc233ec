package service

import (
	"context"
	"errors"
	"strings"

	"invtrack/internal/apperror"
	"invtrack/internal/dto"
	"invtrack/internal/model"
	"invtrack/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// InventoryService defines the business logic contract for item operations.
type InventoryService interface {
	Upsert(ctx context.Context, req dto.UpsertItemRequest) (*dto.ItemResponse, error)
	List(ctx context.Context) ([]dto.ItemResponse, error)
	Search(ctx context.Context, term string) ([]dto.ItemResponse, error)
	// AdjustQuantity returns the new quantity. The read and the conditional
	// write run in one transaction so the non-negativity check can never pass
	// against a stale value.
	AdjustQuantity(ctx context.Context, req dto.AdjustQuantityRequest) (int, error)
	ListLowStock(ctx context.Context) ([]dto.ItemResponse, error)
	// Delete hard-deletes the item and reports whether a row was removed.
	// Ledger rows referencing the item are retained for auditing.
	Delete(ctx context.Context, name string) (bool, error)
	Summarize(ctx context.Context) (*dto.SummaryResponse, error)
}

type inventoryService struct {
	repo     repository.ItemRepository
	validate *validator.Validate
}

func NewInventoryService(repo repository.ItemRepository) InventoryService {
	return &inventoryService{repo: repo, validate: validator.New()}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// Upsert inserts a new item or replaces category/quantity/reorder level of the
// item with the same name, keeping its ID. Find-then-write runs in one
// transaction since the storage API has no native upsert at this level.
func (s *inventoryService) Upsert(ctx context.Context, req dto.UpsertItemRequest) (*dto.ItemResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Category = strings.TrimSpace(req.Category); req.Category == "" {
		req.Category = "General"
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	var saved model.Item
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		existing, err := s.repo.FindByNameTx(tx, req.Name)
		switch {
		case err == nil:
			existing.Category = req.Category
			existing.Quantity = req.Quantity
			existing.ReorderLevel = req.ReorderLevel
			if err := s.repo.SaveTx(tx, existing); err != nil {
				return apperror.Constraint(err)
			}
			saved = *existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			item := model.Item{
				Name:         req.Name,
				Category:     req.Category,
				Quantity:     req.Quantity,
				ReorderLevel: req.ReorderLevel,
			}
			if err := s.repo.SaveTx(tx, &item); err != nil {
				return apperror.Constraint(err)
			}
			saved = item
		default:
			return err
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	log.Debug().Str("item", saved.Name).Int("quantity", saved.Quantity).Msg("item saved")
	return itemToResponse(&saved), nil
}

func (s *inventoryService) List(ctx context.Context) ([]dto.ItemResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return itemsToResponses(items), nil
}

func (s *inventoryService) Search(ctx context.Context, term string) ([]dto.ItemResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, apperror.Validation("nothing to search")
	}
	items, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	return itemsToResponses(items), nil
}

func (s *inventoryService) AdjustQuantity(ctx context.Context, req dto.AdjustQuantityRequest) (int, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validate.Struct(req); err != nil {
		return 0, apperror.Validation(err.Error())
	}

	var newQuantity int
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		item, err := s.repo.FindByNameTx(tx, req.Name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound(req.Name)
			}
			return err
		}

		delta := req.Delta
		if req.Direction == dto.AdjustSubtract {
			delta = -delta
		}
		newQuantity = item.Quantity + delta
		if newQuantity < 0 {
			return apperror.InvalidState("cannot reduce below zero")
		}
		if err := s.repo.UpdateQuantityTx(tx, item.ID, newQuantity); err != nil {
			return apperror.Constraint(err)
		}
		return nil
	})
	if txErr != nil {
		return 0, txErr
	}

	log.Debug().Str("item", req.Name).Int("quantity", newQuantity).Msg("quantity adjusted")
	return newQuantity, nil
}

func (s *inventoryService) ListLowStock(ctx context.Context) ([]dto.ItemResponse, error) {
	items, err := s.repo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return itemsToResponses(items), nil
}

func (s *inventoryService) Delete(ctx context.Context, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, apperror.Validation("item name cannot be empty")
	}
	deleted, err := s.repo.DeleteByName(ctx, name)
	if err != nil {
		return false, err
	}
	if deleted {
		log.Info().Str("item", name).Msg("item deleted; order history retained")
	}
	return deleted, nil
}

func (s *inventoryService) Summarize(ctx context.Context) (*dto.SummaryResponse, error) {
	summary, err := s.repo.Summarize(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.SummaryResponse{
		TotalItems: int(summary.TotalItems),
		TotalUnits: int(summary.TotalUnits),
	}
	for _, c := range summary.PerCategory {
		resp.PerCategory = append(resp.PerCategory, dto.CategorySummary{
			Category: c.Category,
			Items:    int(c.Items),
			Units:    int(c.Units),
		})
	}
	return resp, nil
}

func itemToResponse(i *model.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		Name:         i.Name,
		Category:     i.Category,
		Quantity:     i.Quantity,
		ReorderLevel: i.ReorderLevel,
	}
}

func itemsToResponses(items []model.Item) []dto.ItemResponse {
	resp := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, *itemToResponse(&items[i]))
	}
	return resp
}
