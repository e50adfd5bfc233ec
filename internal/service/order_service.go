package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"invtrack/internal/apperror"
	"invtrack/internal/dto"
	"invtrack/internal/model"
	"invtrack/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// deletedItemLabel stands in for the name of an item removed after orders
// against it were recorded.
const deletedItemLabel = "(deleted item)"

// OrderService defines the contract for the order ledger.
type OrderService interface {
	// Place atomically decrements the item's stock and appends a ledger row;
	// both writes commit together or neither does.
	Place(ctx context.Context, req dto.PlaceOrderRequest) (*dto.OrderResponse, error)
	// History returns all orders, newest first, including those whose item
	// has since been deleted.
	History(ctx context.Context) ([]dto.OrderResponse, error)
}

type orderService struct {
	orders   repository.OrderRepository
	items    repository.ItemRepository
	validate *validator.Validate
}

func NewOrderService(orders repository.OrderRepository, items repository.ItemRepository) OrderService {
	return &orderService{orders: orders, items: items, validate: validator.New()}
}

func (s *orderService) Place(ctx context.Context, req dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	req.ItemName = strings.TrimSpace(req.ItemName)
	if err := s.validate.Struct(req); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	var order model.Order
	txErr := runTx(ctx, s.items.DB(), func(tx *gorm.DB) error {
		item, err := s.items.FindByNameTx(tx, req.ItemName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound(req.ItemName)
			}
			return err
		}
		if item.Quantity < req.Quantity {
			return apperror.InvalidState("not enough stock for this order")
		}

		if err := s.items.UpdateQuantityTx(tx, item.ID, item.Quantity-req.Quantity); err != nil {
			return apperror.Constraint(err)
		}

		order = model.Order{
			ItemID:    item.ID,
			Quantity:  req.Quantity,
			OrderedAt: time.Now().UTC(),
		}
		if note := strings.TrimSpace(req.Note); note != "" {
			order.Note = &note
		}
		if err := s.orders.CreateTx(tx, &order); err != nil {
			return apperror.Constraint(err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	log.Info().Str("item", req.ItemName).Int("quantity", req.Quantity).Msg("order recorded")
	return &dto.OrderResponse{
		ID:        order.ID.String(),
		Item:      req.ItemName,
		Quantity:  order.Quantity,
		Note:      req.Note,
		OrderedAt: order.OrderedAt.Format(time.RFC3339),
	}, nil
}

func (s *orderService) History(ctx context.Context) ([]dto.OrderResponse, error) {
	rows, err := s.orders.ListWithItemNames(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.OrderResponse, 0, len(rows))
	for _, row := range rows {
		name := deletedItemLabel
		if row.ItemName != nil {
			name = *row.ItemName
		}
		note := ""
		if row.Note != nil {
			note = *row.Note
		}
		resp = append(resp, dto.OrderResponse{
			ID:        row.ID.String(),
			Item:      name,
			Quantity:  row.Quantity,
			Note:      note,
			OrderedAt: row.OrderedAt.UTC().Format(time.RFC3339),
		})
	}
	return resp, nil
}
