package repository

import (
	"context"
	"time"

	"invtrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderRow is one ledger entry joined with its item's name for history
// rendering. ItemName is nullable because orders outlive item deletion.
type OrderRow struct {
	ID        uuid.UUID
	ItemName  *string
	Quantity  int
	Note      *string
	OrderedAt time.Time
}

// OrderRepository defines the data access contract for the order ledger.
// The ledger is append-only: creation happens only inside the place-order
// transaction, and nothing updates or deletes a row.
type OrderRepository interface {
	ListWithItemNames(ctx context.Context) ([]OrderRow, error)

	// CreateTx inserts inside the caller's transaction so the stock decrement
	// and the ledger row commit together or not at all.
	CreateTx(tx *gorm.DB, order *model.Order) error

	DB() *gorm.DB
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

// ListWithItemNames uses a LEFT JOIN so orders whose item was deleted still
// appear; their ItemName comes back nil.
func (r *orderRepo) ListWithItemNames(ctx context.Context) ([]OrderRow, error) {
	var rows []OrderRow
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("orders.id, items.name AS item_name, orders.quantity, orders.note, orders.ordered_at").
		Joins("LEFT JOIN items ON items.id = orders.item_id").
		Order("orders.ordered_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *orderRepo) CreateTx(tx *gorm.DB, order *model.Order) error {
	return tx.Create(order).Error
}

func (r *orderRepo) DB() *gorm.DB { return r.db }
