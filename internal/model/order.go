package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order is one ledger entry: it records a fulfilled customer order against an
// item. Orders are append-only — never mutated, never deleted — and ItemID is
// a plain reference rather than a cascading foreign key, so the ledger keeps
// rows for items that have since been removed.
type Order struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity  int       `gorm:"not null;check:quantity > 0"`
	Note      *string
	OrderedAt time.Time `gorm:"not null;index"`
}

func (o *Order) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
