package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Item is one tracked inventory line. Name is the natural key for every
// user-facing lookup; ID stays stable across upserts.
type Item struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"uniqueIndex;not null"`
	Category     string    `gorm:"not null;default:'General'"`
	Quantity     int       `gorm:"not null;check:quantity >= 0"`
	ReorderLevel int       `gorm:"not null;default:5;check:reorder_level >= 0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BeforeCreate assigns the surrogate ID; SQLite has no uuid default to lean on.
func (i *Item) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
