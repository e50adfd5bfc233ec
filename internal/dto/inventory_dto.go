package dto

// UpsertItemRequest creates an item or fully replaces the fields of the item
// with the same name. Category defaults to "General" when blank.
type UpsertItemRequest struct {
	Name         string `validate:"required"`
	Category     string
	Quantity     int `validate:"min=0"`
	ReorderLevel int `validate:"min=0"`
}

// AdjustDirection is the closed set of ways a quantity adjustment can go.
type AdjustDirection string

const (
	AdjustAdd      AdjustDirection = "add"
	AdjustSubtract AdjustDirection = "subtract"
)

type AdjustQuantityRequest struct {
	Name      string          `validate:"required"`
	Delta     int             `validate:"min=0"`
	Direction AdjustDirection `validate:"required,oneof=add subtract"`
}

type ItemResponse struct {
	Name         string
	Category     string
	Quantity     int
	ReorderLevel int
}

// CategorySummary is one per-category line of the snapshot report.
type CategorySummary struct {
	Category string
	Items    int
	Units    int
}

type SummaryResponse struct {
	TotalItems  int
	TotalUnits  int
	PerCategory []CategorySummary
}
