package dto

type PlaceOrderRequest struct {
	ItemName string `validate:"required"`
	Quantity int    `validate:"required,min=1"`
	Note     string
}

// OrderResponse carries one ledger entry for display. Item holds a
// placeholder when the referenced item has been deleted since.
type OrderResponse struct {
	ID        string
	Item      string
	Quantity  int
	Note      string
	OrderedAt string // UTC, RFC 3339
}
