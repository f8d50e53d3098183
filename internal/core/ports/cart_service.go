package ports

import "context"

// CartLine is a cart item joined with its product's display fields.
type CartLine struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type CartService interface {
	AddItem(ctx context.Context, userID, productID string, quantity int) error
	GetCart(ctx context.Context, userID string) ([]CartLine, error)
	// UpdateQuantity sets the quantity for an existing line. A quantity below
	// one removes the line; removed reports which branch was taken.
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (removed bool, err error)
	RemoveItem(ctx context.Context, userID, productID string) error
	// BuyAll returns the joined cart and clears it in one step.
	BuyAll(ctx context.Context, userID string) ([]CartLine, error)
}
