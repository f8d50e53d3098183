package ports

import (
	"context"

	"github.com/quickbasket/commerce-api/internal/core/domain"
)

// CartRepository persists cart items, one per (user, product) pair.
type CartRepository interface {
	FindByUserAndProduct(ctx context.Context, userID, productID string) (*domain.CartItem, error)
	FindByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	List(ctx context.Context) ([]domain.CartItem, error)
	Create(ctx context.Context, item *domain.CartItem) error
	Save(ctx context.Context, item *domain.CartItem) error
	Delete(ctx context.Context, userID, productID string) error
	DeleteByUser(ctx context.Context, userID string) error
}
