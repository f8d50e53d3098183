package ports

import (
	"context"

	"github.com/quickbasket/commerce-api/internal/core/domain"
)

// AccountService serves the read-only account projections used by the user
// and admin surfaces.
type AccountService interface {
	GetRole(ctx context.Context, userID string) (domain.Role, error)
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListCartItems(ctx context.Context) ([]domain.CartItem, error)
}
