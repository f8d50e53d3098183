package ports

import (
	"context"

	"github.com/quickbasket/commerce-api/internal/core/domain"
)

// UserRepository is the credential store. Implementations must enforce email
// uniqueness (Create returns domain.ErrUserExists) and provide
// read-your-writes consistency.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
}
