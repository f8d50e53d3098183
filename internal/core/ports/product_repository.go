package ports

import (
	"context"

	"github.com/quickbasket/commerce-api/internal/core/domain"
)

// ProductRepository persists catalog entries.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// CatalogCache fronts the product listing. Errors are soft: a failing cache
// must never fail the request, only skip the fast path.
type CatalogCache interface {
	GetProducts(ctx context.Context) ([]domain.Product, error)
	SetProducts(ctx context.Context, products []domain.Product) error
	Invalidate(ctx context.Context) error
}
