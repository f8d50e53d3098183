package ports

import (
	"context"

	"github.com/quickbasket/commerce-api/internal/core/domain"
)

type CreateProductInput struct {
	Title       string
	Description string
	Category    string
	Price       float64
	Image       string
}

type ProductService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
