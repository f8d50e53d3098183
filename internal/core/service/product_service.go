package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/quickbasket/commerce-api/internal/core/domain"
	"github.com/quickbasket/commerce-api/internal/core/ports"
)

// ProductService is thin catalog CRUD with a read-through listing cache.
type ProductService struct {
	repo   ports.ProductRepository
	cache  ports.CatalogCache
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache ports.CatalogCache, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, logger: logger}
}

// ListProducts serves the catalog from cache when possible. Cache failures
// only skip the fast path; they never fail the request.
func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if cached, err := s.cache.GetProducts(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("catalog cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetProducts(ctx, products); err != nil {
		s.logger.Warn().Err(err).Msg("catalog cache write failed")
	}
	return products, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if input.Title == "" || input.Price <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Product{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Image:       input.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCatalog(ctx)
	return created, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCatalog(ctx)
	return nil
}

func (s *ProductService) invalidateCatalog(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
