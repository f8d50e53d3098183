package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/quickbasket/commerce-api/internal/core/domain"
	"github.com/quickbasket/commerce-api/internal/core/ports"
)

// CartService is thin cart CRUD: one line per (user, product), quantities
// accumulate on repeat adds.
type CartService struct {
	carts    ports.CartRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewCartService(carts ports.CartRepository, products ports.ProductRepository, logger zerolog.Logger) *CartService {
	return &CartService{carts: carts, products: products, logger: logger}
}

func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int) error {
	if userID == "" || productID == "" || quantity <= 0 {
		return domain.ErrInvalidInput
	}

	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return err
	}

	now := time.Now().UTC()
	item, err := s.carts.FindByUserAndProduct(ctx, userID, productID)
	switch {
	case err == nil:
		item.Quantity += quantity
		item.UpdatedAt = now
		return s.carts.Save(ctx, item)
	case errors.Is(err, domain.ErrCartItemNotFound):
		return s.carts.Create(ctx, &domain.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
			CreatedAt: now,
			UpdatedAt: now,
		})
	default:
		return err
	}
}

// GetCart joins the user's cart lines with product display fields. A line
// whose product has disappeared is kept with a placeholder title rather than
// failing the whole cart.
func (s *CartService) GetCart(ctx context.Context, userID string) ([]ports.CartLine, error) {
	items, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	lines := make([]ports.CartLine, 0, len(items))
	for _, item := range items {
		line := ports.CartLine{ProductID: item.ProductID, Quantity: item.Quantity}
		product, err := s.products.FindByID(ctx, item.ProductID)
		switch {
		case err == nil:
			line.Title = product.Title
			line.Price = product.Price
		case errors.Is(err, domain.ErrProductNotFound):
			line.Title = "Product not found"
		default:
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// RemoveItem deletes a cart line outright. Unlike UpdateQuantity's
// below-one branch, removing a line that does not exist is an error.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) error {
	if userID == "" || productID == "" {
		return domain.ErrInvalidInput
	}
	return s.carts.Delete(ctx, userID, productID)
}

// BuyAll is the checkout stub: it returns the joined cart contents and
// clears every line for the user. An empty cart cannot be bought.
func (s *CartService) BuyAll(ctx context.Context, userID string) ([]ports.CartLine, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}

	lines, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrCartEmpty
	}

	if err := s.carts.DeleteByUser(ctx, userID); err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", userID).Int("lines", len(lines)).Msg("cart purchased")
	return lines, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (bool, error) {
	if userID == "" || productID == "" {
		return false, domain.ErrInvalidInput
	}

	if quantity < 1 {
		if err := s.carts.Delete(ctx, userID, productID); err != nil && !errors.Is(err, domain.ErrCartItemNotFound) {
			return false, err
		}
		return true, nil
	}

	item, err := s.carts.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return false, err
	}

	item.Quantity = quantity
	item.UpdatedAt = time.Now().UTC()
	return false, s.carts.Save(ctx, item)
}
