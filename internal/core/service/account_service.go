package service

import (
	"context"

	"github.com/quickbasket/commerce-api/internal/core/domain"
	"github.com/quickbasket/commerce-api/internal/core/ports"
)

// AccountService serves read-only account projections for the user and admin
// surfaces. No mutation, no invariant logic.
type AccountService struct {
	users ports.UserRepository
	carts ports.CartRepository
}

func NewAccountService(users ports.UserRepository, carts ports.CartRepository) *AccountService {
	return &AccountService{users: users, carts: carts}
}

func (s *AccountService) GetRole(ctx context.Context, userID string) (domain.Role, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

func (s *AccountService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AccountService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *AccountService) ListCartItems(ctx context.Context) ([]domain.CartItem, error) {
	return s.carts.List(ctx)
}
