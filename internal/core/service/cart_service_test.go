package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/quickbasket/commerce-api/internal/core/domain"
)

type stubCartRepo struct {
	items  map[string]*domain.CartItem // keyed by userID+"/"+productID
	nextID int
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{items: make(map[string]*domain.CartItem)}
}

func cartKey(userID, productID string) string {
	return userID + "/" + productID
}

func (r *stubCartRepo) Create(_ context.Context, item *domain.CartItem) error {
	r.nextID++
	item.ID = fmt.Sprintf("c%d", r.nextID)
	clone := *item
	r.items[cartKey(item.UserID, item.ProductID)] = &clone
	return nil
}

func (r *stubCartRepo) Save(_ context.Context, item *domain.CartItem) error {
	key := cartKey(item.UserID, item.ProductID)
	if _, ok := r.items[key]; !ok {
		return domain.ErrCartItemNotFound
	}
	clone := *item
	r.items[key] = &clone
	return nil
}

func (r *stubCartRepo) FindByUserAndProduct(_ context.Context, userID, productID string) (*domain.CartItem, error) {
	item, ok := r.items[cartKey(userID, productID)]
	if !ok {
		return nil, domain.ErrCartItemNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *stubCartRepo) FindByUser(_ context.Context, userID string) ([]domain.CartItem, error) {
	var out []domain.CartItem
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *stubCartRepo) List(_ context.Context) ([]domain.CartItem, error) {
	out := make([]domain.CartItem, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out, nil
}

func (r *stubCartRepo) DeleteByUser(_ context.Context, userID string) error {
	for key, item := range r.items {
		if item.UserID == userID {
			delete(r.items, key)
		}
	}
	return nil
}

func (r *stubCartRepo) Delete(_ context.Context, userID, productID string) error {
	key := cartKey(userID, productID)
	if _, ok := r.items[key]; !ok {
		return domain.ErrCartItemNotFound
	}
	delete(r.items, key)
	return nil
}

func newTestCartService(t *testing.T) (*CartService, *stubCartRepo, string) {
	t.Helper()
	products := newStubProductRepo()
	created, err := products.Create(context.Background(), &domain.Product{Title: "Mug", Price: 9.5})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	carts := newStubCartRepo()
	return NewCartService(carts, products, zerolog.Nop()), carts, created.ID
}

func TestCartService_AddItem_Accumulates(t *testing.T) {
	svc, carts, productID := newTestCartService(t)

	if err := svc.AddItem(context.Background(), "u1", productID, 2); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}
	if err := svc.AddItem(context.Background(), "u1", productID, 3); err != nil {
		t.Fatalf("second AddItem returned error: %v", err)
	}

	item, err := carts.FindByUserAndProduct(context.Background(), "u1", productID)
	if err != nil {
		t.Fatalf("cart item missing: %v", err)
	}
	if item.Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", item.Quantity)
	}
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	svc, _, _ := newTestCartService(t)

	if err := svc.AddItem(context.Background(), "u1", "missing", 1); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCartService_AddItem_Validation(t *testing.T) {
	svc, _, productID := newTestCartService(t)

	if err := svc.AddItem(context.Background(), "", productID, 1); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing user, got %v", err)
	}
	if err := svc.AddItem(context.Background(), "u1", productID, 0); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero quantity, got %v", err)
	}
}

func TestCartService_GetCart_JoinsProducts(t *testing.T) {
	svc, carts, productID := newTestCartService(t)

	_ = svc.AddItem(context.Background(), "u1", productID, 2)
	// A line whose product vanished keeps a placeholder title.
	_ = carts.Create(context.Background(), &domain.CartItem{UserID: "u1", ProductID: "gone", Quantity: 1})

	lines, err := svc.GetCart(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetCart returned error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	byProduct := map[string]string{}
	for _, line := range lines {
		byProduct[line.ProductID] = line.Title
	}
	if byProduct[productID] != "Mug" {
		t.Fatalf("expected joined title, got %q", byProduct[productID])
	}
	if byProduct["gone"] != "Product not found" {
		t.Fatalf("expected placeholder title, got %q", byProduct["gone"])
	}
}

func TestCartService_RemoveItem(t *testing.T) {
	svc, carts, productID := newTestCartService(t)
	_ = svc.AddItem(context.Background(), "u1", productID, 2)

	if err := svc.RemoveItem(context.Background(), "u1", productID); err != nil {
		t.Fatalf("RemoveItem returned error: %v", err)
	}
	if _, err := carts.FindByUserAndProduct(context.Background(), "u1", productID); !errors.Is(err, domain.ErrCartItemNotFound) {
		t.Fatalf("line still present after removal: %v", err)
	}

	// Unlike UpdateQuantity's below-one branch, a second removal is an error.
	if err := svc.RemoveItem(context.Background(), "u1", productID); !errors.Is(err, domain.ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
	if err := svc.RemoveItem(context.Background(), "", productID); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing user, got %v", err)
	}
}

func TestCartService_BuyAll_ReturnsAndClears(t *testing.T) {
	svc, carts, productID := newTestCartService(t)
	_ = svc.AddItem(context.Background(), "u1", productID, 3)
	_ = svc.AddItem(context.Background(), "u2", productID, 1)

	lines, err := svc.BuyAll(context.Background(), "u1")
	if err != nil {
		t.Fatalf("BuyAll returned error: %v", err)
	}
	if len(lines) != 1 || lines[0].Title != "Mug" || lines[0].Quantity != 3 {
		t.Fatalf("unexpected purchased lines: %+v", lines)
	}

	remaining, err := carts.FindByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("FindByUser returned error: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("cart not cleared after purchase: %+v", remaining)
	}

	// The other user's cart is untouched.
	other, _ := carts.FindByUser(context.Background(), "u2")
	if len(other) != 1 {
		t.Fatalf("unrelated cart modified: %+v", other)
	}
}

func TestCartService_BuyAll_EmptyCart(t *testing.T) {
	svc, _, _ := newTestCartService(t)

	if _, err := svc.BuyAll(context.Background(), "u1"); !errors.Is(err, domain.ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestCartService_UpdateQuantity(t *testing.T) {
	svc, carts, productID := newTestCartService(t)
	_ = svc.AddItem(context.Background(), "u1", productID, 2)

	removed, err := svc.UpdateQuantity(context.Background(), "u1", productID, 7)
	if err != nil || removed {
		t.Fatalf("unexpected update result: removed=%v err=%v", removed, err)
	}
	item, _ := carts.FindByUserAndProduct(context.Background(), "u1", productID)
	if item.Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", item.Quantity)
	}

	// Quantity below one removes the line; removing a missing line is fine.
	removed, err = svc.UpdateQuantity(context.Background(), "u1", productID, 0)
	if err != nil || !removed {
		t.Fatalf("expected removal, removed=%v err=%v", removed, err)
	}
	removed, err = svc.UpdateQuantity(context.Background(), "u1", productID, 0)
	if err != nil || !removed {
		t.Fatalf("repeat removal should be a no-op, removed=%v err=%v", removed, err)
	}

	if _, err := svc.UpdateQuantity(context.Background(), "u1", productID, 3); !errors.Is(err, domain.ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound for vanished line, got %v", err)
	}
}
