package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/nandasafiq/go-storefront/app/models"
	"github.com/nandasafiq/go-storefront/app/repositories"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrItemNotFound    = errors.New("cart item not found")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrUnknownAction   = errors.New("unknown quantity action")
)

// QuantityAction selects how UpdateQuantity mutates a line item. Handlers
// parse the raw form value once and everything below works with the typed
// constant.
type QuantityAction string

const (
	ActionIncrease QuantityAction = "increase"
	ActionDecrease QuantityAction = "decrease"
)

func ParseQuantityAction(raw string) (QuantityAction, error) {
	switch action := QuantityAction(raw); action {
	case ActionIncrease, ActionDecrease:
		return action, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, raw)
	}
}

// CartService owns the per-user active order and its line items. The active
// order is always resolved by query, never cached, so every operation sees
// the current cart state.
type CartService struct {
	orderRepo     repositories.OrderRepositoryImpl
	orderItemRepo repositories.OrderItemRepositoryImpl
	productRepo   repositories.ProductRepositoryImpl
}

func NewCartService(
	orderRepo repositories.OrderRepositoryImpl,
	orderItemRepo repositories.OrderItemRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
) *CartService {
	return &CartService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		productRepo:   productRepo,
	}
}

// GetActiveOrder returns the user's cart with items and products loaded,
// or nil when the user has no active order.
func (s *CartService) GetActiveOrder(ctx context.Context, userID string) (*models.Order, error) {
	return s.orderRepo.FindActiveByUser(ctx, userID)
}

// AddToCart puts qty units of a product into the user's cart, creating the
// active order on first use. An existing line for the same product has its
// quantity incremented; the unit price stays the snapshot taken when the
// line was first created.
func (s *CartService) AddToCart(ctx context.Context, userID, productID string, qty int) (*models.OrderItem, error) {
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up product %s: %w", productID, err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	order, err := s.orderRepo.GetOrCreateActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create active order: %w", err)
	}

	existing, err := s.orderItemRepo.GetByOrderAndProduct(ctx, order.ID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing cart item: %w", err)
	}

	if existing != nil {
		existing.Quantity += qty
		if err := s.orderItemRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update cart item quantity: %w", err)
		}
		return existing, nil
	}

	item := &models.OrderItem{
		OrderID:   order.ID,
		ProductID: product.ID,
		Price:     product.Price,
		Quantity:  qty,
	}
	if err := s.orderItemRepo.Add(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}
	return item, nil
}

// UpdateQuantity applies a single increase or decrease step to a line item
// in the user's active order. Decreasing a quantity of one deletes the line
// instead of persisting a zero-quantity row; the returned item is nil in
// that case.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID string, action QuantityAction) (*models.OrderItem, error) {
	item, err := s.findOwnedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	switch action {
	case ActionIncrease:
		item.Quantity++
	case ActionDecrease:
		if item.Quantity <= 1 {
			if err := s.orderItemRepo.Delete(ctx, item.ID); err != nil {
				return nil, fmt.Errorf("failed to delete cart item: %w", err)
			}
			return nil, nil
		}
		item.Quantity--
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	if err := s.orderItemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}
	return item, nil
}

// RemoveItem deletes a line item from the user's active order regardless of
// its quantity.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID string) error {
	item, err := s.findOwnedItem(ctx, userID, itemID)
	if err != nil {
		return err
	}
	if err := s.orderItemRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}

// ItemCount reports the number of units in the user's cart for the navbar
// badge. A missing cart counts as zero.
func (s *CartService) ItemCount(ctx context.Context, userID string) (int, error) {
	order, err := s.orderRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if order == nil {
		return 0, nil
	}
	return order.ItemCount(), nil
}

// findOwnedItem resolves a line item only if it belongs to the caller's
// active order; anything else is reported as not found.
func (s *CartService) findOwnedItem(ctx context.Context, userID, itemID string) (*models.OrderItem, error) {
	order, err := s.orderRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve active order: %w", err)
	}
	if order == nil {
		return nil, ErrItemNotFound
	}

	item, err := s.orderItemRepo.GetByIDForOrder(ctx, itemID, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up cart item %s: %w", itemID, err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}
