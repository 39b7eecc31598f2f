package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/nandasafiq/go-storefront/app/models"
	"github.com/nandasafiq/go-storefront/app/repositories"
)

var ErrEmptyCart = errors.New("no active order or cart is empty")

// CheckoutService finalizes a cart. There is no payment leg and no stock
// mutation here: checkout is only the one-way transition of the active
// order to paid.
type CheckoutService struct {
	orderRepo repositories.OrderRepositoryImpl
}

func NewCheckoutService(orderRepo repositories.OrderRepositoryImpl) *CheckoutService {
	return &CheckoutService{orderRepo: orderRepo}
}

// Checkout marks the user's active order as paid and records the shipping
// address. ErrEmptyCart when the user has no active order or it holds no
// items; handlers translate that into a redirect home rather than an error
// page. Once paid the order is no longer resolvable as active, so a repeat
// call lands on ErrEmptyCart instead of touching the paid order.
func (s *CheckoutService) Checkout(ctx context.Context, userID, shippingAddress string) (*models.Order, error) {
	order, err := s.orderRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve active order: %w", err)
	}
	if order == nil || len(order.OrderItems) == 0 {
		return nil, ErrEmptyCart
	}

	done, err := s.orderRepo.MarkPaid(ctx, order.ID, shippingAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to mark order %s paid: %w", order.ID, err)
	}
	if !done {
		// Lost the transition to a concurrent checkout of the same order.
		return nil, ErrEmptyCart
	}

	order.Status = models.OrderStatusPaid
	order.ShippingAddress = shippingAddress
	return order, nil
}
