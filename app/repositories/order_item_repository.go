package repositories

import (
	"context"

	"github.com/nandasafiq/go-storefront/app/models"
	"gorm.io/gorm"
)

type OrderItemRepository struct {
	DB *gorm.DB
}

type OrderItemRepositoryImpl interface {
	Add(ctx context.Context, item *models.OrderItem) error
	Update(ctx context.Context, item *models.OrderItem) error
	Delete(ctx context.Context, id string) error
	GetByOrderAndProduct(ctx context.Context, orderID, productID string) (*models.OrderItem, error)
	GetByIDForOrder(ctx context.Context, id, orderID string) (*models.OrderItem, error)
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepositoryImpl {
	return &OrderItemRepository{db}
}

func (r *OrderItemRepository) Add(ctx context.Context, item *models.OrderItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *OrderItemRepository) Update(ctx context.Context, item *models.OrderItem) error {
	return r.DB.WithContext(ctx).Save(item).Error
}

func (r *OrderItemRepository) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Delete(&models.OrderItem{}, "id = ?", id).Error
}

func (r *OrderItemRepository) GetByOrderAndProduct(ctx context.Context, orderID, productID string) (*models.OrderItem, error) {
	var item models.OrderItem

	err := r.DB.WithContext(ctx).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		First(&item).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetByIDForOrder scopes the lookup to one order so a caller can never
// touch another user's line items.
func (r *OrderItemRepository) GetByIDForOrder(ctx context.Context, id, orderID string) (*models.OrderItem, error) {
	var item models.OrderItem

	err := r.DB.WithContext(ctx).
		Where("id = ? AND order_id = ?", id, orderID).
		First(&item).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}
