package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/nandasafiq/go-storefront/app/models"
	"gorm.io/gorm"
)

// OrderFilter narrows dashboard order queries. Status of zero and a nil
// Since leave the corresponding predicate off.
type OrderFilter struct {
	Status int
	Since  *time.Time
}

type OrderRepositoryImpl interface {
	FindActiveByUser(ctx context.Context, userID string) (*models.Order, error)
	GetOrCreateActiveByUser(ctx context.Context, userID string) (*models.Order, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Order, error)
	FindFiltered(ctx context.Context, filter OrderFilter) ([]models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
	MarkPaid(ctx context.Context, orderID, shippingAddress string) (bool, error)
}

type gormOrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepositoryImpl {
	return &gormOrderRepository{db: db}
}

// FindActiveByUser resolves the user's cart: the first order still in the
// active state. Nil without error when the user has no cart yet.
func (r *gormOrderRepository) FindActiveByUser(ctx context.Context, userID string) (*models.Order, error) {
	var order models.Order

	err := r.db.WithContext(ctx).
		Preload("OrderItems.Product").
		Where("user_id = ? AND status = ?", userID, models.OrderStatusActive).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *gormOrderRepository) GetOrCreateActiveByUser(ctx context.Context, userID string) (*models.Order, error) {
	var order models.Order

	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Where(models.Order{UserID: &userID, Status: models.OrderStatusActive}).
		FirstOrCreate(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *gormOrderRepository) FindByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order

	err := r.db.WithContext(ctx).
		Preload("OrderItems.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *gormOrderRepository) FindFiltered(ctx context.Context, filter OrderFilter) ([]models.Order, error) {
	var orders []models.Order

	query := r.db.WithContext(ctx).Preload("OrderItems.Product")
	if filter.Status != 0 {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Since != nil {
		query = query.Where("created_at >= ?", filter.Since)
	}

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *gormOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order

	err := r.db.WithContext(ctx).
		Preload("OrderItems.Product").
		Preload("User").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// MarkPaid flips the order to paid and stores the shipping address in one
// guarded update. The status predicate makes the transition one-way: a
// second call matches no rows and reports false.
func (r *gormOrderRepository) MarkPaid(ctx context.Context, orderID, shippingAddress string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, models.OrderStatusActive).
		Updates(map[string]interface{}{
			"status":           models.OrderStatusPaid,
			"shipping_address": shippingAddress,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
