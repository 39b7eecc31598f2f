package repositories_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/nandasafiq/go-storefront/app/db/testdb"
	"github.com/nandasafiq/go-storefront/app/models"
	"github.com/nandasafiq/go-storefront/app/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		ID:        uuid.New().String(),
		FirstName: "Test",
		Email:     email,
		Password:  "secret",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestGetOrCreateActiveByUser_IsIdempotent(t *testing.T) {
	db := testdb.Open(t)
	repo := repositories.NewOrderRepository(db)
	ctx := context.Background()
	user := createUser(t, db, "ana@example.com")

	first, err := repo.GetOrCreateActiveByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusActive, first.Status)

	second, err := repo.GetOrCreateActiveByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestFindActiveByUser_SkipsPaidOrders(t *testing.T) {
	db := testdb.Open(t)
	repo := repositories.NewOrderRepository(db)
	ctx := context.Background()
	user := createUser(t, db, "ana@example.com")

	order, err := repo.FindActiveByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, order)

	paid := &models.Order{UserID: &user.ID, Status: models.OrderStatusPaid}
	require.NoError(t, db.Create(paid).Error)

	order, err = repo.FindActiveByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, order, "a paid order is history, not the cart")
}

func TestMarkPaid_OnlyTransitionsActiveOrders(t *testing.T) {
	db := testdb.Open(t)
	repo := repositories.NewOrderRepository(db)
	ctx := context.Background()
	user := createUser(t, db, "ana@example.com")

	order, err := repo.GetOrCreateActiveByUser(ctx, user.ID)
	require.NoError(t, err)

	done, err := repo.MarkPaid(ctx, order.ID, "1 Main St")
	require.NoError(t, err)
	assert.True(t, done)

	done, err = repo.MarkPaid(ctx, order.ID, "2 Other Rd")
	require.NoError(t, err)
	assert.False(t, done, "an already paid order matches no rows")

	var stored models.Order
	require.NoError(t, db.First(&stored, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderStatusPaid, stored.Status)
	assert.Equal(t, "1 Main St", stored.ShippingAddress)
}

func TestDeleteOrderCascadesToItems(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	repo := repositories.NewOrderRepository(db)
	itemRepo := repositories.NewOrderItemRepository(db)
	user := createUser(t, db, "ana@example.com")
	product := createProduct(t, db, "Ceramic Mug", "", "12.50", nil)

	order, err := repo.GetOrCreateActiveByUser(ctx, user.ID)
	require.NoError(t, err)
	item := &models.OrderItem{OrderID: order.ID, ProductID: product.ID, Price: product.Price, Quantity: 2}
	require.NoError(t, itemRepo.Add(ctx, item))

	require.NoError(t, db.Delete(&models.Order{}, "id = ?", order.ID).Error)

	var count int64
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteProductReferencedByOrderIsBlocked(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	repo := repositories.NewOrderRepository(db)
	itemRepo := repositories.NewOrderItemRepository(db)
	productRepo := repositories.NewProductRepository(db)
	user := createUser(t, db, "ana@example.com")
	product := createProduct(t, db, "Ceramic Mug", "", "12.50", nil)

	order, err := repo.GetOrCreateActiveByUser(ctx, user.ID)
	require.NoError(t, err)
	item := &models.OrderItem{OrderID: order.ID, ProductID: product.ID, Price: product.Price, Quantity: 1}
	require.NoError(t, itemRepo.Add(ctx, item))

	err = productRepo.Delete(ctx, product.ID)
	assert.Error(t, err, "a product on an order must not be deletable")
}

func TestFindByUserID_ReturnsOnlyThatUsersHistory(t *testing.T) {
	db := testdb.Open(t)
	repo := repositories.NewOrderRepository(db)
	ctx := context.Background()
	ana := createUser(t, db, "ana@example.com")
	bob := createUser(t, db, "bob@example.com")

	require.NoError(t, db.Create(&models.Order{UserID: &ana.ID, Status: models.OrderStatusPaid}).Error)
	require.NoError(t, db.Create(&models.Order{UserID: &ana.ID, Status: models.OrderStatusActive}).Error)
	require.NoError(t, db.Create(&models.Order{UserID: &bob.ID, Status: models.OrderStatusPaid}).Error)

	orders, err := repo.FindByUserID(ctx, ana.ID)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
