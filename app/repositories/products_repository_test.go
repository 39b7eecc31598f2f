package repositories_test

import (
	"context"
	"testing"

	"github.com/nandasafiq/go-storefront/app/db/testdb"
	"github.com/nandasafiq/go-storefront/app/models"
	"github.com/nandasafiq/go-storefront/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createProduct(t *testing.T, db *gorm.DB, name, description, price string, category *models.Category) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:        name,
		Description: description,
		Price:       decimal.RequireFromString(price),
	}
	if category != nil {
		product.CategoryID = &category.ID
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func createCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func catalogFixture(t *testing.T) (repositories.ProductRepositoryImpl, *gorm.DB, *models.Category) {
	t.Helper()
	db := testdb.Open(t)
	repo := repositories.NewProductRepository(db)
	kitchen := createCategory(t, db, "Kitchen")
	createProduct(t, db, "Ceramic Mug", "Holds hot coffee", "12.50", kitchen)
	createProduct(t, db, "Walnut Desk", "Solid wood, coffee ring included", "249.99", nil)
	createProduct(t, db, "Desk Lamp", "Warm light", "35.00", nil)
	return repo, db, kitchen
}

func TestFilter_NoConstraintsReturnsEverything(t *testing.T) {
	repo, _, _ := catalogFixture(t)

	products, err := repo.Filter(context.Background(), repositories.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestFilter_SearchMatchesNameOrDescription(t *testing.T) {
	repo, _, _ := catalogFixture(t)

	// "coffee" appears in the mug's description and the desk's description.
	products, err := repo.Filter(context.Background(), repositories.ProductFilter{Search: "COFFEE"})
	require.NoError(t, err)
	require.Len(t, products, 2)

	products, err = repo.Filter(context.Background(), repositories.ProductFilter{Search: "desk"})
	require.NoError(t, err)
	assert.Len(t, products, 2, "substring matches Walnut Desk and Desk Lamp")

	products, err = repo.Filter(context.Background(), repositories.ProductFilter{Search: "teapot"})
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestFilter_PriceRange(t *testing.T) {
	repo, _, _ := catalogFixture(t)
	min := decimal.RequireFromString("20.00")
	max := decimal.RequireFromString("100.00")

	products, err := repo.Filter(context.Background(), repositories.ProductFilter{MinPrice: &min, MaxPrice: &max})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Desk Lamp", products[0].Name)

	// Bounds are inclusive.
	edge := decimal.RequireFromString("12.50")
	products, err = repo.Filter(context.Background(), repositories.ProductFilter{MinPrice: &edge, MaxPrice: &edge})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Ceramic Mug", products[0].Name)
}

func TestFilter_InvertedRangeIsEmptyNotError(t *testing.T) {
	repo, _, _ := catalogFixture(t)
	min := decimal.RequireFromString("100.00")
	max := decimal.RequireFromString("20.00")

	products, err := repo.Filter(context.Background(), repositories.ProductFilter{MinPrice: &min, MaxPrice: &max})
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestFilter_CombinesIndependentPredicates(t *testing.T) {
	repo, _, kitchen := catalogFixture(t)
	max := decimal.RequireFromString("50.00")

	products, err := repo.Filter(context.Background(), repositories.ProductFilter{
		Search:     "coffee",
		CategoryID: kitchen.ID,
		MaxPrice:   &max,
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Ceramic Mug", products[0].Name)
}

func TestGetBySlug(t *testing.T) {
	repo, _, _ := catalogFixture(t)

	product, err := repo.GetBySlug(context.Background(), "ceramic-mug")
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Ceramic Mug", product.Name)

	product, err = repo.GetBySlug(context.Background(), "no-such-slug")
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestGetByCategoryName(t *testing.T) {
	repo, _, _ := catalogFixture(t)

	products, err := repo.GetByCategoryName(context.Background(), "Kitchen")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Ceramic Mug", products[0].Name)

	products, err = repo.GetByCategoryName(context.Background(), "Garage")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestDeleteCategoryOrphansProducts(t *testing.T) {
	repo, db, kitchen := catalogFixture(t)

	require.NoError(t, db.Delete(&models.Category{}, "id = ?", kitchen.ID).Error)

	product, err := repo.GetBySlug(context.Background(), "ceramic-mug")
	require.NoError(t, err)
	require.NotNil(t, product, "products survive their category")
	assert.Nil(t, product.CategoryID)
}
