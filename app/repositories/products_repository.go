package repositories

import (
	"context"
	"strings"

	"github.com/nandasafiq/go-storefront/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductFilter narrows a catalog listing. Every predicate is optional and
// independent; a zero value imposes no constraint.
type ProductFilter struct {
	Search     string
	CategoryID string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}

type ProductRepositoryImpl interface {
	Filter(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetByCategoryName(ctx context.Context, name string) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) Filter(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	var products []models.Product

	query := p.db.WithContext(ctx).Model(&models.Product{}).Preload("Category")

	if filter.Search != "" {
		keyword := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", keyword, keyword)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", filter.MaxPrice)
	}

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		First(&product, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		First(&product, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetByCategoryName(ctx context.Context, name string) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Joins("JOIN categories c ON c.id = products.category_id").
		Where("c.name = ?", name).
		Find(&products).Error
	return products, err
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Save(product).Error
}

func (p *productRepository) Delete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}

func (p *productRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := p.db.WithContext(ctx).Model(&models.Product{}).Count(&total).Error
	return total, err
}
