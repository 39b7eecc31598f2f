package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/nandasafiq/go-storefront/app/models"
	"github.com/nandasafiq/go-storefront/app/repositories"
	"github.com/shopspring/decimal"
)

// DashboardFilter carries the raw query-string filters. Values arrive as
// strings straight from the request; unparseable ones are skipped, never
// surfaced as errors.
type DashboardFilter struct {
	Status   string
	Category string
	Days     string
}

type DashboardSummary struct {
	Orders        []models.Order
	Products      []models.Product
	TotalSales    decimal.Decimal
	TotalOrders   int
	TotalProducts int
}

type DashboardService struct {
	orderRepo   repositories.OrderRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
}

func NewDashboardService(orderRepo repositories.OrderRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *DashboardService {
	return &DashboardService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// Summarize builds the dashboard report: orders narrowed by paid status and
// recency, products narrowed by exact category name, and the headline
// aggregates over the result.
func (s *DashboardService) Summarize(ctx context.Context, filter DashboardFilter) (*DashboardSummary, error) {
	orderFilter := repositories.OrderFilter{}

	switch filter.Status {
	case "paid":
		orderFilter.Status = models.OrderStatusPaid
	case "unpaid":
		orderFilter.Status = models.OrderStatusActive
	}

	if filter.Days != "" {
		if days, err := strconv.Atoi(filter.Days); err == nil && days > 0 {
			cutoff := time.Now().AddDate(0, 0, -days)
			orderFilter.Since = &cutoff
		}
	}

	orders, err := s.orderRepo.FindFiltered(ctx, orderFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	var products []models.Product
	if filter.Category != "" {
		products, err = s.productRepo.GetByCategoryName(ctx, filter.Category)
	} else {
		products, err = s.productRepo.Filter(ctx, repositories.ProductFilter{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	totalSales := decimal.Zero
	for _, order := range orders {
		if !order.IsPaid() {
			continue
		}
		for _, item := range order.OrderItems {
			// TODO: revenue sums unit prices only; confirm whether line
			// totals (price × quantity) were intended before changing this.
			totalSales = totalSales.Add(item.Price)
		}
	}

	return &DashboardSummary{
		Orders:        orders,
		Products:      products,
		TotalSales:    totalSales,
		TotalOrders:   len(orders),
		TotalProducts: len(products),
	}, nil
}
