package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem is one product line of an order. Price is a snapshot of the
// product price at the time the line was added, so later catalog price
// changes never touch an existing cart or a paid order.
type OrderItem struct {
	ID        string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	OrderID   string          `gorm:"size:36;not null;index"`
	Order     Order           `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	ProductID string          `gorm:"size:36;not null;index"`
	Product   Product         `gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:RESTRICT"`
	Price     decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	Quantity  int             `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if oi.ID == "" {
		oi.ID = uuid.New().String()
	}
	return
}

func (oi *OrderItem) TotalPrice() decimal.Decimal {
	return oi.Price.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}
