package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order status is a two-state machine: the active order doubles as the
// user's shopping cart, checkout moves it to paid and there is no way back.
const (
	OrderStatusActive = 1
	OrderStatusPaid   = 2
)

type Order struct {
	ID              string      `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID          *string     `gorm:"size:36;index"`
	User            *User       `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	Status          int         `gorm:"not null;default:1;index"`
	ShippingAddress string      `gorm:"type:text"`
	OrderItems      []OrderItem `gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}

func (o *Order) IsPaid() bool {
	return o.Status == OrderStatusPaid
}

// Total sums the line totals of the loaded items.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.OrderItems {
		total = total.Add(item.TotalPrice())
	}
	return total
}

// ItemCount sums the quantities of the loaded items.
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.OrderItems {
		count += item.Quantity
	}
	return count
}
