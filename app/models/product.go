package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	CategoryID  *string         `gorm:"size:36;index"`
	Category    *Category       `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Name        string          `gorm:"size:255;not null"`
	Slug        string          `gorm:"size:255;not null;uniqueIndex"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	Image       string          `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

func (p *Product) BeforeSave(tx *gorm.DB) (err error) {
	if p.Slug == "" {
		p.Slug = slug.Make(p.Name)
	}
	return
}

// ImageURL returns the stored image path, falling back to a keyword-based
// stock photo when the product has no image of its own.
func (p *Product) ImageURL() string {
	if p.Image != "" {
		return p.Image
	}
	keyword := strings.ReplaceAll(p.Name, " ", "+")
	return fmt.Sprintf("https://source.unsplash.com/400x300/?%s", keyword)
}
