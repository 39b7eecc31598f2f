package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Category struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name      string    `gorm:"size:100;not null;uniqueIndex"`
	Slug      string    `gorm:"size:100;not null;uniqueIndex"`
	Products  []Product `gorm:"foreignKey:CategoryID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

// BeforeSave derives the slug from the name when none was supplied.
func (c *Category) BeforeSave(tx *gorm.DB) (err error) {
	if c.Slug == "" {
		c.Slug = slug.Make(c.Name)
	}
	return
}
