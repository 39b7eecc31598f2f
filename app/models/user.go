package models

import (
	"time"
)

type User struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	FirstName string `gorm:"size:100;not null"`
	LastName  string `gorm:"size:100"`
	Email     string `gorm:"size:100;not null;uniqueIndex"`
	Phone     string `gorm:"size:20"`
	Password  string `gorm:"size:255;not null"`
	Role      string `gorm:"size:20;default:'customer';not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
