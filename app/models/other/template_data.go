package other

import (
	"net/url"

	"github.com/nandasafiq/go-storefront/app/models"
)

// UserForTemplate carries only the user fields templates are allowed to see.
type UserForTemplate struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Role      string
}

type BasePageData struct {
	Title         string
	IsLoggedIn    bool
	User          *UserForTemplate
	UserID        string
	CartCount     int
	CSRFToken     string
	Message       string
	MessageStatus string
	Query         url.Values
	CurrentPath   string
	IsAdminRoute  bool

	Order  *models.Order
	Orders []models.Order
}
