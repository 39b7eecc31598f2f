package helpers

import (
	"net/http"
	"strings"

	"github.com/gorilla/csrf"
)

// GetBaseData fills the template context every page shares: the acting
// user, the cart badge count, flash-style messages carried in the query
// string, and the CSRF token.
func GetBaseData(r *http.Request, pageSpecificData map[string]interface{}) map[string]interface{} {
	if pageSpecificData == nil {
		pageSpecificData = make(map[string]interface{})
	}

	if _, exists := pageSpecificData["Title"]; !exists {
		pageSpecificData["Title"] = "Storefront"
	}

	userID := GetUserIDFromContext(r.Context())
	pageSpecificData["UserID"] = userID
	pageSpecificData["IsLoggedIn"] = userID != ""
	pageSpecificData["User"] = UserForTemplate(GetUserFromContext(r.Context()))

	if cartCountVal := r.Context().Value(CartCountKey); cartCountVal != nil {
		if count, ok := cartCountVal.(int); ok {
			pageSpecificData["CartCount"] = count
		}
	}
	if _, exists := pageSpecificData["CartCount"]; !exists {
		pageSpecificData["CartCount"] = 0
	}

	if _, exists := pageSpecificData["MessageStatus"]; !exists {
		pageSpecificData["MessageStatus"] = r.URL.Query().Get("status")
	}
	if _, exists := pageSpecificData["Message"]; !exists {
		pageSpecificData["Message"] = r.URL.Query().Get("message")
	}

	pageSpecificData["CSRFToken"] = csrf.Token(r)
	pageSpecificData["Query"] = r.URL.Query()
	pageSpecificData["CurrentPath"] = r.URL.Path
	pageSpecificData["IsAdminRoute"] = strings.HasPrefix(r.URL.Path, "/admin/")

	return pageSpecificData
}
