package middlewares

import (
	"log"
	"net/http"
	"net/url"

	"github.com/nandasafiq/go-storefront/app/helpers"
	"github.com/nandasafiq/go-storefront/app/models"
)

func AdminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := helpers.GetUserFromContext(r.Context())
		if user == nil {
			http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("You must be logged in to access the dashboard."), http.StatusFound)
			return
		}

		if user.Role != models.RoleAdmin {
			log.Printf("AdminAuthMiddleware: user %s (%s) attempted to access the dashboard without the admin role.", user.ID, user.Email)
			http.Redirect(w, r, "/?status=error&message="+url.QueryEscape("You do not have permission to access this page."), http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}
