package middlewares

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/nandasafiq/go-storefront/app/helpers"
	"github.com/nandasafiq/go-storefront/app/repositories"
	"github.com/nandasafiq/go-storefront/app/services"
	"github.com/nandasafiq/go-storefront/app/utils/sessions"
)

// AuthContextMiddleware resolves the session user once per request and puts
// both the ID and the loaded user into the request context. Requests without
// a valid session pass through anonymously.
func AuthContextMiddleware(sessionStore sessions.SessionStore, userRepo repositories.UserRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sessionStore.GetUserID(r)
			if userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil || user == nil {
				log.Printf("AuthContextMiddleware: session user %s could not be loaded: %v", userID, err)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, user.ID)
			ctx = context.WithValue(ctx, helpers.ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireLoginMiddleware gates routes that only make sense with an
// authenticated user; anonymous requests are redirected to login.
func RequireLoginMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if helpers.GetUserIDFromContext(r.Context()) == "" {
			http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("You must be logged in to do that."), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CartCountMiddleware annotates the request with the cart badge count so
// every rendered page can show it without its handler caring.
func CartCountMiddleware(cartSvc *services.CartService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := helpers.GetUserIDFromContext(r.Context())
			if userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			count, err := cartSvc.ItemCount(r.Context(), userID)
			if err != nil {
				log.Printf("CartCountMiddleware: failed to count cart items for user %s: %v", userID, err)
				count = 0
			}

			ctx := context.WithValue(r.Context(), helpers.CartCountKey, count)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// MethodOverrideMiddleware lets HTML forms express PUT/DELETE via a hidden
// _method field.
func MethodOverrideMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			_ = r.ParseForm()
			override := r.Form.Get("_method")
			if override != "" {
				r.Method = strings.ToUpper(override)
			}
		}
		next.ServeHTTP(w, r)
	})
}
