package routes

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/nandasafiq/go-storefront/app/configs"
	"github.com/nandasafiq/go-storefront/app/handlers"
	"github.com/nandasafiq/go-storefront/app/handlers/admin"
	"github.com/nandasafiq/go-storefront/app/middlewares"
	"github.com/nandasafiq/go-storefront/app/repositories"
	"github.com/nandasafiq/go-storefront/app/services"
	"github.com/nandasafiq/go-storefront/app/utils/renderer"
	"github.com/nandasafiq/go-storefront/app/utils/sessions"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB) (http.Handler, error) {
	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		return nil, err
	}

	render := renderer.New()
	validate := validator.New()
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)

	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	orderItemRepo := repositories.NewOrderItemRepository(db)
	userRepo := repositories.NewUserRepository(db)

	cartSvc := services.NewCartService(orderRepo, orderItemRepo, productRepo)
	checkoutSvc := services.NewCheckoutService(orderRepo)
	dashboardSvc := services.NewDashboardService(orderRepo, productRepo)

	homeHandler := handlers.NewHomeHandler(productRepo, categoryRepo, render)
	productHandler := handlers.NewProductHandler(productRepo, render)
	cartHandler := handlers.NewCartHandler(cartSvc, render)
	checkoutHandler := handlers.NewCheckoutHandler(cartSvc, checkoutSvc, render, validate)
	orderHandler := handlers.NewOrderHandler(render, orderRepo)
	authHandler := handlers.NewAuthHandler(render, userRepo, sessionStore, validate)
	dashboardHandler := admin.NewDashboardHandler(render, dashboardSvc, orderRepo)

	router := mux.NewRouter()
	router.Use(middlewares.MethodOverrideMiddleware)
	router.Use(middlewares.AuthContextMiddleware(sessionStore, userRepo))
	router.Use(middlewares.CartCountMiddleware(cartSvc))

	router.HandleFunc("/", homeHandler.Home).Methods("GET")
	router.HandleFunc("/products/{slug}", productHandler.ProductDetail).Methods("GET")

	router.HandleFunc("/login", authHandler.LoginGet).Methods("GET")
	router.HandleFunc("/login", authHandler.LoginPost).Methods("POST")
	router.HandleFunc("/register", authHandler.RegisterGet).Methods("GET")
	router.HandleFunc("/register", authHandler.RegisterPost).Methods("POST")
	router.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	authed := router.NewRoute().Subrouter()
	authed.Use(middlewares.RequireLoginMiddleware)
	authed.HandleFunc("/cart", cartHandler.GetCart).Methods("GET")
	authed.HandleFunc("/add-to-cart/{productID}", cartHandler.AddItem).Methods("POST")
	authed.HandleFunc("/cart/update/{itemID}", cartHandler.UpdateItem).Methods("POST")
	authed.HandleFunc("/cart/remove/{itemID}", cartHandler.RemoveItem).Methods("POST")
	authed.HandleFunc("/checkout", checkoutHandler.CheckoutGet).Methods("GET")
	authed.HandleFunc("/checkout", checkoutHandler.CheckoutPost).Methods("POST")
	authed.HandleFunc("/order-success", checkoutHandler.OrderSuccess).Methods("GET")
	authed.HandleFunc("/orders", orderHandler.OrderListGet).Methods("GET")

	adminRoutes := router.NewRoute().Subrouter()
	adminRoutes.Use(middlewares.AdminAuthMiddleware)
	adminRoutes.HandleFunc("/dashboard", dashboardHandler.GetDashboard).Methods("GET")
	adminRoutes.HandleFunc("/manage-orders", dashboardHandler.ManageOrders).Methods("GET")

	csrfKey := []byte(configs.LoadENV.CSRFKey)
	csrfMiddleware := csrf.Protect(csrfKey, csrf.Secure(configs.LoadENV.AppEnv == "production"))

	return csrfMiddleware(router), nil
}
