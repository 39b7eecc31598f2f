package admin

import (
	"log"
	"net/http"

	"github.com/nandasafiq/go-storefront/app/helpers"
	"github.com/nandasafiq/go-storefront/app/repositories"
	"github.com/nandasafiq/go-storefront/app/services"
	"github.com/unrolled/render"
)

type DashboardHandler struct {
	render       *render.Render
	dashboardSvc *services.DashboardService
	orderRepo    repositories.OrderRepositoryImpl
}

func NewDashboardHandler(r *render.Render, dashboardSvc *services.DashboardService, orderRepo repositories.OrderRepositoryImpl) *DashboardHandler {
	return &DashboardHandler{
		render:       r,
		dashboardSvc: dashboardSvc,
		orderRepo:    orderRepo,
	}
}

// GetDashboard renders the sales report. All three filters are optional
// query parameters; bad values fall away without an error.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := services.DashboardFilter{
		Status:   query.Get("status"),
		Category: query.Get("category"),
		Days:     query.Get("days"),
	}

	summary, err := h.dashboardSvc.Summarize(r.Context(), filter)
	if err != nil {
		log.Printf("DashboardHandler.GetDashboard: summarize failed: %v", err)
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":         "Dashboard",
		"Orders":        summary.Orders,
		"Products":      summary.Products,
		"TotalSales":    summary.TotalSales,
		"TotalOrders":   summary.TotalOrders,
		"TotalProducts": summary.TotalProducts,
		"Status":        filter.Status,
		"Category":      filter.Category,
		"Days":          filter.Days,
	})

	_ = h.render.HTML(w, http.StatusOK, "admin/dashboard", data)
}

// ManageOrders lists every order in the store, newest first.
func (h *DashboardHandler) ManageOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("DashboardHandler.ManageOrders: failed to load orders: %v", err)
		http.Error(w, "Failed to load orders", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":  "Manage Orders",
		"Orders": orders,
	})

	_ = h.render.HTML(w, http.StatusOK, "admin/orders", data)
}
