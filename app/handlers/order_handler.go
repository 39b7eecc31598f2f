package handlers

import (
	"log"
	"net/http"

	"github.com/nandasafiq/go-storefront/app/helpers"
	"github.com/nandasafiq/go-storefront/app/repositories"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	render    *render.Render
	orderRepo repositories.OrderRepositoryImpl
}

func NewOrderHandler(r *render.Render, orderRepo repositories.OrderRepositoryImpl) *OrderHandler {
	return &OrderHandler{
		render:    r,
		orderRepo: orderRepo,
	}
}

func (h *OrderHandler) OrderListGet(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r.Context())

	orders, err := h.orderRepo.FindByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("OrderHandler.OrderListGet: failed to load orders for user %s: %v", userID, err)
		http.Error(w, "Failed to load orders", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":  "My Orders",
		"Orders": orders,
	})

	_ = h.render.HTML(w, http.StatusOK, "order_list", data)
}
