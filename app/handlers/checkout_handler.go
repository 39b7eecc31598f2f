package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/nandasafiq/go-storefront/app/helpers"
	"github.com/nandasafiq/go-storefront/app/services"
	"github.com/unrolled/render"
)

type CheckoutHandler struct {
	cartSvc     *services.CartService
	checkoutSvc *services.CheckoutService
	render      *render.Render
	validator   *validator.Validate
}

func NewCheckoutHandler(cartSvc *services.CartService, checkoutSvc *services.CheckoutService, r *render.Render, v *validator.Validate) *CheckoutHandler {
	return &CheckoutHandler{
		cartSvc:     cartSvc,
		checkoutSvc: checkoutSvc,
		render:      r,
		validator:   v,
	}
}

type CheckoutForm struct {
	ShippingAddress string `form:"shipping_address" validate:"max=500"`
}

// CheckoutGet shows the checkout form for a non-empty cart; an empty or
// missing cart goes back to the home page instead of erroring.
func (h *CheckoutHandler) CheckoutGet(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r.Context())

	order, err := h.cartSvc.GetActiveOrder(r.Context(), userID)
	if err != nil {
		log.Printf("CheckoutHandler.CheckoutGet: failed to load cart for user %s: %v", userID, err)
		http.Error(w, "Failed to load cart", http.StatusInternalServerError)
		return
	}
	if order == nil || len(order.OrderItems) == 0 {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Checkout",
		"Order": order,
	})

	_ = h.render.HTML(w, http.StatusOK, "checkout", data)
}

// CheckoutPost finalizes the active order.
func (h *CheckoutHandler) CheckoutPost(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		redirectWithMessage(w, r, "/checkout", "error", "Failed to read the form.")
		return
	}

	form := CheckoutForm{ShippingAddress: r.FormValue("shipping_address")}
	if err := h.validator.Struct(form); err != nil {
		redirectWithMessage(w, r, "/checkout", "error", "Shipping address is too long.")
		return
	}

	_, err := h.checkoutSvc.Checkout(r.Context(), userID, form.ShippingAddress)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		log.Printf("CheckoutHandler.CheckoutPost: checkout failed for user %s: %v", userID, err)
		redirectWithMessage(w, r, "/checkout", "error", "Checkout failed, please try again.")
		return
	}

	http.Redirect(w, r, "/order-success", http.StatusSeeOther)
}

func (h *CheckoutHandler) OrderSuccess(w http.ResponseWriter, r *http.Request) {
	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Order Placed",
	})
	_ = h.render.HTML(w, http.StatusOK, "order_success", data)
}
