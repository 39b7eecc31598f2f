package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/nandasafiq/go-storefront/app/helpers"
	"github.com/nandasafiq/go-storefront/app/services"
	"github.com/unrolled/render"
)

type CartHandler struct {
	cartSvc *services.CartService
	render  *render.Render
}

func NewCartHandler(cartSvc *services.CartService, r *render.Render) *CartHandler {
	return &CartHandler{
		cartSvc: cartSvc,
		render:  r,
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r.Context())

	order, err := h.cartSvc.GetActiveOrder(r.Context(), userID)
	if err != nil {
		log.Printf("CartHandler.GetCart: failed to load cart for user %s: %v", userID, err)
		http.Error(w, "Failed to load cart", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Your Cart",
		"Order": order,
	})

	_ = h.render.HTML(w, http.StatusOK, "cart", data)
}

// AddItem puts a product into the cart. Quantity comes from the qty form
// value and defaults to one.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r.Context())
	productID := mux.Vars(r)["productID"]

	qty := 1
	if raw := r.FormValue("qty"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			redirectWithMessage(w, r, "/", "error", "Quantity must be a positive number.")
			return
		}
		qty = parsed
	}

	_, err := h.cartSvc.AddToCart(r.Context(), userID, productID, qty)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			redirectWithMessage(w, r, "/", "error", "That product does not exist.")
			return
		}
		log.Printf("CartHandler.AddItem: failed to add product %s for user %s: %v", productID, userID, err)
		redirectWithMessage(w, r, "/", "error", "Failed to add the product to your cart.")
		return
	}

	redirectWithMessage(w, r, "/cart", "success", "Item added to your cart.")
}

// UpdateItem applies one increase/decrease step to a cart line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r.Context())
	itemID := mux.Vars(r)["itemID"]

	action, err := services.ParseQuantityAction(r.FormValue("action"))
	if err != nil {
		redirectWithMessage(w, r, "/cart", "error", "Unknown cart action.")
		return
	}

	if _, err := h.cartSvc.UpdateQuantity(r.Context(), userID, itemID, action); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			redirectWithMessage(w, r, "/cart", "error", "That item is not in your cart.")
			return
		}
		log.Printf("CartHandler.UpdateItem: failed to update item %s for user %s: %v", itemID, userID, err)
		redirectWithMessage(w, r, "/cart", "error", "Failed to update your cart.")
		return
	}

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r.Context())
	itemID := mux.Vars(r)["itemID"]

	if err := h.cartSvc.RemoveItem(r.Context(), userID, itemID); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			redirectWithMessage(w, r, "/cart", "error", "That item is not in your cart.")
			return
		}
		log.Printf("CartHandler.RemoveItem: failed to remove item %s for user %s: %v", itemID, userID, err)
		redirectWithMessage(w, r, "/cart", "error", "Failed to remove the item.")
		return
	}

	redirectWithMessage(w, r, "/cart", "success", "Item removed from your cart.")
}

func redirectWithMessage(w http.ResponseWriter, r *http.Request, path, status, message string) {
	http.Redirect(w, r, fmt.Sprintf("%s?status=%s&message=%s", path, status, url.QueryEscape(message)), http.StatusSeeOther)
}
