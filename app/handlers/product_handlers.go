package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/nandasafiq/go-storefront/app/helpers"
	"github.com/nandasafiq/go-storefront/app/repositories"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	repo   repositories.ProductRepositoryImpl
	render *render.Render
}

func NewProductHandler(repo repositories.ProductRepositoryImpl, r *render.Render) *ProductHandler {
	return &ProductHandler{repo, r}
}

func (h *ProductHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productSlug := vars["slug"]

	if productSlug == "" {
		http.NotFound(w, r)
		return
	}

	product, err := h.repo.GetBySlug(r.Context(), productSlug)
	if err != nil {
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.NotFound(w, r)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":   product.Name,
		"Product": product,
	})

	_ = h.render.HTML(w, http.StatusOK, "product", data)
}
