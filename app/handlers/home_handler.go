package handlers

import (
	"net/http"

	"github.com/nandasafiq/go-storefront/app/helpers"
	"github.com/nandasafiq/go-storefront/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type HomeHandler struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	render       *render.Render
}

func NewHomeHandler(productRepo repositories.ProductRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl, r *render.Render) *HomeHandler {
	return &HomeHandler{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		render:       r,
	}
}

// Home lists the catalog. Filters come straight from the query string and
// are each optional: q (name/description search), category (slug), and a
// min_price/max_price range. Values that do not parse are dropped silently.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := repositories.ProductFilter{Search: query.Get("q")}

	if categorySlug := query.Get("category"); categorySlug != "" {
		category, err := h.categoryRepo.GetBySlug(r.Context(), categorySlug)
		if err == nil && category != nil {
			filter.CategoryID = category.ID
		}
	}
	if raw := query.Get("min_price"); raw != "" {
		if value, err := decimal.NewFromString(raw); err == nil {
			filter.MinPrice = &value
		}
	}
	if raw := query.Get("max_price"); raw != "" {
		if value, err := decimal.NewFromString(raw); err == nil {
			filter.MaxPrice = &value
		}
	}

	products, err := h.productRepo.Filter(r.Context(), filter)
	if err != nil {
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}

	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		http.Error(w, "Failed to load categories", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       "Storefront",
		"Products":    products,
		"Categories":  categories,
		"SearchQuery": query.Get("q"),
		"Category":    query.Get("category"),
	})

	_ = h.render.HTML(w, http.StatusOK, "home", data)
}
