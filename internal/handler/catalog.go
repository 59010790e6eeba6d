package handler

import (
	"log/slog"
	"net/http"

	"github.com/pricecart/pricecart/internal/auth"
	"github.com/pricecart/pricecart/internal/catalog"
	"github.com/pricecart/pricecart/internal/geo"
	"github.com/pricecart/pricecart/internal/model"
)

// CatalogHandler serves the fixed product catalog through the browsing
// pipeline: zipcode distances first, then category/search/store/sort.
type CatalogHandler struct {
	logger *slog.Logger
}

func NewCatalogHandler(logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{logger: logger}
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	items := catalog.Items()
	total := len(items)
	items = geo.ApplyZipcode(items, auth.Zipcode(r.Context()))
	items = catalog.Filter(items, catalog.Query{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Stores:   splitParam(q.Get("stores")),
		Sort:     q.Get("sort"),
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"products": items,
		"count":    len(items),
		"total":    total,
	})
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product id"})
		return
	}

	p := catalog.ProductByID(id)
	if p == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}

	items := geo.ApplyZipcode([]model.Product{*p}, auth.Zipcode(r.Context()))
	product := items[0]
	product.StorePrices = catalog.StorePricesFor(&product, splitParam(r.URL.Query().Get("stores")))

	writeJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	zipcode := auth.Zipcode(r.Context())

	type storeView struct {
		geo.StoreInfo
		Distance float64 `json:"distance"`
	}

	var distances map[string]float64
	if zipcode != "" && zipcode != geo.UnknownZipcode {
		distances = geo.StoreDistances(zipcode)
	}

	stores := make([]storeView, 0, len(geo.Stores))
	for _, s := range geo.Stores {
		v := storeView{StoreInfo: s}
		if distances != nil {
			v.Distance = distances[s.Name]
		}
		stores = append(stores, v)
	}

	writeJSON(w, http.StatusOK, map[string]any{"stores": stores})
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"categories": catalog.CategoryLabels})
}
