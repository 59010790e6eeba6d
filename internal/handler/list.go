package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pricecart/pricecart/internal/auth"
	"github.com/pricecart/pricecart/internal/catalog"
	"github.com/pricecart/pricecart/internal/geo"
	"github.com/pricecart/pricecart/internal/model"
	"github.com/pricecart/pricecart/internal/store"
	"github.com/pricecart/pricecart/internal/websocket"
)

type ListHandler struct {
	listStore *store.ListStore
	hub       *websocket.Hub
	logger    *slog.Logger
}

func NewListHandler(ls *store.ListStore, hub *websocket.Hub, logger *slog.Logger) *ListHandler {
	return &ListHandler{
		listStore: ls,
		hub:       hub,
		logger:    logger,
	}
}

// Add snapshots a catalog product into the user's list at the price and
// distance of the chosen store.
func (h *ListHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID int64  `json:"product_id"`
		Store     string `json:"store"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	product := catalog.ProductByID(req.ProductID)
	if product == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}

	userID := auth.UserID(r.Context())
	zipcode := auth.Zipcode(r.Context())
	priced := geo.ApplyZipcode([]model.Product{*product}, zipcode)[0]

	// Default to the cheapest store when none was chosen.
	storeName := strings.TrimSpace(req.Store)
	var chosen *model.StorePrice
	for i := range priced.StorePrices {
		sp := &priced.StorePrices[i]
		if storeName == "" {
			if chosen == nil || sp.Price < chosen.Price {
				chosen = sp
			}
		} else if sp.Store == storeName {
			chosen = sp
			break
		}
	}
	if chosen == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "product not available at that store"})
		return
	}

	item, err := h.listStore.Add(&model.ListItem{
		UserID:       userID,
		ProductID:    product.ID,
		ProductName:  product.Name,
		ProductImage: product.Image,
		ProductSize:  product.Size,
		Store:        chosen.Store,
		Price:        chosen.Price,
		Distance:     chosen.Distance,
		Quantity:     req.Quantity,
	})
	if errors.Is(err, store.ErrDuplicateItem) {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "product already in list"})
		return
	}
	if err != nil {
		h.logger.Error("add list item", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to add item"})
		return
	}

	h.hub.NotifyUser(userID, websocket.NewMessage("list_item", "created", item.ID, map[string]any{"product_id": item.ProductID}))
	writeJSON(w, http.StatusCreated, item)
}

func (h *ListHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	items, err := h.listStore.ListByUser(userID)
	if err != nil {
		h.logger.Error("list items", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load list"})
		return
	}
	total, err := h.listStore.Total(userID)
	if err != nil {
		h.logger.Error("list total", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load list"})
		return
	}

	if items == nil {
		items = []*model.ListItem{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": items,
		"total": total,
	})
}

// UpdateQuantity applies a signed change to a list item's quantity.
// Dropping to zero or below removes the item.
func (h *ListHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid item id"})
		return
	}

	var req struct {
		Change int `json:"change"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	userID := auth.UserID(r.Context())
	existing, err := h.listStore.GetByID(id)
	if err != nil {
		h.logger.Error("get list item", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update quantity"})
		return
	}
	if existing == nil || existing.UserID != userID {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}

	item, err := h.listStore.UpdateQuantity(userID, id, existing.Quantity+req.Change)
	if err != nil {
		h.logger.Error("update quantity", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update quantity"})
		return
	}

	if item == nil {
		// Quantity dropped to zero; the row is gone.
		h.hub.NotifyUser(userID, websocket.NewMessage("list_item", "deleted", id, nil))
		writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
		return
	}

	h.hub.NotifyUser(userID, websocket.NewMessage("list_item", "updated", item.ID, map[string]any{"quantity": item.Quantity}))
	writeJSON(w, http.StatusOK, item)
}

func (h *ListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid item id"})
		return
	}

	userID := auth.UserID(r.Context())
	if err := h.listStore.Delete(userID, id); err != nil {
		h.logger.Error("delete list item", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete item"})
		return
	}

	h.hub.NotifyUser(userID, websocket.NewMessage("list_item", "deleted", id, nil))
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *ListHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	if err := h.listStore.Clear(userID); err != nil {
		h.logger.Error("clear list", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to clear list"})
		return
	}

	h.hub.NotifyUser(userID, websocket.NewMessage("list", "cleared", 0, nil))
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
