package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pricecart/pricecart/internal/auth"
	"github.com/pricecart/pricecart/internal/geo"
	"github.com/pricecart/pricecart/internal/geocode"
	"github.com/pricecart/pricecart/internal/store"
	"github.com/pricecart/pricecart/internal/websocket"
)

// LocationHandler manages the session's active zipcode: manual entry,
// browser-coordinate resolution, and readback.
type LocationHandler struct {
	sessionStore *store.SessionStore
	geocoder     *geocode.Client
	hub          *websocket.Hub
	logger       *slog.Logger
}

func NewLocationHandler(ss *store.SessionStore, gc *geocode.Client, hub *websocket.Hub, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{
		sessionStore: ss,
		geocoder:     gc,
		hub:          hub,
		logger:       logger,
	}
}

func (h *LocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	zipcode := auth.Zipcode(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"zipcode":  zipcode,
		"resolved": zipcode != "" && zipcode != geo.UnknownZipcode,
	})
}

// Set accepts a manually entered zipcode and stores it on the session.
func (h *LocationHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Zipcode string `json:"zipcode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	req.Zipcode = strings.TrimSpace(req.Zipcode)
	if !geo.ValidZipcode(req.Zipcode) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "zipcode must be 5 or 6 digits"})
		return
	}

	h.saveZipcode(w, r, req.Zipcode)
}

// Resolve turns browser coordinates into a zipcode via reverse geocoding.
// Resolution failure stores the unknown sentinel, which disables distance
// filtering rather than erroring.
func (h *LocationHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	zipcode := h.geocoder.Zipcode(r.Context(), req.Latitude, req.Longitude)
	h.saveZipcode(w, r, zipcode)
}

func (h *LocationHandler) saveZipcode(w http.ResponseWriter, r *http.Request, zipcode string) {
	ac, _ := auth.FromContext(r.Context())
	if err := h.sessionStore.UpdateZipcode(ac.SessionID, zipcode); err != nil {
		h.logger.Error("update zipcode", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save location"})
		return
	}

	h.hub.NotifyUser(ac.UserID, websocket.NewMessage("location", "updated", 0, map[string]any{"zipcode": zipcode}))
	writeJSON(w, http.StatusOK, map[string]any{
		"zipcode":  zipcode,
		"resolved": zipcode != geo.UnknownZipcode,
	})
}
