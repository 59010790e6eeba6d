package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pricecart/pricecart/internal/auth"
	"github.com/pricecart/pricecart/internal/geo"
	"github.com/pricecart/pricecart/internal/model"
	"github.com/pricecart/pricecart/internal/store"
	"github.com/pricecart/pricecart/internal/websocket"
)

type MembershipHandler struct {
	membershipStore *store.MembershipStore
	hub             *websocket.Hub
	logger          *slog.Logger
}

func NewMembershipHandler(ms *store.MembershipStore, hub *websocket.Hub, logger *slog.Logger) *MembershipHandler {
	return &MembershipHandler{
		membershipStore: ms,
		hub:             hub,
		logger:          logger,
	}
}

// requiredFields returns which membership fields a store's form collects.
func requiredFields(storeName string) []string {
	switch storeName {
	case "Costco", "Kroger", "Busch's":
		return []string{"membership_number", "email", "phone"}
	case "Meijer's":
		return []string{"membership_number", "email", "phone", "card_number"}
	case "Walmart", "Aldi":
		return []string{"email", "phone"}
	default:
		return []string{"email", "phone"}
	}
}

func missingFields(m *model.Membership, required []string) []string {
	var missing []string
	for _, f := range required {
		var v string
		switch f {
		case "membership_number":
			v = m.MembershipNumber
		case "email":
			v = m.Email
		case "phone":
			v = m.Phone
		case "card_number":
			v = m.CardNumber
		}
		if strings.TrimSpace(v) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

func (h *MembershipHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req model.Membership
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	req.Store = strings.TrimSpace(req.Store)
	if req.Store == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "store is required"})
		return
	}
	if geo.StoreByName(req.Store) == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown store"})
		return
	}
	if missing := missingFields(&req, requiredFields(req.Store)); len(missing) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "missing required fields",
			"missing": missing,
		})
		return
	}

	userID := auth.UserID(r.Context())
	req.UserID = userID

	m, err := h.membershipStore.Save(&req)
	if err != nil {
		h.logger.Error("save membership", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save membership"})
		return
	}

	h.hub.NotifyUser(userID, websocket.NewMessage("membership", "saved", m.ID, map[string]any{"store": m.Store}))
	writeJSON(w, http.StatusOK, m)
}

func (h *MembershipHandler) List(w http.ResponseWriter, r *http.Request) {
	memberships, err := h.membershipStore.ListByUser(auth.UserID(r.Context()))
	if err != nil {
		h.logger.Error("list memberships", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load memberships"})
		return
	}
	if memberships == nil {
		memberships = []*model.Membership{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"memberships": memberships})
}

func (h *MembershipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid membership id"})
		return
	}

	userID := auth.UserID(r.Context())
	if err := h.membershipStore.Delete(userID, id); err != nil {
		h.logger.Error("delete membership", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete membership"})
		return
	}

	h.hub.NotifyUser(userID, websocket.NewMessage("membership", "deleted", id, nil))
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
