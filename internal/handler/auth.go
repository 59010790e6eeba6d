package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pricecart/pricecart/internal/auth"
	"github.com/pricecart/pricecart/internal/middleware"
	"github.com/pricecart/pricecart/internal/store"
)

type AuthHandler struct {
	userStore    *store.UserStore
	sessionStore *store.SessionStore
	logger       *slog.Logger
}

func NewAuthHandler(us *store.UserStore, ss *store.SessionStore, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		userStore:    us,
		sessionStore: ss,
		logger:       logger,
	}
}

// digitsOnly strips display formatting from a phone number, so
// "(810) 293-1752" matches the stored "8102931752".
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   7 * 24 * 60 * 60,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CountryCode  string `json:"country_code"`
		MobileNumber string `json:"mobile_number"`
		Password     string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	req.CountryCode = strings.TrimSpace(req.CountryCode)
	req.MobileNumber = digitsOnly(req.MobileNumber)
	if req.CountryCode == "" || req.MobileNumber == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "country code, mobile number, and password are required"})
		return
	}

	user, err := h.userStore.Authenticate(req.CountryCode, req.MobileNumber, req.Password)
	if err != nil {
		h.logger.Error("authenticate", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "login failed"})
		return
	}
	if user == nil {
		// Same response for unknown number and wrong password.
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}

	sess, err := h.sessionStore.Create(user.ID)
	if err != nil {
		h.logger.Error("create session", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "login failed"})
		return
	}

	h.setSessionCookie(w, sess.Token)
	h.logger.Info("user logged in", "user_id", user.ID)
	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName        string `json:"full_name"`
		CountryCode     string `json:"country_code"`
		MobileNumber    string `json:"mobile_number"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	req.FullName = strings.TrimSpace(req.FullName)
	req.CountryCode = strings.TrimSpace(req.CountryCode)
	req.MobileNumber = digitsOnly(req.MobileNumber)
	if req.FullName == "" || req.CountryCode == "" || req.MobileNumber == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name, country code, and mobile number are required"})
		return
	}
	if len(req.MobileNumber) != 10 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "mobile number must be 10 digits"})
		return
	}
	if len(req.Password) < 6 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "password must be at least 6 characters"})
		return
	}
	if req.Password != req.ConfirmPassword {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "passwords do not match"})
		return
	}

	existing, err := h.userStore.GetByMobile(req.CountryCode, req.MobileNumber)
	if err != nil {
		h.logger.Error("register lookup", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "registration failed"})
		return
	}
	if existing != nil {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "mobile number already registered"})
		return
	}

	user, err := h.userStore.Create(req.FullName, req.CountryCode, req.MobileNumber, req.Password)
	if err != nil {
		h.logger.Error("create user", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "registration failed"})
		return
	}

	sess, err := h.sessionStore.Create(user.ID)
	if err != nil {
		h.logger.Error("create session", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "registration failed"})
		return
	}

	h.setSessionCookie(w, sess.Token)
	h.logger.Info("user registered", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if ac, ok := auth.FromContext(r.Context()); ok {
		if err := h.sessionStore.Delete(ac.SessionID); err != nil {
			h.logger.Error("delete session", "error", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.userStore.GetByID(auth.UserID(r.Context()))
	if err != nil {
		h.logger.Error("get user", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load profile"})
		return
	}
	if user == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "user not found"})
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpdateProfile changes the user's name and mobile number, and optionally
// the password when one is supplied.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName        string `json:"full_name"`
		CountryCode     string `json:"country_code"`
		MobileNumber    string `json:"mobile_number"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	req.FullName = strings.TrimSpace(req.FullName)
	if req.FullName == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	userID := auth.UserID(r.Context())
	current, err := h.userStore.GetByID(userID)
	if err != nil || current == nil {
		h.logger.Error("load profile", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update profile"})
		return
	}

	// Absent mobile fields keep the current values.
	countryCode := strings.TrimSpace(req.CountryCode)
	if countryCode == "" {
		countryCode = current.CountryCode
	}
	mobileNumber := digitsOnly(req.MobileNumber)
	if mobileNumber == "" {
		mobileNumber = current.MobileNumber
	}
	if len(mobileNumber) != 10 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "mobile number must be 10 digits"})
		return
	}
	if mobileNumber != current.MobileNumber || countryCode != current.CountryCode {
		existing, err := h.userStore.GetByMobile(countryCode, mobileNumber)
		if err != nil {
			h.logger.Error("profile mobile lookup", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update profile"})
			return
		}
		if existing != nil && existing.ID != userID {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "mobile number already registered"})
			return
		}
	}

	if req.Password != "" {
		if len(req.Password) < 6 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "password must be at least 6 characters"})
			return
		}
		if req.Password != req.ConfirmPassword {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "passwords do not match"})
			return
		}
		if err := h.userStore.UpdatePassword(userID, req.Password); err != nil {
			h.logger.Error("update password", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update profile"})
			return
		}
	}

	user, err := h.userStore.UpdateProfile(userID, req.FullName, countryCode, mobileNumber)
	if err != nil {
		h.logger.Error("update profile", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update profile"})
		return
	}
	writeJSON(w, http.StatusOK, user)
}
