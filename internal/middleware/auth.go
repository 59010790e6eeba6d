package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/pricecart/pricecart/internal/auth"
	"github.com/pricecart/pricecart/internal/store"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "pricecart_session"

// RequireAuth validates the session cookie and populates AuthContext.
// API callers get a 401 JSON body rather than a redirect.
func RequireAuth(sessionStore *store.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				unauthorized(w)
				return
			}

			sess, err := sessionStore.GetByToken(cookie.Value)
			if err != nil || sess == nil {
				unauthorized(w)
				return
			}

			ac := auth.AuthContext{
				UserID:    sess.UserID,
				SessionID: sess.ID,
				Zipcode:   sess.Zipcode,
			}

			ctx := auth.WithAuth(r.Context(), ac)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "authentication required"})
}
