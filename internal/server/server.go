package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/pricecart/pricecart/internal/archive"
	"github.com/pricecart/pricecart/internal/geocode"
	"github.com/pricecart/pricecart/internal/handler"
	"github.com/pricecart/pricecart/internal/middleware"
	"github.com/pricecart/pricecart/internal/store"
	ws "github.com/pricecart/pricecart/internal/websocket"
)

type Server struct {
	db           *sql.DB
	hub          *ws.Hub
	authH        *handler.AuthHandler
	catalogH     *handler.CatalogHandler
	listH        *handler.ListHandler
	receiptH     *handler.ReceiptHandler
	membershipH  *handler.MembershipHandler
	locationH    *handler.LocationHandler
	sessionStore *store.SessionStore
	rateLimiter  *middleware.RateLimiter
	logger       *slog.Logger
}

func New(db *sql.DB, geocoder *geocode.Client, archiveCfg archive.S3Config, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	userStore := store.NewUserStore(db)
	sessionStore := store.NewSessionStore(db)
	listStore := store.NewListStore(db)
	receiptStore := store.NewReceiptStore(db)
	membershipStore := store.NewMembershipStore(db)

	archiver := archive.New(archiveCfg, logger.With("component", "archive"))

	return &Server{
		db:           db,
		hub:          hub,
		authH:        handler.NewAuthHandler(userStore, sessionStore, logger.With("component", "auth")),
		catalogH:     handler.NewCatalogHandler(logger.With("component", "catalog")),
		listH:        handler.NewListHandler(listStore, hub, logger.With("component", "list")),
		receiptH:     handler.NewReceiptHandler(receiptStore, archiver, hub, logger.With("component", "receipt")),
		membershipH:  handler.NewMembershipHandler(membershipStore, hub, logger.With("component", "membership")),
		locationH:    handler.NewLocationHandler(sessionStore, geocoder, hub, logger.With("component", "location")),
		sessionStore: sessionStore,
		rateLimiter:  middleware.NewRateLimiter(),
		logger:       logger,
	}
}

// SessionStore returns the session store for cleanup tasks.
func (s *Server) SessionStore() *store.SessionStore {
	return s.sessionStore
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	outerMux := http.NewServeMux()

	// Public routes (no auth required)
	outerMux.HandleFunc("POST /api/auth/login", s.rateLimitedHandler(s.authH.Login))
	outerMux.HandleFunc("POST /api/auth/register", s.rateLimitedHandler(s.authH.Register))
	outerMux.HandleFunc("GET /health", s.healthHandler)

	// Protected routes — wrapped with RequireAuth middleware
	protectedMux := http.NewServeMux()
	s.registerProtectedRoutes(protectedMux)

	authMiddleware := middleware.RequireAuth(s.sessionStore)
	outerMux.Handle("/", authMiddleware(protectedMux))

	return middleware.RequestLogger(s.logger.With("component", "http"))(outerMux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	keyFunc := func(r *http.Request) string {
		return middleware.RealIP(r)
	}
	rl := middleware.RateLimit(s.rateLimiter, keyFunc, 10, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(http.HandlerFunc(h)).ServeHTTP(w, r)
	}
}

func (s *Server) registerProtectedRoutes(mux *http.ServeMux) {
	// Session routes
	mux.HandleFunc("POST /api/auth/logout", s.authH.Logout)
	mux.HandleFunc("GET /api/auth/me", s.authH.Me)
	mux.HandleFunc("PUT /api/auth/profile", s.authH.UpdateProfile)

	// Catalog routes
	mux.HandleFunc("GET /api/products", s.catalogH.ListProducts)
	mux.HandleFunc("GET /api/products/{id}", s.catalogH.GetProduct)
	mux.HandleFunc("GET /api/stores", s.catalogH.ListStores)
	mux.HandleFunc("GET /api/categories", s.catalogH.ListCategories)

	// Location routes
	mux.HandleFunc("GET /api/location", s.locationH.Get)
	mux.HandleFunc("PUT /api/location", s.locationH.Set)
	mux.HandleFunc("POST /api/location/resolve", s.locationH.Resolve)

	// My-list routes
	mux.HandleFunc("GET /api/list", s.listH.List)
	mux.HandleFunc("POST /api/list", s.listH.Add)
	mux.HandleFunc("PUT /api/list/{id}/quantity", s.listH.UpdateQuantity)
	mux.HandleFunc("DELETE /api/list/{id}", s.listH.Delete)
	mux.HandleFunc("DELETE /api/list", s.listH.Clear)

	// Receipt routes
	mux.HandleFunc("POST /api/receipts", s.receiptH.Upload)
	mux.HandleFunc("GET /api/receipts", s.receiptH.List)
	mux.HandleFunc("GET /api/receipts/{id}/download", s.receiptH.Download)
	mux.HandleFunc("DELETE /api/receipts/{id}", s.receiptH.Delete)

	// Membership routes
	mux.HandleFunc("POST /api/memberships", s.membershipH.Save)
	mux.HandleFunc("GET /api/memberships", s.membershipH.List)
	mux.HandleFunc("DELETE /api/memberships/{id}", s.membershipH.Delete)

	// WebSocket for cross-tab sync
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub))
}
