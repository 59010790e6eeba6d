package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pricecart/pricecart/internal/archive"
	"github.com/pricecart/pricecart/internal/database"
	"github.com/pricecart/pricecart/internal/geocode"
	"github.com/pricecart/pricecart/internal/logging"
	"github.com/pricecart/pricecart/internal/server"
	"github.com/pricecart/pricecart/internal/store"
)

func main() {
	logger := logging.Setup(os.Getenv("PRICECART_LOG_LEVEL"), os.Getenv("PRICECART_LOG_FORMAT"))

	port := os.Getenv("PRICECART_PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("PRICECART_DB_PATH")
	if dbPath == "" {
		dbPath = "pricecart.db"
	}

	db, err := database.Open(dbPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Seed demo accounts on first run.
	if err := store.NewUserStore(db).EnsureDemoUsers(); err != nil {
		logger.Error("seed demo users", "error", err)
		os.Exit(1)
	}

	geocoder := geocode.NewClient(geocode.Config{
		BaseURL: os.Getenv("PRICECART_GEOCODE_URL"),
	})

	archiveCfg := archive.S3Config{
		Endpoint:  os.Getenv("PRICECART_S3_ENDPOINT"),
		Bucket:    os.Getenv("PRICECART_S3_BUCKET"),
		Region:    os.Getenv("PRICECART_S3_REGION"),
		AccessKey: os.Getenv("PRICECART_S3_ACCESS_KEY"),
		SecretKey: os.Getenv("PRICECART_S3_SECRET_KEY"),
	}

	srv := server.New(db, geocoder, archiveCfg, logger)

	httpServer := &http.Server{
		Addr:              ":" + port,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Background cleanup goroutine
	cleanupCtx, cleanupCancel := context.WithCancel(context.Background())
	defer cleanupCancel()
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n, err := srv.SessionStore().DeleteExpired(); err != nil {
					logger.Error("cleanup expired sessions", "error", err)
				} else if n > 0 {
					logger.Info("cleaned up expired sessions", "count", n)
				}
				srv.RateLimiter().Cleanup()
			case <-cleanupCtx.Done():
				return
			}
		}
	}()

	go func() {
		logger.Info("pricecart starting", "addr", ":"+port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	cleanupCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}
