package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tbanda/vendora-backend/internal/api"
	"github.com/tbanda/vendora-backend/internal/attachment"
	"github.com/tbanda/vendora-backend/internal/blob"
	"github.com/tbanda/vendora-backend/internal/config"
	"github.com/tbanda/vendora-backend/internal/modules/profile"
	"github.com/tbanda/vendora-backend/internal/modules/store"
	"github.com/tbanda/vendora-backend/internal/modules/venue"
	"github.com/tbanda/vendora-backend/internal/platform/database"
	"github.com/tbanda/vendora-backend/internal/platform/migrations"
	"github.com/tbanda/vendora-backend/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		slog.Error("connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := migrations.Apply(context.Background(), db); err != nil {
		slog.Error("apply migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database ready")

	blobStore := blob.NewLocalStore(cfg.DataDir)
	resolver := attachment.NewResolver(blobStore)

	if err := attachment.EnsureDefault(context.Background(), blobStore, cfg.DefaultPfpPath); err != nil {
		slog.Error("provision default profile picture", "error", err)
		os.Exit(1)
	}

	reg := api.NewRegistry()

	profileService := profile.NewService(profile.NewPostgresRepository(db), resolver, cfg.DefaultPfpPath)
	profile.NewHandler(profileService).RegisterOperations(reg)

	storeService := store.NewService(store.NewPostgresRepository(db), resolver, cfg.DefaultPfpPath)
	store.NewHandler(storeService).RegisterOperations(reg)

	venueService := venue.NewService(venue.NewPostgresRepository(db), resolver, cfg.DefaultPfpPath)
	venue.NewHandler(venueService).RegisterOperations(reg)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(api.RequestLogger)
	router.Use(middleware.Timeout(cfg.RequestTimeout))

	router.Handle("/api", reg)
	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/uploads/*", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(filepath.Join(cfg.DataDir, "uploads")))))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
