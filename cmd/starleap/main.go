// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/starleap/starleap-go/internal/auth"
	"github.com/starleap/starleap-go/internal/config"
	"github.com/starleap/starleap-go/internal/handler"
	"github.com/starleap/starleap-go/internal/logging"
	"github.com/starleap/starleap-go/internal/middleware"
	"github.com/starleap/starleap-go/internal/scheduler"
	"github.com/starleap/starleap-go/internal/service"
	"github.com/starleap/starleap-go/internal/store"
	"github.com/starleap/starleap-go/internal/version"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Star Leap - Catalog Management Backend\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  STARLEAP_JWT_SECRET       Token signing key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  STARLEAP_DB_PATH          SQLite database path (default: ./data/starleap.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  STARLEAP_SERVER_PORT     Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  STARLEAP_ENV             Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  STARLEAP_UPLOADS_DIR     Upload storage directory (default: ./uploads)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  STARLEAP_CORS_ORIGINS    Comma-separated allowed origins (default: same-origin)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  STARLEAP_EVENT_RETENTION Audit log retention window (default: 2160h)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  STARLEAP_DO_SEED         Create the bootstrap super admin on startup\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		info := version.Info{Version: appVersion, GitCommit: appGitCommit, BuildTime: appBuildTime}
		_, _ = fmt.Printf("starleap %s\n", info)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	versionInfo := version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Ensure data directory exists
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade logger to also write WARN and ERROR logs to the event log
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger = slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(logger)
	slog.Info("event log integration enabled", "min_level", "warn")

	ctx := context.Background()
	if cfg.DoSeed {
		if err := store.Seed(ctx, db, store.SeedParams{
			Email:    cfg.SeedEmail,
			Password: cfg.SeedPassword,
		}); err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}
	}

	// Services
	mediaService, err := service.NewMediaService(db, cfg.UploadsDir, cfg.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("initializing media service: %w", err)
	}
	eventService := service.NewEventService(db)
	tokens := auth.NewTokenManager([]byte(cfg.JWTSecret), cfg.TokenTTL)

	// Periodic maintenance: daily audit log pruning
	sched := scheduler.New(eventService, cfg.EventRetention, slog.Default())
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	// Login protection: per-IP rate limit plus account lockout with backoff
	loginProtection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())
	slog.Info("login protection initialized",
		"ip_rate_limit", "0.5 req/s",
		"max_failed_attempts", 5,
		"lockout_duration", "15m",
	)

	// Public rate limiter for the whole API (defense-in-depth)
	apiRateLimiter := middleware.NewGlobalRateLimiter(100, 200)

	h := handler.NewHandler(db, tokens, mediaService, eventService, loginProtection)

	// Create router
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)

	securityConfig := middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())
	r.Use(middleware.SecurityHeaders(securityConfig))

	// CORS for the cross-origin admin console
	if len(cfg.CORSOrigins) > 0 {
		corsMiddleware := cors.New(cors.Options{
			AllowedOrigins:   cfg.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		})
		r.Use(corsMiddleware.Handler)
		slog.Info("CORS enabled", "origins", cfg.CORSOrigins)
	}

	// Serve uploaded files from the uploads directory
	uploadsHandler := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir)))
	r.Handle("/uploads/*", uploadsHandler)

	r.Route("/api", func(r chi.Router) {
		r.Use(apiRateLimiter.Middleware())

		r.Get("/status", h.Status)

		// Auth routes
		r.Post("/auth/register", h.Register)
		r.With(loginProtection.Middleware()).Post("/auth/login", h.Login)

		// Public reads
		r.Get("/carousels", h.ListCarousels)
		r.Get("/carousels/{id}", h.GetCarousel)
		r.Get("/categories", h.ListCategories)
		r.Get("/categories/{id}", h.GetCategory)
		r.Get("/products", h.ListProducts)
		r.Get("/products/{id}", h.GetProduct)
		r.Get("/static-pages", h.ListStaticPages)
		r.Get("/static-pages/{id}", h.GetStaticPage)
		r.Get("/static-pages/slug/{slug}", h.GetStaticPageBySlug)
		r.Get("/clients", h.ListClients)
		r.Get("/clients/{id}", h.GetClient)
		r.Get("/team-members", h.ListTeamMembers)
		r.Get("/team-members/{id}", h.GetTeamMember)
		r.Get("/media", h.ListMedia)
		r.Get("/media/{id}", h.GetMedia)

		// Mutations require a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(tokens, db))

			r.Get("/auth/me", h.Me)
			r.Put("/auth/update-password", h.UpdatePassword)

			r.Post("/media/upload", h.UploadMedia)
			r.Put("/media/{id}", h.UpdateMedia)
			r.Delete("/media/{id}", h.DeleteMedia)

			r.Post("/carousels", h.CreateCarousel)
			r.Put("/carousels/{id}", h.UpdateCarousel)
			r.Delete("/carousels/{id}", h.DeleteCarousel)

			r.Post("/categories", h.CreateCategory)
			r.Put("/categories/{id}", h.UpdateCategory)
			r.Delete("/categories/{id}", h.DeleteCategory)

			r.Post("/products", h.CreateProduct)
			r.Put("/products/{id}", h.UpdateProduct)
			r.Delete("/products/{id}", h.DeleteProduct)

			r.Post("/static-pages", h.CreateStaticPage)
			r.Put("/static-pages/{id}", h.UpdateStaticPage)
			r.Delete("/static-pages/{id}", h.DeleteStaticPage)

			r.Post("/clients", h.CreateClient)
			r.Put("/clients/{id}", h.UpdateClient)
			r.Delete("/clients/{id}", h.DeleteClient)

			r.Post("/team-members", h.CreateTeamMember)
			r.Put("/team-members/{id}", h.UpdateTeamMember)
			r.Delete("/team-members/{id}", h.DeleteTeamMember)

			// Audit log, super admin only
			r.With(middleware.RequireSuperAdmin(eventService)).Get("/events", h.ListEvents)
		})
	})

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second, // Longer to allow for large uploads and slow connections
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server",
			"addr", cfg.ServerAddr(),
			"env", cfg.Env,
			"version", versionInfo.Version,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
