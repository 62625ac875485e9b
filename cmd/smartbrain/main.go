package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	clarifaiadapter "github.com/ericfisherdev/smartbrain/internal/adapter/driven/clarifai"
	sqliteadapter "github.com/ericfisherdev/smartbrain/internal/adapter/driven/sqlite"
	httphandler "github.com/ericfisherdev/smartbrain/internal/adapter/driving/http"
	"github.com/ericfisherdev/smartbrain/internal/application"
	"github.com/ericfisherdev/smartbrain/internal/config"
	"github.com/ericfisherdev/smartbrain/internal/domain/port/driven"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on invalid env vars).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"db_path", cfg.DBPath,
		"detect_timeout", cfg.DetectTimeout,
		"vision_configured", cfg.HasVisionCredentials(),
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open database (dual reader/writer with WAL mode).
	db, err := sqliteadapter.NewDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()
	slog.Info("database opened", "path", cfg.DBPath)

	// 4. Run migrations on writer connection.
	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		return err
	}
	slog.Info("migrations complete")

	// 5. Wire storage adapters.
	accounts := sqliteadapter.NewAccountRepo(db)
	credentials := sqliteadapter.NewCredentialRepo(db)
	registrar := sqliteadapter.NewRegistrar(db)

	// 6. Create the vision client only when credentials are configured; the
	// detection service reports a configuration error otherwise.
	var vision driven.VisionClient
	if cfg.HasVisionCredentials() {
		vision = clarifaiadapter.NewClient(cfg.ClarifaiPAT, cfg.ClarifaiUserID, cfg.ClarifaiAppID, cfg.DetectTimeout)
		slog.Info("vision client created", "user_id", cfg.ClarifaiUserID, "app_id", cfg.ClarifaiAppID)
	} else {
		slog.Info("no vision credentials configured, face detection disabled")
	}

	// 7. Create application services.
	registration := application.NewRegistrationService(registrar)
	auth := application.NewAuthService(credentials, accounts)
	engagement := application.NewEngagementService(accounts)
	detection := application.NewDetectionService(vision)

	// 8. Create HTTP handler and register routes.
	handler := httphandler.NewHandler(registration, auth, engagement, detection, accounts, slog.Default())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           httphandler.NewServeMux(handler, slog.Default()),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
		}
	}()

	slog.Info("smartbrain started", "listen_addr", cfg.ListenAddr)

	// 9. Wait for shutdown signal, then drain the HTTP server.
	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}
