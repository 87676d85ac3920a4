// Simple Notes API server entry point. Wires configuration, the SQLite
// store, the notes service, and the HTTP router, then serves until a
// shutdown signal arrives.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kavia-common/simple-notes-api/internal/api"
	"github.com/kavia-common/simple-notes-api/internal/config"
	"github.com/kavia-common/simple-notes-api/internal/db"
	"github.com/kavia-common/simple-notes-api/internal/notes"
	"github.com/kavia-common/simple-notes-api/internal/obs"
)

func main() {
	obs.Init()

	addr, databaseURL := config.ParseFlags()
	cfg := config.MustLoadConfig(addr, databaseURL)
	cfg.PrintStartupSummary()

	if err := run(cfg); err != nil {
		obs.Pkg("main").Error("server_failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	logger := obs.Pkg("main")

	store, err := db.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	svc := notes.NewService(store)
	handler := api.NewHandler(svc)
	router := api.NewRouter(handler, cfg.CORSOrigins())

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("server_listening", "addr", cfg.ListenAddr, "db", cfg.DatabasePath)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		logger.Info("shutdown_signal", "signal", sig.String())
	}

	// Give in-flight requests time to finish before the process exits.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server_stopped")
	return nil
}
