// Copyright (c) 2026 SMS Guard. All rights reserved.
// Author: kelompok6.smartapps@gmail.com

/*
Package api assembles the HTTP surface of SMS Guard.

It wires the platform middleware chain, the health probes, and the domain
sub-routers into one http.Handler, and owns the server's listen/shutdown
lifecycle.
*/
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/kelompokcp/smsguard/internal/platform/config"
	"github.com/kelompokcp/smsguard/internal/platform/constants"
	"github.com/kelompokcp/smsguard/internal/platform/middleware"
)

// Handlers carries the fully-constructed domain routers and probes.
type Handlers struct {
	Health       http.HandlerFunc
	Ready        http.HandlerFunc
	AuthRoutes   chi.Router
	DetectRoutes chi.Router
}

/*
NewRouter builds the complete HTTP handler.

Description: The middleware chain runs outermost-first: request tracing,
structured logging, a global timeout, per-IP rate limiting, panic recovery,
optional session authentication, and CORS. RequireAuth is NOT applied here;
each domain router decides which of its endpoints sit behind the gate.

Parameters:
  - lifecycle: context.Context (Cancelled at shutdown; stops the rate limiter's cleanup goroutine)
  - cfg: *config.Config
  - logger: *slog.Logger
  - verifier: middleware.TokenVerifier
  - handlers: Handlers

Returns:
  - http.Handler: Ready-to-serve root router
*/
func NewRouter(lifecycle context.Context, cfg *config.Config, logger *slog.Logger, verifier middleware.TokenVerifier, handlers Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(logger))
	router.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	router.Use(middleware.RateLimit(lifecycle))
	router.Use(middleware.PanicRecovery(logger))
	router.Use(middleware.Authenticate(verifier))
	router.Use(middleware.CORS(cfg))
	router.Use(chimw.CleanPath)

	// Probes live outside the versioned API so orchestration never breaks
	// on an API version bump.
	router.Get("/health", handlers.Health)
	router.Get("/ready", handlers.Ready)

	router.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", handlers.AuthRoutes)
		api.Mount("/", handlers.DetectRoutes)
	})

	return router
}

// NewServer configures the http.Server with the platform's standard timeouts.
func NewServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           handler,
		ReadTimeout:       constants.DefaultReadTimeout,
		ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		WriteTimeout:      constants.DefaultWriteTimeout,
		IdleTimeout:       constants.DefaultIdleTimeout,
	}
}

// Run serves until the context is cancelled, then drains in-flight requests
// within [constants.ShutdownTimeout].
func Run(lifecycle context.Context, server *http.Server, logger *slog.Logger) error {
	serveErrors := make(chan error, 1)

	go func() {
		logger.Info("server_listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrors <- err
		}
		close(serveErrors)
	}()

	select {
	case err := <-serveErrors:
		return err
	case <-lifecycle.Done():
	}

	logger.Info("server_shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server_stopped")
	return nil
}
