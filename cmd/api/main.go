// Copyright (c) 2026 SMS Guard. All rights reserved.
// Author: kelompok6.smartapps@gmail.com

// Command api runs the SMS Guard HTTP server.
//
// Startup is fail-fast: missing configuration, an unwritable credential
// file, or broken classification artifacts abort the process before it
// ever listens.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kelompokcp/smsguard/internal/api"
	"github.com/kelompokcp/smsguard/internal/detection"
	"github.com/kelompokcp/smsguard/internal/platform/config"
	"github.com/kelompokcp/smsguard/internal/platform/constants"
	"github.com/kelompokcp/smsguard/internal/platform/sec"
	"github.com/kelompokcp/smsguard/internal/users/auth"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", constants.AppName),
	)
	slog.SetDefault(logger)

	cfg := must(config.Load())

	// Credential store: opening it seeds the default accounts and proves
	// the file is writable.
	users := must(auth.NewJSONUserRepository(cfg.UsersFile))
	logger.Info("credential_store_ready", slog.String("path", cfg.UsersFile))

	// Classification artifacts are frozen; load once, read-only.
	artifacts := must(detection.LoadArtifacts(cfg.ModelPath, cfg.VocabularyPath))
	logger.Info("artifacts_loaded",
		slog.String("model", cfg.ModelPath),
		slog.String("vocabulary", cfg.VocabularyPath),
		slog.Int("features", artifacts.Vectorizer.NumFeatures()),
	)

	tokens := must(sec.NewTokenService(cfg.SessionSecret, constants.AuthIssuer))

	// Domain wiring.
	authService := auth.NewService(users, tokens)
	authHandler := auth.NewHandler(authService, auth.NewViewState(), cfg.IsProduction())

	detectionService := detection.NewService(artifacts.Vectorizer, artifacts.Model)
	detectionHandler := detection.NewHandler(detectionService)

	lifecycle, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router := api.NewRouter(lifecycle, cfg, logger, tokens, api.Handlers{
		Health: api.Liveness,
		Ready: api.Readiness(api.HealthDependencies{
			CheckCredentialStore: users.Ping,
			CheckArtifacts: func(context.Context) error {
				// Loaded once at startup and never swapped; reaching this
				// probe means they are present.
				return nil
			},
		}),
		AuthRoutes:   authHandler.Routes(),
		DetectRoutes: detectionHandler.Routes(),
	})

	server := api.NewServer(cfg, router)
	if err := api.Run(lifecycle, server, logger); err != nil {
		logger.Error("server_failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// must aborts startup with a structured log entry if err is non-nil.
func must[T any](value T, err error) T {
	if err != nil {
		slog.Error("startup_failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	return value
}
