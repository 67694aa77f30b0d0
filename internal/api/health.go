// Copyright (c) 2026 SMS Guard. All rights reserved.
// Author: kelompok6.smartapps@gmail.com

package api

import (
	"context"
	"net/http"

	"github.com/kelompokcp/smsguard/internal/platform/constants"
	"github.com/kelompokcp/smsguard/internal/platform/respond"
)

// HealthDependencies holds the probes the readiness endpoint checks.
//
// Liveness never runs them: a process that can answer HTTP is alive even
// when its credential file has gone missing.
type HealthDependencies struct {
	// CheckCredentialStore verifies the users file is reachable.
	CheckCredentialStore func(context.Context) error

	// CheckArtifacts verifies the classification artifacts are loaded.
	CheckArtifacts func(context.Context) error
}

// Liveness handles GET /health.
func Liveness(writer http.ResponseWriter, request *http.Request) {
	respond.JSON(writer, http.StatusOK, map[string]string{
		constants.FieldStatus:  "ok",
		constants.FieldApp:     constants.AppName,
		constants.FieldVersion: constants.AppVersion,
	})
}

// Readiness handles GET /ready. It runs every dependency probe and reports
// 503 with per-check results if any fails.
func Readiness(deps HealthDependencies) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		checks := map[string]string{}
		healthy := true

		run := func(name string, probe func(context.Context) error) {
			if probe == nil {
				return
			}
			if err := probe(request.Context()); err != nil {
				checks[name] = err.Error()
				healthy = false
				return
			}
			checks[name] = "ok"
		}

		run("credential_store", deps.CheckCredentialStore)
		run("artifacts", deps.CheckArtifacts)

		status := http.StatusOK
		overall := "ok"
		if !healthy {
			status = http.StatusServiceUnavailable
			overall = "degraded"
		}

		respond.JSON(writer, status, map[string]interface{}{
			constants.FieldStatus: overall,
			constants.FieldChecks: checks,
		})
	}
}
