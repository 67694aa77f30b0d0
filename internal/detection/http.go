// Copyright (c) 2026 SMS Guard. All rights reserved.
// Author: kelompok6.smartapps@gmail.com

// HTTP transport for the detection domain. Every endpoint here sits behind
// the login gate.

package detection

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kelompokcp/smsguard/internal/platform/middleware"
	requestutil "github.com/kelompokcp/smsguard/internal/platform/request"
	"github.com/kelompokcp/smsguard/internal/platform/respond"
	"github.com/kelompokcp/smsguard/internal/platform/validate"
)

// Handler exposes the classification use case and the application menu.
type Handler struct {
	service *Service
}

// NewHandler creates the detection HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes assembles the authenticated application sub-router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Post("/detect", handler.detect)
	router.Get("/menu", handler.menu)

	return router
}

// # Request / Response Payloads

type detectRequest struct {
	Message string `json:"message"`
}

// menuSection describes one entry of the in-app navigation menu.
type menuSection struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type menuResponse struct {
	User     string        `json:"user"`
	Sections []menuSection `json:"sections"`
}

// # Endpoint Handlers

// detect handles POST /api/v1/detect.
func (handler *Handler) detect(writer http.ResponseWriter, request *http.Request) {
	var payload detectRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if err := validator.MaxLen("message", payload.Message, MaxMessageLength).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Classify(request.Context(), payload.Message)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

// menu handles GET /api/v1/menu.
//
// The section list is static: it mirrors the four screens of the application
// shell so the frontend can render navigation without hardcoding it. The
// logged-in username rides along for the "signed in as" panel.
func (handler *Handler) menu(writer http.ResponseWriter, request *http.Request) {
	username, err := requestutil.RequiredUsername(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, menuResponse{
		User: username,
		Sections: []menuSection{
			{
				ID:          "information",
				Title:       "SMS Fraud Information",
				Description: "Learn how SMS scams work and the red flags to watch for.",
				Icon:        "info-circle",
			},
			{
				ID:          "guide",
				Title:       "Usage Guide",
				Description: "Step-by-step instructions for checking a suspicious message.",
				Icon:        "book",
			},
			{
				ID:          "detector",
				Title:       "SMS Detector",
				Description: "Paste an SMS message and classify it as normal, fraud, or promo.",
				Icon:        "search",
			},
			{
				ID:          "about",
				Title:       "About",
				Description: "About this application and the team behind it.",
				Icon:        "person",
			},
		},
	})
}
