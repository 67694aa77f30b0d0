// Copyright (c) 2026 SMS Guard. All rights reserved.
// Author: kelompok6.smartapps@gmail.com

// HTTP transport for the authentication domain.

package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kelompokcp/smsguard/internal/platform/constants"
	"github.com/kelompokcp/smsguard/internal/platform/middleware"
	requestutil "github.com/kelompokcp/smsguard/internal/platform/request"
	"github.com/kelompokcp/smsguard/internal/platform/respond"
	"github.com/kelompokcp/smsguard/internal/platform/validate"
)

// Handler exposes the authentication use cases over HTTP.
type Handler struct {
	service       *Service
	views         *ViewState
	secureCookies bool
}

// NewHandler creates the authentication HTTP handler.
//
// secureCookies should be true in production so the session cookie is only
// sent over TLS.
func NewHandler(service *Service, views *ViewState, secureCookies bool) *Handler {
	return &Handler{
		service:       service,
		views:         views,
		secureCookies: secureCookies,
	}
}

// Routes assembles the authentication sub-router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Anonymous endpoints: these ARE the login gate.
	router.Post("/login", handler.login)
	router.Post("/register", handler.register)
	router.Post("/reset-password", handler.resetPassword)
	router.Get("/forgot-password", handler.forgotPassword)
	router.Get("/view", handler.getView)
	router.Put("/view", handler.setView)

	// Logging out only makes sense with a session to discard.
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Post("/logout", handler.logout)
	})

	return router
}

// # Request / Response Payloads

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Consent         bool   `json:"consent"`
}

type resetPasswordRequest struct {
	Username        string `json:"username"`
	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type viewRequest struct {
	View string `json:"view"`
}

type sessionResponse struct {
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         *User     `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type logoutResponse struct {
	Message string `json:"message"`
	User    string `json:"user,omitempty"`
}

type viewResponse struct {
	View View `json:"view"`
}

// # Endpoint Handlers

// login handles POST /api/v1/auth/login.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var payload loginRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Authenticate(request.Context(), payload.Username, payload.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setSessionCookie(writer, session)
	respond.OK(writer, sessionResponse{
		SessionToken: session.Token,
		ExpiresAt:    session.ExpiresAt,
		User:         session.User,
	})
}

// register handles POST /api/v1/auth/register.
//
// A successful registration signs the new account in immediately, matching
// the login response shape.
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var payload registerRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Register(request.Context(), RegisterInput{
		Username:        payload.Username,
		Password:        payload.Password,
		ConfirmPassword: payload.ConfirmPassword,
		Consent:         payload.Consent,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setSessionCookie(writer, session)
	respond.Created(writer, sessionResponse{
		SessionToken: session.Token,
		ExpiresAt:    session.ExpiresAt,
		User:         session.User,
	})
}

// logout handles POST /api/v1/auth/logout.
//
// Sessions are stateless, so "logging out" is purely client-side: the cookie
// is expired and the client is expected to discard any Bearer copy of the
// token. The token itself stays valid until its TTL runs out.
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	var username string
	if claims := requestutil.Claims(request); claims != nil {
		username = claims.Username
	}

	handler.clearSessionCookie(writer)
	respond.OK(writer, logoutResponse{Message: "Logged out", User: username})
}

// resetPassword handles POST /api/v1/auth/reset-password.
//
// The endpoint is anonymous: knowledge of the old password is the proof of
// account ownership, so a user who cannot log in can still recover here.
func (handler *Handler) resetPassword(writer http.ResponseWriter, request *http.Request) {
	var payload resetPasswordRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	err := handler.service.ResetPassword(request.Context(), ResetPasswordInput{
		Username:        payload.Username,
		OldPassword:     payload.OldPassword,
		NewPassword:     payload.NewPassword,
		ConfirmPassword: payload.ConfirmPassword,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Send the visitor back to the login screen to use the new password.
	if cookie, cookieErr := request.Cookie(constants.ViewCookieName); cookieErr == nil {
		handler.views.Set(cookie.Value, ViewLogin)
	}

	respond.OK(writer, messageResponse{Message: "Password updated successfully. Please sign in again."})
}

// forgotPassword handles GET /api/v1/auth/forgot-password.
//
// There is no out-of-band recovery channel (no email on file), so this
// endpoint only explains the self-service reset flow.
func (handler *Handler) forgotPassword(writer http.ResponseWriter, request *http.Request) {
	if cookie, cookieErr := request.Cookie(constants.ViewCookieName); cookieErr == nil {
		handler.views.Set(cookie.Value, ViewForgotPassword)
	}

	respond.OK(writer, messageResponse{
		Message: "To reset your password, open the reset screen and enter your username, old password, and new password.",
	})
}

// getView handles GET /api/v1/auth/view.
//
// First contact issues the anonymous visitor cookie so later PUTs have an
// identity to record against.
func (handler *Handler) getView(writer http.ResponseWriter, request *http.Request) {
	visitorID := handler.ensureVisitorCookie(writer, request)
	respond.OK(writer, viewResponse{View: handler.views.Get(visitorID)})
}

// setView handles PUT /api/v1/auth/view.
func (handler *Handler) setView(writer http.ResponseWriter, request *http.Request) {
	var payload viewRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if err := validator.OneOf(FieldView, payload.View, ViewNames()...).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	visitorID := handler.ensureVisitorCookie(writer, request)
	handler.views.Set(visitorID, View(payload.View))
	respond.OK(writer, viewResponse{View: handler.views.Get(visitorID)})
}

// # Cookie Helpers

// setSessionCookie attaches the signed session token as an HttpOnly cookie.
func (handler *Handler) setSessionCookie(writer http.ResponseWriter, session *AuthSession) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    session.Token,
		Path:     constants.SessionCookiePath,
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie immediately.
func (handler *Handler) clearSessionCookie(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     constants.SessionCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// ensureVisitorCookie returns the anonymous visitor ID, issuing the cookie
// first if the request does not carry one.
func (handler *Handler) ensureVisitorCookie(writer http.ResponseWriter, request *http.Request) string {
	if cookie, err := request.Cookie(constants.ViewCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	visitorID := uuid.NewString()
	if uuidV7, err := uuid.NewV7(); err == nil {
		visitorID = uuidV7.String()
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.ViewCookieName,
		Value:    visitorID,
		Path:     constants.SessionCookiePath,
		HttpOnly: true,
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	return visitorID
}
