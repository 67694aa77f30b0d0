// Copyright (c) 2026 SMS Guard. All rights reserved.
// Author: kelompok6.smartapps@gmail.com

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelompokcp/smsguard/internal/platform/constants"
	"github.com/kelompokcp/smsguard/internal/platform/middleware"
	"github.com/kelompokcp/smsguard/internal/platform/sec"
)

// testEnv bundles the wired handler with direct access to its collaborators.
type testEnv struct {
	router  chi.Router
	handler *Handler
	service *Service
	views   *ViewState
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	repository, err := NewJSONUserRepository(filepath.Join(t.TempDir(), "users.json"))
	require.NoError(t, err)

	tokens, err := sec.NewTokenService("0123456789abcdef0123456789abcdef", "smsguard.test")
	require.NoError(t, err)

	service := NewService(repository, tokens)
	views := NewViewState()
	handler := NewHandler(service, views, false)

	router := chi.NewRouter()
	router.Use(middleware.Authenticate(tokens))
	router.Mount("/auth", handler.Routes())

	return &testEnv{router: router, handler: handler, service: service, views: views}
}

func (env *testEnv) do(t *testing.T, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		request.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, request)
	return recorder
}

func decodeData(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope.Data
}

func decodeErrorCode(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope.Code
}

func findCookie(recorder *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

// # Login

func TestLoginEndpoint_Success(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodPost, "/auth/login", `{"username":"admin","password":"admin123"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	data := decodeData(t, recorder)
	assert.NotEmpty(t, data["session_token"])
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "admin", user["username"])
	assert.NotContains(t, user, "password_hash")

	cookie := findCookie(recorder, constants.SessionCookieName)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)
}

func TestLoginEndpoint_Failures(t *testing.T) {
	env := newTestEnv(t)

	testCases := []struct {
		name         string
		body         string
		expectedCode int
		expectedErr  string
	}{
		{name: "invalid json", body: `{not json`, expectedCode: http.StatusBadRequest, expectedErr: "VALIDATION_ERROR"},
		{name: "blank input", body: `{"username":"","password":""}`, expectedCode: http.StatusBadRequest, expectedErr: "EMPTY_INPUT"},
		{name: "unknown user", body: `{"username":"ghost","password":"admin123"}`, expectedCode: http.StatusUnauthorized, expectedErr: "UNKNOWN_USER"},
		{name: "wrong password", body: `{"username":"admin","password":"nope"}`, expectedCode: http.StatusUnauthorized, expectedErr: "WRONG_PASSWORD"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			recorder := env.do(t, http.MethodPost, "/auth/login", testCase.body)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			assert.Equal(t, testCase.expectedErr, decodeErrorCode(t, recorder))
		})
	}
}

// # Register

func TestRegisterEndpoint_Success(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodPost, "/auth/register",
		`{"username":"sinta","password":"password1","confirm_password":"password1","consent":true}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	data := decodeData(t, recorder)
	assert.NotEmpty(t, data["session_token"])
	require.NotNil(t, findCookie(recorder, constants.SessionCookieName))

	// The fresh account can log in.
	login := env.do(t, http.MethodPost, "/auth/login", `{"username":"sinta","password":"password1"}`)
	assert.Equal(t, http.StatusOK, login.Code)
}

func TestRegisterEndpoint_ConsentRequired(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodPost, "/auth/register",
		`{"username":"sinta","password":"password1","confirm_password":"password1","consent":false}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "CONSENT_REQUIRED", decodeErrorCode(t, recorder))
}

func TestRegisterEndpoint_DuplicateUsername(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodPost, "/auth/register",
		`{"username":"admin","password":"password1","confirm_password":"password1","consent":true}`)
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Equal(t, "USERNAME_TAKEN", decodeErrorCode(t, recorder))
}

// # Logout

func TestLogoutEndpoint_RequiresSession(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodPost, "/auth/logout", ``)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestLogoutEndpoint_ClearsCookie(t *testing.T) {
	env := newTestEnv(t)

	login := env.do(t, http.MethodPost, "/auth/login", `{"username":"admin","password":"admin123"}`)
	require.Equal(t, http.StatusOK, login.Code)
	sessionCookie := findCookie(login, constants.SessionCookieName)
	require.NotNil(t, sessionCookie)

	recorder := env.do(t, http.MethodPost, "/auth/logout", ``, sessionCookie)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "admin", decodeData(t, recorder)["user"])

	cleared := findCookie(recorder, constants.SessionCookieName)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}

// # Password Reset

func TestResetPasswordEndpoint_Success(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodPost, "/auth/reset-password",
		`{"username":"danny","old_password":"12345","new_password":"newpass","confirm_password":"newpass"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	// The new password is live immediately.
	login := env.do(t, http.MethodPost, "/auth/login", `{"username":"danny","password":"newpass"}`)
	assert.Equal(t, http.StatusOK, login.Code)
}

func TestResetPasswordEndpoint_ReturnsVisitorToLogin(t *testing.T) {
	env := newTestEnv(t)

	visitor := &http.Cookie{Name: constants.ViewCookieName, Value: "visitor-42"}
	env.views.Set("visitor-42", ViewResetPassword)

	recorder := env.do(t, http.MethodPost, "/auth/reset-password",
		`{"username":"danny","old_password":"12345","new_password":"newpass","confirm_password":"newpass"}`,
		visitor)
	require.Equal(t, http.StatusOK, recorder.Code)

	assert.Equal(t, ViewLogin, env.views.Get("visitor-42"))
}

func TestForgotPasswordEndpoint(t *testing.T) {
	env := newTestEnv(t)

	visitor := &http.Cookie{Name: constants.ViewCookieName, Value: "visitor-7"}
	recorder := env.do(t, http.MethodGet, "/auth/forgot-password", ``, visitor)
	require.Equal(t, http.StatusOK, recorder.Code)

	data := decodeData(t, recorder)
	assert.Contains(t, data["message"], "old password")
	assert.Equal(t, ViewForgotPassword, env.views.Get("visitor-7"))
}

// # View Navigation

func TestViewEndpoint_FirstContactIssuesCookie(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodGet, "/auth/view", ``)
	require.Equal(t, http.StatusOK, recorder.Code)

	data := decodeData(t, recorder)
	assert.Equal(t, string(ViewLogin), data["view"])

	cookie := findCookie(recorder, constants.ViewCookieName)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
}

func TestViewEndpoint_PutThenGet(t *testing.T) {
	env := newTestEnv(t)

	visitor := &http.Cookie{Name: constants.ViewCookieName, Value: "visitor-9"}

	put := env.do(t, http.MethodPut, "/auth/view", `{"view":"create_account"}`, visitor)
	require.Equal(t, http.StatusOK, put.Code)

	get := env.do(t, http.MethodGet, "/auth/view", ``, visitor)
	require.Equal(t, http.StatusOK, get.Code)
	assert.Equal(t, string(ViewCreateAccount), decodeData(t, get)["view"])
}

func TestViewEndpoint_RejectsUnknownView(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodPut, "/auth/view", `{"view":"dashboard"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeErrorCode(t, recorder))
}
