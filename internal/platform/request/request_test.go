// Copyright (c) 2026 SMS Guard. All rights reserved.
// Author: kelompok6.smartapps@gmail.com

package requestutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelompokcp/smsguard/internal/platform/apperr"
	"github.com/kelompokcp/smsguard/internal/platform/ctxutil"
	"github.com/kelompokcp/smsguard/internal/platform/sec"
)

func anonymousRequest() *http.Request {
	return httptest.NewRequest(http.MethodGet, "/", nil)
}

func authenticatedRequest(username string) *http.Request {
	request := anonymousRequest()
	ctx := ctxutil.WithAuthUser(request.Context(), &sec.SessionClaims{Username: username})
	return request.WithContext(ctx)
}

func TestDecodeJSON(t *testing.T) {
	var payload struct {
		Username string `json:"username"`
	}

	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"danny"}`))
	require.NoError(t, DecodeJSON(request, &payload))
	assert.Equal(t, "danny", payload.Username)

	request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{broken`))
	err := DecodeJSON(request, &payload)
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
}

func TestClaims(t *testing.T) {
	assert.Nil(t, Claims(anonymousRequest()))

	claims := Claims(authenticatedRequest("danny"))
	require.NotNil(t, claims)
	assert.Equal(t, "danny", claims.Username)
}

func TestRequiredClaims(t *testing.T) {
	_, err := RequiredClaims(anonymousRequest())
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "UNAUTHORIZED"))

	claims, err := RequiredClaims(authenticatedRequest("danny"))
	require.NoError(t, err)
	assert.Equal(t, "danny", claims.Username)
}

func TestRequiredUsername(t *testing.T) {
	_, err := RequiredUsername(anonymousRequest())
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "UNAUTHORIZED"))

	username, err := RequiredUsername(authenticatedRequest("danny"))
	require.NoError(t, err)
	assert.Equal(t, "danny", username)
}
