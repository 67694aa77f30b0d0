// Copyright (c) 2026 SMS Guard. All rights reserved.
// Author: kelompok6.smartapps@gmail.com

package ctxutil

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kelompokcp/smsguard/internal/platform/sec"
)

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", GetRequestID(ctx))
}

func TestRequestID_MissingReturnsEmpty(t *testing.T) {
	assert.Equal(t, "", GetRequestID(context.Background()))
}

func TestLogger_RoundTrip(t *testing.T) {
	logger := slog.Default().With(slog.String("test", "yes"))
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}

func TestLogger_MissingReturnsDefault(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()))
}

func TestAuthUser_RoundTrip(t *testing.T) {
	claims := &sec.SessionClaims{Username: "danny"}
	ctx := WithAuthUser(context.Background(), claims)
	assert.Same(t, claims, GetAuthUser(ctx))
}

func TestAuthUser_MissingReturnsNil(t *testing.T) {
	assert.Nil(t, GetAuthUser(context.Background()))
}
