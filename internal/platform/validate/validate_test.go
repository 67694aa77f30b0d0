// Copyright (c) 2026 SMS Guard. All rights reserved.
// Author: kelompok6.smartapps@gmail.com

package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelompokcp/smsguard/internal/platform/apperr"
)

func TestValidator_AllRulesPass(t *testing.T) {
	v := &Validator{}
	err := v.
		Required("username", "danny").
		MinLen("username", "danny", 4).
		MaxLen("message", "hello", 100).
		Equal("confirm_password", "12345", "12345").
		Checked("consent", true).
		OneOf("view", "login", "login", "create_account").
		Err()

	require.NoError(t, err)
	assert.False(t, v.HasErrors())
}

func TestValidator_CollectsAllFailures(t *testing.T) {
	v := &Validator{}
	err := v.
		Required("username", "   ").
		MinLen("password", "abc", 5).
		Checked("consent", false).
		Err()

	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	require.Len(t, appError.Details, 3)
	assert.Equal(t, "username", appError.Details[0].Field)
	assert.Equal(t, "password", appError.Details[1].Field)
	assert.Equal(t, "consent", appError.Details[2].Field)
}

func TestValidator_LengthCountsRunes(t *testing.T) {
	// Multi-byte characters count once each.
	v := &Validator{}
	require.NoError(t, v.MinLen("username", "dänny", 5).Err())

	v = &Validator{}
	require.Error(t, v.MaxLen("message", "héllo", 4).Err())
}

func TestValidator_OneOfRejectsUnknownValue(t *testing.T) {
	v := &Validator{}
	err := v.OneOf("view", "dashboard", "login", "create_account").Err()

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	require.Len(t, appError.Details, 1)
	assert.Contains(t, appError.Details[0].Message, "login")
}

func TestValidator_Custom(t *testing.T) {
	v := &Validator{}
	err := v.Custom("message", true, "Message is too long").Err()

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "Message is too long", appError.Details[0].Message)
}

func TestRequiredError(t *testing.T) {
	err := RequiredError("username", "This field is required")

	assert.Equal(t, "VALIDATION_ERROR", err.Code)
	require.Len(t, err.Details, 1)
	assert.Equal(t, "username", err.Details[0].Field)
}
