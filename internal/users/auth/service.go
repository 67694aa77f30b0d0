// Copyright (c) 2026 SMS Guard. All rights reserved.
// Author: kelompok6.smartapps@gmail.com

package auth

import (
	"context"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/kelompokcp/smsguard/internal/platform/apperr"
	"github.com/kelompokcp/smsguard/internal/platform/sec"
)

// # Error Taxonomy
//
// Checks run in a fixed order and the first failure wins, so a request with
// several problems always reports the same one. The order is encoded in the
// service methods below, not in the transport layer.

var (
	// ErrEmptyInput rejects a login attempt with a blank username or password.
	ErrEmptyInput = apperr.New("EMPTY_INPUT", "Username and password are required", http.StatusBadRequest)

	// ErrUnknownUser rejects a login for a username that is not registered.
	ErrUnknownUser = apperr.New("UNKNOWN_USER", "Username is not registered", http.StatusUnauthorized)

	// ErrWrongPassword rejects a login or reset whose password digest does not match.
	ErrWrongPassword = apperr.New("WRONG_PASSWORD", "Password is incorrect", http.StatusUnauthorized)

	// ErrConsentRequired rejects a registration without the data-consent checkbox.
	ErrConsentRequired = apperr.New("CONSENT_REQUIRED", "You must agree to the data processing terms", http.StatusBadRequest)

	// ErrAllFieldsRequired rejects a registration with any blank field.
	ErrAllFieldsRequired = apperr.New("EMPTY_INPUT", "All fields are required", http.StatusBadRequest)

	// ErrUsernameTooShort rejects usernames under MinUsernameLength characters.
	ErrUsernameTooShort = apperr.New("USERNAME_TOO_SHORT", "Username must be at least 4 characters", http.StatusBadRequest)

	// ErrPasswordTooShort rejects passwords under MinPasswordLength characters.
	ErrPasswordTooShort = apperr.New("PASSWORD_TOO_SHORT", "Password must be at least 5 characters", http.StatusBadRequest)

	// ErrPasswordMismatch rejects a registration or reset whose confirmation differs.
	ErrPasswordMismatch = apperr.New("PASSWORD_MISMATCH", "Passwords do not match", http.StatusBadRequest)

	// ErrUsernameTaken rejects a registration for an already-registered username.
	ErrUsernameTaken = apperr.New("USERNAME_TAKEN", "Username is already taken", http.StatusConflict)
)

// TokenProvider issues signed session tokens. Implemented by [sec.TokenService].
type TokenProvider interface {
	GenerateSessionToken(username string, timeToLive time.Duration) (string, error)
	VerifyToken(tokenString string) (*sec.SessionClaims, error)
}

// # Application Service

// Service orchestrates authentication and account self-service use cases.
type Service struct {
	users  UserRepository
	tokens TokenProvider
}

// NewService creates an authentication service with its dependencies.
func NewService(users UserRepository, tokens TokenProvider) *Service {
	return &Service{users: users, tokens: tokens}
}

// # Inputs and Outputs

// RegisterInput carries the fields of an account-creation request.
type RegisterInput struct {
	Username        string
	Password        string
	ConfirmPassword string
	Consent         bool
}

// ResetPasswordInput carries the fields of a password-reset request.
type ResetPasswordInput struct {
	Username        string
	OldPassword     string
	NewPassword     string
	ConfirmPassword string
}

// AuthSession is the result of a successful login or registration.
type AuthSession struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}

// # Use Cases

/*
Authenticate verifies a username/password pair and issues a session.

Description: Checks run in order: blank input, unknown username, wrong
password. Blankness is judged on the trimmed values, but lookup and digesting
use the submitted values unchanged, so credentials with deliberate surrounding
whitespace keep working exactly as they were registered.

Parameters:
  - context: context.Context
  - username: string (Submitted as-is; case-sensitive)
  - password: string (Submitted as-is)

Returns:
  - *AuthSession: Signed session token, its expiry, and the account
  - error: ErrEmptyInput, ErrUnknownUser, ErrWrongPassword, or infrastructure failures
*/
func (service *Service) Authenticate(context context.Context, username, password string) (*AuthSession, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil, ErrEmptyInput
	}

	user, err := service.users.FindByUsername(context, username)
	if err != nil {
		if apperr.HasCode(err, "NOT_FOUND") {
			return nil, ErrUnknownUser
		}
		return nil, err
	}

	if !sec.VerifyPassword(password, user.PasswordHash) {
		return nil, ErrWrongPassword
	}

	return service.issueSession(user)
}

/*
Register creates a new account and signs the user in.

Description: Checks run in order: consent, blank fields, username length,
password length, password confirmation, username availability. The username is
trimmed before length check and storage; passwords are used as submitted.
Lengths are counted in Unicode code points, not bytes.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *AuthSession: Session for the newly created account
  - error: ErrConsentRequired, ErrAllFieldsRequired, ErrUsernameTooShort,
    ErrPasswordTooShort, ErrPasswordMismatch, ErrUsernameTaken, or
    infrastructure failures
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*AuthSession, error) {
	if !input.Consent {
		return nil, ErrConsentRequired
	}

	username := strings.TrimSpace(input.Username)
	if username == "" || strings.TrimSpace(input.Password) == "" || strings.TrimSpace(input.ConfirmPassword) == "" {
		return nil, ErrAllFieldsRequired
	}
	if utf8.RuneCountInString(username) < MinUsernameLength {
		return nil, ErrUsernameTooShort
	}
	if utf8.RuneCountInString(input.Password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if input.Password != input.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	if _, err := service.users.FindByUsername(context, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !apperr.HasCode(err, "NOT_FOUND") {
		return nil, err
	}

	user := &User{
		Username:     username,
		PasswordHash: sec.DigestPassword(input.Password),
	}
	if err := service.users.Create(context, user); err != nil {
		// The availability check above raced with another registration.
		if apperr.HasCode(err, "CONFLICT") {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return service.issueSession(user)
}

/*
ResetPassword replaces an account's password after proving the old one.

Description: Checks run in order: unknown username, wrong old password, new
password length, new password confirmation. There is no blank-field pre-check:
a blank username reads as an unknown user and a blank old password as a wrong
one. The old password is the proof of ownership; no session is required, so a
locked-out user can recover from the login screen.

Parameters:
  - context: context.Context
  - input: ResetPasswordInput

Returns:
  - error: ErrUnknownUser, ErrWrongPassword, ErrPasswordTooShort,
    ErrPasswordMismatch, or infrastructure failures
*/
func (service *Service) ResetPassword(context context.Context, input ResetPasswordInput) error {
	user, err := service.users.FindByUsername(context, input.Username)
	if err != nil {
		if apperr.HasCode(err, "NOT_FOUND") {
			return ErrUnknownUser
		}
		return err
	}

	if !sec.VerifyPassword(input.OldPassword, user.PasswordHash) {
		return ErrWrongPassword
	}
	if utf8.RuneCountInString(input.NewPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if input.NewPassword != input.ConfirmPassword {
		return ErrPasswordMismatch
	}

	return service.users.UpdatePassword(context, user.Username, sec.DigestPassword(input.NewPassword))
}

// issueSession signs a fresh session token for the given account.
func (service *Service) issueSession(user *User) (*AuthSession, error) {
	token, err := service.tokens.GenerateSessionToken(user.Username, SessionTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &AuthSession{
		Token:     token,
		ExpiresAt: time.Now().Add(SessionTTL),
		User:      user,
	}, nil
}
