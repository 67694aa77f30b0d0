// Copyright (c) 2026 SMS Guard. All rights reserved.
// Author: kelompok6.smartapps@gmail.com

package auth

import "time"

// # Authentication Constraints

const (
	// MinUsernameLength is the minimum number of characters in a username,
	// counted as Unicode code points, measured after trimming whitespace.
	MinUsernameLength = 4

	// MinPasswordLength is the minimum number of characters in a password
	// at creation and reset time. Existing hashes are never re-checked.
	MinPasswordLength = 5

	// SessionTTL is the duration a signed session token remains valid.
	// Sessions are stateless: there is nothing to revoke server-side, so the
	// TTL is the only bound on a leaked token's lifetime.
	SessionTTL = 12 * time.Hour
)

// DefaultAccounts maps the seed usernames to their plaintext passwords.
// The store digests these on first load; the plaintexts exist only here.
//
// These mirror the accounts shipped with the original deployment so that an
// operator can sign in to a fresh install without manual provisioning.
var DefaultAccounts = map[string]string{
	"danny": "12345",
	"admin": "admin123",
}
