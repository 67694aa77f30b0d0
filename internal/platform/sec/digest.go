// Copyright (c) 2026 SMS Guard. All rights reserved.
// Author: kelompok6.smartapps@gmail.com

package sec

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// DigestPassword returns the lowercase hex-encoded SHA-256 digest of the
// UTF-8 plaintext password.
//
// # Compatibility
//
// The credential file stores exactly this format: a single unsalted SHA-256
// round per password. Switching to a salted slow hash (bcrypt, argon2) would
// invalidate every hash already on disk, so any migration must rewrite the
// file as a whole. See DESIGN.md for the hardening discussion.
func DigestPassword(plainTextPassword string) string {
	sum := sha256.Sum256([]byte(plainTextPassword))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword compares a plain-text password against a stored hex digest
// in constant time.
func VerifyPassword(plainTextPassword, storedDigest string) bool {
	computed := DigestPassword(plainTextPassword)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedDigest)) == 1
}
