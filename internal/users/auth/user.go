// Copyright (c) 2026 SMS Guard. All rights reserved.
// Author: kelompok6.smartapps@gmail.com

/*
Package auth implements the user identity layer of SMS Guard.

It defines the core domain entity (User) and the logic for authentication and
account self-service (registration, password reset).

# Architecture

This layer is the "Truth" of the system. Entities defined here have no external
dependencies and encapsulate all business rules related to user identity.
*/
package auth

// # Domain Entities

// User represents a registered account.
//
// The username is the identity: unique within the store and case-sensitive.
// The plaintext password is never stored, only its digest.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Explicitly omitted from JSON for security.
}

// # Field Identifiers

// FieldView is the wire name of the view selector, used in validation messages.
const FieldView = "view"
