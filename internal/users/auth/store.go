// Copyright (c) 2026 SMS Guard. All rights reserved.
// Author: kelompok6.smartapps@gmail.com

package auth

import "context"

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		FindByUsername returns the account with the given username.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound if absent, or storage retrieval failures
	*/
	FindByUsername(context context.Context, username string) (*User, error)

	/*
		Create persists a brand-new user account to the storage.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: apperr.Conflict if the username exists, or persistence failures
	*/
	Create(context context.Context, user *User) error

	/*
		UpdatePassword replaces only the user's password hash.

		Parameters:
		  - context: context.Context
		  - username: string
		  - newHash: string

		Returns:
		  - error: apperr.NotFound if absent, or persistence failures
	*/
	UpdatePassword(context context.Context, username, newHash string) error

	/*
		Snapshot returns the full username -> password hash mapping.

		Parameters:
		  - context: context.Context

		Returns:
		  - map[string]string: Copy of the stored mapping; mutations do not write through
		  - error: Storage retrieval failures
	*/
	Snapshot(context context.Context) (map[string]string, error)

	/*
		Save replaces the entire stored mapping with the given one.

		Description: The whole document is rewritten; there are no partial
		updates. Save(Snapshot()) leaves the effective contents unchanged.

		Parameters:
		  - context: context.Context
		  - users: map[string]string

		Returns:
		  - error: apperr.StorageUnavailable on write failure
	*/
	Save(context context.Context, users map[string]string) error
}
