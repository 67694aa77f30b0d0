// Copyright (c) 2026 SMS Guard. All rights reserved.
// Author: kelompok6.smartapps@gmail.com

// JSON file implementation of the credential store. Storage-specific errors
// (missing file, malformed JSON) are absorbed or mapped to domain-friendly
// [apperr.AppError] types so callers never see filesystem details.

package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/kelompokcp/smsguard/internal/platform/apperr"
	"github.com/kelompokcp/smsguard/internal/platform/sec"
)

// credentialFile is the on-disk shape of the credential document:
// a single top-level "users" object mapping usernames to hex digests.
type credentialFile struct {
	Users map[string]string `json:"users"`
}

// JSONUserRepository implements [UserRepository] on top of one JSON document.
//
// # Concurrency
//
// A mutex makes this repository the single coordinating owner of the file
// within the process: every operation re-reads the document, applies its
// change, and rewrites the whole document. Two *processes* writing the same
// file still race (last writer wins, silently discarding the other update) —
// an accepted limitation of the flat-file store, not a safe design.
type JSONUserRepository struct {
	path string
	mu   sync.Mutex
}

/*
NewJSONUserRepository opens (and if needed creates) the credential document.

Description: Creates the parent directory, loads the existing document
fail-soft (a missing, unreadable, or malformed file is treated as an empty
user set), seeds any [DefaultAccounts] not already present using the digest
function, and immediately writes the merged result back so the file is always
well-formed and current.

Parameters:
  - path: Filesystem location of the credential JSON document

Returns:
  - *JSONUserRepository: Ready-to-use repository
  - error: apperr.StorageUnavailable if the seeded document cannot be written
*/
func NewJSONUserRepository(path string) (*JSONUserRepository, error) {
	repository := &JSONUserRepository{path: path}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, apperr.StorageUnavailable(fmt.Errorf("json_user_repo_mkdir_failed: %w", err))
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	// Fail-soft read: a broken document degrades to an empty set and is
	// repaired by the write-back below.
	users := repository.readLocked()

	// Seed default accounts that are not already present.
	for username, plaintext := range DefaultAccounts {
		if _, exists := users[username]; !exists {
			users[username] = sec.DigestPassword(plaintext)
		}
	}

	// Write back so the file always exists and is well-formed after load.
	if err := repository.writeLocked(users); err != nil {
		return nil, err
	}

	return repository, nil
}

// # UserRepository Implementation

/*
FindByUsername retrieves a user record by its exact, case-sensitive username.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound if the username is absent
*/
func (repository *JSONUserRepository) FindByUsername(context context.Context, username string) (*User, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	users := repository.readLocked()
	hash, exists := users[username]
	if !exists {
		return nil, apperr.NotFound("User")
	}

	return &User{Username: username, PasswordHash: hash}, nil
}

/*
Create persists a new user record into the credential document.

Parameters:
  - context: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: apperr.Conflict if taken, apperr.StorageUnavailable on write failure
*/
func (repository *JSONUserRepository) Create(context context.Context, user *User) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	users := repository.readLocked()
	if _, exists := users[user.Username]; exists {
		return apperr.Conflict("Username is already taken")
	}

	users[user.Username] = user.PasswordHash
	return repository.writeLocked(users)
}

/*
UpdatePassword overwrites the stored hash for an existing username.

Parameters:
  - context: context.Context
  - username: string
  - newHash: string

Returns:
  - error: apperr.NotFound if absent, apperr.StorageUnavailable on write failure
*/
func (repository *JSONUserRepository) UpdatePassword(context context.Context, username, newHash string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	users := repository.readLocked()
	if _, exists := users[username]; !exists {
		return apperr.NotFound("User")
	}

	users[username] = newHash
	return repository.writeLocked(users)
}

/*
Snapshot returns a copy of the full username -> hash mapping.

Parameters:
  - context: context.Context

Returns:
  - map[string]string: Detached copy; safe for the caller to mutate
  - error: Always nil for the JSON store (reads fail soft)
*/
func (repository *JSONUserRepository) Snapshot(context context.Context) (map[string]string, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	users := repository.readLocked()
	snapshot := make(map[string]string, len(users))
	for username, hash := range users {
		snapshot[username] = hash
	}

	return snapshot, nil
}

/*
Save replaces the entire credential document with the given mapping.

Parameters:
  - context: context.Context
  - users: map[string]string

Returns:
  - error: apperr.StorageUnavailable on write failure
*/
func (repository *JSONUserRepository) Save(context context.Context, users map[string]string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	return repository.writeLocked(users)
}

// Ping reports whether the credential document is currently readable.
// Used by the readiness probe.
func (repository *JSONUserRepository) Ping(context context.Context) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, err := os.Stat(repository.path); err != nil {
		return fmt.Errorf("json_user_repo_ping_failed: %w", err)
	}
	return nil
}

// # Internal I/O

// readLocked loads the document under the held mutex. Any failure (missing
// file, unreadable file, malformed JSON, wrong shape) yields an empty map:
// read errors never propagate to callers.
func (repository *JSONUserRepository) readLocked() map[string]string {
	raw, err := os.ReadFile(repository.path)
	if err != nil {
		return make(map[string]string)
	}

	var document credentialFile
	if err := json.Unmarshal(raw, &document); err != nil || document.Users == nil {
		return make(map[string]string)
	}

	return document.Users
}

// writeLocked rewrites the whole document under the held mutex. Write errors
// are not recoverable: the caller's operation is not durable and must fail.
func (repository *JSONUserRepository) writeLocked(users map[string]string) error {
	raw, err := json.MarshalIndent(credentialFile{Users: users}, "", "  ")
	if err != nil {
		return apperr.StorageUnavailable(fmt.Errorf("json_user_repo_marshal_failed: %w", err))
	}

	if err := os.WriteFile(repository.path, raw, 0o600); err != nil {
		return apperr.StorageUnavailable(fmt.Errorf("json_user_repo_write_failed: %w", err))
	}

	return nil
}
