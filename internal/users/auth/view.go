// Copyright (c) 2026 SMS Guard. All rights reserved.
// Author: kelompok6.smartapps@gmail.com

package auth

import "sync"

// # Authentication Views

// View identifies which of the four authentication screens a visitor is on.
//
// This is purely presentational navigation state: it never influences an
// authentication decision and is never persisted. Each process starts with an
// empty view table and every visitor defaults to [ViewLogin].
type View string

const (
	ViewLogin          View = "login"
	ViewCreateAccount  View = "create_account"
	ViewForgotPassword View = "forgot_password"
	ViewResetPassword  View = "reset_password"
)

// DefaultView is the screen shown to a visitor with no recorded state.
const DefaultView = ViewLogin

// Valid reports whether v is one of the four defined authentication views.
func (v View) Valid() bool {
	switch v {
	case ViewLogin, ViewCreateAccount, ViewForgotPassword, ViewResetPassword:
		return true
	}
	return false
}

// ViewNames returns the view identifiers accepted over the wire.
func ViewNames() []string {
	return []string{
		string(ViewLogin),
		string(ViewCreateAccount),
		string(ViewForgotPassword),
		string(ViewResetPassword),
	}
}

// # View State Registry

// ViewState tracks the current authentication view per visitor session.
//
// # Concurrency
//
// Safe for concurrent use. Entries are tiny and a process restart clears
// them, so no eviction is needed.
type ViewState struct {
	mu    sync.RWMutex
	views map[string]View
}

// NewViewState creates an empty view registry.
func NewViewState() *ViewState {
	return &ViewState{views: make(map[string]View)}
}

// Get returns the recorded view for the visitor session, or [DefaultView]
// if none has been recorded.
func (s *ViewState) Get(sessionID string) View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.views[sessionID]; ok {
		return v
	}
	return DefaultView
}

// Set records the visitor session's current view. Invalid views are ignored.
func (s *ViewState) Set(sessionID string, v View) {
	if !v.Valid() || sessionID == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[sessionID] = v
}
