// Copyright (c) 2026 SMS Guard. All rights reserved.
// Author: kelompok6.smartapps@gmail.com

// Package textnorm canonicalizes free-form message text before tokenization.
//
// # Usage
//
// SMS messages arrive with inconsistent casing and the occasional accented
// character (pasted from other apps). The vocabulary holds lowercase ASCII
// tokens, so inference-time text is lowercased and accent-folded before
// lookup.
//
// Accent folding is stricter than the training pipeline, which only
// lowercases: an accented spelling of a vocabulary term matches here where
// training-time vectorization would have missed it. For the all-ASCII
// vocabulary this only widens matching, never shifts an existing token to a
// different feature index.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize converts an arbitrary Unicode string into the canonical form used
// at training time.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase.
func Normalize(s string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	// 2. Lowercase
	return strings.ToLower(result)
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
