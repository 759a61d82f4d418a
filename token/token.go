/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the canonical design token types for the
// ingestion and compilation pipeline.
package token

import (
	"strings"
	"time"
)

// Category is the semantic category of a token value.
type Category string

const (
	// Color tokens hold hex, rgb()/hsl() or named color values.
	Color Category = "color"

	// Typography tokens hold font sizes, weights, families and line heights.
	Typography Category = "typography"

	// Spacing tokens hold gap, margin, padding and inset dimensions.
	Spacing Category = "spacing"

	// Sizing tokens hold width and height dimensions.
	Sizing Category = "sizing"

	// Radius tokens hold corner radii.
	Radius Category = "radius"

	// Shadow tokens hold box-shadow and elevation values.
	Shadow Category = "shadow"

	// Blur tokens hold blur effect values.
	Blur Category = "blur"

	// Unknown marks tokens whose category could not be determined.
	// The preview stage lets users reclassify these before commit.
	Unknown Category = "unknown"
)

// Categories returns all valid categories in display order.
func Categories() []Category {
	return []Category{Color, Typography, Spacing, Sizing, Radius, Shadow, Blur, Unknown}
}

// Valid returns true if c is a recognized category.
func (c Category) Valid() bool {
	switch c {
	case Color, Typography, Spacing, Sizing, Radius, Shadow, Blur, Unknown:
		return true
	}
	return false
}

// Token represents a named design value.
//
// Identity is the Name, unique within a (project, tenant) registry scope.
// Re-import of the same name updates the existing row.
type Token struct {
	// Name is the canonical dotted path, normalized (lowercase,
	// decorative glyphs stripped, separators unified to ".").
	Name string `json:"name"`

	// Value is the canonical single-mode representation, used when no
	// mode is selected or as the default mode value.
	Value string `json:"value"`

	// Type is the semantic category. Mutable post-import.
	Type Category `json:"type"`

	// Description is optional documentation carried from
	// $description/description fields when present.
	Description string `json:"description,omitempty"`

	// ValueByMode holds per-mode values when the source defined more
	// than one mode (e.g. light/dark). Keys are user-facing mode names.
	ValueByMode map[string]string `json:"valueByMode,omitempty"`

	// Modes declares the mode ordering for deterministic bundle
	// generation. The first entry is the default mode.
	Modes []string `json:"modes,omitempty"`

	// SourceFileID references the uploaded file that produced this
	// token. Empty for manually created tokens.
	SourceFileID string `json:"sourceFileId,omitempty"`
}

// CSSVariableName returns the CSS custom property name for this token.
// e.g. "--color-primary" or "--my-prefix-color-primary"
func (t *Token) CSSVariableName(prefix string) string {
	name := strings.ReplaceAll(t.Name, ".", "-")
	if prefix != "" {
		prefix = strings.ReplaceAll(prefix, ".", "-")
		return "--" + prefix + "-" + name
	}
	return "--" + name
}

// Path returns the dotted path segments of the token name.
func (t *Token) Path() []string {
	return strings.Split(t.Name, ".")
}

// PathPrefixes returns every non-empty proper prefix of the token's
// dotted name, shortest first. For "a.b.c" it returns ["a", "a.b"].
func (t *Token) PathPrefixes() []string {
	segments := t.Path()
	if len(segments) < 2 {
		return nil
	}
	prefixes := make([]string, 0, len(segments)-1)
	for i := 1; i < len(segments); i++ {
		prefixes = append(prefixes, strings.Join(segments[:i], "."))
	}
	return prefixes
}

// DefaultMode returns the first declared mode, or "" for single-mode tokens.
func (t *Token) DefaultMode() string {
	if len(t.Modes) == 0 {
		return ""
	}
	return t.Modes[0]
}

// ValueForMode returns the token's value in the given mode, falling
// back to the default value when the mode is absent.
func (t *Token) ValueForMode(mode string) string {
	if v, ok := t.ValueByMode[mode]; ok {
		return v
	}
	return t.Value
}

// SourceFile is an uploaded token document tracked by the registry.
type SourceFile struct {
	// ID identifies the file within its registry scope.
	ID string `json:"id"`

	// Name is the user-facing file name, renamable after upload.
	Name string `json:"name"`

	// OriginalName is the name the file was uploaded with.
	OriginalName string `json:"originalName"`

	// TokenCount is the number of tokens this file's import produced,
	// computed at import time.
	TokenCount int `json:"tokenCount"`

	// IsActive controls whether this file's tokens participate in
	// compilation. Toggling it off excludes the tokens without
	// deleting them.
	IsActive bool `json:"isActive"`

	// UploadedAt records when the file was imported.
	UploadedAt time.Time `json:"uploadedAt"`

	// UploadedBy records who imported the file.
	UploadedBy string `json:"uploadedBy,omitempty"`
}
