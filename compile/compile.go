/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package compile produces versioned token bundles. A bundle pairs a CSS
// encoding (custom properties, one block per mode) with a JSON encoding
// (flat name to value maps), stamped with a semantic version derived
// from the previous bundle in the lineage.
package compile

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"bennypowers.dev/tsror/internal/logger"
	"bennypowers.dev/tsror/token"
)

// ErrEmptyInput is returned when compilation is requested over zero
// usable tokens. An empty bundle would be indistinguishable from a
// successful no-op, so the condition is surfaced as a distinct error
// and the previous bundle is left untouched.
var ErrEmptyInput = errors.New("no tokens to compile")

// Kind distinguishes bundle targets.
type Kind string

const (
	// Global bundles cover the full active token set.
	Global Kind = "global"

	// Component bundles cover the subset a single component references.
	Component Kind = "component"
)

// Bundle is a compiled artifact.
type Bundle struct {
	Kind        Kind     `json:"kind"`
	ComponentID string   `json:"componentId,omitempty"`
	Version     Version  `json:"version"`
	Modes       []string `json:"modes"`
	CSSContent  string   `json:"cssContent"`
	JSONContent string   `json:"jsonContent"`
	TokenCount  int      `json:"tokenCount"`

	// SetFingerprint and ContentFingerprint identify the compiled token
	// set and its values. The next compile in the lineage diffs against
	// them to pick a version bump.
	SetFingerprint     string `json:"setFingerprint"`
	ContentFingerprint string `json:"contentFingerprint"`
}

// Options configures compilation.
type Options struct {
	// Prefix is prepended to every CSS custom property name.
	Prefix string

	// ModeAttribute is the HTML attribute mode blocks select on
	// (default "data-theme").
	ModeAttribute string

	// Major forces a major version bump. Major bumps are never
	// automatic; a set or value diff only ever bumps minor or patch.
	Major bool
}

func (o Options) withDefaults() Options {
	if o.ModeAttribute == "" {
		o.ModeAttribute = "data-theme"
	}
	return o
}

// CompileGlobal compiles the full token set into a global bundle.
//
// Tokens the encoder cannot use (empty name or value) are skipped with
// a logged warning rather than failing the whole bundle. prev may be
// nil for the first bundle of a lineage.
func CompileGlobal(tokens []*token.Token, prev *Bundle, opts Options) (*Bundle, error) {
	return compileBundle(Global, "", tokens, prev, opts)
}

func compileBundle(kind Kind, componentID string, tokens []*token.Token, prev *Bundle, opts Options) (*Bundle, error) {
	opts = opts.withDefaults()

	usable := make([]*token.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Name == "" || t.Value == "" {
			logger.Warn("skipping malformed token %q (empty name or value)", t.Name)
			continue
		}
		usable = append(usable, t)
	}
	if len(usable) == 0 {
		return nil, ErrEmptyInput
	}

	sorted := sortTokens(usable)
	modes := collectModes(sorted)

	jsonContent, err := renderJSON(sorted, modes)
	if err != nil {
		return nil, fmt.Errorf("encoding bundle JSON: %w", err)
	}

	return &Bundle{
		Kind:               kind,
		ComponentID:        componentID,
		Version:            nextVersion(prev, sorted, opts.Major),
		Modes:              modes,
		CSSContent:         renderCSS(sorted, modes, opts),
		JSONContent:        jsonContent,
		TokenCount:         len(sorted),
		SetFingerprint:     setFingerprint(sorted),
		ContentFingerprint: contentFingerprint(sorted),
	}, nil
}

// sortTokens returns a copy of tokens sorted by name.
func sortTokens(tokens []*token.Token) []*token.Token {
	sorted := make([]*token.Token, len(tokens))
	copy(sorted, tokens)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

// collectModes merges the mode declarations of all tokens, preserving
// each token's declared order on first sight. The first mode seen is
// the bundle default.
func collectModes(tokens []*token.Token) []string {
	var modes []string
	seen := make(map[string]bool)
	for _, t := range tokens {
		for _, mode := range t.Modes {
			if !seen[mode] {
				seen[mode] = true
				modes = append(modes, mode)
			}
		}
	}
	return modes
}

// renderJSON encodes the default-mode flat map, with a structurally
// parallel map per mode when the set is multi-mode.
func renderJSON(tokens []*token.Token, modes []string) (string, error) {
	flat := func(mode string) map[string]string {
		m := make(map[string]string, len(tokens))
		for _, t := range tokens {
			if mode == "" {
				m[t.Name] = t.Value
			} else {
				m[t.Name] = t.ValueForMode(mode)
			}
		}
		return m
	}

	var payload any
	if len(modes) < 2 {
		payload = flat("")
	} else {
		byMode := make(map[string]map[string]string, len(modes))
		for _, mode := range modes {
			byMode[mode] = flat(mode)
		}
		payload = byMode
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
