/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package compile

import (
	"sort"
	"strings"
	"unicode"

	"bennypowers.dev/tsror/token"
)

// Match is the result of resolving extracted references against the
// registry token set.
type Match struct {
	// Tokens are the registry tokens at least one reference resolved
	// to, sorted by name.
	Tokens []*token.Token

	// Unmatched are references that looked like token paths but
	// resolved to nothing, sorted. Callers surface them as stale or
	// broken references.
	Unmatched []string
}

// MatchReferences resolves raw references (CSS custom property names,
// dotted paths, camelCase identifiers) against tokens. Matching is
// fuzzy over a normalized comparable form, so case and delimiter
// variation between the component author and the registry does not
// break resolution.
func MatchReferences(refs []string, tokens []*token.Token) Match {
	index := make(map[string]*token.Token, len(tokens))
	for _, t := range tokens {
		index[comparableKey(t.Name)] = t
	}

	matched := make(map[string]*token.Token)
	unmatchedSet := make(map[string]bool)

	for _, ref := range refs {
		key := comparableKey(ref)
		if key == "" {
			continue
		}
		if t, ok := index[key]; ok {
			matched[t.Name] = t
		} else {
			unmatchedSet[ref] = true
		}
	}

	match := Match{Tokens: make([]*token.Token, 0, len(matched))}
	for _, t := range matched {
		match.Tokens = append(match.Tokens, t)
	}
	sort.Slice(match.Tokens, func(i, j int) bool {
		return match.Tokens[i].Name < match.Tokens[j].Name
	})

	for ref := range unmatchedSet {
		match.Unmatched = append(match.Unmatched, ref)
	}
	sort.Strings(match.Unmatched)

	return match
}

// CompileComponent compiles the subset of tokens a component references
// into a component bundle. The unmatched reference list is returned
// alongside the bundle; ErrEmptyInput is returned when no reference
// resolved.
func CompileComponent(componentID string, tokens []*token.Token, refs []string, prev *Bundle, opts Options) (*Bundle, []string, error) {
	match := MatchReferences(refs, tokens)
	bundle, err := compileBundle(Component, componentID, match.Tokens, prev, opts)
	if err != nil {
		return nil, match.Unmatched, err
	}
	return bundle, match.Unmatched, nil
}

// comparableKey reduces a reference or token name to lowercase letters and
// digits. "--color-primary", "color.primary" and "colorPrimary" all
// reduce to "colorprimary".
func comparableKey(s string) string {
	s = strings.TrimPrefix(s, "--")
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	return sb.String()
}
