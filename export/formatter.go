/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package export serializes registry tokens to developer-facing formats:
// DTCG JSON, flat JSON, an ES module, and SCSS variables.
package export

import (
	"sort"
	"strings"
	"unicode"

	"bennypowers.dev/tsror/token"
)

// Formatter converts a token set to one output format.
type Formatter interface {
	Format(tokens []*token.Token, opts Options) ([]byte, error)
}

// Options configures formatter behavior.
type Options struct {
	// Prefix is added to output variable names.
	Prefix string

	// Delimiter joins path segments in flattened names. Defaults to "-".
	Delimiter string
}

func (o Options) delimiter() string {
	if o.Delimiter == "" {
		return "-"
	}
	return o.Delimiter
}

// SortTokens returns a copy of tokens sorted by name.
func SortTokens(tokens []*token.Token) []*token.Token {
	sorted := make([]*token.Token, len(tokens))
	copy(sorted, tokens)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

// FlatName joins a token's path segments with the delimiter, applying
// the prefix when set.
func FlatName(t *token.Token, opts Options) string {
	name := strings.Join(t.Path(), opts.delimiter())
	if opts.Prefix == "" {
		return name
	}
	return opts.Prefix + opts.delimiter() + name
}

// ToCamelCase converts a dotted or dashed name to camelCase.
func ToCamelCase(s string) string {
	words := splitIntoWords(s)
	if len(words) == 0 {
		return ""
	}

	result := strings.ToLower(words[0])
	for _, word := range words[1:] {
		if len(word) > 0 {
			result += strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}
	return result
}

// splitIntoWords splits on hyphens, underscores, dots, spaces and
// camelCase boundaries.
func splitIntoWords(s string) []string {
	var words []string
	var current strings.Builder

	for i, r := range s {
		switch {
		case r == '-' || r == '_' || r == '.' || r == ' ':
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		case unicode.IsUpper(r) && i > 0:
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}
