/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package normalize provides canonical name and value forms for tokens.
package normalize

import (
	"strings"
	"unicode"
)

// Delimiter is the canonical path separator for token names.
const Delimiter = "."

// Name returns the canonical form of a token name: leading decorative
// glyphs (Figma prefix markers like "◆" or "_") stripped, path
// separators unified to Delimiter, lowercased.
//
// Name is idempotent: Name(Name(s)) == Name(s).
func Name(s string) string {
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	s = strings.ReplaceAll(s, "/", Delimiter)
	s = strings.ToLower(s)
	return s
}
