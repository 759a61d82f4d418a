/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package scan

import (
	"path/filepath"
	"strings"
)

// Language selects the grammar used to scan a source file.
type Language int

const (
	// LanguageCSS covers stylesheets (.css, .scss, .less).
	LanguageCSS Language = iota

	// LanguageJavaScript covers scripts (.js, .jsx, .mjs, .cjs, .ts, .tsx).
	LanguageJavaScript

	// LanguageText covers everything else (markdown, HTML, plain docs).
	// Text files are scanned with pattern matching instead of a grammar.
	LanguageText
)

// String returns the language name.
func (l Language) String() string {
	switch l {
	case LanguageCSS:
		return "css"
	case LanguageJavaScript:
		return "javascript"
	default:
		return "text"
	}
}

// DetectLanguage picks the scanning language from a file extension.
func DetectLanguage(path string) Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".css", ".scss", ".less":
		return LanguageCSS
	case ".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx":
		return LanguageJavaScript
	default:
		return LanguageText
	}
}
