/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package export

import (
	"fmt"
	"strings"

	"bennypowers.dev/tsror/token"
)

// Format represents an output format for token serialization.
type Format string

const (
	// FormatDTCG outputs DTCG-style nested JSON (default).
	FormatDTCG Format = "dtcg"

	// FormatFlatJSON outputs flat key-value JSON.
	FormatFlatJSON Format = "json"

	// FormatJS outputs an ES module with camelCase const exports.
	FormatJS Format = "js"

	// FormatSCSS outputs SCSS variables with kebab-case names.
	FormatSCSS Format = "scss"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatDTCG),
		string(FormatFlatJSON),
		string(FormatJS),
		string(FormatSCSS),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "dtcg", "":
		return FormatDTCG, nil
	case "json", "flat", "flat-json":
		return FormatFlatJSON, nil
	case "js", "esm", "javascript":
		return FormatJS, nil
	case "scss", "sass":
		return FormatSCSS, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// Extension returns the conventional file extension for the format.
func (f Format) Extension() string {
	switch f {
	case FormatJS:
		return ".js"
	case FormatSCSS:
		return ".scss"
	default:
		return ".json"
	}
}

// FormatTokens converts tokens to the specified output format.
func FormatTokens(tokens []*token.Token, format Format, opts Options) ([]byte, error) {
	var f Formatter
	switch format {
	case FormatDTCG:
		f = NewDTCGFormatter()
	case FormatFlatJSON:
		f = NewFlatJSONFormatter()
	case FormatJS:
		f = NewJSFormatter()
	case FormatSCSS:
		f = NewSCSSFormatter()
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return f.Format(tokens, opts)
}
