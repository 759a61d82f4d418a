/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package classify

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/tsror/token"
)

// Empirically chosen bounds carried over from the original heuristics.
// Exported so callers can cite them; not meant to be tuned per project.
const (
	// FontSizeMinPx and FontSizeMaxPx bound the px range in which a
	// bare number on a typography-named token is judged a font size.
	FontSizeMinPx = 8.0
	FontSizeMaxPx = 120.0

	// LineHeightMin and LineHeightMax bound the unitless ratio range
	// judged a line height.
	LineHeightMin = 0.5
	LineHeightMax = 3.0
)

var (
	hexPattern     = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	colorFnPattern = regexp.MustCompile(`^(?i)(?:rgb|rgba|hsl|hsla)\(`)
	unitPattern    = regexp.MustCompile(`^-?\d+(?:\.\d+)?(px|rem|em|%)$`)
	numberPattern  = regexp.MustCompile(`^-?\d+(?:\.\d+)?$`)

	// multiNumberPattern matches shadow-shaped values: two or more
	// leading dimensions, e.g. "0 2px 4px rgba(0,0,0,0.2)".
	multiNumberPattern = regexp.MustCompile(`^(?:inset\s+)?-?\d+(?:\.\d+)?(?:px|rem|em)?\s+-?\d+(?:\.\d+)?(?:px|rem|em)?(\s|$)`)

	fontWeightKeywords = map[string]bool{
		"normal":  true,
		"bold":    true,
		"bolder":  true,
		"lighter": true,
	}
)

// Value classifies a token by the lexical shape of its canonical string
// value. hint is the category the name classifier suggested, if any; it
// re-judges ambiguous bare numbers as font sizes or line heights.
// Returns false when the value shape carries no signal.
func Value(value string, hint token.Category) (token.Category, bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", false
	}

	if hexPattern.MatchString(v) || colorFnPattern.MatchString(v) {
		return token.Color, true
	}
	if isNamedColor(v) {
		return token.Color, true
	}

	// Shadow shapes before single dimensions: "0 2px 4px ..." would
	// otherwise never be reached.
	if strings.HasPrefix(v, "inset ") || multiNumberPattern.MatchString(v) {
		return token.Shadow, true
	}

	if isFontWeight(v) {
		return token.Typography, true
	}

	if unitPattern.MatchString(v) {
		if hint == token.Typography && isFontSizePx(v) {
			return token.Typography, true
		}
		return token.Spacing, true
	}

	if numberPattern.MatchString(v) {
		n, _ := strconv.ParseFloat(v, 64)
		if hint == token.Typography && n >= LineHeightMin && n <= LineHeightMax {
			return token.Typography, true
		}
		// A bare number with no other signal reads as a dimension.
		return token.Spacing, true
	}

	return "", false
}

// isNamedColor reports whether v is a CSS named color like "rebeccapurple".
// Only purely alphabetic values are considered so dimension strings are
// never fed to the color parser.
func isNamedColor(v string) bool {
	for _, r := range v {
		if r < 'a' || r > 'z' {
			if r < 'A' || r > 'Z' {
				return false
			}
		}
	}
	if fontWeightKeywords[strings.ToLower(v)] {
		return false
	}
	_, err := csscolorparser.Parse(v)
	return err == nil
}

// isFontWeight reports whether v looks like a CSS font weight: the
// keywords, or 100–900 in steps of 50.
func isFontWeight(v string) bool {
	if fontWeightKeywords[strings.ToLower(v)] {
		return true
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return false
	}
	if n < 100 || n > 900 {
		return false
	}
	return n == float64(int(n)) && int(n)%50 == 0
}

// isFontSizePx reports whether a px-suffixed value is in the plausible
// font size range.
func isFontSizePx(v string) bool {
	if !strings.HasSuffix(v, "px") {
		return false
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
	if err != nil {
		return false
	}
	return n >= FontSizeMinPx && n <= FontSizeMaxPx
}
