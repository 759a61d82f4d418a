/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package classify

import (
	"regexp"

	"bennypowers.dev/tsror/token"
)

// namePattern pairs a category with the keyword pattern that suggests it.
type namePattern struct {
	category token.Category
	pattern  *regexp.Regexp
}

// namePatterns are evaluated in fixed priority order; first match wins.
// Word boundaries keep "background" from matching the sizing "round"
// fragment and so on; path separators count as boundaries.
var namePatterns = []namePattern{
	{token.Color, regexp.MustCompile(`(?i)(^|[./_-])(color|colour|bg|background|fill|stroke|border|text|icon|primary|secondary|accent|brand|neutral|red|orange|amber|yellow|lime|green|emerald|teal|cyan|sky|blue|indigo|violet|purple|fuchsia|pink|rose|magenta|gray|grey|black|white)([./_-]|\d|$)`)},
	{token.Spacing, regexp.MustCompile(`(?i)(^|[./_-])(space|spacing|gap|margin|padding|inset)([./_-]|\d|$)`)},
	{token.Radius, regexp.MustCompile(`(?i)(^|[./_-])(radius|corner)([./_-]|\d|$)`)},
	{token.Typography, regexp.MustCompile(`(?i)(^|[./_-])(font|typography|type|heading|body|caption|label|letterspacing|letter-spacing|lineheight|line-height|weight)([./_-]|\d|$)`)},
	{token.Shadow, regexp.MustCompile(`(?i)(^|[./_-])(shadow|elevation)([./_-]|\d|$)`)},
	{token.Sizing, regexp.MustCompile(`(?i)(^|[./_-])(size|sizing|width|height|min|max)([./_-]|\d|$)`)},
}

// Name classifies a token by keywords in its dotted path.
// Returns false when no keyword set matches.
func Name(name string) (token.Category, bool) {
	for _, np := range namePatterns {
		if np.pattern.MatchString(name) {
			return np.category, true
		}
	}
	return "", false
}
