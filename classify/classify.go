/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package classify

import "bennypowers.dev/tsror/token"

// dtcgCategories maps DTCG $type values to categories. An explicit
// $type always overrides heuristic classification.
var dtcgCategories = map[string]token.Category{
	"color":         token.Color,
	"dimension":     token.Spacing,
	"spacing":       token.Spacing,
	"sizing":        token.Sizing,
	"borderRadius":  token.Radius,
	"radius":        token.Radius,
	"shadow":        token.Shadow,
	"boxShadow":     token.Shadow,
	"blur":          token.Blur,
	"typography":    token.Typography,
	"fontFamily":    token.Typography,
	"fontFamilies":  token.Typography,
	"fontWeight":    token.Typography,
	"fontWeights":   token.Typography,
	"fontSize":      token.Typography,
	"fontSizes":     token.Typography,
	"lineHeight":    token.Typography,
	"lineHeights":   token.Typography,
	"letterSpacing": token.Typography,
}

// DTCGType maps a DTCG $type string to a category.
// Returns false for unrecognized types, which fall back to heuristics.
func DTCGType(dtcgType string) (token.Category, bool) {
	c, ok := dtcgCategories[dtcgType]
	return c, ok
}

// Resolve applies the canonical classification precedence used by every
// parser: explicit hints (DTCG $type via DTCGType, or Figma scopes) win
// outright, then the name classifier, then the value classifier. When
// nothing matches the category is Unknown.
//
// Names win over values because they are author-controlled: a bare "16"
// could be a spacing step or a font size, and only the name disambiguates.
func Resolve(scopes []string, name, value string) token.Category {
	if c, ok := Scope(scopes); ok {
		return c
	}
	if c, ok := Name(name); ok {
		return c
	}
	if c, ok := Value(value, ""); ok {
		return c
	}
	return token.Unknown
}
