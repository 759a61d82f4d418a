/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package classify provides total, side-effect-free classifiers that map
// token scopes, names and values to semantic categories.
package classify

import "bennypowers.dev/tsror/token"

// scopeCategories maps Figma variable scope enum values to categories.
// Unlisted scopes (e.g. OPACITY, FONT_STYLE) carry no category signal.
var scopeCategories = map[string]token.Category{
	"CORNER_RADIUS": token.Radius,
	"GAP":           token.Spacing,
	"WIDTH_HEIGHT":  token.Spacing,
	"ALL_FILLS":     token.Color,
	"FRAME_FILL":    token.Color,
	"SHAPE_FILL":    token.Color,
	"TEXT_FILL":     token.Color,
	"STROKE_COLOR":  token.Color,
	"EFFECT_COLOR":  token.Shadow,
	"EFFECT_FLOAT":  token.Shadow,
}

// Scope classifies a token by its Figma variable scopes.
// The first recognized scope wins. Returns false when no scope matches.
func Scope(scopes []string) (token.Category, bool) {
	for _, s := range scopes {
		if c, ok := scopeCategories[s]; ok {
			return c, true
		}
	}
	return "", false
}
