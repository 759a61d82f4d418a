/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package relations

import (
	"math"
	"regexp"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/tsror/token"
)

// Empirically chosen similarity thresholds carried over from the
// original heuristics. Overridable via Options, not meant to be tuned
// per project.
const (
	// ColorAliasThreshold is the Euclidean RGB distance below which two
	// colors are judged aliases, on the 0–255 channel scale where the
	// maximum distance is ~441.
	ColorAliasThreshold = 10.0

	// NumericAliasThreshold is the absolute difference below which two
	// dimension values are judged aliases, in source units.
	NumericAliasThreshold = 1.0
)

// Options configures alias similarity judgement.
type Options struct {
	// ColorThreshold overrides ColorAliasThreshold when > 0.
	ColorThreshold float64

	// NumericThreshold overrides NumericAliasThreshold when > 0.
	NumericThreshold float64
}

func (o Options) withDefaults() Options {
	if o.ColorThreshold <= 0 {
		o.ColorThreshold = ColorAliasThreshold
	}
	if o.NumericThreshold <= 0 {
		o.NumericThreshold = NumericAliasThreshold
	}
	return o
}

var leadingNumberPattern = regexp.MustCompile(`^-?\d+(?:\.\d+)?`)

// similar judges whether two same-category tokens hold near-duplicate
// values. The distance functions are symmetric, so similar(a, b) ==
// similar(b, a). Typography and shadow tokens are never auto-aliased:
// their structured values make lexical distance too false-positive
// prone.
func similar(a, b *token.Token, opts Options) bool {
	switch a.Type {
	case token.Color:
		return colorDistance(a.Value, b.Value) < opts.ColorThreshold
	case token.Spacing, token.Sizing, token.Radius:
		return numericDistance(a.Value, b.Value) < opts.NumericThreshold
	default:
		return false
	}
}

// colorDistance returns the Euclidean RGB distance between two color
// values on the 0–255 channel scale, or +Inf when either fails to parse.
func colorDistance(a, b string) float64 {
	ca, err := csscolorparser.Parse(a)
	if err != nil {
		return math.Inf(1)
	}
	cb, err := csscolorparser.Parse(b)
	if err != nil {
		return math.Inf(1)
	}
	fa := colorful.Color{R: ca.R, G: ca.G, B: ca.B}
	fb := colorful.Color{R: cb.R, G: cb.G, B: cb.B}
	return fa.DistanceRgb(fb) * 255
}

// numericDistance returns the absolute difference of the leading numbers
// of two dimension values, or +Inf when either has none.
func numericDistance(a, b string) float64 {
	na, ok := leadingNumber(a)
	if !ok {
		return math.Inf(1)
	}
	nb, ok := leadingNumber(b)
	if !ok {
		return math.Inf(1)
	}
	return math.Abs(na - nb)
}

func leadingNumber(s string) (float64, bool) {
	match := leadingNumberPattern.FindString(s)
	if match == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
