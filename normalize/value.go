/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Value converts a raw source value into its canonical string form:
//
//   - Figma RGBA objects ({r,g,b,a} floats in [0,1]) become 6-digit
//     uppercase hex when fully opaque, rgba() with a 2-decimal alpha
//     otherwise.
//   - Bare numbers get a px suffix unless they look unitless (a font
//     weight on the 100–900/50 grid, or a small decimal ratio).
//   - Typography-shaped objects serialize to their JSON form so
//     downstream consumers can re-parse structured font data.
//   - Everything else passes through its string representation.
func Value(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return formatNumber(v)
	case int:
		return formatNumber(float64(v))
	case bool:
		return strconv.FormatBool(v)
	case map[string]any:
		if c, ok := rgbaChannels(v); ok {
			return formatRGBA(c)
		}
		// Structured values (typography objects and the like) keep
		// their JSON form rather than being flattened.
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	default:
		return fmt.Sprint(v)
	}
}

type channels struct {
	r, g, b, a float64
}

// rgbaChannels extracts Figma color channels from a map when all of
// r, g, b are present as numbers. Alpha defaults to 1.
func rgbaChannels(m map[string]any) (channels, bool) {
	r, rok := m["r"].(float64)
	g, gok := m["g"].(float64)
	b, bok := m["b"].(float64)
	if !rok || !gok || !bok {
		return channels{}, false
	}
	c := channels{r: r, g: g, b: b, a: 1}
	if a, ok := m["a"].(float64); ok {
		c.a = a
	}
	return c, true
}

func formatRGBA(c channels) string {
	r := channelTo255(c.r)
	g := channelTo255(c.g)
	b := channelTo255(c.b)
	if c.a >= 1 {
		return fmt.Sprintf("#%02X%02X%02X", r, g, b)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", r, g, b, c.a)
}

func channelTo255(v float64) int {
	n := int(math.Round(v * 255))
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}

// formatNumber renders a number with a px suffix unless it reads as
// unitless: font weights on the 100–900/50 grid, or small decimals in
// (0, 10) with a fractional part (line-height ratios).
func formatNumber(n float64) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if isUnitless(n) {
		return s
	}
	return s + "px"
}

func isUnitless(n float64) bool {
	if n >= 100 && n <= 900 && n == math.Trunc(n) && int(n)%50 == 0 {
		return true
	}
	if n > 0 && n < 10 && n != math.Trunc(n) {
		return true
	}
	return false
}
