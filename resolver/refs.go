/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"regexp"
	"strings"
)

var (
	// curlyRefPattern matches a whole-value curly brace reference:
	// "{color.primary}". Interpolated references inside larger strings
	// are intentionally not matched.
	curlyRefPattern = regexp.MustCompile(`^\{([^{}]+)\}$`)

	// varRefPattern matches a whole-value CSS custom property
	// reference: "var(--color-primary)", with no fallback argument.
	varRefPattern = regexp.MustCompile(`^var\(\s*(--[A-Za-z][A-Za-z0-9_-]*)\s*\)$`)
)

// refTarget extracts the reference target from a value, if the whole
// value is a reference. The returned target keeps its source spelling.
func refTarget(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if m := curlyRefPattern.FindStringSubmatch(value); m != nil {
		return m[1], true
	}
	if m := varRefPattern.FindStringSubmatch(value); m != nil {
		return m[1], true
	}
	return "", false
}

// refKey reduces a reference target or token name to a comparable key:
// lowercase letters and digits only. "--color-primary", "color.primary"
// and "colorPrimary" all reduce to "colorprimary".
func refKey(s string) string {
	s = strings.TrimPrefix(s, "--")
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
