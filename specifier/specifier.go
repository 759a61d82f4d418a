/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier parses and resolves token document specifiers:
// local file paths, npm: package references, and jsr: package
// references installed through the npm compatibility layer.
package specifier

import (
	"regexp"
	"strings"
)

// Kind indicates the type of specifier.
type Kind int

const (
	// KindLocal is a local file path.
	KindLocal Kind = iota
	// KindNPM is an npm package specifier.
	KindNPM
	// KindJSR is a jsr package specifier.
	KindJSR
)

// Specifier is a parsed token document specifier.
type Specifier struct {
	// Kind is the type of specifier (local, npm, jsr).
	Kind Kind

	// Package is the package name (e.g. "@scope/pkg" or "pkg").
	// Empty for local paths.
	Package string

	// File is the file path within the package, or the local path.
	File string

	// Raw is the original specifier string.
	Raw string
}

// packagePattern matches @scope/pkg/path, pkg/path, or a bare package
// name after the scheme prefix has been stripped.
var packagePattern = regexp.MustCompile(`^(@[^/]+/[^/]+|[^/]+)(/.*)?$`)

// Parse parses a specifier string. Anything that is not an npm: or
// jsr: specifier is a local path.
func Parse(spec string) *Specifier {
	for scheme, kind := range map[string]Kind{"npm:": KindNPM, "jsr:": KindJSR} {
		rest, ok := strings.CutPrefix(spec, scheme)
		if !ok {
			continue
		}
		matches := packagePattern.FindStringSubmatch(rest)
		if len(matches) == 3 {
			return &Specifier{
				Kind:    kind,
				Package: matches[1],
				File:    strings.TrimPrefix(matches[2], "/"),
				Raw:     spec,
			}
		}
	}

	return &Specifier{
		Kind: KindLocal,
		File: spec,
		Raw:  spec,
	}
}

// IsPackageSpecifier reports whether spec parses as an npm or jsr
// package reference.
func IsPackageSpecifier(spec string) bool {
	parsed := Parse(spec)
	return parsed.Kind == KindNPM || parsed.Kind == KindJSR
}
