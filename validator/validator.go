/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks token documents before import: parseability,
// name collisions, color values that do not parse, and dangling or
// circular value references.
package validator

import (
	"fmt"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/tsror/parser"
	"bennypowers.dev/tsror/resolver"
	"bennypowers.dev/tsror/token"
)

// ValidationError describes one problem found in a token document.
type ValidationError struct {
	// FilePath is the path to the file containing the error.
	FilePath string
	// Path locates the problematic token within the document.
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// ValidateDocument parses content with the format detection chain and
// validates the resulting token set.
func ValidateDocument(content []byte, filePath string) []ValidationError {
	result, err := parser.DetectAndParse(content)
	if err != nil {
		return []ValidationError{{
			FilePath: filePath,
			Message:  fmt.Sprintf("failed to parse content: %v", err),
		}}
	}
	return ValidateTokens(result.Tokens, filePath)
}

// ValidateTokens checks a parsed token set. An empty set, duplicate
// canonical names, unparseable color values, and dangling or circular
// references are all reported.
func ValidateTokens(tokens []*token.Token, filePath string) []ValidationError {
	var errors []ValidationError

	if len(tokens) == 0 {
		return []ValidationError{{
			FilePath:   filePath,
			Message:    "no tokens found in document",
			Suggestion: "check that the file is a Figma export, flat map, or nested token document",
		}}
	}

	seen := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		if seen[t.Name] {
			errors = append(errors, ValidationError{
				FilePath:   filePath,
				Path:       t.Name,
				Message:    "duplicate token name after normalization",
				Suggestion: "rename one of the source variables so the canonical names differ",
			})
			continue
		}
		seen[t.Name] = true

		if t.Type == token.Color {
			errors = append(errors, validateColor(t, filePath)...)
		}
	}

	errors = append(errors, validateReferences(tokens, filePath)...)

	return errors
}

// validateColor checks the default value and every mode value of a
// color token. Reference values are checked by validateReferences, not
// here.
func validateColor(t *token.Token, filePath string) []ValidationError {
	var errors []ValidationError
	check := func(value, mode string) {
		if isReference(value) {
			return
		}
		if _, err := csscolorparser.Parse(value); err != nil {
			path := t.Name
			if mode != "" {
				path = t.Name + " (mode " + mode + ")"
			}
			errors = append(errors, ValidationError{
				FilePath:   filePath,
				Path:       path,
				Message:    fmt.Sprintf("color value %q does not parse", value),
				Suggestion: "use hex, rgb()/hsl(), or a named CSS color",
			})
		}
	}

	check(t.Value, "")
	for _, mode := range t.Modes {
		if v, ok := t.ValueByMode[mode]; ok {
			check(v, mode)
		}
	}
	return errors
}

// validateReferences runs reference resolution and converts its
// problems into validation errors.
func validateReferences(tokens []*token.Token, filePath string) []ValidationError {
	var errors []ValidationError

	graph := resolver.BuildDependencyGraph(tokens)
	if cycle := graph.FindCycle(); cycle != nil {
		errors = append(errors, ValidationError{
			FilePath:   filePath,
			Path:       strings.Join(cycle, " -> "),
			Message:    "circular token reference",
			Suggestion: "break the cycle by giving one of the tokens a literal value",
		})
		return errors
	}

	_, problems, err := resolver.Resolve(tokens)
	if err != nil {
		errors = append(errors, ValidationError{
			FilePath: filePath,
			Message:  err.Error(),
		})
		return errors
	}
	for _, p := range problems {
		path := p.Token
		if p.Mode != "" {
			path = p.Token + " (mode " + p.Mode + ")"
		}
		errors = append(errors, ValidationError{
			FilePath:   filePath,
			Path:       path,
			Message:    fmt.Sprintf("reference %q matches no token in this document", p.Ref),
			Suggestion: "define the referenced token or fix the reference path",
		})
	}

	return errors
}

// isReference reports whether a value is a whole-value token reference.
func isReference(value string) bool {
	value = strings.TrimSpace(value)
	return (strings.HasPrefix(value, "{") && strings.HasSuffix(value, "}")) ||
		strings.HasPrefix(value, "var(")
}
