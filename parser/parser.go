/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser provides format auto-detection and parsing for design
// token documents exported from design tools.
//
// Three source shapes are recognized, evaluated in fixed priority order:
// Figma Variables exports, flat key/value token maps, and generic nested
// JSON (including DTCG). Later detectors are strict supersets of what
// earlier, narrower detectors would also accept, so the order matters.
package parser

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tsror/token"
)

// ErrMalformedInput reports input that failed to parse as JSON or YAML.
// Nothing is imported when it occurs.
var ErrMalformedInput = fmt.Errorf("malformed input: not valid JSON")

// Warning is a non-fatal condition surfaced to the caller alongside the
// parse result. Parsing itself never fails on unexpected shapes.
type Warning struct {
	// Code identifies the warning class (e.g. "empty-result",
	// "alias-skipped").
	Code string `json:"code"`

	// Message is the human-readable description.
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// Result is the outcome of detecting and parsing one document.
type Result struct {
	// Format names the detector that matched.
	Format string `json:"format"`

	// Tokens is the ordered, flat token list.
	Tokens []*token.Token `json:"tokens"`

	// Warnings holds non-fatal conditions encountered while parsing.
	Warnings []Warning `json:"warnings,omitempty"`
}

// Preview summarizes a parse result for human review before commit.
type Preview struct {
	Format       string                 `json:"format"`
	Tokens       []*token.Token         `json:"tokens"`
	Total        int                    `json:"total"`
	CountsByType map[token.Category]int `json:"countsByType"`
	Warnings     []Warning              `json:"warnings,omitempty"`
}

// FormatParser is one detector/parser pair in the detection chain.
type FormatParser interface {
	// Name identifies the format (e.g. "figma-variables").
	Name() string

	// CanParse reports whether doc structurally matches this format.
	CanParse(doc map[string]any) bool

	// Parse extracts tokens from doc. It never fails: unrecognized
	// nodes are skipped, and skips worth surfacing become warnings.
	Parse(doc map[string]any) ([]*token.Token, []Warning)
}

// Parsers returns the detection chain in priority order.
func Parsers() []FormatParser {
	return []FormatParser{
		NewFigmaParser(),
		NewFlatParser(),
		NewNestedParser(),
	}
}

// DetectAndParse decodes data (JSON with comments, or YAML), selects the
// first matching parser, and returns the flat token list. The only fatal
// condition is undecodable input; an empty result is reported as a
// warning, not an error.
func DetectAndParse(data []byte) (*Result, error) {
	doc, err := decode(data)
	if err != nil {
		return nil, err
	}

	for _, p := range Parsers() {
		if !p.CanParse(doc) {
			continue
		}
		tokens, warnings := p.Parse(doc)
		if len(tokens) == 0 {
			warnings = append(warnings, Warning{
				Code:    "empty-result",
				Message: "no tokens found in document",
			})
		}
		return &Result{Format: p.Name(), Tokens: tokens, Warnings: warnings}, nil
	}

	// Unreachable: the nested parser is a catch-all.
	return &Result{Format: "unknown"}, nil
}

// decode parses data as JSON (comments and trailing commas tolerated)
// or, failing that, as YAML.
func decode(data []byte) (map[string]any, error) {
	var root any
	if err := json.Unmarshal(jsonc.ToJSON(data), &root); err != nil {
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, ErrMalformedInput
		}
		root = normalizeKeys(root)
	}

	if doc, ok := root.(map[string]any); ok {
		return doc, nil
	}

	// A valid document with a non-object root (array, scalar) is never
	// fatal. The nameless synthetic key contributes no path segment, so
	// an array root yields tokens named by index.
	return map[string]any{"": root}, nil
}

// normalizeKeys converts YAML's map[any]any to map[string]any recursively.
func normalizeKeys(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeKeys(val)
		}
		return x
	case map[any]any:
		result := make(map[string]any, len(x))
		for k, val := range x {
			result[fmt.Sprintf("%v", k)] = normalizeKeys(val)
		}
		return result
	case []any:
		for i, val := range x {
			x[i] = normalizeKeys(val)
		}
		return x
	default:
		return v
	}
}

// BuildPreview computes totals and per-category counts for a result.
func BuildPreview(res *Result) *Preview {
	counts := make(map[token.Category]int)
	for _, t := range res.Tokens {
		counts[t.Type]++
	}
	return &Preview{
		Format:       res.Format,
		Tokens:       res.Tokens,
		Total:        len(res.Tokens),
		CountsByType: counts,
		Warnings:     res.Warnings,
	}
}
