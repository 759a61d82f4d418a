/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"fmt"
	"sort"

	"bennypowers.dev/tsror/classify"
	"bennypowers.dev/tsror/normalize"
	"bennypowers.dev/tsror/token"
)

// FlatParser parses flat key/value exports: a top-level "tokens" object
// whose values are primitives. Every key is one token; no recursion.
type FlatParser struct{}

// NewFlatParser creates a flat token map parser.
func NewFlatParser() *FlatParser {
	return &FlatParser{}
}

// Name identifies the format.
func (p *FlatParser) Name() string { return "flat-tokens" }

// CanParse reports whether doc has a "tokens" object holding primitive
// values. One primitive value is enough to claim the document; an empty
// tokens object still matches, it is a legitimate "nothing new"
// document, not an unrecognized shape.
func (p *FlatParser) CanParse(doc map[string]any) bool {
	tokens, ok := doc["tokens"].(map[string]any)
	if !ok {
		return false
	}
	for _, v := range tokens {
		if isPrimitive(v) {
			return true
		}
	}
	return len(tokens) == 0
}

// Parse classifies and formats each entry independently, in sorted key
// order for deterministic output. Non-primitive entries are skipped and
// surfaced as a warning.
func (p *FlatParser) Parse(doc map[string]any) ([]*token.Token, []Warning) {
	entries, _ := doc["tokens"].(map[string]any)

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var tokens []*token.Token
	var warnings []Warning
	skipped := 0
	for _, key := range keys {
		name := normalize.Name(key)
		if name == "" {
			continue
		}
		if !isPrimitive(entries[key]) {
			skipped++
			continue
		}
		value := normalize.Value(entries[key])
		tokens = append(tokens, &token.Token{
			Name:  name,
			Value: value,
			Type:  classify.Resolve(nil, name, value),
		})
	}

	if skipped > 0 {
		warnings = append(warnings, Warning{
			Code:    "non-primitive-skipped",
			Message: fmt.Sprintf("%d non-primitive value(s) skipped", skipped),
		})
	}

	return tokens, warnings
}

func isPrimitive(v any) bool {
	switch v.(type) {
	case string, float64, int, bool, nil:
		return true
	}
	return false
}
