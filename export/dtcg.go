/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package export

import (
	"encoding/json"

	"bennypowers.dev/tsror/token"
)

// DTCGFormatter outputs nested DTCG-style JSON. Token names split on
// the canonical delimiter back into groups; categories map to DTCG
// $type values; mode values land under $extensions.
type DTCGFormatter struct{}

// NewDTCGFormatter creates a DTCG formatter.
func NewDTCGFormatter() *DTCGFormatter {
	return &DTCGFormatter{}
}

// Format converts tokens to DTCG-style JSON.
func (f *DTCGFormatter) Format(tokens []*token.Token, _ Options) ([]byte, error) {
	root := make(map[string]any)

	for _, t := range SortTokens(tokens) {
		group := root
		path := t.Path()
		for _, segment := range path[:len(path)-1] {
			child, ok := group[segment].(map[string]any)
			if !ok {
				child = make(map[string]any)
				group[segment] = child
			}
			group = child
		}

		leaf := map[string]any{"$value": t.Value}
		if dtcgType, ok := dtcgType(t.Type); ok {
			leaf["$type"] = dtcgType
		}
		if t.Description != "" {
			leaf["$description"] = t.Description
		}
		if len(t.Modes) > 0 {
			modes := make(map[string]any, len(t.Modes))
			for _, mode := range t.Modes {
				modes[mode] = t.ValueForMode(mode)
			}
			leaf["$extensions"] = map[string]any{"modes": modes}
		}

		// A leaf name colliding with an existing group keeps the
		// group; the token is unrepresentable in nested form.
		name := path[len(path)-1]
		if _, exists := group[name]; !exists {
			group[name] = leaf
		}
	}

	return append(marshalIndent(root), '\n'), nil
}

// dtcgType maps a category to its closest DTCG $type.
func dtcgType(c token.Category) (string, bool) {
	switch c {
	case token.Color:
		return "color", true
	case token.Spacing, token.Sizing, token.Radius, token.Blur:
		return "dimension", true
	case token.Shadow:
		return "shadow", true
	case token.Typography:
		return "typography", true
	default:
		return "", false
	}
}

func marshalIndent(v any) []byte {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		// Maps of strings cannot fail to marshal.
		panic(err)
	}
	return data
}

// FlatJSONFormatter outputs flat key-value JSON keyed by flattened
// token name.
type FlatJSONFormatter struct{}

// NewFlatJSONFormatter creates a flat JSON formatter.
func NewFlatJSONFormatter() *FlatJSONFormatter {
	return &FlatJSONFormatter{}
}

// Format converts tokens to flat key-value JSON.
func (f *FlatJSONFormatter) Format(tokens []*token.Token, opts Options) ([]byte, error) {
	result := make(map[string]string, len(tokens))
	for _, t := range tokens {
		result[FlatName(t, opts)] = t.Value
	}
	return append(marshalIndent(result), '\n'), nil
}
