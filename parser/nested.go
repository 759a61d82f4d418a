/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"slices"
	"sort"
	"strconv"
	"strings"

	"bennypowers.dev/tsror/classify"
	"bennypowers.dev/tsror/normalize"
	"bennypowers.dev/tsror/token"
)

// NestedParser is the catch-all for generic nested JSON, including DTCG
// documents. It walks the tree looking for leaf nodes carrying $value
// (DTCG) or a primitive value field; everything else recurses.
type NestedParser struct{}

// NewNestedParser creates a generic nested JSON parser.
func NewNestedParser() *NestedParser {
	return &NestedParser{}
}

// Name identifies the format.
func (p *NestedParser) Name() string { return "nested-json" }

// CanParse always matches: this parser terminates the detection chain.
func (p *NestedParser) CanParse(doc map[string]any) bool { return true }

// Parse recursively extracts leaf tokens. Metadata keys (leading "$" or
// "_") are skipped; unrecognized nodes are silently ignored.
func (p *NestedParser) Parse(doc map[string]any) ([]*token.Token, []Warning) {
	var tokens []*token.Token
	p.walk(doc, nil, &tokens)
	return tokens, nil
}

func (p *NestedParser) walk(node any, path []string, tokens *[]*token.Token) {
	switch v := node.(type) {
	case map[string]any:
		if leaf, ok := leafValue(v); ok {
			if t := p.makeToken(v, leaf, path); t != nil {
				*tokens = append(*tokens, t)
			}
			return
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			if strings.HasPrefix(k, "$") || strings.HasPrefix(k, "_") {
				continue
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			p.walk(v[k], append(slices.Clip(path), k), tokens)
		}
	case []any:
		for i, item := range v {
			p.walk(item, append(slices.Clip(path), strconv.Itoa(i)), tokens)
		}
	}
}

// leafValue returns the raw token value when node is a leaf: a $value
// key (DTCG), or a value key paired with a non-object value.
func leafValue(node map[string]any) (any, bool) {
	if v, ok := node["$value"]; ok {
		return v, true
	}
	if v, ok := node["value"]; ok {
		if _, isObject := v.(map[string]any); !isObject {
			return v, true
		}
	}
	return nil, false
}

func (p *NestedParser) makeToken(node map[string]any, raw any, path []string) *token.Token {
	name := normalize.Name(strings.Join(path, "/"))
	if name == "" {
		return nil
	}
	value := normalize.Value(raw)

	t := &token.Token{Name: name, Value: value}

	if desc, ok := node["$description"].(string); ok {
		t.Description = desc
	} else if desc, ok := node["description"].(string); ok {
		t.Description = desc
	}

	// An explicit $type overrides heuristic classification.
	if dtcgType, ok := node["$type"].(string); ok {
		if c, ok := classify.DTCGType(dtcgType); ok {
			t.Type = c
			return t
		}
	}
	t.Type = classify.Resolve(nil, name, value)
	return t
}
