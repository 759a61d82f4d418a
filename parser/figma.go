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

// FigmaParser parses Figma Variables exports: a top-level array of
// variable records, each with a name, optional scopes, and a per-mode
// value map. One Token is produced per variable, not per mode.
type FigmaParser struct{}

// NewFigmaParser creates a Figma Variables parser.
func NewFigmaParser() *FigmaParser {
	return &FigmaParser{}
}

// Name identifies the format.
func (p *FigmaParser) Name() string { return "figma-variables" }

// CanParse reports whether doc has a top-level array of variable records.
func (p *FigmaParser) CanParse(doc map[string]any) bool {
	return figmaVariables(doc) != nil
}

// Parse extracts one token per variable. Mode values that are unresolved
// aliases (type VARIABLE_ALIAS) are skipped, never imported as literal
// strings; a variable whose every mode is an alias produces no token.
func (p *FigmaParser) Parse(doc map[string]any) ([]*token.Token, []Warning) {
	variables := figmaVariables(doc)
	modeNames, modeOrder := figmaModes(doc)

	var tokens []*token.Token
	var warnings []Warning
	aliasSkips := 0

	for _, raw := range variables {
		record, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		rawName, _ := record["name"].(string)
		name := normalize.Name(rawName)
		if name == "" {
			continue
		}

		values := modeValues(record)
		if values == nil {
			continue
		}

		type modeValue struct {
			mode  string
			value string
		}
		var resolved []modeValue
		sawAlias := false

		for _, modeID := range orderedModeIDs(values, modeOrder) {
			rawValue := values[modeID]
			if isVariableAlias(rawValue) {
				sawAlias = true
				continue
			}
			if inner, ok := rawValue.(map[string]any); ok {
				if rv, exists := inner["resolvedValue"]; exists {
					rawValue = rv
				}
			}
			modeName := modeID
			if n, ok := modeNames[modeID]; ok {
				modeName = n
			}
			resolved = append(resolved, modeValue{
				mode:  normalize.Name(modeName),
				value: normalize.Value(rawValue),
			})
		}

		if sawAlias {
			aliasSkips++
		}
		if len(resolved) == 0 {
			continue
		}

		t := &token.Token{
			Name:  name,
			Value: resolved[0].value,
		}
		if len(resolved) > 1 {
			t.ValueByMode = make(map[string]string, len(resolved))
			t.Modes = make([]string, 0, len(resolved))
			for _, mv := range resolved {
				t.ValueByMode[mv.mode] = mv.value
				t.Modes = append(t.Modes, mv.mode)
			}
		}
		if desc, ok := record["description"].(string); ok {
			t.Description = desc
		}
		t.Type = classify.Resolve(stringSlice(record["scopes"]), name, t.Value)

		tokens = append(tokens, t)
	}

	if aliasSkips > 0 {
		warnings = append(warnings, Warning{
			Code:    "alias-skipped",
			Message: fmt.Sprintf("%d unresolved variable alias value(s) skipped", aliasSkips),
		})
	}

	return tokens, warnings
}

// figmaVariables finds the top-level array of variable records. The
// conventional key is "variables", but any top-level array whose first
// element carries a name and a per-mode value map is accepted.
func figmaVariables(doc map[string]any) []any {
	if vars, ok := doc["variables"].([]any); ok && isVariableRecords(vars) {
		return vars
	}
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if vars, ok := doc[k].([]any); ok && isVariableRecords(vars) {
			return vars
		}
	}
	return nil
}

func isVariableRecords(vars []any) bool {
	if len(vars) == 0 {
		return false
	}
	record, ok := vars[0].(map[string]any)
	if !ok {
		return false
	}
	if _, ok := record["name"].(string); !ok {
		return false
	}
	return modeValues(record) != nil
}

// modeValues returns the per-mode value map, preferring resolved values.
func modeValues(record map[string]any) map[string]any {
	if m, ok := record["resolvedValuesByMode"].(map[string]any); ok {
		return m
	}
	if m, ok := record["valuesByMode"].(map[string]any); ok {
		return m
	}
	return nil
}

// figmaModes reads the optional top-level mode table. It accepts either
// an ordered array of {modeId, name} records or a map of id to name
// (ordered by id for determinism). Returns the id-to-name table and the
// declared id order.
func figmaModes(doc map[string]any) (map[string]string, []string) {
	names := make(map[string]string)
	var order []string

	switch modes := doc["modes"].(type) {
	case []any:
		for _, raw := range modes {
			record, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			id, _ := record["modeId"].(string)
			if id == "" {
				id, _ = record["id"].(string)
			}
			name, _ := record["name"].(string)
			if id == "" {
				continue
			}
			names[id] = name
			order = append(order, id)
		}
	case map[string]any:
		ids := make([]string, 0, len(modes))
		for id := range modes {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			if name, ok := modes[id].(string); ok {
				names[id] = name
				order = append(order, id)
			}
		}
	}

	return names, order
}

// orderedModeIDs returns values' keys in declared mode order, with any
// undeclared ids appended in sorted order.
func orderedModeIDs(values map[string]any, declared []string) []string {
	seen := make(map[string]bool, len(declared))
	var ids []string
	for _, id := range declared {
		if _, ok := values[id]; ok {
			ids = append(ids, id)
			seen[id] = true
		}
	}
	var rest []string
	for id := range values {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	return append(ids, rest...)
}

func isVariableAlias(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	if t, ok := m["type"].(string); ok && t == "VARIABLE_ALIAS" {
		return true
	}
	// Resolved exports nest the alias marker one level down.
	if rv, ok := m["resolvedValue"].(map[string]any); ok {
		if t, ok := rv["type"].(string); ok && t == "VARIABLE_ALIAS" {
			return true
		}
	}
	return false
}

func stringSlice(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
