/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"encoding/json"
	"testing"

	"bennypowers.dev/tsror/parser"
	"bennypowers.dev/tsror/token"
)

func parseFigma(t *testing.T, input string) ([]*token.Token, []parser.Warning) {
	t.Helper()
	var doc map[string]any
	if err := json.Unmarshal([]byte(input), &doc); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	p := parser.NewFigmaParser()
	if !p.CanParse(doc) {
		t.Fatal("CanParse() = false, want true")
	}
	return p.Parse(doc)
}

func TestFigmaMultiMode(t *testing.T) {
	tokens, _ := parseFigma(t, `{
		"modes": [
			{"modeId": "1:0", "name": "Light"},
			{"modeId": "1:1", "name": "Dark"}
		],
		"variables": [
			{
				"name": "Color/Surface",
				"scopes": ["FRAME_FILL"],
				"resolvedValuesByMode": {
					"1:0": {"resolvedValue": {"r": 1, "g": 1, "b": 1, "a": 1}},
					"1:1": {"resolvedValue": {"r": 0, "g": 0, "b": 0, "a": 1}}
				}
			}
		]
	}`)

	if len(tokens) != 1 {
		t.Fatalf("len(tokens) = %d, want 1", len(tokens))
	}
	tok := tokens[0]
	if tok.Name != "color.surface" {
		t.Errorf("Name = %q, want color.surface", tok.Name)
	}
	if tok.Type != token.Color {
		t.Errorf("Type = %q, want color", tok.Type)
	}
	if tok.Value != "#FFFFFF" {
		t.Errorf("Value = %q, want #FFFFFF (default mode)", tok.Value)
	}
	if len(tok.Modes) != 2 || tok.Modes[0] != "light" || tok.Modes[1] != "dark" {
		t.Errorf("Modes = %v, want [light dark]", tok.Modes)
	}
	if tok.ValueByMode["dark"] != "#000000" {
		t.Errorf("ValueByMode[dark] = %q, want #000000", tok.ValueByMode["dark"])
	}
}

func TestFigmaAliasSkipped(t *testing.T) {
	tokens, warnings := parseFigma(t, `{
		"variables": [
			{
				"name": "Color/Brand",
				"valuesByMode": {
					"1:0": {"type": "VARIABLE_ALIAS", "id": "VariableID:1:23"}
				}
			}
		]
	}`)

	if len(tokens) != 0 {
		t.Fatalf("len(tokens) = %d, want 0 (aliases are never imported as literals)", len(tokens))
	}
	if len(warnings) == 0 || warnings[0].Code != "alias-skipped" {
		t.Errorf("warnings = %v, want alias-skipped", warnings)
	}
}

func TestFigmaScopePrecedence(t *testing.T) {
	// The scope hint wins even when name and value suggest color.
	tokens, _ := parseFigma(t, `{
		"variables": [
			{
				"name": "color/pill",
				"scopes": ["CORNER_RADIUS"],
				"valuesByMode": {"1:0": 999}
			}
		]
	}`)

	if len(tokens) != 1 {
		t.Fatalf("len(tokens) = %d, want 1", len(tokens))
	}
	if tokens[0].Type != token.Radius {
		t.Errorf("Type = %q, want radius (scope wins)", tokens[0].Type)
	}
}

func TestFigmaSingleModeHasNoModeFields(t *testing.T) {
	tokens, _ := parseFigma(t, `{
		"variables": [
			{"name": "space/gutter", "valuesByMode": {"1:0": 24}}
		]
	}`)

	if len(tokens) != 1 {
		t.Fatalf("len(tokens) = %d, want 1", len(tokens))
	}
	tok := tokens[0]
	if tok.Value != "24px" {
		t.Errorf("Value = %q, want 24px", tok.Value)
	}
	if tok.ValueByMode != nil || tok.Modes != nil {
		t.Errorf("single-mode token should not carry mode fields: %+v", tok)
	}
}

func TestFigmaMixedAliasAndConcrete(t *testing.T) {
	tokens, _ := parseFigma(t, `{
		"modes": [
			{"modeId": "1:0", "name": "Light"},
			{"modeId": "1:1", "name": "Dark"}
		],
		"variables": [
			{
				"name": "color/text",
				"valuesByMode": {
					"1:0": {"r": 0.1, "g": 0.1, "b": 0.1, "a": 1},
					"1:1": {"type": "VARIABLE_ALIAS", "id": "VariableID:9:9"}
				}
			}
		]
	}`)

	if len(tokens) != 1 {
		t.Fatalf("len(tokens) = %d, want 1", len(tokens))
	}
	// Only the concrete mode survives; a single surviving mode means no
	// mode fields at all.
	if tokens[0].ValueByMode != nil {
		t.Errorf("ValueByMode = %v, want nil", tokens[0].ValueByMode)
	}
}
