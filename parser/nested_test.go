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

func parseNested(t *testing.T, input string) []*token.Token {
	t.Helper()
	var doc map[string]any
	if err := json.Unmarshal([]byte(input), &doc); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	tokens, _ := parser.NewNestedParser().Parse(doc)
	return tokens
}

func TestNestedDTCG(t *testing.T) {
	tokens := parseNested(t, `{
		"color": {
			"primary": {
				"500": {"$value": "#3B82F6", "$description": "Brand primary"}
			}
		},
		"space": {
			"4": {"$value": "16px"}
		}
	}`)

	if len(tokens) != 2 {
		t.Fatalf("len(tokens) = %d, want 2", len(tokens))
	}

	byName := make(map[string]*token.Token)
	for _, tok := range tokens {
		byName[tok.Name] = tok
	}

	primary := byName["color.primary.500"]
	if primary == nil {
		t.Fatal("missing token color.primary.500")
	}
	if primary.Value != "#3B82F6" || primary.Type != token.Color {
		t.Errorf("color.primary.500 = {%q %q}, want {#3B82F6 color}", primary.Value, primary.Type)
	}
	if primary.Description != "Brand primary" {
		t.Errorf("Description = %q, want %q", primary.Description, "Brand primary")
	}

	space := byName["space.4"]
	if space == nil {
		t.Fatal("missing token space.4")
	}
	if space.Type != token.Spacing {
		t.Errorf("space.4 Type = %q, want spacing", space.Type)
	}
}

// An explicit $type beats both the name keyword and the value shape.
func TestNestedExplicitTypeOverride(t *testing.T) {
	tokens := parseNested(t, `{
		"radius.sm": {"$value": "#0000FF", "$type": "color"}
	}`)

	if len(tokens) != 1 {
		t.Fatalf("len(tokens) = %d, want 1", len(tokens))
	}
	if tokens[0].Type != token.Color {
		t.Errorf("Type = %q, want color ($type wins)", tokens[0].Type)
	}
}

func TestNestedLegacyValueKey(t *testing.T) {
	tokens := parseNested(t, `{
		"shadow": {
			"raised": {"value": "0 2px 4px rgba(0,0,0,0.2)", "description": "cards"}
		}
	}`)

	if len(tokens) != 1 {
		t.Fatalf("len(tokens) = %d, want 1", len(tokens))
	}
	tok := tokens[0]
	if tok.Name != "shadow.raised" || tok.Type != token.Shadow {
		t.Errorf("token = {%q %q}, want {shadow.raised shadow}", tok.Name, tok.Type)
	}
	if tok.Description != "cards" {
		t.Errorf("Description = %q, want cards", tok.Description)
	}
}

func TestNestedSkipsMetadataKeys(t *testing.T) {
	tokens := parseNested(t, `{
		"$schema": "https://example.com/schema.json",
		"_internal": {"secret": {"$value": "#000000"}},
		"$themes": [{"$value": "#FFFFFF"}],
		"color": {"text": {"$value": "#111111"}}
	}`)

	if len(tokens) != 1 {
		t.Fatalf("len(tokens) = %d, want 1 (metadata subtrees skipped), got %v", len(tokens), tokens)
	}
	if tokens[0].Name != "color.text" {
		t.Errorf("Name = %q, want color.text", tokens[0].Name)
	}
}

func TestNestedArrays(t *testing.T) {
	tokens := parseNested(t, `{
		"shadow": {
			"layers": [
				{"$value": "0 1px 2px rgba(0,0,0,0.1)"},
				{"$value": "0 4px 8px rgba(0,0,0,0.2)"}
			]
		}
	}`)

	if len(tokens) != 2 {
		t.Fatalf("len(tokens) = %d, want 2", len(tokens))
	}
	if tokens[0].Name != "shadow.layers.0" || tokens[1].Name != "shadow.layers.1" {
		t.Errorf("names = %q, %q; want shadow.layers.0, shadow.layers.1", tokens[0].Name, tokens[1].Name)
	}
}

func TestNestedTypographyObjectValue(t *testing.T) {
	tokens := parseNested(t, `{
		"font": {
			"heading": {"$value": {"fontFamily": "Inter", "fontSize": 32, "fontWeight": 700}, "$type": "typography"}
		}
	}`)

	if len(tokens) != 1 {
		t.Fatalf("len(tokens) = %d, want 1", len(tokens))
	}
	tok := tokens[0]
	if tok.Type != token.Typography {
		t.Errorf("Type = %q, want typography", tok.Type)
	}
	// Structured values keep their JSON form.
	var parsed map[string]any
	if err := json.Unmarshal([]byte(tok.Value), &parsed); err != nil {
		t.Fatalf("Value %q is not re-parseable JSON: %v", tok.Value, err)
	}
	if parsed["fontFamily"] != "Inter" {
		t.Errorf("fontFamily = %v, want Inter", parsed["fontFamily"])
	}
}
