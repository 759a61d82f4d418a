/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package relations_test

import (
	"testing"

	"bennypowers.dev/tsror/relations"
	"bennypowers.dev/tsror/token"
)

func tok(name, value string, category token.Category) *token.Token {
	return &token.Token{Name: name, Value: value, Type: category}
}

func TestReferenceEdges(t *testing.T) {
	tokens := []*token.Token{
		tok("color.primary", "#3B82F6", token.Color),
		tok("color.primary.500", "#3B82F6", token.Color),
		tok("color.primary.900", "#1E3A8A", token.Color),
		tok("space.4", "16px", token.Spacing),
	}

	graph := relations.Build(tokens, relations.Options{})

	var refs []relations.Edge
	for _, e := range graph.Edges() {
		if e.Kind == relations.Reference {
			refs = append(refs, e)
		}
	}

	// color.primary.500 and .900 each reference color.primary; nothing
	// references the nonexistent "color" or "space" prefixes.
	if len(refs) != 2 {
		t.Fatalf("reference edges = %v, want 2", refs)
	}
	for _, e := range refs {
		if e.To != "color.primary" {
			t.Errorf("edge %v, want To = color.primary", e)
		}
	}

	deps := graph.Dependencies("color.primary.500")
	if len(deps) != 1 || deps[0] != "color.primary" {
		t.Errorf("Dependencies(color.primary.500) = %v, want [color.primary]", deps)
	}
	dependents := graph.Dependents("color.primary")
	if len(dependents) != 2 {
		t.Errorf("Dependents(color.primary) = %v, want 2 entries", dependents)
	}
}

func TestColorAliasEdges(t *testing.T) {
	tokens := []*token.Token{
		tok("color.brand", "#3B82F6", token.Color),
		tok("color.link", "#3B82F8", token.Color),  // 2 off in blue: alias
		tok("color.danger", "#EF4444", token.Color), // far away
	}

	graph := relations.Build(tokens, relations.Options{})

	var aliases []relations.Edge
	for _, e := range graph.Edges() {
		if e.Kind == relations.Alias {
			aliases = append(aliases, e)
		}
	}

	if len(aliases) != 1 {
		t.Fatalf("alias edges = %v, want exactly 1", aliases)
	}
	if aliases[0].From != "color.brand" || aliases[0].To != "color.link" {
		t.Errorf("alias edge = %v, want color.brand -> color.link", aliases[0])
	}
}

func TestNumericAliasEdges(t *testing.T) {
	tokens := []*token.Token{
		tok("space.4", "16px", token.Spacing),
		tok("space.gutter", "16.5px", token.Spacing),
		tok("space.8", "32px", token.Spacing),
		tok("radius.md", "16px", token.Radius), // different category: no cross pairing
	}

	graph := relations.Build(tokens, relations.Options{})

	var aliases []relations.Edge
	for _, e := range graph.Edges() {
		if e.Kind == relations.Alias {
			aliases = append(aliases, e)
		}
	}

	if len(aliases) != 1 {
		t.Fatalf("alias edges = %v, want exactly 1", aliases)
	}
	if aliases[0].From != "space.4" || aliases[0].To != "space.gutter" {
		t.Errorf("alias edge = %v, want space.4 -> space.gutter", aliases[0])
	}
}

func TestTypographyAndShadowNeverAliased(t *testing.T) {
	tokens := []*token.Token{
		tok("font.body", "16px", token.Typography),
		tok("font.label", "16px", token.Typography),
		tok("shadow.a", "0 2px 4px rgba(0,0,0,0.2)", token.Shadow),
		tok("shadow.b", "0 2px 4px rgba(0,0,0,0.2)", token.Shadow),
	}

	graph := relations.Build(tokens, relations.Options{})

	for _, e := range graph.Edges() {
		if e.Kind == relations.Alias {
			t.Errorf("unexpected alias edge %v", e)
		}
	}
}

// Alias judgement must be symmetric: build order cannot change the pair
// set, only the deterministic edge direction.
func TestAliasSymmetry(t *testing.T) {
	forward := []*token.Token{
		tok("color.a", "#101010", token.Color),
		tok("color.b", "#101013", token.Color),
	}
	reverse := []*token.Token{forward[1], forward[0]}

	a := relations.Build(forward, relations.Options{})
	b := relations.Build(reverse, relations.Options{})

	if len(a.Edges()) != 1 || len(b.Edges()) != 1 {
		t.Fatalf("edges = %v / %v, want one alias each", a.Edges(), b.Edges())
	}
	if a.Edges()[0] != b.Edges()[0] {
		t.Errorf("asymmetric edges: %v vs %v", a.Edges()[0], b.Edges()[0])
	}
}

func TestThresholdOverrides(t *testing.T) {
	tokens := []*token.Token{
		tok("space.a", "10px", token.Spacing),
		tok("space.b", "14px", token.Spacing),
	}

	strict := relations.Build(tokens, relations.Options{})
	if len(strict.Edges()) != 0 {
		t.Errorf("default threshold should not alias 10px/14px: %v", strict.Edges())
	}

	loose := relations.Build(tokens, relations.Options{NumericThreshold: 5})
	if len(loose.Edges()) != 1 {
		t.Errorf("threshold 5 should alias 10px/14px: %v", loose.Edges())
	}
}

func TestUnparseableValuesNeverAlias(t *testing.T) {
	tokens := []*token.Token{
		tok("color.a", "not-a-color", token.Color),
		tok("color.b", "not-a-color", token.Color),
	}

	graph := relations.Build(tokens, relations.Options{})
	if len(graph.Edges()) != 0 {
		t.Errorf("unparseable values must not alias: %v", graph.Edges())
	}
}
