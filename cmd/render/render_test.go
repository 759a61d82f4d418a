/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package render

import (
	"strings"
	"testing"

	"bennypowers.dev/tsror/token"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Color Brand", "color-brand"},
		{"color-brand", "color-brand"},
		{"color.brand.primary", "color-brand-primary"},
		{"--color-brand-primary", "color-brand-primary"},
		{"Color  Brand", "color-brand"},
		{"UPPERCASE", "uppercase"},
		{"with_underscores", "with-underscores"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := slugify(tt.input)
			if result != tt.expected {
				t.Errorf("slugify(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestToTitleCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"color", "Color"},
		{"brand", "Brand"},
		{"primary", "Primary"},
		{"color-brand", "Color-Brand"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := toTitleCase(tt.input)
			if result != tt.expected {
				t.Errorf("toTitleCase(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestComputeRows(t *testing.T) {
	tokens := []*token.Token{
		{Name: "color.primary", Value: "#3B82F6", Type: token.Color},
		{Name: "space.4", Value: "16px", Type: token.Spacing, Description: "base gap"},
		{Name: "mystery", Value: "?"},
	}

	rows := ComputeRows(tokens, "ds")
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	if rows[0].Name != "--ds-color-primary" {
		t.Errorf("Name = %q, want prefixed CSS variable", rows[0].Name)
	}
	if !rows[0].IsColor {
		t.Error("expected parseable color row to set IsColor")
	}
	if rows[1].IsColor {
		t.Error("spacing row should not set IsColor")
	}
	if rows[1].Description != "base gap" {
		t.Errorf("Description = %q", rows[1].Description)
	}
	if rows[2].Type != "-" {
		t.Errorf("untyped row Type = %q, want %q", rows[2].Type, "-")
	}
}

func TestComputeRows_UnparseableColor(t *testing.T) {
	rows := ComputeRows([]*token.Token{
		{Name: "color.broken", Value: "not-a-color", Type: token.Color},
	}, "")
	if rows[0].IsColor {
		t.Error("unparseable color value must not set IsColor")
	}
}

func TestBuildHierarchy(t *testing.T) {
	rows := []Row{
		{Name: "--color-brand-primary", Path: []string{"color", "brand", "primary"}},
		{Name: "--color-brand-secondary", Path: []string{"color", "brand", "secondary"}},
		{Name: "--color-semantic-error", Path: []string{"color", "semantic", "error"}},
		{Name: "--spacing-small", Path: []string{"spacing", "small"}},
	}

	root := BuildHierarchy(rows)

	// Check root has two children: color and spacing
	if len(root.Children) != 2 {
		t.Errorf("expected 2 root children, got %d", len(root.Children))
	}

	colorNode := root.Children["color"]
	if colorNode == nil {
		t.Fatal("expected color node")
	}
	if len(colorNode.Children) != 2 {
		t.Errorf("expected 2 color children (brand, semantic), got %d", len(colorNode.Children))
	}

	brandNode := colorNode.Children["brand"]
	if brandNode == nil {
		t.Fatal("expected brand node")
	}
	if len(brandNode.Tokens) != 2 {
		t.Errorf("expected 2 tokens in brand, got %d", len(brandNode.Tokens))
	}

	spacingNode := root.Children["spacing"]
	if spacingNode == nil {
		t.Fatal("expected spacing node")
	}
	if len(spacingNode.Tokens) != 1 {
		t.Errorf("expected 1 token in spacing, got %d", len(spacingNode.Tokens))
	}
}

func TestGenerateTOC(t *testing.T) {
	rows := []Row{
		{Name: "--color-brand-primary", Path: []string{"color", "brand", "primary"}},
		{Name: "--spacing-small", Path: []string{"spacing", "small"}},
	}

	toc := GenerateTOC(BuildHierarchy(rows), 2)

	for _, want := range []string{
		"## Table Of Contents",
		"- [Color](#color)",
		"  - [Brand](#color-brand)",
		"- [Spacing](#spacing)",
	} {
		if !strings.Contains(toc, want) {
			t.Errorf("TOC missing %q:\n%s", want, toc)
		}
	}
}

func TestColorSwatch(t *testing.T) {
	if got := ColorSwatch("#FF0000"); got == "" {
		t.Error("ColorSwatch() = empty for valid color")
	}
	if got := ColorSwatch("nope"); got != "" {
		t.Errorf("ColorSwatch() = %q for invalid color, want empty", got)
	}
}
