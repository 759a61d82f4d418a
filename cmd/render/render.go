/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tsror/token"
)

// Row holds computed display values for a single token.
type Row struct {
	Name        string   // CSS variable name with prefix
	TokenName   string   // Canonical dotted name
	Type        string   // Token category or "-"
	Value       string   // Default mode value
	Description string   // Token description
	Modes       []string // Declared mode names, default first
	IsColor     bool     // Whether this is a color token with parseable value
	Path        []string // Token path in the hierarchy (e.g., ["color", "brand", "primary"])
	Source      string   // Owning source file ID, "" for manual tokens
}

// HierarchyNode represents a node in the token hierarchy tree.
type HierarchyNode struct {
	Name     string
	Path     []string
	Tokens   []Row
	Children map[string]*HierarchyNode
}

// MarkdownOptions configures markdown output.
type MarkdownOptions struct {
	IncludeTOC bool
	TOCDepth   int
	ShowLinks  bool
}

// ComputeRows transforms tokens into display rows with all values computed.
func ComputeRows(tokens []*token.Token, prefix string) []Row {
	rows := make([]Row, 0, len(tokens))
	for _, tok := range tokens {
		row := Row{
			Name:        tok.CSSVariableName(prefix),
			TokenName:   tok.Name,
			Type:        string(tok.Type),
			Value:       tok.Value,
			Description: tok.Description,
			Modes:       tok.Modes,
			Path:        tok.Path(),
			Source:      tok.SourceFileID,
		}
		if row.Type == "" {
			row.Type = "-"
		}

		// Check if this is a parseable color
		if tok.Type == token.Color {
			if _, err := csscolorparser.Parse(row.Value); err == nil {
				row.IsColor = true
			}
		}

		rows = append(rows, row)
	}
	return rows
}

// ColumnWidths calculates the max width needed for each column.
func ColumnWidths(rows []Row) (name, typ, val int) {
	name, typ, val = 4, 4, 5 // minimums for headers
	for _, r := range rows {
		if len(r.Name) > name {
			name = len(r.Name)
		}
		if len(r.Type) > typ {
			typ = len(r.Type)
		}
		if len(r.Value) > val {
			val = len(r.Value)
		}
	}
	return
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders rows as a table to stdout.
func Table(rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	nameW, typeW, _ := ColumnWidths(rows)
	for _, r := range rows {
		swatch := ""
		if r.IsColor {
			swatch = ColorSwatch(r.Value)
		}
		modes := ""
		if len(r.Modes) > 1 {
			modes = " (" + strings.Join(r.Modes, ", ") + ")"
		}
		fmt.Printf("%-*s  %-*s  %s%s%s\n", nameW, r.Name, typeW, r.Type, swatch, r.Value, modes)
	}
	return nil
}

// Markdown renders rows as markdown tables grouped by type.
func Markdown(rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	// Group rows by type, preserving order of first occurrence
	typeOrder := make([]string, 0)
	byType := make(map[string][]Row)
	for _, r := range rows {
		if _, exists := byType[r.Type]; !exists {
			typeOrder = append(typeOrder, r.Type)
		}
		byType[r.Type] = append(byType[r.Type], r)
	}

	first := true
	for _, typ := range typeOrder {
		group := byType[typ]
		if !first {
			fmt.Println()
		}
		first = false

		heading := typ
		if heading == "-" {
			heading = "untyped"
		}
		fmt.Printf("## %s\n\n", heading)

		renderTokenTable(group, MarkdownOptions{})
	}
	return nil
}

// CSS renders rows as CSS custom properties.
func CSS(rows []Row) error {
	fmt.Println(":root {")
	for _, r := range rows {
		fmt.Printf("  %s: %s;\n", r.Name, r.Value)
	}
	fmt.Println("}")
	return nil
}

// Names renders just the token names, one per line.
func Names(rows []Row) error {
	for _, r := range rows {
		fmt.Println(r.Name)
	}
	return nil
}

// slugify converts a name to a URL-safe anchor ID.
// e.g., "Color Brand" -> "color-brand"
func slugify(name string) string {
	var result strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		} else if r == ' ' || r == '-' || r == '_' || r == '.' {
			result.WriteRune('-')
		}
	}
	// Remove consecutive dashes
	s := result.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// toTitleCase converts a string to Title Case.
func toTitleCase(s string) string {
	caser := cases.Title(language.English)
	return caser.String(s)
}

// BuildHierarchy builds a tree from rows based on their Path.
func BuildHierarchy(rows []Row) *HierarchyNode {
	root := &HierarchyNode{
		Name:     "",
		Path:     nil,
		Children: make(map[string]*HierarchyNode),
	}

	for _, row := range rows {
		if len(row.Path) == 0 {
			root.Tokens = append(root.Tokens, row)
			continue
		}

		// Navigate/create path to parent node
		current := root
		for i := 0; i < len(row.Path)-1; i++ {
			name := row.Path[i]
			if current.Children[name] == nil {
				current.Children[name] = &HierarchyNode{
					Name:     name,
					Path:     row.Path[:i+1],
					Children: make(map[string]*HierarchyNode),
				}
			}
			current = current.Children[name]
		}

		// Add token to parent
		current.Tokens = append(current.Tokens, row)
	}

	return root
}

// GenerateTOC generates a markdown table of contents from the hierarchy.
func GenerateTOC(root *HierarchyNode, maxDepth int) string {
	var sb strings.Builder
	sb.WriteString("## Table Of Contents\n\n")
	generateTOCRecursive(root, 0, maxDepth, &sb)
	return sb.String()
}

func generateTOCRecursive(node *HierarchyNode, depth int, maxDepth int, sb *strings.Builder) {
	if depth >= maxDepth {
		return
	}

	// Get sorted child names
	names := make([]string, 0, len(node.Children))
	for name := range node.Children {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		child := node.Children[name]
		indent := strings.Repeat("  ", depth)
		slug := slugify(strings.Join(child.Path, "-"))
		title := toTitleCase(name)
		fmt.Fprintf(sb, "%s- [%s](#%s)\n", indent, title, slug)
		generateTOCRecursive(child, depth+1, maxDepth, sb)
	}
}

// MarkdownWithOptions renders rows as markdown with hierarchy grouping and options.
func MarkdownWithOptions(rows []Row, opts MarkdownOptions) error {
	if len(rows) == 0 {
		return nil
	}

	hierarchy := BuildHierarchy(rows)

	// Generate TOC if requested
	if opts.IncludeTOC {
		tocDepth := opts.TOCDepth
		if tocDepth <= 0 {
			tocDepth = 3
		}
		fmt.Print(GenerateTOC(hierarchy, tocDepth))
		fmt.Println()
	}

	// Render hierarchy
	renderHierarchyNode(hierarchy, 1, opts)
	return nil
}

func renderHierarchyNode(node *HierarchyNode, depth int, opts MarkdownOptions) {
	// Get sorted child names for consistent output
	names := make([]string, 0, len(node.Children))
	for name := range node.Children {
		names = append(names, name)
	}
	sort.Strings(names)

	// Render children first (sections)
	for _, name := range names {
		child := node.Children[name]

		// Heading level: ## for depth 1, ### for depth 2, etc. (max h6)
		level := min(depth+1, 6)
		heading := strings.Repeat("#", level)
		title := toTitleCase(name)
		slug := slugify(strings.Join(child.Path, "-"))

		fmt.Printf("%s %s {#%s}\n\n", heading, title, slug)

		// Render tokens at this level
		if len(child.Tokens) > 0 {
			renderTokenTable(child.Tokens, opts)
			fmt.Println()
		}

		// Recurse into children
		renderHierarchyNode(child, depth+1, opts)
	}

	// Render root-level tokens (no path)
	if node.Path == nil && len(node.Tokens) > 0 {
		renderTokenTable(node.Tokens, opts)
		fmt.Println()
	}
}

func renderTokenTable(tokens []Row, opts MarkdownOptions) {
	if len(tokens) == 0 {
		return
	}

	// Calculate column widths
	nameW, valW, descW := 4, 5, 11 // minimums for headers
	hasDesc := false

	for _, r := range tokens {
		displayName := formatTokenName(r, opts.ShowLinks)
		if len(displayName) > nameW {
			nameW = len(displayName)
		}
		if len(r.Value) > valW {
			valW = len(r.Value)
		}
		if r.Description != "" {
			hasDesc = true
			if len(r.Description) > descW {
				descW = len(r.Description)
			}
		}
	}

	// Render table
	if hasDesc {
		fmt.Printf("| %-*s | %-*s | %-*s |\n", nameW, "Name", valW, "Value", descW, "Description")
		fmt.Printf("|-%s-|-%s-|-%s-|\n",
			strings.Repeat("-", nameW), strings.Repeat("-", valW), strings.Repeat("-", descW))
		for _, r := range tokens {
			fmt.Printf("| %-*s | %-*s | %-*s |\n",
				nameW, formatTokenName(r, opts.ShowLinks), valW, r.Value, descW, r.Description)
		}
	} else {
		fmt.Printf("| %-*s | %-*s |\n", nameW, "Name", valW, "Value")
		fmt.Printf("|-%s-|-%s-|\n", strings.Repeat("-", nameW), strings.Repeat("-", valW))
		for _, r := range tokens {
			fmt.Printf("| %-*s | %-*s |\n", nameW, formatTokenName(r, opts.ShowLinks), valW, r.Value)
		}
	}
}

func formatTokenName(r Row, showLinks bool) string {
	if showLinks {
		slug := slugify(r.Name)
		return fmt.Sprintf("[%s](#%s)", r.Name, slug)
	}
	return r.Name
}
