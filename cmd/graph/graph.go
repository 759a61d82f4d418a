/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package graph provides the graph command for tsror.
package graph

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/tsror/internal/workspace"
	"bennypowers.dev/tsror/relations"
)

// Cmd is the graph cobra command.
var Cmd = &cobra.Command{
	Use:   "graph [token]",
	Short: "Analyze token relationships",
	Long: `Analyze token relationships across the registry.

Two kinds of edges are derived: reference edges, where a token's dotted
name nests under another token's name (color.primary.500 references
color.primary), and alias edges, where two same-category tokens hold
near-identical values.

Without arguments every edge is listed. With a token name, only that
token's dependencies and dependents are shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("format", "table", "Output format: table, json")
	Cmd.Flags().String("kind", "", "Filter by edge kind: reference, alias")
	Cmd.Flags().Float64("color-threshold", 0, "Override the color similarity threshold")
	Cmd.Flags().Float64("numeric-threshold", 0, "Override the numeric similarity threshold")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	kindFilter, _ := cmd.Flags().GetString("kind")
	colorThreshold, _ := cmd.Flags().GetFloat64("color-threshold")
	numericThreshold, _ := cmd.Flags().GetFloat64("numeric-threshold")

	ws, err := workspace.Open(".")
	if err != nil {
		return err
	}

	tokens, err := ws.Store.ListTokens(ws.Scope)
	if err != nil {
		return err
	}

	g := relations.Build(tokens, relations.Options{
		ColorThreshold:   colorThreshold,
		NumericThreshold: numericThreshold,
	})

	if len(args) == 1 {
		return printNeighbors(g, args[0])
	}

	edges := g.Edges()
	if kindFilter != "" {
		filtered := make([]relations.Edge, 0, len(edges))
		for _, e := range edges {
			if string(e.Kind) == kindFilter {
				filtered = append(filtered, e)
			}
		}
		edges = filtered
	}

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(edges)
	}

	for _, e := range edges {
		fmt.Printf("%-40s %-10s %s\n", e.From, e.Kind, e.To)
	}
	return nil
}

func printNeighbors(g *relations.Graph, name string) error {
	deps := g.Dependencies(name)
	dependents := g.Dependents(name)

	if len(deps) == 0 && len(dependents) == 0 {
		fmt.Printf("%s has no relationships\n", name)
		return nil
	}

	if len(deps) > 0 {
		fmt.Println("depends on:")
		for _, dep := range deps {
			fmt.Printf("  %s\n", dep)
		}
	}
	if len(dependents) > 0 {
		fmt.Println("depended on by:")
		for _, dep := range dependents {
			fmt.Printf("  %s\n", dep)
		}
	}
	return nil
}
