/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package relations builds derived token relationship graphs: reference
// edges from name hierarchy and alias edges from value similarity.
//
// Analysis is O(n²) over same-category tokens and runs on demand, not on
// every registry write. Registries hold hundreds to low thousands of
// tokens, not millions.
package relations

import (
	"sort"

	"bennypowers.dev/tsror/token"
)

// EdgeKind distinguishes derived relationships.
type EdgeKind string

const (
	// Reference marks a name-hierarchy edge: the token's dotted name
	// is a child path of another existing token.
	Reference EdgeKind = "reference"

	// Alias marks a value-similarity edge between same-category tokens.
	Alias EdgeKind = "alias"
)

// Edge is a derived relationship between two tokens, identified by name.
// Edges are not persisted; they are recomputed per analysis.
type Edge struct {
	From string   `json:"from"`
	To   string   `json:"to"`
	Kind EdgeKind `json:"kind"`
}

// Graph holds the derived edges for one token set.
type Graph struct {
	edges        []Edge
	dependencies map[string][]string
	dependents   map[string][]string
	nodes        map[string]bool
}

// Build analyzes tokens and returns the relationship graph.
func Build(tokens []*token.Token, opts Options) *Graph {
	opts = opts.withDefaults()

	graph := &Graph{
		dependencies: make(map[string][]string),
		dependents:   make(map[string][]string),
		nodes:        make(map[string]bool),
	}
	for _, t := range tokens {
		graph.nodes[t.Name] = true
	}

	// Reference edges: a token at a.b.c references every existing
	// token at a proper prefix of its path.
	for _, t := range tokens {
		for _, prefix := range t.PathPrefixes() {
			if !graph.nodes[prefix] {
				continue
			}
			graph.addEdge(Edge{From: t.Name, To: prefix, Kind: Reference})
		}
	}

	// Alias edges: unordered same-category pairs judged similar.
	// One directed edge per pair; From orders before To for
	// deterministic output.
	byCategory := make(map[token.Category][]*token.Token)
	for _, t := range tokens {
		byCategory[t.Type] = append(byCategory[t.Type], t)
	}
	for _, group := range byCategory {
		sort.Slice(group, func(i, j int) bool { return group[i].Name < group[j].Name })
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				if similar(group[i], group[j], opts) {
					graph.addEdge(Edge{From: group[i].Name, To: group[j].Name, Kind: Alias})
				}
			}
		}
	}

	sort.Slice(graph.edges, func(i, j int) bool {
		a, b := graph.edges[i], graph.edges[j]
		if a.From != b.From {
			return a.From < b.From
		}
		if a.To != b.To {
			return a.To < b.To
		}
		return a.Kind < b.Kind
	})

	return graph
}

func (g *Graph) addEdge(e Edge) {
	g.edges = append(g.edges, e)
	g.dependencies[e.From] = append(g.dependencies[e.From], e.To)
	g.dependents[e.To] = append(g.dependents[e.To], e.From)
}

// Edges returns all edges, sorted by (from, to, kind).
func (g *Graph) Edges() []Edge {
	return g.edges
}

// Dependencies returns the token names the given token points at.
func (g *Graph) Dependencies(name string) []string {
	if deps, ok := g.dependencies[name]; ok {
		return deps
	}
	return []string{}
}

// Dependents returns the token names that point at the given token.
func (g *Graph) Dependents(name string) []string {
	if deps, ok := g.dependents[name]; ok {
		return deps
	}
	return []string{}
}
