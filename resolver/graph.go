/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver resolves token value references. A token whose value
// is "{color.primary}" or "var(--color-primary)" takes the value of the
// token it points at, with cycle detection across the whole set.
package resolver

import (
	"errors"
	"fmt"
	"sort"

	"bennypowers.dev/tsror/token"
)

// ErrCircularReference indicates a reference cycle between tokens.
var ErrCircularReference = errors.New("circular token reference")

// DependencyGraph is a directed graph of value-reference dependencies
// between tokens, keyed by canonical token name.
type DependencyGraph struct {
	dependencies map[string][]string
	dependents   map[string][]string
	nodes        map[string]bool
}

// BuildDependencyGraph builds the reference graph for a token set.
// Reference targets are matched to token names loosely, so
// "var(--color-primary)" resolves to the token named "color.primary".
// Targets that match no token produce no edge.
func BuildDependencyGraph(tokens []*token.Token) *DependencyGraph {
	graph := &DependencyGraph{
		dependencies: make(map[string][]string),
		dependents:   make(map[string][]string),
		nodes:        make(map[string]bool),
	}

	byKey := make(map[string]string, len(tokens))
	for _, t := range tokens {
		graph.nodes[t.Name] = true
		byKey[refKey(t.Name)] = t.Name
	}

	for _, t := range tokens {
		deps := dependencyNames(t, byKey)
		if len(deps) == 0 {
			continue
		}
		graph.dependencies[t.Name] = deps
		for _, dep := range deps {
			graph.dependents[dep] = append(graph.dependents[dep], t.Name)
		}
	}

	return graph
}

// dependencyNames returns the canonical names of every token t's values
// reference, deduplicated and sorted.
func dependencyNames(t *token.Token, byKey map[string]string) []string {
	seen := make(map[string]bool)
	collect := func(value string) {
		target, ok := refTarget(value)
		if !ok {
			return
		}
		if name, ok := byKey[refKey(target)]; ok && name != t.Name {
			seen[name] = true
		}
	}

	collect(t.Value)
	for _, v := range t.ValueByMode {
		collect(v)
	}

	if len(seen) == 0 {
		return nil
	}
	deps := make([]string, 0, len(seen))
	for name := range seen {
		deps = append(deps, name)
	}
	sort.Strings(deps)
	return deps
}

// Dependencies returns the token names the given token references.
func (g *DependencyGraph) Dependencies(name string) []string {
	if deps, ok := g.dependencies[name]; ok {
		return deps
	}
	return []string{}
}

// Dependents returns the token names that reference the given token.
func (g *DependencyGraph) Dependents(name string) []string {
	if deps, ok := g.dependents[name]; ok {
		return deps
	}
	return []string{}
}

// HasCycle reports whether the graph contains a reference cycle.
func (g *DependencyGraph) HasCycle() bool {
	return g.FindCycle() != nil
}

// FindCycle returns one cycle path if any exists, or nil. Nodes are
// visited in sorted order so the reported cycle is deterministic.
func (g *DependencyGraph) FindCycle() []string {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)

	for _, node := range g.sortedNodes() {
		if cycle := g.findCycleDFS(node, visited, recStack, nil); cycle != nil {
			return cycle
		}
	}
	return nil
}

func (g *DependencyGraph) findCycleDFS(node string, visited, recStack map[string]bool, path []string) []string {
	if recStack[node] {
		cycleStart := -1
		for i, n := range path {
			if n == node {
				cycleStart = i
				break
			}
		}
		if cycleStart == -1 {
			panic(fmt.Sprintf("cycle detection invariant violated: node %q in recStack but not in path %v", node, path))
		}
		return append(path[cycleStart:], node)
	}
	if visited[node] {
		return nil
	}

	visited[node] = true
	recStack[node] = true
	path = append(path, node)

	for _, dep := range g.dependencies[node] {
		if cycle := g.findCycleDFS(dep, visited, recStack, path); cycle != nil {
			return cycle
		}
	}

	recStack[node] = false
	return nil
}

// TopologicalSort returns token names in dependency order, referenced
// tokens before the tokens that reference them. Fails on cycles.
func (g *DependencyGraph) TopologicalSort() ([]string, error) {
	if cycle := g.FindCycle(); cycle != nil {
		return nil, fmt.Errorf("%w: %v", ErrCircularReference, cycle)
	}

	visited := make(map[string]bool)
	result := make([]string, 0, len(g.nodes))

	for _, node := range g.sortedNodes() {
		if !visited[node] {
			g.topologicalSortDFS(node, visited, &result)
		}
	}

	return result, nil
}

func (g *DependencyGraph) topologicalSortDFS(node string, visited map[string]bool, stack *[]string) {
	visited[node] = true

	for _, dep := range g.dependencies[node] {
		if !visited[dep] {
			g.topologicalSortDFS(dep, visited, stack)
		}
	}

	*stack = append(*stack, node)
}

func (g *DependencyGraph) sortedNodes() []string {
	nodes := make([]string, 0, len(g.nodes))
	for node := range g.nodes {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)
	return nodes
}
