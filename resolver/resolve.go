/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"maps"

	"bennypowers.dev/tsror/token"
)

// Problem is a non-fatal resolution failure: a reference that points at
// no known token. The token keeps its raw reference value.
type Problem struct {
	// Token is the name of the token whose value failed to resolve.
	Token string `json:"token"`

	// Ref is the reference target as written in the source value.
	Ref string `json:"ref"`

	// Mode is the mode the failing value belongs to, empty for the
	// default value.
	Mode string `json:"mode,omitempty"`
}

func (p Problem) String() string {
	if p.Mode != "" {
		return fmt.Sprintf("%s (mode %s): unresolved reference %q", p.Token, p.Mode, p.Ref)
	}
	return fmt.Sprintf("%s: unresolved reference %q", p.Token, p.Ref)
}

// Resolve replaces whole-value references with the values of the tokens
// they point at. The input is not mutated; resolved copies are returned
// in the input order. Chained references resolve transitively. Cycles
// are fatal; unknown targets are reported as problems and the raw
// reference value is kept.
func Resolve(tokens []*token.Token) ([]*token.Token, []Problem, error) {
	graph := BuildDependencyGraph(tokens)
	order, err := graph.TopologicalSort()
	if err != nil {
		return nil, nil, err
	}

	out := make([]*token.Token, len(tokens))
	resolved := make(map[string]*token.Token, len(tokens))
	for i, t := range tokens {
		copied := *t
		if t.ValueByMode != nil {
			copied.ValueByMode = maps.Clone(t.ValueByMode)
		}
		out[i] = &copied
		resolved[t.Name] = &copied
	}

	byKey := make(map[string]string, len(tokens))
	for _, t := range tokens {
		byKey[refKey(t.Name)] = t.Name
	}

	var problems []Problem
	for _, name := range order {
		t := resolved[name]
		if t == nil {
			continue
		}

		t.Value = resolveValue(t.Value, "", resolved, byKey, name, &problems)
		for mode, value := range t.ValueByMode {
			t.ValueByMode[mode] = resolveValue(value, mode, resolved, byKey, name, &problems)
		}
	}

	// Duplicate names collapse to one graph node, resolved above. The
	// shadowed copies resolve here against the final values so every
	// input position gets a non-nil resolved token.
	for _, t := range out {
		if resolved[t.Name] == t {
			continue
		}
		t.Value = resolveValue(t.Value, "", resolved, byKey, t.Name, &problems)
		for mode, value := range t.ValueByMode {
			t.ValueByMode[mode] = resolveValue(value, mode, resolved, byKey, t.Name, &problems)
		}
	}
	return out, problems, nil
}

// resolveValue resolves one value. Targets are looked up among already
// resolved tokens, so topological order guarantees the target value is
// final. Mode-specific references prefer the target's value in the same
// mode.
func resolveValue(value, mode string, resolved map[string]*token.Token, byKey map[string]string, owner string, problems *[]Problem) string {
	target, ok := refTarget(value)
	if !ok {
		return value
	}

	name, ok := byKey[refKey(target)]
	if !ok || name == owner {
		*problems = append(*problems, Problem{Token: owner, Ref: target, Mode: mode})
		return value
	}

	targetToken := resolved[name]
	if mode != "" {
		return targetToken.ValueForMode(mode)
	}
	return targetToken.Value
}
