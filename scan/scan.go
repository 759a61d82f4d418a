/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package scan extracts design token references from component sources.
// CSS and JavaScript files are parsed with tree-sitter grammars; other
// text (markdown, docs) falls back to pattern matching. Extracted
// references are raw candidates; resolution against the registry is the
// compiler's job.
package scan

import (
	"fmt"
	"regexp"
	"sort"
	"sync"
	"unsafe"

	ts "github.com/tree-sitter/go-tree-sitter"
	ts_css "github.com/tree-sitter/tree-sitter-css/bindings/go"
	ts_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"

	tsrorfs "bennypowers.dev/tsror/fs"
)

// cssRefQuery captures var() arguments. The function name is captured
// too because the grammar cannot restrict it; the scanner filters for
// "var" after matching.
const cssRefQuery = `(call_expression
  (function_name) @fn
  (arguments (plain_value) @ref))`

// jsStringQuery captures string and template literal fragments, where
// component scripts mention custom properties and token paths.
const jsStringQuery = `(string (string_fragment) @str)
(template_string (string_fragment) @str)`

var (
	customPropertyPattern = regexp.MustCompile(`--[A-Za-z][A-Za-z0-9_-]*`)
	dottedPathPattern     = regexp.MustCompile(`\b[a-z][a-z0-9-]*(?:\.[a-z0-9-]+)+\b`)
)

// grammar pairs a parser with its compiled reference query.
type grammar struct {
	parser *ts.Parser
	query  *ts.Query
}

func (g *grammar) close() {
	if g.query != nil {
		g.query.Close()
	}
	if g.parser != nil {
		g.parser.Close()
	}
}

// Scanner extracts token references from source files.
type Scanner struct {
	// Parsers are not safe for concurrent use.
	mu  sync.Mutex
	css *grammar
	js  *grammar
}

// New creates a scanner with compiled CSS and JavaScript grammars.
// Close must be called to release them.
func New() (*Scanner, error) {
	css, err := newGrammar(ts_css.Language(), cssRefQuery)
	if err != nil {
		return nil, fmt.Errorf("compiling css grammar: %w", err)
	}

	js, err := newGrammar(ts_javascript.Language(), jsStringQuery)
	if err != nil {
		css.close()
		return nil, fmt.Errorf("compiling javascript grammar: %w", err)
	}

	return &Scanner{css: css, js: js}, nil
}

func newGrammar(langPtr unsafe.Pointer, queryString string) (*grammar, error) {
	lang := ts.NewLanguage(langPtr)

	parser := ts.NewParser()
	if err := parser.SetLanguage(lang); err != nil {
		parser.Close()
		return nil, err
	}

	query, qerr := ts.NewQuery(lang, queryString)
	if qerr != nil {
		parser.Close()
		return nil, fmt.Errorf("%s", qerr.Message)
	}

	return &grammar{parser: parser, query: query}, nil
}

// Close releases the compiled grammars.
func (s *Scanner) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.css.close()
	s.js.close()
}

// ScanSource extracts token reference candidates from one source,
// deduplicated and sorted. The path only selects the grammar.
//
// TypeScript scans with the JavaScript grammar: tree-sitter recovers
// around type syntax and the string literals carrying references still
// parse.
func (s *Scanner) ScanSource(path string, source []byte) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := make(map[string]bool)
	switch DetectLanguage(path) {
	case LanguageCSS:
		s.collectCSSRefs(source, set)
	case LanguageJavaScript:
		s.collectJSRefs(source, set)
	default:
		collectTextRefs(string(source), set)
	}

	refs := make([]string, 0, len(set))
	for ref := range set {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}

// ScanFiles scans every named file and returns the union of extracted
// references, deduplicated and sorted.
func (s *Scanner) ScanFiles(filesystem tsrorfs.FileSystem, paths []string) ([]string, error) {
	set := make(map[string]bool)
	for _, path := range paths {
		data, err := filesystem.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		for _, ref := range s.ScanSource(path, data) {
			set[ref] = true
		}
	}

	refs := make([]string, 0, len(set))
	for ref := range set {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs, nil
}

// collectCSSRefs walks var() call matches. Each match captures the
// function name and one argument; only var calls contribute.
func (s *Scanner) collectCSSRefs(source []byte, set map[string]bool) {
	tree := s.css.parser.Parse(source, nil)
	if tree == nil {
		return
	}
	defer tree.Close()

	cursor := ts.NewQueryCursor()
	defer cursor.Close()

	captureNames := s.css.query.CaptureNames()
	matches := cursor.Matches(s.css.query, tree.RootNode(), source)
	for {
		match := matches.Next()
		if match == nil {
			break
		}

		var fn, ref string
		for _, capture := range match.Captures {
			text := capture.Node.Utf8Text(source)
			switch captureNames[capture.Index] {
			case "fn":
				fn = text
			case "ref":
				ref = text
			}
		}
		if fn == "var" && ref != "" {
			set[ref] = true
		}
	}
}

// collectJSRefs pattern-matches inside captured string fragments.
func (s *Scanner) collectJSRefs(source []byte, set map[string]bool) {
	tree := s.js.parser.Parse(source, nil)
	if tree == nil {
		return
	}
	defer tree.Close()

	cursor := ts.NewQueryCursor()
	defer cursor.Close()

	matches := cursor.Matches(s.js.query, tree.RootNode(), source)
	for {
		match := matches.Next()
		if match == nil {
			break
		}
		for _, capture := range match.Captures {
			collectTextRefs(capture.Node.Utf8Text(source), set)
		}
	}
}

// collectTextRefs extracts custom-property and dotted-path shaped
// candidates from free text.
func collectTextRefs(text string, set map[string]bool) {
	for _, ref := range customPropertyPattern.FindAllString(text, -1) {
		set[ref] = true
	}
	for _, ref := range dottedPathPattern.FindAllString(text, -1) {
		set[ref] = true
	}
}
