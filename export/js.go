/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"bennypowers.dev/tsror/token"
)

// JSFormatter outputs an ES module with one camelCase const export per
// token. Multi-mode tokens additionally export a byMode object.
type JSFormatter struct{}

// NewJSFormatter creates a JavaScript formatter.
func NewJSFormatter() *JSFormatter {
	return &JSFormatter{}
}

// Format converts tokens to an ES module.
func (f *JSFormatter) Format(tokens []*token.Token, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Generated design tokens. Do not edit by hand.\n")

	for _, t := range SortTokens(tokens) {
		name := exportName(t, opts)
		fmt.Fprintf(&buf, "export const %s = %s;\n", name, jsString(t.Value))

		if len(t.Modes) > 1 {
			modes, err := json.Marshal(t.ValueByMode)
			if err != nil {
				return nil, err
			}
			fmt.Fprintf(&buf, "export const %sByMode = %s;\n", name, modes)
		}
	}

	return buf.Bytes(), nil
}

func exportName(t *token.Token, opts Options) string {
	name := t.Name
	if opts.Prefix != "" {
		name = opts.Prefix + "." + name
	}
	return ToCamelCase(name)
}

func jsString(s string) string {
	data, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}
	return string(data)
}

// SCSSFormatter outputs SCSS variables with kebab-case names.
type SCSSFormatter struct{}

// NewSCSSFormatter creates an SCSS formatter.
func NewSCSSFormatter() *SCSSFormatter {
	return &SCSSFormatter{}
}

// Format converts tokens to SCSS variable declarations.
func (f *SCSSFormatter) Format(tokens []*token.Token, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Generated design tokens. Do not edit by hand.\n")

	for _, t := range SortTokens(tokens) {
		fmt.Fprintf(&buf, "$%s: %s;\n", FlatName(t, opts), t.Value)
	}

	return buf.Bytes(), nil
}
