/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package compile

import (
	"fmt"
	"strings"

	"bennypowers.dev/tsror/token"
)

// renderCSS emits one custom-property declaration per token under
// :root for the default mode, then one attribute-selector block per
// non-default mode. A single stylesheet encodes every mode; consumers
// switch by toggling the attribute.
func renderCSS(tokens []*token.Token, modes []string, opts Options) string {
	var sb strings.Builder

	defaultMode := ""
	if len(modes) > 0 {
		defaultMode = modes[0]
	}

	writeBlock(&sb, ":root", tokens, defaultMode, opts.Prefix)

	for _, mode := range modes {
		if mode == defaultMode {
			continue
		}
		sb.WriteString("\n")
		selector := fmt.Sprintf("[%s=%q]", opts.ModeAttribute, mode)
		writeBlock(&sb, selector, tokens, mode, opts.Prefix)
	}

	return sb.String()
}

func writeBlock(sb *strings.Builder, selector string, tokens []*token.Token, mode, prefix string) {
	sb.WriteString(selector)
	sb.WriteString(" {\n")
	for _, t := range tokens {
		value := t.Value
		if mode != "" {
			value = t.ValueForMode(mode)
		}
		fmt.Fprintf(sb, "  %s: %s;\n", t.CSSVariableName(prefix), value)
	}
	sb.WriteString("}\n")
}
