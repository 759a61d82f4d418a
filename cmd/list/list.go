/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for tsror.
package list

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tsror/cmd/render"
	"bennypowers.dev/tsror/internal/workspace"
	"bennypowers.dev/tsror/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List tokens in the registry",
	Long:  `List registry tokens with optional filtering and formatting.`,
	RunE:  run,
}

func init() {
	Cmd.Flags().String("type", "", "Filter by token type")
	Cmd.Flags().Bool("active", false, "Only tokens from active source files")
	Cmd.Flags().String("format", "table", "Output format: table, json, css, markdown, names")
	Cmd.Flags().Bool("toc", false, "Include a table of contents (markdown format)")
}

func run(cmd *cobra.Command, args []string) error {
	typeFilter, _ := cmd.Flags().GetString("type")
	activeOnly, _ := cmd.Flags().GetBool("active")
	format, _ := cmd.Flags().GetString("format")
	toc, _ := cmd.Flags().GetBool("toc")

	ws, err := workspace.Open(".")
	if err != nil {
		return err
	}

	var tokens []*token.Token
	if activeOnly {
		tokens, err = ws.Store.ActiveTokens(ws.Scope)
	} else {
		tokens, err = ws.Store.ListTokens(ws.Scope)
	}
	if err != nil {
		return err
	}

	if typeFilter != "" {
		category := token.Category(typeFilter)
		if !category.Valid() {
			return fmt.Errorf("invalid token type %q", typeFilter)
		}
		filtered := make([]*token.Token, 0, len(tokens))
		for _, t := range tokens {
			if t.Type == category {
				filtered = append(filtered, t)
			}
		}
		tokens = filtered
	}

	prefix := viper.GetString("prefix")
	if prefix == "" {
		prefix = ws.Config.Prefix
	}
	rows := render.ComputeRows(tokens, prefix)

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tokens)
	case "css":
		return render.CSS(rows)
	case "markdown":
		return render.MarkdownWithOptions(rows, render.MarkdownOptions{IncludeTOC: toc})
	case "names":
		return render.Names(rows)
	default:
		return render.Table(rows)
	}
}
