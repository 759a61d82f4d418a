/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package search provides the search command for tsror.
package search

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tsror/internal/workspace"
	"bennypowers.dev/tsror/token"
)

// Cmd is the search cobra command.
var Cmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search registry tokens by name, value, or type",
	Long: `Search registry tokens by name, value, or type.

Matching is case-insensitive substring by default; pass --regex to
treat the query as a regular expression. Without --name or --value the
query matches against names, values, types and descriptions.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("name", false, "Search names only")
	Cmd.Flags().Bool("value", false, "Search values only")
	Cmd.Flags().String("type", "", "Filter by token type")
	Cmd.Flags().Bool("regex", false, "Query is a regex")
	Cmd.Flags().String("format", "table", "Output format: table, json, names")
}

func run(cmd *cobra.Command, args []string) error {
	query := args[0]

	nameOnly, _ := cmd.Flags().GetBool("name")
	valueOnly, _ := cmd.Flags().GetBool("value")
	typeFilter, _ := cmd.Flags().GetString("type")
	useRegex, _ := cmd.Flags().GetBool("regex")
	format, _ := cmd.Flags().GetString("format")

	var pattern *regexp.Regexp
	var err error
	if useRegex {
		pattern, err = regexp.Compile(query)
		if err != nil {
			return fmt.Errorf("invalid regex: %w", err)
		}
	}

	ws, err := workspace.Open(".")
	if err != nil {
		return err
	}

	tokens, err := ws.Store.ListTokens(ws.Scope)
	if err != nil {
		return err
	}

	prefix := viper.GetString("prefix")
	if prefix == "" {
		prefix = ws.Config.Prefix
	}

	var matches []*token.Token
	for _, tok := range tokens {
		if typeFilter != "" && string(tok.Type) != typeFilter {
			continue
		}

		var matched bool
		switch {
		case nameOnly:
			matched = matchString(tok.Name, query, pattern)
		case valueOnly:
			matched = matchString(tok.Value, query, pattern)
		default:
			matched = matchString(tok.Name, query, pattern) ||
				matchString(tok.Value, query, pattern) ||
				matchString(string(tok.Type), query, pattern) ||
				matchString(tok.Description, query, pattern)
		}

		if matched {
			matches = append(matches, tok)
		}
	}

	switch format {
	case "json":
		return outputJSON(matches, prefix)
	case "names":
		return outputNames(matches, prefix)
	default:
		return outputTable(matches, prefix)
	}
}

func matchString(s, query string, pattern *regexp.Regexp) bool {
	if pattern != nil {
		return pattern.MatchString(s)
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(query))
}

func outputTable(tokens []*token.Token, prefix string) error {
	if len(tokens) == 0 {
		return nil
	}

	nameWidth := 4
	typeWidth := 4
	for _, tok := range tokens {
		if name := tok.CSSVariableName(prefix); len(name) > nameWidth {
			nameWidth = len(name)
		}
		if len(tok.Type) > typeWidth {
			typeWidth = len(tok.Type)
		}
	}

	for _, tok := range tokens {
		typeStr := string(tok.Type)
		if typeStr == "" {
			typeStr = "-"
		}
		fmt.Printf("%-*s  %-*s  %s\n", nameWidth, tok.CSSVariableName(prefix), typeWidth, typeStr, tok.Value)
	}
	return nil
}

func outputJSON(tokens []*token.Token, prefix string) error {
	type tokenOutput struct {
		Name        string `json:"name"`
		Value       string `json:"value"`
		Type        string `json:"type,omitempty"`
		Description string `json:"description,omitempty"`
	}

	output := make([]tokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, tokenOutput{
			Name:        tok.CSSVariableName(prefix),
			Value:       tok.Value,
			Type:        string(tok.Type),
			Description: tok.Description,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func outputNames(tokens []*token.Token, prefix string) error {
	for _, tok := range tokens {
		fmt.Println(tok.CSSVariableName(prefix))
	}
	return nil
}
