/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package export provides the export command for tsror.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	exportlib "bennypowers.dev/tsror/export"
	"bennypowers.dev/tsror/internal/workspace"
	"bennypowers.dev/tsror/resolver"
)

// Cmd is the export cobra command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the active token set to a developer format",
	Long: `Export the active token set to a developer format.

Unlike compile, export produces unversioned serializations for handoff
to other tools: DTCG-style nested JSON, flat JSON, an ES module, or
SCSS variables. Value references are resolved first.

Examples:
  tsror export --format dtcg > tokens.dtcg.json
  tsror export --format js --out dist/tokens.js
  tsror export --format scss --out src/_tokens.scss`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "dtcg", "Output format: dtcg, json, js, scss")
	Cmd.Flags().StringP("out", "o", "", "Output file (default stdout)")
}

func run(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	outFlag, _ := cmd.Flags().GetString("out")

	format, err := exportlib.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	ws, err := workspace.Open(".")
	if err != nil {
		return err
	}

	tokens, err := ws.Store.ActiveTokens(ws.Scope)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return fmt.Errorf("nothing to export: the active token set is empty")
	}

	tokens, problems, err := resolver.Resolve(tokens)
	if err != nil {
		return err
	}
	for _, p := range problems {
		fmt.Fprintf(os.Stderr, "warning: %s\n", p)
	}

	prefix := viper.GetString("prefix")
	if prefix == "" {
		prefix = ws.Config.Prefix
	}

	out, err := exportlib.FormatTokens(tokens, format, exportlib.Options{Prefix: prefix})
	if err != nil {
		return err
	}

	if outFlag == "" {
		_, err = os.Stdout.Write(out)
		return err
	}

	if dir := filepath.Dir(outFlag); dir != "." {
		if err := ws.FS.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := ws.FS.WriteFile(outFlag, out, 0644); err != nil {
		return err
	}
	fmt.Printf("exported %d tokens to %s (%s)\n", len(tokens), outFlag, format)
	return nil
}
