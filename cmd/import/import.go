/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package importcmd provides the import command for tsror.
package importcmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"bennypowers.dev/tsror/cmd/render"
	"bennypowers.dev/tsror/config"
	"bennypowers.dev/tsror/internal/workspace"
	"bennypowers.dev/tsror/load"
	"bennypowers.dev/tsror/normalize"
	"bennypowers.dev/tsror/parser"
	"bennypowers.dev/tsror/token"
)

// Cmd is the import cobra command.
var Cmd = &cobra.Command{
	Use:   "import [files...]",
	Short: "Import design token files into the registry",
	Long: `Import design token files into the registry.

The file format is detected automatically: Figma variable exports, flat
token maps, and nested (DTCG-style) documents are recognized. Without
--commit, a preview of the parsed tokens is printed and nothing is
persisted.

With no arguments, the files configured in .config/tsror.yaml are
imported.

Besides local paths, npm: and jsr: specifiers resolve against installed
packages in node_modules. With --fetch, packages that are not installed
are fetched from a CDN instead.

Examples:
  # Preview what an import would produce
  tsror import tokens/figma-export.json

  # Commit it
  tsror import --commit tokens/figma-export.json

  # Import a published token package
  tsror import --commit --fetch npm:@acme/tokens/tokens.json

  # Import everything the config declares
  tsror import --commit`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("commit", false, "Persist the parsed tokens instead of previewing")
	Cmd.Flags().String("name", "", "Display name for the source file (single file only)")
	Cmd.Flags().String("uploaded-by", "", "Record who performed the import")
	Cmd.Flags().String("format", "table", "Preview format: table, json")
	Cmd.Flags().Bool("fetch", false, "Fetch uninstalled npm:/jsr: packages from a CDN")
}

func run(cmd *cobra.Command, args []string) error {
	commit, _ := cmd.Flags().GetBool("commit")
	nameFlag, _ := cmd.Flags().GetString("name")
	uploadedBy, _ := cmd.Flags().GetString("uploaded-by")
	format, _ := cmd.Flags().GetString("format")
	fetch, _ := cmd.Flags().GetBool("fetch")

	if nameFlag != "" && len(args) > 1 {
		return fmt.Errorf("--name applies to a single file, got %d", len(args))
	}

	ws, err := workspace.Open(".")
	if err != nil {
		return err
	}

	files, err := inputFiles(ws, args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no input files: pass paths or configure files in .config/%s.yaml", config.ConfigFileName)
	}

	loadOpts := load.Options{Root: ".", FS: ws.FS}
	if fetch {
		loadOpts.Fetcher = load.NewHTTPFetcher(load.DefaultMaxSize)
	}

	for _, file := range files {
		if err := importOne(cmd, ws, file, loadOpts, commit, nameFlag, uploadedBy, format); err != nil {
			return fmt.Errorf("%s: %w", file.Path, err)
		}
	}

	return nil
}

// inputFiles resolves explicit arguments, or falls back to the
// configured file specs.
func inputFiles(ws *workspace.Workspace, args []string) ([]config.ResolvedFile, error) {
	if len(args) == 0 {
		return ws.Config.ExpandFiles(ws.FS, ".")
	}

	files := make([]config.ResolvedFile, 0, len(args))
	for _, arg := range args {
		files = append(files, config.ResolvedFile{
			Path:   arg,
			Prefix: ws.Config.PrefixForFile(arg),
		})
	}
	return files, nil
}

func importOne(cmd *cobra.Command, ws *workspace.Workspace, file config.ResolvedFile, loadOpts load.Options, commit bool, nameFlag, uploadedBy, format string) error {
	result, err := load.Load(cmd.Context(), file.Path, loadOpts)
	if err != nil {
		return err
	}

	applyNamespace(result.Tokens, file.Prefix)

	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", file.Path, warning)
	}

	if !commit {
		return printPreview(file.Path, parser.BuildPreview(result), format)
	}

	name := nameFlag
	if name == "" {
		name = filepath.Base(file.Path)
	}
	source := &token.SourceFile{
		Name:         name,
		OriginalName: filepath.Base(file.Path),
		IsActive:     true,
		UploadedAt:   time.Now().UTC(),
		UploadedBy:   uploadedBy,
	}

	if err := ws.Store.CommitImport(ws.Scope, source, result.Tokens); err != nil {
		return err
	}

	fmt.Printf("imported %d tokens from %s (file %s, format %s)\n",
		len(result.Tokens), file.Path, source.ID, result.Format)
	return nil
}

// applyNamespace prepends a per-file prefix to every token name.
func applyNamespace(tokens []*token.Token, prefix string) {
	if prefix == "" {
		return
	}
	prefix = normalize.Name(prefix)
	for _, t := range tokens {
		t.Name = prefix + normalize.Delimiter + t.Name
	}
}

func printPreview(path string, preview *parser.Preview, format string) error {
	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(preview)
	}

	fmt.Printf("%s: %d tokens (%s)\n", path, preview.Total, preview.Format)
	for _, category := range token.Categories() {
		if count := preview.CountsByType[category]; count > 0 {
			fmt.Printf("  %-10s %d\n", category, count)
		}
	}
	fmt.Println()

	return render.Table(render.ComputeRows(preview.Tokens, ""))
}
