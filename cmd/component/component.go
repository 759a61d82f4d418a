/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package component provides the component command for tsror.
package component

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	compilelib "bennypowers.dev/tsror/compile"
	"bennypowers.dev/tsror/config"
	"bennypowers.dev/tsror/internal/workspace"
	"bennypowers.dev/tsror/resolver"
	"bennypowers.dev/tsror/scan"
)

// Cmd is the component cobra command.
var Cmd = &cobra.Command{
	Use:   "component <id>",
	Short: "Compile a per-component bundle from scanned sources",
	Long: `Compile a per-component bundle from scanned sources.

The component's source files are scanned for token references: var()
calls in CSS, string literals in JavaScript and TypeScript, and
custom-property or dotted-path mentions in other text. The references
are matched against the active token set and only the matched subset is
compiled, keeping component payloads small.

References that match no registry token are reported on stderr so stale
names surface instead of silently disappearing.

Examples:
  tsror component card --sources 'src/card/**/*.{css,js}'
  tsror component button --sources src/button/button.css --sources docs/button.md`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringArrayP("sources", "s", nil, "Source globs to scan (repeatable)")
	Cmd.Flags().StringP("out", "o", "", "Output directory (default from config)")
	Cmd.Flags().Bool("major", false, "Force a major version bump")
}

func run(cmd *cobra.Command, args []string) error {
	componentID := args[0]
	sources, _ := cmd.Flags().GetStringArray("sources")
	outFlag, _ := cmd.Flags().GetString("out")
	major, _ := cmd.Flags().GetBool("major")

	if len(sources) == 0 {
		return fmt.Errorf("no sources: pass at least one --sources glob")
	}

	ws, err := workspace.Open(".")
	if err != nil {
		return err
	}

	outDir := outFlag
	if outDir == "" {
		outDir = ws.Config.OutDir
	}

	paths, err := config.ExpandGlobs(ws.FS, ".", sources)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no files matched %v", sources)
	}

	scanner, err := scan.New()
	if err != nil {
		return err
	}
	defer scanner.Close()

	refs, err := scanner.ScanFiles(ws.FS, paths)
	if err != nil {
		return err
	}

	tokens, err := ws.Store.ActiveTokens(ws.Scope)
	if err != nil {
		return err
	}

	tokens, problems, err := resolver.Resolve(tokens)
	if err != nil {
		return err
	}
	for _, p := range problems {
		fmt.Fprintf(os.Stderr, "warning: %s\n", p)
	}

	manifest, err := compilelib.LoadManifest(ws.FS, outDir)
	if err != nil {
		return err
	}
	prev := manifest.Previous(compilelib.Component, componentID)

	opts := compilelib.Options{
		Prefix:        viper.GetString("prefix"),
		ModeAttribute: ws.Config.ModeAttribute,
		Major:         major,
	}
	if opts.Prefix == "" {
		opts.Prefix = ws.Config.Prefix
	}

	bundle, unmatched, err := compilelib.CompileComponent(componentID, tokens, refs, prev, opts)
	for _, ref := range unmatched {
		fmt.Fprintf(os.Stderr, "warning: %s references unknown token %q\n", componentID, ref)
	}
	if err != nil {
		if errors.Is(err, compilelib.ErrEmptyInput) {
			return fmt.Errorf("no token references found in %d scanned files", len(paths))
		}
		return err
	}

	if err := bundle.Write(ws.FS, outDir, componentID); err != nil {
		return err
	}
	manifest.Record(bundle)
	if err := manifest.Save(ws.FS, outDir); err != nil {
		return err
	}

	fmt.Printf("compiled %d tokens for %s to %s (v%s)\n",
		bundle.TokenCount, componentID, outDir, bundle.Version)
	return nil
}
