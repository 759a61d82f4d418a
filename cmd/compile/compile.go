/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package compile provides the compile command for tsror.
package compile

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	compilelib "bennypowers.dev/tsror/compile"
	"bennypowers.dev/tsror/internal/workspace"
	"bennypowers.dev/tsror/resolver"
)

// Cmd is the compile cobra command.
var Cmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile the active token set into a versioned global bundle",
	Long: `Compile the active token set into a versioned global bundle.

The bundle is two files, tokens.css and tokens.json, written to the
output directory together with a manifest recording the bundle version.
Tokens from inactive source files are excluded.

Versioning is automatic: adding or removing tokens bumps the minor
version, changing only values bumps the patch version, and an unchanged
set leaves the version alone. Major bumps are never automatic; pass
--major to perform one.

Token values that reference other tokens, {color.primary} or
var(--color-primary), are resolved before rendering. Reference cycles
fail the compile; references to unknown tokens are warnings.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("out", "o", "", "Output directory (default from config)")
	Cmd.Flags().Bool("major", false, "Force a major version bump")
}

func run(cmd *cobra.Command, args []string) error {
	outFlag, _ := cmd.Flags().GetString("out")
	major, _ := cmd.Flags().GetBool("major")

	ws, err := workspace.Open(".")
	if err != nil {
		return err
	}

	outDir := outFlag
	if outDir == "" {
		outDir = ws.Config.OutDir
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
	prev := manifest.Previous(compilelib.Global, "")

	opts := compilelib.Options{
		Prefix:        viper.GetString("prefix"),
		ModeAttribute: ws.Config.ModeAttribute,
		Major:         major,
	}
	if opts.Prefix == "" {
		opts.Prefix = ws.Config.Prefix
	}

	bundle, err := compilelib.CompileGlobal(tokens, prev, opts)
	if err != nil {
		if errors.Is(err, compilelib.ErrEmptyInput) {
			return fmt.Errorf("nothing to compile: the active token set is empty")
		}
		return err
	}

	if err := bundle.Write(ws.FS, outDir, "tokens"); err != nil {
		return err
	}
	manifest.Record(bundle)
	if err := manifest.Save(ws.FS, outDir); err != nil {
		return err
	}

	fmt.Printf("compiled %d tokens to %s (v%s)\n", bundle.TokenCount, outDir, bundle.Version)
	return nil
}
