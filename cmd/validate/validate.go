/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for tsror.
package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/tsror/config"
	"bennypowers.dev/tsror/internal/workspace"
	"bennypowers.dev/tsror/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate token files before import",
	Long: `Validate token files before import.

Each file is parsed with the same format detection the import command
uses, then checked for name collisions, unparseable color values, and
dangling or circular value references.

With no arguments, the files configured in .config/tsror.yaml are
validated. The exit status is non-zero when any file has errors.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	ws, err := workspace.Open(".")
	if err != nil {
		return err
	}

	files := args
	if len(files) == 0 {
		resolved, err := ws.Config.ExpandFiles(ws.FS, ".")
		if err != nil {
			return err
		}
		for _, f := range resolved {
			files = append(files, f.Path)
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no input files: pass paths or configure files in .config/%s.yaml", config.ConfigFileName)
	}

	total := 0
	for _, file := range files {
		data, err := ws.FS.ReadFile(file)
		if err != nil {
			return err
		}

		errors := validator.ValidateDocument(data, file)
		for _, e := range errors {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		total += len(errors)
	}

	if total > 0 {
		return fmt.Errorf("%d validation error(s) in %d file(s)", total, len(files))
	}

	fmt.Printf("%d file(s) valid\n", len(files))
	return nil
}
