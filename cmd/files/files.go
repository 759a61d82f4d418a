/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package files provides source file management commands for tsror.
package files

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/tsror/internal/workspace"
)

// Cmd is the files cobra command.
var Cmd = &cobra.Command{
	Use:   "files",
	Short: "Manage imported source files",
	Long: `Manage imported source files.

Every committed import creates a source file record owning its tokens.
Deactivating a file excludes its tokens from compilation without
deleting them; removing a file deletes its tokens with it.`,
	RunE: runList,
}

var renameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a source file",
	Args:  cobra.ExactArgs(2),
	RunE:  runRename,
}

var activateCmd = &cobra.Command{
	Use:   "activate <id>",
	Short: "Include a file's tokens in compilation",
	Args:  cobra.ExactArgs(1),
	RunE:  runToggle(true),
}

var deactivateCmd = &cobra.Command{
	Use:   "deactivate <id>",
	Short: "Exclude a file's tokens from compilation without deleting them",
	Args:  cobra.ExactArgs(1),
	RunE:  runToggle(false),
}

var removeCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a source file and all its tokens",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func init() {
	Cmd.Flags().String("format", "table", "Output format: table, json")

	Cmd.AddCommand(renameCmd)
	Cmd.AddCommand(activateCmd)
	Cmd.AddCommand(deactivateCmd)
	Cmd.AddCommand(removeCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	ws, err := workspace.Open(".")
	if err != nil {
		return err
	}

	files, err := ws.Store.ListFiles(ws.Scope)
	if err != nil {
		return err
	}

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(files)
	}

	for _, f := range files {
		status := "active"
		if !f.IsActive {
			status = "inactive"
		}
		fmt.Printf("%-6s %-30s %-8s %4d tokens  %s\n",
			f.ID, f.Name, status, f.TokenCount, f.UploadedAt.Format("2006-01-02"))
	}
	return nil
}

func runRename(cmd *cobra.Command, args []string) error {
	ws, err := workspace.Open(".")
	if err != nil {
		return err
	}
	return ws.Store.RenameFile(ws.Scope, args[0], args[1])
}

func runToggle(active bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ws, err := workspace.Open(".")
		if err != nil {
			return err
		}
		return ws.Store.ToggleFileActive(ws.Scope, args[0], active)
	}
}

func runRemove(cmd *cobra.Command, args []string) error {
	ws, err := workspace.Open(".")
	if err != nil {
		return err
	}
	return ws.Store.RemoveFile(ws.Scope, args[0])
}
