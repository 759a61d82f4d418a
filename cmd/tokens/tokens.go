/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tokens provides manual token management commands for tsror.
package tokens

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/tsror/classify"
	"bennypowers.dev/tsror/internal/workspace"
	"bennypowers.dev/tsror/normalize"
	"bennypowers.dev/tsror/token"
)

// Cmd is the tokens cobra command.
var Cmd = &cobra.Command{
	Use:   "tokens",
	Short: "Manage individual tokens",
	Long: `Manage individual tokens.

Manually created tokens belong to no source file and are always part of
the active set. Names are normalized the same way imported names are,
and the type is classified from the name and value unless --type is
given.`,
}

var addCmd = &cobra.Command{
	Use:   "add <name> <value>",
	Short: "Create a token",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

var editCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Edit a token's value, type or description",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

var removeCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a token",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func init() {
	addCmd.Flags().String("type", "", "Token type (classified from name and value when omitted)")
	addCmd.Flags().String("description", "", "Token description")

	editCmd.Flags().String("value", "", "New value")
	editCmd.Flags().String("type", "", "New type")
	editCmd.Flags().String("description", "", "New description")

	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(editCmd)
	Cmd.AddCommand(removeCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	typeFlag, _ := cmd.Flags().GetString("type")
	description, _ := cmd.Flags().GetString("description")

	name := normalize.Name(args[0])
	value := args[1]

	category := token.Category(typeFlag)
	if typeFlag == "" {
		category = classify.Resolve(nil, name, value)
	} else if !category.Valid() {
		return fmt.Errorf("invalid token type %q", typeFlag)
	}

	ws, err := workspace.Open(".")
	if err != nil {
		return err
	}

	t := &token.Token{
		Name:        name,
		Value:       value,
		Type:        category,
		Description: description,
	}
	if err := ws.Store.CreateToken(ws.Scope, t); err != nil {
		return err
	}

	fmt.Printf("created %s (%s)\n", t.Name, t.Type)
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	value, _ := cmd.Flags().GetString("value")
	typeFlag, _ := cmd.Flags().GetString("type")
	description, _ := cmd.Flags().GetString("description")

	if value == "" && typeFlag == "" && description == "" {
		return fmt.Errorf("nothing to change: pass --value, --type or --description")
	}

	ws, err := workspace.Open(".")
	if err != nil {
		return err
	}

	name := normalize.Name(args[0])
	tokens, err := ws.Store.ListTokens(ws.Scope)
	if err != nil {
		return err
	}

	var existing *token.Token
	for _, t := range tokens {
		if t.Name == name {
			existing = t
			break
		}
	}
	if existing == nil {
		return fmt.Errorf("token %q not found", name)
	}

	if value != "" {
		existing.Value = value
	}
	if typeFlag != "" {
		category := token.Category(typeFlag)
		if !category.Valid() {
			return fmt.Errorf("invalid token type %q", typeFlag)
		}
		existing.Type = category
	}
	if description != "" {
		existing.Description = description
	}

	return ws.Store.UpdateToken(ws.Scope, existing)
}

func runRemove(cmd *cobra.Command, args []string) error {
	ws, err := workspace.Open(".")
	if err != nil {
		return err
	}
	return ws.Store.RemoveToken(ws.Scope, normalize.Name(args[0]))
}
