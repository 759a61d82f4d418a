/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tsror.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	compilecmd "bennypowers.dev/tsror/cmd/compile"
	"bennypowers.dev/tsror/cmd/component"
	exportcmd "bennypowers.dev/tsror/cmd/export"
	"bennypowers.dev/tsror/cmd/files"
	"bennypowers.dev/tsror/cmd/graph"
	importcmd "bennypowers.dev/tsror/cmd/import"
	"bennypowers.dev/tsror/cmd/list"
	"bennypowers.dev/tsror/cmd/search"
	"bennypowers.dev/tsror/cmd/tokens"
	"bennypowers.dev/tsror/cmd/validate"
	"bennypowers.dev/tsror/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "tsror",
	Short: "Ingest, classify and compile design tokens",
	Long: `tsror ingests design token files (Figma variable exports, flat maps,
nested DTCG-style documents), classifies and normalizes them into a
versioned registry, and compiles global and per-component CSS/JSON
bundles.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("prefix", "p", "", "CSS variable prefix")
	rootCmd.PersistentFlags().String("project", "", "Registry project scope")
	rootCmd.PersistentFlags().String("tenant", "", "Registry tenant scope")
	rootCmd.PersistentFlags().String("registry", "", "Registry file path")

	viper.SetEnvPrefix("TSROR")
	viper.AutomaticEnv()
	for _, flag := range []string{"prefix", "project", "tenant", "registry"} {
		_ = viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag))
	}

	rootCmd.AddCommand(importcmd.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(compilecmd.Cmd)
	rootCmd.AddCommand(component.Cmd)
	rootCmd.AddCommand(exportcmd.Cmd)
	rootCmd.AddCommand(graph.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(search.Cmd)
	rootCmd.AddCommand(files.Cmd)
	rootCmd.AddCommand(tokens.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
