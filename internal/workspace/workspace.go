/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package workspace wires the pieces every CLI command needs: the
// filesystem, the loaded config, the registry store and the selected
// scope. Flag values (via viper) override config file values.
package workspace

import (
	"fmt"

	"github.com/spf13/viper"

	"bennypowers.dev/tsror/config"
	tsrorfs "bennypowers.dev/tsror/fs"
	"bennypowers.dev/tsror/registry"
)

// Workspace bundles the shared command dependencies.
type Workspace struct {
	FS     tsrorfs.FileSystem
	Config *config.Config
	Store  registry.Store
	Scope  registry.Scope
}

// Open loads config from rootDir and opens the registry store.
func Open(rootDir string) (*Workspace, error) {
	filesystem := tsrorfs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, rootDir)

	if v := viper.GetString("prefix"); v != "" {
		cfg.Prefix = v
	}
	if v := viper.GetString("project"); v != "" {
		cfg.Project = v
	}
	if v := viper.GetString("tenant"); v != "" {
		cfg.Tenant = v
	}
	if v := viper.GetString("registry"); v != "" {
		cfg.Registry = v
	}

	store, err := registry.OpenFileStore(filesystem, cfg.Registry)
	if err != nil {
		return nil, fmt.Errorf("opening registry %s: %w", cfg.Registry, err)
	}

	return &Workspace{
		FS:     filesystem,
		Config: cfg,
		Store:  store,
		Scope:  registry.Scope{Project: cfg.Project, Tenant: cfg.Tenant},
	}, nil
}
