/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for the token pipeline.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Config represents the project token configuration.
type Config struct {
	// Prefix is the global CSS variable prefix applied at compile time.
	Prefix string `yaml:"prefix" json:"prefix"`

	// Project and Tenant select the default registry scope.
	Project string `yaml:"project" json:"project"`
	Tenant  string `yaml:"tenant" json:"tenant"`

	// Registry is the path of the persisted registry file.
	Registry string `yaml:"registry" json:"registry"`

	// OutDir is where compiled bundles are written.
	OutDir string `yaml:"outDir" json:"outDir"`

	// ModeAttribute is the HTML attribute non-default mode blocks
	// select on.
	ModeAttribute string `yaml:"modeAttribute" json:"modeAttribute"`

	// Files specifies token files to import (paths or specs).
	Files []FileSpec `yaml:"files" json:"files"`
}

// FileSpec represents a token file specification.
// It can be specified as a simple string path or as an object with overrides.
type FileSpec struct {
	// Path is the file path (supports globs).
	Path string `yaml:"path" json:"path"`

	// Prefix namespaces this file's token names on import, so two
	// files with colliding names can coexist in one registry.
	Prefix string `yaml:"prefix" json:"prefix"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Project:       "default",
		Tenant:        "default",
		Registry:      ".tsror/registry.json",
		OutDir:        "dist/tokens",
		ModeAttribute: "data-theme",
	}
}

// PrefixForFile returns the import name prefix configured for a path,
// if any.
func (c *Config) PrefixForFile(path string) string {
	for _, spec := range c.Files {
		if spec.Path == path {
			return spec.Prefix
		}
	}
	return ""
}

// FilePaths returns the list of file paths from all FileSpecs.
func (c *Config) FilePaths() []string {
	paths := make([]string, 0, len(c.Files))
	for _, spec := range c.Files {
		paths = append(paths, spec.Path)
	}
	return paths
}
