/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	tsrorfs "bennypowers.dev/tsror/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "tsror"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/tsror.{yaml,yml,json} from rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem tsrorfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := Default()
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		case ".json":
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		}

		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns config or defaults if not found.
func LoadOrDefault(filesystem tsrorfs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// ResolvedFile is a concrete token file produced by glob expansion,
// carrying the overrides of the FileSpec it expanded from.
type ResolvedFile struct {
	Path   string
	Prefix string
}

// ExpandFiles expands glob patterns in Files and returns concrete
// paths with their per-spec overrides attached.
func (c *Config) ExpandFiles(filesystem tsrorfs.FileSystem, rootDir string) ([]ResolvedFile, error) {
	var result []ResolvedFile

	for _, spec := range c.Files {
		expanded, err := ExpandGlobs(filesystem, rootDir, []string{spec.Path})
		if err != nil {
			return nil, err
		}
		for _, path := range expanded {
			result = append(result, ResolvedFile{Path: path, Prefix: spec.Prefix})
		}
	}

	return result, nil
}

// ExpandGlobs expands glob patterns against the filesystem and returns
// absolute paths. Non-glob patterns pass through unchanged.
func ExpandGlobs(filesystem tsrorfs.FileSystem, rootDir string, patterns []string) ([]string, error) {
	var result []string

	for _, pattern := range patterns {
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(rootDir, pattern)
		}

		if !containsGlob(pattern) {
			result = append(result, pattern)
			continue
		}

		matches, err := expandGlob(filesystem, pattern)
		if err != nil {
			return nil, err
		}
		result = append(result, matches...)
	}

	return result, nil
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob expands a glob pattern against the filesystem.
func expandGlob(filesystem tsrorfs.FileSystem, pattern string) ([]string, error) {
	// Find the base directory (non-glob prefix)
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	// Get the relative pattern from baseDir
	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	var matches []string

	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't read
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		// Get path relative to baseDir for matching
		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))

		// Match against the pattern (doublestar handles both simple and ** globs)
		if matchDoublestar(relPattern, relPath) {
			matches = append(matches, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return matches, nil
}

// matchDoublestar provides ** glob matching using the doublestar library.
// Supports complex patterns like packages/**/tokens/**/data.json
func matchDoublestar(pattern, path string) bool {
	matched, _ := doublestar.Match(pattern, path)
	return matched
}
