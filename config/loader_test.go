/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config_test

import (
	"slices"
	"testing"

	"bennypowers.dev/tsror/config"
	"bennypowers.dev/tsror/internal/mapfs"
)

func TestLoad_YAML(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/tsror.yaml", `
prefix: ds
project: acme
files:
  - tokens/core.json
  - path: tokens/brand.json
    prefix: brand
`, 0644)

	cfg, err := config.Load(mfs, "/project")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() = nil, want config")
	}

	if cfg.Prefix != "ds" {
		t.Errorf("Prefix = %q, want %q", cfg.Prefix, "ds")
	}
	if cfg.Project != "acme" {
		t.Errorf("Project = %q, want %q", cfg.Project, "acme")
	}
	// Unset fields keep their defaults.
	if cfg.Tenant != "default" {
		t.Errorf("Tenant = %q, want default", cfg.Tenant)
	}
	if cfg.Registry != ".tsror/registry.json" {
		t.Errorf("Registry = %q, want default", cfg.Registry)
	}

	if len(cfg.Files) != 2 {
		t.Fatalf("Files = %v, want 2 entries", cfg.Files)
	}
	if cfg.Files[0].Path != "tokens/core.json" || cfg.Files[0].Prefix != "" {
		t.Errorf("Files[0] = %+v, want bare path", cfg.Files[0])
	}
	if cfg.Files[1].Path != "tokens/brand.json" || cfg.Files[1].Prefix != "brand" {
		t.Errorf("Files[1] = %+v, want path with prefix", cfg.Files[1])
	}
}

func TestLoad_JSON(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/tsror.json", `{
  "prefix": "ds",
  "files": ["tokens/core.json", {"path": "tokens/brand.json", "prefix": "brand"}]
}`, 0644)

	cfg, err := config.Load(mfs, "/project")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() = nil, want config")
	}
	if cfg.Files[1].Prefix != "brand" {
		t.Errorf("Files[1] = %+v, want prefix brand", cfg.Files[1])
	}
}

func TestLoad_NotFound(t *testing.T) {
	cfg, err := config.Load(mapfs.New(), "/project")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != nil {
		t.Errorf("Load() = %+v, want nil", cfg)
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg := config.LoadOrDefault(mapfs.New(), "/project")
	if cfg.Project != "default" || cfg.OutDir != "dist/tokens" {
		t.Errorf("LoadOrDefault() = %+v, want defaults", cfg)
	}
}

func TestExpandFiles(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/tokens/core.json", `{}`, 0644)
	mfs.AddFile("/project/tokens/brand/light.json", `{}`, 0644)
	mfs.AddFile("/project/tokens/brand/dark.json", `{}`, 0644)
	mfs.AddFile("/project/tokens/readme.md", ``, 0644)

	cfg := &config.Config{Files: []config.FileSpec{
		{Path: "tokens/core.json"},
		{Path: "tokens/brand/*.json", Prefix: "brand"},
	}}

	resolved, err := cfg.ExpandFiles(mfs, "/project")
	if err != nil {
		t.Fatalf("ExpandFiles() error = %v", err)
	}

	var paths []string
	for _, rf := range resolved {
		paths = append(paths, rf.Path)
	}
	want := []string{
		"/project/tokens/core.json",
		"/project/tokens/brand/dark.json",
		"/project/tokens/brand/light.json",
	}
	slices.Sort(paths)
	slices.Sort(want)
	if !slices.Equal(paths, want) {
		t.Errorf("ExpandFiles() paths = %v, want %v", paths, want)
	}

	// Glob matches inherit their spec's prefix.
	for _, rf := range resolved {
		wantPrefix := ""
		if rf.Path != "/project/tokens/core.json" {
			wantPrefix = "brand"
		}
		if rf.Prefix != wantPrefix {
			t.Errorf("prefix for %s = %q, want %q", rf.Path, rf.Prefix, wantPrefix)
		}
	}
}

func TestExpandGlobs_Doublestar(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/app/src/card/card.css", ``, 0644)
	mfs.AddFile("/app/src/card/card.js", ``, 0644)
	mfs.AddFile("/app/src/card/notes.txt", ``, 0644)

	got, err := config.ExpandGlobs(mfs, "/app", []string{"src/**/*.{css,js}"})
	if err != nil {
		t.Fatalf("ExpandGlobs() error = %v", err)
	}
	slices.Sort(got)

	want := []string{"/app/src/card/card.css", "/app/src/card/card.js"}
	if !slices.Equal(got, want) {
		t.Errorf("ExpandGlobs() = %v, want %v", got, want)
	}
}
