/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"testing"

	"bennypowers.dev/tsror/internal/mapfs"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		kind Kind
		pkg  string
		file string
	}{
		{"npm:@acme/tokens/tokens.json", KindNPM, "@acme/tokens", "tokens.json"},
		{"npm:tokens/dist/tokens.json", KindNPM, "tokens", "dist/tokens.json"},
		{"npm:tokens", KindNPM, "tokens", ""},
		{"jsr:@acme/tokens/tokens.json", KindJSR, "@acme/tokens", "tokens.json"},
		{"tokens/figma.json", KindLocal, "", "tokens/figma.json"},
		{"/abs/path/tokens.json", KindLocal, "", "/abs/path/tokens.json"},
	}

	for _, tt := range tests {
		got := Parse(tt.spec)
		if got.Kind != tt.kind || got.Package != tt.pkg || got.File != tt.file {
			t.Errorf("Parse(%q) = %+v, want kind=%v pkg=%q file=%q",
				tt.spec, got, tt.kind, tt.pkg, tt.file)
		}
		if got.Raw != tt.spec {
			t.Errorf("Parse(%q).Raw = %q", tt.spec, got.Raw)
		}
	}
}

func TestIsPackageSpecifier(t *testing.T) {
	if !IsPackageSpecifier("npm:@acme/tokens/tokens.json") {
		t.Error("npm specifier not recognized")
	}
	if IsPackageSpecifier("tokens.json") {
		t.Error("local path recognized as package specifier")
	}
}

func TestNodeModulesResolver(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/node_modules/@acme/tokens/tokens.json", `{}`, 0644)

	resolver, err := NewNodeModulesResolver(mfs, "/project/src/deep")
	if err != nil {
		t.Fatalf("NewNodeModulesResolver() error = %v", err)
	}

	// Walks up from /project/src/deep to /project.
	resolved, err := resolver.Resolve("npm:@acme/tokens/tokens.json")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if resolved.Path != "/project/node_modules/@acme/tokens/tokens.json" {
		t.Errorf("Path = %q", resolved.Path)
	}
	if resolved.Kind != KindNPM {
		t.Errorf("Kind = %v, want KindNPM", resolved.Kind)
	}
}

func TestNodeModulesResolver_JSRCompat(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/node_modules/@jsr/acme__tokens/tokens.json", `{}`, 0644)

	resolver, err := NewNodeModulesResolver(mfs, "/project")
	if err != nil {
		t.Fatalf("NewNodeModulesResolver() error = %v", err)
	}

	resolved, err := resolver.Resolve("jsr:@acme/tokens/tokens.json")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if resolved.Path != "/project/node_modules/@jsr/acme__tokens/tokens.json" {
		t.Errorf("Path = %q", resolved.Path)
	}
}

func TestNodeModulesResolver_NotFound(t *testing.T) {
	resolver, err := NewNodeModulesResolver(mapfs.New(), "/project")
	if err != nil {
		t.Fatalf("NewNodeModulesResolver() error = %v", err)
	}
	if _, err := resolver.Resolve("npm:@acme/tokens/tokens.json"); err == nil {
		t.Fatal("Resolve() = nil error for missing package")
	}
}

func TestNodeModulesResolver_PathTraversal(t *testing.T) {
	resolver, err := NewNodeModulesResolver(mapfs.New(), "/project")
	if err != nil {
		t.Fatalf("NewNodeModulesResolver() error = %v", err)
	}
	if _, err := resolver.Resolve("npm:@acme/tokens/../../../etc/passwd"); err == nil {
		t.Fatal("Resolve() = nil error for traversal specifier")
	}
}

func TestNodeModulesResolver_RequiresAbsoluteRoot(t *testing.T) {
	if _, err := NewNodeModulesResolver(mapfs.New(), "relative/dir"); err == nil {
		t.Fatal("NewNodeModulesResolver() accepted a relative root")
	}
}

func TestDefaultResolverChain(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/tokens.json", `{}`, 0644)

	resolver, err := NewDefaultResolver(mfs, "/project")
	if err != nil {
		t.Fatalf("NewDefaultResolver() error = %v", err)
	}

	resolved, err := resolver.Resolve("tokens.json")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if resolved.Kind != KindLocal || resolved.Path != "tokens.json" {
		t.Errorf("resolved = %+v", resolved)
	}
}

func TestCDNURL(t *testing.T) {
	tests := []struct {
		spec string
		url  string
		ok   bool
	}{
		{"npm:@acme/tokens/tokens.json", "https://unpkg.com/@acme/tokens/tokens.json", true},
		{"jsr:@acme/tokens/tokens.json", "https://esm.sh/jsr/@acme/tokens/tokens.json", true},
		{"npm:tokens", "", false},
		{"tokens.json", "", false},
	}

	for _, tt := range tests {
		url, ok := CDNURL(tt.spec)
		if ok != tt.ok || url != tt.url {
			t.Errorf("CDNURL(%q) = (%q, %v), want (%q, %v)", tt.spec, url, ok, tt.url, tt.ok)
		}
	}
}
