/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"fmt"
	"path/filepath"
	"strings"

	tsrorfs "bennypowers.dev/tsror/fs"
)

// NodeModulesResolver resolves npm: and jsr: specifiers to installed
// package files. It walks up from the root directory looking for
// node_modules.
//
// JSR packages installed through the npm compatibility layer
// (npx jsr add @scope/pkg) live under the @jsr scope:
// jsr:@scope/pkg maps to node_modules/@jsr/scope__pkg.
type NodeModulesResolver struct {
	fs      tsrorfs.FileSystem
	rootDir string
}

// NewNodeModulesResolver creates a resolver for npm: and jsr: package
// specifiers. The rootDir must be absolute so the walk-up works on
// in-memory filesystems that have no working directory.
func NewNodeModulesResolver(filesystem tsrorfs.FileSystem, rootDir string) (*NodeModulesResolver, error) {
	if !filepath.IsAbs(rootDir) {
		return nil, fmt.Errorf("rootDir must be an absolute path, got: %s", rootDir)
	}
	return &NodeModulesResolver{fs: filesystem, rootDir: rootDir}, nil
}

// Resolve resolves the specifier to an installed file path, walking up
// the directory tree one node_modules at a time.
func (r *NodeModulesResolver) Resolve(spec string) (*ResolvedFile, error) {
	parsed := Parse(spec)
	if parsed.Kind == KindLocal {
		return nil, fmt.Errorf("not a package specifier: %s", spec)
	}

	pkgDir := parsed.Package
	if parsed.Kind == KindJSR {
		pkgDir = filepath.Join("@jsr", jsrCompatPackage(parsed.Package))
	}

	dir := r.rootDir
	for {
		base := filepath.Join(dir, "node_modules")
		candidate := filepath.Clean(filepath.Join(base, pkgDir, parsed.File))

		// Relative segments in the specifier must not escape
		// node_modules.
		if !strings.HasPrefix(candidate, base+string(filepath.Separator)) {
			return nil, fmt.Errorf("path traversal detected in specifier: %s", spec)
		}

		if r.fs.Exists(candidate) {
			return &ResolvedFile{Specifier: spec, Path: candidate, Kind: parsed.Kind}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, fmt.Errorf("package not found: %s (looked in node_modules starting from %s)", parsed.Package, r.rootDir)
}

// CanResolve reports true for npm: and jsr: specifiers.
func (r *NodeModulesResolver) CanResolve(spec string) bool {
	return IsPackageSpecifier(spec)
}

// jsrCompatPackage converts a JSR package name to its npm compatibility
// layer directory: @scope/pkg becomes scope__pkg.
func jsrCompatPackage(pkg string) string {
	if scoped, ok := strings.CutPrefix(pkg, "@"); ok {
		return strings.Replace(scoped, "/", "__", 1)
	}
	return pkg
}

// LocalResolver handles local filesystem paths.
type LocalResolver struct{}

// NewLocalResolver creates a resolver for local filesystem paths.
func NewLocalResolver() *LocalResolver {
	return &LocalResolver{}
}

// Resolve returns the path unchanged for local files.
func (r *LocalResolver) Resolve(spec string) (*ResolvedFile, error) {
	return &ResolvedFile{Specifier: spec, Path: spec, Kind: KindLocal}, nil
}

// CanResolve reports true for paths that are not package specifiers.
func (r *LocalResolver) CanResolve(spec string) bool {
	return !IsPackageSpecifier(spec)
}

// NewDefaultResolver creates the standard chain: installed packages
// first, then local paths.
func NewDefaultResolver(filesystem tsrorfs.FileSystem, rootDir string) (Resolver, error) {
	modules, err := NewNodeModulesResolver(filesystem, rootDir)
	if err != nil {
		return nil, err
	}
	return NewChainResolver(modules, NewLocalResolver()), nil
}
