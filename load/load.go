/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load resolves token document specifiers to content and parsed
// results: local files, installed npm/jsr packages, and an opt-in CDN
// fallback for packages that are not installed.
package load

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"bennypowers.dev/tsror/fs"
	"bennypowers.dev/tsror/parser"
	"bennypowers.dev/tsror/specifier"
)

var (
	// ErrLocalResolution indicates that local filesystem resolution failed.
	ErrLocalResolution = errors.New("local resolution failed")

	// ErrNetworkFallback indicates that the CDN network fallback also failed.
	ErrNetworkFallback = errors.New("network fallback failed")
)

// Options configures how token documents are loaded.
type Options struct {
	// Root is the directory for local specifier resolution. Defaults
	// to the current directory.
	Root string

	// FS is the filesystem to use. Defaults to the OS filesystem.
	FS fs.FileSystem

	// Fetcher enables opt-in network fallback for package specifiers.
	// When set, an npm: or jsr: specifier that fails local resolution
	// is fetched from a CDN. Nil means no network access.
	Fetcher Fetcher

	// FetchTimeout bounds a network fetch. Defaults to DefaultTimeout.
	FetchTimeout time.Duration
}

// Load resolves a specifier, reads the document, and runs it through
// format detection and parsing.
//
// The specifier can be:
//   - a local file path: "tokens.json" or "/path/to/tokens.json"
//   - an npm package file: "npm:@scope/pkg/tokens.json"
//   - a jsr package file: "jsr:@scope/pkg/tokens.json"
func Load(ctx context.Context, spec string, opts Options) (*parser.Result, error) {
	content, err := Content(ctx, spec, opts)
	if err != nil {
		return nil, err
	}
	return parser.DetectAndParse(content)
}

// Content resolves a specifier to raw document bytes. Local resolution
// runs first; package specifiers fall back to a CDN when a Fetcher is
// configured.
func Content(ctx context.Context, spec string, opts Options) ([]byte, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root path: %w", err)
		}
		root = absRoot
	}

	fetchTimeout := opts.FetchTimeout
	if fetchTimeout == 0 {
		fetchTimeout = DefaultTimeout
	}

	res, err := specifier.NewDefaultResolver(filesystem, root)
	if err != nil {
		return nil, err
	}

	resolved, err := res.Resolve(spec)
	if err != nil {
		return fetchFromCDN(ctx, spec, opts.Fetcher, fetchTimeout, err)
	}

	path := resolved.Path
	if resolved.Kind == specifier.KindLocal && !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	content, readErr := filesystem.ReadFile(path)
	if readErr != nil {
		localErr := fmt.Errorf("failed to read %s: %w", path, readErr)
		return fetchFromCDN(ctx, spec, opts.Fetcher, fetchTimeout, localErr)
	}

	return content, nil
}

// fetchFromCDN attempts the network fallback. The original localErr is
// returned unchanged when no fetcher is configured or the specifier has
// no CDN URL.
func fetchFromCDN(ctx context.Context, spec string, fetcher Fetcher, fetchTimeout time.Duration, localErr error) ([]byte, error) {
	if fetcher == nil {
		return nil, localErr
	}

	cdnURL, ok := specifier.CDNURL(spec)
	if !ok {
		return nil, localErr
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	content, fetchErr := fetcher.Fetch(ctx, cdnURL)
	if fetchErr != nil {
		return nil, fmt.Errorf("%w (%w), %w: %w", ErrLocalResolution, localErr, ErrNetworkFallback, fetchErr)
	}

	return content, nil
}
