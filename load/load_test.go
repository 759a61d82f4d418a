/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load

import (
	"context"
	"errors"
	"testing"

	"bennypowers.dev/tsror/internal/mapfs"
)

type fakeFetcher struct {
	content []byte
	err     error
	urls    []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	f.urls = append(f.urls, url)
	if f.err != nil {
		return nil, f.err
	}
	return f.content, nil
}

func TestLoad_LocalFile(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/tokens.json", `{"color-primary": "#3B82F6"}`, 0644)

	result, err := Load(context.Background(), "tokens.json", Options{Root: "/project", FS: mfs})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(result.Tokens) != 1 || result.Tokens[0].Name != "color-primary" {
		t.Errorf("tokens = %v", result.Tokens)
	}
}

func TestLoad_InstalledPackage(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/node_modules/@acme/tokens/tokens.json",
		`{"space-4": "16px"}`, 0644)

	result, err := Load(context.Background(), "npm:@acme/tokens/tokens.json",
		Options{Root: "/project", FS: mfs})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(result.Tokens) != 1 {
		t.Fatalf("tokens = %v", result.Tokens)
	}
}

func TestContent_CDNFallback(t *testing.T) {
	fetcher := &fakeFetcher{content: []byte(`{"color-primary": "#3B82F6"}`)}

	content, err := Content(context.Background(), "npm:@acme/tokens/tokens.json",
		Options{Root: "/project", FS: mapfs.New(), Fetcher: fetcher})
	if err != nil {
		t.Fatalf("Content() error = %v", err)
	}
	if string(content) != `{"color-primary": "#3B82F6"}` {
		t.Errorf("content = %q", content)
	}
	if len(fetcher.urls) != 1 || fetcher.urls[0] != "https://unpkg.com/@acme/tokens/tokens.json" {
		t.Errorf("fetched urls = %v", fetcher.urls)
	}
}

func TestContent_NoFetcherNoFallback(t *testing.T) {
	_, err := Content(context.Background(), "npm:@acme/tokens/tokens.json",
		Options{Root: "/project", FS: mapfs.New()})
	if err == nil {
		t.Fatal("Content() = nil error without fetcher")
	}
}

func TestContent_LocalPathsNeverHitNetwork(t *testing.T) {
	fetcher := &fakeFetcher{content: []byte(`{}`)}

	_, err := Content(context.Background(), "missing.json",
		Options{Root: "/project", FS: mapfs.New(), Fetcher: fetcher})
	if err == nil {
		t.Fatal("Content() = nil error for missing local file")
	}
	if len(fetcher.urls) != 0 {
		t.Errorf("local miss reached the network: %v", fetcher.urls)
	}
}

func TestContent_FetchFailureWrapsBothErrors(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("boom")}

	_, err := Content(context.Background(), "npm:@acme/tokens/tokens.json",
		Options{Root: "/project", FS: mapfs.New(), Fetcher: fetcher})
	if !errors.Is(err, ErrLocalResolution) || !errors.Is(err, ErrNetworkFallback) {
		t.Fatalf("error = %v, want both sentinel errors wrapped", err)
	}
}
