/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package compile

import (
	"bennypowers.dev/tsror/token"
)

// Service is a caching front for compilation, for callers that compile
// repeatedly over a long-lived registry (servers, watch loops). Repeat
// requests over an unchanged input are served from the cache without
// re-rendering.
type Service struct {
	cache *Cache
}

// NewService creates a caching compile service.
func NewService(cacheSize int) (*Service, error) {
	cache, err := NewCache(cacheSize)
	if err != nil {
		return nil, err
	}
	return &Service{cache: cache}, nil
}

// Global compiles a global bundle, serving from cache when the input
// is unchanged.
func (s *Service) Global(tokens []*token.Token, prev *Bundle, opts Options) (*Bundle, error) {
	key := s.cache.Key(Global, "", tokens, prev, opts)
	if bundle, ok := s.cache.Get(key); ok {
		return bundle, nil
	}

	bundle, err := CompileGlobal(tokens, prev, opts)
	if err != nil {
		return nil, err
	}
	s.cache.Put(key, bundle)
	return bundle, nil
}

// Component compiles a component bundle, serving from cache when the
// input is unchanged. Unmatched references are recomputed per call;
// only the bundle itself is cached.
func (s *Service) Component(componentID string, tokens []*token.Token, refs []string, prev *Bundle, opts Options) (*Bundle, []string, error) {
	match := MatchReferences(refs, tokens)

	key := s.cache.Key(Component, componentID, match.Tokens, prev, opts)
	if bundle, ok := s.cache.Get(key); ok {
		return bundle, match.Unmatched, nil
	}

	bundle, err := compileBundle(Component, componentID, match.Tokens, prev, opts)
	if err != nil {
		return nil, match.Unmatched, err
	}
	s.cache.Put(key, bundle)
	return bundle, match.Unmatched, nil
}
