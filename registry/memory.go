/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package registry

import (
	"fmt"
	"sort"
	"sync"

	"bennypowers.dev/tsror/token"
)

// MemoryStore is an in-memory Store. Safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	scopes map[Scope]*scopeData
	nextID int
}

type scopeData struct {
	tokens map[string]*token.Token
	files  map[string]*token.SourceFile
}

// NewMemoryStore creates an empty in-memory registry.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scopes: make(map[Scope]*scopeData)}
}

func (s *MemoryStore) scope(scope Scope) *scopeData {
	data, ok := s.scopes[scope]
	if !ok {
		data = &scopeData{
			tokens: make(map[string]*token.Token),
			files:  make(map[string]*token.SourceFile),
		}
		s.scopes[scope] = data
	}
	return data
}

// ListTokens returns all tokens in the scope, sorted by name.
func (s *MemoryStore) ListTokens(scope Scope) ([]*token.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data := s.scopes[scope]
	if data == nil {
		return nil, nil
	}
	return sortedTokens(data.tokens, nil), nil
}

// ActiveTokens returns the compilation input set: tokens from active
// files plus manually created tokens.
func (s *MemoryStore) ActiveTokens(scope Scope) ([]*token.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data := s.scopes[scope]
	if data == nil {
		return nil, nil
	}
	return sortedTokens(data.tokens, func(t *token.Token) bool {
		if t.SourceFileID == "" {
			return true
		}
		file := data.files[t.SourceFileID]
		return file != nil && file.IsActive
	}), nil
}

// CreateToken adds a manually created token.
func (s *MemoryStore) CreateToken(scope Scope, t *token.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.scope(scope)
	if _, exists := data.tokens[t.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateToken, t.Name)
	}
	clone := *t
	data.tokens[t.Name] = &clone
	return nil
}

// UpdateToken replaces the token with the same name.
func (s *MemoryStore) UpdateToken(scope Scope, t *token.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.scope(scope)
	if _, exists := data.tokens[t.Name]; !exists {
		return fmt.Errorf("%w: %s", ErrTokenNotFound, t.Name)
	}
	clone := *t
	data.tokens[t.Name] = &clone
	return nil
}

// RemoveToken deletes a token by name.
func (s *MemoryStore) RemoveToken(scope Scope, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.scope(scope)
	if _, exists := data.tokens[name]; !exists {
		return fmt.Errorf("%w: %s", ErrTokenNotFound, name)
	}
	delete(data.tokens, name)
	return nil
}

// CommitImport atomically persists a file record and its token batch.
// Tokens are upserted by name and linked to the file; TokenCount is set
// to the batch size so it stays consistent with actual rows.
func (s *MemoryStore) CommitImport(scope Scope, file *token.SourceFile, tokens []*token.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.scope(scope)

	if file.ID == "" {
		s.nextID++
		file.ID = fmt.Sprintf("f%03d", s.nextID)
	}
	fileClone := *file
	fileClone.TokenCount = len(tokens)

	// Stage everything before touching the maps so a bad row cannot
	// leave a partial batch behind.
	staged := make(map[string]*token.Token, len(tokens))
	for _, t := range tokens {
		if t.Name == "" {
			return fmt.Errorf("%w: token with empty name in batch", ErrTokenNotFound)
		}
		clone := *t
		clone.SourceFileID = fileClone.ID
		staged[clone.Name] = &clone
	}

	data.files[fileClone.ID] = &fileClone
	for name, t := range staged {
		data.tokens[name] = t
	}
	return nil
}

// ListFiles returns all source files in the scope, sorted by name.
func (s *MemoryStore) ListFiles(scope Scope) ([]*token.SourceFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data := s.scopes[scope]
	if data == nil {
		return nil, nil
	}
	files := make([]*token.SourceFile, 0, len(data.files))
	for _, f := range data.files {
		clone := *f
		files = append(files, &clone)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// RenameFile changes a file's user-facing name.
func (s *MemoryStore) RenameFile(scope Scope, id, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.scope(scope)
	file, ok := data.files[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrFileNotFound, id)
	}
	file.Name = name
	return nil
}

// ToggleFileActive flips a file's participation in compilation.
func (s *MemoryStore) ToggleFileActive(scope Scope, id string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.scope(scope)
	file, ok := data.files[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrFileNotFound, id)
	}
	file.IsActive = active
	return nil
}

// RemoveFile deletes a file and its tokens.
func (s *MemoryStore) RemoveFile(scope Scope, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.scope(scope)
	if _, ok := data.files[id]; !ok {
		return fmt.Errorf("%w: %s", ErrFileNotFound, id)
	}
	delete(data.files, id)
	for name, t := range data.tokens {
		if t.SourceFileID == id {
			delete(data.tokens, name)
		}
	}
	return nil
}

func sortedTokens(tokens map[string]*token.Token, keep func(*token.Token) bool) []*token.Token {
	out := make([]*token.Token, 0, len(tokens))
	for _, t := range tokens {
		if keep != nil && !keep(t) {
			continue
		}
		clone := *t
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
