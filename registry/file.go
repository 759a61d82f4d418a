/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package registry

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"

	"bennypowers.dev/tsror/fs"
	"bennypowers.dev/tsror/token"
)

// FileStore is a Store persisted as a JSON snapshot on a filesystem.
// It backs the CLI so imports survive between invocations. Every
// mutation rewrites the snapshot; reads serve from memory.
type FileStore struct {
	mem  *MemoryStore
	fsys fs.FileSystem
	path string
}

// snapshot is the on-disk shape of the registry.
type snapshot struct {
	NextID int             `json:"nextId"`
	Scopes []scopeSnapshot `json:"scopes"`
}

type scopeSnapshot struct {
	Scope  Scope               `json:"scope"`
	Tokens []*token.Token      `json:"tokens"`
	Files  []*token.SourceFile `json:"files"`
}

// OpenFileStore loads (or initializes) a JSON-backed registry at path.
func OpenFileStore(fsys fs.FileSystem, path string) (*FileStore, error) {
	s := &FileStore{mem: NewMemoryStore(), fsys: fsys, path: path}

	if !fsys.Exists(path) {
		return s, nil
	}
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry %s: %w", path, err)
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse registry %s: %w", path, err)
	}

	s.mem.nextID = snap.NextID
	for _, sc := range snap.Scopes {
		data := s.mem.scope(sc.Scope)
		for _, t := range sc.Tokens {
			data.tokens[t.Name] = t
		}
		for _, f := range sc.Files {
			data.files[f.ID] = f
		}
	}
	return s, nil
}

// save rewrites the snapshot. Scopes and rows are sorted so snapshots
// diff cleanly under version control.
func (s *FileStore) save() error {
	s.mem.mu.RLock()
	snap := snapshot{NextID: s.mem.nextID}
	for scope, data := range s.mem.scopes {
		sc := scopeSnapshot{Scope: scope}
		sc.Tokens = sortedTokens(data.tokens, nil)
		for _, f := range data.files {
			clone := *f
			sc.Files = append(sc.Files, &clone)
		}
		sort.Slice(sc.Files, func(i, j int) bool { return sc.Files[i].ID < sc.Files[j].ID })
		snap.Scopes = append(snap.Scopes, sc)
	}
	sort.Slice(snap.Scopes, func(i, j int) bool {
		a, b := snap.Scopes[i].Scope, snap.Scopes[j].Scope
		if a.Tenant != b.Tenant {
			return a.Tenant < b.Tenant
		}
		return a.Project < b.Project
	})
	s.mem.mu.RUnlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fsys.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return s.fsys.WriteFile(s.path, data, 0o644)
}

// ListTokens returns all tokens in the scope, sorted by name.
func (s *FileStore) ListTokens(scope Scope) ([]*token.Token, error) {
	return s.mem.ListTokens(scope)
}

// ActiveTokens returns the compilation input set.
func (s *FileStore) ActiveTokens(scope Scope) ([]*token.Token, error) {
	return s.mem.ActiveTokens(scope)
}

// CreateToken adds a manually created token and persists.
func (s *FileStore) CreateToken(scope Scope, t *token.Token) error {
	if err := s.mem.CreateToken(scope, t); err != nil {
		return err
	}
	return s.save()
}

// UpdateToken replaces a token and persists.
func (s *FileStore) UpdateToken(scope Scope, t *token.Token) error {
	if err := s.mem.UpdateToken(scope, t); err != nil {
		return err
	}
	return s.save()
}

// RemoveToken deletes a token and persists.
func (s *FileStore) RemoveToken(scope Scope, name string) error {
	if err := s.mem.RemoveToken(scope, name); err != nil {
		return err
	}
	return s.save()
}

// CommitImport persists a parsed batch atomically.
func (s *FileStore) CommitImport(scope Scope, file *token.SourceFile, tokens []*token.Token) error {
	if err := s.mem.CommitImport(scope, file, tokens); err != nil {
		return err
	}
	return s.save()
}

// ListFiles returns all source files in the scope, sorted by name.
func (s *FileStore) ListFiles(scope Scope) ([]*token.SourceFile, error) {
	return s.mem.ListFiles(scope)
}

// RenameFile renames a file and persists.
func (s *FileStore) RenameFile(scope Scope, id, name string) error {
	if err := s.mem.RenameFile(scope, id, name); err != nil {
		return err
	}
	return s.save()
}

// ToggleFileActive flips a file's active flag and persists.
func (s *FileStore) ToggleFileActive(scope Scope, id string, active bool) error {
	if err := s.mem.ToggleFileActive(scope, id, active); err != nil {
		return err
	}
	return s.save()
}

// RemoveFile deletes a file, cascades to its tokens, and persists.
func (s *FileStore) RemoveFile(scope Scope, id string) error {
	if err := s.mem.RemoveFile(scope, id); err != nil {
		return err
	}
	return s.save()
}
