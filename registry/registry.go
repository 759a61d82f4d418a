/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package registry provides the versioned token registry contract and
// reference implementations. Tokens are scoped by (project, tenant) and
// keyed by name; re-import of an existing name updates rather than
// duplicates.
package registry

import (
	"errors"

	"bennypowers.dev/tsror/token"
)

// Sentinel errors for registry operations.
var (
	// ErrTokenNotFound indicates a lookup by name found no token.
	ErrTokenNotFound = errors.New("token not found")

	// ErrFileNotFound indicates a lookup by id found no source file.
	ErrFileNotFound = errors.New("source file not found")

	// ErrDuplicateToken indicates a create collided with an existing name.
	ErrDuplicateToken = errors.New("token already exists")
)

// Scope identifies a tenant's project. All operations are strongly
// consistent within one scope.
type Scope struct {
	Project string `json:"project"`
	Tenant  string `json:"tenant"`
}

// Store is the registry contract consumed by the pipeline.
type Store interface {
	// ListTokens returns all tokens in the scope, sorted by name.
	ListTokens(scope Scope) ([]*token.Token, error)

	// ActiveTokens returns tokens whose owning source file is active,
	// plus manually created tokens, sorted by name. This is the
	// compilation input set.
	ActiveTokens(scope Scope) ([]*token.Token, error)

	// CreateToken adds a manually created token.
	CreateToken(scope Scope, t *token.Token) error

	// UpdateToken replaces the token with the same name.
	UpdateToken(scope Scope, t *token.Token) error

	// RemoveToken deletes a token by name.
	RemoveToken(scope Scope, name string) error

	// CommitImport atomically persists a parsed batch: the source file
	// record (with TokenCount set) and its tokens. Existing tokens with
	// the same names are updated, not duplicated. Either everything is
	// persisted or nothing is.
	CommitImport(scope Scope, file *token.SourceFile, tokens []*token.Token) error

	// ListFiles returns all source files in the scope, sorted by name.
	ListFiles(scope Scope) ([]*token.SourceFile, error)

	// RenameFile changes a file's user-facing name.
	RenameFile(scope Scope, id, name string) error

	// ToggleFileActive flips whether a file's tokens participate in
	// compilation. Inactive files keep their token rows.
	ToggleFileActive(scope Scope, id string, active bool) error

	// RemoveFile deletes a file and cascades deletion to its tokens.
	RemoveFile(scope Scope, id string) error
}
