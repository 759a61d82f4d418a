/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package registry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tsror/internal/mapfs"
	"bennypowers.dev/tsror/registry"
	"bennypowers.dev/tsror/token"
)

var scope = registry.Scope{Project: "design-system", Tenant: "acme"}

func TestCommitImportSetsTokenCount(t *testing.T) {
	store := registry.NewMemoryStore()

	file := &token.SourceFile{Name: "base.json", OriginalName: "base.json", IsActive: true, UploadedAt: time.Now()}
	tokens := []*token.Token{
		{Name: "color.primary", Value: "#3B82F6", Type: token.Color},
		{Name: "space.4", Value: "16px", Type: token.Spacing},
	}

	require.NoError(t, store.CommitImport(scope, file, tokens))
	assert.NotEmpty(t, file.ID)

	files, err := store.ListFiles(scope)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, 2, files[0].TokenCount)

	listed, err := store.ListTokens(scope)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, files[0].ID, listed[0].SourceFileID)
}

func TestReimportUpdatesNotDuplicates(t *testing.T) {
	store := registry.NewMemoryStore()

	first := &token.SourceFile{Name: "base.json", IsActive: true}
	require.NoError(t, store.CommitImport(scope, first, []*token.Token{
		{Name: "color.primary", Value: "#3B82F6", Type: token.Color},
	}))

	second := &token.SourceFile{Name: "base-v2.json", IsActive: true}
	require.NoError(t, store.CommitImport(scope, second, []*token.Token{
		{Name: "color.primary", Value: "#2563EB", Type: token.Color},
	}))

	tokens, err := store.ListTokens(scope)
	require.NoError(t, err)
	require.Len(t, tokens, 1, "re-import of the same name must update, not duplicate")
	assert.Equal(t, "#2563EB", tokens[0].Value)
}

func TestActiveTokensExcludesInactiveFiles(t *testing.T) {
	store := registry.NewMemoryStore()

	file := &token.SourceFile{Name: "base.json", IsActive: true}
	require.NoError(t, store.CommitImport(scope, file, []*token.Token{
		{Name: "color.primary", Value: "#3B82F6", Type: token.Color},
	}))
	require.NoError(t, store.CreateToken(scope, &token.Token{
		Name: "space.manual", Value: "8px", Type: token.Spacing,
	}))

	active, err := store.ActiveTokens(scope)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	require.NoError(t, store.ToggleFileActive(scope, file.ID, false))

	active, err = store.ActiveTokens(scope)
	require.NoError(t, err)
	require.Len(t, active, 1, "inactive file tokens leave the compilation set")
	assert.Equal(t, "space.manual", active[0].Name)

	// Toggling off does not delete rows.
	all, err := store.ListTokens(scope)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRemoveFileCascades(t *testing.T) {
	store := registry.NewMemoryStore()

	file := &token.SourceFile{Name: "base.json", IsActive: true}
	require.NoError(t, store.CommitImport(scope, file, []*token.Token{
		{Name: "color.primary", Value: "#3B82F6", Type: token.Color},
		{Name: "color.accent", Value: "#F59E0B", Type: token.Color},
	}))
	require.NoError(t, store.CreateToken(scope, &token.Token{
		Name: "space.manual", Value: "8px", Type: token.Spacing,
	}))

	require.NoError(t, store.RemoveFile(scope, file.ID))

	tokens, err := store.ListTokens(scope)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "space.manual", tokens[0].Name)
}

func TestScopeIsolation(t *testing.T) {
	store := registry.NewMemoryStore()
	other := registry.Scope{Project: "design-system", Tenant: "globex"}

	require.NoError(t, store.CreateToken(scope, &token.Token{Name: "color.a", Value: "#000000", Type: token.Color}))

	tokens, err := store.ListTokens(other)
	require.NoError(t, err)
	assert.Empty(t, tokens, "tenants must not see each other's tokens")
}

func TestCreateDuplicateFails(t *testing.T) {
	store := registry.NewMemoryStore()
	tok := &token.Token{Name: "color.a", Value: "#000000", Type: token.Color}

	require.NoError(t, store.CreateToken(scope, tok))
	err := store.CreateToken(scope, tok)
	assert.ErrorIs(t, err, registry.ErrDuplicateToken)
}

func TestFileStoreRoundTrip(t *testing.T) {
	fsys := mapfs.New()
	const path = "/project/.tsror/registry.json"

	store, err := registry.OpenFileStore(fsys, path)
	require.NoError(t, err)

	file := &token.SourceFile{Name: "base.json", IsActive: true}
	require.NoError(t, store.CommitImport(scope, file, []*token.Token{
		{Name: "color.primary", Value: "#3B82F6", Type: token.Color},
	}))

	reopened, err := registry.OpenFileStore(fsys, path)
	require.NoError(t, err)

	tokens, err := reopened.ListTokens(scope)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "color.primary", tokens[0].Name)

	files, err := reopened.ListFiles(scope)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.True(t, files[0].IsActive)
}
