/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package compile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tsror/compile"
	"bennypowers.dev/tsror/internal/mapfs"
)

func TestManifestRoundTrip(t *testing.T) {
	mfs := mapfs.New()

	manifest, err := compile.LoadManifest(mfs, "/dist")
	require.NoError(t, err)
	assert.Nil(t, manifest.Previous(compile.Global, ""))

	bundle, err := compile.CompileGlobal(activeSet(), nil, compile.Options{})
	require.NoError(t, err)
	manifest.Record(bundle)

	component, _, err := compile.CompileComponent("card", activeSet(),
		[]string{"--color-primary"}, nil, compile.Options{})
	require.NoError(t, err)
	manifest.Record(component)

	require.NoError(t, manifest.Save(mfs, "/dist"))

	loaded, err := compile.LoadManifest(mfs, "/dist")
	require.NoError(t, err)

	prev := loaded.Previous(compile.Global, "")
	require.NotNil(t, prev)
	assert.Equal(t, bundle.Version, prev.Version)
	assert.Equal(t, bundle.ContentFingerprint, prev.ContentFingerprint)

	require.NotNil(t, loaded.Previous(compile.Component, "card"))
	assert.Nil(t, loaded.Previous(compile.Component, "button"))
}

func TestManifestVersionLineage(t *testing.T) {
	mfs := mapfs.New()
	manifest, err := compile.LoadManifest(mfs, "/dist")
	require.NoError(t, err)

	first, err := compile.CompileGlobal(activeSet(), manifest.Previous(compile.Global, ""), compile.Options{})
	require.NoError(t, err)
	manifest.Record(first)
	require.NoError(t, manifest.Save(mfs, "/dist"))

	// Reload and compile a changed value: patch bump survives the round trip.
	manifest, err = compile.LoadManifest(mfs, "/dist")
	require.NoError(t, err)

	changed := activeSet()
	changed[0].Value = "#000000"
	second, err := compile.CompileGlobal(changed, manifest.Previous(compile.Global, ""), compile.Options{})
	require.NoError(t, err)
	assert.Equal(t, "1.0.1", second.Version.String())
}
