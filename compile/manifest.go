/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package compile

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	tsrorfs "bennypowers.dev/tsror/fs"
)

// ManifestFileName is the bundle manifest file kept in the output
// directory.
const ManifestFileName = "manifest.json"

// Manifest records the latest bundle per lineage so the next compile
// can diff against it. Lineages are keyed "global" or
// "component:<id>".
type Manifest struct {
	Bundles map[string]*Bundle `json:"bundles"`
}

// LineageKey returns the manifest key for a bundle target.
func LineageKey(kind Kind, componentID string) string {
	if kind == Component {
		return "component:" + componentID
	}
	return string(kind)
}

// LoadManifest reads the manifest from outDir. A missing manifest is an
// empty one, not an error.
func LoadManifest(filesystem tsrorfs.FileSystem, outDir string) (*Manifest, error) {
	manifest := &Manifest{Bundles: make(map[string]*Bundle)}

	path := filepath.Join(outDir, ManifestFileName)
	if !filesystem.Exists(path) {
		return manifest, nil
	}

	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bundle manifest: %w", err)
	}
	if err := json.Unmarshal(data, manifest); err != nil {
		return nil, fmt.Errorf("parsing bundle manifest: %w", err)
	}
	if manifest.Bundles == nil {
		manifest.Bundles = make(map[string]*Bundle)
	}

	return manifest, nil
}

// Previous returns the latest bundle of a lineage, or nil.
func (m *Manifest) Previous(kind Kind, componentID string) *Bundle {
	return m.Bundles[LineageKey(kind, componentID)]
}

// Record stores b as the latest bundle of its lineage.
func (m *Manifest) Record(b *Bundle) {
	m.Bundles[LineageKey(b.Kind, b.ComponentID)] = b
}

// Save writes the manifest into outDir, creating it if needed.
func (m *Manifest) Save(filesystem tsrorfs.FileSystem, outDir string) error {
	if err := filesystem.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(outDir, ManifestFileName)
	return filesystem.WriteFile(path, append(data, '\n'), 0644)
}
