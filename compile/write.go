/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package compile

import (
	"fmt"
	"path/filepath"

	tsrorfs "bennypowers.dev/tsror/fs"
)

// Write stores the bundle's CSS and JSON payloads as
// <outDir>/<baseName>.css and <outDir>/<baseName>.json, creating the
// directory if needed.
func (b *Bundle) Write(filesystem tsrorfs.FileSystem, outDir, baseName string) error {
	if err := filesystem.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	cssPath := filepath.Join(outDir, baseName+".css")
	if err := filesystem.WriteFile(cssPath, []byte(b.CSSContent), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", cssPath, err)
	}

	jsonPath := filepath.Join(outDir, baseName+".json")
	if err := filesystem.WriteFile(jsonPath, []byte(b.JSONContent), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", jsonPath, err)
	}

	return nil
}
