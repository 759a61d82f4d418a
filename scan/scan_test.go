/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package scan_test

import (
	"slices"
	"testing"

	"bennypowers.dev/tsror/internal/mapfs"
	"bennypowers.dev/tsror/scan"
)

func newScanner(t *testing.T) *scan.Scanner {
	t.Helper()
	s, err := scan.New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func TestScanSource_CSS(t *testing.T) {
	s := newScanner(t)

	source := `.card {
  color: var(--color-primary);
  padding: var( --space-4 );
  background: rgb(255 0 0);
  width: calc(100% - 2rem);
}`

	got := s.ScanSource("card.css", []byte(source))
	want := []string{"--color-primary", "--space-4"}
	if !slices.Equal(got, want) {
		t.Errorf("ScanSource() = %v, want %v", got, want)
	}
}

func TestScanSource_CSSIgnoresNonVarCalls(t *testing.T) {
	s := newScanner(t)

	got := s.ScanSource("x.css", []byte(`.a { width: calc(--not-a-ref); }`))
	if len(got) != 0 {
		t.Errorf("ScanSource() = %v, want none", got)
	}
}

func TestScanSource_JavaScript(t *testing.T) {
	s := newScanner(t)

	source := `const styles = css` + "`" + `
  color: var(--color-primary);
` + "`" + `;
el.style.setProperty('--space-4', '1rem');
const name = "color.accent";
const notARef = 42;`

	got := s.ScanSource("card.js", []byte(source))
	for _, want := range []string{"--color-primary", "--space-4", "color.accent"} {
		if !slices.Contains(got, want) {
			t.Errorf("ScanSource() = %v, missing %q", got, want)
		}
	}
}

func TestScanSource_JavaScriptIgnoresIdentifiers(t *testing.T) {
	s := newScanner(t)

	// Property access chains outside strings are code, not references.
	got := s.ScanSource("x.js", []byte(`window.document.title = "hi";`))
	if slices.Contains(got, "window.document.title") {
		t.Errorf("ScanSource() = %v, should not extract identifier chains", got)
	}
}

func TestScanSource_TextFallback(t *testing.T) {
	s := newScanner(t)

	source := `# Card

Uses the ` + "`--color-primary`" + ` property and the color.accent token.`

	got := s.ScanSource("card.md", []byte(source))
	for _, want := range []string{"--color-primary", "color.accent"} {
		if !slices.Contains(got, want) {
			t.Errorf("ScanSource() = %v, missing %q", got, want)
		}
	}
}

func TestScanFiles(t *testing.T) {
	s := newScanner(t)

	mfs := mapfs.New()
	mfs.AddFile("/src/card.css", `.card { color: var(--color-primary); }`, 0644)
	mfs.AddFile("/src/card.js", `const t = "--space-4";`, 0644)

	got, err := s.ScanFiles(mfs, []string{"/src/card.css", "/src/card.js"})
	if err != nil {
		t.Fatalf("ScanFiles() error = %v", err)
	}

	want := []string{"--color-primary", "--space-4"}
	if !slices.Equal(got, want) {
		t.Errorf("ScanFiles() = %v, want %v", got, want)
	}
}

func TestScanFiles_MissingFile(t *testing.T) {
	s := newScanner(t)

	if _, err := s.ScanFiles(mapfs.New(), []string{"/nope.css"}); err == nil {
		t.Error("ScanFiles() expected error for missing file")
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		path string
		want scan.Language
	}{
		{"a.css", scan.LanguageCSS},
		{"a.SCSS", scan.LanguageCSS},
		{"a.js", scan.LanguageJavaScript},
		{"a.tsx", scan.LanguageJavaScript},
		{"a.md", scan.LanguageText},
		{"a", scan.LanguageText},
	}
	for _, tt := range tests {
		if got := scan.DetectLanguage(tt.path); got != tt.want {
			t.Errorf("DetectLanguage(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
