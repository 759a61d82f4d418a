/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

// CDNURL returns the fetchable URL for a package specifier: unpkg.com
// for npm packages, esm.sh for jsr packages. Returns ("", false) for
// local paths and specifiers without a file component.
func CDNURL(spec string) (string, bool) {
	parsed := Parse(spec)
	if parsed.Package == "" || parsed.File == "" {
		return "", false
	}
	switch parsed.Kind {
	case KindNPM:
		return "https://unpkg.com/" + parsed.Package + "/" + parsed.File, true
	case KindJSR:
		return "https://esm.sh/jsr/" + parsed.Package + "/" + parsed.File, true
	default:
		return "", false
	}
}
