/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package compile

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"bennypowers.dev/tsror/token"
)

// Version is a semantic bundle version.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

// InitialVersion is assigned to the first bundle of a lineage.
var InitialVersion = Version{Major: 1, Minor: 0, Patch: 0}

// ParseVersion parses a "major.minor.patch" string.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version %q: want major.minor.patch", s)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("invalid version %q: bad segment %q", s, part)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String returns the "major.minor.patch" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0, or 1 comparing v against other.
func (v Version) Compare(other Version) int {
	pairs := [][2]int{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Patch, other.Patch},
	}
	for _, p := range pairs {
		if p[0] < p[1] {
			return -1
		}
		if p[0] > p[1] {
			return 1
		}
	}
	return 0
}

// bumpMinor increments minor and resets patch. Used when the token set
// gains or loses members.
func (v Version) bumpMinor() Version {
	return Version{Major: v.Major, Minor: v.Minor + 1}
}

// bumpPatch increments patch. Used when only values changed.
func (v Version) bumpPatch() Version {
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
}

// bumpMajor increments major and resets the rest. Never triggered
// automatically; only an explicit caller request performs it.
func (v Version) bumpMajor() Version {
	return Version{Major: v.Major + 1}
}

// setFingerprint hashes the token set identity: sorted names and types,
// values excluded. Two sets with equal fingerprints contain the same
// members.
func setFingerprint(tokens []*token.Token) string {
	lines := make([]string, 0, len(tokens))
	for _, t := range tokens {
		lines = append(lines, t.Name+"\x00"+string(t.Type))
	}
	return hashLines(lines)
}

// contentFingerprint hashes the full token content, values and modes
// included.
func contentFingerprint(tokens []*token.Token) string {
	lines := make([]string, 0, len(tokens))
	for _, t := range tokens {
		var sb strings.Builder
		sb.WriteString(t.Name)
		sb.WriteString("\x00")
		sb.WriteString(string(t.Type))
		sb.WriteString("\x00")
		sb.WriteString(t.Value)
		for _, mode := range t.Modes {
			sb.WriteString("\x00")
			sb.WriteString(mode)
			sb.WriteString("=")
			sb.WriteString(t.ValueByMode[mode])
		}
		lines = append(lines, sb.String())
	}
	return hashLines(lines)
}

func hashLines(lines []string) string {
	sort.Strings(lines)
	sum := sha256.Sum256([]byte(strings.Join(lines, "\n")))
	return hex.EncodeToString(sum[:])
}

// nextVersion derives the version for a new bundle from its predecessor.
// A changed member set bumps minor; changed values alone bump patch; an
// unchanged set keeps the previous version so no-op compiles stay
// byte-identical.
func nextVersion(prev *Bundle, tokens []*token.Token, major bool) Version {
	if prev == nil {
		if major {
			return Version{Major: InitialVersion.Major + 1}
		}
		return InitialVersion
	}

	if major {
		return prev.Version.bumpMajor()
	}

	set := setFingerprint(tokens)
	content := contentFingerprint(tokens)

	switch {
	case set != prev.SetFingerprint:
		return prev.Version.bumpMinor()
	case content != prev.ContentFingerprint:
		return prev.Version.bumpPatch()
	default:
		return prev.Version
	}
}
