/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package compile

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"bennypowers.dev/tsror/token"
)

// DefaultCacheSize bounds the number of bundles kept in memory.
const DefaultCacheSize = 64

// Cache memoizes compiled bundles keyed by input content, so repeat
// compiles of an unchanged token set skip rendering entirely.
type Cache struct {
	bundles *lru.Cache[string, *Bundle]
}

// NewCache creates a bundle cache. size <= 0 uses DefaultCacheSize.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	bundles, err := lru.New[string, *Bundle](size)
	if err != nil {
		return nil, err
	}
	return &Cache{bundles: bundles}, nil
}

// Key derives the cache key for a compilation input. Two inputs with
// the same tokens (names, types, values, modes), predecessor and
// options share a key; the predecessor participates because it decides
// the version stamp.
func (c *Cache) Key(kind Kind, componentID string, tokens []*token.Token, prev *Bundle, opts Options) string {
	opts = opts.withDefaults()
	prevVersion := ""
	if prev != nil {
		prevVersion = prev.Version.String() + "@" + prev.ContentFingerprint
	}
	major := ""
	if opts.Major {
		major = "major"
	}
	fields := strings.Join([]string{
		string(kind),
		componentID,
		opts.Prefix,
		opts.ModeAttribute,
		major,
		prevVersion,
		contentFingerprint(tokens),
	}, "\x00")
	sum := sha256.Sum256([]byte(fields))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached bundle for key, if present.
func (c *Cache) Get(key string) (*Bundle, bool) {
	return c.bundles.Get(key)
}

// Put stores a bundle under key.
func (c *Cache) Put(key string, b *Bundle) {
	c.bundles.Add(key, b)
}

// Len returns the number of cached bundles.
func (c *Cache) Len() int {
	return c.bundles.Len()
}
