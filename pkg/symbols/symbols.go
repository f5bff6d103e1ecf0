// Package symbols provides the emoji shortcode table consumed by the
// generator. The table is immutable after construction and safe to share
// across concurrent conversions.
package symbols

import (
	"strings"
	"sync"

	"github.com/kyokomi/emoji/v2"
)

// Table maps emoji shortcodes (without surrounding colons) to their
// display glyphs.
type Table map[string]string

// Lookup returns the glyph for a shortcode. Lookups are exact-key only;
// no fuzzy matching.
func (t Table) Lookup(code string) (string, bool) {
	glyph, ok := t[code]
	return glyph, ok
}

var (
	defaultTable     Table
	defaultTableOnce sync.Once
)

// Default returns the shared table built from the gemoji shortcode set.
func Default() Table {
	defaultTableOnce.Do(func() {
		codes := emoji.CodeMap()
		defaultTable = make(Table, len(codes))
		for code, glyph := range codes {
			defaultTable[strings.Trim(code, ":")] = glyph
		}
	})
	return defaultTable
}
