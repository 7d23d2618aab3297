package render

import (
	"fmt"
	"sort"
)

// GlyphSet is the symbol shown for each cell state
type GlyphSet struct {
	Empty   string
	Black   string
	White   string
	Unknown string // Fallback for a cell outside the enum, should be unreachable
}

// Glyph set names
const (
	GlyphsASCII   = "ascii"
	GlyphsUnicode = "unicode"
)

var glyphSets = map[string]GlyphSet{
	GlyphsASCII:   {Empty: ".", Black: "B", White: "W", Unknown: "?"},
	GlyphsUnicode: {Empty: ".", Black: "●", White: "○", Unknown: "?"},
}

// Glyphs returns the named glyph set
func Glyphs(name string) (GlyphSet, error) {
	g, ok := glyphSets[name]
	if !ok {
		return GlyphSet{}, fmt.Errorf("unknown glyph set %q (have %v)", name, GlyphSetNames())
	}
	return g, nil
}

// GlyphSetNames lists the available glyph sets in sorted order
func GlyphSetNames() []string {
	names := make([]string, 0, len(glyphSets))
	for n := range glyphSets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
