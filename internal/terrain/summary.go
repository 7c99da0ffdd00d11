package terrain

import (
	"strings"

	"tilescape/internal/scene"
)

var (
	kindGlyphs = map[Kind]byte{Grass: '.', Path: '#', Stone: 'o', Water: '~'}
	decoGlyphs = map[scene.Tag]byte{scene.TagTree: 'T', scene.TagHouse: 'H', scene.TagKnight: 'K'}
	decoNames  = map[scene.Tag]string{scene.TagTree: "tree", scene.TagHouse: "house", scene.TagKnight: "knight"}
)

// ASCII draws the map one row per z, west to east. Decorations replace the
// tile glyph and the castle origin is marked with 'C'.
func (m *Map) ASCII() string {
	side := m.extent.Side()
	rows := make([][]byte, side)
	for i := range rows {
		rows[i] = make([]byte, side)
	}
	half := m.extent.Half
	for _, t := range m.tiles {
		g := kindGlyphs[t.Kind]
		if m.castle != nil && t.X == 0 && t.Z == 0 {
			g = 'C'
		}
		rows[t.Z+half][t.X+half] = g
	}
	for _, d := range m.decorations {
		rows[d.Z+half][d.X+half] = decoGlyphs[d.Tag]
	}
	var b strings.Builder
	for _, r := range rows {
		b.Write(r)
		b.WriteByte('\n')
	}
	return b.String()
}

// Summary is the machine-readable description of a generated map.
type Summary struct {
	Layout      string         `yaml:"layout"`
	Seed        int64          `yaml:"seed"`
	Half        int            `yaml:"half"`
	Tiles       int            `yaml:"tiles"`
	Kinds       map[string]int `yaml:"kinds"`
	Decorations map[string]int `yaml:"decorations"`
	Castle      bool           `yaml:"castle"`
}

// Summarize counts tiles and decorations of m.
func (m *Map) Summarize(seed int64) Summary {
	s := Summary{
		Layout:      m.Layout.Name,
		Seed:        seed,
		Half:        m.Layout.Half,
		Tiles:       len(m.tiles),
		Kinds:       make(map[string]int),
		Decorations: make(map[string]int),
		Castle:      m.castle != nil,
	}
	for k, n := range m.Counts() {
		s.Kinds[k.String()] = n
	}
	for _, d := range m.decorations {
		s.Decorations[decoNames[d.Tag]]++
	}
	return s
}
