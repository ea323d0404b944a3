// Package minimap draws a dungeon layout as a grid of glyphs, one per tile,
// with the top row of the dungeon printed first.
//
// Styling is pluggable: [Options.Style] receives each cell's tile type and
// glyph and returns the string to print, so terminal front ends can colour
// cells without this package depending on a terminal library.
package minimap

import (
	"strings"

	"github.com/matzehuels/dungeon/pkg/dungeon"
)

// Glyphs maps tile types to the runes drawn for them.
type Glyphs struct {
	Empty    rune
	Room     rune
	Corridor rune
}

// DefaultGlyphs draws rooms as '#', corridors as '+', and empty tiles as '.'.
var DefaultGlyphs = Glyphs{Empty: '.', Room: '#', Corridor: '+'}

func (g Glyphs) of(t dungeon.TileType) rune {
	switch t {
	case dungeon.RoomTile:
		return g.Room
	case dungeon.CorridorTile:
		return g.Corridor
	}
	return g.Empty
}

// Options configures minimap rendering.
type Options struct {
	// Glyphs overrides DefaultGlyphs when any field is set.
	Glyphs Glyphs

	// Style decorates each cell. Nil prints the glyph as is.
	Style func(t dungeon.TileType, glyph string) string
}

func (o Options) glyphs() Glyphs {
	if o.Glyphs == (Glyphs{}) {
		return DefaultGlyphs
	}
	return o.Glyphs
}

// Cells returns the tile types of v indexed [line][col], where line 0 is the
// top row of the dungeon.
func Cells(v dungeon.View) [][]dungeon.TileType {
	rows := v.Rows()
	cells := make([][]dungeon.TileType, rows)
	for i := range cells {
		cells[i] = make([]dungeon.TileType, rows)
	}
	v.ForEachOccupiedTile(func(col, row int, t dungeon.TileType, _ []dungeon.PlacementObject) {
		cells[rows-1-row][col] = t
	})
	return cells
}

// Lines renders v as one string per grid row, top row first.
func Lines(v dungeon.View, opts Options) []string {
	glyphs := opts.glyphs()
	cells := Cells(v)
	lines := make([]string, len(cells))

	var b strings.Builder
	for i, row := range cells {
		b.Reset()
		for _, t := range row {
			g := string(glyphs.of(t))
			if opts.Style != nil {
				g = opts.Style(t, g)
			}
			b.WriteString(g)
		}
		lines[i] = b.String()
	}
	return lines
}

// Render renders v as a newline-terminated block.
func Render(v dungeon.View, opts Options) string {
	lines := Lines(v, opts)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
