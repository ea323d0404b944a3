package dungeon

// Grid is the flat row-major tile grid of a layout.
// Tile (col, row) lives at index col + Rows*row.
type Grid struct {
	Rows     int
	TileSize int
	Tiles    []Tile
}

// NewGrid returns a rows×rows grid of empty tiles positioned at their cells.
func NewGrid(rows, tileSize int) *Grid {
	g := &Grid{Rows: rows, TileSize: tileSize, Tiles: make([]Tile, rows*rows)}
	for i := range g.Tiles {
		g.Tiles[i].Left = (i % rows) * tileSize
		g.Tiles[i].Bottom = (i / rows) * tileSize
	}
	return g
}

// Index returns the tile index of (col, row), or false if it is off the grid.
func (g *Grid) Index(col, row int) (int, bool) {
	if col < 0 || col >= g.Rows || row < 0 || row >= g.Rows {
		return 0, false
	}
	return col + g.Rows*row, true
}

// Cell converts a world position to grid coordinates. Positions left of or
// below the origin round down, so they map to negative cells.
func (g *Grid) Cell(p Point) (col, row int) {
	return floorDiv(p.X, g.TileSize), floorDiv(p.Y, g.TileSize)
}

// IndexAt returns the index of the tile containing p, or false if p is
// outside the grid.
func (g *Grid) IndexAt(p Point) (int, bool) {
	return g.Index(g.Cell(p))
}

// Coords returns the grid coordinates of a tile index.
func (g *Grid) Coords(index int) (col, row int) {
	return index % g.Rows, index / g.Rows
}

// Count returns the number of tiles of type t.
func (g *Grid) Count(t TileType) int {
	n := 0
	for i := range g.Tiles {
		if g.Tiles[i].Type == t {
			n++
		}
	}
	return n
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
