package dungeon

// side pairs an alignment with the neighbouring tile it faces.
type side struct {
	align Alignment
	// neighbor returns the neighbour index and whether it lies on the grid.
	neighbor func(index, rows, n int) (int, bool)
}

// sides is the fixed neighbourhood consulted for every tile, in the order
// walls are appended.
var sides = [4]side{
	{AlignLeft, func(i, rows, n int) (int, bool) {
		return i + 1, i%rows != rows-1 && i+1 < n
	}},
	{AlignRight, func(i, rows, n int) (int, bool) {
		return i - 1, i%rows != 0 && i-1 >= 0
	}},
	{AlignTop, func(i, rows, n int) (int, bool) {
		return i + rows, i+rows < n
	}},
	{AlignBottom, func(i, rows, n int) (int, bool) {
		return i - rows, i-rows >= 0
	}},
}

// DeriveWalls appends a wall to every occupied tile on each side that faces
// the grid edge, an empty tile, or a tile of the other occupied type.
// Two tiles of the same type never get a wall between them.
func DeriveWalls(g *Grid) {
	n := len(g.Tiles)
	for i := range g.Tiles {
		t := &g.Tiles[i]
		if t.Type == EmptyTile {
			continue
		}
		for _, s := range sides {
			j, ok := s.neighbor(i, g.Rows, n)
			if !ok || needsWall(t.Type, g.Tiles[j].Type) {
				t.Objects = append(t.Objects, WallObject(s.align))
			}
		}
	}
}

func needsWall(tile, neighbor TileType) bool {
	switch {
	case neighbor == EmptyTile:
		return true
	case tile == RoomTile && neighbor == CorridorTile:
		return true
	case tile == CorridorTile && neighbor == RoomTile:
		return true
	}
	return false
}

// facing returns the alignment of the neighbour's wall that backs a wall
// on side a.
func facing(a Alignment) Alignment {
	switch a {
	case AlignLeft:
		return AlignRight
	case AlignRight:
		return AlignLeft
	case AlignTop:
		return AlignBottom
	case AlignBottom:
		return AlignTop
	}
	return a
}

// neighborIndex returns the index of the tile on side a of index, if any.
func neighborIndex(g *Grid, index int, a Alignment) (int, bool) {
	for _, s := range sides {
		if s.align == a {
			return s.neighbor(index, g.Rows, len(g.Tiles))
		}
	}
	return 0, false
}
