package dungeon

import "github.com/matzehuels/dungeon/pkg/errors"

// Rasterize paints rooms and corridors into a fresh rows×rows grid and seeds
// every painted tile with a floor. Room cells that fall outside the grid are
// dropped; a cell claimed by one room is not repainted by another. Corridors
// only claim tiles that carry no objects yet, in the order given.
//
// After painting, each corridor's Tiles is rebuilt from the tiles it owns.
// Walls are not placed here; see DeriveWalls.
func Rasterize(rooms []*SpacePartition, corridors []*Corridor, rows, tileSize int) (*Grid, error) {
	g := NewGrid(rows, tileSize)

	for i, room := range rooms {
		paintRoom(g, room, i+1)
	}

	runs := make([][]Point, len(corridors))
	for i, c := range corridors {
		points, err := corridorPoints(c, tileSize)
		if err != nil {
			return nil, err
		}
		runs[i] = points
		for _, p := range points {
			idx, ok := g.IndexAt(p)
			if !ok {
				return nil, errors.Invariant("corridor %d point (%d,%d) is outside the grid", c.ID, p.X, p.Y)
			}
			t := &g.Tiles[idx]
			if len(t.Objects) > 0 {
				continue
			}
			t.Type = CorridorTile
			t.CorridorID = c.ID
			t.Objects = append(t.Objects, FloorObject())
		}
	}

	for i, c := range corridors {
		c.Tiles = c.Tiles[:0]
		for _, p := range runs[i] {
			if idx, ok := g.IndexAt(p); ok && g.Tiles[idx].CorridorID == c.ID {
				c.Tiles = append(c.Tiles, idx)
			}
		}
	}

	return g, nil
}

func paintRoom(g *Grid, room *SpacePartition, id int) {
	t := g.TileSize
	for y := room.Bottom; y < room.Top(); y += t {
		for x := room.Left; x < room.Right(); x += t {
			idx, ok := g.IndexAt(Point{x, y})
			if !ok {
				continue
			}
			tile := &g.Tiles[idx]
			if tile.Type != EmptyTile {
				continue
			}
			tile.Type = RoomTile
			tile.RoomID = id
			tile.Objects = append(tile.Objects, FloorObject())
		}
	}
}

// corridorPoints lists the tile positions a corridor walks over. Vertical
// splits yield a run along X at fixed Y; horizontal splits a run down Y at
// fixed X.
func corridorPoints(c *Corridor, tileSize int) ([]Point, error) {
	var points []Point
	switch c.Axis {
	case Vertical:
		if c.Start.Y != c.End.Y || c.End.X < c.Start.X {
			return nil, errors.Invariant("corridor %d from %v to %v is not a run along X", c.ID, c.Start, c.End)
		}
		for x := c.Start.X; x <= c.End.X; x += tileSize {
			points = append(points, Point{x, c.Start.Y})
		}
	case Horizontal:
		if c.Start.X != c.End.X || c.End.Y > c.Start.Y {
			return nil, errors.Invariant("corridor %d from %v to %v is not a run down Y", c.ID, c.Start, c.End)
		}
		for y := c.Start.Y; y >= c.End.Y; y -= tileSize {
			points = append(points, Point{c.Start.X, y})
		}
	default:
		return nil, errors.Invariant("corridor %d has unknown axis %v", c.ID, c.Axis)
	}
	return points, nil
}
