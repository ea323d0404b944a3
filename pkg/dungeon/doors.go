package dungeon

import "github.com/zyedidia/generic/mapset"

// OpenDoorways removes the wall pair at the first contact between each room
// and each corridor touching it. Later contacts between the same room and
// corridor stay walled, so every corridor opens into a room at most once.
// Tiles are scanned in row-major order. It returns the number of doorways
// opened.
func OpenDoorways(g *Grid) int {
	connected := make(map[int]mapset.Set[int])
	opened := 0

	for i := range g.Tiles {
		t := &g.Tiles[i]
		if t.Type != RoomTile {
			continue
		}
		for _, s := range sides {
			j, ok := s.neighbor(i, g.Rows, len(g.Tiles))
			if !ok || g.Tiles[j].Type != CorridorTile {
				continue
			}
			seen, ok := connected[t.RoomID]
			if !ok {
				seen = mapset.New[int]()
				connected[t.RoomID] = seen
			}
			cid := g.Tiles[j].CorridorID
			if seen.Has(cid) {
				continue
			}
			seen.Put(cid)
			removeWall(t, s.align)
			removeWall(&g.Tiles[j], facing(s.align))
			opened++
		}
	}
	return opened
}

func removeWall(t *Tile, a Alignment) {
	for k, o := range t.Objects {
		if o.Type == Wall && o.Align == a {
			t.Objects = append(t.Objects[:k], t.Objects[k+1:]...)
			return
		}
	}
}

// Components counts the regions of occupied tiles that can be walked between
// without crossing a wall.
func Components(g *Grid) int {
	visited := mapset.New[int]()
	count := 0

	for start := range g.Tiles {
		if g.Tiles[start].Type == EmptyTile || visited.Has(start) {
			continue
		}
		count++
		visited.Put(start)
		queue := []int{start}
		for len(queue) > 0 {
			i := queue[0]
			queue = queue[1:]
			for _, s := range sides {
				j, ok := s.neighbor(i, g.Rows, len(g.Tiles))
				if !ok || visited.Has(j) || g.Tiles[j].Type == EmptyTile {
					continue
				}
				if g.Tiles[i].HasWall(s.align) || g.Tiles[j].HasWall(facing(s.align)) {
					continue
				}
				visited.Put(j)
				queue = append(queue, j)
			}
		}
	}
	return count
}
