package dungeon

import "github.com/matzehuels/dungeon/pkg/random"

// SelectRooms collects the partitions that become rooms: every node at
// maxDepth and every leaf above it, in pre-order (node, near, far).
func SelectRooms(root *SpacePartition, maxDepth int) []*SpacePartition {
	var rooms []*SpacePartition
	Walk(root, func(p *SpacePartition, depth int) {
		if depth == maxDepth || p.IsLeaf() {
			rooms = append(rooms, p)
		}
	})
	return rooms
}

// ShrinkRoom randomly trims a room in place so a gap opens between it and
// its neighbours. Width is handled before height.
//
// An even draw recentres the room by half the removed tiles; an odd draw
// moves its origin back by half a tile instead.
func ShrinkRoom(room *SpacePartition, tileSize, minTilesPerRoom int, rng random.Provider) {
	if room == nil {
		return
	}
	room.Width, room.Left = shrinkAxis(room.Width, room.Left, tileSize, minTilesPerRoom, rng)
	room.Height, room.Bottom = shrinkAxis(room.Height, room.Bottom, tileSize, minTilesPerRoom, rng)
}

func shrinkAxis(size, origin, tileSize, minTiles int, rng random.Provider) (int, int) {
	tiles := size / tileSize
	extra := min(tiles-minTiles, tiles/2)
	if extra <= 1 {
		return size, origin
	}
	drawn := rng.IntRange(1, extra)
	size -= drawn * tileSize
	if drawn%2 == 0 {
		origin += (drawn / 2) * tileSize
	} else {
		origin -= tileSize / 2
	}
	return size, origin
}
