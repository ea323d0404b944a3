// Package dungeon generates 2D dungeon layouts by binary space partitioning.
//
// A generation pass turns a [Config] into a [Layout] in five steps:
//
//  1. Partition: the square dungeon is split recursively into a binary tree
//     of [SpacePartition] nodes. Nodes are addressed by heap index (root 0,
//     children 2i+1 and 2i+2) and recursion stops once an index reaches
//     2^(SplitIterations+1)-1. Each split records a [Corridor] running from
//     the centre of its first half to the centre of its second half.
//  2. Select: partitions at the deepest level, and leaves above it, become
//     rooms in pre-order.
//  3. Shrink: each room is trimmed by a random number of tiles per axis.
//  4. Rasterize: rooms and then corridors are painted into a [Grid] and
//     every painted tile receives a floor [PlacementObject].
//  5. Walls: each occupied tile gets a wall on every side that faces the
//     grid edge, an empty tile, or a tile of the other occupied type.
//
// With Config.OpenDoorways set, a final pass opens one doorway per room and
// corridor pair. Without it rooms and corridors are sealed from each other.
//
// # Reproducibility
//
// All random draws go through one [random.Provider], called in a fixed
// order. Two calls to [Generate] with equal configs produce identical
// layouts.
//
// # Usage
//
//	cfg := dungeon.DefaultConfig()
//	cfg.Seed = 7
//	l, err := dungeon.Generate(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	l.ForEachOccupiedTile(func(col, row int, t dungeon.TileType, objs []dungeon.PlacementObject) {
//	    // instantiate geometry
//	})
package dungeon
