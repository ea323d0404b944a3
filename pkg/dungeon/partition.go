package dungeon

import (
	"github.com/matzehuels/dungeon/pkg/errors"
	"github.com/matzehuels/dungeon/pkg/random"
)

// partitionContext is the per-step state handed down the recursion by value.
// Axis and TilesSeparated describe the split chosen by the parent.
type partitionContext struct {
	Rect
	Axis           SeparationAxis
	TilesSeparated int
}

// partitioner holds the state of one partitioning pass. The corridor table
// is the only state shared between sibling branches.
type partitioner struct {
	tileSize    int
	minTiles    int
	ratio       float64
	maxElements int
	rng         random.Provider

	corridors map[int]*Corridor
	order     []*Corridor
}

func newPartitioner(cfg Config, rng random.Provider) *partitioner {
	return &partitioner{
		tileSize:    cfg.TileSize,
		minTiles:    cfg.MinTilesPerRoom,
		ratio:       cfg.MinRoomRatio,
		maxElements: cfg.MaxElements(),
		rng:         rng,
		corridors:   make(map[int]*Corridor),
	}
}

// Partition splits the square dungeon described by cfg into a binary tree and
// returns the root together with the corridors recorded between siblings, in
// creation order. cfg must already be valid.
func Partition(cfg Config, rng random.Provider) (*SpacePartition, []*Corridor, error) {
	p := newPartitioner(cfg, rng)
	root, err := p.split(nil, 0, partitionContext{
		Rect: Rect{Width: cfg.DungeonSize, Height: cfg.DungeonSize},
	})
	if err != nil {
		return nil, nil, err
	}
	return root, p.order, nil
}

// split builds the subtree rooted at heap slot index.
func (p *partitioner) split(node *SpacePartition, index int, ctx partitionContext) (*SpacePartition, error) {
	if index >= p.maxElements {
		return node, nil
	}

	minRoomSize := p.tileSize * (p.minTiles + 2)
	if ctx.Width <= minRoomSize && ctx.Height <= minRoomSize {
		// The parent stays a leaf carrying this rectangle.
		if index == 0 {
			return &SpacePartition{Rect: ctx.Rect, Key: index}, nil
		}
		return node, nil
	}

	if index > 0 {
		if err := p.enterHalf(&ctx, index); err != nil {
			return nil, err
		}
	}

	node = &SpacePartition{Rect: ctx.Rect, Key: index}

	axis, tiles, ok := p.nextSplit(ctx.Rect)
	if !ok {
		return node, nil
	}
	ctx.Axis = axis
	ctx.TilesSeparated = tiles

	var err error
	if node.Near, err = p.split(node.Near, 2*index+1, ctx); err != nil {
		return nil, err
	}
	if node.Far, err = p.split(node.Far, 2*index+2, ctx); err != nil {
		return nil, err
	}
	return node, nil
}

// enterHalf narrows ctx to the half of the parent rectangle that heap slot
// index covers. Odd slots open a corridor; even slots close their sibling's.
func (p *partitioner) enterHalf(ctx *partitionContext, index int) error {
	cut := p.tileSize * ctx.TilesSeparated

	if index%2 == 1 {
		if ctx.Axis == Vertical {
			ctx.Width = cut
		} else {
			ctx.Height -= cut
			ctx.Bottom += cut
		}
		if err := p.checkRect(ctx.Rect, index); err != nil {
			return err
		}
		c := &Corridor{
			ID:    len(p.order) + 1,
			Key:   index,
			From:  index,
			Axis:  ctx.Axis,
			Start: p.center(ctx.Rect),
		}
		p.corridors[index] = c
		p.order = append(p.order, c)
		return nil
	}

	if ctx.Axis == Vertical {
		ctx.Width -= cut
		ctx.Left += cut
	} else {
		ctx.Height = cut
	}
	if err := p.checkRect(ctx.Rect, index); err != nil {
		return err
	}
	sibling, ok := p.corridors[index-1]
	if !ok {
		return errors.Invariant("partition %d has no corridor from sibling %d", index, index-1)
	}
	sibling.To = index
	sibling.End = p.center(ctx.Rect)
	return nil
}

// nextSplit chooses the axis and offset (in tiles) for splitting r.
// It reports false when neither axis leaves room for two proportionate halves.
func (p *partitioner) nextSplit(r Rect) (SeparationAxis, int, bool) {
	t := p.tileSize

	minX := max(int(float64(r.Height)*p.ratio)/t, 1)
	maxX := r.Width/t - minX
	vertical := minX < maxX

	minY := max(int(float64(r.Width)*p.ratio)/t, 1)
	maxY := r.Height/t - minY
	horizontal := minY < maxY

	switch {
	case vertical && horizontal:
		if SeparationAxis(p.rng.IntRange(0, 1)) == Vertical {
			return Vertical, p.rng.IntRange(minX, maxX), true
		}
		return Horizontal, p.rng.IntRange(minY, maxY), true
	case vertical:
		return Vertical, p.rng.IntRange(minX, maxX), true
	case horizontal:
		return Horizontal, p.rng.IntRange(minY, maxY), true
	}
	return 0, 0, false
}

// center returns the lower-left corner of the middle tile of r.
func (p *partitioner) center(r Rect) Point {
	t := p.tileSize
	return Point{
		X: r.Left + (r.Width/t/2)*t,
		Y: r.Bottom + (r.Height/t/2)*t,
	}
}

func (p *partitioner) checkRect(r Rect, index int) error {
	if r.Width <= 0 || r.Height <= 0 {
		return errors.Invariant("partition %d has empty rectangle %v", index, r)
	}
	if r.Width%p.tileSize != 0 || r.Height%p.tileSize != 0 {
		return errors.Invariant("partition %d rectangle %v is not tile aligned", index, r)
	}
	return nil
}

// =============================================================================
// Tree Traversal
// =============================================================================

// Walk visits the tree in pre-order, passing each node's depth.
func Walk(root *SpacePartition, fn func(p *SpacePartition, depth int)) {
	var walk func(*SpacePartition, int)
	walk = func(n *SpacePartition, depth int) {
		if n == nil {
			return
		}
		fn(n, depth)
		walk(n.Near, depth+1)
		walk(n.Far, depth+1)
	}
	walk(root, 0)
}

// InOrderKeys returns the partition keys in in-order (near, node, far).
func InOrderKeys(root *SpacePartition) []int {
	var keys []int
	var walk func(*SpacePartition)
	walk = func(n *SpacePartition) {
		if n == nil {
			return
		}
		walk(n.Near)
		keys = append(keys, n.Key)
		walk(n.Far)
	}
	walk(root)
	return keys
}

// CountPartitions returns the number of nodes in the tree.
func CountPartitions(root *SpacePartition) int {
	n := 0
	Walk(root, func(*SpacePartition, int) { n++ })
	return n
}
