package dungeon

import "fmt"

// Point is an integer position in world units.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle in world units anchored at its lower-left corner.
type Rect struct {
	Left, Bottom, Width, Height int
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.Left + r.Width }

// Top returns the exclusive top edge.
func (r Rect) Top() int { return r.Bottom + r.Height }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right() && p.Y >= r.Bottom && p.Y < r.Top()
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.Left, r.Bottom, r.Width, r.Height)
}

// SeparationAxis is the direction along which a partition was split.
type SeparationAxis uint8

const (
	// Vertical splits along the width: the halves sit side by side and
	// the corridor between them runs along X.
	Vertical SeparationAxis = iota
	// Horizontal splits along the height: the halves are stacked and
	// the corridor between them runs along Y.
	Horizontal
)

func (a SeparationAxis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return fmt.Sprintf("SeparationAxis(%d)", uint8(a))
}

// SpacePartition is one node of the binary space partition tree.
//
// Key is the node's heap index: the root is 0 and the children of node i
// are 2i+1 and 2i+2. Each node owns its children exclusively.
type SpacePartition struct {
	Rect
	Key       int
	Near, Far *SpacePartition // children covering the low and high halves
}

// IsLeaf reports whether the partition was never subdivided.
func (p *SpacePartition) IsLeaf() bool {
	return p.Near == nil && p.Far == nil
}

// Corridor is a straight passage between the two halves of one split.
type Corridor struct {
	ID   int // 1-based creation order
	Key  int // heap index of the first (odd) child of the split
	From int // partition key the corridor starts in
	To   int // partition key the corridor ends in
	Axis SeparationAxis

	Start, End Point

	// Tiles lists the grid indices this corridor owns after rasterization,
	// in walk order.
	Tiles []int
}

// TileType classifies a grid cell.
type TileType uint8

const (
	EmptyTile TileType = iota
	RoomTile
	CorridorTile
)

func (t TileType) String() string {
	switch t {
	case EmptyTile:
		return "empty"
	case RoomTile:
		return "room"
	case CorridorTile:
		return "corridor"
	}
	return fmt.Sprintf("TileType(%d)", uint8(t))
}

// ObjectType is the kind of geometry a placement object describes.
type ObjectType uint8

const (
	Floor ObjectType = iota
	Wall
	Ceiling
	Pillar
	Torch
)

func (o ObjectType) String() string {
	switch o {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	case Ceiling:
		return "ceiling"
	case Pillar:
		return "pillar"
	case Torch:
		return "torch"
	}
	return fmt.Sprintf("ObjectType(%d)", uint8(o))
}

// Alignment is the side of a tile a placement object attaches to.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignTop
	AlignBottom
	AlignCenter
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignTop:
		return "top"
	case AlignBottom:
		return "bottom"
	case AlignCenter:
		return "center"
	}
	return fmt.Sprintf("Alignment(%d)", uint8(a))
}

// Vec3 is a direction vector used by renderers to rotate placed geometry.
type Vec3 struct {
	X, Y, Z int
}

var (
	up          = Vec3{0, 0, 1}
	alongX      = Vec3{1, 0, 0}
	alongNegY   = Vec3{0, -1, 0}
	defaultItem = PlacementObject{Type: Floor, Align: AlignCenter, Orientation: up}
)

// PlacementObject describes one piece of geometry to instantiate on a tile.
type PlacementObject struct {
	Type        ObjectType
	Align       Alignment
	Orientation Vec3
}

// FloorObject returns the default placement object: a centred floor.
func FloorObject() PlacementObject { return defaultItem }

// WallObject returns a wall aligned to the given side.
func WallObject(side Alignment) PlacementObject {
	o := alongNegY
	if side == AlignLeft || side == AlignRight {
		o = alongX
	}
	return PlacementObject{Type: Wall, Align: side, Orientation: o}
}

// Tile is one grid cell.
type Tile struct {
	Left, Bottom int // world position of the lower-left corner
	Type         TileType
	RoomID       int // 1-based room order, 0 when not a room tile
	CorridorID   int // Corridor.ID, 0 when not a corridor tile
	Objects      []PlacementObject
}

// HasWall reports whether the tile carries a wall on the given side.
func (t Tile) HasWall(side Alignment) bool {
	for _, o := range t.Objects {
		if o.Type == Wall && o.Align == side {
			return true
		}
	}
	return false
}
