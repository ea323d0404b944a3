// Package instances flattens a dungeon layout into mesh instances a renderer
// can place directly.
//
// Every placement object on every occupied tile becomes one [Instance] with a
// world position derived from the tile corner and the object's alignment, a
// yaw derived from its orientation, and the minimap shade of its tile.
//
//	layout, _ := dungeon.Generate(ctx, cfg)
//	doc := instances.Build(layout, cfg.WallWidth)
//	data, err := instances.RenderJSON(doc)
package instances

import (
	"encoding/json"
	"math"

	"github.com/matzehuels/dungeon/pkg/dungeon"
)

// Minimap shades per tile type.
const (
	RoomShade     = 0.7
	CorridorShade = 0.2
)

// Instance is one mesh to instantiate.
type Instance struct {
	Col   int     `json:"col"`
	Row   int     `json:"row"`
	Kind  string  `json:"kind"`
	Align string  `json:"align"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Yaw   float64 `json:"yaw"`
	Width int     `json:"width,omitempty"`
	Shade float64 `json:"shade"`
}

// Document is the exported form of a whole layout.
type Document struct {
	ID        string     `json:"id,omitempty"`
	Rows      int        `json:"rows"`
	TileSize  int        `json:"tile_size"`
	WallWidth int        `json:"wall_width"`
	Rooms     int        `json:"rooms"`
	Corridors int        `json:"corridors"`
	Instances []Instance `json:"instances"`
}

// Build converts every placement object in v to an instance, in row-major
// tile order. Walls carry wallWidth; floors carry none.
func Build(v dungeon.View, wallWidth int) Document {
	t := v.TileSize()
	doc := Document{
		Rows:      v.Rows(),
		TileSize:  t,
		WallWidth: wallWidth,
		Rooms:     v.RoomCount(),
		Corridors: v.CorridorCount(),
		Instances: []Instance{},
	}
	if l, ok := v.(*dungeon.Layout); ok {
		doc.ID = l.ID.String()
	}

	v.ForEachOccupiedTile(func(col, row int, typ dungeon.TileType, objects []dungeon.PlacementObject) {
		for _, o := range objects {
			x, y := Location(col*t, row*t, t, o.Align)
			inst := Instance{
				Col:   col,
				Row:   row,
				Kind:  o.Type.String(),
				Align: o.Align.String(),
				X:     x,
				Y:     y,
				Yaw:   Yaw(o.Orientation),
				Shade: Shade(typ),
			}
			if o.Type == dungeon.Wall {
				inst.Width = wallWidth
			}
			doc.Instances = append(doc.Instances, inst)
		}
	})
	return doc
}

// Location returns the world position of an object aligned to side a of the
// tile whose lower-left corner is (left, bottom).
func Location(left, bottom, tileSize int, a dungeon.Alignment) (x, y float64) {
	l, b := float64(left), float64(bottom)
	t := float64(tileSize)
	switch a {
	case dungeon.AlignLeft:
		return l, b + t/2
	case dungeon.AlignRight:
		return l + t, b + t/2
	case dungeon.AlignTop:
		return l + t/2, b + t
	case dungeon.AlignBottom:
		return l + t/2, b
	}
	return l + t/2, b + t/2
}

// Yaw returns the rotation about the up axis, in degrees, that points a mesh
// along the orientation vector.
func Yaw(o dungeon.Vec3) float64 {
	return math.Atan2(float64(o.Y), float64(o.X)) * 180 / math.Pi
}

// Shade returns the minimap intensity of a tile type.
func Shade(t dungeon.TileType) float64 {
	switch t {
	case dungeon.RoomTile:
		return RoomShade
	case dungeon.CorridorTile:
		return CorridorShade
	}
	return 0
}

// Counts tallies instances by kind.
func (d Document) Counts() map[string]int {
	out := make(map[string]int)
	for _, inst := range d.Instances {
		out[inst.Kind]++
	}
	return out
}

// RenderJSON encodes doc as indented JSON.
func RenderJSON(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}
