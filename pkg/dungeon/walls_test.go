package dungeon

import "testing"

// paint builds a rows×rows grid with floors on the given tiles.
func paint(rows int, rooms, corridors map[int]int) *Grid {
	g := NewGrid(rows, 600)
	for idx, id := range rooms {
		g.Tiles[idx].Type = RoomTile
		g.Tiles[idx].RoomID = id
		g.Tiles[idx].Objects = []PlacementObject{FloorObject()}
	}
	for idx, id := range corridors {
		g.Tiles[idx].Type = CorridorTile
		g.Tiles[idx].CorridorID = id
		g.Tiles[idx].Objects = []PlacementObject{FloorObject()}
	}
	return g
}

func wallSides(t Tile) []Alignment {
	var out []Alignment
	for _, o := range t.Objects {
		if o.Type == Wall {
			out = append(out, o.Align)
		}
	}
	return out
}

func TestDeriveWalls(t *testing.T) {
	tests := []struct {
		name      string
		rooms     map[int]int
		corridors map[int]int
		want      map[int][]Alignment
	}{
		{
			name:      "room beside corridor",
			rooms:     map[int]int{4: 1},
			corridors: map[int]int{5: 1},
			want: map[int][]Alignment{
				4: {AlignLeft, AlignRight, AlignTop, AlignBottom},
				5: {AlignLeft, AlignRight, AlignTop, AlignBottom},
			},
		},
		{
			name:  "adjacent room tiles",
			rooms: map[int]int{0: 1, 1: 1},
			want: map[int][]Alignment{
				0: {AlignRight, AlignTop, AlignBottom},
				1: {AlignLeft, AlignTop, AlignBottom},
			},
		},
		{
			name:      "corridor run",
			corridors: map[int]int{1: 1, 4: 1, 7: 1},
			want: map[int][]Alignment{
				1: {AlignLeft, AlignRight, AlignBottom},
				4: {AlignLeft, AlignRight},
				7: {AlignLeft, AlignRight, AlignTop},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := paint(3, tt.rooms, tt.corridors)
			DeriveWalls(g)

			for i, tile := range g.Tiles {
				got := wallSides(tile)
				want := tt.want[i]
				if len(got) != len(want) {
					t.Errorf("tile %d walls = %v, want %v", i, got, want)
					continue
				}
				for k := range want {
					if got[k] != want[k] {
						t.Errorf("tile %d walls = %v, want %v", i, got, want)
						break
					}
				}
			}
		})
	}
}

func TestDeriveWallsOrientation(t *testing.T) {
	g := paint(3, map[int]int{4: 1}, nil)
	DeriveWalls(g)

	objects := g.Tiles[4].Objects
	if len(objects) != 5 {
		t.Fatalf("objects = %d, want floor plus 4 walls", len(objects))
	}
	if objects[0] != FloorObject() {
		t.Errorf("first object = %+v, want the floor", objects[0])
	}
	want := map[Alignment]Vec3{
		AlignLeft:   {1, 0, 0},
		AlignRight:  {1, 0, 0},
		AlignTop:    {0, -1, 0},
		AlignBottom: {0, -1, 0},
	}
	for _, o := range objects[1:] {
		if o.Orientation != want[o.Align] {
			t.Errorf("%s wall orientation = %v, want %v", o.Align, o.Orientation, want[o.Align])
		}
	}
}

func TestFacing(t *testing.T) {
	tests := []struct{ in, want Alignment }{
		{AlignLeft, AlignRight},
		{AlignRight, AlignLeft},
		{AlignTop, AlignBottom},
		{AlignBottom, AlignTop},
		{AlignCenter, AlignCenter},
	}
	for _, tt := range tests {
		if got := facing(tt.in); got != tt.want {
			t.Errorf("facing(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
