package dungeon

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/dungeon/pkg/observability"
	"github.com/matzehuels/dungeon/pkg/random"
)

// layoutNamespace scopes layout fingerprints.
var layoutNamespace = uuid.MustParse("6f1c9a52-3d4e-5b8a-9c07-2e5d41a8b9f3")

// Layout is the result of one generation pass. It is never modified after
// Generate returns, so it may be shared between goroutines.
type Layout struct {
	// ID is Fingerprint(Config) when the layout came from the seeded
	// default provider. Layouts built with an injected Config.Random get a
	// random ID, since the provider's state is not part of the config.
	ID     uuid.UUID
	Config Config

	Root      *SpacePartition
	Rooms     []*SpacePartition // pre-order
	Corridors []*Corridor       // creation order
	Grid      *Grid

	// Doorways is the number of doorways opened when Config.OpenDoorways is set.
	Doorways int
}

// View is the read-only query surface external consumers (renderers, the
// minimap, debug overlays) depend on.
type View interface {
	Rows() int
	TileSize() int
	ForEachOccupiedTile(visit func(col, row int, t TileType, objects []PlacementObject))
	TileAt(p Point) (Tile, bool)
	RoomCount() int
	CorridorCount() int
}

var _ View = (*Layout)(nil)

// Generate validates cfg and builds a layout: partition, select rooms,
// shrink them, rasterize, derive walls and optionally open doorways.
// Configuration errors are returned before any partition is allocated.
//
// ctx is handed to the observability hooks; generation itself always runs
// to completion.
func Generate(ctx context.Context, cfg Config) (*Layout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	hooks := observability.Generation()
	logger := cfg.logger()
	start := time.Now()
	hooks.OnGenerateStart(ctx, cfg.Seed)

	l, err := generate(ctx, cfg, cfg.provider(), hooks, logger)

	rooms, corridors := 0, 0
	if l != nil {
		rooms, corridors = l.RoomCount(), l.CorridorCount()
	}
	hooks.OnGenerateComplete(ctx, cfg.Seed, rooms, corridors, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	logger.Debug("generated dungeon",
		"id", l.ID,
		"rooms", rooms,
		"corridors", corridors,
		"duration", time.Since(start))
	return l, nil
}

func generate(ctx context.Context, cfg Config, rng random.Provider, hooks observability.GenerationHooks, logger *log.Logger) (*Layout, error) {
	l := &Layout{ID: layoutID(cfg), Config: cfg}

	stage := func(name string, fn func() error) error {
		start := time.Now()
		if err := fn(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		hooks.OnStageComplete(ctx, name, time.Since(start))
		return nil
	}
	step := func(name string, fn func()) {
		start := time.Now()
		fn()
		hooks.OnStageComplete(ctx, name, time.Since(start))
	}

	err := stage(observability.StagePartition, func() error {
		var err error
		l.Root, l.Corridors, err = Partition(cfg, rng)
		if err == nil {
			logger.Debug("partitioned space",
				"partitions", CountPartitions(l.Root),
				"corridors", len(l.Corridors),
				"keys", InOrderKeys(l.Root))
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	step(observability.StageSelect, func() {
		l.Rooms = SelectRooms(l.Root, cfg.SplitIterations)
	})

	step(observability.StageShrink, func() {
		for _, room := range l.Rooms {
			ShrinkRoom(room, cfg.TileSize, cfg.MinTilesPerRoom, rng)
		}
	})

	err = stage(observability.StageRasterize, func() error {
		var err error
		l.Grid, err = Rasterize(l.Rooms, l.Corridors, cfg.Rows(), cfg.TileSize)
		return err
	})
	if err != nil {
		return nil, err
	}

	step(observability.StageWalls, func() {
		DeriveWalls(l.Grid)
	})

	if cfg.OpenDoorways {
		step(observability.StageDoorways, func() {
			l.Doorways = OpenDoorways(l.Grid)
			logger.Debug("opened doorways", "count", l.Doorways)
		})
	}

	return l, nil
}

// Fingerprint derives a stable UUID from the generation parameters of cfg.
// Layouts generated from equal fingerprints with the default random
// provider are identical. Config.Random is not part of the fingerprint: an
// injected provider carries state between Generate calls, so equal configs
// sharing one provider yield different layouts.
func Fingerprint(cfg Config) uuid.UUID {
	name := fmt.Sprintf("%d/%d/%d/%d/%g/%d/%t",
		cfg.DungeonSize, cfg.TileSize, cfg.SplitIterations,
		cfg.MinTilesPerRoom, cfg.MinRoomRatio, cfg.Seed, cfg.OpenDoorways)
	return uuid.NewSHA1(layoutNamespace, []byte(name))
}

func layoutID(cfg Config) uuid.UUID {
	if cfg.Random != nil {
		return uuid.New()
	}
	return Fingerprint(cfg)
}

// =============================================================================
// Queries
// =============================================================================

// Rows returns the number of tiles along each side.
func (l *Layout) Rows() int { return l.Grid.Rows }

// TileSize returns the tile side length in world units.
func (l *Layout) TileSize() int { return l.Grid.TileSize }

// RoomCount returns the number of rooms.
func (l *Layout) RoomCount() int { return len(l.Rooms) }

// CorridorCount returns the number of corridors.
func (l *Layout) CorridorCount() int { return len(l.Corridors) }

// ForEachOccupiedTile calls visit for every non-empty tile in row-major
// order, bottom row first. visit receives a copy of the tile's objects.
func (l *Layout) ForEachOccupiedTile(visit func(col, row int, t TileType, objects []PlacementObject)) {
	for i := range l.Grid.Tiles {
		t := &l.Grid.Tiles[i]
		if t.Type == EmptyTile {
			continue
		}
		col, row := l.Grid.Coords(i)
		visit(col, row, t.Type, slices.Clone(t.Objects))
	}
}

// TileAt returns a copy of the tile containing the world position p.
func (l *Layout) TileAt(p Point) (Tile, bool) {
	idx, ok := l.Grid.IndexAt(p)
	if !ok {
		return Tile{}, false
	}
	t := l.Grid.Tiles[idx]
	t.Objects = slices.Clone(t.Objects)
	return t, true
}

// Neighbors returns the types of the four tiles the wall rules consult for
// (col, row), indexed by Alignment. Missing neighbours read as EmptyTile.
func (l *Layout) Neighbors(col, row int) [4]TileType {
	var out [4]TileType
	idx, ok := l.Grid.Index(col, row)
	if !ok {
		return out
	}
	for _, a := range []Alignment{AlignLeft, AlignRight, AlignTop, AlignBottom} {
		if j, ok := neighborIndex(l.Grid, idx, a); ok {
			out[a] = l.Grid.Tiles[j].Type
		}
	}
	return out
}

// Corridor returns the corridor created by the split whose first child is key.
func (l *Layout) Corridor(key int) (*Corridor, bool) {
	for _, c := range l.Corridors {
		if c.Key == key {
			return c, true
		}
	}
	return nil, false
}

// Components counts wall-separated regions of the layout.
func (l *Layout) Components() int { return Components(l.Grid) }
