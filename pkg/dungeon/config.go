package dungeon

import (
	"bytes"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/dungeon/pkg/errors"
	"github.com/matzehuels/dungeon/pkg/random"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultDungeonSize is the side length of the square dungeon in world units.
	DefaultDungeonSize = 36000

	// DefaultTileSize is the side length of one tile. It must match the size
	// of the floor and wall meshes a renderer instantiates.
	DefaultTileSize = 600

	// DefaultSplitIterations is the number of partition levels below the root.
	DefaultSplitIterations = 5

	// DefaultMinTilesPerRoom is the minimum room width and height in tiles.
	DefaultMinTilesPerRoom = 2

	// DefaultMinRoomRatio keeps partitions from degenerating into long strips.
	DefaultMinRoomRatio = 0.4

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultWallWidth is the wall mesh thickness renderers use for alignment.
	DefaultWallWidth = 10

	// MaxSplitIterations bounds the partition tree to 2^(n+1)-1 nodes.
	MaxSplitIterations = 16
)

// =============================================================================
// Config
// =============================================================================

// Config contains everything a generation pass needs.
// Sizes are in world units; the grid has (DungeonSize/TileSize)² tiles.
type Config struct {
	DungeonSize     int     `toml:"dungeon_size" json:"dungeon_size"`
	TileSize        int     `toml:"tile_size" json:"tile_size"`
	SplitIterations int     `toml:"split_iterations" json:"split_iterations"`
	MinTilesPerRoom int     `toml:"min_tiles_per_room" json:"min_tiles_per_room"`
	MinRoomRatio    float64 `toml:"min_room_ratio" json:"min_room_ratio"`
	Seed            uint64  `toml:"seed" json:"seed"`

	// WallWidth is passed through to renderers; generation ignores it.
	WallWidth int `toml:"wall_width" json:"wall_width,omitempty"`

	// OpenDoorways runs the doorway post-pass after wall derivation.
	OpenDoorways bool `toml:"open_doorways" json:"open_doorways,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger     `toml:"-" json:"-"`
	Random random.Provider `toml:"-" json:"-"`
}

// DefaultConfig returns the stock configuration: a 60×60 tile dungeon split
// five times.
func DefaultConfig() Config {
	return Config{
		DungeonSize:     DefaultDungeonSize,
		TileSize:        DefaultTileSize,
		SplitIterations: DefaultSplitIterations,
		MinTilesPerRoom: DefaultMinTilesPerRoom,
		MinRoomRatio:    DefaultMinRoomRatio,
		Seed:            DefaultSeed,
		WallWidth:       DefaultWallWidth,
	}
}

// Rows returns the number of tiles along each side of the grid.
func (c Config) Rows() int { return c.DungeonSize / c.TileSize }

// MinRoomSize returns the partition size below which no further split happens.
func (c Config) MinRoomSize() int { return c.TileSize * (c.MinTilesPerRoom + 2) }

// MaxElements returns the number of heap slots explored by the partitioner.
func (c Config) MaxElements() int { return 1<<(c.SplitIterations+1) - 1 }

// Validate rejects configurations the generator cannot honour. Every error
// carries errors.ErrCodeInvalidConfig.
func (c Config) Validate() error {
	if c.TileSize <= 0 {
		return errors.Config("tile_size must be positive, got %d", c.TileSize)
	}
	if c.DungeonSize <= 0 {
		return errors.Config("dungeon_size must be positive, got %d", c.DungeonSize)
	}
	if c.DungeonSize%c.TileSize != 0 {
		return errors.Config("tile_size %d does not evenly divide dungeon_size %d", c.TileSize, c.DungeonSize)
	}
	if c.SplitIterations < 0 {
		return errors.Config("split_iterations must not be negative, got %d", c.SplitIterations)
	}
	if c.SplitIterations > MaxSplitIterations {
		return errors.Config("split_iterations %d exceeds the maximum of %d", c.SplitIterations, MaxSplitIterations)
	}
	if c.MinTilesPerRoom < 1 {
		return errors.Config("min_tiles_per_room must be at least 1, got %d", c.MinTilesPerRoom)
	}
	if c.MinRoomSize() > c.DungeonSize {
		return errors.Config("min_tiles_per_room %d needs a room size of %d, larger than dungeon_size %d",
			c.MinTilesPerRoom, c.MinRoomSize(), c.DungeonSize)
	}
	if !(c.MinRoomRatio > 0 && c.MinRoomRatio < 1) {
		return errors.Config("min_room_ratio must be in (0, 1), got %g", c.MinRoomRatio)
	}
	if c.WallWidth < 0 || c.WallWidth > c.TileSize {
		return errors.Config("wall_width must be in [0, tile_size], got %d", c.WallWidth)
	}
	return nil
}

// logger returns the configured logger or a discarding one.
func (c Config) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.NewWithOptions(io.Discard, log.Options{})
}

// provider returns the configured random provider or a PCG seeded from Seed.
func (c Config) provider() random.Provider {
	if c.Random != nil {
		return c.Random
	}
	return random.NewPCG(c.Seed)
}

// =============================================================================
// TOML
// =============================================================================

// ParseConfig decodes a TOML document on top of DefaultConfig, so keys that
// are absent keep their defaults. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Config("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// LoadConfigFile reads and decodes a TOML config file.
func LoadConfigFile(path string) (Config, error) {
	if err := errors.ValidateConfigFilename(path); err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "read config %s", path)
	}
	return ParseConfig(data)
}

// EncodeConfig writes cfg as TOML.
func EncodeConfig(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}
