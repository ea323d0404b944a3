package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/dungeon/pkg/dungeon"
)

// configFlags holds the generation flags shared by every command that builds
// a layout. Flags that are set override values from the config file.
type configFlags struct {
	path            string
	dungeonSize     int
	tileSize        int
	splitIterations int
	minTilesPerRoom int
	minRoomRatio    float64
	seed            uint64
	wallWidth       int
	openDoorways    bool
}

func (f *configFlags) register(cmd *cobra.Command) {
	d := dungeon.DefaultConfig()
	fs := cmd.Flags()
	fs.StringVarP(&f.path, "config", "c", "", "TOML config file (default ~/.config/dungeon/dungeon.toml if present)")
	fs.IntVar(&f.dungeonSize, "size", d.DungeonSize, "dungeon side length in world units")
	fs.IntVar(&f.tileSize, "tile", d.TileSize, "tile side length in world units")
	fs.IntVarP(&f.splitIterations, "iterations", "i", d.SplitIterations, "partition levels below the root")
	fs.IntVar(&f.minTilesPerRoom, "min-tiles", d.MinTilesPerRoom, "minimum room width and height in tiles")
	fs.Float64Var(&f.minRoomRatio, "ratio", d.MinRoomRatio, "minimum side ratio of a partition, in (0, 1)")
	fs.Uint64VarP(&f.seed, "seed", "s", d.Seed, "random seed")
	fs.IntVar(&f.wallWidth, "wall-width", d.WallWidth, "wall mesh thickness reported in exports")
	fs.BoolVar(&f.openDoorways, "doorways", d.OpenDoorways, "open one doorway per room and corridor contact")
}

// load builds the effective configuration: defaults, then the config file,
// then any flag the user set explicitly.
func (f *configFlags) load(cmd *cobra.Command) (dungeon.Config, error) {
	cfg := dungeon.DefaultConfig()

	path := f.path
	if path == "" {
		path, _ = defaultConfigPath()
	}
	if path != "" {
		var err error
		if cfg, err = dungeon.LoadConfigFile(path); err != nil {
			return dungeon.Config{}, err
		}
		loggerFromContext(cmd.Context()).Debug("loaded config", "path", path)
	}

	fs := cmd.Flags()
	if fs.Changed("size") {
		cfg.DungeonSize = f.dungeonSize
	}
	if fs.Changed("tile") {
		cfg.TileSize = f.tileSize
	}
	if fs.Changed("iterations") {
		cfg.SplitIterations = f.splitIterations
	}
	if fs.Changed("min-tiles") {
		cfg.MinTilesPerRoom = f.minTilesPerRoom
	}
	if fs.Changed("ratio") {
		cfg.MinRoomRatio = f.minRoomRatio
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("wall-width") {
		cfg.WallWidth = f.wallWidth
	}
	if fs.Changed("doorways") {
		cfg.OpenDoorways = f.openDoorways
	}

	cfg.Logger = loggerFromContext(cmd.Context())
	return cfg, cfg.Validate()
}
