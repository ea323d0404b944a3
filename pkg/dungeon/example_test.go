package dungeon_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/dungeon/pkg/dungeon"
)

func ExampleGenerate() {
	cfg := dungeon.Config{
		DungeonSize:     3600,
		TileSize:        600,
		SplitIterations: 1,
		MinTilesPerRoom: 2,
		MinRoomRatio:    0.4,
		Seed:            7,
	}

	layout, err := dungeon.Generate(context.Background(), cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(layout.Rows(), layout.RoomCount(), layout.CorridorCount())
	// Output: 6 2 1
}

func ExampleParseConfig() {
	cfg, err := dungeon.ParseConfig([]byte(`
dungeon_size = 12000
split_iterations = 3
`))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(cfg.Rows(), cfg.TileSize, cfg.MaxElements())
	// Output: 20 600 15
}
