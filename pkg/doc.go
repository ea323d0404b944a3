// Package pkg provides the core libraries for dungeon layout generation.
//
// # Overview
//
// A dungeon is a square area split by binary space partitioning into rooms,
// with a straight corridor between every pair of sibling partitions. The
// result is rasterized into a flat tile grid where every occupied tile has a
// floor and walls on the sides that face something different.
//
// # Architecture
//
// The typical data flow:
//
//	dungeon.Config (TOML or flags)
//	         ↓
//	    [dungeon] package (partition → select → shrink → rasterize → walls)
//	         ↓
//	    [render] packages (minimap, mesh instances, partition tree)
//	         ↓
//	    TXT/JSON/DOT/SVG output
//
// [pipeline] ties both stages together for the CLI.
//
// # Quick Start
//
//	cfg := dungeon.DefaultConfig()
//	cfg.Seed = 7
//
//	layout, err := dungeon.Generate(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	fmt.Print(minimap.Render(layout, minimap.Options{}))
//
// # Main Packages
//
// [dungeon] - Configuration, partitioning, room selection and shrinking,
// rasterization, wall derivation, doorways and the read-only [dungeon.View].
//
// [random] - The random provider used by generation, with a PCG source for
// production and a scripted source for tests.
//
// [render/minimap], [render/instances], [render/tree] - Consumers of a
// finished layout.
//
// [pipeline] - Generate → render orchestration with format validation.
//
// [errors] - Coded errors shared by every package.
//
// [observability] - Optional generation hooks for metrics and tracing.
//
// [dungeon]: https://pkg.go.dev/github.com/matzehuels/dungeon/pkg/dungeon
// [dungeon.View]: https://pkg.go.dev/github.com/matzehuels/dungeon/pkg/dungeon#View
// [random]: https://pkg.go.dev/github.com/matzehuels/dungeon/pkg/random
// [render]: https://pkg.go.dev/github.com/matzehuels/dungeon/pkg/render
// [render/minimap]: https://pkg.go.dev/github.com/matzehuels/dungeon/pkg/render/minimap
// [render/instances]: https://pkg.go.dev/github.com/matzehuels/dungeon/pkg/render/instances
// [render/tree]: https://pkg.go.dev/github.com/matzehuels/dungeon/pkg/render/tree
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/dungeon/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/dungeon/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/dungeon/pkg/observability
package pkg
