// Package render groups the consumers of a finished dungeon layout.
//
// # Overview
//
// Every renderer depends only on the read-only [dungeon.View] or the layout
// itself, never on generation internals:
//
//   - [minimap]: a glyph per tile, top row first, with pluggable styling
//   - [instances]: one mesh instance per placement object, JSON encodable
//   - [tree]: the partition tree as an outline, Graphviz DOT, or SVG
//
// # Usage
//
//	text := minimap.Render(layout, minimap.Options{})
//	doc := instances.Build(layout, cfg.WallWidth)
//	svg, err := tree.RenderSVG(ctx, tree.ToDOT(layout))
//
// [dungeon.View]: github.com/matzehuels/dungeon/pkg/dungeon
// [minimap]: github.com/matzehuels/dungeon/pkg/render/minimap
// [instances]: github.com/matzehuels/dungeon/pkg/render/instances
// [tree]: github.com/matzehuels/dungeon/pkg/render/tree
package render
