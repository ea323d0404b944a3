package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/dungeon/pkg/dungeon"
	"github.com/matzehuels/dungeon/pkg/render/instances"
	"github.com/matzehuels/dungeon/pkg/render/minimap"
	"github.com/matzehuels/dungeon/pkg/render/tree"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, l *dungeon.Layout, opts Options) (map[string][]byte, error) {
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte)
	var dot string

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatTXT:
			data = []byte(minimap.Render(l, minimap.Options{}))
		case FormatJSON:
			data, err = instances.RenderJSON(instances.Build(l, l.Config.WallWidth))
		case FormatDOT, FormatSVG:
			if dot == "" {
				dot = tree.ToDOT(l)
			}
			if format == FormatDOT {
				data = []byte(dot)
			} else {
				data, err = tree.RenderSVG(ctx, dot)
			}
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
