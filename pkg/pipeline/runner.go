package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dungeon/pkg/dungeon"
)

// Runner executes the pipeline.
//
// The Runner holds no results, so multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete generate → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Generate
	genStart := time.Now()
	layout, err := r.Generate(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = layout
	result.Stats = collectStats(layout)
	result.Stats.GenerateTime = time.Since(genStart)

	r.Logger.Info("generated dungeon",
		"seed", opts.Config.Seed,
		"rooms", result.Stats.Rooms,
		"corridors", result.Stats.Corridors,
		"duration", result.Stats.GenerateTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, err := Render(ctx, layout, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Generate builds a layout from opts.Config.
func (r *Runner) Generate(ctx context.Context, opts Options) (*dungeon.Layout, error) {
	r.applyLogger(&opts)
	if opts.Config.Logger == nil {
		opts.Config.Logger = opts.Logger
	}
	return dungeon.Generate(ctx, opts.Config)
}

func collectStats(l *dungeon.Layout) Stats {
	return Stats{
		Rooms:         l.RoomCount(),
		Corridors:     l.CorridorCount(),
		RoomTiles:     l.Grid.Count(dungeon.RoomTile),
		CorridorTiles: l.Grid.Count(dungeon.CorridorTile),
		Doorways:      l.Doorways,
		Components:    l.Components(),
	}
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
