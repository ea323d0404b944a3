// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about dungeon generation.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGenerationHooks(&myGenerationHooks{})
//	    // ... run application
//	}
//
// The generator calls hooks to emit events:
//
//	observability.Generation().OnGenerateStart(ctx, seed)
//	// ... partition, rasterize, derive walls ...
//	observability.Generation().OnGenerateComplete(ctx, seed, rooms, corridors, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// Stage names reported through OnStageComplete.
const (
	StagePartition = "partition"
	StageSelect    = "select"
	StageShrink    = "shrink"
	StageRasterize = "rasterize"
	StageWalls     = "walls"
	StageDoorways  = "doorways"
)

// =============================================================================
// Generation Hooks
// =============================================================================

// GenerationHooks receives events from the dungeon generator.
type GenerationHooks interface {
	// OnGenerateStart is called after the configuration validated.
	OnGenerateStart(ctx context.Context, seed uint64)

	// OnStageComplete is called once per pipeline stage.
	OnStageComplete(ctx context.Context, stage string, duration time.Duration)

	// OnGenerateComplete is called when generation finishes or fails.
	OnGenerateComplete(ctx context.Context, seed uint64, rooms, corridors int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGenerationHooks is a no-op implementation of GenerationHooks.
type NoopGenerationHooks struct{}

func (NoopGenerationHooks) OnGenerateStart(context.Context, uint64)                  {}
func (NoopGenerationHooks) OnStageComplete(context.Context, string, time.Duration) {}
func (NoopGenerationHooks) OnGenerateComplete(context.Context, uint64, int, int, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	generationHooks GenerationHooks = NoopGenerationHooks{}
	hooksMu         sync.RWMutex
)

// SetGenerationHooks registers custom generation hooks.
// This should be called once at application startup before any generation.
func SetGenerationHooks(h GenerationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		generationHooks = h
	}
}

// Generation returns the registered generation hooks.
func Generation() GenerationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return generationHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	generationHooks = NoopGenerationHooks{}
}
