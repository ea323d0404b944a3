package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	g := NoopGenerationHooks{}
	g.OnGenerateStart(ctx, 42)
	g.OnStageComplete(ctx, StagePartition, time.Millisecond)
	g.OnGenerateComplete(ctx, 42, 12, 11, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Generation().(NoopGenerationHooks); !ok {
		t.Error("Generation() should return NoopGenerationHooks by default")
	}

	custom := &testGenerationHooks{}
	SetGenerationHooks(custom)
	if Generation() != custom {
		t.Error("SetGenerationHooks should set custom hooks")
	}

	// nil is ignored
	SetGenerationHooks(nil)
	if Generation() != custom {
		t.Error("SetGenerationHooks(nil) should keep existing hooks")
	}

	Reset()
	if _, ok := Generation().(NoopGenerationHooks); !ok {
		t.Error("Reset should restore NoopGenerationHooks")
	}
}

type testGenerationHooks struct {
	stages []string
}

func (h *testGenerationHooks) OnGenerateStart(context.Context, uint64) {}
func (h *testGenerationHooks) OnStageComplete(_ context.Context, stage string, _ time.Duration) {
	h.stages = append(h.stages, stage)
}
func (h *testGenerationHooks) OnGenerateComplete(context.Context, uint64, int, int, time.Duration, error) {
}
