package tree

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/dungeon/pkg/dungeon"
	"github.com/matzehuels/dungeon/pkg/random"
)

// scripted builds the 3600-unit layout split once vertically at two tiles.
func scripted(t *testing.T) *dungeon.Layout {
	t.Helper()
	cfg := dungeon.Config{
		DungeonSize:     3600,
		TileSize:        600,
		SplitIterations: 1,
		MinTilesPerRoom: 2,
		MinRoomRatio:    0.4,
		Random:          random.NewScript(0, 2, 3, 3),
	}
	l, err := dungeon.Generate(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return l
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(scripted(t))

	for _, want := range []string{
		"digraph G {",
		`p0 [label="0\n(0,0 3600x3600)"];`,
		"p1 [label=",
		"p2 [label=",
		"p0 -> p1;",
		"p0 -> p2;",
		`p1 -> p2 [style=dashed, dir=none, constraint=false, label="c1"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Count(dot, "fillcolor=lightgrey") != 2 {
		t.Errorf("expected two room nodes:\n%s", dot)
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, scripted(t)); err != nil {
		t.Fatalf("WriteText: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %q", lines)
	}
	if lines[0] != "0 (0,0 3600x3600)" {
		t.Errorf("root line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  1 ") || !strings.HasSuffix(lines[1], " *") {
		t.Errorf("left line = %q", lines[1])
	}
	if lines[3] != "in-order: 1 0 2" {
		t.Errorf("in-order line = %q", lines[3])
	}
}
