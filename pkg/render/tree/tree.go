// Package tree renders the binary space partition behind a dungeon layout.
//
// [WriteText] prints an indented outline of the tree followed by its
// in-order key sequence. [ToDOT] produces Graphviz DOT source where room
// partitions are filled and corridors appear as dashed edges between the
// partitions they join; [RenderSVG] renders that source in-process.
//
//	dot := tree.ToDOT(layout)
//	svg, err := tree.RenderSVG(ctx, dot)
package tree

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/dungeon/pkg/dungeon"
)

// WriteText writes an indented pre-order outline of the partition tree.
// Room partitions are marked with '*'.
func WriteText(w io.Writer, l *dungeon.Layout) error {
	rooms := roomKeys(l)
	var err error
	dungeon.Walk(l.Root, func(p *dungeon.SpacePartition, depth int) {
		if err != nil {
			return
		}
		mark := ""
		if rooms[p.Key] {
			mark = " *"
		}
		_, err = fmt.Fprintf(w, "%s%d %s%s\n", strings.Repeat("  ", depth), p.Key, p.Rect, mark)
	})
	if err != nil {
		return err
	}

	keys := dungeon.InOrderKeys(l.Root)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprint(k)
	}
	_, err = fmt.Fprintf(w, "in-order: %s\n", strings.Join(parts, " "))
	return err
}

// ToDOT converts the partition tree of l to Graphviz DOT format.
func ToDOT(l *dungeon.Layout) string {
	rooms := roomKeys(l)

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	dungeon.Walk(l.Root, func(p *dungeon.SpacePartition, _ int) {
		attrs := []string{fmt.Sprintf("label=%q", fmt.Sprintf("%d\n%s", p.Key, p.Rect))}
		if rooms[p.Key] {
			attrs = append(attrs, "fillcolor=lightgrey")
		}
		fmt.Fprintf(&buf, "  p%d [%s];\n", p.Key, strings.Join(attrs, ", "))
	})

	buf.WriteString("\n")
	dungeon.Walk(l.Root, func(p *dungeon.SpacePartition, _ int) {
		for _, child := range []*dungeon.SpacePartition{p.Near, p.Far} {
			if child != nil {
				fmt.Fprintf(&buf, "  p%d -> p%d;\n", p.Key, child.Key)
			}
		}
	})

	for _, c := range l.Corridors {
		fmt.Fprintf(&buf, "  p%d -> p%d [style=dashed, dir=none, constraint=false, label=\"c%d\"];\n",
			c.From, c.To, c.ID)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func roomKeys(l *dungeon.Layout) map[int]bool {
	keys := make(map[int]bool, len(l.Rooms))
	for _, r := range l.Rooms {
		keys[r.Key] = true
	}
	return keys
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
