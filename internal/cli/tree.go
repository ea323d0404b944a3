package cli

import (
	"bytes"
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dungeon/pkg/dungeon"
	"github.com/matzehuels/dungeon/pkg/errors"
	"github.com/matzehuels/dungeon/pkg/pipeline"
	"github.com/matzehuels/dungeon/pkg/render/tree"
)

// treeOpts holds the command-line flags for the tree command.
type treeOpts struct {
	config configFlags
	format string // txt, dot or svg
	output string
}

// treeCommand creates the tree command, which prints or renders the
// partition tree behind a dungeon.
func (c *CLI) treeCommand() *cobra.Command {
	var opts treeOpts

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show the partition tree of a generated dungeon",
		Long: `Show the binary space partition tree of a generated dungeon.

The txt format prints an indented outline, marking room partitions with '*',
followed by the partition keys in in-order sequence. The dot and svg formats
draw the tree with corridors as dashed edges.`,
		Example: `  dungeon tree --seed 7
  dungeon tree -f svg -o tree.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch opts.format {
			case pipeline.FormatTXT, pipeline.FormatDOT, pipeline.FormatSVG:
			default:
				return errors.New(errors.ErrCodeInvalidFormat, "invalid tree format: %q (must be one of: txt, dot, svg)", opts.format)
			}
			cfg, err := opts.config.load(cmd)
			if err != nil {
				return err
			}
			return c.runTree(cmd.Context(), cfg, &opts)
		},
	}

	opts.config.register(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", pipeline.FormatTXT, "output format: txt, dot, svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func (c *CLI) runTree(ctx context.Context, cfg dungeon.Config, opts *treeOpts) error {
	layout, err := c.newRunner().Generate(ctx, pipeline.Options{Config: cfg})
	if err != nil {
		return err
	}

	var data []byte
	switch opts.format {
	case pipeline.FormatTXT:
		var buf bytes.Buffer
		if err := tree.WriteText(&buf, layout); err != nil {
			return err
		}
		data = buf.Bytes()
	case pipeline.FormatDOT:
		data = []byte(tree.ToDOT(layout))
	case pipeline.FormatSVG:
		if data, err = tree.RenderSVG(ctx, tree.ToDOT(layout)); err != nil {
			return err
		}
	}

	if opts.output == "" {
		_, err := c.Out.Write(data)
		return err
	}
	if err := errors.ValidatePath(opts.output); err != nil {
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", opts.output)
	}
	printSuccess(c.Out, "Wrote partition tree with %d partitions", dungeon.CountPartitions(layout.Root))
	printFile(c.Out, opts.output)
	return nil
}
