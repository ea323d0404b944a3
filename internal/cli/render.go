package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dungeon/pkg/dungeon"
	"github.com/matzehuels/dungeon/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	config configFlags
	plain  bool // print '#', '+', '.' without colour
	quiet  bool // print the map only
}

// renderCommand creates the render command, which prints a coloured minimap
// of a generated dungeon.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a minimap of a generated dungeon",
		Example: `  dungeon render --seed 3
  dungeon render -i 3 --size 12000 --plain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config.load(cmd)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cfg, &opts)
		},
	}

	opts.config.register(cmd)
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "plain ASCII glyphs without colour")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "print the map only")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, cfg dungeon.Config, opts *renderOpts) error {
	result, err := c.newRunner().Execute(ctx, pipeline.Options{Config: cfg, Formats: []string{pipeline.FormatTXT}})
	if err != nil {
		return err
	}

	if !opts.quiet {
		printInfo(c.Out, "seed %s  %s", StyleNumber.Render(fmt.Sprint(cfg.Seed)), StyleDim.Render(result.Layout.ID.String()))
	}
	fmt.Fprint(c.Out, styledMinimap(result.Layout, opts.plain))
	if !opts.quiet {
		if !opts.plain {
			fmt.Fprintln(c.Out, legend())
		}
		fmt.Fprintln(c.Out, formatStats(result.Stats))
	}
	return nil
}
