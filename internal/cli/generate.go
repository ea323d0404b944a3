package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dungeon/pkg/errors"
	"github.com/matzehuels/dungeon/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	config  configFlags
	output  string // output base path; empty writes a single format to stdout
	formats string // comma-separated output formats
}

// generateCommand creates the generate command, which runs the full pipeline
// and writes the requested artifacts.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a dungeon and write it in one or more formats",
		Long: `Generate a dungeon layout and write the requested artifacts.

Formats:
  txt   glyph minimap, top row first
  json  mesh instances with world positions, yaw and shade
  dot   partition tree as Graphviz source
  svg   partition tree rendered with Graphviz

With a single format and no --output the artifact is printed to stdout.
Otherwise each format is written to <output>.<format>.`,
		Example: `  dungeon generate --seed 7
  dungeon generate -f json,svg -o maps/level1
  dungeon generate -c dungeon.toml --doorways -f json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config.load(cmd)
			if err != nil {
				return err
			}
			formats := pipeline.ParseFormats(opts.formats)
			if len(formats) == 0 {
				formats = []string{pipeline.FormatTXT}
			}
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), pipeline.Options{Config: cfg, Formats: formats}, opts.output)
		},
	}

	opts.config.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (writes <output>.<format>)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", pipeline.FormatTXT, "output format(s): txt, json, dot, svg (comma-separated)")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, output string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d rooms", result.Stats.Rooms), "seed", opts.Config.Seed)

	if output == "" && len(opts.Formats) == 1 {
		_, err := c.Out.Write(result.Artifacts[opts.Formats[0]])
		return err
	}
	if output == "" {
		return errors.New(errors.ErrCodeInvalidPath, "--output is required when writing %d formats", len(opts.Formats))
	}

	paths, err := writeArtifacts(output, opts.Formats, result.Artifacts)
	if err != nil {
		return err
	}

	printSuccess(c.Out, "Generated dungeon %s", StyleNumber.Render(result.Layout.ID.String()))
	printKeyValue(c.Out, "seed", fmt.Sprint(opts.Config.Seed))
	printKeyValue(c.Out, "grid", fmt.Sprintf("%d×%d tiles", result.Layout.Rows(), result.Layout.Rows()))
	fmt.Fprintln(c.Out, formatStats(result.Stats))
	for _, p := range paths {
		printFile(c.Out, p)
	}
	printNextStep(c.Out, "Browse nearby seeds", fmt.Sprintf("dungeon view --seed %d", opts.Config.Seed))
	return nil
}

// artifactPath returns the file an artifact of format is written to.
// An extension on base that matches the format is not repeated.
func artifactPath(base, format string) string {
	if strings.EqualFold(filepath.Ext(base), "."+format) {
		return base
	}
	return base + "." + format
}

// writeArtifacts writes each format to its artifact path and returns the
// paths in format order.
func writeArtifacts(base string, formats []string, artifacts map[string][]byte) ([]string, error) {
	if err := errors.ValidatePath(base); err != nil {
		return nil, err
	}
	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}

	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := artifactPath(base, format)
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
