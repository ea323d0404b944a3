package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dungeon/pkg/dungeon"
	"github.com/matzehuels/dungeon/pkg/errors"
	"github.com/matzehuels/dungeon/pkg/pipeline"
)

// viewCommand creates the view command, an interactive minimap browser that
// regenerates the dungeon as the seed changes.
func (c *CLI) viewCommand() *cobra.Command {
	var flags configFlags

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse dungeons interactively",
		Long: `Browse generated dungeons in the terminal.

Keys:
  n, →   next seed
  p, ←   previous seed
  d      toggle doorways
  q      quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			// Keep generation logs from drawing over the map.
			quiet := log.New(io.Discard)
			cfg.Logger = quiet

			m := newViewModel(cmd.Context(), pipeline.NewRunner(quiet), cfg)
			final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "run viewer")
			}
			if vm, ok := final.(viewModel); ok && vm.err != nil {
				printError(c.Out, "%s", errors.UserMessage(vm.err))
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// =============================================================================
// viewModel - Interactive dungeon browser
// =============================================================================

// viewModel is the bubbletea model for the dungeon browser.
type viewModel struct {
	ctx    context.Context
	runner *pipeline.Runner
	cfg    dungeon.Config
	result *pipeline.Result
	err    error
}

func newViewModel(ctx context.Context, runner *pipeline.Runner, cfg dungeon.Config) viewModel {
	m := viewModel{ctx: ctx, runner: runner, cfg: cfg}
	m.regenerate()
	return m
}

// regenerate rebuilds the layout for the current configuration.
func (m *viewModel) regenerate() {
	m.result, m.err = m.runner.Execute(m.ctx, pipeline.Options{
		Config:  m.cfg,
		Formats: []string{pipeline.FormatTXT},
	})
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "n", "right", "l":
		m.cfg.Seed++
	case "p", "left", "h":
		if m.cfg.Seed == 0 {
			return m, nil
		}
		m.cfg.Seed--
	case "d":
		m.cfg.OpenDoorways = !m.cfg.OpenDoorways
	default:
		return m, nil
	}
	m.regenerate()
	return m, nil
}

func (m viewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Dungeon"))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  seed %d", m.cfg.Seed)))
	if m.cfg.OpenDoorways {
		b.WriteString(StyleDim.Render("  doorways"))
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("n/p seed  d doorways  q quit"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(errors.UserMessage(m.err)))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(styledMinimap(m.result.Layout, false))
	b.WriteString(legend())
	b.WriteString("\n")
	b.WriteString(formatStats(m.result.Stats))
	b.WriteString("\n")
	return b.String()
}
