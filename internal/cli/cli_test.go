package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/dungeon/pkg/dungeon"
	"github.com/matzehuels/dungeon/pkg/errors"
	"github.com/matzehuels/dungeon/pkg/pipeline"
)

// small is the flag set for a 6×6 tile dungeon split once.
var small = []string{"--size", "3600", "--tile", "600", "-i", "1", "--seed", "5"}

// execute runs the CLI with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	c := &CLI{Logger: newLogger(io.Discard, log.InfoLevel), Out: &out}
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommandSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"generate", "render", "tree", "view", "config", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := configDir()
	if err != nil {
		t.Fatalf("configDir() error: %v", err)
	}
	if want := filepath.Join(dir, appName); got != want {
		t.Errorf("configDir() = %q, want %q", got, want)
	}

	if _, ok := defaultConfigPath(); ok {
		t.Error("no config file should be found in an empty directory")
	}
	if err := os.MkdirAll(got, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(got, configFileName), []byte("seed = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if path, ok := defaultConfigPath(); !ok || filepath.Base(path) != configFileName {
		t.Errorf("defaultConfigPath() = %q, %v", path, ok)
	}
}

func TestGenerateStdout(t *testing.T) {
	out, err := execute(t, append([]string{"generate"}, small...)...)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("minimap has %d lines, want 6:\n%s", len(lines), out)
	}
	for _, line := range lines {
		if len(line) != 6 || strings.Trim(line, ".#+") != "" {
			t.Errorf("unexpected minimap line %q", line)
		}
	}
}

func TestGenerateFiles(t *testing.T) {
	base := filepath.Join(t.TempDir(), "maps", "level")
	args := append([]string{"generate", "-f", "txt,json,dot", "-o", base}, small...)
	out, err := execute(t, args...)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	for _, ext := range []string{".txt", ".json", ".dot"} {
		data, err := os.ReadFile(base + ext)
		if err != nil {
			t.Errorf("missing %s: %v", ext, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", ext)
		}
		if !strings.Contains(out, base+ext) {
			t.Errorf("output does not list %s", base+ext)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"bad format", []string{"generate", "-f", "png"}, errors.ErrCodeInvalidFormat},
		{"bad tile size", []string{"generate", "--tile", "700"}, errors.ErrCodeInvalidConfig},
		{"many formats without output", append([]string{"generate", "-f", "txt,json"}, small...), errors.ErrCodeInvalidPath},
		{"bad config file", []string{"generate", "-c", "dungeon.yaml"}, errors.ErrCodeInvalidPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestConfigFileWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.toml")
	data := "dungeon_size = 3600\ntile_size = 600\nsplit_iterations = 1\nseed = 11\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "config", "-c", path, "--seed", "12")
	if err != nil {
		t.Fatalf("config: %v", err)
	}

	cfg, err := dungeon.ParseConfig([]byte(out))
	if err != nil {
		t.Fatalf("printed config does not parse: %v\n%s", err, out)
	}
	if cfg.DungeonSize != 3600 || cfg.SplitIterations != 1 {
		t.Errorf("file values lost: %+v", cfg)
	}
	if cfg.Seed != 12 {
		t.Errorf("seed = %d, want the flag value 12", cfg.Seed)
	}
}

func TestConfigSave(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	var out bytes.Buffer
	c := &CLI{Logger: newLogger(io.Discard, log.InfoLevel), Out: &out}
	root := c.RootCommand()
	root.SetArgs([]string{"config", "--seed", "99", "--save"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("config --save: %v", err)
	}

	cfg, err := dungeon.LoadConfigFile(filepath.Join(dir, appName, configFileName))
	if err != nil {
		t.Fatalf("load saved config: %v", err)
	}
	if cfg.Seed != 99 {
		t.Errorf("saved seed = %d, want 99", cfg.Seed)
	}
}

func TestTreeText(t *testing.T) {
	out, err := execute(t, append([]string{"tree"}, small...)...)
	if err != nil {
		t.Fatalf("tree: %v", err)
	}
	if !strings.HasPrefix(out, "0 (0,0 3600x3600)\n") {
		t.Errorf("tree should start with the root:\n%s", out)
	}
	if !strings.Contains(out, "in-order: 1 0 2") {
		t.Errorf("tree should end with the in-order keys:\n%s", out)
	}
}

func TestTreeDOTFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.dot")
	if _, err := execute(t, append([]string{"tree", "-f", "dot", "-o", path}, small...)...); err != nil {
		t.Fatalf("tree: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "digraph G {") {
		t.Errorf("tree.dot = %q", data)
	}

	if _, err := execute(t, "tree", "-f", "json"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("json tree: error = %v", err)
	}
}

func TestRenderPlain(t *testing.T) {
	out, err := execute(t, append([]string{"render", "--plain", "-q"}, small...)...)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if n := strings.Count(out, "\n"); n != 6 {
		t.Errorf("quiet render printed %d lines, want 6:\n%s", n, out)
	}
}

func TestArtifactPath(t *testing.T) {
	tests := []struct {
		base, format, want string
	}{
		{"out/level", "json", "out/level.json"},
		{"out/level.json", "json", "out/level.json"},
		{"out/level.JSON", "json", "out/level.JSON"},
		{"out/level.txt", "json", "out/level.txt.json"},
	}
	for _, tt := range tests {
		if got := artifactPath(tt.base, tt.format); got != tt.want {
			t.Errorf("artifactPath(%q, %q) = %q, want %q", tt.base, tt.format, got, tt.want)
		}
	}
}

func TestFormatStats(t *testing.T) {
	got := formatStats(pipeline.Stats{Rooms: 2, Corridors: 1, RoomTiles: 8, CorridorTiles: 3, Components: 3})
	for _, want := range []string{"2 rooms", "1 corridors", "8 room tiles", "3 corridor tiles", "3 regions"} {
		if !strings.Contains(got, want) {
			t.Errorf("formatStats missing %q: %q", want, got)
		}
	}
	if strings.Contains(got, "doorways") {
		t.Error("doorways should be omitted when none were opened")
	}
}

func TestViewModel(t *testing.T) {
	cfg := dungeon.Config{
		DungeonSize:     3600,
		TileSize:        600,
		SplitIterations: 1,
		MinTilesPerRoom: 2,
		MinRoomRatio:    0.4,
		Seed:            1,
	}
	runner := pipeline.NewRunner(log.New(io.Discard))
	m := newViewModel(context.Background(), runner, cfg)
	if m.err != nil || m.result == nil {
		t.Fatalf("initial generation failed: %v", m.err)
	}

	press := func(m viewModel, key string) viewModel {
		t.Helper()
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
		return next.(viewModel)
	}

	m = press(m, "n")
	if m.cfg.Seed != 2 {
		t.Errorf("seed after next = %d, want 2", m.cfg.Seed)
	}
	m = press(press(m, "p"), "p")
	if m.cfg.Seed != 0 {
		t.Errorf("seed after two previous = %d, want 0", m.cfg.Seed)
	}
	m = press(m, "p")
	if m.cfg.Seed != 0 {
		t.Error("seed should not wrap below zero")
	}
	m = press(m, "d")
	if !m.cfg.OpenDoorways || !m.result.Layout.Config.OpenDoorways {
		t.Error("d should toggle doorways and regenerate")
	}

	if view := m.View(); !strings.Contains(view, "seed 0") || !strings.Contains(view, "doorways") {
		t.Errorf("view header missing state:\n%s", view)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("q should quit")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"interrupted", fmt.Errorf("generate: %w", context.Canceled), 130},
		{"bad config", fmt.Errorf("generate: %w", errors.Config("tile size must be positive")), 2},
		{"bad format", errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", "png"), 2},
		{"bad path", errors.New(errors.ErrCodeInvalidPath, "empty path"), 2},
		{"broken invariant", errors.Invariant("corridor 1 is not axis aligned"), 1},
		{"plain error", fmt.Errorf("disk full"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
