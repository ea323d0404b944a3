package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/dungeon/pkg/dungeon"
	"github.com/matzehuels/dungeon/pkg/pipeline"
	"github.com/matzehuels/dungeon/pkg/render/minimap"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - corridors, warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleRoom     = lipgloss.NewStyle().Foreground(colorCyan)
	styleCorridor = lipgloss.NewStyle().Foreground(colorYellow)
	styleEmpty    = lipgloss.NewStyle().Foreground(colorDim)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
)

// mapGlyphs draws the minimap with block characters.
var mapGlyphs = minimap.Glyphs{Empty: '·', Room: '█', Corridor: '▒'}

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// printNextStep prints a suggested next command.
func printNextStep(w io.Writer, description, cmd string) {
	fmt.Fprintln(w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// =============================================================================
// Dungeon Display
// =============================================================================

// formatStats renders layout statistics on a single dim line.
func formatStats(s pipeline.Stats) string {
	parts := []string{
		fmt.Sprintf("%d rooms", s.Rooms),
		fmt.Sprintf("%d corridors", s.Corridors),
		fmt.Sprintf("%d room tiles", s.RoomTiles),
		fmt.Sprintf("%d corridor tiles", s.CorridorTiles),
	}
	if s.Doorways > 0 {
		parts = append(parts, fmt.Sprintf("%d doorways", s.Doorways))
	}
	parts = append(parts, fmt.Sprintf("%d regions", s.Components))

	styled := make([]string, len(parts))
	for i, p := range parts {
		styled[i] = StyleDim.Render(p)
	}
	return "  " + strings.Join(styled, StyleDim.Render(" · "))
}

// styleCell colours one minimap cell by tile type.
func styleCell(t dungeon.TileType, glyph string) string {
	switch t {
	case dungeon.RoomTile:
		return styleRoom.Render(glyph)
	case dungeon.CorridorTile:
		return styleCorridor.Render(glyph)
	}
	return styleEmpty.Render(glyph)
}

// styledMinimap renders v with the CLI palette, or plain glyphs when plain
// is set.
func styledMinimap(v dungeon.View, plain bool) string {
	if plain {
		return minimap.Render(v, minimap.Options{})
	}
	return minimap.Render(v, minimap.Options{Glyphs: mapGlyphs, Style: styleCell})
}

// legend describes the minimap glyphs.
func legend() string {
	return styleRoom.Render(string(mapGlyphs.Room)) + StyleDim.Render(" room  ") +
		styleCorridor.Render(string(mapGlyphs.Corridor)) + StyleDim.Render(" corridor  ") +
		styleEmpty.Render(string(mapGlyphs.Empty)) + StyleDim.Render(" empty")
}
