package pipeline

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/dungeon/pkg/dungeon"
	"github.com/matzehuels/dungeon/pkg/errors"
)

func smallConfig() dungeon.Config {
	return dungeon.Config{
		DungeonSize:     3600,
		TileSize:        600,
		SplitIterations: 1,
		MinTilesPerRoom: 2,
		MinRoomRatio:    0.4,
		Seed:            42,
		WallWidth:       10,
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"txt", false},
		{"json", false},
		{"dot", false},
		{"svg", false},
		{"png", true},
		{"TXT", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"txt", "json"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"txt", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"txt", []string{"txt"}},
		{"txt, JSON", []string{"txt", "json"}},
		{"dot,,svg,", []string{"dot", "svg"}},
		{"", nil},
	}
	for _, tt := range tests {
		if got := ParseFormats(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Config: smallConfig()}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Valid options should pass: %v", err)
	}
	if !reflect.DeepEqual(opts.Formats, []string{FormatTXT}) {
		t.Errorf("Formats = %v, want [txt]", opts.Formats)
	}
	if opts.Logger == nil || opts.Config.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}

	// idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second call: %v", err)
	}
}

func TestOptionsValidation(t *testing.T) {
	bad := smallConfig()
	bad.TileSize = 700
	opts := Options{Config: bad}
	if err := opts.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("bad config: error = %v", err)
	}

	opts = Options{Config: smallConfig(), Formats: []string{"pdf"}}
	if err := opts.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("bad format: error = %v", err)
	}
}

func TestExecute(t *testing.T) {
	runner := NewRunner(nil)
	result, err := runner.Execute(context.Background(), Options{
		Config:  smallConfig(),
		Formats: []string{FormatTXT, FormatJSON, FormatDOT},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Stats.Rooms != 2 || result.Stats.Corridors != 1 {
		t.Errorf("stats = %+v", result.Stats)
	}
	if result.Stats.RoomTiles+result.Stats.CorridorTiles >= 36 {
		t.Errorf("occupied tiles = %d", result.Stats.RoomTiles+result.Stats.CorridorTiles)
	}

	txt := string(result.Artifacts[FormatTXT])
	if lines := strings.Split(strings.TrimSuffix(txt, "\n"), "\n"); len(lines) != 6 {
		t.Errorf("minimap lines = %d, want 6:\n%s", len(lines), txt)
	}

	var doc struct {
		Rooms     int `json:"rooms"`
		Corridors int `json:"corridors"`
	}
	if err := json.Unmarshal(result.Artifacts[FormatJSON], &doc); err != nil {
		t.Fatalf("json artifact: %v", err)
	}
	if doc.Rooms != 2 || doc.Corridors != 1 {
		t.Errorf("json = %+v", doc)
	}

	if !strings.HasPrefix(string(result.Artifacts[FormatDOT]), "digraph G {") {
		t.Errorf("dot artifact = %q", result.Artifacts[FormatDOT])
	}
	if _, ok := result.Artifacts[FormatSVG]; ok {
		t.Error("svg was not requested")
	}
}

func TestExecuteInvalid(t *testing.T) {
	runner := NewRunner(nil)
	_, err := runner.Execute(context.Background(), Options{Config: smallConfig(), Formats: []string{"gif"}})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}

func TestExecuteDoorways(t *testing.T) {
	cfg := dungeon.DefaultConfig()
	cfg.OpenDoorways = true

	result, err := NewRunner(nil).Execute(context.Background(), Options{Config: cfg})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Stats.Doorways == 0 || result.Stats.Doorways != result.Layout.Doorways {
		t.Errorf("doorways = %d, layout %d", result.Stats.Doorways, result.Layout.Doorways)
	}
}
