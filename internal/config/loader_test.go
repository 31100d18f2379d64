package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := parse(DefaultYAML(), "embedded")
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	want := Default()
	want.Source = "embedded"
	if cfg != want {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, want)
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "board:\n  rows: 8\n  cols: 12\ntiming:\n  steps_per_second: 4\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Rows != 8 || cfg.Board.Cols != 12 {
		t.Errorf("board = %dx%d, expected 8x12", cfg.Board.Rows, cfg.Board.Cols)
	}
	if cfg.Timing.StepsPerSecond != 4 {
		t.Errorf("steps_per_second = %d, expected 4", cfg.Timing.StepsPerSecond)
	}
	// Untouched sections keep defaults
	if cfg.Snake.Direction != "down" || cfg.Snake.StartCol != 1 {
		t.Errorf("snake section should keep defaults, got %+v", cfg.Snake)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, expected %q", cfg.Source, path)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		create  bool
		errPart string
	}{
		{"missing file", "", false, "failed to read"},
		{"bad yaml", "board: [1, 2", true, "failed to parse"},
		{"zero rows", "board:\n  rows: 0\n", true, "board must be"},
		{"start outside", "snake:\n  start_col: 99\n", true, "outside"},
		{"bad direction", "snake:\n  direction: sideways\n", true, "unknown snake direction"},
		{"zero speed", "timing:\n  steps_per_second: 0\n", true, "steps_per_second"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if tc.create {
				writeFile(t, path, tc.content)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.errPart) {
				t.Errorf("error %q should mention %q", err, tc.errPart)
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	// Nothing on disk: embedded defaults
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Source != "embedded" {
		t.Errorf("Source = %q, expected embedded", cfg.Source)
	}

	// Local configs directory wins over embedded
	writeFile(t, filepath.Join("configs", "snek.yaml"), "board:\n  rows: 5\n  cols: 5\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Rows != 5 {
		t.Errorf("expected local config, got %+v (source %s)", cfg.Board, cfg.Source)
	}

	// User config wins over local
	writeFile(t, filepath.Join(home, ".snek", "config.yaml"), "board:\n  rows: 7\n  cols: 7\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Rows != 7 {
		t.Errorf("expected user config, got %+v (source %s)", cfg.Board, cfg.Source)
	}
}

func TestLoadSkipsInvalidUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	writeFile(t, filepath.Join(home, ".snek", "config.yaml"), "board:\n  rows: -1\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() should fall back, got %v", err)
	}
	if cfg.Source != "embedded" {
		t.Errorf("invalid user config should be skipped, got source %q", cfg.Source)
	}
}
