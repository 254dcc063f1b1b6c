package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lgbarn/chess-editor-go/internal/config"
	apperr "github.com/lgbarn/chess-editor-go/internal/errors"
)

// resetFlags restores every flag variable to its default after a test.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		*outputFile = ""
		*themeName = ""
		*asciiMode = false
		*noColor = false
		*noCoords = false
		*exampleNum = 0
		*quiet = false
		*verbose = false
	})
}

func TestApplyFlags_Defaults(t *testing.T) {
	resetFlags(t)

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		t.Fatalf("applyFlags() error = %v", err)
	}

	if cfg.ThemeName != "basic" {
		t.Errorf("ThemeName = %q; want %q", cfg.ThemeName, "basic")
	}
	if cfg.ASCII {
		t.Error("ASCII = true; want false")
	}
	if !cfg.ShowCoords {
		t.Error("ShowCoords = false; want true")
	}
	if !cfg.UseColor {
		t.Error("UseColor = false; want true")
	}
	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d; want 1", cfg.Verbosity)
	}
}

func TestApplyFlags_DisplayOptions(t *testing.T) {
	resetFlags(t)
	*themeName = "mono"
	*asciiMode = true
	*noColor = true
	*noCoords = true

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		t.Fatalf("applyFlags() error = %v", err)
	}

	if cfg.ThemeName != "mono" {
		t.Errorf("ThemeName = %q; want %q", cfg.ThemeName, "mono")
	}
	if !cfg.ASCII {
		t.Error("ASCII = false; want true")
	}
	if cfg.ShowCoords {
		t.Error("ShowCoords = true; want false")
	}
	if cfg.UseColor {
		t.Error("UseColor = true; want false")
	}
}

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		want    int
	}{
		{"default", false, false, 1},
		{"quiet", true, false, 0},
		{"verbose", false, true, 2},
		{"verbose wins over quiet", true, true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			*quiet = tt.quiet
			*verbose = tt.verbose

			cfg := config.NewConfig()
			if err := applyFlags(cfg); err != nil {
				t.Fatalf("applyFlags() error = %v", err)
			}
			if cfg.Verbosity != tt.want {
				t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, tt.want)
			}
		})
	}
}

func TestApplyFlags_UnknownTheme(t *testing.T) {
	resetFlags(t)
	*themeName = "neon"

	cfg := config.NewConfig()
	err := applyFlags(cfg)
	if !errors.Is(err, apperr.ErrUnknownTheme) {
		t.Errorf("applyFlags() error = %v; want ErrUnknownTheme", err)
	}
}

func TestApplyFlags_ExampleOutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		example int
		wantErr bool
	}{
		{"all", 0, false},
		{"first", 1, false},
		{"last", 3, false},
		{"negative", -1, true},
		{"too high", 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			*exampleNum = tt.example

			cfg := config.NewConfig()
			err := applyFlags(cfg)
			if tt.wantErr {
				if !errors.Is(err, apperr.ErrInvalidConfig) {
					t.Errorf("applyFlags() error = %v; want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Errorf("applyFlags() error = %v; want nil", err)
			}
		})
	}
}

func TestApplyFlags_OutputFile(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "out.txt")
	*outputFile = path

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		t.Fatalf("applyFlags() error = %v", err)
	}
	t.Cleanup(func() {
		if f, ok := cfg.Output.(*os.File); ok {
			f.Close()
		}
	})

	if cfg.Output == os.Stdout {
		t.Error("Output still os.Stdout; want the opened file")
	}
	if cfg.UseColor {
		t.Error("UseColor = true; want false when writing to a file")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output file not created: %v", err)
	}
}
