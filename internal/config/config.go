// Package config provides configuration for the chess-editor demo. The
// board model itself consumes no configuration; these settings feed the
// renderer and the command-line binary only.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/chess-editor-go/internal/errors"
)

// Config holds the editor's display configuration.
type Config struct {
	// Output is the destination for rendered boards.
	Output io.Writer

	// ThemeName selects the render theme by name.
	ThemeName string

	// UseColor enables ANSI colour output. Disable when writing to a
	// file or a pipe.
	UseColor bool

	// ASCII substitutes piece letters for the Unicode glyphs.
	ASCII bool

	// ShowCoords enables row and column labels around the grid.
	ShowCoords bool

	// Verbosity controls diagnostic output:
	// 0=nothing, 1=titles, 2=running commentary.
	Verbosity int
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Output:     os.Stdout,
		ThemeName:  "basic",
		UseColor:   true,
		ShowCoords: true,
		Verbosity:  1,
	}
}

// Validate reports whether the configuration is usable. Theme names are
// not checked here; the renderer resolves them at construction.
func (c *Config) Validate() error {
	if c.Output == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "nil output writer")
	}
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d out of range 0-2", c.Verbosity)
	}
	return nil
}
