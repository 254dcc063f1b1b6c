// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/lgbarn/chess-editor-go/internal/config"
	"github.com/lgbarn/chess-editor-go/internal/errors"
	"github.com/lgbarn/chess-editor-go/internal/render"
)

var (
	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	themeName  = flag.String("theme", "", "Render theme: "+strings.Join(render.ThemeNames(), ", "))
	asciiMode  = flag.Bool("ascii", false, "Use piece letters instead of Unicode glyphs")
	noColor    = flag.Bool("nocolor", false, "Disable ANSI colour output")
	noCoords   = flag.Bool("nocoords", false, "Don't draw coordinate labels")

	// Example selection
	exampleNum = flag.Int("example", 0, "Run only example N (0 = all)")

	// Verbosity
	quiet   = flag.Bool("q", false, "Quiet mode: board grids only, no titles")
	verbose = flag.Bool("v", false, "Add commentary on shapes and bounds")

	// Information
	version = flag.Bool("version", false, "Show version and exit")
	help    = flag.Bool("help", false, "Show usage information")
)

// applyFlags applies command-line flags onto the configuration. It
// resolves the output file, checks the theme exists and validates the
// resulting configuration.
func applyFlags(cfg *config.Config) error {
	if *themeName != "" {
		cfg.ThemeName = *themeName
	}
	cfg.ASCII = *asciiMode
	cfg.ShowCoords = !*noCoords

	if *quiet {
		cfg.Verbosity = 0
	}
	if *verbose {
		cfg.Verbosity = 2
	}

	if *exampleNum < 0 || *exampleNum > len(demos()) {
		return errors.Wrapf(errors.ErrInvalidConfig, "example %d out of range 1-%d", *exampleNum, len(demos()))
	}

	if *outputFile != "" {
		f, err := os.Create(*outputFile)
		if err != nil {
			return err
		}
		cfg.Output = f
		// ANSI escapes are noise in a file.
		cfg.UseColor = false
	}
	if *noColor {
		cfg.UseColor = false
	}

	if _, err := render.ImportTheme(cfg.ThemeName); err != nil {
		return err
	}
	return cfg.Validate()
}
