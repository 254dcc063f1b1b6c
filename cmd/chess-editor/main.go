// chess-editor displays chessboards of custom shape: cells can exist at
// arbitrary coordinates and some coordinates can be holes, so boards need
// not be rectangular. The binary renders a few example boards and exits;
// there is no interactive input.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-editor-go/internal/config"
	"github.com/lgbarn/chess-editor-go/internal/render"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-editor version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "chess-editor: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "chess-editor: %v\n", err)
		os.Exit(1)
	}
}

// run renders the selected examples to the configured output.
func run(cfg *config.Config) error {
	r, err := render.NewRenderer(cfg)
	if err != nil {
		return err
	}

	for i, d := range demos() {
		if *exampleNum != 0 && *exampleNum != i+1 {
			continue
		}
		b := d.build()

		if cfg.Verbosity >= 1 {
			err = r.RenderTitled(fmt.Sprintf("Example %d: %s", i+1, d.title), b)
		} else {
			err = r.Render(b)
		}
		if err != nil {
			return err
		}

		if cfg.Verbosity >= 2 {
			bounds := b.Bounds()
			if _, err := fmt.Fprintf(cfg.Output, "%s\n%d cells, rows %d-%d, cols %d-%d\n",
				d.commentary, b.CellCount(),
				bounds.MinRow, bounds.MaxRow, bounds.MinCol, bounds.MaxCol); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(cfg.Output); err != nil {
			return err
		}
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "chess-editor version %s\n", programVersion)
	fmt.Fprintf(os.Stderr, "Usage: chess-editor [options]\n\n")
	fmt.Fprintf(os.Stderr, "Renders example chessboards of custom shape.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
