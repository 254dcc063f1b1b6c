// Package render draws a board as a styled text grid. It consumes the
// board model through the read-only BoardView interface and never
// mutates it.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lgbarn/chess-editor-go/internal/board"
	"github.com/lgbarn/chess-editor-go/internal/config"
)

// holeGlyph marks a coordinate with no cell.
const holeGlyph = "·"

// BoardView is the read-only access a renderer needs. *board.Board
// satisfies it.
type BoardView interface {
	CellExists(row, col int) bool
	GetPiece(row, col int) *board.Piece
	Bounds() board.Bounds
	AllCells() []board.Coord
	CellCount() int
}

// Renderer writes boards to a destination with a fixed theme and layout
// options.
type Renderer struct {
	out    io.Writer
	theme  *Theme
	ascii  bool
	coords bool
}

// NewRenderer builds a renderer from the configuration. It resolves the
// configured theme name and returns the theme lookup or validation error
// unchanged.
func NewRenderer(cfg *config.Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	theme, err := ImportTheme(cfg.ThemeName)
	if err != nil {
		return nil, err
	}
	if !cfg.UseColor {
		theme.disableColor()
	}
	return &Renderer{
		out:    cfg.Output,
		theme:  theme,
		ascii:  cfg.ASCII,
		coords: cfg.ShowCoords,
	}, nil
}

// Render writes the board grid to the destination. A board with no cells
// renders as the single line "Empty board". The only failure mode is a
// write error on the destination.
func (r *Renderer) Render(view BoardView) error {
	var sb strings.Builder
	r.renderTo(&sb, view)
	_, err := io.WriteString(r.out, sb.String())
	return err
}

// RenderTitled writes a title line followed by the board grid.
func (r *Renderer) RenderTitled(title string, view BoardView) error {
	var sb strings.Builder
	sb.WriteString(r.theme.Title.Sprint(title))
	sb.WriteString("\n")
	r.renderTo(&sb, view)
	_, err := io.WriteString(r.out, sb.String())
	return err
}

// renderTo builds the whole grid in memory so a write error cannot leave
// a half-drawn board behind.
func (r *Renderer) renderTo(sb *strings.Builder, view BoardView) {
	if view.CellCount() == 0 {
		sb.WriteString(r.theme.Title.Sprint("Empty board"))
		sb.WriteString("\n")
		return
	}

	bounds := view.Bounds()
	cellWidth, rowWidth := r.widths(bounds)

	if r.coords {
		sb.WriteString(strings.Repeat(" ", rowWidth))
		for col := bounds.MinCol; col <= bounds.MaxCol; col++ {
			sb.WriteString(r.theme.Label.Sprint(pad(columnLabel(col), cellWidth)))
		}
		sb.WriteString("\n")
	}

	for row := bounds.MinRow; row <= bounds.MaxRow; row++ {
		if r.coords {
			sb.WriteString(r.theme.Label.Sprint(fmt.Sprintf("%*d", rowWidth, row)))
		}
		for col := bounds.MinCol; col <= bounds.MaxCol; col++ {
			sb.WriteString(r.cell(view, row, col, cellWidth))
		}
		sb.WriteString("\n")
	}
}

// cell styles a single grid position: the hole marker for absent cells,
// otherwise the occupant (or a blank) on the checkerboard background.
func (r *Renderer) cell(view BoardView, row, col, width int) string {
	if !view.CellExists(row, col) {
		return r.theme.Hole.Sprint(pad(holeGlyph, width))
	}
	text := " "
	if p := view.GetPiece(row, col); p != nil {
		if r.ascii {
			text = string(p.Letter())
		} else {
			text = p.Symbol()
		}
	}
	square := r.theme.Dark
	if (row+col)%2 == 0 {
		square = r.theme.Light
	}
	return square.Sprint(pad(text, width))
}

// widths derives the cell and row-label widths for the bounds. Cells are
// wide enough for the longest column label plus a space of breathing
// room on each side.
func (r *Renderer) widths(bounds board.Bounds) (cellWidth, rowWidth int) {
	labelWidth := 1
	for col := bounds.MinCol; col <= bounds.MaxCol; col++ {
		if n := utf8.RuneCountInString(columnLabel(col)); n > labelWidth {
			labelWidth = n
		}
	}
	cellWidth = labelWidth + 2
	for _, row := range []int{bounds.MinRow, bounds.MaxRow} {
		if n := len(strconv.Itoa(row)); n > rowWidth {
			rowWidth = n
		}
	}
	return cellWidth, rowWidth
}

// columnLabel names a column: letters for the first 26 columns, the
// decimal number for anything wider or negative.
func columnLabel(col int) string {
	if col >= 0 && col <= 25 {
		return string(rune('a' + col))
	}
	return strconv.Itoa(col)
}

// pad centres text in a field of the given width, measured in runes.
// Text wider than the field is returned as is.
func pad(text string, width int) string {
	n := utf8.RuneCountInString(text)
	if n >= width {
		return text
	}
	left := (width - n) / 2
	right := width - n - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}
