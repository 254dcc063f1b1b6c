package render

import (
	"github.com/fatih/color"

	"github.com/lgbarn/chess-editor-go/internal/errors"
)

// Theme groups the colour attributes used to draw a board: the two square
// backgrounds of the checkerboard, the hole marker, the coordinate labels
// and the title line.
type Theme struct {
	Name string

	Light *color.Color
	Dark  *color.Color
	Hole  *color.Color
	Label *color.Color
	Title *color.Color
}

// themes holds the built-in themes by name.
var themes = map[string]func() *Theme{
	"basic": basicTheme,
	"mono":  monoTheme,
}

// basicTheme is the default look: tan and green squares in the manner of
// a wooden board.
func basicTheme() *Theme {
	return &Theme{
		Name:  "basic",
		Light: color.New(color.FgBlack, color.BgHiYellow),
		Dark:  color.New(color.FgBlack, color.BgGreen),
		Hole:  color.New(color.FgHiBlack),
		Label: color.New(color.FgCyan),
		Title: color.New(color.FgHiWhite, color.Bold),
	}
}

// monoTheme renders without colour attributes; every field still styles
// through the same path so the renderer needs no special case.
func monoTheme() *Theme {
	t := &Theme{
		Name:  "mono",
		Light: color.New(),
		Dark:  color.New(),
		Hole:  color.New(),
		Label: color.New(),
		Title: color.New(),
	}
	t.disableColor()
	return t
}

// ImportTheme returns a fresh copy of the named built-in theme. It
// returns a wrapped errors.ErrUnknownTheme if no theme has that name.
func ImportTheme(name string) (*Theme, error) {
	build, ok := themes[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownTheme, "%q", name)
	}
	return build(), nil
}

// ThemeNames returns the names of the built-in themes, in no particular
// order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	return names
}

// disableColor strips ANSI output from every attribute, leaving plain
// text. Used when the destination is not a terminal.
func (t *Theme) disableColor() {
	for _, c := range []*color.Color{t.Light, t.Dark, t.Hole, t.Label, t.Title} {
		c.DisableColor()
	}
}
