// internal/tui/theme.go
//
// Board colour themes for the terminal renderer.
// Responsibilities:
//   - Theme: square, outline, piece and label colours.
//   - ThemeClassic: true-colour brown board with green destination and red
//     check outlines.
//   - ThemeBasic: the same board restricted to the xterm 256 palette.

package tui

import "github.com/gdamore/tcell/v2"

// Theme colours the board.
type Theme struct {
	Name        string
	SquareLight tcell.Color
	SquareDark  tcell.Color
	Highlight   tcell.Color // outline of a selectable destination
	Check       tcell.Color // outline of a king in check
	White       tcell.Color
	Black       tcell.Color
	Label       tcell.Color // rank and file labels
	Msg         tcell.Color
}

// ThemeClassic uses brown squares with green destination and red check outlines.
var ThemeClassic = Theme{
	Name:        "classic",
	SquareLight: tcell.NewRGBColor(240, 217, 181),
	SquareDark:  tcell.NewRGBColor(181, 136, 99),
	Highlight:   tcell.NewRGBColor(0, 255, 0),
	Check:       tcell.NewRGBColor(255, 0, 0),
	White:       tcell.NewRGBColor(255, 255, 255),
	Black:       tcell.NewRGBColor(0, 0, 0),
	Label:       tcell.Color247,
	Msg:         tcell.Color160,
}

// ThemeBasic sticks to the xterm 256 palette for terminals without true colour.
var ThemeBasic = Theme{
	Name:        "basic",
	SquareLight: tcell.Color230,
	SquareDark:  tcell.Color137,
	Highlight:   tcell.Color46,
	Check:       tcell.Color196,
	White:       tcell.Color231,
	Black:       tcell.Color232,
	Label:       tcell.Color247,
	Msg:         tcell.Color160,
}

// ThemeByName returns the named theme, falling back to ThemeClassic.
func ThemeByName(name string) Theme {
	if name == ThemeBasic.Name {
		return ThemeBasic
	}
	return ThemeClassic
}
