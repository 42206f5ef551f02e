// internal/tui/render.go
//
// Terminal board renderer.
// Responsibilities:
//   - Layout: square size and placement, and the cell-to-square mapping.
//   - Render: squares, pieces, outlines, labels and the status line.
//   - StatusMessage: the line shown after illegal moves and game end.

// Package tui draws a game snapshot on a tcell screen and maps mouse
// positions back to board squares.
package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/chess/internal/chess"
	"github.com/robalobadob/chess/internal/game"
)

// Layout places the board on the screen. Each square is SquareW columns
// by SquareH rows of terminal cells.
type Layout struct {
	Left, Top        int
	SquareW, SquareH int
}

// DefaultLayout leaves room for the rank labels and the status line.
var DefaultLayout = Layout{Left: 3, Top: 2, SquareW: 6, SquareH: 3}

// SquareAt converts a terminal cell to a board square.
// Cells outside the board report false.
func (l Layout) SquareAt(x, y int) (chess.Square, bool) {
	if x < l.Left || y < l.Top || l.SquareW <= 0 || l.SquareH <= 0 {
		return chess.Square{}, false
	}
	sq := chess.Sq((y-l.Top)/l.SquareH, (x-l.Left)/l.SquareW)
	return sq, sq.OnBoard()
}

// Origin returns the top-left cell of sq.
func (l Layout) Origin(sq chess.Square) (x, y int) {
	return l.Left + sq.Col*l.SquareW, l.Top + sq.Row*l.SquareH
}

// Size returns the width and height of the board in cells.
func (l Layout) Size() (w, h int) {
	return chess.Size * l.SquareW, chess.Size * l.SquareH
}

var glyphs = map[string]rune{
	"K": '♚', "Q": '♛', "R": '♜', "B": '♝', "N": '♞', "P": '♟',
}

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// squareBg returns the theme's colour for the square.
func squareBg(sq chess.Square, t Theme) tcell.Color {
	if (sq.Row+sq.Col)%2 == 0 {
		return t.SquareLight
	}
	return t.SquareDark
}

// drawSquare fills one square, draws its outline if any, and centres the piece.
func drawSquare(s tcell.Screen, l Layout, sq chess.Square, symbol string, outline tcell.Color, hasOutline bool, t Theme) {
	x0, y0 := l.Origin(sq)
	bg := squareBg(sq, t)
	for dy := 0; dy < l.SquareH; dy++ {
		for dx := 0; dx < l.SquareW; dx++ {
			cellBg := bg
			edge := dy == 0 || dy == l.SquareH-1 || dx == 0 || dx == l.SquareW-1
			if hasOutline && edge {
				cellBg = outline
			}
			s.SetContent(x0+dx, y0+dy, ' ', nil, tcell.StyleDefault.Background(cellBg))
		}
	}
	if symbol == "" {
		return
	}
	fg := t.Black
	if symbol == strings.ToUpper(symbol) {
		fg = t.White
	}
	glyph := glyphs[strings.ToUpper(symbol)]
	s.SetContent(x0+l.SquareW/2, y0+l.SquareH/2, glyph, nil, tcell.StyleDefault.Background(bg).Foreground(fg).Bold(true))
}

// drawLabels writes ranks 8..1 down the left edge and files a..h underneath.
func drawLabels(s tcell.Screen, l Layout, t Theme) {
	style := tcell.StyleDefault.Foreground(t.Label)
	_, h := l.Size()
	for row := 0; row < chess.Size; row++ {
		_, y := l.Origin(chess.Sq(row, 0))
		s.SetContent(l.Left-2, y+l.SquareH/2, rune('8'-row), nil, style)
	}
	for col := 0; col < chess.Size; col++ {
		x, _ := l.Origin(chess.Sq(0, col))
		s.SetContent(x+l.SquareW/2, l.Top+h, rune('a'+col), nil, style)
	}
}

// Render draws snap and msg. It only reads its inputs.
func Render(s tcell.Screen, snap game.Snapshot, l Layout, t Theme, msg string) {
	s.Clear()

	highlighted := make(map[chess.Square]bool, len(snap.Highlights))
	for _, sq := range snap.Highlights {
		highlighted[sq] = true
	}
	for row := 0; row < chess.Size; row++ {
		for col := 0; col < chess.Size; col++ {
			sq := chess.Sq(row, col)
			switch {
			case snap.CheckedKing != nil && *snap.CheckedKing == sq:
				drawSquare(s, l, sq, snap.Board[row][col], t.Check, true, t)
			case highlighted[sq]:
				drawSquare(s, l, sq, snap.Board[row][col], t.Highlight, true, t)
			default:
				drawSquare(s, l, sq, snap.Board[row][col], 0, false, t)
			}
		}
	}
	drawLabels(s, l, t)

	label := fmt.Sprintf(" %s to move ", capitalize(snap.CurrentPlayer))
	if snap.Status.Finished() {
		label = " Game over "
	}
	drawText(s, l.Left, l.Top-2, tcell.StyleDefault.Reverse(true), label)
	if snap.Name != "" {
		drawText(s, l.Left+len(label)+2, l.Top-2, tcell.StyleDefault.Foreground(t.Label), snap.Name)
	}

	_, h := l.Size()
	drawText(s, l.Left, l.Top+h+2, tcell.StyleDefault.Foreground(t.Msg), msg)
	s.Show()
}

// StatusMessage is the line shown after a click.
func StatusMessage(n game.Notice, snap game.Snapshot) string {
	switch n {
	case game.NoticeIllegalMove:
		return "Illegal move, still in check!"
	case game.NoticeCheck:
		return "Check!"
	case game.NoticeCheckmate:
		return fmt.Sprintf("Checkmate! %s wins!", capitalize(snap.Winner))
	case game.NoticeStalemate:
		return "Stalemate!"
	}
	return ""
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
