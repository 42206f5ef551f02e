package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/chess/internal/chess"
	"github.com/robalobadob/chess/internal/game"
)

// clickSquares posts a press and a release at the centre of each square.
func clickSquares(s tcell.Screen, l Layout, squares ...chess.Square) {
	go func() {
		for _, sq := range squares {
			x, y := centre(l, sq)
			s.PostEventWait(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
			s.PostEventWait(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
		}
	}()
}

func TestPlayUntilCheckmate(t *testing.T) {
	s := simScreen(t)
	l := DefaultLayout
	g := game.New()

	clickSquares(s, l,
		chess.Sq(6, 5), chess.Sq(5, 5),
		chess.Sq(1, 4), chess.Sq(3, 4),
		chess.Sq(6, 6), chess.Sq(4, 6),
		chess.Sq(0, 3), chess.Sq(4, 7),
	)
	Play(s, g, l, ThemeClassic)

	assert.Equal(t, game.StatusCheckmate, g.State.Status)
	assert.Equal(t, chess.Black, g.State.Winner)
	assert.Equal(t, 4, g.Plies)

	_, h := l.Size()
	want := "Checkmate! Black wins!"
	var line []rune
	for i := range want {
		r, _, _ := cell(s, l.Left+i, l.Top+h+2)
		line = append(line, r)
	}
	assert.Equal(t, want, string(line))
}

func TestPlayQuitsOnEscape(t *testing.T) {
	s := simScreen(t)
	l := DefaultLayout
	g := game.New()

	go func() {
		x, y := centre(l, chess.Sq(6, 0))
		s.PostEventWait(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
		s.PostEventWait(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
		s.PostEventWait(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	}()
	Play(s, g, l, ThemeClassic)

	assert.Equal(t, game.StatusOngoing, g.State.Status)
	assert.NotNil(t, g.State.Selected)
	assert.Equal(t, 0, g.Plies)
}

func TestPlayIgnoresClicksOffBoardAndHeldButtons(t *testing.T) {
	s := simScreen(t)
	l := DefaultLayout
	g := game.New()

	go func() {
		x, y := centre(l, chess.Sq(6, 4))
		s.PostEventWait(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
		s.PostEventWait(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
		s.PostEventWait(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
		// dragging with the button held is not a second click
		s.PostEventWait(tcell.NewEventMouse(x+1, y, tcell.Button1, tcell.ModNone))
		s.PostEventWait(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	}()
	Play(s, g, l, ThemeClassic)

	if assert.NotNil(t, g.State.Selected) {
		assert.Equal(t, chess.Sq(6, 4), *g.State.Selected)
	}
}
