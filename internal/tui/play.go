// internal/tui/play.go
//
// Hot-seat input loop.
// Responsibilities:
//   - Turn left-button presses into board squares via Layout.SquareAt.
//   - Feed squares to Game.Click and redraw with the resulting status line.
//   - Stop on Esc, Ctrl-C or a terminal game status.

package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/chess/internal/game"
)

// Play runs a hot-seat game on s. Left mouse presses are mapped to squares
// and fed to g. It returns when g reaches a terminal status or the player
// presses Esc or Ctrl-C; the caller owns s and finalises it.
func Play(s tcell.Screen, g *game.Game, l Layout, t Theme) {
	msg := ""
	pressed := false
	Render(s, g.Snapshot(), l, t, msg)

	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			s.Sync()
			Render(s, g.Snapshot(), l, t, msg)
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				log.Info().Str("gameId", g.ID).Int("plies", g.Plies).Msg("quit")
				return
			}
		case *tcell.EventMouse:
			down := ev.Buttons()&tcell.Button1 != 0
			click := down && !pressed
			pressed = down
			if !click {
				continue
			}
			sq, ok := l.SquareAt(ev.Position())
			if !ok {
				continue
			}
			notice, err := g.Click(sq)
			if err != nil {
				log.Warn().Err(err).Str("gameId", g.ID).Msg("click rejected")
				return
			}
			lg := log.Debug()
			if notice == game.NoticeIllegalMove {
				lg = log.Info()
			}
			lg.Str("gameId", g.ID).Int("row", sq.Row).Int("col", sq.Col).Str("notice", string(notice)).Msg("click")

			snap := g.Snapshot()
			if notice.Accepted() || notice == game.NoticeIllegalMove {
				msg = StatusMessage(notice, snap)
			}
			Render(s, snap, l, t, msg)
			if g.State.Status.Finished() {
				return
			}
		}
	}
}
