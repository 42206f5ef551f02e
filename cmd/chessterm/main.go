// cmd/chessterm/main.go
//
// Local two-player chess in the terminal.
// Both players share the mouse: click a piece, then one of its outlined
// destinations. Esc or Ctrl-C quits. Logs go to a file so they do not
// corrupt the screen.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/chess/internal/game"
	"github.com/robalobadob/chess/internal/tui"
)

func main() {
	logPath := flag.String("log", "./chessterm.log", "path to log file")
	level := flag.String("level", "info", "log level")
	theme := flag.String("theme", "classic", "board theme: classic or basic")
	flag.Parse()

	f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open log:", err)
		os.Exit(1)
	}
	defer f.Close()
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(*level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		log.Fatal().Err(err).Msg("new screen")
	}
	if err := s.Init(); err != nil {
		log.Fatal().Err(err).Msg("init screen")
	}
	s.EnableMouse()

	g := game.New()
	log.Info().Str("gameId", g.ID).Str("name", g.Name).Msg("new game")
	tui.Play(s, g, tui.DefaultLayout, tui.ThemeByName(*theme))
	s.Fini()

	printResult(g)
}

// printResult writes the outcome banner to stdout.
func printResult(g *game.Game) {
	snap := g.Snapshot()
	switch snap.Status {
	case game.StatusCheckmate:
		color.New(color.FgGreen, color.Bold).Println(tui.StatusMessage(game.NoticeCheckmate, snap))
	case game.StatusStalemate:
		color.New(color.FgYellow, color.Bold).Println(tui.StatusMessage(game.NoticeStalemate, snap))
	default:
		color.New(color.FgRed).Printf("Game %s abandoned after %d moves.\n", g.Name, g.Plies)
		return
	}
	log.Info().Str("gameId", g.ID).Str("status", string(snap.Status)).Int("plies", g.Plies).Msg("game finished")
	fmt.Printf("%d moves. Final position: %s\n", g.Plies, snap.Placement)
}
