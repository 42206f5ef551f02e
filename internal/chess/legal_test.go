package chess

import (
	"strings"
	"testing"

	notnil "github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasAnyLegalMoveInitialPosition(t *testing.T) {
	b := InitialStandardSetup()
	assert.True(t, HasAnyLegalMove(&b, White))
	assert.True(t, HasAnyLegalMove(&b, Black))
	assert.Len(t, LegalMoves(&b, White), 20)
	assert.Len(t, LegalMoves(&b, Black), 20)
}

func TestCheckmatedKing(t *testing.T) {
	// Black king h8 boxed in by rooks on a8 and a7.
	b := mustParse(t, "R6k/R7/8/8/8/8/8/K7")
	assert.True(t, IsInCheck(&b, Black))
	assert.False(t, HasAnyLegalMove(&b, Black))
	assert.Empty(t, LegalMoves(&b, Black))
}

func TestStalematedKing(t *testing.T) {
	b := mustParse(t, "7k/5Q2/6K1/8/8/8/8/8")
	assert.False(t, IsInCheck(&b, Black))
	assert.False(t, HasAnyLegalMove(&b, Black))
}

func TestEscapeByCapture(t *testing.T) {
	// The checking rook on g8 is unprotected; the white king covers g7 and h7.
	b := mustParse(t, "6Rk/8/6K1/8/8/8/8/8")
	assert.True(t, IsInCheck(&b, Black))
	assert.True(t, HasAnyLegalMove(&b, Black))
	assert.Equal(t, []Move{{From: Sq(0, 7), To: Sq(0, 6)}}, LegalMoves(&b, Black))
}

func TestPinnedPieceCannotMove(t *testing.T) {
	// White bishop e2 is pinned by the black rook on e7.
	b := mustParse(t, "4k3/4r3/8/8/8/8/4B3/4K3")
	for _, m := range LegalMoves(&b, White) {
		assert.NotEqual(t, Sq(6, 4), m.From, "pinned bishop moved to %v", m.To)
	}
	assert.True(t, LeavesKingInCheck(&b, Move{From: Sq(6, 4), To: Sq(5, 3)}))
	assert.False(t, LeavesKingInCheck(&b, Move{From: Sq(7, 4), To: Sq(7, 3)}))
}

func TestHasAnyLegalMoveLeavesBoardUntouched(t *testing.T) {
	b := mustParse(t, "R6k/R7/8/8/8/8/8/K7")
	before := b
	HasAnyLegalMove(&b, Black)
	LegalMoves(&b, White)
	assert.Equal(t, before, b)
}

func TestSideWithoutKingAlwaysHasLegalMoves(t *testing.T) {
	// No king means never in check, so every pseudo-legal move is legal.
	b := mustParse(t, "4k3/8/8/8/8/8/8/R7")
	assert.True(t, HasAnyLegalMove(&b, White))
	assert.Len(t, LegalMoves(&b, White), 14)
}

// TestLegalMovesMatchReference compares legal move sets with notnil/chess on
// positions without castling rights, en passant squares or promotions.
func TestLegalMovesMatchReference(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1",
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w - - 2 3",
		"r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R b - - 3 3",
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 1 3",
		"4k3/8/8/8/8/8/4r3/4K3 w - - 0 1",
		"4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
		"r3k2r/pp1n1ppp/2pbpn2/q7/2BP4/2N1PN2/PP1B1PPP/R2QK2R w - - 4 10",
		"8/2k5/3p4/p2P1p2/P2P1P2/8/8/4K3 b - - 0 40",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			b := mustParse(t, fen)
			side := White
			if strings.Fields(fen)[1] == "b" {
				side = Black
			}

			opt, err := notnil.FEN(fen)
			require.NoError(t, err)
			ref := notnil.NewGame(opt)

			var want []Move
			for _, m := range ref.ValidMoves() {
				want = append(want, Move{From: fromReference(m.S1()), To: fromReference(m.S2())})
			}

			assert.ElementsMatch(t, want, LegalMoves(&b, side))
			assert.Equal(t, len(want) > 0, HasAnyLegalMove(&b, side))
		})
	}
}

func fromReference(sq notnil.Square) Square {
	return Sq(Size-1-int(sq.Rank()), int(sq.File()))
}
