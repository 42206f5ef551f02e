package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPawnsOnStartingRank(t *testing.T) {
	b := mustParse(t, "8/pppppppp/8/8/8/8/PPPPPPPP/8")
	for col := 0; col < Size; col++ {
		white := PseudoLegalDestinations(&b, Sq(6, col))
		assert.ElementsMatch(t, []Square{Sq(5, col), Sq(4, col)}, white, "white pawn col %d", col)

		black := PseudoLegalDestinations(&b, Sq(1, col))
		assert.ElementsMatch(t, []Square{Sq(2, col), Sq(3, col)}, black, "black pawn col %d", col)
	}
}

func TestPawnAfterFirstMove(t *testing.T) {
	b := mustParse(t, "8/8/8/8/4P3/8/8/8")
	assert.Equal(t, []Square{Sq(3, 4)}, PseudoLegalDestinations(&b, Sq(4, 4)))
}

func TestPawnBlocked(t *testing.T) {
	cases := []struct {
		name      string
		placement string
		want      []Square
	}{
		{"blocked on first step", "8/8/8/8/8/4n3/4P3/8", nil},
		{"blocked on second step", "8/8/8/8/4n3/8/4P3/8", []Square{Sq(5, 4)}},
		{"own piece ahead", "8/8/8/8/8/4N3/4P3/8", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := mustParse(t, c.placement)
			assert.ElementsMatch(t, c.want, PseudoLegalDestinations(&b, Sq(6, 4)))
		})
	}
}

func TestPawnCaptures(t *testing.T) {
	// White pawn e4 with a black knight on d5 and a white knight on f5.
	b := mustParse(t, "8/8/8/3n1N2/4P3/8/8/8")
	assert.ElementsMatch(t, []Square{Sq(3, 4), Sq(3, 3)}, PseudoLegalDestinations(&b, Sq(4, 4)))

	// Black pawn d5 captures toward row 7.
	b = mustParse(t, "8/8/8/3p4/2P1P3/8/8/8")
	assert.ElementsMatch(t, []Square{Sq(4, 3), Sq(4, 2), Sq(4, 4)}, PseudoLegalDestinations(&b, Sq(3, 3)))
}

func TestPawnOnLastRankHasNoForwardMove(t *testing.T) {
	b := mustParse(t, "4P3/8/8/8/8/8/8/8")
	assert.Empty(t, PseudoLegalDestinations(&b, Sq(0, 4)))
}

func TestKnightDestinationCounts(t *testing.T) {
	cases := []struct {
		sq   Square
		want int
	}{
		{Sq(0, 0), 2},
		{Sq(7, 7), 2},
		{Sq(0, 1), 3},
		{Sq(1, 1), 4},
		{Sq(0, 3), 4},
		{Sq(3, 3), 8},
		{Sq(4, 5), 8},
	}
	for _, c := range cases {
		t.Run(c.sq.String(), func(t *testing.T) {
			var b Board
			b.Set(c.sq, Piece{Color: White, Kind: Knight})
			assert.Len(t, PseudoLegalDestinations(&b, c.sq), c.want)
		})
	}
}

func TestKnightCornerSquares(t *testing.T) {
	var b Board
	b.Set(Sq(0, 0), Piece{Color: Black, Kind: Knight})
	assert.ElementsMatch(t, []Square{Sq(2, 1), Sq(1, 2)}, PseudoLegalDestinations(&b, Sq(0, 0)))
}

func TestKnightSkipsOwnPieces(t *testing.T) {
	// Knight b1 in the initial position: a3 and c3, d2 is own.
	b := InitialStandardSetup()
	assert.ElementsMatch(t, []Square{Sq(5, 0), Sq(5, 2)}, PseudoLegalDestinations(&b, Sq(7, 1)))
}

func TestRookRayStops(t *testing.T) {
	// Rook d4, black pawn d7 (enemy), white pawn d2 (own), black knight b4, empty east.
	b := mustParse(t, "8/3p4/8/8/1n1R4/8/3P4/8")
	got := PseudoLegalDestinations(&b, Sq(4, 3))

	want := []Square{
		Sq(3, 3), Sq(2, 3), Sq(1, 3), // north, includes the enemy pawn
		Sq(5, 3),                     // south, stops before own pawn
		Sq(4, 2), Sq(4, 1),           // west, includes the enemy knight
		Sq(4, 4), Sq(4, 5), Sq(4, 6), Sq(4, 7),
	}
	assert.ElementsMatch(t, want, got)
	assert.NotContains(t, got, Sq(0, 3))
	assert.NotContains(t, got, Sq(6, 3))
	assert.NotContains(t, got, Sq(4, 0))
}

func TestBishopRayStops(t *testing.T) {
	// Bishop c1 (7,2) with own pawn d2 and enemy pawn a3.
	b := mustParse(t, "8/8/8/8/8/p7/1P1P4/2B5")
	got := PseudoLegalDestinations(&b, Sq(7, 2))
	assert.Empty(t, got)

	b = mustParse(t, "8/8/8/8/8/p7/3P4/2B5")
	got = PseudoLegalDestinations(&b, Sq(7, 2))
	assert.ElementsMatch(t, []Square{Sq(6, 1), Sq(5, 0)}, got)
}

func TestQueenOnEmptyBoard(t *testing.T) {
	var b Board
	b.Set(Sq(3, 3), Piece{Color: White, Kind: Queen})
	assert.Len(t, PseudoLegalDestinations(&b, Sq(3, 3)), 27)

	b = Board{}
	b.Set(Sq(0, 0), Piece{Color: White, Kind: Queen})
	assert.Len(t, PseudoLegalDestinations(&b, Sq(0, 0)), 21)
}

func TestKingDestinations(t *testing.T) {
	var b Board
	b.Set(Sq(3, 3), Piece{Color: White, Kind: King})
	assert.Len(t, PseudoLegalDestinations(&b, Sq(3, 3)), 8)

	b = Board{}
	b.Set(Sq(7, 7), Piece{Color: White, Kind: King})
	assert.ElementsMatch(t, []Square{Sq(6, 7), Sq(7, 6), Sq(6, 6)}, PseudoLegalDestinations(&b, Sq(7, 7)))
}

func TestKingMayApproachEnemyKing(t *testing.T) {
	b := mustParse(t, "8/8/8/3k4/8/3K4/8/8")
	assert.Contains(t, PseudoLegalDestinations(&b, Sq(5, 3)), Sq(4, 3))
}

func TestKingCanBeCapturedPseudoLegally(t *testing.T) {
	b := mustParse(t, "4k3/8/8/8/8/8/8/4R1K1")
	assert.Contains(t, PseudoLegalDestinations(&b, Sq(7, 4)), Sq(0, 4))
}

func TestInitialPositionHasTwentyPseudoLegalMoves(t *testing.T) {
	b := InitialStandardSetup()
	for _, c := range []Color{White, Black} {
		n := 0
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				if p := b.Get(Sq(row, col)); !p.IsEmpty() && p.Color == c {
					n += len(PseudoLegalDestinations(&b, Sq(row, col)))
				}
			}
		}
		assert.Equal(t, 20, n, c.String())
	}
}

func TestEmptyAndOffBoardOrigin(t *testing.T) {
	b := InitialStandardSetup()
	assert.Nil(t, PseudoLegalDestinations(&b, Sq(4, 4)))
	assert.Nil(t, PseudoLegalDestinations(&b, Sq(-1, 4)))
	assert.Nil(t, PseudoLegalDestinations(&b, Sq(4, 8)))
}

func TestPseudoLegalDestinationsDoesNotMutate(t *testing.T) {
	b := mustParse(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R")
	before := b.Placement()
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			PseudoLegalDestinations(&b, Sq(row, col))
		}
	}
	assert.Equal(t, before, b.Placement())
}
