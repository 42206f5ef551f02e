// internal/chess/movegen.go
//
// Pseudo-legal move generation.
// PseudoLegalDestinations maps (board, origin) to every square the piece on
// origin could reach by its movement pattern and the current occupancy,
// without asking whether the mover's own king would be left attacked.
//
// Per kind:
//   - Pawn:   one step toward the enemy back rank onto an empty square, two
//             steps from the starting rank through two empty squares, and a
//             diagonal step onto an enemy piece. No en passant or promotion.
//   - Knight: the eight (±2,±1)/(±1,±2) jumps onto empty or enemy squares.
//   - Bishop/Rook/Queen: rays that continue over empty squares, include and
//             stop at the first enemy piece, and stop before an own piece.
//   - King:   the eight neighbours onto empty or enemy squares. No castling.

package chess

// offset is a (row, col) step.
type offset struct {
	dr, dc int
}

var (
	knightOffsets = []offset{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}

	rookRays = []offset{
		{-1, 0}, {1, 0}, {0, 1}, {0, -1},
	}

	bishopRays = []offset{
		{-1, 1}, {-1, -1}, {1, 1}, {1, -1},
	}

	queenRays = append(append([]offset{}, rookRays...), bishopRays...)

	// kingOffsets share the queen's eight directions, one step each.
	kingOffsets = queenRays
)

// PawnDirection is the row delta of a forward pawn step for c.
func PawnDirection(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

// PawnStartRow is the row c's pawns start on.
func PawnStartRow(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

// PseudoLegalDestinations returns the pseudo-legal destinations of the piece
// on origin. An empty or off-board origin yields nil. Order is unspecified.
func PseudoLegalDestinations(b *Board, origin Square) []Square {
	if !origin.OnBoard() {
		return nil
	}
	p := b.Get(origin)
	switch p.Kind {
	case Pawn:
		return pawnDestinations(b, origin, p.Color)
	case Knight:
		return stepDestinations(b, origin, p.Color, knightOffsets)
	case Bishop:
		return rayDestinations(b, origin, p.Color, bishopRays)
	case Rook:
		return rayDestinations(b, origin, p.Color, rookRays)
	case Queen:
		return rayDestinations(b, origin, p.Color, queenRays)
	case King:
		return stepDestinations(b, origin, p.Color, kingOffsets)
	default:
		return nil
	}
}

func pawnDestinations(b *Board, from Square, c Color) []Square {
	var out []Square
	dir := PawnDirection(c)

	one := Sq(from.Row+dir, from.Col)
	if one.OnBoard() && b.Get(one).IsEmpty() {
		out = append(out, one)
		two := Sq(from.Row+2*dir, from.Col)
		if from.Row == PawnStartRow(c) && two.OnBoard() && b.Get(two).IsEmpty() {
			out = append(out, two)
		}
	}

	for _, dc := range [2]int{-1, 1} {
		diag := Sq(from.Row+dir, from.Col+dc)
		if !diag.OnBoard() {
			continue
		}
		if t := b.Get(diag); !t.IsEmpty() && t.Color != c {
			out = append(out, diag)
		}
	}
	return out
}

// stepDestinations handles single-step movers (knight, king).
func stepDestinations(b *Board, from Square, c Color, steps []offset) []Square {
	out := make([]Square, 0, len(steps))
	for _, o := range steps {
		to := Sq(from.Row+o.dr, from.Col+o.dc)
		if !to.OnBoard() {
			continue
		}
		if t := b.Get(to); t.IsEmpty() || t.Color != c {
			out = append(out, to)
		}
	}
	return out
}

// rayDestinations walks each ray until it leaves the board or hits a piece.
func rayDestinations(b *Board, from Square, c Color, rays []offset) []Square {
	var out []Square
	for _, o := range rays {
		to := Sq(from.Row+o.dr, from.Col+o.dc)
		for to.OnBoard() {
			t := b.Get(to)
			if t.IsEmpty() {
				out = append(out, to)
			} else {
				if t.Color != c {
					out = append(out, to)
				}
				break
			}
			to = Sq(to.Row+o.dr, to.Col+o.dc)
		}
	}
	return out
}
