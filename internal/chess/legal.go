// internal/chess/legal.go
//
// Legality on top of pseudo-legal generation.
// A pseudo-legal move is legal when, after playing it on a copy of the
// board, the mover's own king is not in check. Every trial is played on a
// fresh clone so the caller's board is never touched.

package chess

// HasAnyLegalMove reports whether c has at least one legal move.
// It stops at the first one found.
func HasAnyLegalMove(b *Board, c Color) bool {
	found := false
	forEachLegalMove(b, c, func(Move) bool {
		found = true
		return false
	})
	return found
}

// LegalMoves lists every legal move of c in row-major origin order.
func LegalMoves(b *Board, c Color) []Move {
	var out []Move
	forEachLegalMove(b, c, func(m Move) bool {
		out = append(out, m)
		return true
	})
	return out
}

// LeavesKingInCheck reports whether playing m leaves the mover's king
// attacked. The mover is the color of the piece on m.From.
func LeavesKingInCheck(b *Board, m Move) bool {
	mover := b.Get(m.From).Color
	trial := b.Clone()
	trial.Apply(m)
	return IsInCheck(&trial, mover)
}

// forEachLegalMove calls fn for each legal move of c until fn returns false.
func forEachLegalMove(b *Board, c Color, fn func(Move) bool) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			p := b[row][col]
			if p.IsEmpty() || p.Color != c {
				continue
			}
			from := Sq(row, col)
			for _, to := range PseudoLegalDestinations(b, from) {
				m := Move{From: from, To: to}
				if LeavesKingInCheck(b, m) {
					continue
				}
				if !fn(m) {
					return
				}
			}
		}
	}
}
