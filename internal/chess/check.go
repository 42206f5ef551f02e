// internal/chess/check.go
//
// Check detection.
// A king is in check when its square is among the pseudo-legal destinations
// of any enemy piece. A side with no king on the board is never in check.

package chess

import "slices"

// FindKing returns the square of c's king. The scan runs row by row and
// returns the first match; ok is false when c has no king.
func FindKing(b *Board, c Color) (sq Square, ok bool) {
	king := Piece{Color: c, Kind: King}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] == king {
				return Sq(row, col), true
			}
		}
	}
	return Square{}, false
}

// IsInCheck reports whether c's king is attacked by any enemy piece.
func IsInCheck(b *Board, c Color) bool {
	king, ok := FindKing(b, c)
	if !ok {
		return false
	}
	return IsAttacked(b, king, c.Opponent())
}

// IsAttacked reports whether any piece of color by has sq among its
// pseudo-legal destinations.
func IsAttacked(b *Board, sq Square, by Color) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			p := b[row][col]
			if p.IsEmpty() || p.Color != by {
				continue
			}
			if slices.Contains(PseudoLegalDestinations(b, Sq(row, col)), sq) {
				return true
			}
		}
	}
	return false
}
