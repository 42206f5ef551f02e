// internal/chess/board.go
//
// Board model for the rules engine.
// Defines:
//   - Color, Kind and Piece: the (color, kind) token held by a square.
//   - Square: a (row, col) pair; row 0 is Black's back rank, row 7 White's.
//   - Board: a fixed 8x8 grid of optional pieces with bounds/clone helpers.
//
// Notes:
//   - Board is a value type (array of arrays), so assigning or returning it
//     copies every square. Clone is therefore a plain copy and never aliases.
//   - No piece-count or king-uniqueness invariant is enforced here.
//   - Placement/ParsePlacement use the FEN piece-placement field. Rank 8 comes
//     first in FEN, which is row 0 in this model.

package chess

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the number of rows and columns on the board.
const Size = 8

// Color identifies a side.
type Color int

const (
	White Color = iota
	Black
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Kind is the type of a piece. NoKind marks an empty square.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// Piece is an immutable (color, kind) token. The zero value is "no piece".
type Piece struct {
	Color Color
	Kind  Kind
}

// NoPiece is the empty square value.
var NoPiece = Piece{}

// IsEmpty reports whether p is the empty token.
func (p Piece) IsEmpty() bool { return p.Kind == NoKind }

// Symbol returns the FEN letter for p: upper case for White, lower case for
// Black, and "" for an empty square.
func (p Piece) Symbol() string {
	var s string
	switch p.Kind {
	case Pawn:
		s = "p"
	case Knight:
		s = "n"
	case Bishop:
		s = "b"
	case Rook:
		s = "r"
	case Queen:
		s = "q"
	case King:
		s = "k"
	default:
		return ""
	}
	if p.Color == White {
		return strings.ToUpper(s)
	}
	return s
}

// pieceFromSymbol is the inverse of Piece.Symbol.
func pieceFromSymbol(r rune) (Piece, bool) {
	color := Black
	if r >= 'A' && r <= 'Z' {
		color = White
		r = r - 'A' + 'a'
	}
	var k Kind
	switch r {
	case 'p':
		k = Pawn
	case 'n':
		k = Knight
	case 'b':
		k = Bishop
	case 'r':
		k = Rook
	case 'q':
		k = Queen
	case 'k':
		k = King
	default:
		return NoPiece, false
	}
	return Piece{Color: color, Kind: k}, true
}

// Square is a zero-based (row, col) coordinate.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square { return Square{Row: row, Col: col} }

// OnBoard reports whether both row and col are within [0,7].
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < Size && s.Col >= 0 && s.Col < Size
}

func (s Square) String() string { return fmt.Sprintf("(%d,%d)", s.Row, s.Col) }

// Move is an ordered (origin, destination) pair. It carries no flags.
type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// Board maps every square to an optional piece.
type Board [Size][Size]Piece

// backRank is the piece order on both back ranks, col 0 to col 7.
var backRank = [Size]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// InitialStandardSetup returns the canonical starting position.
// Black occupies rows 0-1 and White rows 6-7.
func InitialStandardSetup() Board {
	var b Board
	for col := 0; col < Size; col++ {
		b[0][col] = Piece{Color: Black, Kind: backRank[col]}
		b[1][col] = Piece{Color: Black, Kind: Pawn}
		b[6][col] = Piece{Color: White, Kind: Pawn}
		b[7][col] = Piece{Color: White, Kind: backRank[col]}
	}
	return b
}

// Get returns the piece on s. The square must be on the board.
func (b *Board) Get(s Square) Piece { return b[s.Row][s.Col] }

// Set places p on s; pass NoPiece to clear the square.
func (b *Board) Set(s Square, p Piece) { b[s.Row][s.Col] = p }

// Clone returns an independent copy of b.
func (b *Board) Clone() Board { return *b }

// Apply moves the piece on m.From to m.To and clears m.From.
// Whatever stood on m.To is overwritten; no rule is checked.
func (b *Board) Apply(m Move) {
	b.Set(m.To, b.Get(m.From))
	b.Set(m.From, NoPiece)
}

// Placement encodes b as a FEN piece-placement field, row 0 first.
func (b *Board) Placement() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		blanks := 0
		for col := 0; col < Size; col++ {
			p := b[row][col]
			if p.IsEmpty() {
				blanks++
				continue
			}
			if blanks != 0 {
				fmt.Fprintf(&sb, "%d", blanks)
				blanks = 0
			}
			sb.WriteString(p.Symbol())
		}
		if blanks != 0 {
			fmt.Fprintf(&sb, "%d", blanks)
		}
	}
	return sb.String()
}

// ErrBadPlacement is returned by ParsePlacement for malformed input.
var ErrBadPlacement = errors.New("chess: malformed piece placement")

// ParsePlacement decodes a FEN piece-placement field. A full FEN string is
// accepted too; everything after the first space is ignored.
func ParsePlacement(s string) (Board, error) {
	var b Board
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	rows := strings.Split(s, "/")
	if len(rows) != Size {
		return b, fmt.Errorf("%w: want %d rows, got %d", ErrBadPlacement, Size, len(rows))
	}
	for row, text := range rows {
		col := 0
		for _, r := range text {
			if r >= '1' && r <= '8' {
				col += int(r - '0')
				continue
			}
			p, ok := pieceFromSymbol(r)
			if !ok {
				return b, fmt.Errorf("%w: unexpected %q in row %d", ErrBadPlacement, r, row)
			}
			if col >= Size {
				return b, fmt.Errorf("%w: row %d is too long", ErrBadPlacement, row)
			}
			b[row][col] = p
			col++
		}
		if col != Size {
			return b, fmt.Errorf("%w: row %d has %d columns", ErrBadPlacement, row, col)
		}
	}
	return b, nil
}

// String draws b as eight lines of FEN letters with '.' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if s := b[row][col].Symbol(); s != "" {
				sb.WriteString(s)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
