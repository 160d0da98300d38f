package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// PieceType represents the type of a chess piece. NoPieceType is a
// first-class member of the enumeration: it owns the empty-square slot in
// the per-kind bitboards and appears in the square lookup table wherever no
// piece stands.
type PieceType uint8

const (
	Rook PieceType = iota
	Knight
	Bishop
	Queen
	King
	Pawn
	NoPieceType
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Rook:
		return "Rook"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Pawn:
		return "Pawn"
	default:
		return "None"
	}
}

// Char returns the FEN-style character for the piece type (lowercase).
func (pt PieceType) Char() byte {
	chars := []byte{'r', 'n', 'b', 'q', 'k', 'p', '.'}
	if pt > NoPieceType {
		return '.'
	}
	return chars[pt]
}
