package board

import "fmt"

// Move encodes a chess move in 16 bits:
// bits 0-5:   from square (0-63)
// bits 6-11:  to square (0-63)
// bits 12-14: promotion piece type (NoPieceType when not a promotion)
// bit 15:     unused
//
// The layout is fixed and round-trips losslessly, so a Move value is stable
// for persistence or transmission.
type Move uint16

// NoMove represents an invalid or null move. It is not producible by
// NewMove or NewPromotion.
const NoMove Move = 0

// NewMove creates a non-promoting move. It panics if either square is out
// of range or the squares are equal; those are caller errors, not
// recoverable conditions.
func NewMove(from, to Square) Move {
	return NewPromotion(from, to, NoPieceType)
}

// NewPromotion creates a move carrying a promotion choice. A promo of
// NoPieceType means no promotion. Panics on the same preconditions as
// NewMove.
func NewPromotion(from, to Square, promo PieceType) Move {
	if !from.IsValid() || !to.IsValid() {
		panic(fmt.Sprintf("board: move square out of range: %d-%d", from, to))
	}
	if from == to {
		panic(fmt.Sprintf("board: move from and to are both %s", from))
	}
	if promo > NoPieceType {
		panic(fmt.Sprintf("board: invalid promotion piece %d", promo))
	}
	return Move(from) | Move(to)<<6 | Move(promo)<<12
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Promotion returns the promotion piece type, NoPieceType if the move does
// not promote.
func (m Move) Promotion() PieceType {
	return PieceType((m >> 12) & 7)
}

// IsPromotion returns true if this is a promotion move.
func (m Move) IsPromotion() bool {
	return m.Promotion() != NoPieceType
}

// String returns the UCI format of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}

	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(m.Promotion().Char())
	}
	return s
}

// MoveRecord is the reversible record pushed onto a Position's history by
// Apply. It stores the resolved, position-dependent facts a compact Move
// cannot carry: the target square actually vacated by the move and the kind
// of piece that stood there. Undo consumes the record instead of
// recomputing, which is impossible in general once the captured piece is
// off the board.
type MoveRecord struct {
	From     Square
	To       Square
	Target   Square
	Captured PieceType
	Promoted bool
}
