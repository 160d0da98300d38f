package board

import (
	"math/bits"
)

// Bitboard represents a 64-bit board where each bit corresponds to a square.
// Bit 0 = A1, Bit 7 = H1, Bit 56 = A8, Bit 63 = H8 (Little-Endian Rank-File
// Mapping). A bit may mark occupancy, reachability, or any other per-square
// predicate; the bitboard itself carries no piece identity.
type Bitboard uint64

// Special masks
const (
	Empty    Bitboard = 0
	Universe Bitboard = 0xFFFFFFFFFFFFFFFF
)

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	return 1 << sq
}

// Set sets a bit at the given square.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | (1 << sq)
}

// Clear clears a bit at the given square.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ (1 << sq)
}

// IsSet returns true if the bit at the given square is set.
func (b Bitboard) IsSet(sq Square) bool {
	return b&(1<<sq) != 0
}

// Toggle flips the bit at the given square.
func (b Bitboard) Toggle(sq Square) Bitboard {
	return b ^ (1 << sq)
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the least significant bit (lowest square index).
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the least significant bit.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// IsEmpty returns true if no bits are set.
func (b Bitboard) IsEmpty() bool {
	return b == 0
}

// RotateIndex re-indexes the bitboard through the standard/rotated square
// transform: bit sq of the input becomes bit sq.Rotate() of the result.
// Applying it twice yields the original bitboard.
func (b Bitboard) RotateIndex() Bitboard {
	var r Bitboard
	for b != 0 {
		r = r.Set(b.PopLSB().Rotate())
	}
	return r
}

// Squares returns a slice of all squares that are set.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for b != 0 {
		squares = append(squares, b.PopLSB())
	}
	return squares
}

// String returns a visual representation of the bitboard.
func (b Bitboard) String() string {
	s := ""
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			if b.IsSet(sq) {
				s += "1 "
			} else {
				s += ". "
			}
		}
		s += "\n"
	}
	return s
}

// Line is an 8-bit occupancy vector for a single rank, or for a single file
// when taken from a rotated-index bitboard. Bit n marks the nth square of
// the line counting from the queenside (file a) or from rank 1.
type Line uint8

// RankLine extracts the occupancy of one rank from a standard-index bitboard.
func RankLine(b Bitboard, rank int) Line {
	return Line(b >> (8 * rank))
}

// FileLine extracts the occupancy of one file from a rotated-index bitboard.
// Under rotated indexing a file occupies eight consecutive bits, so the
// extraction is the same shift that RankLine performs on a standard board.
func FileLine(rotated Bitboard, file int) Line {
	return Line(rotated >> (8 * file))
}

// LineToRank expands a line vector back onto the given rank of a
// standard-index bitboard.
func LineToRank(l Line, rank int) Bitboard {
	return Bitboard(l) << (8 * rank)
}

// LineToFile expands a line vector onto the given file of a standard-index
// bitboard. Bit n of the line lands on rank n of the file.
func LineToFile(l Line, file int) Bitboard {
	var b Bitboard
	for rank := 0; rank < 8; rank++ {
		if l&(1<<rank) != 0 {
			b = b.Set(NewSquare(file, rank))
		}
	}
	return b
}

// IsSet returns true if the bit at the given position (0-7) is set.
func (l Line) IsSet(i int) bool {
	return l&(1<<i) != 0
}
