package board

import (
	"errors"
	"fmt"
)

// ErrEmptyHistory is returned by Undo when no move has been applied.
var ErrEmptyHistory = errors.New("board: undo with empty history")

// Position is the full mutable game state. It keeps four parallel
// representations of the same board, mutated in lock-step by Apply and
// Undo:
//
//   - BySide: occupancy of each color, standard indexing
//   - Rotated: the same occupancy re-indexed file-major, kept as a derived
//     projection so a file's occupancy is eight consecutive bits
//   - ByKind: occupancy of each piece kind; the NoPieceType vector holds
//     the empty squares, so every square is set in exactly one kind vector
//   - Squares: square -> kind lookup for O(1) occupant queries
//
// Collaborators may read any field but must mutate only through Apply and
// Undo. A Position belongs to a single goroutine; search branches needing
// independent state take a Copy.
type Position struct {
	BySide  [2]Bitboard
	Rotated [2]Bitboard
	ByKind  [7]Bitboard
	Squares [64]PieceType

	SideToMove Color
	History    []MoveRecord
}

// NewPosition creates an empty board with White to move. Populating the
// starting layout is the caller's job, via Put.
func NewPosition() *Position {
	p := &Position{}
	p.ByKind[NoPieceType] = Universe
	for sq := range p.Squares {
		p.Squares[sq] = NoPieceType
	}
	return p
}

// Copy creates a deep copy of the position, history included.
func (p *Position) Copy() *Position {
	c := *p
	c.History = append([]MoveRecord(nil), p.History...)
	return &c
}

// PieceAt returns the kind occupying the given square, NoPieceType if empty.
func (p *Position) PieceAt(sq Square) PieceType {
	return p.Squares[sq]
}

// ColorAt returns the color occupying the given square. The second return
// is false for an empty square.
func (p *Position) ColorAt(sq Square) (Color, bool) {
	bb := SquareBB(sq)
	if p.BySide[White]&bb != 0 {
		return White, true
	}
	if p.BySide[Black]&bb != 0 {
		return Black, true
	}
	return White, false
}

// IsEmpty returns true if the square holds no piece.
func (p *Position) IsEmpty(sq Square) bool {
	return p.Squares[sq] == NoPieceType
}

// Put places a piece on an empty square, updating all four representations.
// It is the setup entry point for whichever collaborator owns the starting
// layout. Panics if the square is occupied or the kind is NoPieceType;
// board setup errors are caller errors.
func (p *Position) Put(sq Square, pt PieceType, c Color) {
	if pt >= NoPieceType {
		panic(fmt.Sprintf("board: cannot put %s on %s", pt, sq))
	}
	if p.Squares[sq] != NoPieceType {
		panic(fmt.Sprintf("board: square %s already occupied", sq))
	}
	p.place(sq, pt, c)
}

// Lift removes and returns the piece on a square, NoPieceType if empty.
func (p *Position) Lift(sq Square) PieceType {
	pt := p.Squares[sq]
	if pt == NoPieceType {
		return NoPieceType
	}
	c, _ := p.ColorAt(sq)
	p.remove(sq, pt, c)
	return pt
}

// place sets the square's bit in the side, rotated, and kind vectors and
// clears its empty-slot bit, keeping invariant lock-step.
func (p *Position) place(sq Square, pt PieceType, c Color) {
	p.BySide[c] = p.BySide[c].Set(sq)
	p.Rotated[c] = p.Rotated[c].Set(sq.Rotate())
	p.ByKind[pt] = p.ByKind[pt].Set(sq)
	p.ByKind[NoPieceType] = p.ByKind[NoPieceType].Clear(sq)
	p.Squares[sq] = pt
}

// remove is the exact inverse of place.
func (p *Position) remove(sq Square, pt PieceType, c Color) {
	p.BySide[c] = p.BySide[c].Clear(sq)
	p.Rotated[c] = p.Rotated[c].Clear(sq.Rotate())
	p.ByKind[pt] = p.ByKind[pt].Clear(sq)
	p.ByKind[NoPieceType] = p.ByKind[NoPieceType].Set(sq)
	p.Squares[sq] = NoPieceType
}

// Apply mutates the position by one legal move and pushes a reversible
// record onto the history. Legality is the move generator's contract, not
// checked here; applying an illegal move leaves the position unspecified.
func (p *Position) Apply(m Move) {
	us := p.SideToMove
	them := us.Other()
	from, to := m.From(), m.To()

	moved := p.Squares[from]
	target := ResolveTarget(from, to, moved, p.Squares[to], us)
	captured := p.Squares[target]

	p.History = append(p.History, MoveRecord{
		From:     from,
		To:       to,
		Target:   target,
		Captured: captured,
		Promoted: m.IsPromotion(),
	})

	p.remove(from, moved, us)
	if captured != NoPieceType {
		p.remove(target, captured, them)
	}

	placed := moved
	if m.IsPromotion() {
		placed = m.Promotion()
	}
	p.place(to, placed, us)

	p.SideToMove = them
}

// Undo reverses the most recent Apply exactly, consuming the top history
// record. It returns ErrEmptyHistory if no move remains to undo.
func (p *Position) Undo() error {
	if len(p.History) == 0 {
		return ErrEmptyHistory
	}
	rec := p.History[len(p.History)-1]

	// The mover is the side that is now waiting.
	us := p.SideToMove.Other()
	them := p.SideToMove

	// The piece standing on the destination is the moved piece, except
	// that a promotion began life as a pawn.
	moved := p.Squares[rec.To]
	p.remove(rec.To, moved, us)
	if rec.Promoted {
		moved = Pawn
	}

	if rec.Captured != NoPieceType {
		p.place(rec.Target, rec.Captured, them)
	}
	p.place(rec.From, moved, us)

	p.SideToMove = us
	p.History = p.History[:len(p.History)-1]
	return nil
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	s := "\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			ch := p.Squares[sq].Char()
			if c, ok := p.ColorAt(sq); ok && c == White {
				ch = ch - 'a' + 'A'
			}
			s += string(ch) + " "
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n\n"
	s += fmt.Sprintf("Side to move: %s\n", p.SideToMove)
	s += fmt.Sprintf("Moves played: %d\n", len(p.History))
	return s
}
