package board

// ResolveTarget determines the square whose occupant a move removes. For
// every move but one this is the destination itself. The exception is the
// en passant capture, whose signature is a pawn changing file onto an empty
// square: the captured pawn stands one rank behind the destination from the
// mover's perspective, on the destination's file.
//
// The caller guarantees the move is legal in the current position; the
// result is unspecified for an illegal move that happens to match the
// exception signature.
func ResolveTarget(from, to Square, moved, destOccupant PieceType, mover Color) Square {
	if moved == Pawn && from.File() != to.File() && destOccupant == NoPieceType {
		if mover == White {
			return to - 8
		}
		return to + 8
	}
	return to
}
