package board

// Pre-computed attack tables. Built once at package init from square
// geometry alone, then read-only; they are safe to share across any number
// of concurrent readers.
var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacks   [2][64]Bitboard // [Color][Square]

	// lineAttacks[origin][occupancy] is the set of squares a slider at
	// position origin of an 8-square line can reach given the line's
	// occupancy: every empty square outward in each direction plus the
	// first occupied square, which blocks anything beyond it.
	lineAttacks [8][256]Line
)

func init() {
	initKnightAttacks()
	initKingAttacks()
	initPawnAttacks()
	initLineAttacks()
}

// knightOffsets are the eight (file, rank) jumps of a knight.
var knightOffsets = [8][2]int{
	{-1, 2}, {1, 2}, {2, 1}, {-2, 1},
	{-1, -2}, {1, -2}, {2, -1}, {-2, -1},
}

func initKnightAttacks() {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			moves := Empty
			for _, d := range knightOffsets {
				f, r := file+d[0], rank+d[1]
				// A jump that leaves the board contributes nothing.
				if f < 0 || f > 7 || r < 0 || r > 7 {
					continue
				}
				moves = moves.Set(NewSquare(f, r))
			}
			knightAttacks[NewSquare(file, rank)] = moves
		}
	}
}

func initKingAttacks() {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			moves := Empty
			for df := -1; df <= 1; df++ {
				for dr := -1; dr <= 1; dr++ {
					if df == 0 && dr == 0 {
						continue
					}
					f, r := file+df, rank+dr
					if f < 0 || f > 7 || r < 0 || r > 7 {
						continue
					}
					moves = moves.Set(NewSquare(f, r))
				}
			}
			kingAttacks[NewSquare(file, rank)] = moves
		}
	}
}

func initPawnAttacks() {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			white := Empty
			black := Empty
			if rank < 7 {
				if file > 0 {
					white = white.Set(NewSquare(file-1, rank+1))
				}
				if file < 7 {
					white = white.Set(NewSquare(file+1, rank+1))
				}
			}
			if rank > 0 {
				if file > 0 {
					black = black.Set(NewSquare(file-1, rank-1))
				}
				if file < 7 {
					black = black.Set(NewSquare(file+1, rank-1))
				}
			}
			pawnAttacks[White][sq] = white
			pawnAttacks[Black][sq] = black
		}
	}
}

func initLineAttacks() {
	for origin := 0; origin < 8; origin++ {
		for occ := 0; occ < 256; occ++ {
			var reach Line

			// Scan toward bit 0, marking each square up to and including
			// the first occupied one.
			for i := origin - 1; i >= 0; i-- {
				reach |= 1 << i
				if occ&(1<<i) != 0 {
					break
				}
			}
			// Same scan toward bit 7.
			for i := origin + 1; i < 8; i++ {
				reach |= 1 << i
				if occ&(1<<i) != 0 {
					break
				}
			}

			lineAttacks[origin][occ] = reach
		}
	}
}

// KnightAttacks returns the knight attack bitboard for a square.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the king attack bitboard for a square.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// PawnAttacks returns the pawn capture bitboard for a square and color.
func PawnAttacks(sq Square, c Color) Bitboard {
	return pawnAttacks[c][sq]
}

// LineAttacks returns the slider reachability vector for a piece at the
// given position (0-7) of a line with the given occupancy.
func LineAttacks(origin int, occ Line) Line {
	return lineAttacks[origin][occ]
}

// RankAttacks returns the squares a rank-slider on sq can reach given the
// board occupancy in standard indexing. One table lookup, no scanning.
func RankAttacks(sq Square, occ Bitboard) Bitboard {
	rank := sq.Rank()
	reach := lineAttacks[sq.File()][RankLine(occ, rank)]
	return LineToRank(reach, rank)
}

// FileAttacks returns the squares a file-slider on sq can reach given the
// board occupancy in rotated indexing. The rotated projection makes a file
// eight consecutive bits, so this is the same lookup RankAttacks performs.
func FileAttacks(sq Square, rotated Bitboard) Bitboard {
	file := sq.File()
	reach := lineAttacks[sq.Rank()][FileLine(rotated, file)]
	return LineToFile(reach, file)
}
