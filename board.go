// board.go defines the Board position representation and the read-only
// queries over it: piece lookup, king location, and square-attack tests.
// It also holds placePiece and removePiece, the low-level helpers through
// which ParseFEN (fen.go) and ApplyUnchecked (apply.go) change a Board's
// bitboards; nothing else in this file modifies a Board.

package chesscore

import "math/bits"

// Board is a chess position. It is a plain value: copying a Board copies the
// whole position, which is exactly how the legality filter in movegen.go
// explores a candidate move without disturbing the original.
//
// Invariants maintained across every mutation (see apply.go):
//   - Occupancy[c] == union of Pieces[c][*] for each color c.
//   - All == Occupancy[White] | Occupancy[Black].
//   - Pieces[c1][pt1] and Pieces[c2][pt2] never overlap for distinct (c,pt).
//   - Each side has exactly one king.
//   - EnPassant, when HasEnPassant is true, is on rank index 2 or 5.
type Board struct {
	Pieces    [2][6]uint64
	Occupancy [2]uint64
	All       uint64

	SideToMove Color
	Castling   CastlingRights

	HasEnPassant bool
	EnPassant    Square

	HalfmoveClock  int
	FullmoveNumber int
}

// Startpos is the FEN of the standard initial chess position.
const Startpos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoard returns the standard starting position.
func NewBoard() Board {
	b, err := ParseFEN(Startpos)
	if err != nil {
		// Startpos is a compile-time constant known to be valid; a failure
		// here means ParseFEN itself is broken.
		panic("chesscore: built-in start position failed to parse: " + err.Error())
	}
	return b
}

// PieceAt returns the piece standing on sq, if any.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	bb := sq.Bitboard()
	for _, color := range [2]Color{White, Black} {
		if b.Occupancy[color]&bb == 0 {
			continue
		}
		for _, pt := range pieceTypes {
			if b.Pieces[color][pt]&bb != 0 {
				return Piece{Type: pt, Color: color}, true
			}
		}
	}
	return Piece{}, false
}

// pieceTypeAt returns the type of the piece of the given color standing on
// sq, if any.
func (b *Board) pieceTypeAt(color Color, sq Square) (PieceType, bool) {
	bb := sq.Bitboard()
	for _, pt := range pieceTypes {
		if b.Pieces[color][pt]&bb != 0 {
			return pt, true
		}
	}
	return 0, false
}

// kingSquare returns the square of color's king.
func (b *Board) kingSquare(color Color) Square {
	kings := b.Pieces[color][King]
	return Square(bits.TrailingZeros64(kings))
}

// placePiece sets piece on sq, updating its bitboard, the color's occupancy,
// and the combined occupancy.
func (b *Board) placePiece(piece Piece, sq Square) {
	bb := sq.Bitboard()
	b.Pieces[piece.Color][piece.Type] |= bb
	b.Occupancy[piece.Color] |= bb
	b.All |= bb
}

// removePiece clears piece from sq, updating its bitboard, the color's
// occupancy, and the combined occupancy.
//
// Preconditions: piece actually occupies sq. Violating this corrupts the
// position silently, same as apply_unchecked's other preconditions.
func (b *Board) removePiece(piece Piece, sq Square) {
	bb := sq.Bitboard()
	b.Pieces[piece.Color][piece.Type] &^= bb
	b.Occupancy[piece.Color] &^= bb
	b.All &^= bb
}

// isAttacked reports whether any piece of color by attacks sq.
func (b *Board) isAttacked(sq Square, by Color) bool {
	t := tables()
	idx := sq.Index()

	if t.knight[idx]&b.Pieces[by][Knight] != 0 {
		return true
	}
	if t.king[idx]&b.Pieces[by][King] != 0 {
		return true
	}
	// Pawns: the squares from which an enemy pawn could attack sq are
	// exactly the squares a defender's own pawn on sq would attack — hence
	// the inverted color index.
	if t.pawn[by.Opposite()][idx]&b.Pieces[by][Pawn] != 0 {
		return true
	}

	bishops := b.Pieces[by][Bishop]
	rooks := b.Pieces[by][Rook]
	queens := b.Pieces[by][Queen]

	for _, dir := range diagonalDirs {
		if b.rayHits(idx, dir, bishops|queens) {
			return true
		}
	}
	for _, dir := range orthogonalDirs {
		if b.rayHits(idx, dir, rooks|queens) {
			return true
		}
	}
	return false
}

// rayHits reports whether the nearest blocker along dir from sq (if any) is
// one of the targets.
func (b *Board) rayHits(sqIdx, dir int, targets uint64) bool {
	ray := tables().rays[sqIdx][dir]
	blockers := ray & b.All
	if blockers == 0 {
		return false
	}
	return nearestBlocker(blockers, dir).Bitboard()&targets != 0
}

// IsInCheck reports whether color's king is currently attacked.
func (b *Board) IsInCheck(color Color) bool {
	return b.isAttacked(b.kingSquare(color), color.Opposite())
}

// slidingAttacks returns the bitboard of squares reachable by a single
// slider (bishop, rook, or queen — selected by dirs) standing on from, given
// the current occupancy. The result includes the first blocker hit in each
// direction (the square where a capture would land).
func slidingAttacks(from Square, occupancy uint64, dirs []int) uint64 {
	t := tables()
	var attacks uint64
	idx := from.Index()
	for _, dir := range dirs {
		ray := t.rays[idx][dir]
		attacks |= ray
		if blockers := ray & occupancy; blockers != 0 {
			attacks ^= t.rays[nearestBlocker(blockers, dir).Index()][dir]
		}
	}
	return attacks
}

func bishopAttacks(from Square, occupancy uint64) uint64 {
	return slidingAttacks(from, occupancy, diagonalDirs)
}

func rookAttacks(from Square, occupancy uint64) uint64 {
	return slidingAttacks(from, occupancy, orthogonalDirs)
}

func queenAttacks(from Square, occupancy uint64) uint64 {
	return slidingAttacks(from, occupancy, allDirs)
}
