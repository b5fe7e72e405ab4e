// apply.go implements move application: the unconditional state transition
// a move performs on a Board, and the validating wrapper that looks a move
// up in the legal move list before applying it.

package chesscore

// ApplyUnchecked applies m to b without checking legality. Callers must only
// pass moves already known to be legal in b (e.g. from GenerateLegalMoves) —
// passing an arbitrary move corrupts the position silently.
func ApplyUnchecked(b *Board, m Move) {
	applyUnchecked(b, m)
}

// applyUnchecked performs the full state transition for m: captures, piece
// placement (including promotion), the castling rook move, en passant target
// lifecycle, castling rights, the halfmove clock, and the side to move /
// fullmove counter. Order matters — capture detection must happen before any
// board mutation, and the moving piece's original square must be cleared
// before the en-passant captured pawn (which sits on a different square) is
// removed.
func applyUnchecked(b *Board, m Move) {
	us := b.SideToMove
	them := us.Opposite()

	movingType, ok := b.pieceTypeAt(us, m.From)
	if !ok {
		panic("chesscore: apply_unchecked: no piece on from-square")
	}
	moving := Piece{Type: movingType, Color: us}

	isCapture := b.Occupancy[them]&m.To.Bitboard() != 0 || m.Kind == MoveEnPassant

	b.removePiece(moving, m.From)

	switch m.Kind {
	case MoveEnPassant:
		capturedSq := epCapturedSquare(m.To, us)
		b.removePiece(Piece{Type: Pawn, Color: them}, capturedSq)
		b.placePiece(moving, m.To)

	case MovePromotion:
		if capturedType, ok := b.pieceTypeAt(them, m.To); ok {
			b.removePiece(Piece{Type: capturedType, Color: them}, m.To)
		}
		b.placePiece(Piece{Type: m.Promo, Color: us}, m.To)

	case MoveCastle:
		b.placePiece(moving, m.To)
		rookFrom, rookTo := castlingRookSquares(m.To)
		rook := Piece{Type: Rook, Color: us}
		b.removePiece(rook, rookFrom)
		b.placePiece(rook, rookTo)

	default: // MoveNormal
		if capturedType, ok := b.pieceTypeAt(them, m.To); ok {
			b.removePiece(Piece{Type: capturedType, Color: them}, m.To)
		}
		b.placePiece(moving, m.To)
	}

	if movingType == Pawn && abs(m.To.Index()-m.From.Index()) == 16 {
		b.HasEnPassant = true
		b.EnPassant = Square((m.From.Index() + m.To.Index()) / 2)
	} else {
		b.HasEnPassant = false
		b.EnPassant = 0
	}

	b.Castling = b.Castling.Clear(castlingMaskForSquare(m.From))
	b.Castling = b.Castling.Clear(castlingMaskForSquare(m.To))

	if movingType == Pawn || isCapture {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}

	if us == Black {
		b.FullmoveNumber++
	}
	b.SideToMove = them
}

// epCapturedSquare returns the square of the pawn captured en passant, given
// the destination square of the capturing pawn and the capturing side.
func epCapturedSquare(to Square, mover Color) Square {
	if mover == White {
		return Square(to.Index() - 8)
	}
	return Square(to.Index() + 8)
}

// castlingRookSquares returns the rook's (from, to) squares for a castling
// move, given the king's destination square.
func castlingRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case SquareG1:
		return SquareH1, SquareF1
	case SquareC1:
		return SquareA1, SquareD1
	case SquareG8:
		return SquareH8, SquareF8
	case SquareC8:
		return SquareA8, SquareD8
	default:
		panic("chesscore: castlingRookSquares: not a castling destination")
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// MakeMove looks up a move equivalent to m among b's legal moves and, if
// found, applies it and reports true. b is left unmodified if no equivalent
// legal move exists.
func MakeMove(b *Board, m Move) bool {
	legal := GenerateLegalMoves(*b)
	for _, candidate := range legal.Slice() {
		if candidate.equivalent(m) {
			applyUnchecked(b, candidate)
			return true
		}
	}
	return false
}
