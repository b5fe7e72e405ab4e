// movegen.go implements the pseudo-legal move generator and the legality
// filter built on top of it. Output order is deterministic (pawns, knights,
// king, castling, then sliders) but not otherwise significant — callers
// should only rely on the resulting set of moves, not their order.

package chesscore

// Bitmasks for ranks 1, 2, 7, and 8, used by the pawn generator to spot
// starting and promotion ranks without per-square arithmetic.
const (
	rank1 uint64 = 0x00000000000000FF
	rank2 uint64 = 0x000000000000FF00
	rank7 uint64 = 0x00FF000000000000
	rank8 uint64 = 0xFF00000000000000
)

// castlingPath and castlingTransit are indexed by the bit position of the
// corresponding CastlingRights flag (0=WK, 1=WQ, 2=BK, 3=BQ, matching the
// iota order of CastleWK/CastleWQ/CastleBK/CastleBQ).
var castlingPath = [4]uint64{
	SquareF1.Bitboard() | SquareG1.Bitboard(),                 // WK
	SquareB1.Bitboard() | SquareC1.Bitboard() | SquareD1.Bitboard(), // WQ
	SquareF8.Bitboard() | SquareG8.Bitboard(),                 // BK
	SquareB8.Bitboard() | SquareC8.Bitboard() | SquareD8.Bitboard(), // BQ
}

// castlingTransit holds the transit square the king must pass through
// unattacked, per right. The destination square is checked separately in
// genCastlingMoves.
var castlingTransit = [4]Square{SquareF1, SquareD1, SquareF8, SquareD8}
var castlingDest = [4]Square{SquareG1, SquareC1, SquareG8, SquareC8}
var castlingRookFrom = [4]Square{SquareH1, SquareA1, SquareH8, SquareA8}

// GenerateLegalMoves returns every legal move in position b. For each
// pseudo-legal candidate it clones b, applies the move to the clone, and
// discards the candidate if that leaves the mover's own king in check — the
// brute-force approach this design favors over incremental pin tracking
// (see apply.go and the design notes in DESIGN.md).
func GenerateLegalMoves(b Board) MoveList {
	InitAttackTables()

	var pseudo MoveList
	genPseudoLegal(&b, &pseudo)

	var legal MoveList
	us := b.SideToMove
	for _, m := range pseudo.Slice() {
		clone := b
		applyUnchecked(&clone, m)
		if !clone.IsInCheck(us) {
			legal.Push(m)
		}
	}
	return legal
}

// genPseudoLegal appends every geometrically-plausible move for the side to
// move to list, ignoring only whether it leaves the mover's own king in
// check.
func genPseudoLegal(b *Board, list *MoveList) {
	genPawnMoves(b, list)
	genKnightMoves(b, list)
	genKingMoves(b, list)
	genCastlingMoves(b, list)
	genSlidingMoves(b, list)
}

func genPawnMoves(b *Board, list *MoveList) {
	us := b.SideToMove
	them := us.Opposite()
	pawns := b.Pieces[us][Pawn]
	enemies := b.Occupancy[them]

	var epBB uint64
	if b.HasEnPassant {
		epBB = b.EnPassant.Bitboard()
	}

	dir, startRank, promoRank := 8, rank2, rank8
	if us == Black {
		dir, startRank, promoRank = -8, rank7, rank1
	}

	for pawns != 0 {
		from := popLSB(&pawns)
		fromBB := from.Bitboard()

		single := from.Index() + dir
		singleBB := Square(single).Bitboard()
		if singleBB&b.All == 0 {
			pushPawnDest(list, from, Square(single), promoRank)

			if fromBB&startRank != 0 {
				double := Square(from.Index() + 2*dir)
				if double.Bitboard()&b.All == 0 {
					list.Push(NewMove(from, double))
				}
			}
		}

		attacks := tables().pawn[us][from.Index()] & (enemies | epBB)
		for attacks != 0 {
			to := popLSB(&attacks)
			switch {
			case b.HasEnPassant && to == b.EnPassant:
				list.Push(NewEnPassant(from, to))
			default:
				pushPawnDest(list, from, to, promoRank)
			}
		}
	}
}

// pushPawnDest appends a normal move to `to`, or the four promotion moves if
// `to` lands on the promotion rank.
func pushPawnDest(list *MoveList, from, to Square, promoRank uint64) {
	if to.Bitboard()&promoRank != 0 {
		for _, pt := range promotablePieceTypes {
			list.Push(NewPromotion(from, to, pt))
		}
		return
	}
	list.Push(NewMove(from, to))
}

func genKnightMoves(b *Board, list *MoveList) {
	us := b.SideToMove
	knights := b.Pieces[us][Knight]
	notOwn := ^b.Occupancy[us]
	for knights != 0 {
		from := popLSB(&knights)
		dests := tables().knight[from.Index()] & notOwn
		for dests != 0 {
			list.Push(NewMove(from, popLSB(&dests)))
		}
	}
}

func genKingMoves(b *Board, list *MoveList) {
	us := b.SideToMove
	kingBB := b.Pieces[us][King]
	if kingBB == 0 {
		return
	}
	from := Square(bitScan(kingBB))
	notOwn := ^b.Occupancy[us]
	dests := tables().king[from.Index()] & notOwn
	for dests != 0 {
		list.Push(NewMove(from, popLSB(&dests)))
	}
}

// genCastlingMoves appends castling moves. The side to move must not
// currently be in check; the path between king and rook must be empty; the
// king's transit and destination squares must both be unattacked by the
// opponent. Queenside castling does not require the rook-adjacent b-file
// square to be unattacked, only empty.
func genCastlingMoves(b *Board, list *MoveList) {
	us := b.SideToMove
	them := us.Opposite()

	if b.IsInCheck(us) {
		return
	}

	kingFrom := b.kingSquare(us)

	var rightsMask [2]CastlingRights
	var rightIndex [2]int
	if us == White {
		rightsMask = [2]CastlingRights{CastleWK, CastleWQ}
		rightIndex = [2]int{0, 1}
	} else {
		rightsMask = [2]CastlingRights{CastleBK, CastleBQ}
		rightIndex = [2]int{2, 3}
	}

	for i := 0; i < 2; i++ {
		mask := rightsMask[i]
		idx := rightIndex[i]
		if !b.Castling.Has(mask) {
			continue
		}
		if b.Pieces[us][Rook]&castlingRookFrom[idx].Bitboard() == 0 {
			continue
		}
		if b.All&castlingPath[idx] != 0 {
			continue
		}
		if b.isAttacked(castlingTransit[idx], them) {
			continue
		}
		if b.isAttacked(castlingDest[idx], them) {
			continue
		}
		list.Push(NewCastle(kingFrom, castlingDest[idx]))
	}
}

func genSlidingMoves(b *Board, list *MoveList) {
	us := b.SideToMove
	notOwn := ^b.Occupancy[us]
	occ := b.All

	genSlider(b, list, b.Pieces[us][Bishop], occ, notOwn, bishopAttacks)
	genSlider(b, list, b.Pieces[us][Rook], occ, notOwn, rookAttacks)
	genSlider(b, list, b.Pieces[us][Queen], occ, notOwn, queenAttacks)
}

func genSlider(b *Board, list *MoveList, pieces, occ, notOwn uint64, attacksFn func(Square, uint64) uint64) {
	for pieces != 0 {
		from := popLSB(&pieces)
		dests := attacksFn(from, occ) & notOwn
		for dests != 0 {
			list.Push(NewMove(from, popLSB(&dests)))
		}
	}
}
