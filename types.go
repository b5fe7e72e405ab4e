// types.go contains declarations of the primitive chess types: squares,
// colors, piece types, pieces, moves, and castling rights.

package chesscore

import "fmt"

// Square is a board index in 0..64, encoded as rank*8+file (file 0 = a-file,
// rank 0 = rank 1).
type Square uint8

// NewSquare builds a square from a file (0=a..7=h) and a rank (0=1..7=8).
//
// Panics if file or rank is out of range: out-of-range input here is a
// programmer bug, not something external input can trigger (see fen.go and
// uci.go for the validating parsers external input actually goes through).
func NewSquare(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		panic("chesscore: file and rank must be 0..8")
	}
	return Square(rank*8 + file)
}

// SquareFromIndex builds a square from a raw index in 0..64.
//
// Panics if i is out of range.
func SquareFromIndex(i int) Square {
	if i < 0 || i >= 64 {
		panic("chesscore: square index must be 0..64")
	}
	return Square(i)
}

// Index returns the array index (0..64) of the square.
func (s Square) Index() int { return int(s) }

// Rank returns the rank (0..8, where 0 = rank 1).
func (s Square) Rank() int { return int(s) / 8 }

// File returns the file (0..8, where 0 = file a).
func (s Square) File() int { return int(s) % 8 }

// Bitboard returns a bitboard with only this square set.
func (s Square) Bitboard() uint64 { return 1 << uint(s) }

// String formats the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	return string(rune('a'+s.File())) + string(rune('1'+s.Rank()))
}

// squareFromAlgebraic parses algebraic notation like "e4". ok is false if str
// is not exactly two characters or names a file/rank outside a..h / 1..8.
func squareFromAlgebraic(str string) (sq Square, ok bool) {
	if len(str) != 2 {
		return 0, false
	}
	file := int(str[0] - 'a')
	rank := int(str[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return 0, false
	}
	return NewSquare(file, rank), true
}

// Color is the side to move: White or Black.
type Color uint8

const (
	White Color = iota
	Black
)

// Opposite returns the other color.
func (c Color) Opposite() Color { return c ^ 1 }

// Index returns 0 for White, 1 for Black, suitable for array indexing.
func (c Color) Index() int { return int(c) }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is one of the six chess piece types, ordered pawn first, king
// last.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// pieceTypes enumerates every piece type in order.
var pieceTypes = [6]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// promotablePieceTypes enumerates the four piece types a pawn may promote to.
var promotablePieceTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

func (pt PieceType) String() string {
	switch pt {
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
		return "unknown"
	}
}

// uciChar returns the UCI promotion character (q, r, b, n).
//
// Panics if called on Pawn or King, which are never promotion targets.
func (pt PieceType) uciChar() byte {
	switch pt {
	case Queen:
		return 'q'
	case Rook:
		return 'r'
	case Bishop:
		return 'b'
	case Knight:
		return 'n'
	default:
		panic(fmt.Sprintf("chesscore: %s is not a promotion piece", pt))
	}
}

// pieceTypeFromUCIChar parses a UCI promotion character, case-insensitive.
func pieceTypeFromUCIChar(c byte) (PieceType, bool) {
	switch c {
	case 'q', 'Q':
		return Queen, true
	case 'r', 'R':
		return Rook, true
	case 'b', 'B':
		return Bishop, true
	case 'n', 'N':
		return Knight, true
	default:
		return 0, false
	}
}

// Piece pairs a piece type with a color.
type Piece struct {
	Type  PieceType
	Color Color
}

// fenChar converts the piece to a FEN character (uppercase = White).
func (p Piece) fenChar() byte {
	var base byte
	switch p.Type {
	case Pawn:
		base = 'p'
	case Knight:
		base = 'n'
	case Bishop:
		base = 'b'
	case Rook:
		base = 'r'
	case Queen:
		base = 'q'
	case King:
		base = 'k'
	}
	if p.Color == White {
		return base - ('a' - 'A')
	}
	return base
}

// pieceFromFENChar parses a FEN piece character; ok is false for anything
// else.
func pieceFromFENChar(c byte) (p Piece, ok bool) {
	color := Black
	lower := c
	if c >= 'A' && c <= 'Z' {
		color = White
		lower = c + ('a' - 'A')
	}
	var pt PieceType
	switch lower {
	case 'p':
		pt = Pawn
	case 'n':
		pt = Knight
	case 'b':
		pt = Bishop
	case 'r':
		pt = Rook
	case 'q':
		pt = Queen
	case 'k':
		pt = King
	default:
		return Piece{}, false
	}
	return Piece{Type: pt, Color: color}, true
}

// MoveKind classifies a Move. Exactly one variant applies to any given move;
// Promo is only meaningful when Kind == MovePromotion.
type MoveKind uint8

const (
	MoveNormal MoveKind = iota
	MoveCastle
	MoveEnPassant
	MovePromotion
)

// Move is a chess move: source square, destination square, and a
// classification. Promo carries the promotion piece type and is only
// meaningful when Kind == MovePromotion; callers must not rely on its value
// otherwise.
type Move struct {
	From  Square
	To    Square
	Kind  MoveKind
	Promo PieceType
}

// NewMove builds a plain (non-special) move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to, Kind: MoveNormal}
}

// NewCastle builds a castling move (the king's from/to squares).
func NewCastle(from, to Square) Move {
	return Move{From: from, To: to, Kind: MoveCastle}
}

// NewEnPassant builds an en passant capture.
func NewEnPassant(from, to Square) Move {
	return Move{From: from, To: to, Kind: MoveEnPassant}
}

// NewPromotion builds a pawn promotion move.
func NewPromotion(from, to Square, promo PieceType) Move {
	return Move{From: from, To: to, Kind: MovePromotion, Promo: promo}
}

// UCI formats the move as a UCI string, e.g. "e2e4", "e7e8q".
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.Kind == MovePromotion {
		s += string(m.Promo.uciChar())
	}
	return s
}

// equivalent reports whether two moves have the same from, to, and (when
// applicable) promotion piece — the notion of equality make_move uses to
// resolve an externally-constructed move against the legal move list.
func (m Move) equivalent(other Move) bool {
	if m.From != other.From || m.To != other.To {
		return false
	}
	if m.Kind == MovePromotion || other.Kind == MovePromotion {
		return m.Kind == MovePromotion && other.Kind == MovePromotion && m.Promo == other.Promo
	}
	return true
}

// CastlingRights is a 4-bit field tracking which castling moves remain
// possible: WK, WQ, BK, BQ.
type CastlingRights uint8

const (
	CastleWK CastlingRights = 1 << iota
	CastleWQ
	CastleBK
	CastleBQ
)

// NoCastling is the empty set of castling rights.
const NoCastling CastlingRights = 0

// AllCastling is every castling right.
const AllCastling CastlingRights = CastleWK | CastleWQ | CastleBK | CastleBQ

// Has reports whether every bit set in mask is also set in c.
func (c CastlingRights) Has(mask CastlingRights) bool { return c&mask == mask }

// Clear returns c with every bit in mask cleared.
func (c CastlingRights) Clear(mask CastlingRights) CastlingRights { return c &^ mask }

// castlingMaskForSquare returns the bits that become impossible when any
// piece enters or leaves sq: the rook corners and the two king squares.
// Returns 0 for every other square.
func castlingMaskForSquare(sq Square) CastlingRights {
	switch sq {
	case SquareA1:
		return CastleWQ
	case SquareE1:
		return CastleWK | CastleWQ
	case SquareH1:
		return CastleWK
	case SquareA8:
		return CastleBQ
	case SquareE8:
		return CastleBK | CastleBQ
	case SquareH8:
		return CastleBK
	default:
		return NoCastling
	}
}

// Named squares used throughout castling, en-passant logic, and tests.
const (
	SquareA1 Square = 0
	SquareB1 Square = 1
	SquareC1 Square = 2
	SquareD1 Square = 3
	SquareE1 Square = 4
	SquareF1 Square = 5
	SquareG1 Square = 6
	SquareH1 Square = 7

	SquareA2 Square = 8
	SquareB2 Square = 9
	SquareC2 Square = 10
	SquareD2 Square = 11
	SquareE2 Square = 12
	SquareF2 Square = 13
	SquareG2 Square = 14
	SquareH2 Square = 15

	SquareB3 Square = 17
	SquareC3 Square = 18
	SquareE3 Square = 20

	SquareC4 Square = 26
	SquareE4 Square = 28

	SquareD5 Square = 35
	SquareE5 Square = 36

	SquareB7 Square = 49
	SquareC7 Square = 50
	SquareE7 Square = 52

	SquareA8 Square = 56
	SquareB8 Square = 57
	SquareC8 Square = 58
	SquareD8 Square = 59
	SquareE8 Square = 60
	SquareF8 Square = 61
	SquareG8 Square = 62
	SquareH8 Square = 63
)

// MoveList stores pseudo-legal or legal moves in a preallocated array, to
// avoid per-position dynamic allocation. 218 is the maximum number of legal
// moves in any reachable chess position.
// See https://www.talkchess.com/forum/viewtopic.php?t=61792
type MoveList struct {
	Moves [218]Move
	Count int
}

// Push appends m to the list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.Count] = m
	l.Count++
}

// Slice returns the populated portion of the list.
func (l *MoveList) Slice() []Move { return l.Moves[:l.Count] }

// GameState is the outcome of a position (or "still playing").
//
// Threefold repetition is not classified here — tracking position history
// to detect it is left to a caller that keeps a game log, per the design's
// open question.
type GameState uint8

const (
	InProgress GameState = iota
	Checkmate
	Stalemate
	Draw
)

func (s GameState) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}
