// engine.go provides Game, the boundary facade most external callers (UCI
// engines, GUIs, test harnesses) use instead of manipulating a Board
// directly. It adds the one piece of state Board intentionally omits: move
// history.

package chesscore

import "fmt"

// BoardSnapshot is a read-only rendering of a position, suitable for
// serialization to a caller outside this package: the occupied squares plus
// every field a caller would otherwise have to re-derive from a FEN string.
type BoardSnapshot struct {
	Squares []SquarePiece

	CastleWK, CastleWQ, CastleBK, CastleBQ bool

	HasEnPassant bool
	EnPassant    Square

	HalfmoveClock  int
	FullmoveNumber int
}

// SquarePiece pairs a square with the piece standing on it.
type SquarePiece struct {
	Square Square
	Piece  Piece
}

// HistoryEntry records one applied move alongside the FEN it produced.
type HistoryEntry struct {
	UCI string
	FEN string
}

// Game wraps a Board with move history and game-over bookkeeping, the
// surface most callers outside this package should use.
type Game struct {
	board   Board
	history []HistoryEntry
}

// NewGame returns a Game starting from the standard initial position.
func NewGame() *Game {
	return &Game{board: NewBoard()}
}

// NewGameFromFEN returns a Game starting from the position fen describes.
func NewGameFromFEN(fen string) (*Game, error) {
	b, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{board: b}, nil
}

// FEN returns the current position as a FEN string.
func (g *Game) FEN() string {
	return g.board.String()
}

// Turn returns the side to move.
func (g *Game) Turn() Color {
	return g.board.SideToMove
}

// IsCheck reports whether the side to move is in check.
func (g *Game) IsCheck() bool {
	return g.board.IsInCheck(g.board.SideToMove)
}

// Result returns the current position's game state.
func (g *Game) Result() GameState {
	return Result(g.board)
}

// PieceAt returns the piece standing on sq, if any.
func (g *Game) PieceAt(sq Square) (Piece, bool) {
	return g.board.PieceAt(sq)
}

// BoardState returns a full snapshot of the current position: every
// occupied square, castling rights, the en passant target (if any), and
// both move clocks.
func (g *Game) BoardState() BoardSnapshot {
	b := &g.board
	snap := BoardSnapshot{
		CastleWK: b.Castling.Has(CastleWK),
		CastleWQ: b.Castling.Has(CastleWQ),
		CastleBK: b.Castling.Has(CastleBK),
		CastleBQ: b.Castling.Has(CastleBQ),

		HasEnPassant: b.HasEnPassant,
		EnPassant:    b.EnPassant,

		HalfmoveClock:  b.HalfmoveClock,
		FullmoveNumber: b.FullmoveNumber,
	}
	for sq := 0; sq < 64; sq++ {
		if piece, ok := b.PieceAt(Square(sq)); ok {
			snap.Squares = append(snap.Squares, SquarePiece{Square: Square(sq), Piece: piece})
		}
	}
	return snap
}

// LegalMoves returns every legal move in the current position, formatted as
// UCI strings.
func (g *Game) LegalMoves() []string {
	legal := GenerateLegalMoves(g.board)
	moves := make([]string, 0, legal.Count)
	for _, m := range legal.Slice() {
		moves = append(moves, m.UCI())
	}
	return moves
}

// MakeMove parses and applies a UCI move string. It returns ErrGameOver if
// the game has already reached a terminal state, or ErrIllegalMove if the
// move does not match any legal move in the current position.
func (g *Game) MakeMove(uci string) error {
	if state := Result(g.board); state != InProgress {
		return fmt.Errorf("%w: position is %s", ErrGameOver, state)
	}

	candidate, err := ParseUCIMove(uci)
	if err != nil {
		return err
	}

	if !MakeMove(&g.board, candidate) {
		return fmt.Errorf("%w: %q", ErrIllegalMove, uci)
	}

	g.history = append(g.history, HistoryEntry{UCI: uci, FEN: g.board.String()})
	return nil
}

// History returns the sequence of moves applied so far, each paired with the
// FEN it produced.
func (g *Game) History() []HistoryEntry {
	return g.history
}

// Reset restores the game to the standard initial position and clears
// history.
func (g *Game) Reset() {
	g.board = NewBoard()
	g.history = nil
}
