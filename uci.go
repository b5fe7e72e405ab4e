// uci.go parses Universal Chess Interface move strings. Move.UCI, the
// reverse direction, lives in types.go next to the Move constructors it
// formats.

package chesscore

import "fmt"

// ParseUCIMove parses a UCI move string ("e2e4", "e7e8q") into a Move. The
// result carries no game context: it cannot distinguish a normal move from a
// castle or an en passant capture, and callers must resolve it against a
// position's legal moves (see Move.equivalent, used internally by MakeMove)
// before applying it.
func ParseUCIMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("%w: UCI move %q must be 4 or 5 characters", ErrIllegalMove, s)
	}

	from, ok := squareFromAlgebraic(s[0:2])
	if !ok {
		return Move{}, fmt.Errorf("%w: invalid source square in %q", ErrIllegalMove, s)
	}
	to, ok := squareFromAlgebraic(s[2:4])
	if !ok {
		return Move{}, fmt.Errorf("%w: invalid destination square in %q", ErrIllegalMove, s)
	}

	if len(s) == 4 {
		return NewMove(from, to), nil
	}

	promo, ok := pieceTypeFromUCIChar(s[4])
	if !ok {
		return Move{}, fmt.Errorf("%w: invalid promotion character in %q", ErrIllegalMove, s)
	}
	return NewPromotion(from, to, promo), nil
}
