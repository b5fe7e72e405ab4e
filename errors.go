// errors.go declares the sentinel errors returned across the package
// boundary. Internal helpers panic on programmer misuse (see types.go);
// these are reserved for invalid external input and reachable by
// errors.Is.

package chesscore

import "errors"

var (
	// ErrInvalidFEN is returned when a FEN string fails validation.
	ErrInvalidFEN = errors.New("chesscore: invalid FEN")

	// ErrIllegalMove is returned when a move does not match any legal move
	// in the current position.
	ErrIllegalMove = errors.New("chesscore: illegal move")

	// ErrGameOver is returned when a move is attempted in a game that has
	// already reached a terminal state.
	ErrGameOver = errors.New("chesscore: game already over")
)
