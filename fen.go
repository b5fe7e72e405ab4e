// fen.go implements conversions between Forsyth-Edwards Notation (FEN)
// strings and Board values. Like ParseUCIMove in uci.go, ParseFEN is a
// validating external-input boundary: it returns ErrInvalidFEN rather than
// panicking on malformed input.

package chesscore

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFEN parses a FEN string into a Board, validating piece placement,
// side to move, castling rights, the en passant target square, and both
// move counters. Unknown castling letters are ignored rather than rejected;
// every other malformed field is reported through ErrInvalidFEN.
func ParseFEN(fen string) (Board, error) {
	var b Board

	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Board{}, fmt.Errorf("%w: expected at least 4 fields, got %d", ErrInvalidFEN, len(fields))
	}

	if err := parsePlacement(&b, fields[0]); err != nil {
		return Board{}, err
	}

	if err := requireExactlyOneKingPerSide(&b); err != nil {
		return Board{}, err
	}

	switch fields[1] {
	case "w":
		b.SideToMove = White
	case "b":
		b.SideToMove = Black
	default:
		return Board{}, fmt.Errorf("%w: active color must be \"w\" or \"b\", got %q", ErrInvalidFEN, fields[1])
	}

	b.Castling = parseCastlingRights(fields[2])

	if err := parseEnPassant(&b, fields[3]); err != nil {
		return Board{}, err
	}

	b.HalfmoveClock = 0
	b.FullmoveNumber = 1
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return Board{}, fmt.Errorf("%w: invalid halfmove clock %q", ErrInvalidFEN, fields[4])
		}
		b.HalfmoveClock = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 0 {
			return Board{}, fmt.Errorf("%w: invalid fullmove number %q", ErrInvalidFEN, fields[5])
		}
		b.FullmoveNumber = n
	}

	return b, nil
}

// parsePlacement fills b's piece bitboards from the first FEN field,
// rejecting ranks that don't sum to exactly 8 squares and any character that
// isn't a recognized piece letter, digit 1-8, or rank separator.
func parsePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}

	// FEN lists ranks from 8 down to 1.
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				piece, ok := pieceFromFENChar(c)
				if !ok {
					return fmt.Errorf("%w: invalid piece character %q", ErrInvalidFEN, string(c))
				}
				if file > 7 {
					return fmt.Errorf("%w: rank %d has more than 8 squares", ErrInvalidFEN, rank+1)
				}
				b.placePiece(piece, NewSquare(file, rank))
				file++
			}
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %d has %d squares, want 8", ErrInvalidFEN, rank+1, file)
		}
	}
	return nil
}

func requireExactlyOneKingPerSide(b *Board) error {
	if popCount(b.Pieces[White][King]) != 1 {
		return fmt.Errorf("%w: white must have exactly one king", ErrInvalidFEN)
	}
	if popCount(b.Pieces[Black][King]) != 1 {
		return fmt.Errorf("%w: black must have exactly one king", ErrInvalidFEN)
	}
	return nil
}

func parseCastlingRights(field string) CastlingRights {
	var c CastlingRights
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			c |= CastleWK
		case 'Q':
			c |= CastleWQ
		case 'k':
			c |= CastleBK
		case 'q':
			c |= CastleBQ
		}
	}
	return c
}

// parseEnPassant accepts "-" (no target) or an algebraic square on rank 3 or
// 6, the only ranks a real en passant target can occupy.
func parseEnPassant(b *Board, field string) error {
	if field == "-" {
		b.HasEnPassant = false
		return nil
	}
	sq, ok := squareFromAlgebraic(field)
	if !ok {
		return fmt.Errorf("%w: invalid en passant square %q", ErrInvalidFEN, field)
	}
	if sq.Rank() != 2 && sq.Rank() != 5 {
		return fmt.Errorf("%w: en passant square %q must be on rank 3 or 6", ErrInvalidFEN, field)
	}
	b.HasEnPassant = true
	b.EnPassant = sq
	return nil
}

// String serializes b to a FEN string.
func (b Board) String() string {
	var fen strings.Builder
	fen.Grow(64)

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			piece, ok := b.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				fen.WriteByte('0' + byte(empty))
				empty = 0
			}
			fen.WriteByte(piece.fenChar())
		}
		if empty > 0 {
			fen.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			fen.WriteByte('/')
		}
	}

	fen.WriteByte(' ')
	if b.SideToMove == White {
		fen.WriteByte('w')
	} else {
		fen.WriteByte('b')
	}

	fen.WriteByte(' ')
	if b.Castling == NoCastling {
		fen.WriteByte('-')
	} else {
		if b.Castling.Has(CastleWK) {
			fen.WriteByte('K')
		}
		if b.Castling.Has(CastleWQ) {
			fen.WriteByte('Q')
		}
		if b.Castling.Has(CastleBK) {
			fen.WriteByte('k')
		}
		if b.Castling.Has(CastleBQ) {
			fen.WriteByte('q')
		}
	}

	fen.WriteByte(' ')
	if b.HasEnPassant {
		fen.WriteString(b.EnPassant.String())
	} else {
		fen.WriteByte('-')
	}

	fmt.Fprintf(&fen, " %d %d", b.HalfmoveClock, b.FullmoveNumber)

	return fen.String()
}
