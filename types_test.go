package chesscore

import "testing"

func TestSquareString(t *testing.T) {
	testcases := []struct {
		sq   Square
		want string
	}{
		{SquareA1, "a1"},
		{SquareE4, "e4"},
		{SquareH8, "h8"},
	}
	for _, tc := range testcases {
		if got := tc.sq.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", tc.sq, got, tc.want)
		}
	}
}

func TestSquareFromAlgebraicRoundTrip(t *testing.T) {
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			sq := NewSquare(file, rank)
			got, ok := squareFromAlgebraic(sq.String())
			if !ok || got != sq {
				t.Errorf("squareFromAlgebraic(%q) = %d, %v, want %d, true", sq.String(), got, ok, sq)
			}
		}
	}
}

func TestMoveUCI(t *testing.T) {
	testcases := []struct {
		m    Move
		want string
	}{
		{NewMove(SquareE2, SquareE4), "e2e4"},
		{NewPromotion(SquareE7, SquareE8, Queen), "e7e8q"},
		{NewPromotion(NewSquare(0, 6), SquareB8, Knight), "a7b8n"},
	}
	for _, tc := range testcases {
		if got := tc.m.UCI(); got != tc.want {
			t.Errorf("UCI() = %q, want %q", got, tc.want)
		}
	}
}

func TestMoveEquivalent(t *testing.T) {
	a := NewMove(SquareE2, SquareE4)
	b := NewMove(SquareE2, SquareE4)
	if !a.equivalent(b) {
		t.Fatal("identical normal moves should be equivalent")
	}

	promoQ := NewPromotion(SquareE7, SquareE8, Queen)
	promoR := NewPromotion(SquareE7, SquareE8, Rook)
	if promoQ.equivalent(promoR) {
		t.Fatal("promotions to different pieces must not be equivalent")
	}

	plain := NewMove(SquareE7, SquareE8)
	if plain.equivalent(promoQ) || promoQ.equivalent(plain) {
		t.Fatal("a promotion must never be equivalent to a non-promotion move to the same squares")
	}
}

func TestParseUCIMove(t *testing.T) {
	m, err := ParseUCIMove("e7e8q")
	if err != nil {
		t.Fatalf("ParseUCIMove: %v", err)
	}
	if m.From != SquareE7 || m.To != SquareE8 || m.Kind != MovePromotion || m.Promo != Queen {
		t.Fatalf("ParseUCIMove(\"e7e8q\") = %+v", m)
	}

	if _, err := ParseUCIMove("e7e8x"); err == nil {
		t.Fatal("expected error for invalid promotion character")
	}
	if _, err := ParseUCIMove("e7"); err == nil {
		t.Fatal("expected error for too-short move string")
	}
}

func TestCastlingMaskForSquare(t *testing.T) {
	if castlingMaskForSquare(SquareE1) != CastleWK|CastleWQ {
		t.Fatal("king home square should clear both white castling rights")
	}
	if castlingMaskForSquare(SquareH1) != CastleWK {
		t.Fatal("kingside rook square should clear only CastleWK")
	}
	if castlingMaskForSquare(SquareE4) != NoCastling {
		t.Fatal("a non-corner, non-king square should clear nothing")
	}
}
