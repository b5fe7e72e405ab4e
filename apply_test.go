package chesscore

import "testing"

func TestApplyUnchecked(t *testing.T) {
	testcases := []struct {
		name     string
		fenStr   string
		expected string
		move     Move
	}{
		{
			"pawn capture",
			"rnbqkbnr/ppp1pppp/8/3p4/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 1",
			"rnbqkbnr/ppp1pppp/8/3P4/2B5/5N2/PPPP1PPP/RNBQK2R b KQkq - 0 1",
			NewMove(SquareE4, SquareD5),
		},
		{
			"black en passant",
			"rnbqkbnr/ppp1pppp/8/8/1Pp5/5N2/P1PP1PPP/RNBQK2R b KQkq b3 0 1",
			"rnbqkbnr/ppp1pppp/8/8/8/1p3N2/P1PP1PPP/RNBQK2R w KQkq - 0 2",
			NewEnPassant(SquareC4, SquareB3),
		},
		{
			"capture promotion",
			"rnbqkbnr/ppP1pppp/8/8/8/5N2/P1PP1PPP/RNBQK2R w KQkq - 0 1",
			"rRbqkbnr/pp2pppp/8/8/8/5N2/P1PP1PPP/RNBQK2R b KQkq - 0 1",
			NewPromotion(SquareC7, SquareB8, Rook),
		},
		{
			"white O-O",
			"2bqkbnr/4pppp/8/8/8/3N1N2/P1PP1PPP/RqBQK2R w KQkq - 0 1",
			"2bqkbnr/4pppp/8/8/8/3N1N2/P1PP1PPP/RqBQ1RK1 b kq - 1 1",
			NewCastle(SquareE1, SquareG1),
		},
		{
			"black O-O-O",
			"r3kbnr/4pppp/8/8/8/3N1N2/P1PP1PPP/RqBQ1RK1 b KQkq - 0 1",
			"2kr1bnr/4pppp/8/8/8/3N1N2/P1PP1PPP/RqBQ1RK1 w KQ - 1 2",
			NewCastle(SquareE8, SquareC8),
		},
		{
			"white double pawn push",
			"4k3/4p3/8/8/8/8/4P3/4K3 w - - 0 1",
			"4k3/4p3/8/8/4P3/8/8/4K3 b - e3 0 1",
			NewMove(SquareE2, SquareE4),
		},
		{
			"black double pawn push",
			"4k3/4p3/8/8/4P3/8/8/4K3 b - e3 0 1",
			"4k3/8/8/4p3/4P3/8/8/4K3 w - e6 0 2",
			NewMove(SquareE7, SquareE5),
		},
		{
			"quiet move resets en passant and increments clock",
			"4k2r/4p3/8/8/4P3/8/8/4K3 b - e3 0 1",
			"4k1r1/4p3/8/8/4P3/8/8/4K3 w - - 1 2",
			NewMove(SquareH8, SquareG8),
		},
	}

	for _, tc := range testcases {
		b, err := ParseFEN(tc.fenStr)
		if err != nil {
			t.Fatalf("test %q: ParseFEN failed: %v", tc.name, err)
		}
		ApplyUnchecked(&b, tc.move)

		got := b.String()
		if got != tc.expected {
			t.Fatalf("test %q failed: expected %s got %s", tc.name, tc.expected, got)
		}
	}
}

func BenchmarkApplyUnchecked(b *testing.B) {
	before, err := ParseFEN("rnbqkbnr/pppppppp/8/8/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 1")
	if err != nil {
		b.Fatal(err)
	}

	for i := 0; i < b.N; i++ {
		pos := before
		ApplyUnchecked(&pos, NewCastle(SquareE1, SquareG1))
	}
}

func TestMakeMoveRejectsIllegalMove(t *testing.T) {
	b := NewBoard()
	// e2 pawn cannot jump to e5 in one move.
	if MakeMove(&b, NewMove(SquareE2, SquareE5)) {
		t.Fatal("expected illegal move to be rejected")
	}
}

func TestMakeMoveAppliesMatchingLegalMove(t *testing.T) {
	b := NewBoard()
	if !MakeMove(&b, NewMove(SquareE2, SquareE4)) {
		t.Fatal("expected e2e4 to be accepted")
	}
	if b.SideToMove != Black {
		t.Fatal("expected side to move to flip to black")
	}
	if !b.HasEnPassant || b.EnPassant != SquareE3 {
		t.Fatal("expected en passant target to be set to e3")
	}
}
