package chesscore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFENRoundTrip(t *testing.T) {
	fens := []string{
		Startpos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		b, err := ParseFEN(fen)
		require.NoError(t, err, fen)
		require.Equal(t, fen, b.String())
	}
}

func TestParseFENRejectsInvalidInput(t *testing.T) {
	testcases := []struct {
		name string
		fen  string
	}{
		{"too few fields", "8/8/8/8/8/8/8/8 w"},
		{"wrong rank count", "8/8/8/8/8/8/8 w - - 0 1"},
		{"rank too short", "7/8/8/8/8/8/8/8 w - - 0 1"},
		{"rank too long", "9/8/8/8/8/8/8/8 w - - 0 1"},
		{"bad piece letter", "xxxxxxxx/8/8/8/8/8/8/8 w - - 0 1"},
		{"bad side to move", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"no white king", "8/8/8/8/8/8/8/8 w - - 0 1"},
		{"two white kings", "KK6/8/8/8/8/8/8/k7 w - - 0 1"},
		{"en passant on wrong rank", "4k3/8/8/8/8/8/8/4K3 w - e4 0 1"},
		{"non-numeric halfmove clock", "4k3/8/8/8/8/8/8/4K3 w - - x 1"},
	}
	for _, tc := range testcases {
		_, err := ParseFEN(tc.fen)
		require.Error(t, err, tc.name)
		require.True(t, errors.Is(err, ErrInvalidFEN), tc.name)
	}
}

func TestParseFENDefaultsClocks(t *testing.T) {
	b, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - -")
	require.NoError(t, err)
	require.Equal(t, 0, b.HalfmoveClock)
	require.Equal(t, 1, b.FullmoveNumber)
}
