// Command perft walks the move generation tree to a given depth and counts
// leaf nodes, the standard way of validating a move generator against
// published reference counts. It is excluded from the chesscore package, as
// it is only useful for debugging and benchmarking move generation.
//
// See https://www.chessprogramming.org/Perft_Results
package main

import (
	"flag"
	"os"
	"time"

	"github.com/clinaresl/table"
	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvusch/chesscore"
)

var log = logging.MustGetLogger("perft")

var out = message.NewPrinter(language.English)

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.NewBackendFormatter(backend, logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{message}`,
	))
	logging.SetBackend(formatter)
}

// perft counts the leaf nodes of the legal move tree rooted at b, to depth.
func perft(b chesscore.Board, depth int) int {
	legal := chesscore.GenerateLegalMoves(b)

	if depth == 1 {
		return legal.Count
	}

	nodes := 0
	for _, m := range legal.Slice() {
		next := b
		chesscore.ApplyUnchecked(&next, m)
		nodes += perft(next, depth-1)
	}
	return nodes
}

// divide runs perft one ply at a time and reports the node count contributed
// by each root move, the standard way of locating a move generation bug by
// bisecting the tree against a reference engine's own divide output.
func divide(b chesscore.Board, depth int) (total int, rows [][]any) {
	legal := chesscore.GenerateLegalMoves(b)
	for _, m := range legal.Slice() {
		next := b
		chesscore.ApplyUnchecked(&next, m)
		var nodes int
		if depth == 1 {
			nodes = 1
		} else {
			nodes = perft(next, depth-1)
		}
		total += nodes
		rows = append(rows, []any{m.UCI(), out.Sprintf("%d", nodes)})
	}
	return total, rows
}

func main() {
	chesscore.InitAttackTables()

	fen := flag.String("fen", chesscore.Startpos, "FEN of the position to search from")
	depth := flag.Int("depth", 5, "perft depth")
	verbose := flag.Bool("divide", false, "print a per-root-move node count breakdown")
	flag.Parse()

	b, err := chesscore.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("invalid FEN %q: %v", *fen, err)
	}

	start := time.Now()

	if *verbose {
		total, rows := divide(b, *depth)
		tab, err := table.NewTable("||cl||")
		if err != nil {
			log.Fatalf("could not build divide table: %v", err)
		}
		tab.AddDoubleRule()
		for _, row := range rows {
			tab.AddRow(row...)
		}
		tab.AddDoubleRule()
		log.Infof("\n%v", tab)
		log.Infof("total nodes: %s", out.Sprintf("%d", total))
	} else {
		nodes := perft(b, *depth)
		elapsed := time.Since(start)
		log.Infof("depth %d: %s nodes in %s", *depth, out.Sprintf("%d", nodes), elapsed)
	}
}
