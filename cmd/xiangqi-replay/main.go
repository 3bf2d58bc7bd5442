package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"

	"xiangqi/internal/notation"
	"xiangqi/internal/session"
	"xiangqi/internal/xiangqi"
)

func main() {
	fen := flag.String("fen", xiangqi.StartFEN, "starting position")
	moves := flag.String("moves", "", "moves to replay, e.g. \"c4-c5 e7-e6\"")
	level := flag.String("log-level", "info", "debug, info, warn, error")
	strict := flag.Bool("strict", false, "stop at the first rejected move")
	flag.Parse()

	lvl, err := log.ParseLevel(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := &log.Logger{Handler: text.New(os.Stderr), Level: lvl}

	if err := run(logger, *fen, *moves, *strict); err != nil {
		logger.WithError(err).Error("replay failed")
		os.Exit(1)
	}
}

func run(logger log.Interface, fen, moveList string, strict bool) error {
	list, err := notation.ParseMoves(moveList)
	if err != nil {
		return err
	}

	m := session.NewManager(logger)
	gs, err := m.NewGameFromFEN(fen)
	if err != nil {
		return err
	}

	rejected := 0
	for _, mv := range list {
		if err := m.Play(gs.ID, mv.From, mv.To); err != nil {
			rejected++
			if strict {
				return err
			}
		}
	}

	v, err := m.Snapshot(gs.ID)
	if err != nil {
		return err
	}
	printBoard(v.Board)
	fmt.Println("FEN:", v.FEN)
	fmt.Println("State:", v.State)
	fmt.Printf("Accepted: %d, rejected: %d\n", len(v.Moves), rejected)
	if v.State == xiangqi.Unfinished && v.InCheck[v.Turn] {
		fmt.Println(v.Turn, "is in check")
	}
	return nil
}

func printBoard(s xiangqi.Snapshot) {
	for row := xiangqi.Rows; row >= 1; row-- {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%2d ", row)
		for col := 1; col <= xiangqi.Cols; col++ {
			sq, ok := s.At(xiangqi.Coord{Col: col, Row: row})
			if !ok {
				sb.WriteString(" .")
				continue
			}
			sb.WriteByte(' ')
			sb.WriteString(squareLetter(sq))
		}
		fmt.Println(sb.String())
	}
	fmt.Println("    a b c d e f g h i")
}

var letters = map[xiangqi.PieceType]string{
	xiangqi.General:  "k",
	xiangqi.Advisor:  "a",
	xiangqi.Elephant: "b",
	xiangqi.Horse:    "n",
	xiangqi.Chariot:  "r",
	xiangqi.Cannon:   "c",
	xiangqi.Soldier:  "p",
}

func squareLetter(sq xiangqi.Square) string {
	l := letters[sq.Type]
	if sq.Color == xiangqi.Red {
		return strings.ToUpper(l)
	}
	return l
}
