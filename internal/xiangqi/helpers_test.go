package xiangqi

import (
	"sort"
	"strconv"
	"strings"
	"testing"
)

// at parses "c4" style coordinates for test tables.
func at(s string) Coord {
	row, err := strconv.Atoi(s[1:])
	if err != nil {
		panic("bad test coordinate " + s)
	}
	return Coord{Col: int(s[0]-'a') + 1, Row: row}
}

func ats(ss ...string) []Coord {
	out := make([]Coord, len(ss))
	for i, s := range ss {
		out[i] = at(s)
	}
	return sortedCoords(out)
}

func sortedCoords(cs []Coord) []Coord {
	out := append([]Coord(nil), cs...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Col != out[j].Col {
			return out[i].Col < out[j].Col
		}
		return out[i].Row < out[j].Row
	})
	return out
}

func mustFEN(t *testing.T, fen string) *Game {
	t.Helper()
	g, err := NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q): %v", fen, err)
	}
	return g
}

// play applies a "c4-c5" move and returns AttemptMove's error.
func play(g *Game, mv string) error {
	parts := strings.SplitN(mv, "-", 2)
	return g.AttemptMove(at(parts[0]), at(parts[1]))
}

type placement struct {
	pt    PieceType
	color Color
	c     string
}

// setup builds a game without FEN validation, for positions no legal game
// can reach (for example facing generals with red to move).
func setup(turn Color, ps ...placement) *Game {
	b := newBoard()
	for _, p := range ps {
		b.place(p.pt, p.color, at(p.c))
	}
	return newGame(b, turn)
}
