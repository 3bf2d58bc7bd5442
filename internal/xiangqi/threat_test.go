package xiangqi

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInitialLayout(t *testing.T) {
	g := NewGame()
	s := g.Snapshot()

	var counts [2]int
	for row := 1; row <= Rows; row++ {
		for col := 1; col <= Cols; col++ {
			if sq, ok := s.At(Coord{Col: col, Row: row}); ok {
				counts[sq.Color]++
			}
		}
	}
	if counts[Red] != 16 || counts[Black] != 16 {
		t.Fatalf("piece counts red=%d black=%d, want 16/16", counts[Red], counts[Black])
	}

	want := map[string]Square{
		"e1":  {General, Red},
		"a1":  {Chariot, Red},
		"i1":  {Chariot, Red},
		"b1":  {Horse, Red},
		"c1":  {Elephant, Red},
		"d1":  {Advisor, Red},
		"b3":  {Cannon, Red},
		"h3":  {Cannon, Red},
		"a4":  {Soldier, Red},
		"e4":  {Soldier, Red},
		"i4":  {Soldier, Red},
		"e10": {General, Black},
		"a10": {Chariot, Black},
		"h10": {Horse, Black},
		"g10": {Elephant, Black},
		"f10": {Advisor, Black},
		"b8":  {Cannon, Black},
		"c7":  {Soldier, Black},
	}
	for c, sq := range want {
		got, ok := s.At(at(c))
		if !ok || got != sq {
			t.Errorf("%s: got %+v (occupied=%v), want %+v", c, got, ok, sq)
		}
	}
	if _, ok := s.At(at("e2")); ok {
		t.Errorf("e2 should be empty")
	}
	if g.Turn() != Red || g.State() != Unfinished {
		t.Fatalf("turn=%v state=%v", g.Turn(), g.State())
	}
	if g.InCheck(Red) || g.InCheck(Black) {
		t.Fatalf("nobody is in check at the start")
	}
}

func TestInitialThreats(t *testing.T) {
	g := NewGame()
	tests := []struct {
		from string
		want []Coord
	}{
		{"a1", ats("a2", "a3")},
		{"b1", ats("a3", "c3")}, // d2 is blocked by the elephant on c1
		{"c1", ats("a3", "e3")},
		{"d1", ats("e2")},
		{"e1", ats("e2")},
		{"a4", ats("a5")},
		{"b3", ats("b2", "a3", "c3", "d3", "e3", "f3", "g3", "b4", "b5", "b6", "b7", "b10")},
		{"e7", ats("e6")},
		{"h10", ats("g8", "i8")},
	}
	for _, tt := range tests {
		got := sortedCoords(g.Threats(at(tt.from)))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("threats of %s mismatch (-want +got):\n%s", tt.from, diff)
		}
	}
	if got := g.Threats(at("e5")); got != nil {
		t.Errorf("empty point has threats %v", got)
	}
	if got := g.Threats(Coord{Col: 0, Row: 11}); got != nil {
		t.Errorf("off-board point has threats %v", got)
	}
}

func TestElephantEyeAndRiver(t *testing.T) {
	open := mustFEN(t, "3k5/9/9/9/9/9/9/9/9/2B1K4 w")
	if diff := cmp.Diff(ats("a3", "e3"), sortedCoords(open.Threats(at("c1")))); diff != "" {
		t.Errorf("open elephant (-want +got):\n%s", diff)
	}

	blocked := mustFEN(t, "3k5/9/9/9/9/9/9/9/1p7/2B1K4 w")
	if diff := cmp.Diff(ats("e3"), sortedCoords(blocked.Threats(at("c1")))); diff != "" {
		t.Errorf("eye on b2 should remove a3 (-want +got):\n%s", diff)
	}

	river := mustFEN(t, "3k5/9/9/9/9/2B6/9/9/9/4K4 w")
	if diff := cmp.Diff(ats("a3", "e3"), sortedCoords(river.Threats(at("c5")))); diff != "" {
		t.Errorf("elephant must not cross the river (-want +got):\n%s", diff)
	}

	black := mustFEN(t, "3k5/9/9/9/2b6/9/9/9/9/4K4 w")
	if diff := cmp.Diff(ats("a8", "e8"), sortedCoords(black.Threats(at("c6")))); diff != "" {
		t.Errorf("black elephant (-want +got):\n%s", diff)
	}
}

func TestCannonScreens(t *testing.T) {
	t.Run("NoScreen", func(t *testing.T) {
		g := mustFEN(t, "3k5/9/9/9/9/C8/9/9/9/4K4 w")
		want := ats("a1", "a2", "a3", "a4", "a6", "a7", "a8", "a9", "a10",
			"b5", "c5", "d5", "e5", "f5", "g5", "h5", "i5")
		if diff := cmp.Diff(want, sortedCoords(g.Threats(at("a5")))); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	})

	t.Run("OneScreen", func(t *testing.T) {
		// 炮 a5，炮架 a7，a8 空，a9 黑马
		g := mustFEN(t, "3k5/n8/9/p8/9/C8/9/9/9/4K4 w")
		got := g.Threats(at("a5"))
		if !containsCoord(got, at("a9")) {
			t.Errorf("a9 should be threatened through the screen, got %v", got)
		}
		for _, c := range []string{"a7", "a8", "a10"} {
			if containsCoord(got, at(c)) {
				t.Errorf("%s should not be threatened, got %v", c, got)
			}
		}
		if !containsCoord(got, at("a6")) {
			t.Errorf("a6 is an empty slide point, got %v", got)
		}
	})

	t.Run("TwoScreens", func(t *testing.T) {
		// a6 红兵，a7 红马，a8 黑车：越过 a6 后遇到的是己方马，什么也吃不到
		g := mustFEN(t, "3k5/9/r8/N8/P8/C8/9/9/9/4K4 w")
		for _, c := range []string{"a6", "a7", "a8", "a9", "a10"} {
			if containsCoord(g.Threats(at("a5")), at(c)) {
				t.Errorf("%s should not be threatened", c)
			}
		}
	})
}

func TestSoldierSteps(t *testing.T) {
	g := mustFEN(t, "3k5/P8/9/9/4P4/4p4/9/9/9/4K4 w")
	tests := []struct {
		from string
		want []Coord
	}{
		{"a9", ats("a10", "b9")},
		{"e6", ats("d6", "e7", "f6")},
		{"e5", ats("d5", "e4", "f5")},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, sortedCoords(g.Threats(at(tt.from)))); diff != "" {
			t.Errorf("soldier %s (-want +got):\n%s", tt.from, diff)
		}
	}

	top := mustFEN(t, "P2k5/9/9/9/9/9/9/9/9/4K4 w")
	if diff := cmp.Diff(ats("b10"), sortedCoords(top.Threats(at("a10")))); diff != "" {
		t.Errorf("soldier on the last rank only steps sideways (-want +got):\n%s", diff)
	}
}

func TestFlyingGeneral(t *testing.T) {
	g := setup(Red,
		placement{General, Red, "e1"},
		placement{General, Black, "e10"},
	)
	red := g.Threats(at("e1"))
	black := g.Threats(at("e10"))
	if !containsCoord(red, at("e10")) {
		t.Errorf("red general should threaten e10, got %v", red)
	}
	if !containsCoord(black, at("e1")) {
		t.Errorf("black general should threaten e1, got %v", black)
	}
	seen := map[Coord]bool{}
	for _, c := range red {
		if seen[c] {
			t.Errorf("duplicate %s in %v", c, red)
		}
		seen[c] = true
	}
	if !g.InCheck(Red) || !g.InCheck(Black) {
		t.Errorf("facing generals check each other")
	}

	blocked := setup(Red,
		placement{General, Red, "e1"},
		placement{Horse, Red, "e5"},
		placement{General, Black, "e10"},
	)
	if containsCoord(blocked.Threats(at("e1")), at("e10")) {
		t.Errorf("a piece between the generals closes the file")
	}
}

func TestThreatSetsStayOnBoard(t *testing.T) {
	g := NewGame()
	for i, mv := range sampleGame {
		_ = play(g, mv.move)
		for _, p := range g.board.pieces {
			if !p.Alive {
				continue
			}
			for _, c := range p.threats {
				if !c.Valid() {
					t.Fatalf("move %d: %s on %s threatens off-board %v", i+1, p.Type, p.Pos, c)
				}
				if c == p.Pos {
					t.Fatalf("move %d: %s on %s threatens itself", i+1, p.Type, p.Pos)
				}
				if g.board.colorAt(c) == p.Color {
					t.Fatalf("move %d: %s on %s threatens friendly %v", i+1, p.Type, p.Pos, c)
				}
			}
		}
	}
}

func TestAttackIndexMatchesThreats(t *testing.T) {
	g := NewGame()
	check := func(step int) {
		t.Helper()
		for idx := 0; idx < NumPoints; idx++ {
			c := coordOf(idx)
			var want []Coord
			for _, p := range g.board.pieces {
				if p.Alive && containsCoord(p.threats, c) {
					want = append(want, p.Pos)
				}
			}
			if diff := cmp.Diff(sortedCoords(want), sortedCoords(g.ShadowedBy(c))); diff != "" {
				t.Fatalf("step %d: shadowed-by %s mismatch (-want +got):\n%s", step, c, diff)
			}
		}
	}
	check(0)
	for i, mv := range sampleGame {
		_ = play(g, mv.move)
		check(i + 1)
	}
}
