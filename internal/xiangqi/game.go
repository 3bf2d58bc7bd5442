package xiangqi

// Game is one session: board, side to move, outcome and cached check flags.
// A Game is not safe for concurrent use.
type Game struct {
	board   *Board
	turn    Color
	state   State
	inCheck [2]bool
}

// NewGame returns the standard 32-piece start position with red to move.
func NewGame() *Game {
	return newGame(parseInitialBoard(), Red)
}

func newGame(b *Board, turn Color) *Game {
	b.hash = b.calculateHash()
	b.refresh()
	g := &Game{board: b, turn: turn}
	g.inCheck[Red] = b.inCheck(Red)
	g.inCheck[Black] = b.inCheck(Black)
	return g
}

func (g *Game) State() State { return g.state }

func (g *Game) Turn() Color { return g.turn }

// InCheck reports whether color's general is attacked. The flags are
// refreshed after every accepted move, so they always match the attack index.
// Colors other than Red and Black are never in check.
func (g *Game) InCheck(color Color) bool {
	if !color.valid() {
		return false
	}
	return g.inCheck[color]
}

// IsCheckmate reports whether color is in check with no escaping move.
func (g *Game) IsCheckmate(color Color) bool {
	return color.valid() && g.board.checkmated(color)
}

// IsStalemate reports whether color is not in check and has no legal move.
func (g *Game) IsStalemate(color Color) bool {
	return color.valid() && g.board.stalemated(color)
}

func (g *Game) Snapshot() Snapshot { return g.board.snapshot() }

// Threats returns the threat set of the piece on c, or nil for an empty or
// off-board point.
func (g *Game) Threats(c Coord) []Coord {
	if !c.Valid() {
		return nil
	}
	p, ok := g.board.at(c)
	if !ok {
		return nil
	}
	out := make([]Coord, len(p.threats))
	copy(out, p.threats)
	return out
}

// ShadowedBy returns the positions of every piece currently threatening c.
func (g *Game) ShadowedBy(c Coord) []Coord {
	if !c.Valid() {
		return nil
	}
	ids := g.board.shadowedBy[c.index()]
	out := make([]Coord, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.board.pieces[id].Pos)
	}
	return out
}

// LegalMoves lists every move the side to move can currently play.
// It is empty once the game is decided.
func (g *Game) LegalMoves() []Move {
	if g.state != Unfinished {
		return nil
	}
	return g.board.legalMoves(g.turn)
}

// Hash is the Zobrist key of the board plus side to move.
func (g *Game) Hash() uint64 {
	h := g.board.hash
	if g.turn == Black {
		h ^= zobristSide
	}
	return h
}

// CalculateHash recomputes Hash from scratch.
func (g *Game) CalculateHash() uint64 {
	h := g.board.calculateHash()
	if g.turn == Black {
		h ^= zobristSide
	}
	return h
}
