package xiangqi

// undo records everything needed to reverse one apply exactly.
type undo struct {
	mover    PieceID
	captured PieceID
	from, to Coord
	hash     uint64
}

// apply 走子：不做任何合法性校验，也不刷新威胁集合
func (b *Board) apply(from, to Coord) undo {
	u := undo{
		mover:    b.cells[from.index()],
		captured: b.cells[to.index()],
		from:     from,
		to:       to,
		hash:     b.hash,
	}
	p := &b.pieces[u.mover]

	h := b.hash ^ pieceHashKey(p, from)
	if u.captured != noID {
		cp := &b.pieces[u.captured]
		h ^= pieceHashKey(cp, to)
		cp.Alive = false
	}
	p.Pos = to
	h ^= pieceHashKey(p, to)

	b.cells[to.index()] = u.mover
	b.cells[from.index()] = noID
	b.hash = h
	return u
}

// revert 撤销 apply：把原来的棋子（同一个 arena 槽位）放回原处
func (b *Board) revert(u undo) {
	b.pieces[u.mover].Pos = u.from
	b.cells[u.from.index()] = u.mover
	b.cells[u.to.index()] = u.captured
	if u.captured != noID {
		cp := &b.pieces[u.captured]
		cp.Alive = true
		cp.Pos = u.to
	}
	b.hash = u.hash
}

// simulate applies from-to, refreshes, reports whether color's general is
// safe afterwards, and always restores the board before returning.
func (b *Board) simulate(from, to Coord, color Color) (safe bool) {
	u := b.apply(from, to)
	defer func() {
		b.revert(u)
		b.refresh()
	}()
	b.refresh()
	return !b.inCheck(color)
}

// AttemptMove validates and plays one move for the side to move.
// A nil error means the move was accepted; otherwise the error is a
// *MoveError and the game is left exactly as it was.
func (g *Game) AttemptMove(from, to Coord) error {
	if !from.Valid() || !to.Valid() {
		return reject(ErrOffBoard, from, to)
	}
	b := g.board
	p, ok := b.at(from)
	if !ok {
		return reject(ErrNoPiece, from, to)
	}
	if p.Color != g.turn {
		return reject(ErrWrongTurn, from, to)
	}
	if b.colorAt(to) == g.turn {
		return reject(ErrOwnPiece, from, to)
	}
	if g.state != Unfinished {
		return reject(ErrGameOver, from, to)
	}
	if !containsCoord(p.threats, to) {
		return reject(ErrUnreachable, from, to)
	}

	u := b.apply(from, to)
	b.refresh()
	if b.inCheck(g.turn) {
		b.revert(u)
		b.refresh()
		return reject(ErrSelfCheck, from, to)
	}

	g.settle()
	return nil
}

// MakeMove is AttemptMove reduced to accepted / rejected.
func (g *Game) MakeMove(from, to Coord) bool {
	return g.AttemptMove(from, to) == nil
}

// settle 更新将军状态与胜负，然后换边
func (g *Game) settle() {
	mover := g.turn
	opp := mover.Opposite()

	g.inCheck[Red] = g.board.inCheck(Red)
	g.inCheck[Black] = g.board.inCheck(Black)

	// 先判将死（前提是被将军），否则判困毙；两者都是走子方胜
	if g.inCheck[opp] {
		if g.board.checkmated(opp) {
			g.state = winner(mover)
		}
	} else if g.board.stalemated(opp) {
		g.state = winner(mover)
	}
	g.turn = opp
}
