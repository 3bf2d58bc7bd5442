package xiangqi

// candidates 拷贝某方所有棋子的威胁点，模拟走子会改写 threats 切片
func (b *Board) candidates(color Color) []Move {
	var moves []Move
	for i := range b.pieces {
		p := &b.pieces[i]
		if !p.Alive || p.Color != color {
			continue
		}
		for _, to := range p.threats {
			moves = append(moves, Move{From: p.Pos, To: to})
		}
	}
	return moves
}

// hasLegalMove tries every pseudo-legal move of color and reports whether
// any of them leaves color's general unattacked. It does not look at
// whether color is in check now.
func (b *Board) hasLegalMove(color Color) bool {
	for _, mv := range b.candidates(color) {
		if b.simulate(mv.From, mv.To, color) {
			return true
		}
	}
	return false
}

func (b *Board) legalMoves(color Color) []Move {
	var out []Move
	for _, mv := range b.candidates(color) {
		if b.simulate(mv.From, mv.To, color) {
			out = append(out, mv)
		}
	}
	return out
}

func (b *Board) checkmated(color Color) bool {
	return b.inCheck(color) && !b.hasLegalMove(color)
}

func (b *Board) stalemated(color Color) bool {
	return !b.inCheck(color) && !b.hasLegalMove(color)
}
