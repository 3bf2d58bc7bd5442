package xiangqi

func soldierThreats(b *Board, p *Piece, out *[]Coord) {
	// 前一格（可以吃子）
	if to := p.Pos.add(0, forward(p.Color)); to.Valid() {
		addIfNotFriendly(b, p, to, out)
	}

	// 过河后可左右一格，永远不能后退
	if !riverCrossed(p.Color, p.Pos.Row) {
		return
	}
	for _, dc := range [2]int{-1, +1} {
		if to := p.Pos.add(dc, 0); to.Valid() {
			addIfNotFriendly(b, p, to, out)
		}
	}
}
