package xiangqi

// 马 8 种“日”字：终点 + 马腿
var horseLegMoves = [8]struct {
	Dc, Dr int // 终点
	Lc, Lr int // 马腿
}{
	{-1, +2, 0, +1},
	{+1, +2, 0, +1},
	{-1, -2, 0, -1},
	{+1, -2, 0, -1},
	{+2, -1, +1, 0},
	{+2, +1, +1, 0},
	{-2, -1, -1, 0},
	{-2, +1, -1, 0},
}

func horseThreats(b *Board, p *Piece, out *[]Coord) {
	for _, m := range horseLegMoves {
		to := p.Pos.add(m.Dc, m.Dr)
		if !to.Valid() {
			continue
		}
		if b.occupied(p.Pos.add(m.Lc, m.Lr)) {
			continue // 憋马腿
		}
		addIfNotFriendly(b, p, to, out)
	}
}
