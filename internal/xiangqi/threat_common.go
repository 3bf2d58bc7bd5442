package xiangqi

// addIfNotFriendly 空格或敌子都算威胁，己方子不算
func addIfNotFriendly(b *Board, p *Piece, to Coord, out *[]Coord) {
	if b.colorAt(to) != p.Color {
		*out = append(*out, to)
	}
}

// 车：横竖滑行，遇子即停，敌子可吃
func chariotThreats(b *Board, p *Piece, out *[]Coord) {
	for _, d := range orthoDirs {
		for c := p.Pos.add(d[0], d[1]); c.Valid(); c = c.add(d[0], d[1]) {
			if !b.occupied(c) {
				*out = append(*out, c)
				continue
			}
			addIfNotFriendly(b, p, c, out)
			break
		}
	}
}

// 炮：只能滑到空格；隔一个炮架后遇到的第一个子若为敌子则可吃
func cannonThreats(b *Board, p *Piece, out *[]Coord) {
	for _, d := range orthoDirs {
		c := p.Pos.add(d[0], d[1])

		// 走子阶段：直到第一个棋子（炮架）
		for c.Valid() && !b.occupied(c) {
			*out = append(*out, c)
			c = c.add(d[0], d[1])
		}
		if !c.Valid() {
			continue
		}

		// 吃子阶段：越过炮架，遇到第一子可吃
		for c = c.add(d[0], d[1]); c.Valid(); c = c.add(d[0], d[1]) {
			if b.occupied(c) {
				if b.colorAt(c) != p.Color {
					*out = append(*out, c)
				}
				break
			}
		}
	}
}

// 相：田字，塞象眼则不能走，不过河
func elephantThreats(b *Board, p *Piece, out *[]Coord) {
	for _, d := range diagDirs {
		to := p.Pos.add(2*d[0], 2*d[1])
		if !to.Valid() || !onOwnSide(p.Color, to) {
			continue
		}
		if b.occupied(p.Pos.add(d[0], d[1])) {
			continue
		}
		addIfNotFriendly(b, p, to, out)
	}
}

// 士：九宫内斜走一格
func advisorThreats(b *Board, p *Piece, out *[]Coord) {
	for _, d := range diagDirs {
		to := p.Pos.add(d[0], d[1])
		if !inPalace(p.Color, to) {
			continue
		}
		addIfNotFriendly(b, p, to, out)
	}
}

// 将：九宫内上下左右一格，另加“飞将”
func generalThreats(b *Board, p *Piece, out *[]Coord) {
	for _, d := range orthoDirs {
		to := p.Pos.add(d[0], d[1])
		if !inPalace(p.Color, to) {
			continue
		}
		addIfNotFriendly(b, p, to, out)
	}

	// 飞将：同列且中间无子时，直到对方将所在点都算威胁
	oppID := b.generals[p.Color.Opposite()]
	if oppID == noID {
		return
	}
	opp := &b.pieces[oppID]
	if !opp.Alive || opp.Pos.Col != p.Pos.Col {
		return
	}
	step := 1
	if opp.Pos.Row < p.Pos.Row {
		step = -1
	}
	for c := p.Pos.add(0, step); c != opp.Pos; c = c.add(0, step) {
		if b.occupied(c) {
			return
		}
	}
	for c := p.Pos.add(0, step); ; c = c.add(0, step) {
		if !containsCoord(*out, c) {
			*out = append(*out, c)
		}
		if c == opp.Pos {
			return
		}
	}
}

func containsCoord(cs []Coord, c Coord) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}
