package xiangqi

// computeThreats 重新计算一个棋子的威胁点集合，复用原有切片
func (b *Board) computeThreats(p *Piece) {
	out := p.threats[:0]
	switch p.Type {
	case General:
		generalThreats(b, p, &out)
	case Advisor:
		advisorThreats(b, p, &out)
	case Elephant:
		elephantThreats(b, p, &out)
	case Horse:
		horseThreats(b, p, &out)
	case Chariot:
		chariotThreats(b, p, &out)
	case Cannon:
		cannonThreats(b, p, &out)
	case Soldier:
		soldierThreats(b, p, &out)
	}
	p.threats = out
}

// refresh recomputes every live piece's threat set and then rebuilds the
// attack index from scratch. Any single move can open or close sliding
// lines anywhere on the board, so nothing is patched incrementally.
func (b *Board) refresh() {
	for i := range b.pieces {
		p := &b.pieces[i]
		if !p.Alive {
			p.threats = p.threats[:0]
			continue
		}
		b.computeThreats(p)
	}
	b.rebuildAttackIndex()
}

func (b *Board) rebuildAttackIndex() {
	for i := range b.shadowedBy {
		b.shadowedBy[i] = b.shadowedBy[i][:0]
	}
	for i := range b.pieces {
		p := &b.pieces[i]
		if !p.Alive {
			continue
		}
		for _, c := range p.threats {
			idx := c.index()
			b.shadowedBy[idx] = append(b.shadowedBy[idx], PieceID(i))
		}
	}
}

// inCheck: 本方将所在点的 shadowed-by 非空（己方子从不威胁己方所在点）
func (b *Board) inCheck(color Color) bool {
	g := b.general(color)
	return len(b.shadowedBy[g.Pos.index()]) > 0
}
