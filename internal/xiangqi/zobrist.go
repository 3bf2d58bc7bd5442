package xiangqi

import "sync"

var (
	zobristOnce sync.Once

	zobristPieces [2][numPieceTypes][NumPoints]uint64
	zobristSide   uint64
)

// splitmix64 固定种子，保证键表跨进程稳定
type splitmix64 uint64

func (s *splitmix64) next() uint64 {
	*s += 0x9E3779B97F4A7C15
	z := uint64(*s)
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func initZobrist() {
	zobristOnce.Do(func() {
		rng := splitmix64(0x9E3779B97F4A7C15)
		for _, color := range [2]Color{Red, Black} {
			// NoPiece 不占键
			for pt := General; pt < numPieceTypes; pt++ {
				keys := &zobristPieces[color][pt]
				for i := range keys {
					keys[i] = rng.next()
				}
			}
		}
		zobristSide = rng.next()
	})
}

func pieceHashKey(p *Piece, c Coord) uint64 {
	if p.Color != Red && p.Color != Black {
		return 0
	}
	if p.Type <= NoPiece || int(p.Type) >= numPieceTypes || !c.Valid() {
		return 0
	}
	return zobristPieces[p.Color][p.Type][c.index()]
}

// calculateHash 全量计算棋盘部分的 Zobrist 哈希（不含走子方）
func (b *Board) calculateHash() uint64 {
	initZobrist()

	var h uint64
	for _, id := range b.cells {
		if id == noID {
			continue
		}
		p := &b.pieces[id]
		h ^= pieceHashKey(p, p.Pos)
	}
	return h
}
