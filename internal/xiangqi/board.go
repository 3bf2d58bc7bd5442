package xiangqi

import (
	"fmt"
	"strings"
)

const (
	Rows      = 10
	Cols      = 9
	NumPoints = Rows * Cols

	// 河界：红方在 1..5 行，黑方在 6..10 行
	RiverRow = 5

	maxPiecesPerColor = 16
)

// Coord is a 1-based (column, row) pair. Column 1 is file "a", row 1 is red's back rank.
type Coord struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func (c Coord) Valid() bool {
	return c.Col >= 1 && c.Col <= Cols && c.Row >= 1 && c.Row <= Rows
}

func (c Coord) String() string {
	if !c.Valid() {
		return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
	}
	return fmt.Sprintf("%c%d", 'a'+c.Col-1, c.Row)
}

func (c Coord) index() int { return (c.Row-1)*Cols + (c.Col - 1) }

func coordOf(idx int) Coord { return Coord{Col: idx%Cols + 1, Row: idx/Cols + 1} }

func (c Coord) add(dc, dr int) Coord { return Coord{Col: c.Col + dc, Row: c.Row + dr} }

var (
	orthoDirs = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagDirs  = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// 是否在九宫
func inPalace(color Color, c Coord) bool {
	if c.Col < 4 || c.Col > 6 {
		return false
	}
	switch color {
	case Red:
		return c.Row >= 1 && c.Row <= 3
	case Black:
		return c.Row >= 8 && c.Row <= 10
	}
	return false
}

// 是否在本方半场（相/象不能过河）
func onOwnSide(color Color, c Coord) bool {
	if color == Red {
		return c.Row <= RiverRow
	}
	return c.Row > RiverRow
}

// 兵/卒前进方向：红向上(+1)，黑向下(-1)
func forward(color Color) int {
	if color == Red {
		return 1
	}
	return -1
}

// 兵/卒是否已过河
func riverCrossed(color Color, row int) bool {
	if color == Red {
		return row > RiverRow
	}
	return row <= RiverRow
}

// Board owns every point and the piece arena.
type Board struct {
	cells      [NumPoints]PieceID
	pieces     []Piece
	shadowedBy [NumPoints][]PieceID
	generals   [2]PieceID
	hash       uint64
}

func newBoard() *Board {
	b := &Board{
		pieces:   make([]Piece, 0, 2*maxPiecesPerColor),
		generals: [2]PieceID{noID, noID},
	}
	for i := range b.cells {
		b.cells[i] = noID
	}
	return b
}

// place 只用于开局摆子和 FEN 解析，不做规则校验
func (b *Board) place(pt PieceType, color Color, c Coord) PieceID {
	id := PieceID(len(b.pieces))
	b.pieces = append(b.pieces, Piece{Type: pt, Color: color, Pos: c, Alive: true})
	b.cells[c.index()] = id
	if pt == General && b.generals[color] == noID {
		b.generals[color] = id
	}
	return id
}

func (b *Board) at(c Coord) (*Piece, bool) {
	id := b.cells[c.index()]
	if id == noID {
		return nil, false
	}
	return &b.pieces[id], true
}

func (b *Board) occupied(c Coord) bool { return b.cells[c.index()] != noID }

func (b *Board) colorAt(c Coord) Color {
	id := b.cells[c.index()]
	if id == noID {
		return NoColor
	}
	return b.pieces[id].Color
}

// general 返回某方帅/将；找不到说明状态已损坏
func (b *Board) general(color Color) *Piece {
	id := b.generals[color]
	if id == noID || !b.pieces[id].Alive {
		panic("xiangqi: no " + color.String() + " general on board")
	}
	return &b.pieces[id]
}

func (b *Board) snapshot() Snapshot {
	var s Snapshot
	for idx, id := range b.cells {
		if id == noID {
			continue
		}
		c := coordOf(idx)
		p := &b.pieces[id]
		s[c.Row-1][c.Col-1] = Square{Type: p.Type, Color: p.Color}
	}
	return s
}

// 开局局面，第一行为黑方底线（第 10 行）
const initialLayout = `rnbakabnr
.........
.c.....c.
p.p.p.p.p
.........
.........
P.P.P.P.P
.C.....C.
.........
RNBAKABNR`

var letterToPieceType = map[rune]PieceType{
	'k': General,
	'a': Advisor,
	'b': Elephant,
	'e': Elephant,
	'n': Horse,
	'h': Horse,
	'r': Chariot,
	'c': Cannon,
	'p': Soldier,
}

var pieceTypeToLetter = [numPieceTypes]byte{0, 'k', 'a', 'b', 'n', 'r', 'c', 'p'}

func pieceLetter(pt PieceType, color Color) byte {
	ch := pieceTypeToLetter[pt]
	if color == Red {
		ch -= 'a' - 'A'
	}
	return ch
}

func parseInitialBoard() *Board {
	b := newBoard()
	lines := strings.Split(initialLayout, "\n")
	if len(lines) != Rows {
		panic("initialLayout 行数不为 10")
	}
	for i, line := range lines {
		if len(line) != Cols {
			panic("initialLayout 列数不为 9")
		}
		row := Rows - i
		for col, ch := range line {
			if ch == '.' {
				continue
			}
			pt, color, ok := parsePieceLetter(ch)
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			b.place(pt, color, Coord{Col: col + 1, Row: row})
		}
	}
	return b
}

func parsePieceLetter(ch rune) (PieceType, Color, bool) {
	color := Black
	if ch >= 'A' && ch <= 'Z' {
		color = Red
		ch += 'a' - 'A'
	}
	pt, ok := letterToPieceType[ch]
	return pt, color, ok
}
