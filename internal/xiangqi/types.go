package xiangqi

type Color int8

const (
	NoColor Color = -1
	Red     Color = 0
	Black   Color = 1
)

func (c Color) Opposite() Color {
	switch c {
	case Red:
		return Black
	case Black:
		return Red
	}
	return NoColor
}

func (c Color) valid() bool { return c == Red || c == Black }

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	}
	return "none"
}

type PieceType int8

const (
	NoPiece  PieceType = iota
	General            // 帅 / 将
	Advisor            // 仕 / 士
	Elephant           // 相 / 象
	Horse              // 马
	Chariot            // 车
	Cannon             // 炮
	Soldier            // 兵 / 卒

	numPieceTypes = 8
)

var pieceTypeNames = [numPieceTypes]string{
	"none", "general", "advisor", "elephant", "horse", "chariot", "cannon", "soldier",
}

func (pt PieceType) String() string {
	if pt < 0 || int(pt) >= numPieceTypes {
		return "invalid"
	}
	return pieceTypeNames[pt]
}

// PieceID indexes the board's piece arena. Board cells hold ids, never copies.
type PieceID int8

const noID PieceID = -1

// Piece is one arena record. Only Pos, Alive and the threat set change.
type Piece struct {
	Type  PieceType
	Color Color
	Pos   Coord
	Alive bool

	threats []Coord
}

type Move struct {
	From Coord `json:"from"`
	To   Coord `json:"to"`
}

func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}

type State int8

const (
	Unfinished State = iota
	RedWon
	BlackWon
)

func (s State) String() string {
	switch s {
	case RedWon:
		return "RED_WON"
	case BlackWon:
		return "BLACK_WON"
	}
	return "UNFINISHED"
}

func winner(c Color) State {
	if c == Red {
		return RedWon
	}
	return BlackWon
}

// Square is one cell of a Snapshot. Type == NoPiece means empty.
type Square struct {
	Type  PieceType
	Color Color
}

func (s Square) Empty() bool { return s.Type == NoPiece }

// Snapshot is a read-only copy of the grid, indexed [row-1][col-1].
type Snapshot [Rows][Cols]Square

func (s Snapshot) At(c Coord) (Square, bool) {
	if !c.Valid() {
		return Square{}, false
	}
	sq := s[c.Row-1][c.Col-1]
	return sq, !sq.Empty()
}
