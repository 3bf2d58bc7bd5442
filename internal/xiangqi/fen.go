package xiangqi

import (
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// StartFEN is the standard opening position.
const StartFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w"

// FEN encodes the board and side to move: ten ranks from row 10 down to
// row 1, digits for runs of empty points, upper case for red.
func (g *Game) FEN() string {
	var sb strings.Builder
	for row := Rows; row >= 1; row-- {
		if row < Rows {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 1; col <= Cols; col++ {
			p, ok := g.board.at(Coord{Col: col, Row: row})
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pieceLetter(p.Type, p.Color))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if g.turn == Red {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

// NewGameFromFEN sets up a game from a FEN string. Fields after the side to
// move are ignored. A position where the side to move has no legal move is
// returned already decided.
func NewGameFromFEN(fen string) (*Game, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, errors.Wrap(ErrInvalidFEN, "empty string")
	}
	b, err := parsePlacement(fields[0])
	if err != nil {
		return nil, err
	}

	turn := Red
	if len(fields) > 1 {
		switch fields[1] {
		case "w", "r":
			turn = Red
		case "b":
			turn = Black
		default:
			return nil, errors.Wrapf(ErrInvalidFEN, "unknown side to move %q", fields[1])
		}
	}

	if err := validatePosition(b, turn); err != nil {
		return nil, err
	}

	g := newGame(b, turn)
	if !b.hasLegalMove(turn) {
		g.state = winner(turn.Opposite())
	}
	return g, nil
}

func parsePlacement(s string) (*Board, error) {
	ranks := strings.Split(s, "/")
	if len(ranks) != Rows {
		return nil, errors.Wrapf(ErrInvalidFEN, "want %d ranks, got %d", Rows, len(ranks))
	}
	b := newBoard()
	perColor := [2]int{}
	for i, rank := range ranks {
		row := Rows - i
		col := 1
		for _, ch := range rank {
			if ch >= '1' && ch <= '9' {
				col += int(ch - '0')
				if col > Cols+1 {
					return nil, errors.Wrapf(ErrInvalidFEN, "rank %d is too long", row)
				}
				continue
			}
			if col > Cols {
				return nil, errors.Wrapf(ErrInvalidFEN, "rank %d is too long", row)
			}
			pt, color, ok := parsePieceLetter(ch)
			if !ok {
				return nil, errors.Wrapf(ErrInvalidFEN, "rank %d: unknown piece %q", row, ch)
			}
			perColor[color]++
			if perColor[color] > maxPiecesPerColor {
				return nil, errors.Wrapf(ErrInvalidFEN, "%s has more than %d pieces", color, maxPiecesPerColor)
			}
			b.place(pt, color, Coord{Col: col, Row: row})
			col++
		}
		if col != Cols+1 {
			return nil, errors.Wrapf(ErrInvalidFEN, "rank %d has %d points, want %d", row, col-1, Cols)
		}
	}
	return b, nil
}

// validatePosition collects every independent problem with a parsed board.
func validatePosition(b *Board, turn Color) error {
	var result *multierror.Error

	var generals [2]int
	for i := range b.pieces {
		p := &b.pieces[i]
		if p.Type != General {
			continue
		}
		generals[p.Color]++
		if !inPalace(p.Color, p.Pos) {
			result = multierror.Append(result,
				errors.Wrapf(ErrInvalidFEN, "%s general on %s is outside its palace", p.Color, p.Pos))
		}
	}
	for _, color := range [2]Color{Red, Black} {
		switch n := generals[color]; {
		case n == 0:
			result = multierror.Append(result, errors.Wrapf(ErrInvalidFEN, "%s general missing", color))
		case n > 1:
			result = multierror.Append(result, errors.Wrapf(ErrInvalidFEN, "%s has %d generals", color, n))
		}
	}
	if result != nil {
		return result.ErrorOrNil()
	}

	// 不该走的一方被将军，说明上一步是非法的
	b.refresh()
	if b.inCheck(turn.Opposite()) {
		result = multierror.Append(result,
			errors.Wrapf(ErrInvalidFEN, "%s is in check but it is %s to move", turn.Opposite(), turn))
	}
	return result.ErrorOrNil()
}
