// Package notation converts between letter-number board notation ("c4",
// "e10") and engine coordinates. Files a..i map to columns 1..9 and ranks
// 1..10 map to rows 1..10, red's back rank being 1.
package notation

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"xiangqi/internal/xiangqi"
)

var ErrBadCoord = errors.New("bad coordinate")

// ParseCoord parses "a1".."i10".
func ParseCoord(s string) (xiangqi.Coord, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 || len(s) > 3 {
		return xiangqi.Coord{}, errors.Wrapf(ErrBadCoord, "%q", s)
	}
	file := s[0]
	if file < 'a' || file > 'i' {
		return xiangqi.Coord{}, errors.Wrapf(ErrBadCoord, "%q: file out of range", s)
	}
	rank, err := strconv.Atoi(s[1:])
	if err != nil || rank < 1 || rank > xiangqi.Rows || s[1] == '0' {
		return xiangqi.Coord{}, errors.Wrapf(ErrBadCoord, "%q: rank out of range", s)
	}
	return xiangqi.Coord{Col: int(file-'a') + 1, Row: rank}, nil
}

// MustParseCoord is ParseCoord for literals known to be valid.
func MustParseCoord(s string) xiangqi.Coord {
	c, err := ParseCoord(s)
	if err != nil {
		panic(err)
	}
	return c
}

func FormatCoord(c xiangqi.Coord) string {
	return c.String()
}

// ParseMove accepts "c4-c5", "c4c5" and "c4 c5".
func ParseMove(s string) (xiangqi.Move, error) {
	s = strings.TrimSpace(s)
	if len(s) < 4 {
		return xiangqi.Move{}, errors.Wrapf(ErrBadCoord, "move %q", s)
	}
	var from, to string
	if i := strings.IndexAny(s, "- "); i >= 0 {
		from, to = s[:i], s[i+1:]
	} else {
		// 无分隔符：第二个字母前为起点
		j := strings.IndexFunc(s[1:], func(r rune) bool { return r >= 'a' && r <= 'i' || r >= 'A' && r <= 'I' })
		if j < 0 {
			return xiangqi.Move{}, errors.Wrapf(ErrBadCoord, "move %q", s)
		}
		from, to = s[:j+1], s[j+1:]
	}
	f, err := ParseCoord(from)
	if err != nil {
		return xiangqi.Move{}, errors.Wrapf(err, "move %q", s)
	}
	t, err := ParseCoord(to)
	if err != nil {
		return xiangqi.Move{}, errors.Wrapf(err, "move %q", s)
	}
	return xiangqi.Move{From: f, To: t}, nil
}

// ParseMoves splits a move list on whitespace and commas.
func ParseMoves(s string) ([]xiangqi.Move, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	moves := make([]xiangqi.Move, 0, len(fields))
	for i, f := range fields {
		mv, err := ParseMove(f)
		if err != nil {
			return nil, errors.Wrapf(err, "move #%d", i+1)
		}
		moves = append(moves, mv)
	}
	return moves, nil
}
