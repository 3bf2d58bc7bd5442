package session

import (
	"time"

	"xiangqi/internal/xiangqi"
)

// GameState is one registered game. The game itself is reachable only
// through the Manager, which serializes every access to it.
type GameState struct {
	ID        string
	Moves     []xiangqi.Move
	CreatedAt time.Time
	UpdatedAt time.Time

	game *xiangqi.Game
}

// View is a point-in-time copy of a game, safe to hand to other goroutines.
type View struct {
	ID        string
	FEN       string
	Hash      uint64
	Turn      xiangqi.Color
	State     xiangqi.State
	InCheck   [2]bool
	Board     xiangqi.Snapshot
	Moves     []xiangqi.Move
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (g *GameState) view() View {
	return View{
		ID:        g.ID,
		FEN:       g.game.FEN(),
		Hash:      g.game.Hash(),
		Turn:      g.game.Turn(),
		State:     g.game.State(),
		InCheck:   [2]bool{g.game.InCheck(xiangqi.Red), g.game.InCheck(xiangqi.Black)},
		Board:     g.game.Snapshot(),
		Moves:     append([]xiangqi.Move(nil), g.Moves...),
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}
