// Package session keeps an in-memory registry of games keyed by id.
package session

import (
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"xiangqi/internal/xiangqi"
)

var ErrGameNotFound = errors.New("game not found")

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
	log   log.Interface
}

// NewManager returns an empty registry. A nil logger falls back to the
// apex/log default.
func NewManager(logger log.Interface) *Manager {
	if logger == nil {
		logger = log.Log
	}
	return &Manager{games: make(map[string]*GameState), log: logger}
}

func (m *Manager) NewGame() View {
	return m.add(xiangqi.NewGame())
}

func (m *Manager) NewGameFromFEN(fen string) (View, error) {
	g, err := xiangqi.NewGameFromFEN(fen)
	if err != nil {
		m.log.WithError(err).WithField("fen", fen).Info("position rejected")
		return View{}, err
	}
	return m.add(g), nil
}

func (m *Manager) add(g *xiangqi.Game) View {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	gs := &GameState{
		ID:        uuid.NewString(),
		game:      g,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[gs.ID] = gs
	m.log.WithFields(log.Fields{
		"game":  gs.ID,
		"turn":  g.Turn(),
		"state": g.State(),
	}).Info("game created")
	return gs.view()
}

// Get returns the current state of a game as a copy.
func (m *Manager) Get(id string) (View, error) {
	return m.Snapshot(id)
}

// Play attempts one move in the game with the given id. Rejections come back
// as *xiangqi.MoveError and leave the game unchanged.
func (m *Manager) Play(id string, from, to xiangqi.Coord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.games[id]
	if !ok {
		return errors.Wrapf(ErrGameNotFound, "id %q", id)
	}
	ctx := m.log.WithFields(log.Fields{
		"game": id,
		"from": from,
		"to":   to,
	})
	if err := g.game.AttemptMove(from, to); err != nil {
		var reason error = err
		var me *xiangqi.MoveError
		if errors.As(err, &me) {
			reason = me.Err
		}
		ctx.WithField("reason", reason).Info("move rejected")
		return err
	}

	g.Moves = append(g.Moves, xiangqi.Move{From: from, To: to})
	g.UpdatedAt = time.Now()
	if st := g.game.State(); st != xiangqi.Unfinished {
		ctx.WithField("state", st).Info("game decided")
	} else {
		ctx.WithField("turn", g.game.Turn()).Debug("move accepted")
	}
	return nil
}

func (m *Manager) Snapshot(id string) (View, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return View{}, errors.Wrapf(ErrGameNotFound, "id %q", id)
	}
	return g.view(), nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return errors.Wrapf(ErrGameNotFound, "id %q", id)
	}
	delete(m.games, id)
	m.log.WithField("game", id).Debug("game deleted")
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
