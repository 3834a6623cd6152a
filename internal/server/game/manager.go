package game

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"tiaoqi/internal/tiaoqi"
)

var ErrGameNotFound = errors.New("game not found")

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

func (m *Manager) NewGame() *GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	g := &GameState{
		ID:        id,
		Pos:       tiaoqi.NewInitialPosition(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.games[id] = g
	return g
}

// Get 返回局面的副本：ApplyMove 是原地改的，不能让调用方碰到内部指针
func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	cp := *g
	cp.Pos = g.Pos.Clone()
	return &cp, nil
}

func (m *Manager) Update(id string, pos *tiaoqi.Position) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return ErrGameNotFound
	}
	g.Pos = pos
	g.UpdatedAt = time.Now()
	return nil
}
