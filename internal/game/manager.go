package game

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/google/uuid"
	"golang.org/x/exp/maps"

	"xiangqi/internal/engine"
)

var ErrGameNotFound = errors.New("game not found")

// Manager 多局对局的注册表，按 UUID 索引
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
	cfg   engine.SearchConfig
}

func NewManager(cfg engine.SearchConfig) *Manager {
	return &Manager{
		games: make(map[string]*GameState),
		cfg:   cfg,
	}
}

// NewGame 开一局新棋，返回其 ID
func (m *Manager) NewGame() string {
	id := uuid.NewString()
	now := time.Now()
	g := &GameState{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
		game:      engine.NewGame(m.cfg),
	}

	m.mu.Lock()
	m.games[id] = g
	m.mu.Unlock()

	log.WithField("game", id).Info("game created")
	return id
}

func (m *Manager) get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return g, nil
}

// Do 独占地在该局上执行 fn；同一局的调用串行执行，不同局互不影响
func (m *Manager) Do(id string, fn func(g *engine.Game) error) error {
	g, err := m.get(id)
	if err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	err = fn(g.game)
	g.UpdatedAt = time.Now()
	return err
}

// Info 对局的创建、更新时间
func (m *Manager) Info(id string) (created, updated time.Time, err error) {
	g, err := m.get(id)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.CreatedAt, g.UpdatedAt, nil
}

// Remove 删除一局；不存在时返回 ErrGameNotFound
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	delete(m.games, id)
	log.WithField("game", id).Info("game removed")
	return nil
}

// IDs 全部对局 ID，按字典序
func (m *Manager) IDs() []string {
	m.mu.RLock()
	ids := maps.Keys(m.games)
	m.mu.RUnlock()
	sort.Strings(ids)
	return ids
}
