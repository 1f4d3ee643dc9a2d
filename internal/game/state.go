package game

import (
	"sync"
	"time"

	"xiangqi/internal/engine"
)

// GameState 一局对局。mu 保证同一局同一时间只有一个调用在使用 Game。
type GameState struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time

	mu   sync.Mutex
	game *engine.Game
}
