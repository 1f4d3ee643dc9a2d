package engine

import (
	"fmt"
	"strings"
)

// Strategy 搜索策略
type Strategy string

const (
	StrategyAlphaBeta Strategy = "alphabeta"
	StrategyMinimax   Strategy = "minimax"
)

const (
	DefaultDepth = 3
	MaxDepth     = 6
)

// ParseStrategy 大小写不敏感；空串为默认的 alpha-beta
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "alphabeta", "alpha-beta", "ab":
		return StrategyAlphaBeta, nil
	case "minimax", "mm":
		return StrategyMinimax, nil
	}
	return "", fmt.Errorf("unknown search strategy %q", s)
}

// Engine 搜索器。搜索只读取传入的局面，所有假设走子都在副本上进行。
// 一个 Engine 同一时间只能被一个 goroutine 使用。
type Engine struct {
	cfg   SearchConfig
	tt    map[uint64]ttEntry
	nodes int64
}

func NewEngine(cfg SearchConfig) *Engine {
	if cfg.Depth <= 0 {
		cfg.Depth = DefaultDepth
	}
	if cfg.Strategy == "" {
		cfg.Strategy = StrategyAlphaBeta
	}
	return &Engine{
		cfg: cfg,
		tt:  make(map[uint64]ttEntry, 1<<14),
	}
}

func (e *Engine) Config() SearchConfig { return e.cfg }

// Nodes 最近一次搜索访问的节点数
func (e *Engine) Nodes() int64 { return e.nodes }
