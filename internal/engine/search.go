package engine

import (
	"time"

	"github.com/apex/log"

	"xiangqi/internal/xiangqi"
)

const (
	// 一个足够大的值，当成正负无穷
	scoreInf = 1_000_000_000
)

// 搜索配置
type SearchConfig struct {
	Depth    int      // 固定搜索深度（ply）
	Strategy Strategy // minimax 或 alpha-beta
}

// 搜索结果
type SearchResult struct {
	BestMove xiangqi.Move  // 最佳着法，无着可走时为 NoMove
	Score    int           // 走棋方视角的评估分
	Depth    int           // 搜索深度
	Nodes    int64         // 节点数
	TimeUsed time.Duration // 花费时间
	Strategy Strategy
}

// Found 是否找到了着法
func (r SearchResult) Found() bool { return !r.BestMove.IsNone() }

// Evaluate 静态评估：maxPlayer 的分数减去对方的分数
func Evaluate(s *xiangqi.Snapshot, maxPlayer xiangqi.Side) int {
	return s.Score(maxPlayer) - s.Score(maxPlayer.Opposite())
}

// Search 按配置的策略和深度为当前走棋方选一步。s 不会被修改。
func (e *Engine) Search(s *xiangqi.Snapshot) SearchResult {
	start := time.Now()
	e.nodes = 0

	side := s.Next()
	res := SearchResult{
		BestMove: xiangqi.NoMove,
		Depth:    e.cfg.Depth,
		Strategy: e.cfg.Strategy,
	}
	if !s.KingAlive(side) {
		// 王已经没了，对局结束
		res.Score = Evaluate(s, side)
		return res
	}

	switch e.cfg.Strategy {
	case StrategyMinimax:
		res.Score, res.BestMove = e.Minimax(s, e.cfg.Depth, side)
	default:
		res.Score, res.BestMove = e.AlphaBeta(s, e.cfg.Depth, side, -scoreInf, scoreInf)
	}
	res.Nodes = e.nodes
	res.TimeUsed = time.Since(start)

	log.WithFields(log.Fields{
		"strategy": res.Strategy,
		"depth":    res.Depth,
		"nodes":    res.Nodes,
		"score":    res.Score,
		"move":     res.BestMove.String(),
		"elapsed":  res.TimeUsed,
	}).Debug("search finished")
	return res
}

// Minimax 朴素极大极小搜索。maxPlayer 的回合取最大，对方回合取最小。
// depth 为 0 或无着可走时返回静态评估。
func (e *Engine) Minimax(s *xiangqi.Snapshot, depth int, maxPlayer xiangqi.Side) (int, xiangqi.Move) {
	e.nodes++

	if depth <= 0 {
		return Evaluate(s, maxPlayer), xiangqi.NoMove
	}
	moves := s.GenerateLegalMoves()
	if len(moves) == 0 {
		return Evaluate(s, maxPlayer), xiangqi.NoMove
	}

	maximizing := s.Next() == maxPlayer
	bestMove := xiangqi.NoMove
	bestScore := scoreInf
	if maximizing {
		bestScore = -scoreInf
	}
	for _, mv := range moves {
		child := s.Apply(mv)
		score, _ := e.Minimax(&child, depth-1, maxPlayer)
		if maximizing && score > bestScore || !maximizing && score < bestScore {
			bestScore = score
			bestMove = mv
		}
	}
	return bestScore, bestMove
}

// AlphaBeta 与 Minimax 同样的树，带剪枝。根节点用 (-inf, +inf) 窗口调用时
// 返回的分数与 Minimax 完全一致；着法排序只影响剪枝效率。
func (e *Engine) AlphaBeta(s *xiangqi.Snapshot, depth int, maxPlayer xiangqi.Side, alpha, beta int) (int, xiangqi.Move) {
	e.nodes++

	if depth <= 0 {
		return Evaluate(s, maxPlayer), xiangqi.NoMove
	}
	moves := s.GenerateLegalMoves()
	if len(moves) == 0 {
		return Evaluate(s, maxPlayer), xiangqi.NoMove
	}

	key := s.Hash()
	orderMovesByCaptureFirst(s, moves)
	e.orderByTT(key, moves)

	maximizing := s.Next() == maxPlayer
	bestMove := xiangqi.NoMove
	var bestScore int
	if maximizing {
		bestScore = -scoreInf
		for _, mv := range moves {
			child := s.Apply(mv)
			score, _ := e.AlphaBeta(&child, depth-1, maxPlayer, alpha, beta)
			if score > bestScore {
				bestScore = score
				bestMove = mv
			}
			if score > alpha {
				alpha = score
			}
			if alpha >= beta {
				break
			}
		}
	} else {
		bestScore = scoreInf
		for _, mv := range moves {
			child := s.Apply(mv)
			score, _ := e.AlphaBeta(&child, depth-1, maxPlayer, alpha, beta)
			if score < bestScore {
				bestScore = score
				bestMove = mv
			}
			if score < beta {
				beta = score
			}
			if alpha >= beta {
				break
			}
		}
	}

	e.storeTT(key, depth, bestMove)
	return bestScore, bestMove
}
