package engine

import (
	"sort"

	"xiangqi/internal/xiangqi"
)

const ttCap = 1_000_000

// 排序表条目：只记最佳着法，不记分数，所以不会影响搜索结果
type ttEntry struct {
	Key   uint64
	Depth int
	Move  xiangqi.Move
}

func (e *Engine) storeTT(key uint64, depth int, mv xiangqi.Move) {
	if mv.IsNone() {
		return
	}
	if len(e.tt) > ttCap {
		e.tt = make(map[uint64]ttEntry, 1<<14)
	}
	old, ok := e.tt[key]
	if !ok || depth >= old.Depth {
		e.tt[key] = ttEntry{Key: key, Depth: depth, Move: mv}
	}
}

// 把排序表里的最佳着法提到最前
func (e *Engine) orderByTT(key uint64, moves []xiangqi.Move) {
	entry, ok := e.tt[key]
	if !ok {
		return
	}
	for i := range moves {
		if moves[i] == entry.Move {
			copy(moves[1:i+1], moves[:i])
			moves[0] = entry.Move
			return
		}
	}
}

// 吃子优先，吃子之间按被吃子价值从大到小；相同的保持生成顺序
func orderMovesByCaptureFirst(s *xiangqi.Snapshot, moves []xiangqi.Move) {
	victimValue := func(m xiangqi.Move) int {
		pc := s.At(m.To)
		if pc == 0 {
			return 0
		}
		return s.Value(pc, m.To)
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return victimValue(moves[i]) > victimValue(moves[j])
	})
}
