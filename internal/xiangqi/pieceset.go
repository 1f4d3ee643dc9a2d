package xiangqi

import (
	"sort"

	"golang.org/x/exp/maps"
)

// PieceSet 一方棋子的位置集合：王、分数、防守子（士象）、进攻子（车马炮兵）
type PieceSet struct {
	King      Pos
	Score     int
	Defenders map[Pos]struct{}
	Attackers map[Pos]struct{}
}

func newPieceSet() PieceSet {
	return PieceSet{
		King:      InvalidPos,
		Defenders: make(map[Pos]struct{}, 4),
		Attackers: make(map[Pos]struct{}, 11),
	}
}

func isDefensive(k Kind) bool { return k == KindAdvisor || k == KindBishop }

func isAttacking(k Kind) bool {
	return k == KindKnight || k == KindRook || k == KindCannon || k == KindPawn
}

func (ps *PieceSet) clone() PieceSet {
	return PieceSet{
		King:      ps.King,
		Score:     ps.Score,
		Defenders: maps.Clone(ps.Defenders),
		Attackers: maps.Clone(ps.Attackers),
	}
}

func (ps *PieceSet) add(p Pos, k Kind) {
	switch {
	case k == KindKing:
		ps.King = p
	case isDefensive(k):
		ps.Defenders[p] = struct{}{}
	case isAttacking(k):
		ps.Attackers[p] = struct{}{}
	}
}

// remove 删除 p 处的非王棋子，返回是否存在
func (ps *PieceSet) remove(p Pos) bool {
	if _, ok := ps.Defenders[p]; ok {
		delete(ps.Defenders, p)
		return true
	}
	if _, ok := ps.Attackers[p]; ok {
		delete(ps.Attackers, p)
		return true
	}
	return false
}

func (ps *PieceSet) relocate(from, to Pos, k Kind) {
	if k == KindKing {
		ps.King = to
		return
	}
	ps.remove(from)
	ps.add(to, k)
}

func (ps *PieceSet) rotate() {
	ps.King = ps.King.rotate()
	ps.Defenders = rotateSet(ps.Defenders)
	ps.Attackers = rotateSet(ps.Attackers)
}

func rotateSet(set map[Pos]struct{}) map[Pos]struct{} {
	out := make(map[Pos]struct{}, len(set))
	for p := range set {
		out[p.rotate()] = struct{}{}
	}
	return out
}

// Count 非王棋子数
func (ps PieceSet) Count() int { return len(ps.Defenders) + len(ps.Attackers) }

// Alive 王是否还在
func (ps PieceSet) Alive() bool { return ps.King.Valid() }

// SortedDefenders 按行优先排序的防守子位置
func (ps PieceSet) SortedDefenders() []Pos { return sortedKeys(ps.Defenders) }

// SortedAttackers 按行优先排序的进攻子位置
func (ps PieceSet) SortedAttackers() []Pos { return sortedKeys(ps.Attackers) }

func sortedKeys(set map[Pos]struct{}) []Pos {
	keys := maps.Keys(set)
	sort.Slice(keys, func(i, j int) bool { return indexOf(keys[i]) < indexOf(keys[j]) })
	return keys
}

// Equal 王、分数、两个集合都相同
func (ps *PieceSet) Equal(o *PieceSet) bool {
	return ps.King == o.King && ps.Score == o.Score &&
		maps.Equal(ps.Defenders, o.Defenders) && maps.Equal(ps.Attackers, o.Attackers)
}

// updatePieceSet 在棋盘落子之前调用：pc 为走动的子，victim 为被吃的子（可能为 0）
func (s *Snapshot) updatePieceSet(m Move, side Side, pc, victim Piece) {
	own := s.pieceSet(side)
	opp := s.pieceSet(side.Opposite())
	ownHalf := s.HalfOf(side)

	if victim != 0 {
		if victim.Kind() == KindKing {
			opp.King = InvalidPos
			opp.Score = DeadScore
		} else {
			opp.remove(m.To)
			if opp.Alive() {
				opp.Score -= pieceValue(victim, m.To, s.HalfOf(side.Opposite()))
			}
		}
	}

	own.relocate(m.From, m.To, pc.Kind())
	if own.Alive() {
		own.Score += pieceValue(pc, m.To, ownHalf) - pieceValue(pc, m.From, ownHalf)
	}
}
