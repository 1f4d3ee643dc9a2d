package xiangqi

// IsKingMeeting 两王同列且中间无子（王对脸）
func (s *Snapshot) IsKingMeeting() bool {
	up, low := s.upper.King, s.lower.King
	if !up.Valid() || !low.Valid() {
		// 有一方王已经没了，不存在对脸
		return false
	}
	if up.Col != low.Col {
		return false
	}
	return s.countBetween(up, low) == 0
}

// kingAttacked 对方王所在的 p 能否被 bySide 的某个进攻子走到。
// 士、象不能过河，两王不会相邻，所以只看进攻子；p 只能是王的位置。
func (s *Snapshot) kingAttacked(p Pos, bySide Side) bool {
	for from := range s.pieceSet(bySide).Attackers {
		if s.IsValidMove(Move{From: from, To: p}, bySide) {
			return true
		}
	}
	return false
}

// Check side 一方的王是否正被将军（包括王对脸）
func (s *Snapshot) Check(side Side) bool {
	king := s.pieceSet(side).King
	if !king.Valid() {
		return false
	}
	if s.IsKingMeeting() {
		return true
	}
	return s.kingAttacked(king, side.Opposite())
}

// IsSuicide 走完 m 之后自己是否被将军
func (s *Snapshot) IsSuicide(m Move, side Side) bool {
	next := s.Apply(m)
	return next.Check(side)
}

// Checkmate side 被将军且没有任何解将的走法
func (s *Snapshot) Checkmate(side Side) bool {
	return s.Check(side) && !s.HasLegalMove(side)
}

// KingAlive side 的王是否还在棋盘上
func (s *Snapshot) KingAlive(side Side) bool {
	return s.pieceSet(side).Alive()
}
