package xiangqi

// GenerateAllMoves 生成 side 的全部合法走法（已过滤送将），王已被吃则为空。
// 顺序：起点按行优先，终点按行优先，保证搜索结果可复现。
func (s *Snapshot) GenerateAllMoves(side Side) []Move {
	var moves []Move
	s.eachLegalMove(side, func(m Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// GenerateLegalMoves 当前走棋方的全部合法走法
func (s *Snapshot) GenerateLegalMoves() []Move {
	return s.GenerateAllMoves(s.next)
}

// HasLegalMove 找到第一步合法走法就返回
func (s *Snapshot) HasLegalMove(side Side) bool {
	found := false
	s.eachLegalMove(side, func(Move) bool {
		found = true
		return false
	})
	return found
}

// eachLegalMove 按扫描顺序回调每一步合法走法，fn 返回 false 时停止
func (s *Snapshot) eachLegalMove(side Side, fn func(Move) bool) {
	if !s.KingAlive(side) {
		return
	}
	for from := 0; from < NumSquares; from++ {
		src := posOf(from)
		pc := s.grid.At(src)
		if pc == 0 || pc.Side() != side {
			continue
		}
		for to := 0; to < NumSquares; to++ {
			m := Move{From: src, To: posOf(to)}
			if !s.IsValidMove(m, side) {
				continue
			}
			if s.IsSuicide(m, side) {
				continue
			}
			if !fn(m) {
				return
			}
		}
	}
}
