package xiangqi

// pieceRule 每个兵种一个实现，三项检查都通过才算合法：
// 落点区域、位移形状、兵种特有规则（挡子、炮架等）。
type pieceRule interface {
	validPos(to Pos, h Half) bool
	validDelta(d Delta, h Half) bool
	// 不再检查区域和位移，默认前面已检查
	validRule(s *Snapshot, m Move) bool
}

var (
	orthogonalSteps = [4]Delta{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalSteps   = [4]Delta{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	bishopSteps     = [4]Delta{{-2, -2}, {-2, 2}, {2, -2}, {2, 2}}
	knightSteps     = [8]Delta{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

func containsDelta(set []Delta, d Delta) bool {
	for _, x := range set {
		if x == d {
			return true
		}
	}
	return false
}

type (
	kingRule    struct{}
	advisorRule struct{}
	bishopRule  struct{}
	knightRule  struct{}
	rookRule    struct{}
	cannonRule  struct{}
	pawnRule    struct{}
)

var rules = [numKinds]pieceRule{
	KindKing:    kingRule{},
	KindAdvisor: advisorRule{},
	KindBishop:  bishopRule{},
	KindKnight:  knightRule{},
	KindRook:    rookRule{},
	KindCannon:  cannonRule{},
	KindPawn:    pawnRule{},
}

func ruleFor(k Kind) pieceRule {
	if k <= KindNone || int(k) >= numKinds {
		return nil
	}
	return rules[k]
}

// 将：九宫内上下左右一格
func (kingRule) validPos(to Pos, h Half) bool       { return inPalace(h, to) }
func (kingRule) validDelta(d Delta, _ Half) bool    { return containsDelta(orthogonalSteps[:], d) }
func (kingRule) validRule(_ *Snapshot, _ Move) bool { return true }

// 士：九宫内斜走一格，只有五个点
func (advisorRule) validPos(to Pos, h Half) bool {
	if !inPalace(h, to) {
		return false
	}
	rank := relRank(h, to.Row)
	if rank == 8 {
		return to.Col == 4
	}
	return to.Col == 3 || to.Col == 5
}
func (advisorRule) validDelta(d Delta, _ Half) bool    { return containsDelta(diagonalSteps[:], d) }
func (advisorRule) validRule(_ *Snapshot, _ Move) bool { return true }

// 相：田字，不过河，自家半场七个点；不判塞象眼
func (bishopRule) validPos(to Pos, h Half) bool {
	switch relRank(h, to.Row) {
	case 5, 9:
		return to.Col == 2 || to.Col == 6
	case 7:
		return to.Col == 0 || to.Col == 4 || to.Col == 8
	}
	return false
}
func (bishopRule) validDelta(d Delta, _ Half) bool    { return containsDelta(bishopSteps[:], d) }
func (bishopRule) validRule(_ *Snapshot, _ Move) bool { return true }

// 马：日字，憋马腿
func (knightRule) validPos(Pos, Half) bool          { return true }
func (knightRule) validDelta(d Delta, _ Half) bool { return containsDelta(knightSteps[:], d) }
func (knightRule) validRule(s *Snapshot, m Move) bool {
	d := m.To.Sub(m.From)
	// 长边方向上紧挨着的那一格就是马腿
	leg := m.From.Add(Delta{DRow: d.DRow / 2, DCol: d.DCol / 2})
	return s.grid.At(leg) == 0
}

// 车：横竖直线，中间不能有子
func (rookRule) validPos(Pos, Half) bool          { return true }
func (rookRule) validDelta(d Delta, _ Half) bool { return isStraight(d) }
func (rookRule) validRule(s *Snapshot, m Move) bool {
	return s.countBetween(m.From, m.To) == 0
}

// 炮：不吃子时同车，吃子时中间恰好一个炮架
func (cannonRule) validPos(Pos, Half) bool          { return true }
func (cannonRule) validDelta(d Delta, _ Half) bool { return isStraight(d) }
func (cannonRule) validRule(s *Snapshot, m Move) bool {
	n := s.countBetween(m.From, m.To)
	if s.grid.At(m.To) == 0 {
		return n == 0
	}
	return n == 1
}

// 兵：过河前只能向前；过河后可以左右。左右是否允许由落点区域决定
func (pawnRule) validPos(to Pos, h Half) bool {
	rank := relRank(h, to.Row)
	if rank < riverRank {
		return true
	}
	return (rank == 5 || rank == 6) && to.Col%2 == 0
}
func (pawnRule) validDelta(d Delta, h Half) bool {
	if d.DRow == forward(h) && d.DCol == 0 {
		return true
	}
	return d.DRow == 0 && (d.DCol == 1 || d.DCol == -1)
}
func (pawnRule) validRule(_ *Snapshot, _ Move) bool { return true }

func isStraight(d Delta) bool {
	return (d.DRow == 0) != (d.DCol == 0)
}

// countBetween 同一直线上 a、b 之间（不含两端）的棋子数；不在同一直线返回 -1
func (s *Snapshot) countBetween(a, b Pos) int {
	d := b.Sub(a)
	if !isStraight(d) {
		return -1
	}
	step := Delta{DRow: sign(d.DRow), DCol: sign(d.DCol)}
	n := 0
	for p := a.Add(step); p != b; p = p.Add(step) {
		if s.grid.At(p) != 0 {
			n++
		}
	}
	return n
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// IsValidMove 对 side 来说走法 m 是否符合走子规则（不考虑是否送将）
func (s *Snapshot) IsValidMove(m Move, side Side) bool {
	if !m.From.Valid() || !m.To.Valid() || m.From == m.To {
		return false
	}
	pc := s.grid.At(m.From)
	if pc == 0 || pc.Side() != side {
		return false
	}
	if dst := s.grid.At(m.To); dst != 0 && dst.Side() == side {
		return false
	}
	r := ruleFor(pc.Kind())
	if r == nil {
		return false
	}
	h := s.HalfOf(side)
	return r.validPos(m.To, h) && r.validDelta(m.To.Sub(m.From), h) && r.validRule(s, m)
}
