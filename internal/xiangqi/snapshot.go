package xiangqi

import "fmt"

// Snapshot 某一时刻的完整局面。Snapshot 是值语义：Clone 会完整复制棋盘和两个
// PieceSet，修改一个快照永远不会影响另一个。
type Snapshot struct {
	grid  Grid
	next  Side // 下一步走棋的一方
	upper PieceSet
	lower PieceSet

	// 黑方、红方各自在哪个半区；旋转棋盘时交换
	blackHalf Half
	redHalf   Half

	trigger Move // 产生该局面的走法，用于界面高亮
	hash    uint64
}

// NewSnapshot 标准开局
func NewSnapshot() Snapshot {
	s, err := DecodeFEN(InitialFEN)
	if err != nil {
		panic("xiangqi: bad initial FEN: " + err.Error())
	}
	return s
}

// FromGrid 从棋盘重建快照：黑方在上半区，PieceSet 与分数由棋盘计算得出。
// 每方至多一个王且必须在自家九宫；没有王的一方视为已输。
func FromGrid(g Grid, next Side) (Snapshot, error) {
	if err := checkKings(&g); err != nil {
		return Snapshot{}, err
	}
	s := Snapshot{
		grid:      g,
		next:      next,
		upper:     newPieceSet(),
		lower:     newPieceSet(),
		blackHalf: Upper,
		redHalf:   Lower,
		trigger:   NoMove,
	}
	s.rebuildPieceSets()
	s.hash = s.calculateHash()
	return s, nil
}

func checkKings(g *Grid) error {
	var seen [2]bool
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			pc := g[r][c]
			if pc == 0 {
				continue
			}
			side := pc.Side()
			if side == NoSide {
				return fmt.Errorf("%w: piece %#x has no side", ErrInvalidFEN, uint8(pc))
			}
			if pc.Kind() != KindKing {
				continue
			}
			p := Pos{Row: r, Col: c}
			if seen[side] {
				return fmt.Errorf("%w: second %v king at %s", ErrInvalidFEN, side, p.ICCS())
			}
			seen[side] = true
			h := Lower
			if side == Black {
				h = Upper
			}
			if !inPalace(h, p) {
				return fmt.Errorf("%w: %v king outside its palace at %s", ErrInvalidFEN, side, p.ICCS())
			}
		}
	}
	return nil
}

func (s *Snapshot) rebuildPieceSets() {
	s.upper = newPieceSet()
	s.lower = newPieceSet()
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			p := Pos{Row: r, Col: c}
			pc := s.grid.At(p)
			if pc == 0 {
				continue
			}
			ps := s.pieceSet(pc.Side())
			ps.add(p, pc.Kind())
			ps.Score += pieceValue(pc, p, s.HalfOf(pc.Side()))
		}
	}
	for _, ps := range []*PieceSet{&s.upper, &s.lower} {
		if !ps.Alive() {
			ps.Score = DeadScore
		}
	}
}

// Clone 深拷贝
func (s *Snapshot) Clone() Snapshot {
	c := *s
	c.upper = s.upper.clone()
	c.lower = s.lower.clone()
	return c
}

// At 读取 p 处的棋子
func (s *Snapshot) At(p Pos) Piece { return s.grid.At(p) }

// Grid 返回棋盘副本
func (s *Snapshot) Grid() Grid { return s.grid }

func (s *Snapshot) Next() Side { return s.next }

func (s *Snapshot) Trigger() Move { return s.trigger }

func (s *Snapshot) Hash() uint64 { return s.hash }

// HalfOf 该方所在的半区
func (s *Snapshot) HalfOf(side Side) Half {
	if side == Black {
		return s.blackHalf
	}
	return s.redHalf
}

// SideOf 该半区属于哪一方
func (s *Snapshot) SideOf(h Half) Side {
	if s.blackHalf == h {
		return Black
	}
	return Red
}

func (s *Snapshot) pieceSet(side Side) *PieceSet {
	if s.HalfOf(side) == Upper {
		return &s.upper
	}
	return &s.lower
}

// PieceSet 返回该方 PieceSet 的副本
func (s *Snapshot) PieceSet(side Side) PieceSet { return s.pieceSet(side).clone() }

// Score 该方当前分数
func (s *Snapshot) Score(side Side) int { return s.pieceSet(side).Score }

// Value 子力 + 位置估值，按该子所属一方的半区计算
func (s *Snapshot) Value(pc Piece, p Pos) int {
	if pc == 0 {
		return 0
	}
	return pieceValue(pc, p, s.HalfOf(pc.Side()))
}

// apply 修改当前快照：清空起点、落子（覆盖即吃子）、换边、记录 trigger。
// 调用方保证走法合法。
func (s *Snapshot) apply(m Move) {
	pc := s.grid.At(m.From)
	victim := s.grid.At(m.To)
	side := pc.Side()

	s.updatePieceSet(m, side, pc, victim)

	h := s.hash
	h ^= pieceHashKey(pc, m.From)
	if victim != 0 {
		h ^= pieceHashKey(victim, m.To)
	}
	h ^= pieceHashKey(pc, m.To)
	h ^= zobristBlackMove

	s.grid.set(m.To, pc)
	s.grid.set(m.From, 0)
	s.next = side.Opposite()
	s.trigger = m
	s.hash = h
}

// Apply 返回走子后的新快照，原快照不变
func (s *Snapshot) Apply(m Move) Snapshot {
	c := s.Clone()
	c.apply(m)
	return c
}

// rotate 旋转 180 度：棋盘、上下 PieceSet、红黑标志、trigger 一起变
func (s *Snapshot) rotate() {
	var g Grid
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			p := Pos{Row: r, Col: c}
			g.set(p.rotate(), s.grid.At(p))
		}
	}
	s.grid = g
	s.upper, s.lower = s.lower, s.upper
	s.upper.rotate()
	s.lower.rotate()
	s.blackHalf = s.blackHalf.flip()
	s.redHalf = s.redHalf.flip()
	if !s.trigger.IsNone() {
		s.trigger = s.trigger.rotate()
	}
	s.hash = s.calculateHash()
}

// Equal 棋盘、走棋方、两个 PieceSet、红黑标志都相同（不比较 trigger）
func (s *Snapshot) Equal(o *Snapshot) bool {
	return s.grid == o.grid && s.next == o.next &&
		s.blackHalf == o.blackHalf && s.redHalf == o.redHalf &&
		s.upper.Equal(&o.upper) && s.lower.Equal(&o.lower)
}
