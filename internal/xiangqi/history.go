package xiangqi

// History 当前快照 + 悔棋栈。栈按下标顺序存放快照值，没有共享引用。
type History struct {
	current Snapshot
	memo    []Snapshot
}

// NewHistory 从标准开局开始
func NewHistory() *History {
	h := &History{}
	h.Init()
	return h
}

// Init 回到开局并清空历史
func (h *History) Init() {
	h.Reset(NewSnapshot())
}

// Reset 以给定局面为当前快照并清空历史
func (h *History) Reset(s Snapshot) {
	h.current = s.Clone()
	h.memo = h.memo[:0]
}

// Current 当前快照，只读
func (h *History) Current() *Snapshot { return &h.current }

// CreateSnapshot 当前快照的独立副本
func (h *History) CreateSnapshot() Snapshot { return h.current.Clone() }

// Save 把当前快照压栈
func (h *History) Save() {
	h.memo = append(h.memo, h.current.Clone())
}

// Load 弹出最近一次保存的快照作为当前快照；栈空返回 false
func (h *History) Load() bool {
	n := len(h.memo)
	if n == 0 {
		return false
	}
	h.current = h.memo[n-1]
	h.memo[n-1] = Snapshot{}
	h.memo = h.memo[:n-1]
	return true
}

// Update 在当前快照上走子，调用方保证走法合法
func (h *History) Update(m Move) {
	h.current.apply(m)
}

// Len 历史快照个数
func (h *History) Len() int { return len(h.memo) }

// Rotate 旋转当前快照和全部历史，悔棋后方向保持一致
func (h *History) Rotate() {
	h.current.rotate()
	for i := range h.memo {
		h.memo[i].rotate()
	}
}
