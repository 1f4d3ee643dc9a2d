package xiangqi

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidMove = errors.New("invalid move notation")

// ICCS 坐标：列 a..i 从左到右，行 0..9 从下到上
func (p Pos) ICCS() string {
	if !p.Valid() {
		return "--"
	}
	return string([]byte{byte('a' + p.Col), byte('0' + Rows - 1 - p.Row)})
}

func (m Move) String() string {
	if m.IsNone() {
		return "-"
	}
	return m.From.ICCS() + m.To.ICCS()
}

// ParseMove 解析 ICCS 走法，如 "h2e2"，也接受 "h2-e2"
func ParseMove(s string) (Move, error) {
	t := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))
	if len(t) != 4 {
		return NoMove, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	from, ok1 := parseSquare(t[0], t[1])
	to, ok2 := parseSquare(t[2], t[3])
	if !ok1 || !ok2 {
		return NoMove, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	return Move{From: from, To: to}, nil
}

func parseSquare(file, rank byte) (Pos, bool) {
	if file < 'a' || file > 'i' || rank < '0' || rank > '9' {
		return InvalidPos, false
	}
	return Pos{Row: Rows - 1 - int(rank-'0'), Col: int(file - 'a')}, true
}
