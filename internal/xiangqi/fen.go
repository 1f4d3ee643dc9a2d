package xiangqi

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var ErrInvalidFEN = errors.New("invalid FEN")

// Encode 标准象棋 FEN：第 0 行在最前，空位用数字压缩；空格后 w/b 表示走棋方
func (s *Snapshot) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := s.grid[r][c]
			if pc == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if s.next == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	return sb.String()
}

// DecodeFEN 解析 FEN，黑方固定在上半区
func DecodeFEN(fen string) (Snapshot, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return Snapshot{}, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return Snapshot{}, fmt.Errorf("%w: want %d ranks, got %d", ErrInvalidFEN, Rows, len(rows))
	}
	var g Grid
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			if c >= Cols {
				return Snapshot{}, fmt.Errorf("%w: rank %d too long", ErrInvalidFEN, r)
			}
			if ch >= '1' && ch <= '9' {
				c += int(ch - '0')
				continue
			}
			k, ok := letterToKind[unicode.ToLower(ch)]
			if !ok {
				return Snapshot{}, fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, ch)
			}
			side := Black
			if unicode.IsUpper(ch) {
				side = Red
			}
			g[r][c] = MakePiece(side, k)
			c++
		}
		if c != Cols {
			return Snapshot{}, fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, r, c)
		}
	}

	next := Red
	if len(parts) > 1 {
		switch parts[1] {
		case "w", "r":
		case "b":
			next = Black
		default:
			return Snapshot{}, fmt.Errorf("%w: side %q", ErrInvalidFEN, parts[1])
		}
	}
	return FromGrid(g, next)
}

// MustDecodeFEN 用于常量局面，出错直接 panic
func MustDecodeFEN(fen string) Snapshot {
	s, err := DecodeFEN(fen)
	if err != nil {
		panic(err)
	}
	return s
}
