package xiangqi

import "unicode"

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols

	// 相对行号 >= riverRank 表示在自家半场
	riverRank = 5
)

// Grid 10x9 棋盘，格子里是棋子编码
type Grid [Rows][Cols]Piece

// At 不做越界检查，越界是调用方的错误
func (g *Grid) At(p Pos) Piece { return g[p.Row][p.Col] }

func (g *Grid) set(p Pos, pc Piece) { g[p.Row][p.Col] = pc }

func indexOf(p Pos) int { return p.Row*Cols + p.Col }

func posOf(sq int) Pos { return Pos{Row: sq / Cols, Col: sq % Cols} }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// relRank 以 h 一方的视角计算行号：自家底线为 9，对方底线为 0
func relRank(h Half, row int) int {
	if h == Lower {
		return row
	}
	return Rows - 1 - row
}

// 是否在 h 一方的九宫
func inPalace(h Half, p Pos) bool {
	if p.Col < 3 || p.Col > 5 {
		return false
	}
	return relRank(h, p.Row) >= 7
}

// 是否已经过河
func crossedRiver(h Half, row int) bool {
	return relRank(h, row) < riverRank
}

// 兵的前进方向：下方向上(-1)，上方向下(+1)
func forward(h Half) int {
	if h == Lower {
		return -1
	}
	return +1
}

var letterToKind = map[rune]Kind{
	'k': KindKing,
	'a': KindAdvisor,
	'b': KindBishop,
	'n': KindKnight,
	'r': KindRook,
	'c': KindCannon,
	'p': KindPawn,
}

var kindToLetter = [numKinds]rune{'.', 'k', 'a', 'b', 'n', 'r', 'c', 'p'}

// 红方大写，黑方小写
func pieceToChar(p Piece) rune {
	if p == 0 {
		return '.'
	}
	k := p.Kind()
	if k <= KindNone || int(k) >= numKinds {
		return '?'
	}
	ch := kindToLetter[k]
	if p.Side() == Red {
		return unicode.ToUpper(ch)
	}
	return ch
}

// InitialFEN 标准开局，黑方在上，红先
const InitialFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w"
