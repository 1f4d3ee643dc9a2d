package xiangqi

import "fmt"

// Side 一方棋手（按颜色区分，和棋盘上下无关）
type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Black  Side = 1
)

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// Opposite 对方
func (s Side) Opposite() Side {
	switch s {
	case Red:
		return Black
	case Black:
		return Red
	default:
		return NoSide
	}
}

// Half 棋盘的上半区 / 下半区
type Half int8

const (
	Upper Half = 0
	Lower Half = 1
)

func (h Half) String() string {
	if h == Upper {
		return "upper"
	}
	return "lower"
}

func (h Half) flip() Half { return 1 - h }

type Kind int8

const (
	KindNone    Kind = iota
	KindKing         // 将 / 帅
	KindAdvisor      // 士 / 仕
	KindBishop       // 象 / 相
	KindKnight       // 马
	KindRook         // 车
	KindCannon       // 炮
	KindPawn         // 卒 / 兵

	numKinds = 8
)

var kindNames = [numKinds]string{"none", "king", "advisor", "bishop", "knight", "rook", "cannon", "pawn"}

func (k Kind) String() string {
	if k < 0 || int(k) >= numKinds {
		return fmt.Sprintf("kind(%d)", int8(k))
	}
	return kindNames[k]
}

// Piece 棋子编码：低 3 位为兵种，第 4 位红、第 5 位黑；0 为空。
type Piece uint8

const (
	kindMask  Piece = 0x07
	redFlag   Piece = 0x08
	blackFlag Piece = 0x10
)

func MakePiece(side Side, k Kind) Piece {
	if k == KindNone {
		return 0
	}
	switch side {
	case Red:
		return redFlag | Piece(k)
	case Black:
		return blackFlag | Piece(k)
	}
	return 0
}

func (p Piece) Kind() Kind { return Kind(p & kindMask) }

func (p Piece) Side() Side {
	switch {
	case p&redFlag != 0:
		return Red
	case p&blackFlag != 0:
		return Black
	}
	return NoSide
}

func (p Piece) String() string {
	if p == 0 {
		return "."
	}
	return string(pieceToChar(p))
}

// Pos 棋盘坐标，行 0..9 自上而下，列 0..8 自左而右
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InvalidPos 表示"没有位置"
var InvalidPos = Pos{Row: -1, Col: -1}

func (p Pos) Valid() bool { return onBoard(p.Row, p.Col) }

func (p Pos) Sub(o Pos) Delta { return Delta{DRow: p.Row - o.Row, DCol: p.Col - o.Col} }

func (p Pos) Add(d Delta) Pos { return Pos{Row: p.Row + d.DRow, Col: p.Col + d.DCol} }

// rotate 旋转 180 度后的位置
func (p Pos) rotate() Pos {
	if !p.Valid() {
		return p
	}
	return Pos{Row: Rows - 1 - p.Row, Col: Cols - 1 - p.Col}
}

func (p Pos) String() string {
	if !p.Valid() {
		return "-"
	}
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Delta 走子的相对位移，与绝对位置无关
type Delta struct {
	DRow int
	DCol int
}

type Move struct {
	From Pos `json:"from"`
	To   Pos `json:"to"`
}

// NoMove 空走法，也是开局快照的 trigger
var NoMove = Move{From: InvalidPos, To: InvalidPos}

func (m Move) IsNone() bool { return m == NoMove }

func (m Move) rotate() Move { return Move{From: m.From.rotate(), To: m.To.rotate()} }

// Icon 仅供界面绘制使用的棋子图标编号
type Icon int8

const (
	IconNone Icon = iota
	IconRedKing
	IconRedAdvisor
	IconRedBishop
	IconRedKnight
	IconRedRook
	IconRedCannon
	IconRedPawn
	IconBlackKing
	IconBlackAdvisor
	IconBlackBishop
	IconBlackKnight
	IconBlackRook
	IconBlackCannon
	IconBlackPawn
)

func iconOf(p Piece) Icon {
	switch p.Side() {
	case Red:
		return Icon(p.Kind())
	case Black:
		return Icon(p.Kind()) + IconBlackKing - 1
	}
	return IconNone
}
