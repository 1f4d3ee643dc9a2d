package xiangqi

import (
	"errors"
	"fmt"
)

// ErrOutOfBoard 坐标不在棋盘上，属于调用方的编程错误
var ErrOutOfBoard = errors.New("position out of board")

// Board 规则层门面：走子、悔棋、查询。不做搜索，也不加锁，
// 同一个 Board 同一时间只能被一个 goroutine 使用。
type Board struct {
	hist History
}

func NewBoard() *Board {
	b := &Board{}
	b.Init()
	return b
}

// Init 开局并清空历史
func (b *Board) Init() { b.hist.Init() }

// Load 以给定局面开始新对局
func (b *Board) Load(s Snapshot) { b.hist.Reset(s) }

// Snapshot 当前局面，只读
func (b *Board) Snapshot() *Snapshot { return b.hist.Current() }

// HistoryLen 可以悔棋的步数
func (b *Board) HistoryLen() int { return b.hist.Len() }

// MakeMove 校验并执行走法。非法或送将时局面不变。
func (b *Board) MakeMove(m Move) Status {
	cur := b.hist.Current()
	side := cur.next
	if !cur.KingAlive(Red) || !cur.KingAlive(Black) {
		// 对局已结束
		return StatusDead
	}
	if !cur.IsValidMove(m, side) {
		return 0
	}
	if cur.IsSuicide(m, side) {
		return StatusSuicide
	}

	st := StatusOK
	if cur.At(m.To) != 0 {
		st |= StatusEat
	}

	b.hist.Save()
	b.hist.Update(m)

	cur = b.hist.Current()
	opp := side.Opposite()
	if !cur.pieceSet(opp).Alive() {
		return st | StatusDead
	}
	if cur.Check(opp) {
		st |= StatusCheck
	}
	// 被将死或困毙都算输
	if !cur.HasLegalMove(opp) {
		st |= StatusDead
	}
	return st
}

// UndoMakeMove 悔一步；没有历史返回 false
func (b *Board) UndoMakeMove() bool { return b.hist.Load() }

// Rotate 翻转棋盘显示方向，不改变双方身份
func (b *Board) Rotate() { b.hist.Rotate() }

func (b *Board) Score(side Side) int { return b.hist.Current().Score(side) }

func (b *Board) NextPlayer() Side { return b.hist.Current().next }

func (b *Board) Trigger() Move { return b.hist.Current().trigger }

// Icon 界面绘制用；越界 panic
func (b *Board) Icon(p Pos) Icon {
	mustOnBoard(p)
	return iconOf(b.hist.Current().At(p))
}

// Owner p 处棋子属于哪一方，空格为 NoSide；越界 panic
func (b *Board) Owner(p Pos) Side {
	mustOnBoard(p)
	return b.hist.Current().At(p).Side()
}

func mustOnBoard(p Pos) {
	if !p.Valid() {
		panic(fmt.Errorf("%w: %v", ErrOutOfBoard, p))
	}
}
