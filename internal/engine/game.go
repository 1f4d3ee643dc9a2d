package engine

import "xiangqi/internal/xiangqi"

// Board 界面层唯一依赖的操作集合
type Board interface {
	Init()
	MakeMove(m xiangqi.Move) xiangqi.Status
	AutoMove() xiangqi.Status
	UndoMakeMove() bool
	Score(side xiangqi.Side) int
	Icon(p xiangqi.Pos) xiangqi.Icon
	NextPlayer() xiangqi.Side
	Owner(p xiangqi.Pos) xiangqi.Side
	Trigger() xiangqi.Move
}

var _ Board = (*Game)(nil)

// Game 规则 + 电脑走棋。不加锁：一次调用结束前不能有其他调用。
type Game struct {
	*xiangqi.Board
	engine *Engine
	last   SearchResult
}

func NewGame(cfg SearchConfig) *Game {
	return &Game{
		Board:  xiangqi.NewBoard(),
		engine: NewEngine(cfg),
	}
}

// AutoMove 电脑为当前走棋方搜索一步并按 MakeMove 的流程落子。
// 无着可走时返回 StatusDead，局面不变。
func (g *Game) AutoMove() xiangqi.Status {
	res := g.engine.Search(g.Snapshot())
	g.last = res
	if !res.Found() {
		return xiangqi.StatusDead
	}
	return g.MakeMove(res.BestMove)
}

// LastSearch 最近一次 AutoMove 的搜索结果
func (g *Game) LastSearch() SearchResult { return g.last }

func (g *Game) Engine() *Engine { return g.engine }
