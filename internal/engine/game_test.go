package engine

import (
	"testing"

	"xiangqi/internal/xiangqi"
)

func TestAutoMoveCommitsAndUndoes(t *testing.T) {
	g := NewGame(SearchConfig{Depth: 2})
	g.Load(xiangqi.MustDecodeFEN(hangingRookFEN))
	before := g.Snapshot().Clone()

	st := g.AutoMove()
	if st != xiangqi.StatusOK|xiangqi.StatusEat {
		t.Fatalf("status = %v, want ok|eat", st)
	}
	if g.HistoryLen() != 1 || g.NextPlayer() != xiangqi.Black {
		t.Fatalf("move not committed: history=%d next=%v", g.HistoryLen(), g.NextPlayer())
	}
	if g.Trigger() != g.LastSearch().BestMove {
		t.Fatalf("trigger %v != best move %v", g.Trigger(), g.LastSearch().BestMove)
	}
	if !g.UndoMakeMove() {
		t.Fatalf("undo failed")
	}
	if !g.Snapshot().Equal(&before) {
		t.Fatalf("undo did not restore the position")
	}
}

func TestAutoMoveWithoutLegalMove(t *testing.T) {
	g := NewGame(SearchConfig{Depth: 1})
	g.Load(xiangqi.MustDecodeFEN(matedFEN))
	before := g.Snapshot().Encode()

	st := g.AutoMove()
	if st != xiangqi.StatusDead {
		t.Fatalf("status = %v, want dead", st)
	}
	if g.Snapshot().Encode() != before || g.HistoryLen() != 0 {
		t.Fatalf("state changed without a move")
	}
}

func TestAutoMovePlaysBothSides(t *testing.T) {
	g := NewGame(SearchConfig{Depth: 1, Strategy: StrategyAlphaBeta})
	for ply := 0; ply < 6; ply++ {
		side := g.NextPlayer()
		st := g.AutoMove()
		if !st.Has(xiangqi.StatusOK) {
			t.Fatalf("ply %d: %v could not move: %v", ply, side, st)
		}
		if g.NextPlayer() == side {
			t.Fatalf("ply %d: side to move did not change", ply)
		}
	}
	if g.HistoryLen() != 6 {
		t.Fatalf("history = %d, want 6", g.HistoryLen())
	}
}

func TestNoMovesAfterKingCaptured(t *testing.T) {
	g := NewGame(SearchConfig{Depth: 2})
	g.Load(xiangqi.MustDecodeFEN("4k4/9/9/9/r8/4R4/9/9/9/4K4 w"))
	if st := g.AutoMove(); st != xiangqi.StatusOK|xiangqi.StatusEat|xiangqi.StatusDead {
		t.Fatalf("status = %v, want ok|eat|dead", st)
	}
	// 两条落子路径都拒绝继续走
	if st := g.AutoMove(); st != xiangqi.StatusDead {
		t.Fatalf("auto move after capture = %v", st)
	}
	m, _ := xiangqi.ParseMove("a5a4")
	if st := g.MakeMove(m); st != xiangqi.StatusDead {
		t.Fatalf("make move after capture = %v", st)
	}
	if g.HistoryLen() != 1 {
		t.Fatalf("history = %d, want 1", g.HistoryLen())
	}
}
