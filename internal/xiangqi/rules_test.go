package xiangqi

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, s string) Move {
	t.Helper()
	m, err := ParseMove(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return m
}

func boardFromFEN(t *testing.T, fen string) *Board {
	t.Helper()
	s, err := DecodeFEN(fen)
	if err != nil {
		t.Fatalf("decode %q: %v", fen, err)
	}
	b := &Board{}
	b.Load(s)
	return b
}

func TestOpeningCenterPawnAdvance(t *testing.T) {
	b := NewBoard()
	st := b.MakeMove(mustParse(t, "e3e4"))
	if st != StatusOK {
		t.Fatalf("status = %v, want ok", st)
	}
	if b.NextPlayer() != Black {
		t.Fatalf("next player = %v, want black", b.NextPlayer())
	}
	if got := b.Trigger(); got != mustParse(t, "e3e4") {
		t.Fatalf("trigger = %v", got)
	}
	if b.Owner(Pos{Row: 5, Col: 4}) != Red || b.Owner(Pos{Row: 6, Col: 4}) != NoSide {
		t.Fatalf("pawn not moved:\n%s", b.Snapshot().Encode())
	}
}

func TestIllegalMoveLeavesStateUnchanged(t *testing.T) {
	b := NewBoard()
	before := b.Snapshot().Encode()
	for _, mv := range []string{
		"e3e5", // 兵走两格
		"b0d1", // 憋马腿
		"b2b7", // 炮吃子没有炮架
		"e0d0", // 王走到自己士上
		"e6e5", // 动对方的子
		"a1a2", // 起点为空
		"e3e3", // 原地
	} {
		if st := b.MakeMove(mustParse(t, mv)); st.Has(StatusOK) {
			t.Fatalf("%s accepted: %v", mv, st)
		}
	}
	if got := b.Snapshot().Encode(); got != before || b.HistoryLen() != 0 {
		t.Fatalf("state changed: %s", got)
	}
}

func TestSuicideRejected(t *testing.T) {
	// 黑车守着 d 列，红王走到 d 列就是送将
	b := boardFromFEN(t, "3r1k3/9/9/9/9/9/9/9/9/4K4 w")
	before := b.Snapshot().Encode()

	if st := b.MakeMove(mustParse(t, "e0d0")); st != StatusSuicide {
		t.Fatalf("status = %v, want suicide", st)
	}
	// 走到 f 列会和黑王对脸
	if st := b.MakeMove(mustParse(t, "e0f0")); st != StatusSuicide {
		t.Fatalf("status = %v, want suicide (kings meeting)", st)
	}
	if b.Snapshot().Encode() != before || b.HistoryLen() != 0 {
		t.Fatalf("suicide changed the board")
	}
	if st := b.MakeMove(mustParse(t, "e0e1")); st != StatusOK {
		t.Fatalf("status = %v, want ok", st)
	}
}

func TestCaptureKingIsDead(t *testing.T) {
	b := boardFromFEN(t, "4k4/9/9/9/9/4R4/9/9/9/4K4 w")
	st := b.MakeMove(mustParse(t, "e4e9"))
	want := StatusOK | StatusEat | StatusDead
	if st != want {
		t.Fatalf("status = %v, want %v", st, want)
	}
	if got := b.Score(Black); got != DeadScore {
		t.Fatalf("black score = %d, want %d", got, DeadScore)
	}
	if b.Snapshot().PieceSet(Black).Alive() {
		t.Fatalf("black king still recorded")
	}
}

func TestDeadSideCannotMove(t *testing.T) {
	b := boardFromFEN(t, "4k4/9/9/9/r8/4R4/9/9/9/4K4 w")
	if st := b.MakeMove(mustParse(t, "e4e9")); st != StatusOK|StatusEat|StatusDead {
		t.Fatalf("capture status = %v", st)
	}
	s := b.Snapshot()
	if moves := s.GenerateAllMoves(Black); len(moves) != 0 {
		t.Fatalf("side without king has moves: %v", moves)
	}
	if s.HasLegalMove(Black) || s.Checkmate(Black) {
		t.Fatalf("dead side: has move=%v checkmate=%v", s.HasLegalMove(Black), s.Checkmate(Black))
	}
	before := s.Encode()
	if st := b.MakeMove(mustParse(t, "a5a4")); st != StatusDead {
		t.Fatalf("move after game over = %v, want dead", st)
	}
	if b.Snapshot().Encode() != before || b.HistoryLen() != 1 {
		t.Fatalf("move after game over changed the board")
	}
	// 悔棋后对局继续
	if !b.UndoMakeMove() {
		t.Fatalf("undo failed")
	}
	if st := b.MakeMove(mustParse(t, "e4e5")); !st.Has(StatusOK) {
		t.Fatalf("after undo: %v", st)
	}
}

func TestCheckAndCheckmate(t *testing.T) {
	t.Run("check", func(t *testing.T) {
		b := boardFromFEN(t, "3k5/9/9/9/9/9/9/9/9/R3K4 w")
		st := b.MakeMove(mustParse(t, "a0a9"))
		if st != StatusOK|StatusCheck {
			t.Fatalf("status = %v, want ok|check", st)
		}
		s := b.Snapshot()
		if !s.Check(Black) || s.Checkmate(Black) {
			t.Fatalf("check=%v checkmate=%v", s.Check(Black), s.Checkmate(Black))
		}
	})

	t.Run("checkmate", func(t *testing.T) {
		b := boardFromFEN(t, "4k4/8R/9/9/9/R8/9/9/9/3K5 w")
		st := b.MakeMove(mustParse(t, "a4a9"))
		want := StatusOK | StatusCheck | StatusDead
		if st != want {
			t.Fatalf("status = %v, want %v", st, want)
		}
		s := b.Snapshot()
		if !s.Checkmate(Black) {
			t.Fatalf("expected checkmate")
		}
		if moves := s.GenerateAllMoves(Black); len(moves) != 0 {
			t.Fatalf("checkmated side has moves: %v", moves)
		}
	})
}

func TestKingsMeeting(t *testing.T) {
	s := MustDecodeFEN("4k4/9/9/9/9/9/9/9/9/4K4 w")
	if !s.IsKingMeeting() {
		t.Fatalf("kings on an open file should meet")
	}
	if !s.Check(Red) || !s.Check(Black) {
		t.Fatalf("meeting kings should both be in check")
	}
	blocked := MustDecodeFEN("4k4/9/9/9/4p4/9/9/9/9/4K4 w")
	if blocked.IsKingMeeting() {
		t.Fatalf("a piece between the kings blocks the meeting")
	}
}

func TestUndo(t *testing.T) {
	b := NewBoard()
	if b.UndoMakeMove() {
		t.Fatalf("undo on empty history should fail")
	}
	start := b.Snapshot().Clone()
	for _, mv := range []string{"h2e2", "h9g7", "e2e6"} {
		if st := b.MakeMove(mustParse(t, mv)); !st.Has(StatusOK) {
			t.Fatalf("%s rejected: %v", mv, st)
		}
	}
	for i := 0; i < 3; i++ {
		if !b.UndoMakeMove() {
			t.Fatalf("undo %d failed", i)
		}
	}
	if !b.Snapshot().Equal(&start) {
		t.Fatalf("undo did not restore the opening")
	}
	if b.UndoMakeMove() {
		t.Fatalf("history should be empty")
	}
}

func TestInitClearsHistory(t *testing.T) {
	b := NewBoard()
	for _, mv := range []string{"h2e2", "h9g7", "b0c2"} {
		if st := b.MakeMove(mustParse(t, mv)); !st.Has(StatusOK) {
			t.Fatalf("%s rejected: %v", mv, st)
		}
	}
	b.Init()
	if b.HistoryLen() != 0 || b.UndoMakeMove() {
		t.Fatalf("history survived Init: %d", b.HistoryLen())
	}
	opening := NewSnapshot()
	if !b.Snapshot().Equal(&opening) || b.NextPlayer() != Red || !b.Trigger().IsNone() {
		t.Fatalf("Init did not restore the opening: %s", b.Snapshot().Encode())
	}
}

func TestMakeUndoRoundTrip(t *testing.T) {
	b := NewBoard()
	for ply := 0; ply < 30; ply++ {
		s := b.Snapshot()
		moves := s.GenerateLegalMoves()
		if len(moves) == 0 {
			return
		}
		before := s.Clone()
		mv := moves[(ply*7)%len(moves)]
		if st := b.MakeMove(mv); !st.Has(StatusOK) {
			t.Fatalf("ply %d: generated move %v rejected: %v", ply, mv, st)
		}
		if !b.UndoMakeMove() {
			t.Fatalf("ply %d: undo failed", ply)
		}
		if !b.Snapshot().Equal(&before) {
			t.Fatalf("ply %d: undo after %v did not restore the snapshot", ply, mv)
		}
		b.MakeMove(mv)
	}
}

func TestMaterialConservation(t *testing.T) {
	b := NewBoard()
	for ply := 0; ply < 40; ply++ {
		s := b.Snapshot()
		moves := s.GenerateLegalMoves()
		if len(moves) == 0 {
			return
		}
		side := s.Next()
		opp := side.Opposite()
		ownCount := s.PieceSet(side).Count()
		oppCount := s.PieceSet(opp).Count()

		// 有吃子就优先吃子
		mv := moves[0]
		for _, m := range moves {
			if s.At(m.To) != 0 {
				mv = m
				break
			}
		}
		victim := s.At(mv.To)
		st := b.MakeMove(mv)
		if st.Has(StatusDead) {
			return
		}

		after := b.Snapshot()
		if got := after.PieceSet(side).Count(); got != ownCount {
			t.Fatalf("ply %d: mover count %d -> %d", ply, ownCount, got)
		}
		wantOpp := oppCount
		if victim != 0 {
			wantOpp--
			if !st.Has(StatusEat) {
				t.Fatalf("ply %d: capture without eat flag", ply)
			}
			opps := after.PieceSet(opp)
			if _, ok := opps.Attackers[mv.To]; ok {
				t.Fatalf("ply %d: captured position still tracked", ply)
			}
			if _, ok := opps.Defenders[mv.To]; ok {
				t.Fatalf("ply %d: captured position still tracked", ply)
			}
		}
		if got := after.PieceSet(opp).Count(); got != wantOpp {
			t.Fatalf("ply %d: opponent count %d, want %d", ply, got, wantOpp)
		}
	}
}

func TestScoreAfterCapture(t *testing.T) {
	b := NewBoard()
	if b.Score(Red) != b.Score(Black) {
		t.Fatalf("opening scores differ: %d vs %d", b.Score(Red), b.Score(Black))
	}
	s := b.Snapshot()
	from, to := Pos{Row: 7, Col: 1}, Pos{Row: 0, Col: 1}
	cannon, knight := s.At(from), s.At(to)
	redBefore, blackBefore := b.Score(Red), b.Score(Black)
	wantRed := redBefore + s.Value(cannon, to) - s.Value(cannon, from)
	wantBlack := blackBefore - s.Value(knight, to)

	if st := b.MakeMove(Move{From: from, To: to}); st != StatusOK|StatusEat {
		t.Fatalf("status = %v, want ok|eat", st)
	}
	if b.Score(Red) != wantRed || b.Score(Black) != wantBlack {
		t.Fatalf("scores = %d/%d, want %d/%d", b.Score(Red), b.Score(Black), wantRed, wantBlack)
	}
}

func TestIconAndOwner(t *testing.T) {
	b := NewBoard()
	cases := []struct {
		pos   Pos
		icon  Icon
		owner Side
	}{
		{Pos{Row: 9, Col: 4}, IconRedKing, Red},
		{Pos{Row: 0, Col: 4}, IconBlackKing, Black},
		{Pos{Row: 7, Col: 1}, IconRedCannon, Red},
		{Pos{Row: 3, Col: 8}, IconBlackPawn, Black},
		{Pos{Row: 4, Col: 4}, IconNone, NoSide},
	}
	for _, c := range cases {
		if got := b.Icon(c.pos); got != c.icon {
			t.Errorf("icon at %v = %d, want %d", c.pos, got, c.icon)
		}
		if got := b.Owner(c.pos); got != c.owner {
			t.Errorf("owner at %v = %v, want %v", c.pos, got, c.owner)
		}
	}
}

func TestQueryOutOfBoardPanics(t *testing.T) {
	b := NewBoard()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrOutOfBoard) {
			t.Fatalf("recovered %v, want ErrOutOfBoard", r)
		}
	}()
	b.Icon(Pos{Row: 10, Col: 0})
}

func TestRotate(t *testing.T) {
	b := NewBoard()
	b.MakeMove(mustParse(t, "h2e2"))
	before := b.Snapshot().Clone()

	b.Rotate()
	s := b.Snapshot()
	if s.HalfOf(Red) != Upper || s.HalfOf(Black) != Lower {
		t.Fatalf("halves not swapped")
	}
	if b.Icon(Pos{Row: 0, Col: 4}) != IconRedKing {
		t.Fatalf("red king should be on top after rotating")
	}
	if want := before.Trigger().rotate(); b.Trigger() != want {
		t.Fatalf("trigger = %v, want %v", b.Trigger(), want)
	}
	if b.Score(Red) != before.Score(Red) || b.Score(Black) != before.Score(Black) {
		t.Fatalf("rotation changed scores")
	}
	// 黑方此时在下方，向上走卒
	if st := b.MakeMove(Move{From: Pos{Row: 6, Col: 4}, To: Pos{Row: 5, Col: 4}}); st != StatusOK {
		t.Fatalf("black pawn advance after rotate: %v", st)
	}
	// 悔棋后历史也是旋转过的
	if !b.UndoMakeMove() || !b.UndoMakeMove() {
		t.Fatalf("undo failed")
	}
	b.Rotate()
	opening := NewSnapshot()
	if !b.Snapshot().Equal(&opening) {
		t.Fatalf("rotate+undo+rotate should give the opening")
	}
}
