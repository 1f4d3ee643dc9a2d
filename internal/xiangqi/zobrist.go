package xiangqi

import "math/rand/v2"

// 棋子编码直接做下标，最大为黑卒；编码 0（空格）那一行全为 0
const pieceCodes = int(blackFlag|kindMask) + 1

var (
	zobristKeys      [pieceCodes][NumSquares]uint64
	zobristBlackMove uint64
)

func init() {
	// 固定种子，同一局面在不同进程里哈希相同
	rng := rand.New(rand.NewPCG(0x5851F42D4C957F2D, 0x14057B7EF767814F))
	for _, side := range []Side{Red, Black} {
		for k := KindKing; k <= KindPawn; k++ {
			keys := &zobristKeys[MakePiece(side, k)]
			for sq := range keys {
				keys[sq] = rng.Uint64()
			}
		}
	}
	zobristBlackMove = rng.Uint64()
}

// pieceHashKey 空格、越界坐标和未知编码都返回 0
func pieceHashKey(pc Piece, p Pos) uint64 {
	if int(pc) >= pieceCodes || !p.Valid() {
		return 0
	}
	return zobristKeys[pc][indexOf(p)]
}

// calculateHash 全量计算，apply 里的增量结果应与之相同
func (s *Snapshot) calculateHash() uint64 {
	var h uint64
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			p := Pos{Row: r, Col: c}
			h ^= pieceHashKey(s.grid.At(p), p)
		}
	}
	if s.next == Black {
		h ^= zobristBlackMove
	}
	return h
}
