package xiangqi

const (
	// KingValue 王的估值，同时代表"王还活着"
	KingValue = 10000
	// DeadScore 王被吃之后该方的分数
	DeadScore = 0
)

// 基础子力估值
var baseValue = [numKinds]int{
	KindKing:    KingValue,
	KindAdvisor: 20,
	KindBishop:  20,
	KindKnight:  40,
	KindRook:    90,
	KindCannon:  45,
	KindPawn:    10,
}

// pieceValue 子力 + 位置分，h 为该子所属一方所在的半区
func pieceValue(pc Piece, p Pos, h Half) int {
	k := pc.Kind()
	if k <= KindNone || int(k) >= numKinds {
		return 0
	}
	return baseValue[k] + positionalBonus(k, relRank(h, p.Row), p.Col)
}

// rank 是从该子一方视角看的行号（自家底线 9）
func positionalBonus(k Kind, rank, col int) int {
	centerDist := abs(col - Cols/2)
	switch k {
	case KindAdvisor, KindBishop:
		// 守在九宫中心附近
		if col == Cols/2 && (rank == 8 || rank == 7) {
			return 2
		}
		return 0
	case KindKnight:
		b := 4 - centerDist
		if rank < riverRank {
			b += 6
		}
		if rank == 0 {
			b -= 4 // 底线马
		}
		return b
	case KindRook:
		b := 0
		if rank < riverRank {
			b += 4
		}
		if centerDist <= 1 {
			b += 2
		}
		return b
	case KindCannon:
		b := 0
		if col == Cols/2 {
			b += 4
		}
		if rank >= 7 && centerDist >= 3 {
			b -= 1
		}
		return b
	case KindPawn:
		return pawnBonus(rank, centerDist)
	}
	return 0
}

func pawnBonus(rank, centerDist int) int {
	if rank >= riverRank {
		return 0
	}
	if rank == 0 {
		// 老兵
		return 2
	}
	b := 10
	if centerDist <= 1 && rank <= 3 {
		b += 5
	}
	return b
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
