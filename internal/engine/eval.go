package engine

import "tiaoqi/internal/tiaoqi"

const (
	// 终局分：赢方 10000，输方 0
	winScore = 10000
	// 落后惩罚的起算线：最落后的子离家不到 4 格时指数加罚
	laggardThreshold = 4
)

// Evaluate 从走子方视角给局面打分。
// 每方 = 位置分总和 − 1<<max(0, 4−最小前进量)；有一方进满角就直接盖成 10000/0。
func Evaluate(pos *tiaoqi.Position) int {
	red, redLast := sideScore(pos, tiaoqi.Red)
	green, greenLast := sideScore(pos, tiaoqi.Green)

	if redLast == tiaoqi.GoalDistance {
		red = winScore
		green = 0
	}
	if greenLast == tiaoqi.GoalDistance {
		green = winScore
		red = 0
	}

	if pos.SideToMove == tiaoqi.Red {
		return red - green
	}
	return green - red
}

func sideScore(pos *tiaoqi.Position, side tiaoqi.Side) (score, last int) {
	last = tiaoqi.MaxDistance + 1
	for bb := pos.Board[side]; !bb.IsZero(); {
		sq := bb.HighestBit()
		bb.Clear(sq)
		prog := tiaoqi.Progress(side, sq)
		if prog < last {
			last = prog
		}
		score += tiaoqi.PositionScore(side, sq)
	}
	if d := laggardThreshold - last; d > 0 {
		score -= 1 << uint(d)
	} else {
		score -= 1
	}
	return score, last
}
