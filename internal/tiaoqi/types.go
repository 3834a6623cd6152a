package tiaoqi

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Green  Side = 1
)

func opposite(side Side) Side {
	if side == Red {
		return Green
	}
	if side == Green {
		return Red
	}
	return NoSide
}

func (s Side) Opposite() Side { return opposite(s) }

// Move = 一步棋：从 From 走到 To（单步或连跳都压成一对格子）
type Move struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// NullMove 表示“没有着法”，只用作搜索种子，永远不是合法着法
var NullMove = Move{From: -1, To: -1}

func (m Move) IsNull() bool {
	return m.From < 0 || m.To < 0
}
