package tiaoqi

// Position = 双方占位 + 走子方 + 回合数 + 增量哈希。
// 搜索期间被当前调用栈独占，ApplyMove/UndoMove 必须成对出现。
type Position struct {
	Board      [2]Bitboard
	SideToMove Side
	Round      int
	Hash       uint64
}

// NewInitialPosition 双方各 10 子挤在对角，红先，round 从 1 数
func NewInitialPosition() *Position {
	pos := &Position{
		Board:      [2]Bitboard{InitialRed, InitialGreen},
		SideToMove: Red,
		Round:      1,
	}
	pos.Hash = pos.CalculateHash()
	return pos
}

func (p *Position) Clone() *Position {
	np := *p
	return &np
}

// 双方占位的并集
func (p *Position) occupied() Bitboard {
	return p.Board[Red].Or(p.Board[Green])
}

// ApplyMove 原地走子。不做合法性校验，着法由走法生成负责。
func (p *Position) ApplyMove(m Move) {
	side := p.SideToMove
	p.Hash ^= cellHashKey(side, m.From)
	p.Hash ^= cellHashKey(side, m.To)
	p.Hash ^= zobristSide
	p.Board[side].Clear(m.From)
	p.Board[side].Set(m.To)
	p.SideToMove = opposite(side)
	if p.SideToMove == Red {
		p.Round++
	}
}

// UndoMove 是 ApplyMove 的精确逆运算，位、哈希、回合数全部还原。
func (p *Position) UndoMove(m Move) {
	if p.SideToMove == Red {
		p.Round--
	}
	side := opposite(p.SideToMove)
	p.Board[side].Clear(m.To)
	p.Board[side].Set(m.From)
	p.SideToMove = side
	p.Hash ^= cellHashKey(side, m.From)
	p.Hash ^= cellHashKey(side, m.To)
	p.Hash ^= zobristSide
}

// IsTerminal：任何一方全部子进入对角的 10 格即终局。
// 理论上双方可能同时满足，这里只报告“终局”，不裁决谁赢（见 Winner）。
func (p *Position) IsTerminal() bool {
	return p.sideFinished(Red) || p.sideFinished(Green)
}

// Winner 返回已进角的一方；无人进角返回 NoSide。
// 双方同时进角时红方优先，这个取舍是任意的。
func (p *Position) Winner() Side {
	if p.sideFinished(Red) {
		return Red
	}
	if p.sideFinished(Green) {
		return Green
	}
	return NoSide
}

func (p *Position) sideFinished(side Side) bool {
	for bb := p.Board[side]; !bb.IsZero(); {
		sq := bb.HighestBit()
		bb.Clear(sq)
		if Progress(side, sq) < GoalDistance {
			return false
		}
	}
	return true
}

// Cells 展开成 81 个 int：0 空、1 红、2 绿，给前端 DTO 用
func (p *Position) Cells() []int {
	out := make([]int, NumCells)
	for sq := 0; sq < NumCells; sq++ {
		if p.Board[Red].Test(sq) {
			out[sq] = 1
		} else if p.Board[Green].Test(sq) {
			out[sq] = 2
		}
	}
	return out
}
