package tiaoqi

import "sort"

// LegalMoves 生成走子方的全部着法，顺序确定：
// 源格从编号大到小枚举，结果按“本方前进量”从大到小稳定排序。
// 这一排序直接决定了 alpha-beta 剪枝的效率。
//
// 注意“向后 ≥2 格”的着法也在这里返回——那是搜索层的剪枝规则，
// 不是合法性规则，由搜索循环自己过滤。
func (p *Position) LegalMoves() []Move {
	side := p.SideToMove
	occ := p.occupied()

	moves := make([]Move, 0, 64)
	for from := p.Board[side]; !from.IsZero(); {
		src := from.HighestBit()
		from.Clear(src)

		// 单步：相邻空格；连跳：跳跃闭包。位集合求并自动去重。
		to := AdjMask[src].AndNot(occ).Or(jumpClosure(src, occ))
		for !to.IsZero() {
			dst := to.HighestBit()
			to.Clear(dst)
			moves = append(moves, Move{From: src, To: dst})
		}
	}

	sort.SliceStable(moves, func(i, j int) bool {
		di := Progress(side, moves[i].To) - Progress(side, moves[i].From)
		dj := Progress(side, moves[j].To) - Progress(side, moves[j].From)
		return di > dj
	})
	return moves
}

// jumpClosure 用显式工作栈展开连跳，reach 单调增长且有上界 81，必然终止。
// 不用递归，栈深和盘面大小解耦。
func jumpClosure(src int, occ Bitboard) Bitboard {
	var reach Bitboard
	stack := [NumCells]int{}
	top := 0
	stack[top] = src
	top++

	for top > 0 {
		top--
		cur := stack[top]

		lands := JumpLandings(cur, occ).AndNot(occ).AndNot(reach)
		for !lands.IsZero() {
			sq := lands.HighestBit()
			lands.Clear(sq)
			reach.Set(sq)
			stack[top] = sq
			top++
		}
	}
	return reach
}
