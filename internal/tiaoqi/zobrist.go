package tiaoqi

import "sync"

// 走子方切换键，沿用引擎一直使用的固定常量
const zobristSide = 0xc503204d9e521ac5

var (
	zobristOnce  sync.Once
	zobristCells [2][NumCells]uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}
		for side := 0; side < 2; side++ {
			for sq := 0; sq < NumCells; sq++ {
				zobristCells[side][sq] = next()
			}
		}
	})
}

func cellHashKey(side Side, sq int) uint64 {
	if side != Red && side != Green {
		return 0
	}
	return zobristCells[side][sq]
}

// CalculateHash 全量计算当前局面的 Zobrist 哈希。
// 构造时算一次，此后 ApplyMove/UndoMove 增量维护，测试里用它做对照。
func (p *Position) CalculateHash() uint64 {
	initZobrist()

	var h uint64
	for side := Red; side <= Green; side++ {
		for bb := p.Board[side]; !bb.IsZero(); {
			sq := bb.HighestBit()
			bb.Clear(sq)
			h ^= zobristCells[side][sq]
		}
	}
	if p.SideToMove == Green {
		h ^= zobristSide
	}
	return h
}
