package tiaoqi

import "math/bits"

// Bitboard 是 81 位的格子集合：0..63 在 Lo，64..80 在 Hi。
// 结构体可比较，能直接当 map 键（开局库按己方占位做键）。
type Bitboard struct {
	Lo uint64
	Hi uint64
}

func (b Bitboard) Test(sq int) bool {
	if sq < 64 {
		return b.Lo>>uint(sq)&1 != 0
	}
	return b.Hi>>uint(sq-64)&1 != 0
}

func (b *Bitboard) Set(sq int) {
	if sq < 64 {
		b.Lo |= 1 << uint(sq)
	} else {
		b.Hi |= 1 << uint(sq-64)
	}
}

func (b *Bitboard) Clear(sq int) {
	if sq < 64 {
		b.Lo &^= 1 << uint(sq)
	} else {
		b.Hi &^= 1 << uint(sq-64)
	}
}

func (b Bitboard) IsZero() bool { return b.Lo == 0 && b.Hi == 0 }

func (b Bitboard) Count() int {
	return bits.OnesCount64(b.Lo) + bits.OnesCount64(b.Hi)
}

func (b Bitboard) Or(o Bitboard) Bitboard {
	return Bitboard{b.Lo | o.Lo, b.Hi | o.Hi}
}

func (b Bitboard) And(o Bitboard) Bitboard {
	return Bitboard{b.Lo & o.Lo, b.Hi & o.Hi}
}

func (b Bitboard) AndNot(o Bitboard) Bitboard {
	return Bitboard{b.Lo &^ o.Lo, b.Hi &^ o.Hi}
}

// HighestBit 返回最高位格子编号；空集合返回 -1。
// 走法生成按“编号大的格子先”枚举，都靠这个反向扫描。
func (b Bitboard) HighestBit() int {
	if b.Hi != 0 {
		return 64 + bits.Len64(b.Hi) - 1
	}
	if b.Lo != 0 {
		return bits.Len64(b.Lo) - 1
	}
	return -1
}
