package tiaoqi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeometryTables(t *testing.T) {
	// 角上 2 个邻居，边上 3 个，中间 4 个
	require.Equal(t, 2, AdjMask[indexOf(0, 0)].Count())
	require.Equal(t, 3, AdjMask[indexOf(0, 4)].Count())
	require.Equal(t, 4, AdjMask[indexOf(4, 4)].Count())

	require.Equal(t, 0, Distance[indexOf(0, 0)])
	require.Equal(t, MaxDistance, Distance[indexOf(8, 8)])

	// 红方的度量是镜像的
	require.Equal(t, MaxDistance, Progress(Red, indexOf(0, 0)))
	require.Equal(t, 0, Progress(Red, indexOf(8, 8)))
	require.Equal(t, Distance[indexOf(2, 3)], Progress(Green, indexOf(2, 3)))
}

func TestJumpLandings(t *testing.T) {
	src := indexOf(4, 4)

	var occ Bitboard
	require.True(t, JumpLandings(src, occ).IsZero(), "无相邻子就无跳点")

	occ.Set(indexOf(4, 5))
	lands := JumpLandings(src, occ)
	require.Equal(t, 1, lands.Count())
	require.True(t, lands.Test(indexOf(4, 6)))

	occ.Set(indexOf(3, 4))
	lands = JumpLandings(src, occ)
	require.Equal(t, 2, lands.Count())
	require.True(t, lands.Test(indexOf(2, 4)))

	// 落点出界的方向不给跳点
	edge := indexOf(0, 7)
	var occ2 Bitboard
	occ2.Set(indexOf(0, 8))
	require.True(t, JumpLandings(edge, occ2).IsZero())
}

func TestInitialMasks(t *testing.T) {
	require.Equal(t, 10, InitialRed.Count())
	require.Equal(t, 10, InitialGreen.Count())
	require.True(t, InitialRed.And(InitialGreen).IsZero())

	// 初始占位互不相邻：开局不可能有跳
	for _, side := range []Bitboard{InitialRed, InitialGreen} {
		for bb := side; !bb.IsZero(); {
			sq := bb.HighestBit()
			bb.Clear(sq)
			require.True(t, AdjMask[sq].And(side).IsZero(), "cell %d has an adjacent piece", sq)
		}
	}

	// 两边的占位互为镜像
	for bb := InitialGreen; !bb.IsZero(); {
		sq := bb.HighestBit()
		bb.Clear(sq)
		require.True(t, InitialRed.Test(mirror(sq)))
	}
}
