package tiaoqi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyUndoRoundTrip(t *testing.T) {
	pos := NewInitialPosition()
	for ply := 0; ply < 40; ply++ {
		moves := pos.LegalMoves()
		require.NotEmpty(t, moves)
		mv := moves[ply%len(moves)]

		before := *pos
		pos.ApplyMove(mv)
		require.NotEqual(t, before.SideToMove, pos.SideToMove)
		pos.UndoMove(mv)
		require.Equal(t, before, *pos, "ply %d move %+v", ply, mv)

		// 继续往下走，覆盖不同深度的局面
		pos.ApplyMove(mv)
	}
}

func TestRoundCounting(t *testing.T) {
	pos := NewInitialPosition()
	require.Equal(t, Red, pos.SideToMove)
	require.Equal(t, 1, pos.Round)

	redMove := pos.LegalMoves()[0]
	pos.ApplyMove(redMove)
	require.Equal(t, Green, pos.SideToMove)
	require.Equal(t, 1, pos.Round, "红走完回合不变")

	greenMove := pos.LegalMoves()[0]
	pos.ApplyMove(greenMove)
	require.Equal(t, Red, pos.SideToMove)
	require.Equal(t, 2, pos.Round, "轮回到红方才加一")

	pos.UndoMove(greenMove)
	require.Equal(t, 1, pos.Round)
	pos.UndoMove(redMove)
	require.Equal(t, 1, pos.Round)
	require.Equal(t, Red, pos.SideToMove)
}

// 给一方把 9 子摆进终点角、1 子差一步，走完那步才算终局
func almostFinishedGreen() *Position {
	pos := &Position{SideToMove: Green, Round: 30}
	goal := []int{
		indexOf(8, 8),
		indexOf(7, 8), indexOf(8, 7),
		indexOf(6, 8), indexOf(7, 7), indexOf(8, 6),
		indexOf(6, 7), indexOf(7, 6), indexOf(8, 5),
	}
	for _, sq := range goal {
		pos.Board[Green].Set(sq)
	}
	pos.Board[Green].Set(indexOf(4, 8)) // 最后一子还差一步
	pos.Board[Red] = InitialGreen       // 红方没怎么动，不影响绿方终局
	pos.Hash = pos.CalculateHash()
	return pos
}

func TestTerminalOneMoveAway(t *testing.T) {
	pos := almostFinishedGreen()
	require.False(t, pos.IsTerminal())
	require.Equal(t, NoSide, pos.Winner())

	mv := Move{From: indexOf(4, 8), To: indexOf(5, 8)}
	pos.ApplyMove(mv)
	require.True(t, pos.IsTerminal())
	require.Equal(t, Green, pos.Winner())

	pos.UndoMove(mv)
	require.False(t, pos.IsTerminal())
}

func TestCells(t *testing.T) {
	pos := NewInitialPosition()
	cells := pos.Cells()
	require.Len(t, cells, NumCells)

	red, green, empty := 0, 0, 0
	for _, c := range cells {
		switch c {
		case 1:
			red++
		case 2:
			green++
		default:
			empty++
		}
	}
	require.Equal(t, 10, red)
	require.Equal(t, 10, green)
	require.Equal(t, NumCells-20, empty)
}
