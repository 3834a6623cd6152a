package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tiaoqi/internal/tiaoqi"
)

func TestManagerNewGameAndGet(t *testing.T) {
	m := NewManager()

	g := m.NewGame()
	require.NotEmpty(t, g.ID)
	require.Equal(t, tiaoqi.Red, g.Pos.SideToMove)

	got, err := m.Get(g.ID)
	require.NoError(t, err)
	require.Equal(t, g.ID, got.ID)
	require.Equal(t, g.Pos.Encode(), got.Pos.Encode())
}

func TestManagerGetUnknown(t *testing.T) {
	m := NewManager()
	_, err := m.Get("nope")
	require.ErrorIs(t, err, ErrGameNotFound)
}

func TestManagerGetReturnsCopy(t *testing.T) {
	m := NewManager()
	g := m.NewGame()

	got, err := m.Get(g.ID)
	require.NoError(t, err)

	// 改副本不应影响管理器里的局面
	moves := got.Pos.LegalMoves()
	require.NotEmpty(t, moves)
	got.Pos.ApplyMove(moves[0])

	again, err := m.Get(g.ID)
	require.NoError(t, err)
	require.Equal(t, tiaoqi.NewInitialPosition().Encode(), again.Pos.Encode())
}

func TestManagerUpdate(t *testing.T) {
	m := NewManager()
	g := m.NewGame()

	pos := g.Pos.Clone()
	moves := pos.LegalMoves()
	require.NotEmpty(t, moves)
	pos.ApplyMove(moves[0])

	require.NoError(t, m.Update(g.ID, pos))

	got, err := m.Get(g.ID)
	require.NoError(t, err)
	require.Equal(t, pos.Encode(), got.Pos.Encode())

	require.ErrorIs(t, m.Update("nope", pos), ErrGameNotFound)
}
