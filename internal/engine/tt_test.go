package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tiaoqi/internal/tiaoqi"
)

func TestTransTablePutGet(t *testing.T) {
	tt := NewTransTable(8)
	require.False(t, tt.Exists(42))

	entry := Entry{Key: 42, Score: 77, Depth: 3, Flag: FlagExact, BestMove: tiaoqi.Move{From: 1, To: 2}}
	tt.Put(42, entry)
	require.True(t, tt.Exists(42))
	require.Equal(t, entry, tt.Get(42))
	require.Equal(t, 1, tt.Len())
}

func TestTransTableLastWriteWins(t *testing.T) {
	tt := NewTransTable(8)
	tt.Put(7, Entry{Key: 7, Score: 1, Depth: 1})
	tt.Put(7, Entry{Key: 7, Score: 2, Depth: 5})
	require.Equal(t, 1, tt.Len())
	require.Equal(t, 2, tt.Get(7).Score)
	require.Equal(t, 5, tt.Get(7).Depth)
}

func TestTransTableLRUEviction(t *testing.T) {
	tt := NewTransTable(2)
	tt.Put(1, Entry{Key: 1})
	tt.Put(2, Entry{Key: 2})
	tt.Put(3, Entry{Key: 3}) // 挤掉最久没碰的 1
	require.False(t, tt.Exists(1))
	require.True(t, tt.Exists(2))
	require.True(t, tt.Exists(3))

	// Get 刷新最近访问：这回被挤的是 3
	tt.Get(2)
	tt.Put(4, Entry{Key: 4})
	require.True(t, tt.Exists(2))
	require.False(t, tt.Exists(3))
	require.True(t, tt.Exists(4))
	require.Equal(t, 2, tt.Len())
}

func TestTransTableClear(t *testing.T) {
	tt := NewTransTable(4)
	tt.Put(1, Entry{Key: 1})
	tt.Put(2, Entry{Key: 2})
	tt.Clear()
	require.Equal(t, 0, tt.Len())
	require.False(t, tt.Exists(1))
	require.Equal(t, 4, tt.Capacity())
}
