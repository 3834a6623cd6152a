package engine

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"tiaoqi/internal/tiaoqi"
)

func TestTTSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tt.zst")

	src := NewTransTable(8)
	src.Put(1, Entry{Key: 1, Score: 10, Depth: 2, Flag: FlagExact, BestMove: tiaoqi.Move{From: 3, To: 4}})
	src.Put(2, Entry{Key: 2, Score: -5, Depth: 4, Flag: FlagLowerBound})
	src.Put(3, Entry{Key: 3, Score: 7, Depth: 1, Flag: FlagUpperBound})
	require.NoError(t, src.Save(path))

	dst := NewTransTable(8)
	require.NoError(t, dst.Load(path))
	require.Equal(t, 3, dst.Len())
	require.Equal(t, src.Get(1), dst.Get(1))
	require.Equal(t, src.Get(2), dst.Get(2))
	require.Equal(t, src.Get(3), dst.Get(3))
}

func TestTTSnapshotPreservesLRUOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tt.zst")

	src := NewTransTable(4)
	src.Put(1, Entry{Key: 1})
	src.Put(2, Entry{Key: 2})
	src.Put(3, Entry{Key: 3})
	src.Get(1) // 1 变成最近访问
	require.NoError(t, src.Save(path))

	dst := NewTransTable(4)
	require.NoError(t, dst.Load(path))
	dst.Put(4, Entry{Key: 4})
	dst.Put(5, Entry{Key: 5}) // 表满，先挤最旧的 2
	require.True(t, dst.Exists(1))
	require.False(t, dst.Exists(2))
}

func TestTTSnapshotCapacityMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tt.zst")

	src := NewTransTable(8)
	src.Put(1, Entry{Key: 1})
	require.NoError(t, src.Save(path))

	dst := NewTransTable(16)
	require.Error(t, dst.Load(path))
}

func TestTTSnapshotMissingFile(t *testing.T) {
	tt := NewTransTable(8)
	require.Error(t, tt.Load(filepath.Join(t.TempDir(), "nope.zst")))
}
