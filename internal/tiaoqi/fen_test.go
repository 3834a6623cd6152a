package tiaoqi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	pos := NewInitialPosition()
	for ply := 0; ply < 23; ply++ { // 奇数步，停在绿方走
		moves := pos.LegalMoves()
		pos.ApplyMove(moves[ply%len(moves)])
	}
	require.Equal(t, Green, pos.SideToMove)
	pos.Round = 12

	s := pos.Encode()
	require.True(t, strings.Contains(s, " g "))
	require.True(t, strings.HasSuffix(s, "12"))

	decoded, err := DecodePosition(s)
	require.NoError(t, err)
	require.Equal(t, pos.Board, decoded.Board)
	require.Equal(t, pos.SideToMove, decoded.SideToMove)
	require.Equal(t, pos.Round, decoded.Round)
	require.Equal(t, pos.Hash, decoded.Hash)
	require.Equal(t, s, decoded.Encode())
}

func TestDecodeIgnoresSeparators(t *testing.T) {
	pos := NewInitialPosition()
	s := pos.Encode()
	stripped := strings.ReplaceAll(s, "/", "")

	a, err := DecodePosition(s)
	require.NoError(t, err)
	b, err := DecodePosition(stripped)
	require.NoError(t, err)
	require.Equal(t, a.Board, b.Board)
	require.Equal(t, a.Hash, b.Hash)
}

func TestDecodeBadRoundSuffixFallsBack(t *testing.T) {
	pos := NewInitialPosition()
	s := pos.Encode()
	broken := strings.TrimSuffix(s, "1") + "oops"

	decoded, err := DecodePosition(broken)
	require.NoError(t, err, "坏回合数不让整个解析失败")
	require.Equal(t, fallbackRound, decoded.Round)
	require.Equal(t, pos.Board, decoded.Board)
}

func TestDecodeInvalid(t *testing.T) {
	_, err := DecodePosition("121212")
	require.ErrorIs(t, err, ErrInvalidPosition, "缺走子方标记")

	tooMany := strings.Repeat("1", NumCells+1) + " r 1"
	_, err = DecodePosition(tooMany)
	require.ErrorIs(t, err, ErrInvalidPosition)
}
