package engine

import (
	"encoding/json"
	"fmt"
	"os"

	"tiaoqi/internal/tiaoqi"
)

// 开局库：按“走子方自己的占位”查预算好的着法，只在前几个回合用。
// 启动时整体载入，之后只读。

// BookRounds：round 不超过这个值时先查库，查到就不搜索
const BookRounds = 4

type bookEntry struct {
	Side  string `json:"side"`  // "r" / "g"
	Cells []int  `json:"cells"` // 己方占位的格子编号
	From  int    `json:"from"`
	To    int    `json:"to"`
}

type Book struct {
	moves [2]map[tiaoqi.Bitboard]tiaoqi.Move
}

func LoadBook(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []bookEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse book %s: %w", path, err)
	}

	b := &Book{moves: [2]map[tiaoqi.Bitboard]tiaoqi.Move{
		make(map[tiaoqi.Bitboard]tiaoqi.Move, len(entries)),
		make(map[tiaoqi.Bitboard]tiaoqi.Move, len(entries)),
	}}
	for i, e := range entries {
		side := tiaoqi.Red
		if e.Side == "g" {
			side = tiaoqi.Green
		} else if e.Side != "r" {
			return nil, fmt.Errorf("book entry %d: bad side %q", i, e.Side)
		}
		var occ tiaoqi.Bitboard
		for _, sq := range e.Cells {
			if sq < 0 || sq >= tiaoqi.NumCells {
				return nil, fmt.Errorf("book entry %d: cell %d out of range", i, sq)
			}
			occ.Set(sq)
		}
		b.moves[side][occ] = tiaoqi.Move{From: e.From, To: e.To}
	}
	return b, nil
}

// Lookup 按己方占位查着法。库里没有就返回 false，调用方回退到搜索。
func (b *Book) Lookup(side tiaoqi.Side, occ tiaoqi.Bitboard) (tiaoqi.Move, bool) {
	if b == nil {
		return tiaoqi.NullMove, false
	}
	mv, ok := b.moves[side][occ]
	if !ok {
		return tiaoqi.NullMove, false
	}
	return mv, true
}

// Len 返回库里的总条目数
func (b *Book) Len() int {
	if b == nil {
		return 0
	}
	return len(b.moves[tiaoqi.Red]) + len(b.moves[tiaoqi.Green])
}
