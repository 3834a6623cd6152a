package main

import (
	"encoding/json"
	"flag"
	"math/rand"
	"os"

	"github.com/rs/zerolog/log"

	"tiaoqi/internal/engine"
	"tiaoqi/internal/tiaoqi"
)

// 生成开局库：随机走子采样前几个回合会出现的局面，
// 每个局面用固定深度搜一手，按（走子方, 占位）去重后写成 JSON。

type bookEntry struct {
	Side  string `json:"side"`
	Cells []int  `json:"cells"`
	From  int    `json:"from"`
	To    int    `json:"to"`
}

type bookKey struct {
	side tiaoqi.Side
	occ  tiaoqi.Bitboard
}

func sideCells(pos *tiaoqi.Position, side tiaoqi.Side) []int {
	var out []int
	for sq := 0; sq < tiaoqi.NumCells; sq++ {
		if pos.Board[side].Test(sq) {
			out = append(out, sq)
		}
	}
	return out
}

func sideLetter(side tiaoqi.Side) string {
	if side == tiaoqi.Green {
		return "g"
	}
	return "r"
}

func main() {
	out := flag.String("out", "book.json", "output file")
	depth := flag.Int("depth", 6, "search depth per book move")
	playouts := flag.Int("playouts", 200, "random playouts to sample positions from")
	seed := flag.Int64("seed", 1, "playout RNG seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	e := engine.NewEngine()

	entries := make(map[bookKey]bookEntry)

	for p := 0; p < *playouts; p++ {
		pos := tiaoqi.NewInitialPosition()
		for pos.Round <= engine.BookRounds && !pos.IsTerminal() {
			side := pos.SideToMove
			key := bookKey{side: side, occ: pos.Board[side]}

			if _, seen := entries[key]; !seen {
				res := e.BestMove(pos, engine.SearchConfig{MaxDepth: *depth})
				if res.BestMove.IsNull() {
					break
				}
				entries[key] = bookEntry{
					Side:  sideLetter(side),
					Cells: sideCells(pos, side),
					From:  res.BestMove.From,
					To:    res.BestMove.To,
				}
			}

			// 采样下一个局面：随机挑一手往下走
			moves := pos.LegalMoves()
			if len(moves) == 0 {
				break
			}
			pos.ApplyMove(moves[rng.Intn(len(moves))])
		}
		if (p+1)%20 == 0 {
			log.Info().Int("playouts", p+1).Int("entries", len(entries)).Msg("sampling")
		}
	}

	list := make([]bookEntry, 0, len(entries))
	for _, ent := range entries {
		list = append(list, ent)
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("marshal book")
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatal().Err(err).Msg("write book")
	}
	log.Info().Int("entries", len(list)).Str("path", *out).Msg("book written")
}
