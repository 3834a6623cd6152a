package main

import (
	"fmt"
	"time"

	"tiaoqi/internal/engine"
	"tiaoqi/internal/tiaoqi"
)

func main() {
	pos := tiaoqi.NewInitialPosition()
	fmt.Println("FEN:", pos.Encode())

	moves := pos.LegalMoves()
	fmt.Println("Legal moves:", len(moves))
	for _, m := range moves {
		fmt.Printf("  %d -> %d\n", m.From, m.To)
	}

	fmt.Println("Static eval:", engine.Evaluate(pos))

	e := engine.NewEngine()
	res := e.BestMove(pos, engine.SearchConfig{MaxDepth: 5, TimeLimit: 2 * time.Second})
	fmt.Printf("Search: move %d->%d score %d depth %d nodes %d in %v\n",
		res.BestMove.From, res.BestMove.To, res.Score, res.Depth, res.Nodes, res.TimeUsed)
}
