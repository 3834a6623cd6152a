package main

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"tiaoqi/internal/engine"
	"tiaoqi/internal/tiaoqi"
)

type playerConfig struct {
	Name string
	Cfg  engine.SearchConfig
}

// runTournament 让两套搜索配置对打 N 局，奇偶局换先。
// 引擎不是并发安全的，每局各自 new 两个，局与局之间用 errgroup 限流。
func runTournament(totalGames, parallel, depthA, depthB, maxMoves int, book *engine.Book) {
	playerA := playerConfig{
		Name: fmt.Sprintf("A (depth %d)", depthA),
		Cfg:  engine.SearchConfig{MaxDepth: depthA},
	}
	playerB := playerConfig{
		Name: fmt.Sprintf("B (depth %d)", depthB),
		Cfg:  engine.SearchConfig{MaxDepth: depthB},
	}

	var mu sync.Mutex
	aWins, bWins, draws := 0, 0, 0

	var g errgroup.Group
	g.SetLimit(parallel)

	for i := 0; i < totalGames; i++ {
		gameIdx := i
		g.Go(func() error {
			red, green := playerA, playerB
			if gameIdx%2 == 1 {
				red, green = playerB, playerA
			}

			winner := playGame(red, green, maxMoves, book)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case winner == tiaoqi.NoSide:
				draws++
				fmt.Printf("Game %d: Red [%s] vs Green [%s] -> draw\n", gameIdx+1, red.Name, green.Name)
			case (winner == tiaoqi.Red) == (gameIdx%2 == 0):
				aWins++
				fmt.Printf("Game %d: Red [%s] vs Green [%s] -> %s\n", gameIdx+1, red.Name, green.Name, playerA.Name)
			default:
				bWins++
				fmt.Printf("Game %d: Red [%s] vs Green [%s] -> %s\n", gameIdx+1, red.Name, green.Name, playerB.Name)
			}
			return nil
		})
	}
	_ = g.Wait()

	fmt.Printf("\n=== Final Score ===\n")
	fmt.Printf("%s: %d\n", playerA.Name, aWins)
	fmt.Printf("%s: %d\n", playerB.Name, bWins)
	fmt.Printf("Draws: %d\n", draws)
}

func playGame(red, green playerConfig, maxMoves int, book *engine.Book) tiaoqi.Side {
	newEngine := func() *engine.Engine {
		if book != nil {
			return engine.NewEngine(engine.WithBook(book))
		}
		return engine.NewEngine()
	}
	engines := [2]*engine.Engine{tiaoqi.Red: newEngine(), tiaoqi.Green: newEngine()}
	cfgs := [2]engine.SearchConfig{tiaoqi.Red: red.Cfg, tiaoqi.Green: green.Cfg}

	pos := tiaoqi.NewInitialPosition()
	for i := 0; i < maxMoves; i++ {
		side := pos.SideToMove
		res := engines[side].BestMove(pos, cfgs[side])
		if res.BestMove.IsNull() {
			// 无子可动，当前方输
			return side.Opposite()
		}

		pos.ApplyMove(res.BestMove)
		if pos.IsTerminal() {
			return pos.Winner()
		}
	}
	return tiaoqi.NoSide
}
