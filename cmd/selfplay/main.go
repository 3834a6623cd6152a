package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tiaoqi/internal/engine"
	"tiaoqi/internal/tiaoqi"
)

func main() {
	depth := flag.Int("depth", 4, "search depth")
	timeMs := flag.Int64("time-ms", 0, "per-move time limit in ms (0 = depth only)")
	maxMoves := flag.Int("maxmoves", 200, "max plies to play")
	bookPath := flag.String("book", "", "opening book JSON file")
	games := flag.Int("games", 0, "run a tournament of N games instead of a single logged game")
	parallel := flag.Int("parallel", 4, "tournament games in flight at once")
	depthA := flag.Int("depth-a", 4, "tournament: depth of player A")
	depthB := flag.Int("depth-b", 3, "tournament: depth of player B")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// pprof 方便看搜索热点
	go func() {
		log.Info().Msg("pprof listening on :6060")
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			log.Warn().Err(err).Msg("pprof failed")
		}
	}()

	var book *engine.Book
	if *bookPath != "" {
		b, err := engine.LoadBook(*bookPath)
		if err != nil {
			log.Fatal().Err(err).Msg("load opening book")
		}
		book = b
	}

	if *games > 0 {
		runTournament(*games, *parallel, *depthA, *depthB, *maxMoves, book)
		return
	}

	opts := []engine.Option{}
	if book != nil {
		opts = append(opts, engine.WithBook(book))
	}
	e := engine.NewEngine(opts...)

	cfg := engine.SearchConfig{MaxDepth: *depth}
	if *timeMs > 0 {
		cfg.TimeLimit = time.Duration(*timeMs) * time.Millisecond
	}

	pos := tiaoqi.NewInitialPosition()
	for i := 0; i < *maxMoves; i++ {
		log.Info().Int("ply", i+1).Int("round", pos.Round).Int("side", int(pos.SideToMove)).Msg("thinking")

		res := e.BestMove(pos, cfg)
		if res.BestMove.IsNull() {
			log.Info().Msg("game over: no moves")
			break
		}

		nps := int64(0)
		if res.TimeUsed > 0 {
			nps = int64(float64(res.Nodes) / res.TimeUsed.Seconds())
		}
		log.Info().
			Int("from", res.BestMove.From).
			Int("to", res.BestMove.To).
			Int("score", res.Score).
			Int("depth", res.Depth).
			Int64("nodes", res.Nodes).
			Int64("nps", nps).
			Bool("from_book", res.FromBook).
			Dur("elapsed", res.TimeUsed).
			Msg("best move")

		pos.ApplyMove(res.BestMove)

		if pos.IsTerminal() {
			log.Info().Int("winner", int(pos.Winner())).Str("final", pos.Encode()).Msg("game over")
			break
		}
	}

	log.Info().Msg("selfplay finished")
}
