package main

import (
	"flag"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tiaoqi/internal/engine"
	httpserver "tiaoqi/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 不阻塞，不关心错误（某些服务器环境可能无图形界面）
}

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	webDir := flag.String("web", "./web", "directory with index.html / js / svg")
	bookPath := flag.String("book", "", "opening book JSON file")
	snapshotPath := flag.String("tt-snapshot", "", "transposition table snapshot, loaded on start and saved on shutdown")
	ttSize := flag.Int("tt-size", engine.DefaultTTCapacity, "transposition table capacity (entries)")
	noBrowser := flag.Bool("no-browser", false, "do not open the default browser")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	opts := []engine.Option{engine.WithTTCapacity(*ttSize)}
	if *bookPath != "" {
		book, err := engine.LoadBook(*bookPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *bookPath).Msg("load opening book")
		}
		log.Info().Int("entries", book.Len()).Msg("opening book loaded")
		opts = append(opts, engine.WithBook(book))
	}
	eng := engine.NewEngine(opts...)

	if *snapshotPath != "" {
		if err := eng.TT().Load(*snapshotPath); err != nil {
			if os.IsNotExist(err) {
				log.Info().Str("path", *snapshotPath).Msg("no tt snapshot yet, starting cold")
			} else {
				log.Warn().Err(err).Msg("load tt snapshot")
			}
		} else {
			log.Info().Int("entries", eng.TT().Len()).Msg("tt snapshot loaded")
		}
	}

	h := httpserver.NewHandler(eng, log.Logger)
	router := httpserver.NewRouter(h, *webDir)

	log.Info().Str("addr", *addr).Str("web", *webDir).Msg("listening")

	// ⭐ 延迟 100ms 打开默认浏览器，否则可能服务器未启动完成
	if !*noBrowser {
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + *addr)
		}()
	}

	srv := &http.Server{Addr: *addr, Handler: router}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatal().Err(err).Msg("server exited")
	case <-sigCh:
	}

	if *snapshotPath != "" {
		if err := eng.TT().Save(*snapshotPath); err != nil {
			log.Error().Err(err).Msg("save tt snapshot")
		} else {
			log.Info().Int("entries", eng.TT().Len()).Str("path", *snapshotPath).Msg("tt snapshot saved")
		}
	}
	_ = srv.Close()
}
