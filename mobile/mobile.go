package mobile

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"tiaoqi/internal/engine"
	httpserver "tiaoqi/internal/server/http"
)

// StartServer starts the local HTTP server.
// webDir: physical path to the extracted web assets
// bookPath: physical path to the extracted opening book JSON ("" = no book)
// port: port to listen on, e.g. "2888"
func StartServer(webDir string, bookPath string, port string) {
	opts := []engine.Option{}
	if bookPath != "" {
		book, err := engine.LoadBook(bookPath)
		if err != nil {
			log.Warn().Err(err).Msg("load opening book, continuing without")
		} else {
			opts = append(opts, engine.WithBook(book))
		}
	}

	h := httpserver.NewHandler(engine.NewEngine(opts...), log.Logger)
	router := httpserver.NewRouter(h, webDir)

	// Run in background so it doesn't block the Android UI thread
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, router); err != nil {
			log.Error().Err(err).Msg("server error")
		}
	}()
}
