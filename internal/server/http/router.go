package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter 把 API、分析 WebSocket 和静态页面挂到同一个 chi 路由上。
// webDir 为空就不提供前端页面，只暴露 API。
func NewRouter(h *Handler, webDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("pong"))
	})

	r.Post("/api/new_game", h.handleNewGame)
	r.Post("/api/play", h.handlePlay)
	r.Post("/api/state", h.handleState)
	r.Post("/api/ai_move", h.handleAiMove)

	r.Get("/ws/analyze", h.handleAnalyzeWS)

	if webDir != "" {
		registerStaticRoutes(r, webDir)
	}
	return r
}
