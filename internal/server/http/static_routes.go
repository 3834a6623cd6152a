package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// registerStaticRoutes 挂载棋盘页面：
// - /web/* -> 前端资源
// - /      -> 跳到 /web/
func registerStaticRoutes(r chi.Router, webDir string) {
	fs := http.StripPrefix("/web/", http.FileServer(http.Dir(webDir)))
	r.Handle("/web/*", fs)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/web/", http.StatusFound)
	})
	r.Get("/web", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/web/", http.StatusFound)
	})
}
