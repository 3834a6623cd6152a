package httpserver

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"tiaoqi/internal/engine"
)

// 分析流消息：每完成一层迭代加深推一条 depth，最后推一条 result 收尾
type analyzeMessage struct {
	Type     string    `json:"type"` // "depth" / "result" / "error"
	Depth    int       `json:"depth,omitempty"`
	Score    int       `json:"score,omitempty"`
	BestMove MoveDTO   `json:"best_move"`
	Nodes    int64     `json:"nodes,omitempty"`
	PV       []MoveDTO `json:"pv,omitempty"`
	FromBook bool      `json:"from_book,omitempty"`
	TimeMs   int64     `json:"time_ms,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// handleAnalyzeWS 一条连接做一次分析：客户端先发 AiMoveRequest，
// 服务端把每层的进展流式推回去，搜完发 result 然后关连接。
func (h *Handler) handleAnalyzeWS(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	var req AiMoveRequest
	if err := conn.ReadJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("analyze ws: bad request")
		return
	}

	pos, err := h.resolvePosition(&req)
	if err != nil {
		_ = conn.WriteJSON(analyzeMessage{Type: "error", Error: err.Error()})
		return
	}

	depth := req.MaxDepth
	if depth <= 0 {
		depth = defaultAiDepth
	}
	var limit time.Duration
	if req.TimeMs > 0 {
		limit = time.Duration(req.TimeMs) * time.Millisecond
	}

	cfg := engine.SearchConfig{
		MaxDepth:  depth,
		TimeLimit: limit,
		OnDepth: func(info engine.DepthInfo) {
			_ = conn.WriteJSON(analyzeMessage{
				Type:     "depth",
				Depth:    info.Depth,
				Score:    info.Score,
				BestMove: moveToDTO(info.BestMove),
				Nodes:    info.Nodes,
				PV:       movesToDTO(info.PV),
			})
		},
	}

	res := h.eng.BestMove(pos, cfg)

	_ = conn.WriteJSON(analyzeMessage{
		Type:     "result",
		Depth:    res.Depth,
		Score:    res.Score,
		BestMove: moveToDTO(res.BestMove),
		Nodes:    res.Nodes,
		PV:       movesToDTO(res.PV),
		FromBook: res.FromBook,
		TimeMs:   res.TimeUsed.Milliseconds(),
	})
}
