package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"tiaoqi/internal/engine"
	"tiaoqi/internal/server/game"
	"tiaoqi/internal/tiaoqi"
)

const defaultAiDepth = 3

// Handler 承载 /api/* 的全部处理逻辑。
// 引擎实例由外面注入，方便 main 里配置置换表大小和开局库。
type Handler struct {
	mgr *game.Manager
	eng *engine.Engine
	log zerolog.Logger
}

func NewHandler(eng *engine.Engine, log zerolog.Logger) *Handler {
	return &Handler{
		mgr: game.NewManager(),
		eng: eng,
		log: log,
	}
}

func (h *Handler) Engine() *engine.Engine {
	return h.eng
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error().Err(err).Msg("write json response")
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	g := h.mgr.NewGame()
	legal := g.Pos.LegalMoves()

	resp := NewGameResponse{
		GameID:     g.ID,
		Position:   g.Pos.Encode(),
		Cells:      g.Pos.Cells(),
		ToMove:     sideToInt(g.Pos.SideToMove),
		LegalMoves: movesToDTO(legal),
	}
	h.writeJSON(w, resp)
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.mgr.Get(req.GameID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	pos := g.Pos
	if pos.IsTerminal() {
		http.Error(w, "game already over", http.StatusConflict)
		return
	}

	// 确认这步是不是合法招之一
	want := dtoToMove(req.Move)
	found := false
	for _, lm := range pos.LegalMoves() {
		if lm == want {
			found = true
			break
		}
	}
	if !found {
		http.Error(w, "illegal move", http.StatusBadRequest)
		return
	}

	pos.ApplyMove(want)
	if err := h.mgr.Update(req.GameID, pos); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	resp := PlayResponse{
		Position:   pos.Encode(),
		Cells:      pos.Cells(),
		ToMove:     sideToInt(pos.SideToMove),
		Round:      pos.Round,
		LegalMoves: movesToDTO(pos.LegalMoves()),
		Status:     statusOf(pos),
	}
	h.writeJSON(w, resp)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.mgr.Get(req.GameID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	pos := g.Pos
	resp := StateResponse{
		Position:   pos.Encode(),
		Cells:      pos.Cells(),
		ToMove:     sideToInt(pos.SideToMove),
		Round:      pos.Round,
		LegalMoves: movesToDTO(pos.LegalMoves()),
		Status:     statusOf(pos),
	}
	h.writeJSON(w, resp)
}

// resolvePosition 优先用请求里带的局面字符串，没有就按 game_id 查
func (h *Handler) resolvePosition(req *AiMoveRequest) (*tiaoqi.Position, error) {
	if req.Position != "" {
		pos, err := tiaoqi.DecodePosition(req.Position)
		if err != nil {
			return nil, err
		}
		// 轮到谁走以请求参数为准；不一致时重建 Hash 保持自洽
		reqSide := intToSide(req.ToMove)
		if pos.SideToMove != reqSide {
			pos.SideToMove = reqSide
			pos.Hash = pos.CalculateHash()
		}
		return pos, nil
	}
	if req.GameID != "" {
		g, err := h.mgr.Get(req.GameID)
		if err != nil {
			return nil, err
		}
		return g.Pos, nil
	}
	return nil, errors.New("missing position")
}

func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	pos, err := h.resolvePosition(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
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

	res := h.eng.BestMove(pos, engine.SearchConfig{
		MaxDepth:  depth,
		TimeLimit: limit,
	})

	// 没有走法（终局或被堵死）
	if res.BestMove.IsNull() {
		resp := AiMoveResponse{
			BestMove: moveToDTO(tiaoqi.NullMove),
			Score:    res.Score,
			Depth:    res.Depth,
			Nodes:    res.Nodes,
			TimeMs:   res.TimeUsed.Milliseconds(),
			Position: pos.Encode(),
			Cells:    pos.Cells(),
			ToMove:   sideToInt(pos.SideToMove),
			Status:   "no_moves",
		}
		h.writeJSON(w, resp)
		return
	}

	pos.ApplyMove(res.BestMove)
	if req.GameID != "" && req.Position == "" {
		if err := h.mgr.Update(req.GameID, pos); err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
	}

	h.log.Info().
		Int("from", res.BestMove.From).
		Int("to", res.BestMove.To).
		Int("score", res.Score).
		Int("depth", res.Depth).
		Int64("nodes", res.Nodes).
		Bool("from_book", res.FromBook).
		Dur("elapsed", res.TimeUsed).
		Msg("ai move")

	resp := AiMoveResponse{
		BestMove:   moveToDTO(res.BestMove),
		Score:      res.Score,
		Depth:      res.Depth,
		Nodes:      res.Nodes,
		FromBook:   res.FromBook,
		TimeMs:     res.TimeUsed.Milliseconds(),
		Position:   pos.Encode(),
		Cells:      pos.Cells(),
		ToMove:     sideToInt(pos.SideToMove),
		LegalMoves: movesToDTO(pos.LegalMoves()),
		Status:     statusOf(pos),
	}
	h.writeJSON(w, resp)
}
