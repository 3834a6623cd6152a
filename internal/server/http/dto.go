package httpserver

import "tiaoqi/internal/tiaoqi"

// AiMoveRequest 请求让 AI 为当前局面走一步
type AiMoveRequest struct {
	GameID   string `json:"game_id"`  // 对局 ID，可选（纯分析时只传 position）
	Position string `json:"position"` // 当前局面（前端把 pos.Encode() 传回来）
	ToMove   int    `json:"to_move"`  // 0=红, 1=绿
	MaxDepth int    `json:"max_depth"`
	TimeMs   int64  `json:"time_ms"`
}

// 前端用的招法结构
type MoveDTO struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func dtoToMove(m MoveDTO) tiaoqi.Move {
	return tiaoqi.Move{From: m.From, To: m.To}
}

type AiMoveResponse struct {
	BestMove   MoveDTO   `json:"best_move"`
	Score      int       `json:"score"`
	Depth      int       `json:"depth"`
	Nodes      int64     `json:"nodes"`
	FromBook   bool      `json:"from_book"`
	Position   string    `json:"position"`    // AI 落子后局面
	Cells      []int     `json:"cells"`       // 落子后 81 格展开
	ToMove     int       `json:"to_move"`     // 下一手执棋方
	LegalMoves []MoveDTO `json:"legal_moves"` // 下一手所有可走棋
	Status     string    `json:"status"`      // "ongoing" / "red_wins" / "green_wins" / "no_moves"
	TimeMs     int64     `json:"time_ms"`
}

// NewGame 返回
type NewGameResponse struct {
	GameID     string    `json:"game_id"`
	Position   string    `json:"position"`
	Cells      []int     `json:"cells"`
	ToMove     int       `json:"to_move"`
	LegalMoves []MoveDTO `json:"legal_moves"`
}

// Play 请求
type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

// Play 返回
type PlayResponse struct {
	Position   string    `json:"position"`
	Cells      []int     `json:"cells"`
	ToMove     int       `json:"to_move"`
	Round      int       `json:"round"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	Status     string    `json:"status"`
}

func sideToInt(s tiaoqi.Side) int {
	switch s {
	case tiaoqi.Red:
		return 0
	case tiaoqi.Green:
		return 1
	default:
		return -1
	}
}

func intToSide(v int) tiaoqi.Side {
	if v == 1 {
		return tiaoqi.Green
	}
	return tiaoqi.Red
}

func moveToDTO(m tiaoqi.Move) MoveDTO {
	return MoveDTO{From: m.From, To: m.To}
}

func movesToDTO(ms []tiaoqi.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}

func statusOf(pos *tiaoqi.Position) string {
	if pos.IsTerminal() {
		if pos.Winner() == tiaoqi.Red {
			return "red_wins"
		}
		return "green_wins"
	}
	return "ongoing"
}

// State 请求：前端刷新时用 game_id 来要当前盘面
type StateRequest struct {
	GameID string `json:"game_id"`
}

// State 返回：结构基本和 NewGameResponse 一样
type StateResponse struct {
	Position   string    `json:"position"`
	Cells      []int     `json:"cells"`
	ToMove     int       `json:"to_move"`
	Round      int       `json:"round"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	Status     string    `json:"status"`
}
