package engine

import (
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"tiaoqi/internal/tiaoqi"
)

const (
	// 足够大的值当正负无穷
	scoreInf = int(math.MaxInt32)
	// 分值过了这条线就认为找到必胜着法，停止加深
	winThreshold = 9999

	maxSearchDepth = 100
	maxPVLength    = 64
)

// 搜索配置
type SearchConfig struct {
	TimeLimit time.Duration // 墙钟时限（0 表示不限制）
	MaxDepth  int           // 迭代加深上限（0 用默认 100）
	OnDepth   func(DepthInfo)
}

// 每完成一层迭代加深回调一次
type DepthInfo struct {
	Depth    int
	Score    int
	BestMove tiaoqi.Move
	Nodes    int64
	PV       []tiaoqi.Move
}

// 搜索结果
type SearchResult struct {
	BestMove tiaoqi.Move
	Score    int
	Depth    int // 完成的最深一层
	Nodes    int64
	TimeUsed time.Duration
	PV       []tiaoqi.Move
	FromBook bool
}

// movePath 复用上一层迭代的主变，下一层搜索时当排序提示逐节点消费
type movePath struct {
	moves []tiaoqi.Move
	index int
}

// BestMove 在时限内给出当前局面的最佳着法。
// 前几个回合直接查开局库；之后迭代加深，每层用 MTD(f) 收敛到精确值。
func (e *Engine) BestMove(pos *tiaoqi.Position, cfg SearchConfig) SearchResult {
	start := time.Now()

	if pos.Round <= BookRounds {
		if mv, ok := e.book.Lookup(pos.SideToMove, pos.Board[pos.SideToMove]); ok {
			return SearchResult{
				BestMove: mv,
				TimeUsed: time.Since(start),
				PV:       []tiaoqi.Move{mv},
				FromBook: true,
			}
		}
	}

	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 || maxDepth > maxSearchDepth {
		maxDepth = maxSearchDepth
	}
	deadline := time.Time{}
	if cfg.TimeLimit > 0 {
		deadline = start.Add(cfg.TimeLimit)
	}

	e.nodes = 0
	eval := -scoreInf
	move := tiaoqi.NullMove
	searchedDepth := 0
	pline := &movePath{}
	var pv []tiaoqi.Move

	// 每层的结果直接覆盖上一层：结论取自最深完成（或被截断）的那层。
	// 缓存只影响搜多快，不影响搜出什么。
	for depth := 1; depth <= maxDepth; depth++ {
		eval = e.mtdf(pos, depth, eval, pline, deadline)
		searchedDepth = depth

		if e.tt.Exists(pos.Hash) {
			move = e.tt.Get(pos.Hash).BestMove
		}

		// 从置换表顺着 bestMove 链重建主变，作为下一层的排序提示。
		// 长度封顶，循环局面不会把这里拖死。
		pline.moves = pline.moves[:0]
		pline.index = 0
		walk := pos.Clone()
		for len(pline.moves) < maxPVLength && e.tt.Exists(walk.Hash) {
			entry := e.tt.Get(walk.Hash)
			if entry.BestMove.IsNull() {
				break
			}
			pline.moves = append(pline.moves, entry.BestMove)
			walk.ApplyMove(entry.BestMove)
		}
		pv = append(pv[:0], pline.moves...)

		log.Debug().
			Int("depth", depth).
			Int("score", eval).
			Int("from", move.From).
			Int("to", move.To).
			Int64("nodes", e.nodes).
			Msg("complete search depth")
		if cfg.OnDepth != nil {
			info := DepthInfo{Depth: depth, Score: eval, BestMove: move, Nodes: e.nodes}
			info.PV = append(info.PV, pv...)
			cfg.OnDepth(info)
		}

		if eval > winThreshold {
			// 找到必胜着法
			break
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			break
		}
	}

	return SearchResult{
		BestMove: move,
		Score:    eval,
		Depth:    searchedDepth,
		Nodes:    e.nodes,
		TimeUsed: time.Since(start),
		PV:       pv,
	}
}

// mtdf 用一串零窗探测夹逼出局面的精确极小极大值。
// guess 越准收敛越快，收敛值和 guess 无关。
func (e *Engine) mtdf(pos *tiaoqi.Position, depth, guess int, pline *movePath, deadline time.Time) int {
	lowerbound, upperbound := -scoreInf, scoreInf
	score := guess
	for {
		beta := score
		if score == lowerbound {
			beta = score + 1
		}
		pline.index = 0
		score = e.alphaBeta(pos, depth, beta-1, beta, pline, deadline)
		if score < beta {
			upperbound = score
		} else {
			lowerbound = score
		}
		if lowerbound >= upperbound {
			return score
		}
	}
}

// alphaBeta：negamax 形式，带置换表和截止时间轮询。
// 超时不抛任何信号，只是不再展开后续兄弟，把已有值正常回传。
func (e *Engine) alphaBeta(pos *tiaoqi.Position, depth, alpha, beta int, pline *movePath, deadline time.Time) int {
	e.nodes++

	// 查置换表
	hash := pos.Hash
	alphaOrig := alpha
	if e.tt.Exists(hash) {
		entry := e.tt.Get(hash)
		if entry.Depth >= depth {
			switch entry.Flag {
			case FlagExact:
				return entry.Score
			case FlagLowerBound:
				if entry.Score > alpha {
					alpha = entry.Score
				}
			case FlagUpperBound:
				if entry.Score < beta {
					beta = entry.Score
				}
			}
			if alpha >= beta {
				return entry.Score
			}
		}
	}

	// 叶子节点
	if pos.IsTerminal() || depth == 0 {
		return Evaluate(pos)
	}

	moves := pos.LegalMoves()

	// 上一层主变的着法优先试。提示必须还在合法着法里才提前，
	// 直接前插会把未经校验的着法喂给 ApplyMove。
	if pline.index < len(pline.moves) {
		hint := pline.moves[pline.index]
		pline.index++
		for i := range moves {
			if moves[i] == hint {
				moves[0], moves[i] = moves[i], moves[0]
				break
			}
		}
	}

	side := pos.SideToMove
	bestMove := tiaoqi.NullMove
	value := -scoreInf
	for _, mv := range moves {
		// 向后走两格及以上的着法不搜
		if tiaoqi.Progress(side, mv.To)-tiaoqi.Progress(side, mv.From) <= -2 {
			continue
		}
		pos.ApplyMove(mv)
		current := -e.alphaBeta(pos, depth-1, -beta, -alpha, pline, deadline)
		pos.UndoMove(mv)
		if current > value {
			value = current
			bestMove = mv
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			// 截断
			break
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			break
		}
	}

	flag := FlagExact
	if value <= alphaOrig {
		flag = FlagUpperBound
	} else if value >= beta {
		flag = FlagLowerBound
	}
	e.tt.Put(hash, Entry{Key: hash, Score: value, Depth: depth, Flag: flag, BestMove: bestMove})
	return alpha
}
