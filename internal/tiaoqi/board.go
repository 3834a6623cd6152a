package tiaoqi

const (
	Rows     = 9
	Cols     = 9
	NumCells = Rows * Cols

	// 距离度量 = row+col，取值 [0,16]
	MaxDistance = 16
	// 距离 ≥13 的 10 格是绿方终点角（红方出发角）
	GoalDistance = 13
	// 距离 ≤3 的 10 格是红方终点角（绿方出发角）
	HomeDistance = 3
)

func indexOf(row, col int) int { return row*Cols + col }
func rowOf(sq int) int         { return sq / Cols }
func colOf(sq int) int         { return sq % Cols }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// mirror 把格子按中心对称翻转：红方的几何表都从镜像格读
func mirror(sq int) int { return NumCells - 1 - sq }

// 四个正交方向；跳子沿同一方向越过相邻子落在两格外
var dirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

var (
	// AdjMask[sq] = sq 的相邻格集合
	AdjMask [NumCells]Bitboard

	// jumpLand[sq][pattern]：pattern 是 4 位“哪些方向的相邻格有子”，
	// 值为这些方向上一跳能落到的格子（不查落点是否为空，调用方自滤）
	jumpLand [NumCells][16]Bitboard

	// Distance[sq] = row+col，绿方的前进度量；红方读 Distance[mirror(sq)]
	Distance [NumCells]int

	// ScoreTable[sq]：位置分，随前进度量凸增；红方同样读镜像格
	ScoreTable [NumCells]int

	// 双方的初始占位（各 10 子，隔格铺在对角，互不相邻，
	// 所以开局只有单步，子力交错之后才有跳）
	InitialRed   Bitboard
	InitialGreen Bitboard
)

func init() {
	for sq := 0; sq < NumCells; sq++ {
		r, c := rowOf(sq), colOf(sq)
		Distance[sq] = r + c
		ScoreTable[sq] = (r + c) * (r + c)

		for d, dir := range dirs {
			ar, ac := r+dir[0], c+dir[1]
			if !onBoard(ar, ac) {
				continue
			}
			AdjMask[sq].Set(indexOf(ar, ac))

			lr, lc := r+2*dir[0], c+2*dir[1]
			if !onBoard(lr, lc) {
				continue
			}
			// 所有包含方向 d 的 pattern 都能落到 (lr,lc)
			for pattern := 0; pattern < 16; pattern++ {
				if pattern>>uint(d)&1 != 0 {
					jumpLand[sq][pattern].Set(indexOf(lr, lc))
				}
			}
		}

		if r%2 == 0 && c%2 == 0 {
			if r+c <= 6 {
				InitialGreen.Set(sq)
			}
			if r+c >= 10 {
				InitialRed.Set(sq)
			}
		}
	}
}

// JumpLandings 返回从 src 一跳可达的格子，按“相邻格里哪些被占”查表。
// 落点可能被占，调用方负责剔除。
func JumpLandings(src int, occupied Bitboard) Bitboard {
	pattern := 0
	r, c := rowOf(src), colOf(src)
	for d, dir := range dirs {
		ar, ac := r+dir[0], c+dir[1]
		if onBoard(ar, ac) && occupied.Test(indexOf(ar, ac)) {
			pattern |= 1 << uint(d)
		}
	}
	return jumpLand[src][pattern]
}

// Progress 返回 side 在 sq 上的前进度量（越大越接近终点角）。
func Progress(side Side, sq int) int {
	if side == Red {
		return Distance[mirror(sq)]
	}
	return Distance[sq]
}

// PositionScore 返回 side 在 sq 上的位置分，红方读镜像格。
func PositionScore(side Side, sq int) int {
	if side == Red {
		return ScoreTable[mirror(sq)]
	}
	return ScoreTable[sq]
}
