package tiaoqi

import (
	"errors"
	"strconv"
	"strings"
)

// 局面串：81 个 {0,1,2} 按行展开，每 9 格一个 “/” 分隔（纯装饰，解析时忽略），
// 然后是走子方标记 r/g，最后是回合数。例：
//   000...0/.../000 r 12
// 回合数后缀坏掉时不报错，回退到固定值 10。

const fallbackRound = 10

var ErrInvalidPosition = errors.New("invalid position string")

func (p *Position) Encode() string {
	var sb strings.Builder
	for sq := 0; sq < NumCells; sq++ {
		switch {
		case p.Board[Red].Test(sq):
			sb.WriteByte('1')
		case p.Board[Green].Test(sq):
			sb.WriteByte('2')
		default:
			sb.WriteByte('0')
		}
		if sq%Cols == Cols-1 && sq != NumCells-1 {
			sb.WriteByte('/')
		}
	}
	if p.SideToMove == Red {
		sb.WriteString(" r ")
	} else {
		sb.WriteString(" g ")
	}
	sb.WriteString(strconv.Itoa(p.Round))
	return sb.String()
}

func DecodePosition(s string) (*Position, error) {
	pos := &Position{SideToMove: Red, Round: fallbackRound}
	sq := 0
	markerAt := -1

scan:
	for i, ch := range s {
		switch ch {
		case '0':
			sq++
		case '1':
			if sq >= NumCells {
				return nil, ErrInvalidPosition
			}
			pos.Board[Red].Set(sq)
			sq++
		case '2':
			if sq >= NumCells {
				return nil, ErrInvalidPosition
			}
			pos.Board[Green].Set(sq)
			sq++
		case 'r':
			pos.SideToMove = Red
			markerAt = i
			break scan
		case 'g':
			pos.SideToMove = Green
			markerAt = i
			break scan
		default:
			// “/”、空格等分隔符
		}
	}
	if markerAt < 0 || sq > NumCells {
		return nil, ErrInvalidPosition
	}

	if round, err := strconv.Atoi(strings.TrimSpace(s[markerAt+1:])); err == nil {
		pos.Round = round
	}

	pos.Hash = pos.CalculateHash()
	return pos, nil
}
