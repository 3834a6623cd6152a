package game

import (
	"time"

	"tiaoqi/internal/tiaoqi"
)

type GameState struct {
	ID        string
	Pos       *tiaoqi.Position
	CreatedAt time.Time
	UpdatedAt time.Time
}
