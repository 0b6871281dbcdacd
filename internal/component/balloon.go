// internal/component/balloon.go
package component

import (
	"go-balloon-defense/internal/config"
	"go-balloon-defense/pkg/utils"
)

// Direction — направление движения шарика по дорожке.
type Direction int

const (
	Right Direction = iota
	Left
)

// BalloonState — жизненный цикл шарика. Popped и Escaped конечны.
type BalloonState int

const (
	BalloonAlive BalloonState = iota
	BalloonPopped
	BalloonEscaped
)

func (s BalloonState) String() string {
	switch s {
	case BalloonAlive:
		return "alive"
	case BalloonPopped:
		return "popped"
	case BalloonEscaped:
		return "escaped"
	}
	return "unknown"
}

// Balloon представляет шарик, летящий по дорожке.
type Balloon struct {
	Position  utils.Vec2
	Direction Direction
	State     BalloonState
}

// NewBalloon создаёт шарик у входа на дорожку.
func NewBalloon(cfg *config.Config) *Balloon {
	return &Balloon{
		Position:  utils.Vec2{X: cfg.BalloonSize(), Y: cfg.PlayArea.Height / 2},
		Direction: Right,
		State:     BalloonAlive,
	}
}

// Advance сдвигает шарик вдоль направления. Состояние не меняется.
func (b *Balloon) Advance(cfg *config.Config, deltaTime float64) {
	switch b.Direction {
	case Right:
		b.Position.X += cfg.Balloon.Speed * deltaTime
	case Left:
		b.Position.X -= cfg.Balloon.Speed * deltaTime
	}
}

// HasEscaped сообщает, вылетел ли шарик за игровое поле (с запасом в радиус коллайдера).
func (b *Balloon) HasEscaped(cfg *config.Config) bool {
	size := cfg.ColliderRadius()
	return b.Position.X > cfg.PlayArea.Width+size || b.Position.X < -size
}

// Pop и Escape переводят только живой шарик; повторный вызов ничего не делает.
func (b *Balloon) Pop() bool {
	if b.State != BalloonAlive {
		return false
	}
	b.State = BalloonPopped
	return true
}

func (b *Balloon) Escape() bool {
	if b.State != BalloonAlive {
		return false
	}
	b.State = BalloonEscaped
	return true
}

func (b *Balloon) IsAlive() bool {
	return b.State == BalloonAlive
}
