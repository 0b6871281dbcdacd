// internal/system/movement.go
package system

import (
	"go-balloon-defense/internal/config"
	"go-balloon-defense/internal/entity"
)

// MovementSystem двигает шарики по дорожке
type MovementSystem struct {
	world *entity.World
	cfg   *config.Config
}

func NewMovementSystem(world *entity.World, cfg *config.Config) *MovementSystem {
	return &MovementSystem{world: world, cfg: cfg}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, b := range s.world.Balloons {
		b.Advance(s.cfg, deltaTime)
	}
}
