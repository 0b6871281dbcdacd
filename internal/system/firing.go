// internal/system/firing.go
package system

import (
	"go-balloon-defense/internal/config"
	"go-balloon-defense/internal/entity"
)

// FiringSystem перезаряжает башни и двигает их снаряды.
type FiringSystem struct {
	world *entity.World
	cfg   *config.Config
}

func NewFiringSystem(world *entity.World, cfg *config.Config) *FiringSystem {
	return &FiringSystem{world: world, cfg: cfg}
}

// Update возвращает число выпущенных за кадр снарядов.
func (s *FiringSystem) Update(deltaTime float64) int {
	fired := 0
	for _, t := range s.world.Towers {
		if t.Tick(s.cfg, deltaTime) {
			fired++
		}
	}
	for _, t := range s.world.Towers {
		for i := range t.Projectiles {
			t.Projectiles[i].Advance(s.cfg, deltaTime)
		}
	}
	return fired
}
