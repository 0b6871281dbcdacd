// internal/system/collision.go
package system

import (
	"go-balloon-defense/internal/config"
	"go-balloon-defense/internal/entity"
	"go-balloon-defense/internal/event"
)

// CollisionSystem сталкивает снаряды с шариками и убирает отработавшие снаряды.
type CollisionSystem struct {
	world           *entity.World
	cfg             *config.Config
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(world *entity.World, cfg *config.Config, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{world: world, cfg: cfg, eventDispatcher: eventDispatcher}
}

// ResolveCollisions проверяет пары живой снаряд × живой шарик. Снаряд
// останавливается на первом попадании, лопнувший шарик дальше не участвует.
func (s *CollisionSystem) ResolveCollisions() int {
	w := s.world
	hits := 0
	for ti, t := range w.Towers {
		for pi := range t.Projectiles {
			p := &t.Projectiles[pi]
			if !p.IsAlive() {
				continue
			}
			for _, b := range w.Balloons {
				if !b.IsAlive() || !p.CheckCollision(s.cfg, b) {
					continue
				}
				p.MarkHit()
				b.Pop()
				w.Coins += s.cfg.Economy.CoinsPerPop
				hits++
				s.eventDispatcher.Dispatch(event.Event{
					Type: event.BalloonPopped,
					Data: event.PopData{TowerIndex: ti, Position: b.Position, Coins: w.Coins},
				})
				break
			}
		}
	}
	return hits
}

// Cleanup засчитывает попадания башням и удаляет снаряды Hit и Dead.
func (s *CollisionSystem) Cleanup() {
	for ti, t := range s.world.Towers {
		pops := t.RemoveHit()
		if t.RegisterPops(s.cfg, pops) {
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.TowerLevelUp,
				Data: event.TowerData{TowerIndex: ti, Position: t.Position, Level: t.Level},
			})
		}
		t.RemoveDead()
	}
}
