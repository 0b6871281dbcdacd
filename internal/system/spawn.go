// internal/system/spawn.go
package system

import (
	"go-balloon-defense/internal/component"
	"go-balloon-defense/internal/config"
	"go-balloon-defense/internal/entity"
	"go-balloon-defense/internal/event"
)

// SpawnSystem выпускает по шарику на каждый полный интервал таймера.
type SpawnSystem struct {
	world           *entity.World
	cfg             *config.Config
	eventDispatcher *event.Dispatcher
}

func NewSpawnSystem(world *entity.World, cfg *config.Config, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{world: world, cfg: cfg, eventDispatcher: eventDispatcher}
}

// Update накапливает время. Длинный кадр даёт несколько шариков сразу.
func (s *SpawnSystem) Update(deltaTime float64) int {
	w := s.world
	interval := s.cfg.Balloon.SpawnInterval
	w.SpawnTimer += deltaTime

	spawned := 0
	for w.SpawnTimer > interval {
		w.SpawnTimer -= interval
		s.spawnBalloon()
		spawned++
	}
	return spawned
}

func (s *SpawnSystem) spawnBalloon() {
	b := component.NewBalloon(s.cfg)
	s.world.Balloons = append(s.world.Balloons, b)
	s.eventDispatcher.Dispatch(event.Event{Type: event.BalloonSpawned, Data: b.Position})
}
