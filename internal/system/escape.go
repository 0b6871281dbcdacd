// internal/system/escape.go
package system

import (
	"go-balloon-defense/internal/config"
	"go-balloon-defense/internal/entity"
	"go-balloon-defense/internal/event"
)

// EscapeSystem отнимает жизни за ушедшие шарики и переводит игру в GameOver.
type EscapeSystem struct {
	world           *entity.World
	cfg             *config.Config
	eventDispatcher *event.Dispatcher
}

func NewEscapeSystem(world *entity.World, cfg *config.Config, eventDispatcher *event.Dispatcher) *EscapeSystem {
	return &EscapeSystem{world: world, cfg: cfg, eventDispatcher: eventDispatcher}
}

// Update помечает ушедшие шарики и списывает по жизни за каждый.
func (s *EscapeSystem) Update() int {
	w := s.world
	escaped := 0
	for _, b := range w.Balloons {
		if b.HasEscaped(s.cfg) && b.Escape() {
			escaped++
		}
	}
	if escaped == 0 {
		return 0
	}

	w.Lives -= escaped
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.BalloonEscaped,
		Data: event.EscapeData{Count: escaped, Lives: w.Lives},
	})
	if w.Lives <= 0 {
		s.SetGameOver()
	}
	return escaped
}

// SetGameOver переводит мир в GameOver один раз.
func (s *EscapeSystem) SetGameOver() {
	if s.world.GameOver {
		return
	}
	s.world.GameOver = true
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver})
}

// RemoveInactive оставляет только живые шарики.
func (s *EscapeSystem) RemoveInactive() {
	w := s.world
	kept := w.Balloons[:0]
	for _, b := range w.Balloons {
		if b.IsAlive() {
			kept = append(kept, b)
		}
	}
	clear(w.Balloons[len(kept):])
	w.Balloons = kept
}
