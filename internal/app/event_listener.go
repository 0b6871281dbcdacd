// internal/app/event_listener.go
package app

import (
	"log"

	"go-balloon-defense/internal/event"
)

// GameEventListener пишет в лог заметные моменты партии. Покадровые события
// (появление и лопание шариков) сюда не подписаны.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	w := l.game.World
	switch e.Type {
	case event.TowerPlaced:
		if d, ok := e.Data.(event.TowerData); ok {
			log.Printf("tower #%d placed at (%.0f, %.0f), coins left: %d", d.TowerIndex, d.Position.X, d.Position.Y, w.Coins)
		}
	case event.TowerLevelUp:
		if d, ok := e.Data.(event.TowerData); ok {
			log.Printf("tower #%d reached level %d", d.TowerIndex, d.Level)
		}
	case event.GameOver:
		log.Printf("game over after %.1fs with %d coins", w.GameTime, w.Coins)
	case event.GameReset:
		log.Println("game reset")
	}
}
