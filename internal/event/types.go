// internal/event/types.go
package event

import "go-balloon-defense/pkg/utils"

const (
	BalloonSpawned EventType = "BalloonSpawned" // шарик появился у входа
	BalloonPopped  EventType = "BalloonPopped"  // Data: PopData
	BalloonEscaped EventType = "BalloonEscaped" // Data: EscapeData
	TowerPlaced    EventType = "TowerPlaced"    // Data: TowerData
	TowerLevelUp   EventType = "TowerLevelUp"   // Data: TowerData
	GameOver       EventType = "GameOver"       // Data: nil
	GameReset      EventType = "GameReset"      // Data: nil
)

// PopData — попадание снаряда башни TowerIndex по шарику.
type PopData struct {
	TowerIndex int
	Position   utils.Vec2
	Coins      uint // монеты после начисления
}

// EscapeData — сколько шариков ушло за кадр и сколько жизней осталось.
type EscapeData struct {
	Count int
	Lives int
}

// TowerData описывает башню по индексу в мире.
type TowerData struct {
	TowerIndex int
	Position   utils.Vec2
	Level      uint
}
