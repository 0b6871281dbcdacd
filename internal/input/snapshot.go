// internal/input/snapshot.go
package input

import "go-balloon-defense/pkg/utils"

// Snapshot — нормализованный ввод игрока за один кадр. Edge-поля истинны
// только в кадре нажатия, level-поля — пока клавиша удерживается.
type Snapshot struct {
	StartTowerPlacement    bool // edge
	CancelTowerPlacement   bool // edge
	ConfirmTowerPlacement  bool // level
	RotateClockwise        bool // level
	RotateCounterClockwise bool // level
	Reset                  bool // edge
	ForceGameOver          bool // level, отладочная клавиша L
	TogglePause            bool // edge
	StartGame              bool // edge

	Pointer utils.Vec2
}
