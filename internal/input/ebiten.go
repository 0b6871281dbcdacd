// internal/input/ebiten.go
package input

import (
	"go-balloon-defense/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PollEbiten читает клавиатуру и мышь ebiten. Вызывать из Update.
//
//	T — начать установку башни, Esc — отменить, ЛКМ — подтвердить,
//	R/E — поворот по/против часовой, Enter — рестарт, P — пауза,
//	Space — старт из меню, L — принудительный конец игры.
func PollEbiten() Snapshot {
	x, y := ebiten.CursorPosition()
	return Snapshot{
		StartTowerPlacement:    inpututil.IsKeyJustPressed(ebiten.KeyT),
		CancelTowerPlacement:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		ConfirmTowerPlacement:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		RotateClockwise:        ebiten.IsKeyPressed(ebiten.KeyR),
		RotateCounterClockwise: ebiten.IsKeyPressed(ebiten.KeyE),
		Reset:                  inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		ForceGameOver:          ebiten.IsKeyPressed(ebiten.KeyL),
		TogglePause:            inpututil.IsKeyJustPressed(ebiten.KeyP),
		StartGame:              inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Pointer:                utils.Vec2{X: float64(x), Y: float64(y)},
	}
}
