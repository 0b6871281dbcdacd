// internal/entity/world.go
package entity

import (
	"go-balloon-defense/internal/component"
	"go-balloon-defense/internal/config"
	"go-balloon-defense/pkg/utils"
)

// SpriteInfo — то, что ядру нужно знать о загруженных картинках. Размер
// шарика задаётся конфигом, поэтому здесь только фон.
type SpriteInfo struct {
	BackgroundSize utils.Vec2
}

// World — всё состояние одной игровой сессии. Владелец один — конвейер кадра.
type World struct {
	GameTime       float64
	Coins          uint
	Lives          int // знаковое: может уйти в минус до перехода в GameOver
	GameOver       bool
	SpawnTimer     float64
	IsPlacingTower bool
	PreviewTower   *component.Tower // не nil тогда и только тогда, когда IsPlacingTower
	Balloons       []*component.Balloon
	Towers         []*component.Tower // порядок вставки; влияет только на порядок отрисовки
	Sprites        SpriteInfo
}

func NewWorld(cfg *config.Config, sprites SpriteInfo) *World {
	w := &World{Sprites: sprites}
	w.Reset(cfg)
	return w
}

// Reset возвращает мир к начальным константам. Спрайты не трогаются.
func (w *World) Reset(cfg *config.Config) {
	w.GameTime = 0
	w.Coins = cfg.Economy.StartingCoins
	w.Lives = cfg.Economy.StartingLives
	w.GameOver = false
	w.SpawnTimer = 0
	w.IsPlacingTower = false
	w.PreviewTower = nil
	w.Balloons = nil
	w.Towers = nil
}

// BeginPlacement создаёт башню-превью, если её ещё нет.
func (w *World) BeginPlacement(at utils.Vec2) {
	if w.PreviewTower == nil {
		w.PreviewTower = component.NewTower(at)
	}
	w.IsPlacingTower = true
}

// CancelPlacement выбрасывает превью.
func (w *World) CancelPlacement() {
	w.IsPlacingTower = false
	w.PreviewTower = nil
}

// CommitPlacement переносит превью в список башен и возвращает её индекс.
func (w *World) CommitPlacement() int {
	w.Towers = append(w.Towers, w.PreviewTower)
	w.CancelPlacement()
	return len(w.Towers) - 1
}

// CanAfford — хватает ли монет на башню. Используется и для серой отрисовки превью.
func (w *World) CanAfford(cfg *config.Config) bool {
	return w.Coins >= cfg.Economy.TowerCost
}
