// internal/ui/lives_indicator.go
package ui

import (
	"image/color"

	"go-balloon-defense/pkg/render"
	"go-balloon-defense/pkg/utils"
)

// LivesIndicator отображает жизни рядом кружков: полные — оставшиеся, тёмные — потерянные.
type LivesIndicator struct {
	Position   utils.Vec2 // левый верхний угол ряда
	Radius     float64
	Spacing    float64
	FullColor  color.RGBA
	EmptyColor color.RGBA
	Stroke     color.RGBA
}

// Draw рисует maxLives кружков. Отрицательные жизни рисуются как ноль.
func (i *LivesIndicator) Draw(r render.Renderer, lives, maxLives int) {
	step := i.Radius*2 + i.Spacing
	for j := 0; j < maxLives; j++ {
		center := i.Position.Add(utils.Vec2{X: float64(j)*step + i.Radius, Y: i.Radius})
		c := i.EmptyColor
		if j < lives {
			c = i.FullColor
		}
		r.DrawCircle(center, i.Radius, c, true)
		r.DrawCircle(center, i.Radius, i.Stroke, false)
	}
}
