// pkg/render/renderer.go
package render

import (
	"image/color"

	"go-balloon-defense/pkg/utils"
)

// SpriteKind — какой из загруженных спрайтов рисовать.
type SpriteKind int

const (
	SpriteBackground SpriteKind = iota
	SpriteBalloon
)

func (k SpriteKind) String() string {
	switch k {
	case SpriteBackground:
		return "background"
	case SpriteBalloon:
		return "balloon"
	}
	return "unknown"
}

// Renderer принимает запросы на отрисовку от ядра. Координаты — в единицах
// игрового поля; перевод в пиксели или клетки терминала — дело реализации.
type Renderer interface {
	Clear(c color.RGBA)
	// DrawSprite рисует спрайт размера size с центром в center.
	DrawSprite(kind SpriteKind, center, size utils.Vec2)
	// DrawCircle рисует круг; filled=false — только контур.
	DrawCircle(center utils.Vec2, radius float64, c color.RGBA, filled bool)
	DrawLine(from, to utils.Vec2, c color.RGBA)
	// DrawText рисует строку; pos — левый край базовой линии.
	DrawText(text string, pos utils.Vec2, size float64, c color.RGBA)
}
