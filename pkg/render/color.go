// pkg/render/color.go
package render

import (
	"image/color"

	"go-balloon-defense/pkg/utils"
)

// dimFactor — во сколько раз Dimmed снижает яркость.
const dimFactor = 0.5

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return ShadeColor(c, dimFactor)
}

// ShadeColor умножает RGB на shade из [0, 1], альфа не меняется.
func ShadeColor(c color.RGBA, shade float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * shade),
		G: uint8(float64(c.G) * shade),
		B: uint8(float64(c.B) * shade),
		A: c.A,
	}
}

// ShadedSpriteDrawer — рендерер, который умеет рисовать спрайт затемнённым.
// shade — множитель яркости из (0, 1].
type ShadedSpriteDrawer interface {
	DrawSpriteShaded(kind SpriteKind, center, size utils.Vec2, shade float64)
}

// Dimmed пропускает запросы в обёрнутый Renderer, затемняя все цвета.
// Спрайты затемняются, если обёрнутый рендерер реализует ShadedSpriteDrawer,
// иначе рисуются как есть. Используется экраном паузы поверх последнего кадра.
type Dimmed struct {
	Renderer
}

func (d Dimmed) Clear(c color.RGBA) {
	d.Renderer.Clear(DarkenColor(c))
}

func (d Dimmed) DrawCircle(center utils.Vec2, radius float64, c color.RGBA, filled bool) {
	d.Renderer.DrawCircle(center, radius, DarkenColor(c), filled)
}

func (d Dimmed) DrawLine(from, to utils.Vec2, c color.RGBA) {
	d.Renderer.DrawLine(from, to, DarkenColor(c))
}

func (d Dimmed) DrawText(text string, pos utils.Vec2, size float64, c color.RGBA) {
	d.Renderer.DrawText(text, pos, size, DarkenColor(c))
}

func (d Dimmed) DrawSprite(kind SpriteKind, center, size utils.Vec2) {
	if sd, ok := d.Renderer.(ShadedSpriteDrawer); ok {
		sd.DrawSpriteShaded(kind, center, size, dimFactor)
		return
	}
	d.Renderer.DrawSprite(kind, center, size)
}
