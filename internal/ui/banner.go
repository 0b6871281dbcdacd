// internal/ui/banner.go
package ui

import (
	"image/color"

	"go-balloon-defense/pkg/render"
	"go-balloon-defense/pkg/utils"
)

// Banner — строка по центру игрового поля. Ширина текста оценивается по
// средней ширине символа, чтобы ядру не нужен был доступ к шрифту.
type Banner struct {
	TextSize       float64
	CharWidthRatio float64
	Color          color.RGBA
}

// TextWidth — оценка ширины строки в единицах поля.
func (b *Banner) TextWidth(text string) float64 {
	return float64(len([]rune(text))) * b.TextSize * b.CharWidthRatio
}

// Draw центрирует text в области area.
func (b *Banner) Draw(r render.Renderer, text string, area utils.Vec2) {
	pos := utils.Vec2{
		X: area.X/2 - b.TextWidth(text)/2,
		Y: area.Y/2 + b.TextSize/2,
	}
	r.DrawText(text, pos, b.TextSize, b.Color)
}
