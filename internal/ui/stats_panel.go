// internal/ui/stats_panel.go
package ui

import (
	"fmt"
	"image/color"

	"go-balloon-defense/pkg/render"
	"go-balloon-defense/pkg/utils"
)

// StatsPanel выводит монеты и жизни в левом верхнем углу.
type StatsPanel struct {
	Position    utils.Vec2 // базовая линия первой строки
	TextSize    float64
	LineSpacing float64
	Color       color.RGBA
}

func NewStatsPanel(x, y, size, spacing float64, c color.RGBA) *StatsPanel {
	return &StatsPanel{
		Position:    utils.Vec2{X: x, Y: y},
		TextSize:    size,
		LineSpacing: spacing,
		Color:       c,
	}
}

// Draw рисует две строки: "COINS: n" и "LIVES: n".
func (p *StatsPanel) Draw(r render.Renderer, coins uint, lives int) {
	r.DrawText(fmt.Sprintf("COINS: %d", coins), p.Position, p.TextSize, p.Color)
	r.DrawText(fmt.Sprintf("LIVES: %d", lives), p.Position.Add(utils.Vec2{Y: p.LineSpacing}), p.TextSize, p.Color)
}
