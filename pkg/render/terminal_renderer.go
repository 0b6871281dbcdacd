// pkg/render/terminal_renderer.go
package render

import (
	"image/color"
	"math"

	"go-balloon-defense/pkg/utils"

	"github.com/gdamore/tcell/v2"
)

// TerminalRenderer рисует запросы ядра клетками терминала. Игровое поле
// растягивается на весь экран; одна клетка — прямоугольник area/cols × area/rows.
type TerminalRenderer struct {
	screen     tcell.Screen
	area       utils.Vec2
	cols, rows int
	background tcell.Color
}

var (
	_ Renderer           = (*TerminalRenderer)(nil)
	_ ShadedSpriteDrawer = (*TerminalRenderer)(nil)
)

// Цвета спрайтов в терминале, где картинок нет.
var (
	terminalGrass   = color.RGBA{60, 110, 60, 255}
	terminalBalloon = color.RGBA{230, 41, 55, 255}
)

func NewTerminalRenderer(screen tcell.Screen, area utils.Vec2) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen, area: area}
	r.Resize()
	return r
}

// Resize перечитывает размер терминала; вызывать на tcell.EventResize.
func (r *TerminalRenderer) Resize() {
	r.cols, r.rows = r.screen.Size()
}

// ToCell переводит точку игрового поля в клетку терминала.
func (r *TerminalRenderer) ToCell(p utils.Vec2) (int, int) {
	return int(math.Floor(p.X / r.cellW())), int(math.Floor(p.Y / r.cellH()))
}

// FromCell возвращает центр клетки в координатах игрового поля.
func (r *TerminalRenderer) FromCell(col, row int) utils.Vec2 {
	return utils.Vec2{X: (float64(col) + 0.5) * r.cellW(), Y: (float64(row) + 0.5) * r.cellH()}
}

func (r *TerminalRenderer) cellW() float64 { return r.area.X / float64(max(r.cols, 1)) }
func (r *TerminalRenderer) cellH() float64 { return r.area.Y / float64(max(r.rows, 1)) }

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (r *TerminalRenderer) set(col, row int, ch rune, fg tcell.Color) {
	if col < 0 || row < 0 || col >= r.cols || row >= r.rows {
		return
	}
	r.screen.SetContent(col, row, ch, nil, tcell.StyleDefault.Foreground(fg).Background(r.background))
}

func (r *TerminalRenderer) Clear(c color.RGBA) {
	r.background = toTcell(c)
	r.screen.Fill(' ', tcell.StyleDefault.Background(r.background))
}

// DrawSprite: фон перекрашивает область под спрайтом, шарик рисуется символами.
func (r *TerminalRenderer) DrawSprite(kind SpriteKind, center, size utils.Vec2) {
	r.DrawSpriteShaded(kind, center, size, 1)
}

func (r *TerminalRenderer) DrawSpriteShaded(kind SpriteKind, center, size utils.Vec2, shade float64) {
	c0, r0 := r.ToCell(center.Sub(size.Scale(0.5)))
	c1, r1 := r.ToCell(center.Add(size.Scale(0.5)))
	switch kind {
	case SpriteBackground:
		r.background = toTcell(ShadeColor(terminalGrass, shade))
		style := tcell.StyleDefault.Background(r.background)
		for row := max(r0, 0); row <= min(r1, r.rows-1); row++ {
			for col := max(c0, 0); col <= min(c1, r.cols-1); col++ {
				r.screen.SetContent(col, row, ' ', nil, style)
			}
		}
	case SpriteBalloon:
		fg := toTcell(ShadeColor(terminalBalloon, shade))
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				if r.inEllipse(col, row, center, size.Scale(0.5)) {
					r.set(col, row, '@', fg)
				}
			}
		}
	}
}

func (r *TerminalRenderer) inEllipse(col, row int, center, radii utils.Vec2) bool {
	if radii.X <= 0 || radii.Y <= 0 {
		return false
	}
	p := r.FromCell(col, row).Sub(center)
	return (p.X*p.X)/(radii.X*radii.X)+(p.Y*p.Y)/(radii.Y*radii.Y) <= 1
}

func (r *TerminalRenderer) DrawCircle(center utils.Vec2, radius float64, c color.RGBA, filled bool) {
	fg := toTcell(c)
	c0, r0 := r.ToCell(center.Sub(utils.Vec2{X: radius, Y: radius}))
	c1, r1 := r.ToCell(center.Add(utils.Vec2{X: radius, Y: radius}))
	if c0 == c1 && r0 == r1 {
		r.set(c0, r0, '*', fg)
		return
	}
	band := math.Max(r.cellW(), r.cellH()) / 2
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			d := r.FromCell(col, row).Sub(center).Len()
			switch {
			case filled && d <= radius:
				r.set(col, row, '█', fg)
			case !filled && math.Abs(d-radius) <= band:
				r.set(col, row, '·', fg)
			}
		}
	}
}

// DrawLine — простой DDA по клеткам.
func (r *TerminalRenderer) DrawLine(from, to utils.Vec2, c color.RGBA) {
	fg := toTcell(c)
	x0, y0 := r.ToCell(from)
	x1, y1 := r.ToCell(to)
	steps := max(utils.Abs(float64(x1-x0)), utils.Abs(float64(y1-y0)))
	if steps == 0 {
		r.set(x0, y0, '+', fg)
		return
	}
	dx := float64(x1-x0) / steps
	dy := float64(y1-y0) / steps
	for i := 0.0; i <= steps; i++ {
		r.set(x0+int(math.Round(dx*i)), y0+int(math.Round(dy*i)), '+', fg)
	}
}

// DrawText пишет строку в одну клетку на символ; размер шрифта не учитывается.
func (r *TerminalRenderer) DrawText(s string, pos utils.Vec2, size float64, c color.RGBA) {
	fg := toTcell(c)
	col, row := r.ToCell(utils.Vec2{X: pos.X, Y: pos.Y - size/2})
	for i, ch := range []rune(s) {
		r.set(col+i, row, ch, fg)
	}
}
