// pkg/render/screen_renderer.go
package render

import (
	"image"
	"image/color"

	"go-balloon-defense/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	basicFontHeight = 13.0
	strokeWidth     = 2.0
)

// ScreenRenderer рисует запросы ядра на ebiten.Image. Координаты игрового
// поля совпадают с логическими пикселями (см. Layout в cmd/game).
type ScreenRenderer struct {
	screen   *ebiten.Image
	sprites  map[SpriteKind]*ebiten.Image
	fontFace text.Face
}

var (
	_ Renderer           = (*ScreenRenderer)(nil)
	_ ShadedSpriteDrawer = (*ScreenRenderer)(nil)
)

// NewScreenRenderer загружает декодированные спрайты в GPU-память один раз при старте.
func NewScreenRenderer(sprites map[SpriteKind]image.Image) *ScreenRenderer {
	r := &ScreenRenderer{
		sprites:  make(map[SpriteKind]*ebiten.Image, len(sprites)),
		fontFace: text.NewGoXFace(basicfont.Face7x13),
	}
	for kind, img := range sprites {
		r.sprites[kind] = ebiten.NewImageFromImage(img)
	}
	return r
}

// Target задаёт изображение, на которое пойдут следующие вызовы.
func (r *ScreenRenderer) Target(screen *ebiten.Image) {
	r.screen = screen
}

func (r *ScreenRenderer) Clear(c color.RGBA) {
	r.screen.Fill(c)
}

func (r *ScreenRenderer) DrawSprite(kind SpriteKind, center, size utils.Vec2) {
	r.DrawSpriteShaded(kind, center, size, 1)
}

// DrawSpriteShaded умножает цвет спрайта на shade.
func (r *ScreenRenderer) DrawSpriteShaded(kind SpriteKind, center, size utils.Vec2, shade float64) {
	img, ok := r.sprites[kind]
	if !ok {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(size.X/float64(b.Dx()), size.Y/float64(b.Dy()))
	op.GeoM.Translate(center.X-size.X/2, center.Y-size.Y/2)
	op.ColorScale.Scale(float32(shade), float32(shade), float32(shade), 1)
	r.screen.DrawImage(img, op)
}

func (r *ScreenRenderer) DrawCircle(center utils.Vec2, radius float64, c color.RGBA, filled bool) {
	if filled {
		vector.DrawFilledCircle(r.screen, float32(center.X), float32(center.Y), float32(radius), c, true)
		return
	}
	vector.StrokeCircle(r.screen, float32(center.X), float32(center.Y), float32(radius), strokeWidth, c, true)
}

func (r *ScreenRenderer) DrawLine(from, to utils.Vec2, c color.RGBA) {
	vector.StrokeLine(r.screen, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), strokeWidth, c, true)
}

// DrawText масштабирует bitmap-шрифт 7x13 до запрошенной высоты. text/v2
// рисует от верха строки, поэтому базовую линию поднимаем на ascent.
func (r *ScreenRenderer) DrawText(s string, pos utils.Vec2, size float64, c color.RGBA) {
	scale := size / basicFontHeight
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(pos.X, pos.Y-r.fontFace.Metrics().HAscent*scale)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(r.screen, s, r.fontFace, op)
}
