// internal/assets/sprite_manager.go
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"os"

	"go-balloon-defense/internal/config"
	"go-balloon-defense/internal/entity"
	"go-balloon-defense/pkg/render"
	"go-balloon-defense/pkg/utils"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrMissingSprite возвращается, если файла спрайта нет на диске.
var ErrMissingSprite = errors.New("sprite file is missing")

// Sprites — изображения, загруженные до первого кадра. После загрузки
// только читаются.
type Sprites struct {
	Background image.Image
	Balloon    image.Image
}

// LoadSprites декодирует фон и шарик. Поддерживаются PNG, BMP и WebP.
func LoadSprites(cfg config.AssetsConfig) (*Sprites, error) {
	background, err := loadImage(cfg.Background)
	if err != nil {
		return nil, err
	}
	balloon, err := loadImage(cfg.Balloon)
	if err != nil {
		return nil, err
	}
	return &Sprites{Background: background, Balloon: balloon}, nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingSprite, path)
		}
		return nil, fmt.Errorf("failed to open sprite %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite %s: %w", path, err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("sprite %s is empty", path)
	}
	log.Printf("Loaded sprite %s (%s, %dx%d)", path, format, b.Dx(), b.Dy())
	return img, nil
}

// Size возвращает размер спрайта в пикселях исходного изображения.
func (s *Sprites) Size(kind render.SpriteKind) utils.Vec2 {
	var img image.Image
	switch kind {
	case render.SpriteBackground:
		img = s.Background
	case render.SpriteBalloon:
		img = s.Balloon
	}
	if img == nil {
		return utils.Vec2{}
	}
	b := img.Bounds()
	return utils.Vec2{X: float64(b.Dx()), Y: float64(b.Dy())}
}

// ByKind — спрайты в виде, который ожидают рендереры.
func (s *Sprites) ByKind() map[render.SpriteKind]image.Image {
	return map[render.SpriteKind]image.Image{
		render.SpriteBackground: s.Background,
		render.SpriteBalloon:    s.Balloon,
	}
}

// Info — размеры спрайтов для ядра, которому сами картинки не нужны.
func (s *Sprites) Info() entity.SpriteInfo {
	return entity.SpriteInfo{
		BackgroundSize: s.Size(render.SpriteBackground),
	}
}
