// pkg/render/buffer.go
package render

import (
	"image/color"

	"go-balloon-defense/pkg/utils"
)

// CommandKind — тип записанного запроса.
type CommandKind int

const (
	CmdClear CommandKind = iota
	CmdSprite
	CmdCircle
	CmdLine
	CmdText
)

// Command — один записанный запрос на отрисовку. Заполнены только поля,
// относящиеся к его Kind.
type Command struct {
	Kind   CommandKind
	Sprite SpriteKind
	From   utils.Vec2 // центр спрайта/круга, начало линии, позиция текста
	To     utils.Vec2 // конец линии или размер спрайта
	Radius float64
	Filled bool
	Size   float64
	Text   string
	Color  color.RGBA
	Shade  float64 // яркость спрайта; 0 — без затемнения
}

// Buffer записывает запросы кадра, чтобы воспроизвести их позже.
// Нужен там, где Update и Draw разнесены (ebiten), и в тестах.
type Buffer struct {
	Commands []Command
}

var (
	_ Renderer           = (*Buffer)(nil)
	_ ShadedSpriteDrawer = (*Buffer)(nil)
)

// Reset очищает буфер, сохраняя выделенную память.
func (b *Buffer) Reset() {
	b.Commands = b.Commands[:0]
}

func (b *Buffer) Clear(c color.RGBA) {
	b.Commands = append(b.Commands, Command{Kind: CmdClear, Color: c})
}

func (b *Buffer) DrawSprite(kind SpriteKind, center, size utils.Vec2) {
	b.Commands = append(b.Commands, Command{Kind: CmdSprite, Sprite: kind, From: center, To: size})
}

func (b *Buffer) DrawSpriteShaded(kind SpriteKind, center, size utils.Vec2, shade float64) {
	b.Commands = append(b.Commands, Command{Kind: CmdSprite, Sprite: kind, From: center, To: size, Shade: shade})
}

func (b *Buffer) DrawCircle(center utils.Vec2, radius float64, c color.RGBA, filled bool) {
	b.Commands = append(b.Commands, Command{Kind: CmdCircle, From: center, Radius: radius, Color: c, Filled: filled})
}

func (b *Buffer) DrawLine(from, to utils.Vec2, c color.RGBA) {
	b.Commands = append(b.Commands, Command{Kind: CmdLine, From: from, To: to, Color: c})
}

func (b *Buffer) DrawText(text string, pos utils.Vec2, size float64, c color.RGBA) {
	b.Commands = append(b.Commands, Command{Kind: CmdText, Text: text, From: pos, Size: size, Color: c})
}

// Replay передаёт все записанные запросы в dst в исходном порядке.
func (b *Buffer) Replay(dst Renderer) {
	for _, cmd := range b.Commands {
		switch cmd.Kind {
		case CmdClear:
			dst.Clear(cmd.Color)
		case CmdSprite:
			if sd, ok := dst.(ShadedSpriteDrawer); ok && cmd.Shade > 0 {
				sd.DrawSpriteShaded(cmd.Sprite, cmd.From, cmd.To, cmd.Shade)
			} else {
				dst.DrawSprite(cmd.Sprite, cmd.From, cmd.To)
			}
		case CmdCircle:
			dst.DrawCircle(cmd.From, cmd.Radius, cmd.Color, cmd.Filled)
		case CmdLine:
			dst.DrawLine(cmd.From, cmd.To, cmd.Color)
		case CmdText:
			dst.DrawText(cmd.Text, cmd.From, cmd.Size, cmd.Color)
		}
	}
}

// Filter возвращает записанные команды заданного типа.
func (b *Buffer) Filter(kind CommandKind) []Command {
	var out []Command
	for _, cmd := range b.Commands {
		if cmd.Kind == kind {
			out = append(out, cmd)
		}
	}
	return out
}

// Texts возвращает строки всех текстовых команд.
func (b *Buffer) Texts() []string {
	var out []string
	for _, cmd := range b.Filter(CmdText) {
		out = append(out, cmd.Text)
	}
	return out
}
