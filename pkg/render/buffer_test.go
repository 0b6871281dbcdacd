package render

import (
	"image/color"
	"testing"

	"go-balloon-defense/pkg/utils"
)

func TestBufferReplayPreservesOrder(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	var src Buffer
	src.Clear(red)
	src.DrawSprite(SpriteBalloon, utils.Vec2{X: 1, Y: 2}, utils.Vec2{X: 3, Y: 4})
	src.DrawSpriteShaded(SpriteBackground, utils.Vec2{X: 1}, utils.Vec2{X: 2}, 0.25)
	src.DrawCircle(utils.Vec2{X: 5, Y: 6}, 7, red, true)
	src.DrawLine(utils.Vec2{X: 8}, utils.Vec2{Y: 9}, red)
	src.DrawText("hi", utils.Vec2{X: 10, Y: 11}, 12, red)

	var dst Buffer
	src.Replay(&dst)

	if len(dst.Commands) != len(src.Commands) {
		t.Fatalf("replayed %d commands, want %d", len(dst.Commands), len(src.Commands))
	}
	for i := range src.Commands {
		if dst.Commands[i] != src.Commands[i] {
			t.Errorf("command %d = %+v, want %+v", i, dst.Commands[i], src.Commands[i])
		}
	}
}

func TestBufferResetAndFilter(t *testing.T) {
	var b Buffer
	b.DrawText("COINS: 1", utils.Vec2{}, 32, color.RGBA{})
	b.DrawCircle(utils.Vec2{}, 1, color.RGBA{}, false)
	b.DrawText("LIVES: 3", utils.Vec2{}, 32, color.RGBA{})

	if got := b.Texts(); len(got) != 2 || got[0] != "COINS: 1" || got[1] != "LIVES: 3" {
		t.Errorf("Texts = %v", got)
	}
	if got := b.Filter(CmdCircle); len(got) != 1 || got[0].Filled {
		t.Errorf("Filter(CmdCircle) = %+v", got)
	}

	b.Reset()
	if len(b.Commands) != 0 {
		t.Errorf("after Reset len = %d", len(b.Commands))
	}
}

func TestDimmedDarkensColors(t *testing.T) {
	var b Buffer
	d := Dimmed{Renderer: &b}
	c := color.RGBA{200, 100, 50, 255}
	d.DrawCircle(utils.Vec2{}, 1, c, true)
	d.DrawSprite(SpriteBackground, utils.Vec2{}, utils.Vec2{X: 1, Y: 1})

	want := color.RGBA{100, 50, 25, 255}
	if got := b.Commands[0].Color; got != want {
		t.Errorf("dimmed colour = %v, want %v", got, want)
	}
	if got := b.Commands[1]; got.Kind != CmdSprite || got.Shade != dimFactor {
		t.Errorf("dimmed sprite = %+v, want shade %v", got, dimFactor)
	}
}

// plainRenderer скрывает DrawSpriteShaded у Buffer.
type plainRenderer struct{ Renderer }

func TestDimmedSpriteFallback(t *testing.T) {
	var b Buffer
	d := Dimmed{Renderer: plainRenderer{&b}}
	d.DrawSprite(SpriteBalloon, utils.Vec2{X: 1}, utils.Vec2{X: 2, Y: 2})

	if len(b.Commands) != 1 {
		t.Fatalf("got %d commands, want 1", len(b.Commands))
	}
	if got := b.Commands[0]; got.Kind != CmdSprite || got.Shade != 0 {
		t.Errorf("fallback sprite = %+v, want unshaded", got)
	}
}

func TestDimmedReplayShadesSprites(t *testing.T) {
	var frame Buffer
	frame.DrawSprite(SpriteBackground, utils.Vec2{}, utils.Vec2{X: 4, Y: 4})
	frame.DrawSprite(SpriteBalloon, utils.Vec2{X: 1}, utils.Vec2{X: 2, Y: 2})

	var out Buffer
	frame.Replay(Dimmed{Renderer: &out})

	for i, cmd := range out.Commands {
		if cmd.Shade != dimFactor {
			t.Errorf("command %d shade = %v, want %v", i, cmd.Shade, dimFactor)
		}
	}
}

func TestShadeColor(t *testing.T) {
	tests := []struct {
		name  string
		shade float64
		want  color.RGBA
	}{
		{"full", 1, color.RGBA{200, 100, 50, 128}},
		{"half", 0.5, color.RGBA{100, 50, 25, 128}},
		{"black", 0, color.RGBA{0, 0, 0, 128}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShadeColor(color.RGBA{200, 100, 50, 128}, tt.shade); got != tt.want {
				t.Errorf("ShadeColor = %v, want %v", got, tt.want)
			}
		})
	}
}
