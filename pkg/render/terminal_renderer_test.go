package render

import (
	"image/color"
	"testing"

	"go-balloon-defense/pkg/utils"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func TestTerminalRendererCellMapping(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	r := NewTerminalRenderer(s, utils.Vec2{X: 800, Y: 240})

	col, row := r.ToCell(utils.Vec2{X: 15, Y: 25})
	if col != 1 || row != 2 {
		t.Errorf("ToCell = (%d, %d), want (1, 2)", col, row)
	}
	if p := r.FromCell(1, 2); p.X != 15 || p.Y != 25 {
		t.Errorf("FromCell = %+v, want (15, 25)", p)
	}
}

func TestTerminalRendererText(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	r := NewTerminalRenderer(s, utils.Vec2{X: 800, Y: 240})
	r.Clear(color.RGBA{0, 0, 0, 255})
	r.DrawText("COINS", utils.Vec2{X: 0, Y: 15}, 10, color.RGBA{255, 255, 255, 255})

	// y = 15 - 10/2 = 10 -> строка 1
	for i, want := range "COINS" {
		got, _, _, _ := s.GetContent(i, 1)
		if got != want {
			t.Errorf("cell (%d, 1) = %q, want %q", i, got, want)
		}
	}
}

func TestTerminalRendererClipsOutside(t *testing.T) {
	s := newSimScreen(t, 10, 5)
	r := NewTerminalRenderer(s, utils.Vec2{X: 100, Y: 50})
	r.Clear(color.RGBA{})
	// Не должно паниковать при рисовании за краем.
	r.DrawCircle(utils.Vec2{X: -500, Y: -500}, 30, color.RGBA{255, 0, 0, 255}, true)
	r.DrawLine(utils.Vec2{X: -100, Y: 25}, utils.Vec2{X: 200, Y: 25}, color.RGBA{0, 255, 0, 255})

	got, _, _, _ := s.GetContent(5, 2)
	if got != '+' {
		t.Errorf("line should cross the middle row, got %q", got)
	}
}

func TestTerminalRendererShadedSprite(t *testing.T) {
	s := newSimScreen(t, 10, 5)
	r := NewTerminalRenderer(s, utils.Vec2{X: 100, Y: 50})
	r.DrawSpriteShaded(SpriteBackground, utils.Vec2{X: 50, Y: 25}, utils.Vec2{X: 100, Y: 50}, 0.5)

	_, _, style, _ := s.GetContent(5, 2)
	_, bg, _ := style.Decompose()
	want := toTcell(ShadeColor(terminalGrass, 0.5))
	if bg != want {
		t.Errorf("background = %v, want %v", bg, want)
	}
}
