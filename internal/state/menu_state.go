// internal/state/menu_state.go
package state

import (
	"image/color"

	"go-balloon-defense/internal/app"
	"go-balloon-defense/internal/config"
	"go-balloon-defense/internal/input"
	"go-balloon-defense/internal/ui"
	"go-balloon-defense/pkg/render"
	"go-balloon-defense/pkg/utils"
)

const menuText = "Press [space] to start"

// MenuState — стартовый экран до первой партии
type MenuState struct {
	sm     *StateMachine
	game   *app.Game
	banner *ui.Banner
}

func NewMenuState(sm *StateMachine, game *app.Game) *MenuState {
	return &MenuState{
		sm:   sm,
		game: game,
		banner: &ui.Banner{
			TextSize:       config.BannerTextSize,
			CharWidthRatio: config.CharWidthRatio,
			Color:          config.TextLightColor,
		},
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64, in input.Snapshot) {
	if in.StartGame {
		m.sm.SetState(NewPlayState(m.sm, m.game))
	}
}

func (m *MenuState) Draw(r render.Renderer) {
	r.Clear(color.RGBA{0, 0, 0, 255}) // Чёрный экран
	area := utils.Vec2{X: m.game.Config.PlayArea.Width, Y: m.game.Config.PlayArea.Height}
	m.banner.Draw(r, menuText, area)
}

func (m *MenuState) Exit() {}
