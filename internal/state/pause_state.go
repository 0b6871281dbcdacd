// internal/state/pause_state.go
package state

import (
	"go-balloon-defense/internal/config"
	"go-balloon-defense/internal/input"
	"go-balloon-defense/internal/ui"
	"go-balloon-defense/pkg/render"
	"go-balloon-defense/pkg/utils"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

const pauseText = "PAUSED"

// PauseState замораживает игру и показывает последний кадр затемнённым.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *PlayState
	banner        *ui.Banner
}

func NewPauseState(sm *StateMachine, prevState *PlayState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		banner: &ui.Banner{
			TextSize:       config.BannerTextSize,
			CharWidthRatio: config.CharWidthRatio,
			Color:          config.TextLightColor,
		},
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64, in input.Snapshot) {
	if in.TogglePause {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(r render.Renderer) {
	s.previousState.Draw(render.Dimmed{Renderer: r})

	cfg := s.previousState.Game().Config
	s.banner.Draw(r, pauseText, utils.Vec2{X: cfg.PlayArea.Width, Y: cfg.PlayArea.Height})
}

func (s *PauseState) Exit() {}
