// internal/state/play_state.go
package state

import (
	"go-balloon-defense/internal/app"
	"go-balloon-defense/internal/input"
	"go-balloon-defense/pkg/render"
)

var _ State = (*PlayState)(nil)

// PlayState крутит симуляцию. Кадр пишется в буфер в Update и
// воспроизводится в Draw, так что частоты Update и Draw могут не совпадать.
type PlayState struct {
	sm    *StateMachine
	game  *app.Game
	frame render.Buffer
}

func NewPlayState(sm *StateMachine, game *app.Game) *PlayState {
	return &PlayState{sm: sm, game: game}
}

func (s *PlayState) Enter() {}

func (s *PlayState) Update(deltaTime float64, in input.Snapshot) {
	if in.TogglePause && !s.game.IsGameOver() {
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}
	s.frame.Reset()
	s.game.Advance(deltaTime, in, &s.frame)
}

func (s *PlayState) Draw(r render.Renderer) {
	s.frame.Replay(r)
}

func (s *PlayState) Exit() {}

// Game отдаёт ядро, например для подписки на события.
func (s *PlayState) Game() *app.Game {
	return s.game
}
