// internal/state/state.go
package state

import (
	"go-balloon-defense/internal/input"
	"go-balloon-defense/pkg/render"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64, in input.Snapshot)
	Draw(r render.Renderer)
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current возвращает активное состояние
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64, in input.Snapshot) {
	if sm.current != nil {
		sm.current.Update(deltaTime, in)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(r render.Renderer) {
	if sm.current != nil {
		sm.current.Draw(r)
	}
}
