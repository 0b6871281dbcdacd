// internal/input/terminal.go
package input

import (
	"go-balloon-defense/pkg/utils"

	"github.com/gdamore/tcell/v2"
)

// TerminalCollector собирает события tcell между кадрами. Терминал не
// сообщает об отпускании клавиш, поэтому level-поля живут один кадр после
// нажатия; кнопка мыши — пока её держат.
type TerminalCollector struct {
	pending    Snapshot
	pointer    utils.Vec2
	mouseDown  bool
	cellToArea func(col, row int) utils.Vec2
}

// NewTerminalCollector принимает перевод клетки терминала в координаты поля.
func NewTerminalCollector(cellToArea func(col, row int) utils.Vec2) *TerminalCollector {
	return &TerminalCollector{cellToArea: cellToArea}
}

// Handle учитывает одно событие. Возвращает false, если игрок просит выйти.
func (c *TerminalCollector) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return false
		case tcell.KeyEscape:
			c.pending.CancelTowerPlacement = true
		case tcell.KeyEnter:
			c.pending.Reset = true
			c.pending.ConfirmTowerPlacement = true
		case tcell.KeyLeft:
			c.nudge(-1, 0)
		case tcell.KeyRight:
			c.nudge(1, 0)
		case tcell.KeyUp:
			c.nudge(0, -1)
		case tcell.KeyDown:
			c.nudge(0, 1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 't':
				c.pending.StartTowerPlacement = true
			case 'r':
				c.pending.RotateClockwise = true
			case 'e':
				c.pending.RotateCounterClockwise = true
			case 'p':
				c.pending.TogglePause = true
			case ' ':
				c.pending.StartGame = true
			case 'l':
				c.pending.ForceGameOver = true
			}
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		c.pointer = c.cellToArea(col, row)
		c.mouseDown = ev.Buttons()&tcell.Button1 != 0
	}
	return true
}

// nudge сдвигает указатель на одну клетку стрелками.
func (c *TerminalCollector) nudge(dc, dr int) {
	col0 := c.cellToArea(0, 0)
	col1 := c.cellToArea(1, 1)
	step := col1.Sub(col0)
	c.pointer = c.pointer.Add(utils.Vec2{X: float64(dc) * step.X, Y: float64(dr) * step.Y})
}

// SetPointer задаёт начальное положение указателя.
func (c *TerminalCollector) SetPointer(p utils.Vec2) {
	c.pointer = p
}

// Snapshot возвращает ввод за прошедший кадр и начинает новый.
func (c *TerminalCollector) Snapshot() Snapshot {
	s := c.pending
	s.Pointer = c.pointer
	if c.mouseDown {
		s.ConfirmTowerPlacement = true
	}
	c.pending = Snapshot{}
	return s
}
