// internal/component/projectile.go
package component

import (
	"go-balloon-defense/internal/config"
	"go-balloon-defense/pkg/utils"
)

// ProjectileState — жизненный цикл снаряда. Dead и Hit конечны.
type ProjectileState int

const (
	ProjectileAlive ProjectileState = iota
	ProjectileDead                  // вылетел за видимую область
	ProjectileHit                   // попал в шарик
)

// Projectile представляет летящий снаряд. Принадлежит ровно одной башне.
type Projectile struct {
	Position  utils.Vec2
	Direction utils.Vec2 // единичный вектор, задаётся при выстреле
	State     ProjectileState
}

func NewProjectile(position, direction utils.Vec2) Projectile {
	return Projectile{
		Position:  position,
		Direction: direction,
		State:     ProjectileAlive,
	}
}

// Advance двигает снаряд. Выход за поле определяется по позиции ДО сдвига,
// поэтому снаряд успевает пролететь ещё один кадр за краем экрана.
func (p *Projectile) Advance(cfg *config.Config, deltaTime float64) {
	if p.State == ProjectileAlive && outsidePlayArea(cfg, p.Position) {
		p.State = ProjectileDead
	}
	p.Position = p.Position.Add(p.Direction.Scale(cfg.Projectile.Speed * deltaTime))
}

func outsidePlayArea(cfg *config.Config, pos utils.Vec2) bool {
	return pos.X < 0 || pos.X > cfg.PlayArea.Width || pos.Y < 0 || pos.Y > cfg.PlayArea.Height
}

// CheckCollision — AABB-проверка: обе оси независимо должны уложиться в сумму радиусов.
func (p *Projectile) CheckCollision(cfg *config.Config, b *Balloon) bool {
	reach := cfg.ColliderRadius() + cfg.Projectile.Radius
	dx := utils.Abs(p.Position.X - b.Position.X)
	dy := utils.Abs(p.Position.Y - b.Position.Y)
	return dx <= reach && dy <= reach
}

func (p *Projectile) MarkHit() {
	p.State = ProjectileHit
}

func (p *Projectile) IsAlive() bool {
	return p.State == ProjectileAlive
}

func (p *Projectile) IsHit() bool {
	return p.State == ProjectileHit
}
