// internal/component/tower.go
package component

import (
	"go-balloon-defense/internal/config"
	"go-balloon-defense/internal/utils"
	vec "go-balloon-defense/pkg/utils"
)

// Tower — стационарная башня, стреляет вдоль своего угла.
type Tower struct {
	Position     vec.Vec2
	Angle        float64 // радианы; меняется только в режиме предпросмотра
	ShotCooldown float64 // секунд до следующего выстрела
	Projectiles  []Projectile
	PopCount     uint
	Level        uint
}

func NewTower(position vec.Vec2) *Tower {
	return &Tower{
		Position: position,
		Level:    1,
	}
}

// Period — интервал между выстрелами на текущем уровне.
func (t *Tower) Period(cfg *config.Config) float64 {
	return cfg.Tower.BasePeriod / float64(t.Level)
}

// Tick уменьшает перезарядку и выпускает не более одного снаряда за вызов,
// даже если за кадр прошло несколько периодов.
func (t *Tower) Tick(cfg *config.Config, deltaTime float64) bool {
	t.ShotCooldown -= deltaTime
	if t.ShotCooldown >= 0 {
		return false
	}
	t.Projectiles = append(t.Projectiles, NewProjectile(t.Position, vec.FromAngle(t.Angle)))
	t.ShotCooldown += t.Period(cfg)
	return true
}

// RegisterPops добавляет попадания. Уровень растёт ровно на 1, если новый
// счётчик кратен PopsPerLevel, сколько бы порогов ни было пройдено за раз.
func (t *Tower) RegisterPops(cfg *config.Config, count uint) bool {
	if count == 0 {
		return false
	}
	t.PopCount += count
	if t.PopCount%cfg.Tower.PopsPerLevel == 0 {
		t.Level++
		return true
	}
	return false
}

// Rotate поворачивает башню; положительный delta — по часовой стрелке.
func (t *Tower) Rotate(delta float64) {
	t.Angle = utils.Rotate(t.Angle, delta)
}

// RemoveHit удаляет попавшие снаряды и возвращает их количество.
func (t *Tower) RemoveHit() uint {
	var removed uint
	kept := t.Projectiles[:0]
	for _, p := range t.Projectiles {
		if p.IsHit() {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	clear(t.Projectiles[len(kept):])
	t.Projectiles = kept
	return removed
}

// RemoveDead оставляет только живые снаряды.
func (t *Tower) RemoveDead() {
	kept := t.Projectiles[:0]
	for _, p := range t.Projectiles {
		if p.IsAlive() {
			kept = append(kept, p)
		}
	}
	clear(t.Projectiles[len(kept):])
	t.Projectiles = kept
}
