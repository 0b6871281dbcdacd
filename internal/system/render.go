// internal/system/render.go
package system

import (
	"go-balloon-defense/internal/component"
	"go-balloon-defense/internal/config"
	"go-balloon-defense/internal/entity"
	"go-balloon-defense/internal/ui"
	"go-balloon-defense/pkg/render"
	"go-balloon-defense/pkg/utils"
)

const gameOverText = "Game Over. Press [enter] to play again."

// RenderSystem превращает состояние мира в запросы к render.Renderer.
// Сама ничего не хранит, кроме виджетов HUD.
type RenderSystem struct {
	world  *entity.World
	cfg    *config.Config
	stats  *ui.StatsPanel
	lives  *ui.LivesIndicator
	banner *ui.Banner
}

func NewRenderSystem(world *entity.World, cfg *config.Config) *RenderSystem {
	return &RenderSystem{
		world: world,
		cfg:   cfg,
		stats: ui.NewStatsPanel(config.StatsTextX, config.StatsTextY, config.StatsTextSize,
			config.StatsLineSpacing, config.TextLightColor),
		lives: &ui.LivesIndicator{
			Position:   utils.Vec2{X: config.LivesIndicatorX, Y: config.LivesIndicatorY},
			Radius:     config.LivesCircleRadius,
			Spacing:    config.LivesCircleSpacing,
			FullColor:  config.LivesFullColor,
			EmptyColor: config.LivesEmptyColor,
			Stroke:     config.IndicatorStroke,
		},
		banner: &ui.Banner{
			TextSize:       config.BannerTextSize,
			CharWidthRatio: config.CharWidthRatio,
			Color:          config.BannerTextColor,
		},
	}
}

func (s *RenderSystem) playArea() utils.Vec2 {
	return utils.Vec2{X: s.cfg.PlayArea.Width, Y: s.cfg.PlayArea.Height}
}

// DrawBackground заливает фон и растягивает картинку фона по ширине поля.
func (s *RenderSystem) DrawBackground(r render.Renderer) {
	r.Clear(config.BackgroundColor)

	bg := s.world.Sprites.BackgroundSize
	if bg.X <= 0 || bg.Y <= 0 {
		return
	}
	area := s.playArea()
	scale := area.X / bg.X
	r.DrawSprite(render.SpriteBackground, area.Scale(0.5), bg.Scale(scale))
}

// DrawBalloons рисует спрайт и контур коллайдера каждого шарика.
func (s *RenderSystem) DrawBalloons(r render.Renderer) {
	size := s.cfg.BalloonSize()
	for _, b := range s.world.Balloons {
		r.DrawSprite(render.SpriteBalloon, b.Position, utils.Vec2{X: size, Y: size})
		r.DrawCircle(b.Position, s.cfg.ColliderRadius(), config.ColliderColor, false)
	}
}

// DrawTowers рисует башни и их снаряды в порядке постройки.
func (s *RenderSystem) DrawTowers(r render.Renderer) {
	for _, t := range s.world.Towers {
		DrawTower(r, s.cfg, t, false)
		for _, p := range t.Projectiles {
			r.DrawCircle(p.Position, s.cfg.Projectile.Radius, config.ProjectileColor, true)
		}
	}
}

// DrawStats — строки монет и жизней плюс ряд индикаторов жизней.
func (s *RenderSystem) DrawStats(r render.Renderer) {
	s.stats.Draw(r, s.world.Coins, s.world.Lives)
	s.lives.Draw(r, s.world.Lives, s.cfg.Economy.StartingLives)
}

// DrawGameOver — белый экран с приглашением начать заново.
func (s *RenderSystem) DrawGameOver(r render.Renderer) {
	r.Clear(config.GameOverColor)
	s.banner.Draw(r, gameOverText, s.playArea())
}

// DrawBanner выводит произвольную строку по центру поля.
func (s *RenderSystem) DrawBanner(r render.Renderer, text string) {
	s.banner.Draw(r, text, s.playArea())
}

// DrawTower рисует корпус башни и линию прицела длиной в два размера башни.
// disabled — серый цвет превью, когда монет не хватает.
func DrawTower(r render.Renderer, cfg *config.Config, t *component.Tower, disabled bool) {
	c := config.TowerColor(t.Level, disabled)
	size := cfg.Tower.Size
	r.DrawCircle(t.Position, size, c, true)
	tip := t.Position.Add(utils.FromAngle(t.Angle).Scale(2 * size))
	r.DrawLine(t.Position, tip, c)
}
