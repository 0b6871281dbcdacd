package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config хранит все константы симуляции. Значение создаётся один раз при
// старте и дальше только читается.
//
// Файл конфигурации: configs/game.yaml
type Config struct {
	// PlayArea — видимая область, в которой живут шарики и снаряды.
	PlayArea PlayAreaConfig `yaml:"playArea"`

	Economy    EconomyConfig    `yaml:"economy"`
	Balloon    BalloonConfig    `yaml:"balloon"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Tower      TowerConfig      `yaml:"tower"`
	Assets     AssetsConfig     `yaml:"assets"`
}

type PlayAreaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type EconomyConfig struct {
	StartingCoins uint `yaml:"startingCoins"`
	StartingLives int  `yaml:"startingLives"`
	TowerCost     uint `yaml:"towerCost"`
	CoinsPerPop   uint `yaml:"coinsPerPop"`
}

type BalloonConfig struct {
	SpriteSize    float64 `yaml:"spriteSize"`
	SpriteScale   float64 `yaml:"spriteScale"`
	Speed         float64 `yaml:"speed"`         // единиц в секунду
	SpawnInterval float64 `yaml:"spawnInterval"` // секунд между шариками
}

type ProjectileConfig struct {
	Speed  float64 `yaml:"speed"`
	Radius float64 `yaml:"radius"`
}

type TowerConfig struct {
	Size          float64 `yaml:"size"`
	BasePeriod    float64 `yaml:"basePeriod"` // период выстрела на 1-м уровне
	PopsPerLevel  uint    `yaml:"popsPerLevel"`
	RotationSpeed float64 `yaml:"rotationSpeed"` // радиан в секунду
}

type AssetsConfig struct {
	Background string `yaml:"background"`
	Balloon    string `yaml:"balloon"`
}

// Default возвращает конфигурацию с исходными константами игры.
func Default() *Config {
	return &Config{
		PlayArea: PlayAreaConfig{Width: ScreenWidth, Height: ScreenHeight},
		Economy: EconomyConfig{
			StartingCoins: 30,
			StartingLives: 3,
			TowerCost:     15,
			CoinsPerPop:   1,
		},
		Balloon: BalloonConfig{
			SpriteSize:    48,
			SpriteScale:   3,
			Speed:         150,
			SpawnInterval: 1.0,
		},
		Projectile: ProjectileConfig{Speed: 500, Radius: 15},
		Tower: TowerConfig{
			Size:          50,
			BasePeriod:    2.0,
			PopsPerLevel:  10,
			RotationSpeed: 5,
		},
		Assets: AssetsConfig{
			Background: "resources/sprites/background2.png",
			Balloon:    "resources/sprites/balloon.png",
		},
	}
}

// BalloonSize — сторона спрайта шарика на экране.
func (c *Config) BalloonSize() float64 {
	return c.Balloon.SpriteSize * c.Balloon.SpriteScale
}

// ColliderRadius — радиус коллайдера шарика, половина его экранного размера.
func (c *Config) ColliderRadius() float64 {
	return c.BalloonSize() / 2
}

// Load читает YAML поверх значений по умолчанию, так что в файле можно
// указать только изменённые поля.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate проверяет, что значения пригодны для симуляции.
func (c *Config) Validate() error {
	var errs []error
	if c.PlayArea.Width <= 0 || c.PlayArea.Height <= 0 {
		errs = append(errs, fmt.Errorf("playArea must be positive, got %vx%v", c.PlayArea.Width, c.PlayArea.Height))
	}
	if c.Economy.StartingLives <= 0 {
		errs = append(errs, fmt.Errorf("economy.startingLives must be positive, got %d", c.Economy.StartingLives))
	}
	if c.Balloon.SpriteSize <= 0 || c.Balloon.SpriteScale <= 0 {
		errs = append(errs, errors.New("balloon.spriteSize and balloon.spriteScale must be positive"))
	}
	if c.Balloon.Speed < 0 {
		errs = append(errs, fmt.Errorf("balloon.speed must not be negative, got %v", c.Balloon.Speed))
	}
	if c.Balloon.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("balloon.spawnInterval must be positive, got %v", c.Balloon.SpawnInterval))
	}
	if c.Projectile.Speed < 0 || c.Projectile.Radius < 0 {
		errs = append(errs, errors.New("projectile.speed and projectile.radius must not be negative"))
	}
	if c.Tower.BasePeriod <= 0 {
		errs = append(errs, fmt.Errorf("tower.basePeriod must be positive, got %v", c.Tower.BasePeriod))
	}
	if c.Tower.PopsPerLevel == 0 {
		errs = append(errs, errors.New("tower.popsPerLevel must be positive"))
	}
	if c.Assets.Background == "" || c.Assets.Balloon == "" {
		errs = append(errs, errors.New("assets.background and assets.balloon are required"))
	}
	return errors.Join(errs...)
}
