// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 0.25 // кадр дольше этого обрезается драйвером
	WindowTitle  = "Balloons"

	StatsTextX       = 10
	StatsTextY       = 32
	StatsTextSize    = 32
	StatsLineSpacing = 32

	BannerTextSize = 30
	CharWidthRatio = 7.0 / 13.0 // ширина символа basicfont 7x13 относительно высоты

	LivesIndicatorX    = 10
	LivesIndicatorY    = 84
	LivesCircleRadius  = 8.0
	LivesCircleSpacing = 4.0

	TerminalFrameRate = 30 // кадров в секунду для tcell-фронтенда
)

var (
	BackgroundColor  = color.RGBA{200, 200, 200, 255} // LIGHTGRAY
	GameOverColor    = color.RGBA{255, 255, 255, 255}
	BannerTextColor  = color.RGBA{80, 80, 80, 255}
	TextLightColor   = color.RGBA{255, 255, 255, 255}
	ProjectileColor  = color.RGBA{255, 161, 0, 255}
	ColliderColor    = color.RGBA{230, 41, 55, 255}
	DisabledColor    = color.RGBA{130, 130, 130, 255}
	LivesFullColor   = color.RGBA{230, 41, 55, 255}
	LivesEmptyColor  = color.RGBA{0, 0, 0, 255}
	IndicatorStroke  = color.RGBA{240, 240, 240, 255}
	TowerLevelColors = []color.RGBA{
		{0, 121, 241, 255}, // 1 — синий
		{0, 228, 48, 255},  // 2 — зелёный
		{253, 249, 0, 255}, // 3 — жёлтый
		{255, 161, 0, 255}, // 4 — оранжевый
		{230, 41, 55, 255},  // 5+ — красный
	}
)

// TowerColor возвращает цвет башни по уровню; уровни выше палитры получают последний цвет.
func TowerColor(level uint, disabled bool) color.RGBA {
	if disabled {
		return DisabledColor
	}
	if level == 0 {
		level = 1
	}
	idx := int(level) - 1
	if idx >= len(TowerLevelColors) {
		idx = len(TowerLevelColors) - 1
	}
	return TowerLevelColors[idx]
}
