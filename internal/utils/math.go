// internal/utils/math.go
package utils

import "math"

// NormalizeAngle нормализует угол в диапазон [-π, π] за константное время
func NormalizeAngle(angle float64) float64 {
	return math.Remainder(angle, 2*math.Pi)
}

// Rotate поворачивает угол на step радиан; знак step задаёт направление.
// Положительный шаг на экране (ось Y вниз) — поворот по часовой стрелке.
func Rotate(angle, step float64) float64 {
	return NormalizeAngle(angle + step)
}
