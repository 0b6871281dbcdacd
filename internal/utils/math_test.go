package utils

import (
	"math"
	"testing"
)

func TestRotateWrapsAround(t *testing.T) {
	tests := []struct {
		name        string
		angle, step float64
		want        float64
	}{
		{"small step", 0, 0.5, 0.5},
		{"negative step", 0, -0.5, -0.5},
		{"past pi", 3, 0.5, 3.5 - 2*math.Pi},
		{"past minus pi", -3, -0.5, -3.5 + 2*math.Pi},
		{"several turns", 0, 4*math.Pi + 1, 1},
		{"many turns backwards", 0, -(6*math.Pi + 1), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rotate(tt.angle, tt.step)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Rotate(%v, %v) = %v, want %v", tt.angle, tt.step, got, tt.want)
			}
			if got < -math.Pi || got > math.Pi {
				t.Errorf("result %v outside [-π, π]", got)
			}
		})
	}
}

func TestRotateHugeStep(t *testing.T) {
	// шаг за кадр без ограничения dt: результат всё равно в [-π, π]
	for _, step := range []float64{1e12, -1e12, 5e15} {
		got := Rotate(0.25, step)
		if got < -math.Pi || got > math.Pi || math.IsNaN(got) {
			t.Errorf("Rotate(0.25, %g) = %v, want within [-π, π]", step, got)
		}
	}
}
