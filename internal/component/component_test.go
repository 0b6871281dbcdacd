package component

import (
	"go-balloon-defense/internal/config"
	"go-balloon-defense/pkg/utils"
)

// lanePoint — точка на оси дорожки с заданным x.
func lanePoint(x float64, cfg *config.Config) utils.Vec2 {
	return utils.Vec2{X: x, Y: cfg.PlayArea.Height / 2}
}
