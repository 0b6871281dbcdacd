// internal/system/placement.go
package system

import (
	"go-balloon-defense/internal/config"
	"go-balloon-defense/internal/entity"
	"go-balloon-defense/internal/event"
	"go-balloon-defense/internal/input"
	"go-balloon-defense/pkg/render"
)

// PlacementSystem ведёт башню-превью: старт, поворот, привязка к курсору, покупка.
type PlacementSystem struct {
	world           *entity.World
	cfg             *config.Config
	eventDispatcher *event.Dispatcher
}

func NewPlacementSystem(world *entity.World, cfg *config.Config, eventDispatcher *event.Dispatcher) *PlacementSystem {
	return &PlacementSystem{world: world, cfg: cfg, eventDispatcher: eventDispatcher}
}

func (s *PlacementSystem) Update(deltaTime float64, in input.Snapshot, r render.Renderer) {
	w := s.world
	if in.CancelTowerPlacement {
		w.CancelPlacement()
	}
	if in.StartTowerPlacement {
		w.BeginPlacement(in.Pointer)
	}
	if !w.IsPlacingTower {
		return
	}

	preview := w.PreviewTower
	step := s.cfg.Tower.RotationSpeed * deltaTime
	if in.RotateClockwise {
		preview.Rotate(step)
	}
	if in.RotateCounterClockwise {
		preview.Rotate(-step)
	}
	preview.Position = in.Pointer

	affordable := w.CanAfford(s.cfg)
	DrawTower(r, s.cfg, preview, !affordable)

	if in.ConfirmTowerPlacement && affordable {
		w.Coins -= s.cfg.Economy.TowerCost
		idx := w.CommitPlacement()
		tower := w.Towers[idx]
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.TowerPlaced,
			Data: event.TowerData{TowerIndex: idx, Position: tower.Position, Level: tower.Level},
		})
	}
}
