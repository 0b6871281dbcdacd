package entity

import (
	"testing"

	"go-balloon-defense/internal/component"
	"go-balloon-defense/internal/config"
	"go-balloon-defense/pkg/utils"
)

func TestNewWorldInitialState(t *testing.T) {
	cfg := config.Default()
	w := NewWorld(cfg, SpriteInfo{BackgroundSize: utils.Vec2{X: 10, Y: 5}})

	if w.Coins != 30 || w.Lives != 3 || w.GameOver || w.SpawnTimer != 0 {
		t.Errorf("unexpected initial economy: %+v", w)
	}
	if w.IsPlacingTower || w.PreviewTower != nil {
		t.Error("no placement at start")
	}
	if w.Sprites.BackgroundSize.X != 10 {
		t.Errorf("sprites not kept: %+v", w.Sprites)
	}
}

func TestResetIsIdempotentAndKeepsSprites(t *testing.T) {
	cfg := config.Default()
	sprites := SpriteInfo{BackgroundSize: utils.Vec2{X: 160, Y: 96}}
	w := NewWorld(cfg, sprites)
	w.Coins = 3
	w.Lives = -2
	w.GameOver = true
	w.SpawnTimer = 0.7
	w.BeginPlacement(utils.Vec2{X: 1})
	w.Balloons = append(w.Balloons, component.NewBalloon(cfg))
	w.Towers = append(w.Towers, component.NewTower(utils.Vec2{}))

	w.Reset(cfg)
	once := *w
	w.Reset(cfg)

	if w.Coins != once.Coins || w.Lives != once.Lives || w.GameOver != once.GameOver ||
		w.SpawnTimer != once.SpawnTimer || w.IsPlacingTower != once.IsPlacingTower ||
		len(w.Balloons) != len(once.Balloons) || len(w.Towers) != len(once.Towers) {
		t.Errorf("second reset changed state: %+v vs %+v", *w, once)
	}
	if w.Coins != 30 || w.Lives != 3 || w.GameOver || w.SpawnTimer != 0 {
		t.Errorf("reset economy wrong: coins=%d lives=%d over=%v timer=%v", w.Coins, w.Lives, w.GameOver, w.SpawnTimer)
	}
	if len(w.Balloons) != 0 || len(w.Towers) != 0 || w.PreviewTower != nil || w.IsPlacingTower {
		t.Error("reset must clear collections and placement")
	}
	if w.Sprites != sprites {
		t.Errorf("sprites lost on reset: %+v", w.Sprites)
	}
}

func TestPlacementLifecycle(t *testing.T) {
	cfg := config.Default()
	w := NewWorld(cfg, SpriteInfo{})

	w.BeginPlacement(utils.Vec2{X: 5, Y: 5})
	if !w.IsPlacingTower || w.PreviewTower == nil {
		t.Fatal("BeginPlacement must create preview")
	}
	preview := w.PreviewTower
	preview.Angle = 1

	w.BeginPlacement(utils.Vec2{X: 9, Y: 9})
	if w.PreviewTower != preview {
		t.Error("second BeginPlacement must keep the existing preview")
	}

	idx := w.CommitPlacement()
	if idx != 0 || w.Towers[0] != preview {
		t.Errorf("commit index = %d, towers = %v", idx, w.Towers)
	}
	if w.IsPlacingTower || w.PreviewTower != nil {
		t.Error("commit must end placement")
	}

	w.BeginPlacement(utils.Vec2{})
	w.CancelPlacement()
	if w.IsPlacingTower || w.PreviewTower != nil || len(w.Towers) != 1 {
		t.Error("cancel must drop preview only")
	}
}

func TestCanAfford(t *testing.T) {
	cfg := config.Default()
	w := NewWorld(cfg, SpriteInfo{})
	for _, tt := range []struct {
		coins uint
		want  bool
	}{{14, false}, {15, true}, {30, true}, {0, false}} {
		w.Coins = tt.coins
		if got := w.CanAfford(cfg); got != tt.want {
			t.Errorf("CanAfford with %d coins = %v, want %v", tt.coins, got, tt.want)
		}
	}
}
