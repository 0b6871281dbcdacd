// internal/app/game.go
package app

import (
	"go-balloon-defense/internal/config"
	"go-balloon-defense/internal/entity"
	"go-balloon-defense/internal/event"
	"go-balloon-defense/internal/input"
	"go-balloon-defense/internal/system"
	"go-balloon-defense/pkg/render"
)

// Game holds the world and runs the per-frame pipeline over it.
type Game struct {
	Config          *config.Config
	World           *entity.World
	EventDispatcher *event.Dispatcher

	PlacementSystem *system.PlacementSystem
	SpawnSystem     *system.SpawnSystem
	MovementSystem  *system.MovementSystem
	FiringSystem    *system.FiringSystem
	CollisionSystem *system.CollisionSystem
	EscapeSystem    *system.EscapeSystem
	RenderSystem    *system.RenderSystem
}

// NewGame creates a game in the Playing phase with the starting economy.
func NewGame(cfg *config.Config, sprites entity.SpriteInfo) *Game {
	if cfg == nil {
		panic("config cannot be nil")
	}

	world := entity.NewWorld(cfg, sprites)
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Config:          cfg,
		World:           world,
		EventDispatcher: eventDispatcher,
		PlacementSystem: system.NewPlacementSystem(world, cfg, eventDispatcher),
		SpawnSystem:     system.NewSpawnSystem(world, cfg, eventDispatcher),
		MovementSystem:  system.NewMovementSystem(world, cfg),
		FiringSystem:    system.NewFiringSystem(world, cfg),
		CollisionSystem: system.NewCollisionSystem(world, cfg, eventDispatcher),
		EscapeSystem:    system.NewEscapeSystem(world, cfg, eventDispatcher),
		RenderSystem:    system.NewRenderSystem(world, cfg),
	}

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(listener,
		event.TowerPlaced, event.TowerLevelUp, event.GameOver, event.GameReset)

	return g
}

// Advance runs one frame. Draw requests go to r as the stages run, so the
// order of commands is the order of the stages.
func (g *Game) Advance(deltaTime float64, in input.Snapshot, r render.Renderer) {
	if deltaTime < 0 {
		deltaTime = 0
	}

	if g.World.GameOver {
		g.RenderSystem.DrawGameOver(r)
		if in.Reset {
			g.Reset()
		}
		return
	}

	g.World.GameTime += deltaTime
	g.RenderSystem.DrawBackground(r)

	g.PlacementSystem.Update(deltaTime, in, r)
	g.SpawnSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.RenderSystem.DrawBalloons(r)
	g.FiringSystem.Update(deltaTime)
	g.RenderSystem.DrawTowers(r)
	g.CollisionSystem.ResolveCollisions()
	g.CollisionSystem.Cleanup()
	g.EscapeSystem.Update()
	g.EscapeSystem.RemoveInactive()
	g.RenderSystem.DrawStats(r)

	// отладка: L сразу завершает игру
	if in.ForceGameOver {
		g.EscapeSystem.SetGameOver()
	}
}

// Reset returns the world to the starting constants.
func (g *Game) Reset() {
	g.World.Reset(g.Config)
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameReset})
}

// IsGameOver reports the current phase.
func (g *Game) IsGameOver() bool {
	return g.World.GameOver
}
