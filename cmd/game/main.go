// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-balloon-defense/internal/app"
	"go-balloon-defense/internal/assets"
	"go-balloon-defense/internal/audio"
	"go-balloon-defense/internal/config"
	"go-balloon-defense/internal/input"
	"go-balloon-defense/internal/state"
	"go-balloon-defense/pkg/render"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	renderer       *render.ScreenRenderer
	cfg            *config.Config
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime, input.PollEbiten())
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.renderer.Target(screen)
	a.stateMachine.Draw(a.renderer)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.cfg.PlayArea.Width), int(a.cfg.PlayArea.Height)
}

// loadConfig читает YAML, если путь задан, иначе берёт значения по умолчанию.
func loadConfig(path string) *config.Config {
	if path == "" {
		log.Println("Using default game config")
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Config: %v", err)
	}
	log.Printf("Loaded game config from %s", path)
	return cfg
}

func main() {
	configPath := flag.String("config", "", "path to game config (YAML)")
	pprofAddr := flag.String("pprof", "localhost:6060", "pprof listen address, empty to disable")
	fromMenu := flag.Bool("menu", false, "start from the menu screen instead of the game")
	volume := flag.Float64("volume", 0.5, "sound volume, 0 mutes")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	cfg := loadConfig(*configPath)
	sprites, err := assets.LoadSprites(cfg.Assets)
	if err != nil {
		log.Fatalf("Sprites: %v", err)
	}

	game := app.NewGame(cfg, sprites.Info())

	sound := audio.NewSoundManager(*volume)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()
	sound.Subscribe(game.EventDispatcher)

	sm := state.NewStateMachine()
	if *fromMenu {
		sm.SetState(state.NewMenuState(sm, game))
	} else {
		sm.SetState(state.NewPlayState(sm, game))
	}

	a := &AppGame{
		stateMachine:   sm,
		renderer:       render.NewScreenRenderer(sprites.ByKind()),
		cfg:            cfg,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(int(cfg.PlayArea.Width), int(cfg.PlayArea.Height))
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
