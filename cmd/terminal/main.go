// cmd/terminal/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-balloon-defense/internal/app"
	"go-balloon-defense/internal/assets"
	"go-balloon-defense/internal/audio"
	"go-balloon-defense/internal/config"
	"go-balloon-defense/internal/input"
	"go-balloon-defense/internal/state"
	"go-balloon-defense/pkg/render"
	"go-balloon-defense/pkg/utils"
)

// terminalApp — та же игра, что и в окне, но в терминале через tcell.
type terminalApp struct {
	screen       tcell.Screen
	renderer     *render.TerminalRenderer
	collector    *input.TerminalCollector
	stateMachine *state.StateMachine
}

func newTerminalApp(cfg *config.Config, game *app.Game, fromMenu bool) (*terminalApp, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	area := utils.Vec2{X: cfg.PlayArea.Width, Y: cfg.PlayArea.Height}
	renderer := render.NewTerminalRenderer(screen, area)
	collector := input.NewTerminalCollector(renderer.FromCell)
	collector.SetPointer(area.Scale(0.5))

	sm := state.NewStateMachine()
	if fromMenu {
		sm.SetState(state.NewMenuState(sm, game))
	} else {
		sm.SetState(state.NewPlayState(sm, game))
	}

	return &terminalApp{
		screen:       screen,
		renderer:     renderer,
		collector:    collector,
		stateMachine: sm,
	}, nil
}

func (a *terminalApp) run() {
	ticker := time.NewTicker(time.Second / config.TerminalFrameRate)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	lastUpdate := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				a.renderer.Resize()
				a.screen.Sync()
				continue
			}
			if !a.collector.Handle(ev) {
				return
			}

		case now := <-ticker.C:
			deltaTime := now.Sub(lastUpdate).Seconds()
			if deltaTime > config.MaxDeltaTime {
				deltaTime = config.MaxDeltaTime
			}
			lastUpdate = now

			a.stateMachine.Update(deltaTime, a.collector.Snapshot())
			a.screen.Clear()
			a.stateMachine.Draw(a.renderer)
			a.screen.Show()
		}
	}
}

func main() {
	configPath := flag.String("config", "", "path to game config (YAML)")
	logPath := flag.String("log", "balloons.log", "log file; the terminal itself is used for drawing")
	fromMenu := flag.Bool("menu", false, "start from the menu screen instead of the game")
	volume := flag.Float64("volume", 0.5, "sound volume, 0 mutes")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Config: %v", err)
		}
		log.Printf("Loaded game config from %s", *configPath)
	}

	sprites, err := assets.LoadSprites(cfg.Assets)
	if err != nil {
		log.Fatalf("Sprites: %v", err)
	}
	game := app.NewGame(cfg, sprites.Info())

	sound := audio.NewSoundManager(*volume)
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()
	sound.Subscribe(game.EventDispatcher)

	ta, err := newTerminalApp(cfg, game, *fromMenu)
	if err != nil {
		log.Fatalf("Terminal: %v", err)
	}
	defer ta.screen.Fini()

	ta.run()
}
