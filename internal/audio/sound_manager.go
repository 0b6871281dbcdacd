package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"go-balloon-defense/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// note — один тон в звуковом эффекте
type note struct {
	freq     float64
	duration time.Duration
}

// cues — короткие звуки на игровые события
var cues = map[event.EventType][]note{
	event.BalloonPopped:  {{880, 50 * time.Millisecond}},
	event.BalloonEscaped: {{220, 150 * time.Millisecond}},
	event.TowerPlaced:    {{440, 60 * time.Millisecond}},
	event.TowerLevelUp:   {{660, 80 * time.Millisecond}, {990, 120 * time.Millisecond}},
	event.GameOver:       {{330, 200 * time.Millisecond}, {220, 200 * time.Millisecond}, {110, 400 * time.Millisecond}},
}

// SoundManager озвучивает события игры через динамик beep.
// Без Initialize все вызовы молча ничего не делают.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64 // линейная громкость, 1 — без изменений
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize открывает устройство вывода. Ошибка не фатальна: игра идёт без звука.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Subscribe подписывает менеджер на все события, у которых есть звук.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	for t := range cues {
		d.Subscribe(sm, t)
	}
}

// OnEvent реализует интерфейс event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	streamer, err := Cue(e.Type, sm.volume)
	if err != nil || streamer == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Cue собирает звук для события. Для событий без звука возвращает nil.
func Cue(t event.EventType, volume float64) (beep.Streamer, error) {
	notes, ok := cues[t]
	if !ok {
		return nil, nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s tone: %w", t, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.duration), tone))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
