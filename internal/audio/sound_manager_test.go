package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"go-balloon-defense/internal/event"
)

// drain дочитывает поток до конца и возвращает число сэмплов.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			}
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
}

func TestCueLength(t *testing.T) {
	tests := []struct {
		event event.EventType
		want  time.Duration
	}{
		{event.BalloonPopped, 50 * time.Millisecond},
		{event.BalloonEscaped, 150 * time.Millisecond},
		{event.TowerLevelUp, 200 * time.Millisecond},
		{event.GameOver, 800 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(string(tt.event), func(t *testing.T) {
			s, err := Cue(tt.event, 1)
			if err != nil || s == nil {
				t.Fatalf("Cue(%s) = %v, %v", tt.event, s, err)
			}
			n, _ := drain(t, s)
			var want int
			for _, note := range cues[tt.event] {
				want += sampleRate.N(note.duration)
			}
			if n != want {
				t.Errorf("samples = %d, want %d", n, want)
			}
			if diff := n - sampleRate.N(tt.want); diff < -len(cues[tt.event]) || diff > len(cues[tt.event]) {
				t.Errorf("length %d far from %v", n, tt.want)
			}
		})
	}
}

func TestCueSilentEvents(t *testing.T) {
	s, err := Cue(event.BalloonSpawned, 1)
	if err != nil || s != nil {
		t.Errorf("spawn should have no sound, got %v, %v", s, err)
	}
}

func TestCueVolume(t *testing.T) {
	loud, _ := Cue(event.BalloonPopped, 1)
	quiet, _ := Cue(event.BalloonPopped, 0.25)
	muted, _ := Cue(event.BalloonPopped, 0)

	_, loudPeak := drain(t, loud)
	_, quietPeak := drain(t, quiet)
	_, mutedPeak := drain(t, muted)

	if quietPeak >= loudPeak {
		t.Errorf("quiet peak %v should be below loud %v", quietPeak, loudPeak)
	}
	if mutedPeak != 0 {
		t.Errorf("muted peak = %v", mutedPeak)
	}
}

func TestUninitializedManagerIgnoresEvents(t *testing.T) {
	sm := NewSoundManager(1)
	d := event.NewDispatcher()
	sm.Subscribe(d)

	d.Dispatch(event.Event{Type: event.BalloonPopped})
	sm.Cleanup()
}
