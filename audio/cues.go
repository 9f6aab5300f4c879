package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/infiniworld/apocalypse-bunny/event"
)

const sampleRate = beep.SampleRate(44100)

// Cues subscribes to gameplay events and plays a matching short tone for
// each. Playback is fire-and-forget: speaker.Play never blocks Pump.
type Cues struct {
	bus     *event.Bus
	enabled bool
	volume  float64
}

// NewCues initializes the speaker backend (best-effort: a failure disables
// audio rather than aborting the game) and registers for the events that
// have a sound.
func NewCues(bus *event.Bus, enabled bool, volume float64) *Cues {
	c := &Cues{bus: bus, volume: volume}
	if enabled {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err == nil {
			c.enabled = true
		}
	}
	event.Register(bus, c)
	return c
}

func (c *Cues) play(freq float64, wave WaveType, duration time.Duration) {
	if !c.enabled {
		return
	}
	tone := NewOscillator(freq, duration, wave, sampleRate)
	shaped := NewEnvelope(tone, duration, duration/10, duration/4, sampleRate)
	speaker.Play(newVolume(shaped, c.volume))
}

func (c *Cues) OnCarrot(_ event.Carrot) {
	c.play(880, WaveSine, 120*time.Millisecond)
}

func (c *Cues) OnShockWave(_ event.ShockWave) {
	c.play(220, WaveSaw, 250*time.Millisecond)
}

func (c *Cues) OnHealth(ev event.Health) {
	c.play(440, WaveSquare, 80*time.Millisecond)
	_ = ev
}

func (c *Cues) OnCreatureDied(_ event.CreatureDied) {
	c.play(110, WaveNoise, 400*time.Millisecond)
}

func (c *Cues) OnGameOver(_ event.GameOver) {
	c.play(80, WaveSaw, 800*time.Millisecond)
}
