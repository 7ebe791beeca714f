// Package audio voices the pulse-sweep boundary with a short shaped sine
// blip. Audio is strictly optional: every failure path leaves the visual
// running.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/pulse-sphere/parameter"
)

const sampleRate = beep.SampleRate(44100)

// Cue owns speaker state for the sweep blip.
type Cue struct {
	mu          sync.Mutex
	initialized bool
}

// NewCue returns an uninitialized cue; call Init before Pulse.
func NewCue() *Cue {
	return &Cue{}
}

// Init opens the speaker. Returns the speaker error so the host can log it
// and keep running silent.
func (c *Cue) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	c.initialized = true
	return nil
}

// Pulse plays one blip. No-op before Init or after a failed Init.
func (c *Cue) Pulse() {
	c.mu.Lock()
	ok := c.initialized
	c.mu.Unlock()
	if !ok {
		return
	}
	speaker.Play(newBlip(parameter.PulseToneHz, parameter.PulseToneDur))
}

// Close shuts the speaker down.
func (c *Cue) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		speaker.Close()
		c.initialized = false
	}
}

// blip is a sine oscillator with a linear attack/release envelope baked in.
type blip struct {
	freq     float64
	phase    float64
	position int
	total    int
	attack   int
	release  int
}

func newBlip(freq float64, dur time.Duration) beep.Streamer {
	return &blip{
		freq:    freq,
		total:   sampleRate.N(dur),
		attack:  sampleRate.N(parameter.PulseToneAttack),
		release: sampleRate.N(parameter.PulseToneRelease),
	}
}

func (b *blip) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.position >= b.total {
			return i, false
		}

		val := math.Sin(2*math.Pi*b.phase) * parameter.PulseToneGain

		// Envelope: ramp in over attack, ramp out over the release tail.
		if b.position < b.attack {
			val *= float64(b.position) / float64(b.attack)
		} else if rem := b.total - b.position; rem < b.release {
			val *= float64(rem) / float64(b.release)
		}

		samples[i][0] = val
		samples[i][1] = val

		b.phase += b.freq / float64(sampleRate)
		b.phase -= math.Floor(b.phase) // Keep in [0, 1)
		b.position++
	}
	return len(samples), true
}

func (b *blip) Err() error { return nil }
