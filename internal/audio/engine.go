// Package audio synthesizes the game's sound effects with gopxl/beep.
// All sounds are generated procedurally; there are no sample assets.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	laserDurationMs     = 120
	explosionDurationMs = 350
	powerupDurationMs   = 250
)

// Engine mixes the short one-shot effects triggered by the simulation.
// It satisfies the simulation's cue interface and degrades to silence
// when the speaker cannot be initialized or the engine is muted.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewEngine creates an uninitialized engine. Cue calls before Initialize
// are safe no-ops.
func NewEngine() *Engine {
	return &Engine{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer. Calling it again
// after success is a no-op.
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Cleanup drops all active streamers. The speaker itself cannot be
// closed by beep; an empty mixer is the quiescent state.
func (e *Engine) Cleanup() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	e.mixer.Clear()
	e.initialized = false
}

// SetMuted silences the engine without tearing down the speaker.
func (e *Engine) SetMuted(muted bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = muted
}

// Laser plays the ship's firing chirp.
func (e *Engine) Laser() {
	e.play(laserDurationMs, NewLaserGenerator(sampleRate))
}

// Explosion plays the hazard destruction rumble.
func (e *Engine) Explosion() {
	e.play(explosionDurationMs, NewExplosionGenerator(sampleRate))
}

// Powerup plays the pickup arpeggio.
func (e *Engine) Powerup() {
	e.play(powerupDurationMs, NewPowerupGenerator(sampleRate))
}

func (e *Engine) play(durationMs int, gen beep.Streamer) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized || e.muted {
		return
	}

	e.mixer.Add(beep.Take(sampleRate.N(time.Millisecond*time.Duration(durationMs)), gen))
}

// LaserGenerator sweeps a sine from high to low pitch, the classic
// descending pew.
type LaserGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewLaserGenerator creates a laser chirp generator.
func NewLaserGenerator(sr beep.SampleRate) *LaserGenerator {
	return &LaserGenerator{sr: sr}
}

func (g *LaserGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	total := float64(g.sr.N(time.Millisecond * laserDurationMs))
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := math.Min(float64(g.pos)/total, 1.0)

		// Pitch falls from 880Hz to 220Hz over the chirp
		freq := 880 - 660*progress
		envelope := 1.0 - progress

		sample := 0.2 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *LaserGenerator) Err() error {
	return nil
}

// ExplosionGenerator mixes filtered noise with a low rumble under an
// exponential decay.
type ExplosionGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewExplosionGenerator creates an explosion sound generator.
func NewExplosionGenerator(sr beep.SampleRate) *ExplosionGenerator {
	return &ExplosionGenerator{
		sr:   sr,
		seed: time.Now().UnixNano(),
	}
}

func (g *ExplosionGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 10)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.35 * math.Sin(2*math.Pi*55*t)

		sample := envelope * (0.3*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ExplosionGenerator) Err() error {
	return nil
}

// PowerupGenerator steps through a rising three-note arpeggio.
type PowerupGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewPowerupGenerator creates a pickup arpeggio generator.
func NewPowerupGenerator(sr beep.SampleRate) *PowerupGenerator {
	return &PowerupGenerator{sr: sr}
}

var powerupNotes = [3]float64{440, 554.37, 659.25} // A4, C#5, E5

func (g *PowerupGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	noteLen := g.sr.N(time.Millisecond * powerupDurationMs / 3)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		note := g.pos / noteLen
		if note > 2 {
			note = 2
		}
		freq := powerupNotes[note]

		// Short per-note envelope keeps the steps distinct
		notePos := float64(g.pos%noteLen) / float64(noteLen)
		envelope := 1.0 - notePos*0.6

		sample := 0.18 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PowerupGenerator) Err() error {
	return nil
}
