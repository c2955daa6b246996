// Package sim implements the novafall simulation core: the per-frame entity
// lifecycle (spawn, update, collide, score, retire) and the run state
// machine. It contains pure logic with no terminal, audio, or storage
// dependencies; collaborators plug in through narrow interfaces.
package sim

import (
	"math"

	"github.com/dmarkhas/novafall/internal/config"
	"github.com/dmarkhas/novafall/internal/core"
)

// Player is the ship controlled by the run. Exactly one instance exists;
// it persists across frames and is reset at run start.
type Player struct {
	Pos    core.Vec2
	Radius float64

	Energy       float64 // Boost fuel, [0, max]
	FireCooldown float64 // Seconds until the next ordinary shot
	Invuln       float64 // Seconds of remaining invulnerability
	Combo        int     // Kill streak, reset on hit or nova fire
	Nova         float64 // Nova charge, [0, max]
}

// HazardKind is the closed set of hazard variants.
type HazardKind int

const (
	HazardAsteroid HazardKind = iota
	HazardRaider
)

// String returns a human-readable name for the hazard kind.
func (k HazardKind) String() string {
	switch k {
	case HazardAsteroid:
		return "asteroid"
	case HazardRaider:
		return "raider"
	default:
		return "unknown"
	}
}

// Hazard is a falling threat. Created by the spawn director; destroyed on
// leaving the bottom bound, zero health, or player collision.
type Hazard struct {
	Kind   HazardKind
	Pos    core.Vec2
	Size   float64 // Diameter in world units
	Speed  float64 // Downward fall speed
	Health float64
	Drift  float64 // Fixed horizontal drift velocity

	// Asteroid only: cosmetic spin that also drives the lateral wobble.
	Rotation float64
	Spin     float64

	// Raider only: seconds until the next hostile shot.
	FireCooldown float64
}

// Radius returns the hazard's collision radius.
func (h *Hazard) Radius() float64 {
	return h.Size / 2
}

// Move advances the hazard by dt. Asteroids combine the downward fall with
// a sinusoidal horizontal wobble plus their fixed drift; raiders fall
// straight with drift and count down their fire cooldown.
func (h *Hazard) Move(dt float64, cfg *config.HazardTuning) {
	switch h.Kind {
	case HazardAsteroid:
		h.Rotation += h.Spin * dt
		wobble := math.Sin(h.Rotation*cfg.Asteroid.WobbleFreq) * cfg.Asteroid.WobbleAmp
		h.Pos.X += (h.Drift + wobble) * dt
		h.Pos.Y += h.Speed * dt
	case HazardRaider:
		h.Pos.X += h.Drift * dt
		h.Pos.Y += h.Speed * dt
		h.FireCooldown -= dt
	}
}

// Projectile is a shot in flight. Friendly shots originate from the player,
// hostile ones from raiders.
type Projectile struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Radius  float64
	Hostile bool
	Life    float64 // Remaining lifetime in seconds
}

// Move advances the projectile by dt.
func (p *Projectile) Move(dt float64) {
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Life -= dt
}

// Expired reports whether the projectile should be retired: lifetime spent
// or fully outside the play area.
func (p *Projectile) Expired(b core.Bounds) bool {
	if p.Life <= 0 {
		return true
	}
	return p.Pos.X < -p.Radius || p.Pos.X > b.W+p.Radius ||
		p.Pos.Y < -p.Radius || p.Pos.Y > b.H+p.Radius
}

// PowerUpKind is the closed set of power-up variants.
type PowerUpKind int

const (
	PowerShield PowerUpKind = iota
	PowerNova
)

// String returns a human-readable name for the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerShield:
		return "shield"
	case PowerNova:
		return "nova"
	default:
		return "unknown"
	}
}

// PowerUp is a falling pickup spawned probabilistically on hazard
// destruction. Retired on leaving the bottom bound or player pickup.
type PowerUp struct {
	Kind   PowerUpKind
	Pos    core.Vec2
	Fall   float64 // Falling speed
	Radius float64
}

// Move advances the power-up by dt.
func (p *PowerUp) Move(dt float64) {
	p.Pos.Y += p.Fall * dt
}

// Particle is purely cosmetic debris; it never participates in collision.
type Particle struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Life    float64
	MaxLife float64
	Size    float64
	Color   core.Color
}

// Move advances the particle by dt, applying the per-frame drag factor
// scaled to the elapsed time.
func (p *Particle) Move(dt, drag float64) {
	decay := math.Pow(drag, dt*60)
	p.Vel = p.Vel.Scale(decay)
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Life -= dt
}

// Alpha returns the remaining life fraction for fade-out rendering.
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(p.Life/p.MaxLife, 0, 1)
}

// NovaPulse is an expanding area-of-effect ring that destroys every hazard
// it overlaps while alive.
type NovaPulse struct {
	Origin    core.Vec2
	Radius    float64
	MaxRadius float64
	Life      float64
}

// Move grows the pulse by dt.
func (n *NovaPulse) Move(dt, growth float64) {
	n.Radius += growth * dt
	n.Life -= dt
}

// Expired reports whether the pulse is finished.
func (n *NovaPulse) Expired() bool {
	return n.Life <= 0 || n.Radius > n.MaxRadius
}
