package sim

import "github.com/dmarkhas/novafall/internal/core"

// Snapshot is the read-only view of the simulation handed to the render
// collaborator each frame. All slices are fresh copies: the collections
// contain only live entities at the moment of exposure, and the renderer
// can never mutate simulation state through them.
type Snapshot struct {
	Status  Status
	Score   float64
	Best    float64
	Level   int
	Combo   int
	Elapsed float64

	Shields    float64
	ShieldsMax float64
	Energy     float64
	EnergyMax  float64
	Nova       float64
	NovaMax    float64

	Player   PlayerView
	Hazards  []HazardView
	Shots    []ShotView
	PowerUps []PowerUpView
	Pieces   []ParticleView
	Pulses   []PulseView
}

// PlayerView is the renderable player state.
type PlayerView struct {
	Pos          core.Vec2
	Radius       float64
	Invulnerable bool
}

// HazardView is the renderable hazard state.
type HazardView struct {
	Kind     HazardKind
	Pos      core.Vec2
	Size     float64
	Rotation float64
}

// ShotView is the renderable projectile state.
type ShotView struct {
	Pos     core.Vec2
	Hostile bool
}

// PowerUpView is the renderable power-up state.
type PowerUpView struct {
	Kind PowerUpKind
	Pos  core.Vec2
}

// ParticleView is the renderable particle state.
type ParticleView struct {
	Pos   core.Vec2
	Alpha float64
	Color core.Color
}

// PulseView is the renderable nova pulse state.
type PulseView struct {
	Origin core.Vec2
	Radius float64
}

// Snapshot captures the current simulation state for rendering.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Status:  g.status,
		Score:   g.score,
		Best:    g.best,
		Level:   g.level,
		Combo:   g.player.Combo,
		Elapsed: g.elapsed,

		Shields:    g.shields,
		ShieldsMax: g.cfg.Shields.Max,
		Energy:     g.player.Energy,
		EnergyMax:  g.cfg.Player.EnergyMax,
		Nova:       g.player.Nova,
		NovaMax:    g.cfg.Nova.ChargeMax,

		Player: PlayerView{
			Pos:          g.player.Pos,
			Radius:       g.player.Radius,
			Invulnerable: g.player.Invuln > 0,
		},
	}

	snap.Hazards = make([]HazardView, len(g.hazards))
	for i, h := range g.hazards {
		snap.Hazards[i] = HazardView{Kind: h.Kind, Pos: h.Pos, Size: h.Size, Rotation: h.Rotation}
	}

	snap.Shots = make([]ShotView, 0, len(g.friendlyShots)+len(g.hostileShots))
	for _, p := range g.friendlyShots {
		snap.Shots = append(snap.Shots, ShotView{Pos: p.Pos})
	}
	for _, p := range g.hostileShots {
		snap.Shots = append(snap.Shots, ShotView{Pos: p.Pos, Hostile: true})
	}

	snap.PowerUps = make([]PowerUpView, len(g.powerups))
	for i, p := range g.powerups {
		snap.PowerUps[i] = PowerUpView{Kind: p.Kind, Pos: p.Pos}
	}

	snap.Pieces = make([]ParticleView, len(g.particles))
	for i, p := range g.particles {
		snap.Pieces[i] = ParticleView{Pos: p.Pos, Alpha: p.Alpha(), Color: p.Color}
	}

	snap.Pulses = make([]PulseView, len(g.pulses))
	for i, n := range g.pulses {
		snap.Pulses[i] = PulseView{Origin: n.Origin, Radius: n.Radius}
	}

	return snap
}
