package sim

import (
	"math"

	"github.com/dmarkhas/novafall/internal/config"
	"github.com/dmarkhas/novafall/internal/core"
)

// MaxFrameDelta caps the per-frame time step to absorb stalls and
// tab-switch-sized gaps between frames.
const MaxFrameDelta = 0.1

// Status is the run state.
type Status int

const (
	StatusStart    Status = iota // Idle, waiting for an explicit start
	StatusRunning                // Full simulation active
	StatusGameOver               // Frozen, final score recorded
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusStart:
		return "start"
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Cues is the audio collaborator interface. Calls are fire-and-forget,
// triggered synchronously; the simulation never awaits or checks them.
type Cues interface {
	Laser()
	Explosion()
	Powerup()
}

type nopCues struct{}

func (nopCues) Laser()     {}
func (nopCues) Explosion() {}
func (nopCues) Powerup()   {}

// Game is the simulation core: it owns all entity collections and mutates
// them exclusively inside Step. It is single-threaded and frame-driven.
type Game struct {
	cfg  config.Tuning
	rng  *core.RNG
	cues Cues

	status  Status
	score   float64
	best    float64
	shields float64
	level   int
	elapsed float64

	spawnTimer float64
	spawnBase  float64 // Base spawn interval; decays on level up

	player        Player
	hazards       []*Hazard
	friendlyShots []*Projectile
	hostileShots  []*Projectile
	powerups      []*PowerUp
	particles     []*Particle
	pulses        []*NovaPulse

	bounds core.Bounds
}

// New creates a game in the start state with the given tuning and seed.
func New(cfg config.Tuning, seed int64) *Game {
	g := &Game{
		cfg:    cfg,
		rng:    core.NewRNG(seed),
		cues:   nopCues{},
		bounds: core.BoundsForScreen(80, 24),
	}
	g.resetRun()
	g.status = StatusStart
	return g
}

// SetCues installs the audio collaborator. A nil value restores the no-op.
func (g *Game) SetCues(c Cues) {
	if c == nil {
		c = nopCues{}
	}
	g.cues = c
}

// SetBestScore seeds the best score from the persistence collaborator.
// Called once at run start by the platform.
func (g *Game) SetBestScore(v float64) {
	if v > g.best {
		g.best = v
	}
}

// Status returns the current run state.
func (g *Game) Status() Status {
	return g.status
}

// Score returns the current run score.
func (g *Game) Score() float64 {
	return g.score
}

// Start begins a run from the idle start state.
func (g *Game) Start() {
	if g.status != StatusStart {
		return
	}
	g.status = StatusRunning
}

// Restart fully resets all entity collections and progression fields and
// re-enters the running state directly. There is no game-over -> start
// transition in normal flow.
func (g *Game) Restart() {
	if g.status != StatusGameOver {
		return
	}
	g.resetRun()
	g.status = StatusRunning
}

// resetRun restores all run-owned state to initial values.
func (g *Game) resetRun() {
	g.score = 0
	g.shields = g.cfg.Shields.Start
	g.level = 1
	g.elapsed = 0
	g.spawnBase = g.cfg.Spawning.BaseInterval
	g.spawnTimer = g.spawnBase

	g.player = Player{
		Pos:    core.Vec2{X: g.bounds.W / 2, Y: g.bounds.H - 4*core.CellH},
		Radius: g.cfg.Player.Radius,
		Energy: g.cfg.Player.EnergyMax,
	}

	g.hazards = g.hazards[:0]
	g.friendlyShots = g.friendlyShots[:0]
	g.hostileShots = g.hostileShots[:0]
	g.powerups = g.powerups[:0]
	g.particles = g.particles[:0]
	g.pulses = g.pulses[:0]
}

// Step is the single per-frame entry point. dt is the elapsed time in
// seconds, clamped to MaxFrameDelta. bounds are the current play area in
// world units, owned by the render collaborator.
//
// When running, the tick sequences: input sampling, player movement,
// spawning, level-up evaluation, fire handling, entity updates and pruning,
// the five collision passes, and the final shield clamp. In the start and
// game-over states nothing inside the simulation advances; only the
// platform's cosmetic background moves.
func (g *Game) Step(in *core.Input, bounds core.Bounds, dt float64) {
	if dt < 0 {
		dt = 0
	}
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}
	if bounds.W > 0 && bounds.H > 0 {
		g.bounds = bounds
	}

	if g.status != StatusRunning {
		return
	}

	in.Sanitize()

	g.elapsed += dt
	g.spawnTimer -= dt

	g.updatePlayer(in, dt)
	g.maybeSpawnHazard()
	g.checkLevelUp()
	g.handleFire(in)
	g.updateProjectiles(dt)
	g.updateHazards(dt)
	g.updatePowerUps(dt)
	g.updateParticles(dt)
	g.updatePulses(dt)
	g.resolveCollisions()

	if g.shields < 0 {
		g.shields = 0
	}
}

// updatePlayer applies the input snapshot to movement, boost energy,
// and countdown timers, and clamps the ship inside the bounds.
func (g *Game) updatePlayer(in *core.Input, dt float64) {
	p := &g.player
	cfg := &g.cfg.Player

	speed := cfg.Speed
	boosting := in.Boost && p.Energy > 0
	if boosting {
		speed = cfg.BoostSpeed
		p.Energy -= cfg.EnergyDrain * dt
	} else {
		p.Energy += cfg.EnergyRegen * dt
	}
	p.Energy = core.ClampF(p.Energy, 0, cfg.EnergyMax)

	p.Pos.X += in.Horizontal * speed * dt
	p.Pos.Y += in.Vertical * speed * dt
	p.Pos.X = core.ClampF(p.Pos.X, p.Radius, g.bounds.W-p.Radius)
	p.Pos.Y = core.ClampF(p.Pos.Y, p.Radius, g.bounds.H-p.Radius)

	if p.FireCooldown > 0 {
		p.FireCooldown -= dt
	}
	if p.Invuln > 0 {
		p.Invuln -= dt
	}
}

// checkLevelUp advances the level at most once per tick; it is re-evaluated
// every tick until the level catches up with the score.
func (g *Game) checkLevelUp() {
	if g.score > float64(g.level)*g.cfg.Scoring.LevelStep {
		g.level++
		g.spawnBase = math.Max(g.cfg.Spawning.Floor, g.spawnBase*g.cfg.Spawning.Decay)
	}
}

// handleFire resolves a fire request into exactly one of {shot, nova},
// never both. A nova requires full charge and a fresh press; FirePressed is
// cleared only when a request is actually satisfied.
func (g *Game) handleFire(in *core.Input) {
	if !in.Fire && !in.FirePressed {
		return
	}

	if in.FirePressed && g.player.Nova >= g.cfg.Nova.ChargeMax {
		g.fireNova()
		in.FirePressed = false
		return
	}

	if g.player.FireCooldown <= 0 {
		g.fireShot()
		g.player.FireCooldown = g.cfg.Player.FireCooldown
		in.FirePressed = false
	}
}

// fireShot spawns a friendly projectile straight up from the ship.
func (g *Game) fireShot() {
	g.friendlyShots = append(g.friendlyShots, &Projectile{
		Pos:    core.Vec2{X: g.player.Pos.X, Y: g.player.Pos.Y - g.player.Radius},
		Vel:    core.Vec2{Y: -g.cfg.Weapons.ShotSpeed},
		Radius: g.cfg.Weapons.ShotRadius,
		Life:   g.cfg.Weapons.ShotLife,
	})
	g.cues.Laser()
}

// fireNova spends the full charge on an expanding pulse. Firing a nova
// resets the combo streak.
func (g *Game) fireNova() {
	g.pulses = append(g.pulses, &NovaPulse{
		Origin:    g.player.Pos,
		Radius:    g.player.Radius,
		MaxRadius: math.Hypot(g.bounds.W, g.bounds.H),
		Life:      g.cfg.Nova.Life,
	})
	g.player.Nova = 0
	g.player.Combo = 0
	g.cues.Explosion()
}

// updateProjectiles advances and prunes both projectile collections.
func (g *Game) updateProjectiles(dt float64) {
	g.friendlyShots = moveAndPruneShots(g.friendlyShots, dt, g.bounds)
	g.hostileShots = moveAndPruneShots(g.hostileShots, dt, g.bounds)
}

func moveAndPruneShots(shots []*Projectile, dt float64, b core.Bounds) []*Projectile {
	kept := shots[:0]
	for _, p := range shots {
		p.Move(dt)
		if !p.Expired(b) {
			kept = append(kept, p)
		}
	}
	return kept
}

// updateHazards advances all hazards, collects raider fire, and prunes
// hazards that left the bottom bound.
func (g *Game) updateHazards(dt float64) {
	kept := g.hazards[:0]
	for _, h := range g.hazards {
		h.Move(dt, &g.cfg.Hazards)

		if h.Kind == HazardRaider && h.FireCooldown <= 0 {
			g.spawnHostileShot(h)
			h.FireCooldown = g.cfg.Hazards.Raider.FireBase +
				g.rng.Float64()*g.cfg.Hazards.Raider.FireRand
		}

		if h.Pos.Y-h.Radius() > g.bounds.H {
			continue
		}
		kept = append(kept, h)
	}
	g.hazards = kept
}

// spawnHostileShot fires a raider shot aimed at the player's current
// position.
func (g *Game) spawnHostileShot(h *Hazard) {
	dir := g.player.Pos.Sub(h.Pos).Normalized()
	if dir.Len() == 0 {
		dir = core.Vec2{Y: 1}
	}
	g.hostileShots = append(g.hostileShots, &Projectile{
		Pos:     h.Pos,
		Vel:     dir.Scale(g.cfg.Weapons.HostileShotSpeed),
		Radius:  g.cfg.Weapons.HostileShotRadius,
		Hostile: true,
		Life:    g.cfg.Weapons.HostileShotLife,
	})
}

// updatePowerUps advances pickups and prunes ones below the bottom bound.
func (g *Game) updatePowerUps(dt float64) {
	kept := g.powerups[:0]
	for _, p := range g.powerups {
		p.Move(dt)
		if p.Pos.Y-p.Radius > g.bounds.H {
			continue
		}
		kept = append(kept, p)
	}
	g.powerups = kept
}

// updateParticles advances cosmetic debris and retires spent particles.
func (g *Game) updateParticles(dt float64) {
	kept := g.particles[:0]
	for _, p := range g.particles {
		p.Move(dt, g.cfg.Particles.Drag)
		if p.Life <= 0 {
			continue
		}
		kept = append(kept, p)
	}
	g.particles = kept
}

// updatePulses grows nova pulses and retires expired ones.
func (g *Game) updatePulses(dt float64) {
	kept := g.pulses[:0]
	for _, n := range g.pulses {
		n.Move(dt, g.cfg.Nova.Growth)
		if n.Expired() {
			continue
		}
		kept = append(kept, n)
	}
	g.pulses = kept
}

// spawnBurst emits a cosmetic particle burst at the given position.
func (g *Game) spawnBurst(pos core.Vec2, count int, c core.Color) {
	for i := 0; i < count; i++ {
		angle := g.rng.Range(0, 2*math.Pi)
		speed := g.rng.Range(40, 220)
		life := g.rng.Range(g.cfg.Particles.MinLife, g.cfg.Particles.MaxLife)
		g.particles = append(g.particles, &Particle{
			Pos:     pos,
			Vel:     core.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Life:    life,
			MaxLife: life,
			Size:    g.rng.Range(1, 3),
			Color:   c,
		})
	}
}
