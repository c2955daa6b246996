package sim

import (
	"math"

	"github.com/dmarkhas/novafall/internal/core"
)

// maybeSpawnHazard introduces at most one new hazard per call, once the
// countdown timer reaches zero. It never spawns outside the running state.
func (g *Game) maybeSpawnHazard() {
	if g.status != StatusRunning || g.spawnTimer > 0 {
		return
	}

	roll := g.rng.Float64()
	if g.level >= g.cfg.Spawning.RaiderMinLevel && roll > g.cfg.Spawning.RaiderThreshold {
		g.hazards = append(g.hazards, g.newRaider())
	} else {
		g.hazards = append(g.hazards, g.newAsteroid())
	}

	g.resetSpawnTimer()
}

// resetSpawnTimer rearms the countdown. The interval shrinks with level and
// carries a random jitter so waves never fall into lockstep.
func (g *Game) resetSpawnTimer() {
	interval := math.Max(g.cfg.Spawning.MinInterval,
		g.spawnBase-float64(g.level)*g.cfg.Spawning.LevelAccel)
	g.spawnTimer = interval + g.rng.Float64()*g.cfg.Spawning.Jitter
}

// spawnX picks a horizontal spawn position inside the play area, keeping an
// edge margin on both sides so hazards never appear flush against a wall.
func (g *Game) spawnX() float64 {
	margin := g.cfg.Spawning.EdgeMargin
	if g.bounds.W <= 2*margin {
		return g.bounds.W / 2
	}
	return g.rng.Range(margin, g.bounds.W-margin)
}

func (g *Game) newAsteroid() *Hazard {
	cfg := &g.cfg.Hazards.Asteroid
	size := g.rng.Range(cfg.MinSize, cfg.MaxSize)

	health := math.Ceil(size / cfg.HealthDivisor)
	if health < 1 {
		health = 1
	}

	return &Hazard{
		Kind:     HazardAsteroid,
		Pos:      core.Vec2{X: g.spawnX(), Y: -size / 2},
		Size:     size,
		Speed:    cfg.SpeedBase + g.rng.Float64()*cfg.SpeedRand + float64(g.level)*cfg.SpeedPerLevel,
		Health:   health,
		Drift:    g.rng.Range(-cfg.DriftMax, cfg.DriftMax),
		Rotation: g.rng.Range(0, 2*math.Pi),
		Spin:     g.rng.Range(-cfg.SpinMax, cfg.SpinMax),
	}
}

func (g *Game) newRaider() *Hazard {
	cfg := &g.cfg.Hazards.Raider
	size := g.rng.Range(cfg.MinSize, cfg.MaxSize)

	return &Hazard{
		Kind:         HazardRaider,
		Pos:          core.Vec2{X: g.spawnX(), Y: -size / 2},
		Size:         size,
		Speed:        cfg.SpeedBase + g.rng.Float64()*cfg.SpeedRand + float64(g.level)*cfg.SpeedPerLevel,
		Health:       cfg.HealthBase + float64(g.level)*cfg.HealthPerLevel,
		Drift:        g.rng.Range(-cfg.DriftMax, cfg.DriftMax),
		FireCooldown: cfg.FireBase + g.rng.Float64()*cfg.FireRand,
	}
}
