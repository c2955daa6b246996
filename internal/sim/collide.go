package sim

import (
	"github.com/dmarkhas/novafall/internal/core"
)

// circleHit reports whether two circular entities overlap.
func circleHit(a, b core.Vec2, ra, rb float64) bool {
	return core.Dist(a, b) < ra+rb
}

// resolveCollisions runs the five collision passes in fixed order. The
// order matters: each pass may remove entities the next pass would
// otherwise also test. In particular the nova pass runs before the
// friendly-shot pass, so a hazard destroyed by a pulse is already absent
// when projectiles are scanned and cannot be double-counted.
func (g *Game) resolveCollisions() {
	g.collideHostileShotsPlayer()
	g.collideHazardsPlayer()
	g.collidePowerUpsPlayer()
	g.collidePulsesHazards()
	g.collideFriendlyShotsHazards()
}

// Pass 1: hostile projectiles vs. player.
func (g *Game) collideHostileShotsPlayer() {
	kept := g.hostileShots[:0]
	for _, p := range g.hostileShots {
		if circleHit(p.Pos, g.player.Pos, p.Radius, g.player.Radius) {
			g.damagePlayer(g.cfg.Weapons.HostileDamage)
			continue
		}
		kept = append(kept, p)
	}
	g.hostileShots = kept
}

// Pass 2: hazards vs. player. The hazard is consumed by the impact: it is
// removed with a particle burst but awards no score.
func (g *Game) collideHazardsPlayer() {
	kept := g.hazards[:0]
	for _, h := range g.hazards {
		if circleHit(h.Pos, g.player.Pos, h.Radius(), g.player.Radius) {
			damage := g.cfg.Hazards.Asteroid.Damage
			if h.Kind == HazardRaider {
				damage = g.cfg.Hazards.Raider.Damage
			}
			g.damagePlayer(damage)
			g.spawnBurst(h.Pos, g.burstCount(h.Kind), hazardBurstColor(h.Kind))
			continue
		}
		kept = append(kept, h)
	}
	g.hazards = kept
}

// Pass 3: power-ups vs. player.
func (g *Game) collidePowerUpsPlayer() {
	kept := g.powerups[:0]
	for _, p := range g.powerups {
		if circleHit(p.Pos, g.player.Pos, p.Radius, g.player.Radius) {
			g.applyPowerUp(p.Kind)
			continue
		}
		kept = append(kept, p)
	}
	g.powerups = kept
}

func (g *Game) applyPowerUp(kind PowerUpKind) {
	switch kind {
	case PowerShield:
		g.shields = core.ClampF(g.shields+g.cfg.Shields.PickupRestore, 0, g.cfg.Shields.Max)
	case PowerNova:
		g.player.Nova = g.cfg.Nova.ChargeMax
	}
	g.cues.Powerup()
}

// Pass 4: nova pulses vs. every hazard. Area kills use the nova multiplier
// and the shared destruction routine.
func (g *Game) collidePulsesHazards() {
	for _, n := range g.pulses {
		kept := g.hazards[:0]
		for _, h := range g.hazards {
			if circleHit(n.Origin, h.Pos, n.Radius, h.Radius()) {
				g.destroyHazard(h, g.cfg.Nova.Multiplier)
				continue
			}
			kept = append(kept, h)
		}
		g.hazards = kept
	}
}

// Pass 5: friendly projectiles vs. hazards. Each projectile affects only
// the first hazard it matches; a depleted hazard is destroyed with the
// combo-scaled multiplier evaluated at the moment of the kill.
func (g *Game) collideFriendlyShotsHazards() {
	keptShots := g.friendlyShots[:0]
	for _, p := range g.friendlyShots {
		hit := false
		for i, h := range g.hazards {
			if !circleHit(p.Pos, h.Pos, p.Radius, h.Radius()) {
				continue
			}
			hit = true
			h.Health--
			if h.Health <= 0 {
				mult := 1 + float64(g.player.Combo)*g.cfg.Scoring.ComboBonus
				g.destroyHazard(h, mult)
				g.hazards = append(g.hazards[:i], g.hazards[i+1:]...)
			}
			break
		}
		if !hit {
			keptShots = append(keptShots, p)
		}
	}
	g.friendlyShots = keptShots
}

// destroyHazard is the shared destruction routine: score award, combo and
// nova-charge gain, particle burst, power-up drop roll, and the audio cue.
// The caller removes the hazard from its collection.
func (g *Game) destroyHazard(h *Hazard, multiplier float64) {
	base := g.cfg.Scoring.AsteroidPoints
	charge := g.cfg.Nova.ChargeAsteroid
	drop := g.cfg.PowerUps.DropAsteroid
	if h.Kind == HazardRaider {
		base = g.cfg.Scoring.RaiderPoints
		charge = g.cfg.Nova.ChargeRaider
		drop = g.cfg.PowerUps.DropRaider
	}

	g.score += base * multiplier
	g.player.Combo++
	g.player.Nova = core.ClampF(g.player.Nova+charge, 0, g.cfg.Nova.ChargeMax)
	g.spawnBurst(h.Pos, g.burstCount(h.Kind), hazardBurstColor(h.Kind))

	if g.rng.Float64() < drop {
		g.dropPowerUp(h.Pos)
	}

	g.cues.Explosion()
}

// dropPowerUp spawns a pickup at the destroyed hazard's location.
func (g *Game) dropPowerUp(pos core.Vec2) {
	kind := PowerNova
	if g.rng.Float64() < g.cfg.PowerUps.ShieldWeight {
		kind = PowerShield
	}
	g.powerups = append(g.powerups, &PowerUp{
		Kind:   kind,
		Pos:    pos,
		Fall:   g.cfg.PowerUps.FallBase + g.rng.Float64()*g.cfg.PowerUps.FallRand,
		Radius: g.cfg.PowerUps.Radius,
	})
}

// damagePlayer applies shield damage unless the invulnerability window is
// open. A landed hit resets the combo, drains nova charge, and opens a new
// invulnerability window; shields reaching zero end the run.
func (g *Game) damagePlayer(amount float64) {
	if g.player.Invuln > 0 {
		return
	}

	g.shields -= amount
	g.player.Invuln = g.cfg.Player.InvulnTime
	g.player.Combo = 0
	g.player.Nova = core.ClampF(g.player.Nova-g.cfg.Nova.DrainOnHit, 0, g.cfg.Nova.ChargeMax)

	if g.shields <= 0 {
		g.shields = 0
		g.endRun()
	}
}

// endRun transitions running -> gameover exactly once and locks in the
// final score. Best-score persistence is the platform's job; the recorded
// score never decreases afterwards because the simulation is frozen.
func (g *Game) endRun() {
	if g.status != StatusRunning {
		return
	}
	g.status = StatusGameOver
	if g.score > g.best {
		g.best = g.score
	}
}

func (g *Game) burstCount(kind HazardKind) int {
	if kind == HazardRaider {
		return g.cfg.Particles.BurstRaider
	}
	return g.cfg.Particles.BurstAsteroid
}

func hazardBurstColor(kind HazardKind) core.Color {
	if kind == HazardRaider {
		return core.ColorBrightMagenta
	}
	return core.ColorOrange
}
