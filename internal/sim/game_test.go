package sim

import (
	"math"
	"testing"

	"github.com/dmarkhas/novafall/internal/config"
	"github.com/dmarkhas/novafall/internal/core"
)

func TestDeterminismSameSeed(t *testing.T) {
	run := func(seed int64) Snapshot {
		g := newRunningGame(seed)
		b := g.bounds
		for i := 0; i < 600; i++ {
			in := core.Input{Horizontal: math.Sin(float64(i) / 20), Fire: i%7 == 0}
			g.Step(&in, b, 1.0/60)
		}
		return g.Snapshot()
	}

	a, b := run(42), run(42)
	if a.Score != b.Score || a.Level != b.Level || a.Shields != b.Shields {
		t.Errorf("same seed diverged: score %f/%f level %d/%d shields %f/%f",
			a.Score, b.Score, a.Level, b.Level, a.Shields, b.Shields)
	}
	if len(a.Hazards) != len(b.Hazards) {
		t.Fatalf("hazard counts diverged: %d vs %d", len(a.Hazards), len(b.Hazards))
	}
	for i := range a.Hazards {
		if a.Hazards[i].Pos != b.Hazards[i].Pos {
			t.Fatalf("hazard %d position diverged", i)
		}
	}

	c := run(43)
	same := a.Score == c.Score && len(a.Hazards) == len(c.Hazards)
	if same {
		for i := range a.Hazards {
			if a.Hazards[i].Pos != c.Hazards[i].Pos {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical runs")
	}
}

func TestStartOnlyFromIdle(t *testing.T) {
	g := New(config.DefaultTuning(), 1)
	if g.Status() != StatusStart {
		t.Fatalf("new game status = %v, expected start", g.Status())
	}

	g.Start()
	if g.Status() != StatusRunning {
		t.Fatalf("status after Start = %v, expected running", g.Status())
	}

	g.score = 500
	g.Start() // No effect while running
	if g.score != 500 || g.Status() != StatusRunning {
		t.Error("Start while running must be a no-op")
	}
}

func TestRestartFullReset(t *testing.T) {
	g := newRunningGame(9)
	g.hazards = append(g.hazards, g.newAsteroid(), g.newRaider())
	g.friendlyShots = append(g.friendlyShots, &Projectile{Life: 1})
	g.hostileShots = append(g.hostileShots, &Projectile{Life: 1, Hostile: true})
	g.powerups = append(g.powerups, &PowerUp{Kind: PowerShield, Radius: 12})
	g.pulses = append(g.pulses, &NovaPulse{Radius: 10, MaxRadius: 100, Life: 0.5})
	g.spawnBurst(core.Vec2{X: 100, Y: 100}, 8, core.ColorOrange)
	g.score = 2000
	g.level = 4
	g.spawnBase = 1.1
	g.player.Combo = 6
	g.player.Nova = 80
	g.player.Invuln = 0
	g.shields = 5
	g.damagePlayer(45)

	if g.Status() != StatusGameOver {
		t.Fatal("expected game over")
	}

	g.Restart()

	if g.Status() != StatusRunning {
		t.Fatalf("status after Restart = %v, expected running", g.Status())
	}
	if g.score != 0 || g.level != 1 || g.player.Combo != 0 || g.player.Nova != 0 {
		t.Errorf("progression not reset: score=%f level=%d combo=%d nova=%f",
			g.score, g.level, g.player.Combo, g.player.Nova)
	}
	if g.shields != g.cfg.Shields.Start {
		t.Errorf("shields = %f, expected %f", g.shields, g.cfg.Shields.Start)
	}
	if len(g.hazards)+len(g.friendlyShots)+len(g.hostileShots)+
		len(g.powerups)+len(g.particles)+len(g.pulses) != 0 {
		t.Error("entity collections not emptied on restart")
	}
	if g.best != 2000 {
		t.Errorf("best = %f, restart must keep the best score", g.best)
	}
	if g.spawnBase != g.cfg.Spawning.BaseInterval {
		t.Errorf("spawn base = %f, expected %f", g.spawnBase, g.cfg.Spawning.BaseInterval)
	}
}

func TestRestartOnlyFromGameOver(t *testing.T) {
	g := newRunningGame(1)
	g.score = 300
	g.Restart()
	if g.score != 300 {
		t.Error("Restart while running must be a no-op")
	}
}

func TestFrameDeltaClamped(t *testing.T) {
	g := newRunningGame(1)
	in := core.Input{}

	g.Step(&in, g.bounds, 5.0) // A five second stall advances at most 0.1s
	if math.Abs(g.elapsed-MaxFrameDelta) > 1e-9 {
		t.Errorf("elapsed = %f, expected clamp to %f", g.elapsed, MaxFrameDelta)
	}

	before := g.elapsed
	g.Step(&in, g.bounds, -1)
	if g.elapsed != before {
		t.Error("negative dt must not rewind the clock")
	}
}

func TestStepFrozenOutsideRunning(t *testing.T) {
	g := New(config.DefaultTuning(), 1)
	in := core.Input{Fire: true, FirePressed: true, Horizontal: 1}
	start := g.player.Pos

	g.Step(&in, g.bounds, 1.0/60)

	if g.player.Pos != start || len(g.friendlyShots) != 0 || g.elapsed != 0 {
		t.Error("simulation advanced in the start state")
	}
}

func TestFireProducesShotNotNova(t *testing.T) {
	g := newRunningGame(1)
	in := core.Input{Fire: true, FirePressed: true}

	g.handleFire(&in)

	if len(g.friendlyShots) != 1 || len(g.pulses) != 0 {
		t.Errorf("got %d shots and %d pulses, expected 1 shot only",
			len(g.friendlyShots), len(g.pulses))
	}
	if in.FirePressed {
		t.Error("satisfied fire request must consume the press edge")
	}
	if g.player.FireCooldown != g.cfg.Player.FireCooldown {
		t.Errorf("fire cooldown = %f, expected %f",
			g.player.FireCooldown, g.cfg.Player.FireCooldown)
	}
}

func TestFullChargePressFiresNova(t *testing.T) {
	g := newRunningGame(1)
	g.player.Nova = g.cfg.Nova.ChargeMax
	g.player.Combo = 8
	in := core.Input{Fire: true, FirePressed: true}

	g.handleFire(&in)

	if len(g.pulses) != 1 || len(g.friendlyShots) != 0 {
		t.Fatalf("got %d pulses and %d shots, expected 1 pulse only",
			len(g.pulses), len(g.friendlyShots))
	}
	if g.player.Nova != 0 {
		t.Errorf("nova charge = %f, expected spent to 0", g.player.Nova)
	}
	if g.player.Combo != 0 {
		t.Errorf("combo = %d, firing a nova resets the streak", g.player.Combo)
	}
	if in.FirePressed {
		t.Error("nova must consume the press edge")
	}
	if g.pulses[0].MaxRadius != math.Hypot(g.bounds.W, g.bounds.H) {
		t.Errorf("pulse max radius = %f, expected screen diagonal", g.pulses[0].MaxRadius)
	}
}

func TestHeldFireWithoutPressNeverNovas(t *testing.T) {
	g := newRunningGame(1)
	g.player.Nova = g.cfg.Nova.ChargeMax
	in := core.Input{Fire: true} // Held, no fresh press

	g.handleFire(&in)

	if len(g.pulses) != 0 {
		t.Error("nova fired without a fresh press")
	}
	if len(g.friendlyShots) != 1 {
		t.Error("held fire should still produce an ordinary shot")
	}
}

func TestUnsatisfiedPressIsRetained(t *testing.T) {
	g := newRunningGame(1)
	g.player.FireCooldown = 0.5
	in := core.Input{Fire: true, FirePressed: true}

	g.handleFire(&in)

	if len(g.friendlyShots) != 0 {
		t.Fatal("shot fired while cooldown armed")
	}
	if !in.FirePressed {
		t.Error("unsatisfied press edge must be retained for the next tick")
	}
}

func TestBoostDrainsAndRegensEnergy(t *testing.T) {
	g := newRunningGame(1)
	g.shields = 1e9 // Keep the run alive through incidental hazard hits
	in := core.Input{Horizontal: 1, Boost: true}
	b := g.bounds

	g.Step(&in, b, 1.0/60)
	drained := g.cfg.Player.EnergyMax - g.cfg.Player.EnergyDrain/60
	if math.Abs(g.player.Energy-drained) > 1e-9 {
		t.Errorf("energy = %f, expected %f after one boosted tick", g.player.Energy, drained)
	}

	// Drain to empty; energy never goes negative.
	for i := 0; i < 600; i++ {
		g.Step(&in, b, 1.0/60)
	}
	if g.player.Energy != 0 {
		t.Errorf("energy = %f, expected clamp at 0", g.player.Energy)
	}

	// Release boost: regen, capped at max.
	idle := core.Input{}
	for i := 0; i < 600; i++ {
		g.Step(&idle, b, 1.0/60)
	}
	if g.player.Energy != g.cfg.Player.EnergyMax {
		t.Errorf("energy = %f, expected regen to cap %f",
			g.player.Energy, g.cfg.Player.EnergyMax)
	}
}

func TestPlayerClampedToBounds(t *testing.T) {
	g := newRunningGame(1)
	g.shields = 1e9
	b := g.bounds
	in := core.Input{Horizontal: 1, Vertical: 1}

	for i := 0; i < 600; i++ {
		g.Step(&in, b, 1.0/60)
	}

	if g.player.Pos.X != b.W-g.player.Radius || g.player.Pos.Y != b.H-g.player.Radius {
		t.Errorf("player at (%f, %f), expected pinned to bottom-right inset",
			g.player.Pos.X, g.player.Pos.Y)
	}
}

func TestHazardPrunedBelowBottom(t *testing.T) {
	g := newRunningGame(1)
	g.hazards = append(g.hazards, &Hazard{
		Kind: HazardAsteroid, Pos: core.Vec2{X: 300, Y: g.bounds.H + 100}, Size: 40, Speed: 100,
	})

	g.updateHazards(1.0 / 60)

	if len(g.hazards) != 0 {
		t.Error("hazard below the bottom bound not pruned")
	}
}

func TestRaiderFiresAimedShot(t *testing.T) {
	g := newRunningGame(1)
	g.player.Pos = core.Vec2{X: 500, Y: 350}
	g.hazards = append(g.hazards, &Hazard{
		Kind: HazardRaider, Pos: core.Vec2{X: 100, Y: 50}, Size: 60, Speed: 100,
		FireCooldown: 0.001,
	})

	g.updateHazards(0.01)

	if len(g.hostileShots) != 1 {
		t.Fatalf("got %d hostile shots, expected 1", len(g.hostileShots))
	}
	p := g.hostileShots[0]
	if !p.Hostile {
		t.Error("raider shot not flagged hostile")
	}
	if p.Vel.X <= 0 || p.Vel.Y <= 0 {
		t.Errorf("shot velocity (%f, %f) not aimed toward the player", p.Vel.X, p.Vel.Y)
	}
	if math.Abs(p.Vel.Len()-g.cfg.Weapons.HostileShotSpeed) > 1e-9 {
		t.Errorf("shot speed = %f, expected %f", p.Vel.Len(), g.cfg.Weapons.HostileShotSpeed)
	}

	h := g.hazards[0]
	if h.FireCooldown < g.cfg.Hazards.Raider.FireBase {
		t.Errorf("fire cooldown rearmed to %f, below base %f",
			h.FireCooldown, g.cfg.Hazards.Raider.FireBase)
	}
}

func TestBoundsAdoptedFromRender(t *testing.T) {
	g := newRunningGame(1)
	in := core.Input{}

	wide := core.Bounds{W: 1600, H: 480}
	g.Step(&in, wide, 1.0/60)
	if g.bounds != wide {
		t.Errorf("bounds = %+v, expected adoption of %+v", g.bounds, wide)
	}

	g.Step(&in, core.Bounds{}, 1.0/60)
	if g.bounds != wide {
		t.Error("zero bounds must be ignored")
	}
}

func TestSnapshotCountsMatchCollections(t *testing.T) {
	g := newRunningGame(21)
	b := g.bounds
	in := core.Input{Fire: true}
	for i := 0; i < 900; i++ {
		g.Step(&in, b, 1.0/60)
	}

	snap := g.Snapshot()
	if len(snap.Hazards) != len(g.hazards) {
		t.Errorf("snapshot hazards %d != live %d", len(snap.Hazards), len(g.hazards))
	}
	if len(snap.Shots) != len(g.friendlyShots)+len(g.hostileShots) {
		t.Errorf("snapshot shots %d != live %d", len(snap.Shots),
			len(g.friendlyShots)+len(g.hostileShots))
	}
	if len(snap.Pieces) != len(g.particles) {
		t.Errorf("snapshot pieces %d != live %d", len(snap.Pieces), len(g.particles))
	}
	if snap.ShieldsMax != g.cfg.Shields.Max || snap.NovaMax != g.cfg.Nova.ChargeMax {
		t.Error("snapshot meter maxima wrong")
	}
}

func TestLevelUpThroughStep(t *testing.T) {
	g := newRunningGame(1)
	g.score = 600
	in := core.Input{}

	g.Step(&in, g.bounds, 1.0/60)

	if g.level != 2 {
		t.Errorf("level = %d, expected step past 550 to reach 2", g.level)
	}
}

func TestSetBestScoreNeverLowers(t *testing.T) {
	g := New(config.DefaultTuning(), 1)
	g.SetBestScore(900)
	g.SetBestScore(400)
	if g.best != 900 {
		t.Errorf("best = %f, expected 900", g.best)
	}
}
