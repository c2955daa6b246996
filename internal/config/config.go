// Package config defines the gameplay tuning parameters and their loading.
// Every documented gameplay formula constant lives here so that tests and
// players can override them without touching simulation code.
package config

// Tuning is the complete set of gameplay parameters.
type Tuning struct {
	Player    PlayerTuning   `yaml:"player"`
	Shields   ShieldTuning   `yaml:"shields"`
	Hazards   HazardTuning   `yaml:"hazards"`
	Weapons   WeaponTuning   `yaml:"weapons"`
	Nova      NovaTuning     `yaml:"nova"`
	PowerUps  PowerUpTuning  `yaml:"powerups"`
	Scoring   ScoringTuning  `yaml:"scoring"`
	Spawning  SpawnTuning    `yaml:"spawning"`
	Particles ParticleTuning `yaml:"particles"`
}

// PlayerTuning controls ship movement and resources.
type PlayerTuning struct {
	Radius       float64 `yaml:"radius"`
	Speed        float64 `yaml:"speed"`
	BoostSpeed   float64 `yaml:"boost_speed"`
	FireCooldown float64 `yaml:"fire_cooldown"` // Seconds between shots
	EnergyMax    float64 `yaml:"energy_max"`
	EnergyRegen  float64 `yaml:"energy_regen"` // Per second, while not boosting
	EnergyDrain  float64 `yaml:"energy_drain"` // Per second, while boosting
	InvulnTime   float64 `yaml:"invuln_time"`  // Seconds of invulnerability after a hit
}

// ShieldTuning controls the shield resource.
type ShieldTuning struct {
	Start         float64 `yaml:"start"`
	Max           float64 `yaml:"max"`
	PickupRestore float64 `yaml:"pickup_restore"`
}

// HazardTuning groups the per-variant hazard parameters.
type HazardTuning struct {
	Asteroid AsteroidTuning `yaml:"asteroid"`
	Raider   RaiderTuning   `yaml:"raider"`
}

// AsteroidTuning controls tumbling asteroid hazards.
type AsteroidTuning struct {
	MinSize       float64 `yaml:"min_size"`
	MaxSize       float64 `yaml:"max_size"`
	SpeedBase     float64 `yaml:"speed_base"`
	SpeedRand     float64 `yaml:"speed_rand"`
	SpeedPerLevel float64 `yaml:"speed_per_level"`
	HealthDivisor float64 `yaml:"health_divisor"` // health = ceil(size/divisor), min 1
	DriftMax      float64 `yaml:"drift_max"`      // Max horizontal drift speed
	SpinMax       float64 `yaml:"spin_max"`       // Max rotation speed, rad/s
	WobbleAmp     float64 `yaml:"wobble_amp"`     // Lateral wobble amplitude
	WobbleFreq    float64 `yaml:"wobble_freq"`    // Wobble frequency factor on rotation
	Damage        float64 `yaml:"damage"`         // Shield damage on player collision
}

// RaiderTuning controls shooting raider hazards.
type RaiderTuning struct {
	MinSize        float64 `yaml:"min_size"`
	MaxSize        float64 `yaml:"max_size"`
	SpeedBase      float64 `yaml:"speed_base"`
	SpeedRand      float64 `yaml:"speed_rand"`
	SpeedPerLevel  float64 `yaml:"speed_per_level"`
	HealthBase     float64 `yaml:"health_base"`
	HealthPerLevel float64 `yaml:"health_per_level"`
	DriftMax       float64 `yaml:"drift_max"`
	Damage         float64 `yaml:"damage"`
	FireBase       float64 `yaml:"fire_base"` // Cooldown reset = base + rand()*fire_rand
	FireRand       float64 `yaml:"fire_rand"`
}

// WeaponTuning controls projectiles on both sides.
type WeaponTuning struct {
	ShotSpeed         float64 `yaml:"shot_speed"`
	ShotRadius        float64 `yaml:"shot_radius"`
	ShotLife          float64 `yaml:"shot_life"`
	HostileShotSpeed  float64 `yaml:"hostile_shot_speed"`
	HostileShotRadius float64 `yaml:"hostile_shot_radius"`
	HostileShotLife   float64 `yaml:"hostile_shot_life"`
	HostileDamage     float64 `yaml:"hostile_damage"`
}

// NovaTuning controls the nova charge resource and pulse.
type NovaTuning struct {
	Growth         float64 `yaml:"growth"` // Pulse radius growth, units/s
	Life           float64 `yaml:"life"`   // Pulse lifetime, seconds
	Multiplier     float64 `yaml:"multiplier"`
	ChargeAsteroid float64 `yaml:"charge_asteroid"`
	ChargeRaider   float64 `yaml:"charge_raider"`
	ChargeMax      float64 `yaml:"charge_max"`
	DrainOnHit     float64 `yaml:"drain_on_hit"`
}

// PowerUpTuning controls power-up drops and pickups.
type PowerUpTuning struct {
	DropAsteroid float64 `yaml:"drop_asteroid"` // Drop probability on asteroid kill
	DropRaider   float64 `yaml:"drop_raider"`
	ShieldWeight float64 `yaml:"shield_weight"` // Remainder is the nova weight
	FallBase     float64 `yaml:"fall_base"`
	FallRand     float64 `yaml:"fall_rand"`
	Radius       float64 `yaml:"radius"`
}

// ScoringTuning controls score awards and level thresholds.
type ScoringTuning struct {
	AsteroidPoints float64 `yaml:"asteroid_points"`
	RaiderPoints   float64 `yaml:"raider_points"`
	ComboBonus     float64 `yaml:"combo_bonus"` // Kill multiplier = 1 + combo*bonus
	LevelStep      float64 `yaml:"level_step"`  // Level up when score > level*step
}

// SpawnTuning controls hazard spawn pacing.
type SpawnTuning struct {
	BaseInterval    float64 `yaml:"base_interval"`
	MinInterval     float64 `yaml:"min_interval"`
	LevelAccel      float64 `yaml:"level_accel"` // Interval shrinks by this per level
	Jitter          float64 `yaml:"jitter"`
	Decay           float64 `yaml:"decay"` // Base interval multiplier on level up
	Floor           float64 `yaml:"floor"` // Base interval floor
	RaiderThreshold float64 `yaml:"raider_threshold"`
	RaiderMinLevel  int     `yaml:"raider_min_level"`
	EdgeMargin      float64 `yaml:"edge_margin"`
}

// ParticleTuning controls cosmetic destruction bursts.
type ParticleTuning struct {
	BurstAsteroid int     `yaml:"burst_asteroid"`
	BurstRaider   int     `yaml:"burst_raider"`
	Drag          float64 `yaml:"drag"` // Per-frame velocity decay factor
	MinLife       float64 `yaml:"min_life"`
	MaxLife       float64 `yaml:"max_life"`
}
