package config

import (
	_ "embed"
)

//go:embed defaults/novafall.yaml
var defaultTuningYAML []byte

// DefaultTuning returns the default gameplay tuning.
// Values match the embedded defaults/novafall.yaml; this hardcoded copy is
// the fallback of last resort if the embedded YAML fails to parse.
func DefaultTuning() Tuning {
	return Tuning{
		Player: PlayerTuning{
			Radius:       14,
			Speed:        240,
			BoostSpeed:   380,
			FireCooldown: 0.16,
			EnergyMax:    100,
			EnergyRegen:  18,
			EnergyDrain:  60,
			InvulnTime:   1.2,
		},
		Shields: ShieldTuning{
			Start:         100,
			Max:           120,
			PickupRestore: 25,
		},
		Hazards: HazardTuning{
			Asteroid: AsteroidTuning{
				MinSize:       26,
				MaxSize:       62,
				SpeedBase:     80,
				SpeedRand:     120,
				SpeedPerLevel: 12,
				HealthDivisor: 18,
				DriftMax:      60,
				SpinMax:       3.0,
				WobbleAmp:     45,
				WobbleFreq:    0.7,
				Damage:        35,
			},
			Raider: RaiderTuning{
				MinSize:        48,
				MaxSize:        78,
				SpeedBase:      90,
				SpeedRand:      60,
				SpeedPerLevel:  18,
				HealthBase:     2,
				HealthPerLevel: 0.4,
				DriftMax:       80,
				Damage:         45,
				FireBase:       1.8,
				FireRand:       1.6,
			},
		},
		Weapons: WeaponTuning{
			ShotSpeed:         560,
			ShotRadius:        4,
			ShotLife:          1.5,
			HostileShotSpeed:  240,
			HostileShotRadius: 5,
			HostileShotLife:   3.0,
			HostileDamage:     30,
		},
		Nova: NovaTuning{
			Growth:         520,
			Life:           0.65,
			Multiplier:     1.5,
			ChargeAsteroid: 12,
			ChargeRaider:   20,
			ChargeMax:      100,
			DrainOnHit:     25,
		},
		PowerUps: PowerUpTuning{
			DropAsteroid: 0.10,
			DropRaider:   0.22,
			ShieldWeight: 0.6,
			FallBase:     90,
			FallRand:     50,
			Radius:       12,
		},
		Scoring: ScoringTuning{
			AsteroidPoints: 45,
			RaiderPoints:   120,
			ComboBonus:     0.05,
			LevelStep:      550,
		},
		Spawning: SpawnTuning{
			BaseInterval:    2.2,
			MinInterval:     0.55,
			LevelAccel:      0.08,
			Jitter:          0.6,
			Decay:           0.92,
			Floor:           0.7,
			RaiderThreshold: 0.65,
			RaiderMinLevel:  2,
			EdgeMargin:      120,
		},
		Particles: ParticleTuning{
			BurstAsteroid: 16,
			BurstRaider:   22,
			Drag:          0.98,
			MinLife:       0.35,
			MaxLife:       0.9,
		},
	}
}
