package systems

import (
	"github.com/automoto/cyber-defender/components"
	cfg "github.com/automoto/cyber-defender/config"
	"github.com/automoto/cyber-defender/systems/factory"
	"github.com/automoto/cyber-defender/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner schedules enemy waves and the periodic power-up drip.
// Reaching the boss level stops regular spawns; the boss enters once
// the field is clear and blocks further spawning until it dies.
func UpdateSpawner(e *ecs.ECS) {
	session := MustSession(e.World)

	if session.Level >= cfg.Rules.BossLevel {
		if !session.BossActive && factory.CountActive(e.World, tags.Enemy) == 0 {
			kindCfg := cfg.Enemy.Types[cfg.EnemyBoss]
			x := (float64(cfg.C.Width) - kindCfg.Width) / 2
			if factory.SpawnEnemy(e, cfg.EnemyBoss, x, -kindCfg.Height) != nil {
				session.BossActive = true
			}
		}
	} else {
		spawnWave(e, session)
	}

	if session.Clock-session.LastPowerUpAt >= cfg.PowerUp.DripMS {
		session.LastPowerUpAt = session.Clock
		kind := cfg.PowerUpKind(session.Rng.Intn(int(cfg.PowerUpKindCount)))
		x := 30 + session.Rng.Float64()*(float64(cfg.C.Width)-60)
		factory.SpawnPowerUp(e, kind, x, -cfg.PowerUp.Height)
	}
}

// spawnWave drops a regular enemy when the level-scaled interval has
// elapsed, subject to the active-enemy ceiling.
func spawnWave(e *ecs.ECS, session *components.SessionData) {
	interval := cfg.Rules.SpawnBaseMS - cfg.Rules.SpawnStepMS*float64(session.Level-1)
	if interval < cfg.Rules.SpawnFloorMS {
		interval = cfg.Rules.SpawnFloorMS
	}
	if session.Clock-session.LastSpawnAt < interval {
		return
	}
	if factory.CountActive(e.World, tags.Enemy) >= cfg.Rules.MaxActiveEnemies {
		return
	}
	session.LastSpawnAt = session.Clock

	kind := rollEnemyKind(session)
	kindCfg := cfg.Enemy.Types[kind]
	margin := kindCfg.SwayAmp + 8
	x := margin + session.Rng.Float64()*(float64(cfg.C.Width)-kindCfg.Width-2*margin)
	factory.SpawnEnemy(e, kind, x, -kindCfg.Height)
}

// rollEnemyKind weights the regular kinds 60/25/15.
func rollEnemyKind(session *components.SessionData) cfg.EnemyKind {
	switch r := session.Rng.Intn(100); {
	case r < 60:
		return cfg.EnemyGrunt
	case r < 85:
		return cfg.EnemyStriker
	default:
		return cfg.EnemyTank
	}
}
