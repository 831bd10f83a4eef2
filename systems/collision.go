package systems

import (
	"fmt"

	"github.com/automoto/cyber-defender/components"
	cfg "github.com/automoto/cyber-defender/config"
	"github.com/automoto/cyber-defender/systems/factory"
	"github.com/automoto/cyber-defender/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves the enemy-side contacts: ramming the
// player and leaking past the bottom edge. Projectile and power-up
// contacts are resolved by their own systems, which initiate the
// checks from the moving object.
func UpdateCollisions(e *ecs.ECS) {
	session := MustSession(e.World)

	factory.EachActive(e.World, tags.Enemy, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)

		if col := obj.Check(0, 0, tags.ResolvPlayer); col != nil {
			for _, hit := range col.Objects {
				if overlaps(obj.Object, hit) {
					DamagePlayer(e, session)
					// Ramming destroys non-boss enemies without scoring.
					if components.Enemy.Get(entry).Kind != cfg.EnemyBoss {
						factory.ExplosionBurst(e, obj.X+obj.W/2, obj.Y+obj.H/2, components.Enemy.Get(entry).TypeConfig.Color)
						factory.Release(entry)
					}
					return
				}
			}
		}

		if obj.Y > float64(cfg.C.Height) {
			leakEnemy(e, session, entry)
		}
	})
}

// leakEnemy applies the configured cost of letting an enemy through.
func leakEnemy(e *ecs.ECS, session *components.SessionData, entry *donburi.Entry) {
	factory.Release(entry)
	if cfg.Rules.Leak == cfg.LeakEndsRun {
		SetGameOver(session)
		return
	}
	DamagePlayer(e, session)
}

// overlaps is the exact AABB test. The space's cell check is only a
// broadphase; cell resolution is coarser than the smallest shot.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// HitEnemy applies damage to an enemy, killing it when health runs
// out. Safe to call on an already-released slot (no-op).
func HitEnemy(e *ecs.ECS, session *components.SessionData, entry *donburi.Entry, damage int) {
	if !components.PoolSlot.Get(entry).Active {
		return
	}

	enemy := components.Enemy.Get(entry)
	obj := components.Object.Get(entry)
	enemy.Health -= damage

	if enemy.Health > 0 {
		factory.SparkBurst(e, obj.X+obj.W/2, obj.Y, enemy.TypeConfig.Color)
		if enemy.Kind == cfg.EnemyBoss {
			session.Shake = cfg.FX.ShakeOnBossHit
		}
		return
	}

	KillEnemy(e, session, entry)
}

// KillEnemy releases the slot, scores the kill with the current combo
// multiplier and rolls a power-up drop. A boss kill wins the run.
func KillEnemy(e *ecs.ECS, session *components.SessionData, entry *donburi.Entry) {
	enemy := components.Enemy.Get(entry)
	obj := components.Object.Get(entry)
	cx := obj.X + obj.W/2
	cy := obj.Y + obj.H/2

	factory.Release(entry)

	points := AddKillScore(session, enemy.TypeConfig.Points)
	session.Shake = cfg.FX.ShakeOnKill

	factory.ExplosionBurst(e, cx, cy, enemy.TypeConfig.Color)
	factory.FloatingText(e, cx, cy, fmt.Sprintf("+%d", points), cfg.HUD.AccentColor)

	if enemy.Kind == cfg.EnemyBoss {
		session.BossActive = false
		SetWon(session)
		return
	}

	if session.Rng.Float64() < cfg.PowerUp.DropChance {
		kind := cfg.PowerUpKind(session.Rng.Intn(int(cfg.PowerUpKindCount)))
		factory.SpawnPowerUp(e, kind, cx, cy)
	}
}

// DamagePlayer costs one life unless the ship is invulnerable or
// shielded. Losing the last life ends the run.
func DamagePlayer(e *ecs.ECS, session *components.SessionData) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.InvulnMS > 0 || session.EffectActive(cfg.PowerShield) {
		return
	}

	player.Lives--
	player.InvulnMS = cfg.Player.InvulnMS
	session.Shake = cfg.FX.ShakeOnHit

	obj := components.Object.Get(playerEntry)
	factory.ExplosionBurst(e, obj.X+obj.W/2, obj.Y+obj.H/2, cfg.HUD.LifeColor)

	if player.Lives <= 0 {
		SetGameOver(session)
	}
}

// CollectPowerUp releases the pickup and applies its effect. Repair is
// instant; everything else refreshes a duration timer.
func CollectPowerUp(e *ecs.ECS, session *components.SessionData, entry *donburi.Entry) {
	pu := components.PowerUp.Get(entry)
	obj := components.Object.Get(entry)
	cx := obj.X + obj.W/2
	cy := obj.Y + obj.H/2

	factory.Release(entry)

	if pu.Kind == cfg.PowerRepair {
		if playerEntry, ok := tags.Player.First(e.World); ok {
			player := components.Player.Get(playerEntry)
			if player.Lives < player.MaxLives {
				player.Lives++
			}
		}
	} else {
		session.Effects[pu.Kind] = cfg.PowerUp.DurationMS[pu.Kind]
	}

	factory.PickupBurst(e, cx, cy, cfg.PowerUp.Colors[pu.Kind])
	factory.FloatingText(e, cx, cy, cfg.PowerUp.Labels[pu.Kind], cfg.PowerUp.Colors[pu.Kind])
}
