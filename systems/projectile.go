package systems

import (
	"math"

	"github.com/automoto/cyber-defender/components"
	cfg "github.com/automoto/cyber-defender/config"
	"github.com/automoto/cyber-defender/systems/factory"
	"github.com/automoto/cyber-defender/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles advances every live shot, steers homing shots,
// resolves impacts and culls shots past the field margin. Enemy shots
// run on the hostile clock so slow-time affects them but not the
// player's own fire.
func UpdateProjectiles(e *ecs.ECS) {
	session := MustSession(e.World)

	var playerObj *components.ObjectData
	if playerEntry, ok := tags.Player.First(e.World); ok {
		playerObj = components.Object.Get(playerEntry)
	}

	factory.EachActive(e.World, tags.Projectile, func(entry *donburi.Entry) {
		proj := components.Projectile.Get(entry)
		obj := components.Object.Get(entry)

		dt := cfg.Sim.TickMS
		if proj.Origin == components.FromEnemy {
			dt = HostileDT(session)
		}

		if proj.Pattern == components.PatternHoming && playerObj != nil {
			steerHoming(proj, obj, playerObj)
		}

		obj.X += proj.VX * dt
		obj.Y += proj.VY * dt
		obj.Update()

		if culled(obj) {
			factory.Release(entry)
			return
		}

		if proj.Origin == components.FromPlayer {
			resolveShotVsEnemies(e, session, entry, proj, obj)
		} else {
			resolveShotVsPlayer(e, session, entry, obj)
		}
	})
}

// steerHoming blends the shot's heading toward the player's center,
// keeping speed constant. The blend is partial per tick so the shot
// arcs instead of snapping.
func steerHoming(proj *components.ProjectileData, obj, target *components.ObjectData) {
	tx := target.X + target.W/2 - (obj.X + obj.W/2)
	ty := target.Y + target.H/2 - (obj.Y + obj.H/2)
	dist := math.Hypot(tx, ty)
	if dist == 0 {
		return
	}

	speed := cfg.Projectile.HomingSpeed
	blend := cfg.Projectile.HomingBlend
	vx := proj.VX + (tx/dist*speed-proj.VX)*blend
	vy := proj.VY + (ty/dist*speed-proj.VY)*blend

	mag := math.Hypot(vx, vy)
	if mag == 0 {
		return
	}
	proj.VX = vx / mag * speed
	proj.VY = vy / mag * speed
}

func culled(obj *components.ObjectData) bool {
	m := cfg.Projectile.CullMargin
	return obj.X+obj.W < -m || obj.X > float64(cfg.C.Width)+m ||
		obj.Y+obj.H < -m || obj.Y > float64(cfg.C.Height)+m
}

func resolveShotVsEnemies(e *ecs.ECS, session *components.SessionData, entry *donburi.Entry, proj *components.ProjectileData, obj *components.ObjectData) {
	col := obj.Check(0, 0, tags.ResolvEnemy)
	if col == nil {
		return
	}
	for _, hit := range col.Objects {
		if !overlaps(obj.Object, hit) {
			continue
		}
		target, ok := hit.Data.(*donburi.Entry)
		if !ok || !components.PoolSlot.Get(target).Active {
			continue
		}
		factory.Release(entry)
		HitEnemy(e, session, target, proj.Damage)
		return
	}
}

func resolveShotVsPlayer(e *ecs.ECS, session *components.SessionData, entry *donburi.Entry, obj *components.ObjectData) {
	col := obj.Check(0, 0, tags.ResolvPlayer)
	if col == nil {
		return
	}
	for _, hit := range col.Objects {
		if overlaps(obj.Object, hit) {
			factory.Release(entry)
			DamagePlayer(e, session)
			return
		}
	}
}
