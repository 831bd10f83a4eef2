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

// UpdateEnemies advances every live enemy by its kind's movement
// pattern and runs the boss attack scheduler. All motion uses the
// hostile clock so slow-time halves it.
func UpdateEnemies(e *ecs.ECS) {
	session := MustSession(e.World)
	dt := HostileDT(session)

	factory.EachActive(e.World, tags.Enemy, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		obj := components.Object.Get(entry)

		switch enemy.Kind {
		case cfg.EnemyGrunt:
			moveGrunt(session, enemy, obj, dt)
		case cfg.EnemyStriker:
			moveStriker(session, enemy, obj, dt)
		case cfg.EnemyTank:
			moveTank(session, enemy, obj, dt)
		case cfg.EnemyBoss:
			moveBoss(e, session, enemy, obj)
		}

		enemy.Rotation += enemy.TypeConfig.SpinSpeed * dt
		obj.Update()
	})
}

// moveGrunt falls straight down with a shallow sine sway around its
// entry column.
func moveGrunt(session *components.SessionData, enemy *components.EnemyData, obj *components.ObjectData, dt float64) {
	obj.Y += enemy.TypeConfig.FallSpeed * dt
	t := session.Clock + enemy.PhaseOffset
	obj.X = enemy.AnchorX + math.Sin(t*enemy.TypeConfig.SwayFreq*2*math.Pi)*enemy.TypeConfig.SwayAmp
}

// moveStriker dives fast with erratic horizontal jitter. Direction
// reverses on a randomized timer and bounces off the walls.
func moveStriker(session *components.SessionData, enemy *components.EnemyData, obj *components.ObjectData, dt float64) {
	obj.Y += enemy.TypeConfig.FallSpeed * dt

	if session.Clock >= enemy.NextFlipAt {
		if session.Rng.Intn(3) == 0 {
			enemy.DriftDir = -enemy.DriftDir
		}
		span := cfg.Enemy.StrikerReversalMaxMS - cfg.Enemy.StrikerReversalMinMS
		enemy.NextFlipAt = session.Clock + cfg.Enemy.StrikerReversalMinMS + session.Rng.Float64()*span
	}

	obj.X += enemy.DriftDir * cfg.Enemy.StrikerJitterSpeed * dt
	if obj.X < 0 {
		obj.X = 0
		enemy.DriftDir = 1
	}
	if max := float64(cfg.C.Width) - obj.W; obj.X > max {
		obj.X = max
		enemy.DriftDir = -1
	}
}

// moveTank descends slowly, swaying wide around its anchor column.
func moveTank(session *components.SessionData, enemy *components.EnemyData, obj *components.ObjectData, dt float64) {
	obj.Y += enemy.TypeConfig.FallSpeed * dt
	t := session.Clock + enemy.PhaseOffset
	obj.X = enemy.AnchorX + math.Sin(t*enemy.TypeConfig.SwayFreq*2*math.Pi)*enemy.TypeConfig.SwayAmp
}

// moveBoss patrols a horizontal band near the top and fires one of
// five attack patterns on a cooldown that shortens as its health
// drops.
func moveBoss(e *ecs.ECS, session *components.SessionData, enemy *components.EnemyData, obj *components.ObjectData) {
	t := session.Clock + enemy.PhaseOffset
	cx := float64(cfg.C.Width) / 2
	obj.X = cx - obj.W/2 + math.Sin(t*cfg.Enemy.BossSwayFreq*2*math.Pi)*cfg.Enemy.BossSwayAmp
	obj.Y = cfg.Enemy.BossBandY - obj.H/2

	healthFrac := float64(enemy.Health) / float64(enemy.MaxHealth)
	cooldown := cfg.Enemy.BossCooldownMinMS +
		(cfg.Enemy.BossCooldownMaxMS-cfg.Enemy.BossCooldownMinMS)*healthFrac

	// Cadence compares against the session clock: slow-time scales
	// hostile motion, never timers.
	if session.Clock-enemy.LastAttackAt < cooldown {
		return
	}
	enemy.LastAttackAt = session.Clock
	bossAttack(e, session, enemy, obj)
}

func bossAttack(e *ecs.ECS, session *components.SessionData, enemy *components.EnemyData, obj *components.ObjectData) {
	mx := obj.X + obj.W/2
	my := obj.Y + obj.H
	speed := cfg.Enemy.BossShotSpeed

	switch session.Rng.Intn(5) {
	case 0: // spread fan
		n := cfg.Enemy.BossSpreadCount
		arc := cfg.Enemy.BossSpreadArc
		for i := 0; i < n; i++ {
			angle := math.Pi/2 - arc/2 + arc*float64(i)/float64(n-1)
			factory.FireProjectile(e, components.FromEnemy, components.PatternAngled,
				mx, my, math.Cos(angle)*speed, math.Sin(angle)*speed, 1)
		}
	case 1: // homing volley
		for i := 0; i < cfg.Enemy.BossVolleyCount; i++ {
			vx := (float64(i) - float64(cfg.Enemy.BossVolleyCount-1)/2) * 0.05
			factory.FireProjectile(e, components.FromEnemy, components.PatternHoming,
				mx, my, vx, cfg.Projectile.HomingSpeed, 1)
		}
	case 2: // horizontal sweep
		n := cfg.Enemy.BossSweepCount
		for i := 0; i < n; i++ {
			x := float64(cfg.C.Width) * (float64(i) + 0.5) / float64(n)
			factory.FireProjectile(e, components.FromEnemy, components.PatternStraight,
				x, my, 0, speed, 1)
		}
	case 3: // spiral
		enemy.SpiralAngle += cfg.Enemy.BossSpiralStep
		factory.FireProjectile(e, components.FromEnemy, components.PatternAngled,
			mx, my, math.Cos(enemy.SpiralAngle)*speed, math.Abs(math.Sin(enemy.SpiralAngle))*speed+0.05, 1)
	case 4: // targeted burst at the ship's current position
		tx, ty := mx, my+1
		if playerEntry, ok := tags.Player.First(e.World); ok {
			pObj := components.Object.Get(playerEntry)
			tx = pObj.X + pObj.W/2
			ty = pObj.Y + pObj.H/2
		}
		dx, dy := tx-mx, ty-my
		dist := math.Hypot(dx, dy)
		if dist == 0 {
			dist = 1
		}
		for i := 0; i < cfg.Enemy.BossVolleyCount; i++ {
			s := speed * (1 + 0.25*float64(i))
			factory.FireProjectile(e, components.FromEnemy, components.PatternAngled,
				mx, my, dx/dist*s, dy/dist*s, 1)
		}
	}
}
