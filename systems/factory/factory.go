package factory

import (
	"math/rand"

	"github.com/automoto/cyber-defender/archetypes"
	"github.com/automoto/cyber-defender/assets"
	"github.com/automoto/cyber-defender/components"
	cfg "github.com/automoto/cyber-defender/config"
	"github.com/automoto/cyber-defender/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

func CreateBackdrop(ecs *ecs.ECS, arena *assets.Arena) *donburi.Entry {
	backdrop := archetypes.Backdrop.Spawn(ecs)
	components.Backdrop.SetValue(backdrop, components.BackdropData{Arena: arena})
	return backdrop
}

// CreateSession creates the singleton session and FX entities. The
// seed pins the session RNG so tests can replay exact runs.
func CreateSession(ecs *ecs.ECS, seed int64, highScore int) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		Phase:     components.PhaseReady,
		Level:     1,
		HighScore: highScore,
		Effects:   make(map[cfg.PowerUpKind]float64),
		Rng:       rand.New(rand.NewSource(seed)),
	})

	fx := archetypes.FX.Spawn(ecs)
	components.FX.SetValue(fx, components.FXData{
		LastPhase: components.PhaseReady,
	})

	return session
}

// CreatePlayer creates the single player ship at its rest position
// and registers it with the collision space.
func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	x := (float64(cfg.C.Width) - cfg.Player.Width) / 2
	y := float64(cfg.C.Height) - cfg.Player.SpawnOffsetY

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		SpeedX:   cfg.Player.SpeedX,
		Lives:    cfg.Player.StartingLives,
		MaxLives: cfg.Player.MaxLives,
	})

	space := mustSpace(ecs.World)
	space.Add(obj)

	return player
}

// ResetPlayer puts the ship back at its rest position with starting
// lives. Used at session reset only.
func ResetPlayer(e *donburi.Entry) {
	player := components.Player.Get(e)
	player.Lives = cfg.Player.StartingLives
	player.InvulnMS = 0

	obj := components.Object.Get(e)
	obj.X = (float64(cfg.C.Width) - cfg.Player.Width) / 2
	obj.Y = float64(cfg.C.Height) - cfg.Player.SpawnOffsetY
	obj.Update()
}

// PreSpawnPools creates every pool slot up front. Nothing is created
// or destroyed after this point; spawning is flipping a slot active.
func PreSpawnPools(ecs *ecs.ECS) {
	for i := 0; i < cfg.Pool.Projectiles; i++ {
		e := archetypes.Projectile.Spawn(ecs)
		obj := resolv.NewObject(0, 0, cfg.Projectile.PlayerWidth, cfg.Projectile.PlayerHeight)
		obj.Data = e
		components.Object.SetValue(e, components.ObjectData{Object: obj})
	}
	for i := 0; i < cfg.Pool.Enemies; i++ {
		e := archetypes.Enemy.Spawn(ecs)
		obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvEnemy)
		obj.Data = e
		components.Object.SetValue(e, components.ObjectData{Object: obj})
	}
	for i := 0; i < cfg.Pool.Particles; i++ {
		archetypes.Particle.Spawn(ecs)
	}
	for i := 0; i < cfg.Pool.PowerUps; i++ {
		e := archetypes.PowerUp.Spawn(ecs)
		obj := resolv.NewObject(0, 0, cfg.PowerUp.Width, cfg.PowerUp.Height, tags.ResolvPowerUp)
		obj.Data = e
		components.Object.SetValue(e, components.ObjectData{Object: obj})
	}
}

// SpawnEnemy activates an enemy slot of the given kind at (x, y).
// Returns nil when the enemy pool is saturated.
func SpawnEnemy(ecs *ecs.ECS, kind cfg.EnemyKind, x, y float64) *donburi.Entry {
	e := Acquire(ecs.World, tags.Enemy)
	if e == nil {
		return nil
	}

	kindCfg := cfg.Enemy.Types[kind]
	session := mustSession(ecs.World)

	enemy := components.Enemy.Get(e)
	*enemy = components.EnemyData{
		Kind:        kind,
		TypeConfig:  &kindCfg,
		Health:      kindCfg.Health,
		MaxHealth:   kindCfg.Health,
		Scale:       1,
		PhaseOffset: session.Rng.Float64() * 6000,
		AnchorX:     x,
		DriftDir:    1,
	}
	if session.Rng.Intn(2) == 0 {
		enemy.DriftDir = -1
	}
	if kind == cfg.EnemyBoss {
		enemy.LastAttackAt = session.Clock
	}

	obj := components.Object.Get(e)
	obj.X = x
	obj.Y = y
	obj.W = kindCfg.Width
	obj.H = kindCfg.Height
	mustSpace(ecs.World).Add(obj.Object)
	obj.Update()

	return e
}

// FireProjectile activates a projectile slot. Returns nil when the
// pool is saturated (the shot is silently dropped).
func FireProjectile(ecs *ecs.ECS, origin components.ProjectileOrigin, pattern components.ProjectilePattern, x, y, vx, vy float64, damage int) *donburi.Entry {
	e := Acquire(ecs.World, tags.Projectile)
	if e == nil {
		return nil
	}

	components.Projectile.SetValue(e, components.ProjectileData{
		Origin:  origin,
		Pattern: pattern,
		Damage:  damage,
		VX:      vx,
		VY:      vy,
	})

	obj := components.Object.Get(e)
	if origin == components.FromPlayer {
		obj.W = cfg.Projectile.PlayerWidth
		obj.H = cfg.Projectile.PlayerHeight
	} else {
		obj.W = cfg.Projectile.EnemyWidth
		obj.H = cfg.Projectile.EnemyHeight
	}
	obj.X = x - obj.W/2
	obj.Y = y - obj.H/2
	mustSpace(ecs.World).Add(obj.Object)
	obj.Update()

	return e
}

// SpawnPowerUp activates a power-up slot falling from (x, y).
func SpawnPowerUp(ecs *ecs.ECS, kind cfg.PowerUpKind, x, y float64) *donburi.Entry {
	e := Acquire(ecs.World, tags.PowerUp)
	if e == nil {
		return nil
	}

	components.PowerUp.SetValue(e, components.PowerUpData{Kind: kind})

	obj := components.Object.Get(e)
	obj.X = x - cfg.PowerUp.Width/2
	obj.Y = y
	obj.W = cfg.PowerUp.Width
	obj.H = cfg.PowerUp.Height
	mustSpace(ecs.World).Add(obj.Object)
	obj.Update()

	return e
}

// SpawnParticle activates one particle slot. Saturation drops the
// particle, which is invisible in practice.
func SpawnParticle(ecs *ecs.ECS, p components.ParticleData) *donburi.Entry {
	e := Acquire(ecs.World, tags.Particle)
	if e == nil {
		return nil
	}
	components.Particle.SetValue(e, p)
	return e
}

func mustSpace(w donburi.World) *resolv.Space {
	entry, ok := components.Space.First(w)
	if !ok {
		panic("collision space not created")
	}
	return components.Space.Get(entry)
}

func mustSession(w donburi.World) *components.SessionData {
	entry, ok := components.Session.First(w)
	if !ok {
		panic("session not created")
	}
	return components.Session.Get(entry)
}
