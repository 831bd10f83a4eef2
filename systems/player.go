package systems

import (
	"github.com/automoto/cyber-defender/components"
	cfg "github.com/automoto/cyber-defender/config"
	"github.com/automoto/cyber-defender/systems/factory"
	"github.com/automoto/cyber-defender/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer handles ship steering, the invulnerability window and
// firing. Movement is held-key: opposite directions cancel out.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}

	session := MustSession(e.World)
	input := getOrCreateInput(e)
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	dt := cfg.Sim.TickMS

	dir := 0.0
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		dir -= 1
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		dir += 1
	}

	obj.X += dir * player.SpeedX * dt
	if obj.X < 0 {
		obj.X = 0
	}
	if max := float64(cfg.C.Width) - obj.W; obj.X > max {
		obj.X = max
	}
	obj.Update()

	if player.InvulnMS > 0 {
		player.InvulnMS -= dt
		if player.InvulnMS < 0 {
			player.InvulnMS = 0
		}
	}

	if GetAction(input, cfg.ActionFire).Pressed {
		tryFire(e, session, obj.X+obj.W/2, obj.Y)
	}
}

// tryFire emits the ship's shot pattern if the cooldown has elapsed.
// Rapid-fire shortens the cooldown; multi-shot fans three shots.
func tryFire(e *ecs.ECS, session *components.SessionData, x, y float64) {
	cooldown := cfg.Player.FireCooldownMS
	if session.EffectActive(cfg.PowerRapidFire) {
		cooldown = cfg.Player.RapidCooldownMS
	}
	if session.LastShotAt != 0 && session.Clock-session.LastShotAt < cooldown {
		return
	}
	session.LastShotAt = session.Clock

	vy := -cfg.Player.ShotSpeedY
	damage := cfg.Player.ShotDamage

	factory.FireProjectile(e, components.FromPlayer, components.PatternStraight, x, y, 0, vy, damage)
	if session.EffectActive(cfg.PowerMultiShot) {
		factory.FireProjectile(e, components.FromPlayer, components.PatternAngled, x, y, -cfg.Player.MultiShotVX, vy, damage)
		factory.FireProjectile(e, components.FromPlayer, components.PatternAngled, x, y, cfg.Player.MultiShotVX, vy, damage)
	}
}
