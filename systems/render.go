package systems

import (
	"image/color"
	"math"

	"github.com/automoto/cyber-defender/components"
	cfg "github.com/automoto/cyber-defender/config"
	"github.com/automoto/cyber-defender/systems/factory"
	"github.com/automoto/cyber-defender/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// shakeOffset derives the current screen-shake displacement from the
// session clock. Decay happens in UpdateEffects; drawers only read.
func shakeOffset(session *components.SessionData) (float32, float32) {
	if session.Shake == 0 {
		return 0, 0
	}
	t := session.Clock / cfg.Sim.TickMS
	dx := math.Sin(t*1.1) * session.Shake
	dy := math.Cos(t*1.3) * session.Shake
	return float32(dx), float32(dy)
}

// DrawBackdrop paints the static night-city backdrop: sky, grid,
// twinkling stars and the skyline silhouette loaded from the map file.
func DrawBackdrop(e *ecs.ECS, screen *ebiten.Image) {
	session := MustSession(e.World)
	w := float32(cfg.C.Width)
	h := float32(cfg.C.Height)

	vector.FillRect(screen, 0, 0, w, h, color.RGBA{8, 8, 20, 255}, false)

	gridColor := color.RGBA{18, 20, 40, 255}
	for x := float32(0); x <= w; x += 48 {
		vector.StrokeLine(screen, x, 0, x, h, 1, gridColor, false)
	}
	for y := float32(0); y <= h; y += 48 {
		vector.StrokeLine(screen, 0, y, w, y, 1, gridColor, false)
	}

	backdropEntry, ok := components.Backdrop.First(e.World)
	if !ok {
		return
	}
	arena := components.Backdrop.Get(backdropEntry).Arena

	for i, star := range arena.Stars {
		// Twinkle on a per-star phase so the field shimmers.
		phase := session.Clock*0.002 + float64(i)*1.7
		a := 120 + uint8(80*(math.Sin(phase)+1)/2)
		vector.FillRect(screen, float32(star.X), float32(star.Y), float32(star.Size), float32(star.Size),
			color.RGBA{200, 210, 255, a}, false)
	}

	buildingColor := color.RGBA{14, 16, 34, 255}
	for _, b := range arena.Buildings {
		vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), buildingColor, false)
	}
}

// DrawParticles renders the cosmetic layer: bursts, sparks and
// floating score text. Alpha tracks remaining lifetime.
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	session := MustSession(e.World)
	sx, sy := shakeOffset(session)

	factory.EachActive(e.World, tags.Particle, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		frac := p.LifeMS / p.MaxMS
		if frac < 0 {
			frac = 0
		}
		clr := p.Color
		clr.A = uint8(float64(clr.A) * frac)

		x := float32(p.X) + sx
		y := float32(p.Y) + sy

		if p.Kind == components.ParticleText {
			drawTinyText(screen, p.Text, x, y, clr)
			return
		}
		s := float32(p.Size)
		vector.FillRect(screen, x-s/2, y-s/2, s, s, clr, false)
	})
}

// DrawProjectiles renders player bolts as slim rects and enemy shots
// as orbs.
func DrawProjectiles(e *ecs.ECS, screen *ebiten.Image) {
	session := MustSession(e.World)
	sx, sy := shakeOffset(session)

	factory.EachActive(e.World, tags.Projectile, func(entry *donburi.Entry) {
		proj := components.Projectile.Get(entry)
		obj := components.Object.Get(entry)
		x := float32(obj.X) + sx
		y := float32(obj.Y) + sy

		if proj.Origin == components.FromPlayer {
			vector.FillRect(screen, x, y, float32(obj.W), float32(obj.H), color.RGBA{0, 229, 255, 255}, false)
			return
		}

		cx := x + float32(obj.W)/2
		cy := y + float32(obj.H)/2
		clr := color.RGBA{255, 64, 129, 255}
		if proj.Pattern == components.PatternHoming {
			clr = color.RGBA{213, 0, 249, 255}
		}
		vector.DrawFilledCircle(screen, cx, cy, float32(obj.W)/2, clr, false)
	})
}

// DrawEnemies renders each enemy as a layered silhouette plus, for the
// boss, a health bar above its hull.
func DrawEnemies(e *ecs.ECS, screen *ebiten.Image) {
	session := MustSession(e.World)
	sx, sy := shakeOffset(session)

	factory.EachActive(e.World, tags.Enemy, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		obj := components.Object.Get(entry)
		x := float32(obj.X) + sx
		y := float32(obj.Y) + sy
		w := float32(obj.W)
		h := float32(obj.H)
		clr := enemy.TypeConfig.Color

		// Hull with a darker core band.
		vector.FillRect(screen, x, y, w, h, clr, false)
		core := color.RGBA{clr.R / 3, clr.G / 3, clr.B / 3, 255}
		vector.FillRect(screen, x+w*0.2, y+h*0.25, w*0.6, h*0.5, core, false)

		// Damage flicker band widens as health drops.
		if enemy.Health < enemy.MaxHealth {
			frac := 1 - float32(enemy.Health)/float32(enemy.MaxHealth)
			vector.FillRect(screen, x, y+h-3, w*frac, 3, color.RGBA{255, 255, 255, 160}, false)
		}

		if enemy.Kind == cfg.EnemyBoss {
			drawBossBar(screen, enemy)
		}
	})
}

func drawBossBar(screen *ebiten.Image, enemy *components.EnemyData) {
	barW := float32(cfg.C.Width) * 0.7
	barX := (float32(cfg.C.Width) - barW) / 2
	barY := float32(12)
	frac := float32(enemy.Health) / float32(enemy.MaxHealth)

	vector.FillRect(screen, barX, barY, barW, 8, cfg.HUD.BossBarBack, false)
	vector.FillRect(screen, barX, barY, barW*frac, 8, cfg.HUD.BossBarFill, false)
}

// DrawPlayer renders the ship as stacked neon rects. During the
// invulnerability window the ship flickers; with a shield up it gets
// a ring.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	session := MustSession(e.World)
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	if player.InvulnMS > 0 {
		// 10 Hz flicker off the sim clock.
		if int(session.Clock/100)%2 == 0 {
			return
		}
	}

	sx, sy := shakeOffset(session)
	x := float32(obj.X) + sx
	y := float32(obj.Y) + sy
	w := float32(obj.W)
	h := float32(obj.H)

	hull := color.RGBA{0, 229, 255, 255}
	vector.FillRect(screen, x+w*0.42, y, w*0.16, h, hull, false)        // nose column
	vector.FillRect(screen, x, y+h*0.45, w, h*0.55, hull, false)        // wings
	vector.FillRect(screen, x+w*0.3, y+h*0.2, w*0.4, h*0.5, color.RGBA{224, 247, 250, 255}, false)

	// Engine glow.
	vector.FillRect(screen, x+w*0.35, y+h, w*0.3, 4, color.RGBA{255, 196, 0, 200}, false)

	if session.EffectActive(cfg.PowerShield) {
		cx := x + w/2
		cy := y + h/2
		r := float32(math.Hypot(float64(w), float64(h))) * 0.62
		vector.StrokeCircle(screen, cx, cy, r, 2, color.RGBA{0, 229, 255, 140}, false)
	}
}

// DrawPowerUps renders the falling pickups as spinning diamonds.
func DrawPowerUps(e *ecs.ECS, screen *ebiten.Image) {
	session := MustSession(e.World)
	sx, sy := shakeOffset(session)

	factory.EachActive(e.World, tags.PowerUp, func(entry *donburi.Entry) {
		pu := components.PowerUp.Get(entry)
		obj := components.Object.Get(entry)
		cx := float32(obj.X+obj.W/2) + sx
		cy := float32(obj.Y+obj.H/2) + sy
		r := float32(obj.W) / 2
		clr := cfg.PowerUp.Colors[pu.Kind]

		// Pulse the ring with the spin angle.
		pulse := float32(0.85 + 0.15*math.Sin(pu.Rotation))
		vector.DrawFilledCircle(screen, cx, cy, r*0.55*pulse, clr, false)
		vector.StrokeCircle(screen, cx, cy, r*pulse, 2, clr, false)
	})
}
