package factory

import (
	"image/color"
	"math"

	"github.com/automoto/cyber-defender/components"
	cfg "github.com/automoto/cyber-defender/config"
	"github.com/yohamta/donburi/ecs"
)

// ExplosionBurst scatters a ring of explosion particles from a death
// or impact point.
func ExplosionBurst(ecs *ecs.ECS, x, y float64, clr color.RGBA) {
	session := mustSession(ecs.World)
	n := cfg.FX.ExplosionParticles
	for i := 0; i < n; i++ {
		angle := float64(i)/float64(n)*2*math.Pi + session.Rng.Float64()*0.5
		speed := 0.06 + session.Rng.Float64()*0.12
		SpawnParticle(ecs, components.ParticleData{
			Kind:   components.ParticleExplosion,
			X:      x,
			Y:      y,
			VX:     math.Cos(angle) * speed,
			VY:     math.Sin(angle) * speed,
			LifeMS: cfg.FX.ParticleLifeMS,
			MaxMS:  cfg.FX.ParticleLifeMS,
			Size:   2 + session.Rng.Float64()*3,
			Color:  clr,
		})
	}
}

// SparkBurst is the small flash used for non-lethal projectile hits.
func SparkBurst(ecs *ecs.ECS, x, y float64, clr color.RGBA) {
	session := mustSession(ecs.World)
	for i := 0; i < cfg.FX.SparkParticles; i++ {
		SpawnParticle(ecs, components.ParticleData{
			Kind:   components.ParticleSpark,
			X:      x,
			Y:      y,
			VX:     (session.Rng.Float64() - 0.5) * 0.2,
			VY:     (session.Rng.Float64() - 0.5) * 0.2,
			LifeMS: cfg.FX.ParticleLifeMS * 0.5,
			MaxMS:  cfg.FX.ParticleLifeMS * 0.5,
			Size:   1 + session.Rng.Float64()*2,
			Color:  clr,
		})
	}
}

// PickupBurst confirms a power-up collection.
func PickupBurst(ecs *ecs.ECS, x, y float64, clr color.RGBA) {
	session := mustSession(ecs.World)
	for i := 0; i < cfg.FX.PickupParticles; i++ {
		angle := session.Rng.Float64() * 2 * math.Pi
		SpawnParticle(ecs, components.ParticleData{
			Kind:   components.ParticleTrail,
			X:      x,
			Y:      y,
			VX:     math.Cos(angle) * 0.08,
			VY:     math.Sin(angle)*0.08 - 0.04,
			LifeMS: cfg.FX.ParticleLifeMS * 0.7,
			MaxMS:  cfg.FX.ParticleLifeMS * 0.7,
			Size:   2,
			Color:  clr,
		})
	}
}

// FloatingText spawns a drifting score/label readout.
func FloatingText(ecs *ecs.ECS, x, y float64, s string, clr color.RGBA) {
	SpawnParticle(ecs, components.ParticleData{
		Kind:   components.ParticleText,
		X:      x,
		Y:      y,
		VY:     -0.05,
		LifeMS: cfg.FX.TextLifeMS,
		MaxMS:  cfg.FX.TextLifeMS,
		Color:  clr,
		Text:   s,
	})
}
