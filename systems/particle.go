package systems

import (
	"github.com/automoto/cyber-defender/components"
	cfg "github.com/automoto/cyber-defender/config"
	"github.com/automoto/cyber-defender/systems/factory"
	"github.com/automoto/cyber-defender/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles integrates the cosmetic particles and releases them
// as their lifetime runs out. Particles have no collision objects.
func UpdateParticles(e *ecs.ECS) {
	dt := cfg.Sim.TickMS

	factory.EachActive(e.World, tags.Particle, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.LifeMS -= dt
		if p.LifeMS <= 0 {
			factory.Release(entry)
		}
	})
}
