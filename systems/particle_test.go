package systems

import (
	"testing"

	"github.com/automoto/cyber-defender/components"
	cfg "github.com/automoto/cyber-defender/config"
	"github.com/automoto/cyber-defender/systems/factory"
	"github.com/automoto/cyber-defender/tags"
)

// TestParticleLifeExpiry verifies a particle integrates its velocity
// while alive and releases its slot exactly when its lifetime runs
// out.
func TestParticleLifeExpiry(t *testing.T) {
	e := newTestArena(t, 1)
	startRun(t, e)

	life := cfg.Sim.TickMS * 3.5
	entry := factory.SpawnParticle(e, components.ParticleData{
		Kind:   components.ParticleSpark,
		X:      100,
		Y:      100,
		VX:     0.1,
		VY:     -0.05,
		LifeMS: life,
		MaxMS:  life,
	})
	if entry == nil {
		t.Fatal("spawn failed")
	}
	p := components.Particle.Get(entry)

	for i := 0; i < 3; i++ {
		UpdateParticles(e)
		if !components.PoolSlot.Get(entry).Active {
			t.Fatalf("particle released after %d ticks, life was %.1f ticks", i+1, life/cfg.Sim.TickMS)
		}
	}
	if p.X <= 100 || p.Y >= 100 {
		t.Errorf("particle did not integrate velocity: at (%v, %v)", p.X, p.Y)
	}

	UpdateParticles(e)
	if components.PoolSlot.Get(entry).Active {
		t.Fatal("particle outlived its lifetime")
	}
	if n := factory.CountActive(e.World, tags.Particle); n != 0 {
		t.Fatalf("%d particles still live after expiry", n)
	}
}

// TestExplosionBurstFillsPool verifies a kill burst activates the
// configured particle count and that they all decay away.
func TestExplosionBurstFillsPool(t *testing.T) {
	e := newTestArena(t, 1)
	startRun(t, e)

	factory.ExplosionBurst(e, 200, 200, cfg.HUD.LifeColor)
	if n := factory.CountActive(e.World, tags.Particle); n != cfg.FX.ExplosionParticles {
		t.Fatalf("%d particles after burst, want %d", n, cfg.FX.ExplosionParticles)
	}

	ticks := int(cfg.FX.ParticleLifeMS/cfg.Sim.TickMS) + 2
	for i := 0; i < ticks; i++ {
		UpdateParticles(e)
	}
	if n := factory.CountActive(e.World, tags.Particle); n != 0 {
		t.Fatalf("%d particles survived their lifetime", n)
	}
}
