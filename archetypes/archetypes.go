package archetypes

import (
	"github.com/automoto/cyber-defender/components"
	cfg "github.com/automoto/cyber-defender/config"
	"github.com/automoto/cyber-defender/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.PoolSlot,
		components.Enemy,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.PoolSlot,
		components.Projectile,
		components.Object,
	)
	Particle = newArchetype(
		tags.Particle,
		components.PoolSlot,
		components.Particle,
	)
	PowerUp = newArchetype(
		tags.PowerUp,
		components.PoolSlot,
		components.PowerUp,
		components.Object,
	)
	Session = newArchetype(
		components.Session,
	)
	FX = newArchetype(
		components.FX,
	)
	Space = newArchetype(
		components.Space,
	)
	Backdrop = newArchetype(
		components.Backdrop,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
