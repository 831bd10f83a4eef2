package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ParticleKind selects a draw style. Particles are cosmetic only and
// never enter the collision space.
type ParticleKind int

const (
	ParticleExplosion ParticleKind = iota
	ParticleSpark
	ParticleTrail
	ParticleText
)

type ParticleData struct {
	Kind   ParticleKind
	X, Y   float64
	VX, VY float64 // px per ms
	LifeMS float64
	MaxMS  float64
	Size   float64
	Color  color.RGBA
	Text   string // floating score text, ParticleText only
}

var Particle = donburi.NewComponentType[ParticleData]()
