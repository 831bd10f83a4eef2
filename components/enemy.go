package components

import (
	cfg "github.com/automoto/cyber-defender/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind       cfg.EnemyKind
	TypeConfig *cfg.EnemyKindConfig // cached stat block

	Health    int
	MaxHealth int

	// Visual state
	Rotation float64
	Scale    float64

	// Movement state
	PhaseOffset float64 // per-instance offset so sways don't sync up
	AnchorX     float64 // sway center line
	DriftDir    float64 // striker horizontal direction, -1 or 1
	NextFlipAt  float64 // sim-clock ms of the next randomized reversal

	// Boss state
	LastAttackAt float64
	SpiralAngle  float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
