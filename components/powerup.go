package components

import (
	cfg "github.com/automoto/cyber-defender/config"
	"github.com/yohamta/donburi"
)

type PowerUpData struct {
	Kind     cfg.PowerUpKind
	Rotation float64
}

var PowerUp = donburi.NewComponentType[PowerUpData]()
