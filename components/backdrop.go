package components

import (
	"github.com/automoto/cyber-defender/assets"
	"github.com/yohamta/donburi"
)

type BackdropData struct {
	Arena *assets.Arena
}

var Backdrop = donburi.NewComponentType[BackdropData]()
