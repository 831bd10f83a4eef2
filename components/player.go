package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	SpeedX   float64 // px per ms
	Lives    int
	MaxLives int
	InvulnMS float64 // milliseconds of post-hit immunity remaining
}

var Player = donburi.NewComponentType[PlayerData]()
