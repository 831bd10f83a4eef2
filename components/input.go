package components

import (
	cfg "github.com/automoto/cyber-defender/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for
// all actions. JustPressed/JustReleased are computed on demand by
// comparing frames. Keyboard, gamepad and touch all merge into the
// same arrays, so the simulation never knows which device moved the
// ship.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	// Primed is false until the first polled frame has been absorbed.
	// Keys carried over from the previous scene must not edge.
	Primed bool
}

var Input = donburi.NewComponentType[InputData]()
