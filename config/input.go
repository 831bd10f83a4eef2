package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionFire
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key and button bindings for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// TouchZone maps a screen rectangle (as fractions of the window) to a
// held action. Pressing inside the zone has the same effect as holding
// the bound key.
type TouchZone struct {
	Action                 ActionID
	MinX, MinY, MaxX, MaxY float64
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	Touch    []TouchZone
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionFire: {
				// Space starts, fires and restarts depending on phase.
				Keys: []ebiten.Key{ebiten.KeySpace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
		},
		// On-screen touch surface: bottom corners steer, the rest of
		// the screen fires. Mirrors the keyboard latch exactly.
		Touch: []TouchZone{
			{Action: ActionMoveLeft, MinX: 0.0, MinY: 0.6, MaxX: 0.33, MaxY: 1.0},
			{Action: ActionMoveRight, MinX: 0.67, MinY: 0.6, MaxX: 1.0, MaxY: 1.0},
			{Action: ActionFire, MinX: 0.0, MinY: 0.0, MaxX: 1.0, MaxY: 0.6},
		},
	}
}
