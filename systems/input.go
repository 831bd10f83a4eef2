package systems

import (
	"github.com/automoto/cyber-defender/components"
	cfg "github.com/automoto/cyber-defender/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid per-frame allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// UpdateInput polls raw keyboard/gamepad/touch state and latches it
// into the singleton InputData. Must run before every other system.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	var current [cfg.ActionCount]bool

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					current[actionID] = true
				}
			}
		}
	}

	// Merge the left analog stick into the movement actions
	left, right := analogStickState(gamepadIDs)
	if left {
		current[cfg.ActionMoveLeft] = true
	}
	if right {
		current[cfg.ActionMoveRight] = true
	}

	pollTouch(&current)

	latchPolled(input, current)
}

// latchPolled absorbs the first polled frame without producing edges,
// so a key still held from the previous scene cannot register as
// JustPressed. Later frames latch normally.
func latchPolled(input *components.InputData, current [cfg.ActionCount]bool) {
	if !input.Primed {
		input.Primed = true
		input.Previous = current
		input.Current = current
		return
	}
	LatchFrame(input, current)
}

// LatchFrame rotates the action buffers: the previous frame becomes
// the edge-detection baseline for the new one. Split out so tests can
// drive the latch without real devices.
func LatchFrame(input *components.InputData, current [cfg.ActionCount]bool) {
	input.Previous = input.Current
	input.Current = current
}

// GetAction derives the temporal state of one action from the latch.
func GetAction(input *components.InputData, action cfg.ActionID) components.ActionState {
	return components.ActionState{
		Pressed:      input.Current[action],
		JustPressed:  input.Current[action] && !input.Previous[action],
		JustReleased: !input.Current[action] && input.Previous[action],
	}
}

// pollTouch maps active touches onto the configured screen zones.
// Each zone behaves exactly like holding its bound key.
func pollTouch(current *[cfg.ActionCount]bool) {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) == 0 {
		return
	}

	w := float64(cfg.C.Width)
	h := float64(cfg.C.Height)
	for _, id := range touchIDs {
		xi, yi := ebiten.TouchPosition(id)
		x := float64(xi) / w
		y := float64(yi) / h
		for _, zone := range cfg.Input.Touch {
			if x >= zone.MinX && x < zone.MaxX && y >= zone.MinY && y < zone.MaxY {
				current[zone.Action] = true
			}
		}
	}
}

// analogStickState reads the left analog stick from all gamepads with
// the configured deadzone.
func analogStickState(gamepads []ebiten.GamepadID) (left, right bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			left = true
		}
		if horizontal > deadzone {
			right = true
		}
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}
