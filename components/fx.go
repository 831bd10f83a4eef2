package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FXData holds the presentation-only tween state: the overlay fade
// that runs when the session enters a terminal phase and the combo
// banner pop. Renderers read the current tween values; only the
// effects system advances them.
type FXData struct {
	OverlayFade *gween.Tween
	ComboPop    *gween.Tween

	// Cached tween values, refreshed once per tick so drawers stay
	// read-only.
	FadeAlpha float32
	PopOffset float32

	LastPhase Phase
	LastCombo int
}

var FX = donburi.NewComponentType[FXData]()
