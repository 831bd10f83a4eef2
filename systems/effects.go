package systems

import (
	"github.com/automoto/cyber-defender/components"
	cfg "github.com/automoto/cyber-defender/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances the presentation-only state: screen shake
// decay and the gween tweens behind the overlay fade and the combo
// banner pop. It is not phase-gated so the fade keeps running over a
// frozen terminal screen. Renderers read the cached values only.
func UpdateEffects(e *ecs.ECS) {
	session := MustSession(e.World)
	fx := MustFX(e.World)
	dtSec := float32(cfg.Sim.TickMS / 1000)

	session.Shake *= cfg.FX.ShakeDecay
	if session.Shake < 0.1 {
		session.Shake = 0
	}

	if session.Phase != fx.LastPhase {
		fx.LastPhase = session.Phase
		if session.Phase == components.PhaseGameOver || session.Phase == components.PhaseWon {
			fx.OverlayFade = gween.New(0, 1, cfg.Overlay.FadeInSec, ease.OutQuad)
		} else {
			fx.OverlayFade = nil
			fx.FadeAlpha = 1
		}
	}
	if fx.OverlayFade != nil {
		v, done := fx.OverlayFade.Update(dtSec)
		fx.FadeAlpha = v
		if done {
			fx.OverlayFade = nil
		}
	}

	if session.Combo > fx.LastCombo && session.Combo >= 2 {
		fx.ComboPop = gween.New(8, 0, 0.25, ease.OutQuad)
	}
	fx.LastCombo = session.Combo
	if fx.ComboPop != nil {
		v, done := fx.ComboPop.Update(dtSec)
		fx.PopOffset = v
		if done {
			fx.ComboPop = nil
			fx.PopOffset = 0
		}
	}
}
