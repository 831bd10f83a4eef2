package components

import (
	"math/rand"

	cfg "github.com/automoto/cyber-defender/config"
	"github.com/yohamta/donburi"
)

// Phase is the session state machine:
// Ready -> Running -> {GameOver, Won} -> (restart) -> Ready.
type Phase int

const (
	PhaseReady Phase = iota
	PhaseRunning
	PhaseGameOver
	PhaseWon
)

// SessionData is the aggregate root of one arena run. It is a
// singleton per scene and fully rebuilt on reset; nothing except the
// high score survives a reset boundary.
type SessionData struct {
	Phase  Phase
	Paused bool

	// Clock is accumulated simulated time in ms. All cooldown and
	// spawn-rate comparisons use it rather than wall time, so a run is
	// deterministic under test and unaffected by frame stalls.
	Clock float64

	Score     int
	Level     int
	HighScore int

	Combo        int
	ComboTimerMS float64

	LastShotAt    float64
	LastSpawnAt   float64
	LastPowerUpAt float64

	Shake float64 // screen-shake magnitude in px

	BossActive bool

	// ExitRequested asks the scene driver to return to the menu. Set
	// from the ready and terminal phases only.
	ExitRequested bool

	// Effects holds remaining duration in ms per active power-up.
	Effects map[cfg.PowerUpKind]float64

	// Rng drives spawn jitter, drop rolls and boss pattern selection.
	// Seeded per session so tests can pin a sequence.
	Rng *rand.Rand
}

var Session = donburi.NewComponentType[SessionData]()

// EffectActive reports whether a power-up effect still has time left.
func (s *SessionData) EffectActive(kind cfg.PowerUpKind) bool {
	return s.Effects[kind] > 0
}
