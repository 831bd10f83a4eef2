package systems

import (
	"github.com/automoto/cyber-defender/components"
	cfg "github.com/automoto/cyber-defender/config"
	"github.com/automoto/cyber-defender/systems/factory"
	"github.com/automoto/cyber-defender/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSession drives the phase machine and the session-owned
// timers. Runs every tick regardless of phase; gameplay systems are
// wrapped with WithPhase and only run while the session is live.
func UpdateSession(e *ecs.ECS) {
	session := MustSession(e.World)
	input := getOrCreateInput(e)

	switch session.Phase {
	case components.PhaseReady:
		if GetAction(input, cfg.ActionFire).JustPressed {
			session.Phase = components.PhaseRunning
		}
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			session.ExitRequested = true
		}

	case components.PhaseRunning:
		if GetAction(input, cfg.ActionPause).JustPressed {
			session.Paused = !session.Paused
		}
		if !session.Paused {
			advanceSessionTimers(session)
		}

	case components.PhaseGameOver, components.PhaseWon:
		if GetAction(input, cfg.ActionFire).JustPressed {
			ResetSession(e)
		}
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			session.ExitRequested = true
		}
	}
}

// advanceSessionTimers moves the simulation clock and counts down the
// session-owned decay timers for one tick.
func advanceSessionTimers(session *components.SessionData) {
	dt := cfg.Sim.TickMS
	session.Clock += dt

	if session.ComboTimerMS > 0 {
		session.ComboTimerMS -= dt
		if session.ComboTimerMS <= 0 {
			session.ComboTimerMS = 0
			session.Combo = 0
		}
	}

	for kind, remaining := range session.Effects {
		remaining -= dt
		if remaining <= 0 {
			delete(session.Effects, kind)
		} else {
			session.Effects[kind] = remaining
		}
	}

	// Level is a pure function of score.
	session.Level = session.Score/cfg.Rules.LevelScoreStep + 1
}

// WithPhase wraps a gameplay system so it only runs while the session
// is live and unpaused. Terminal phases freeze the simulation but the
// render pass keeps drawing the frozen state under the overlay.
func WithPhase(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		session := MustSession(e.World)
		if session.Phase != components.PhaseRunning || session.Paused {
			return
		}
		system(e)
	}
}

// ComboMultiplier is the scoring multiplier for a consecutive-kill
// count: x1 base, one extra point per ComboPerStep kills, capped.
func ComboMultiplier(combo int) int {
	bonus := combo / cfg.Rules.ComboPerStep
	if bonus > cfg.Rules.ComboMaxBonus {
		bonus = cfg.Rules.ComboMaxBonus
	}
	return 1 + bonus
}

// AddKillScore applies a kill: multiplied score, combo bump, combo
// window reset. Returns the points awarded.
func AddKillScore(session *components.SessionData, basePoints int) int {
	points := basePoints * ComboMultiplier(session.Combo)
	session.Score += points
	session.Combo++
	session.ComboTimerMS = cfg.Rules.ComboWindowMS
	return points
}

// SetGameOver moves the session to its failure terminal state exactly
// once and persists the best score.
func SetGameOver(session *components.SessionData) {
	if session.Phase != components.PhaseRunning {
		return
	}
	session.Phase = components.PhaseGameOver
	finishRun(session)
}

// SetWon moves the session to its victory terminal state exactly once.
func SetWon(session *components.SessionData) {
	if session.Phase != components.PhaseRunning {
		return
	}
	session.Phase = components.PhaseWon
	finishRun(session)
}

func finishRun(session *components.SessionData) {
	SaveHighScore(session.Score)
	if session.Score > session.HighScore {
		session.HighScore = session.Score
	}
	IncrementGamesPlayed()
}

// ResetSession rebuilds the run from scratch: every pool slot
// released, the player back at its rest position, and a fresh session
// record. Only the high score and the RNG stream survive the reset.
func ResetSession(e *ecs.ECS) {
	factory.ReleaseAll(e.World, tags.Projectile)
	factory.ReleaseAll(e.World, tags.Enemy)
	factory.ReleaseAll(e.World, tags.Particle)
	factory.ReleaseAll(e.World, tags.PowerUp)

	if player, ok := tags.Player.First(e.World); ok {
		factory.ResetPlayer(player)
	}

	session := MustSession(e.World)
	*session = components.SessionData{
		Phase:     components.PhaseReady,
		Level:     1,
		HighScore: session.HighScore,
		Effects:   make(map[cfg.PowerUpKind]float64),
		Rng:       session.Rng,
	}
}

// MustSession returns the singleton session record.
func MustSession(w donburi.World) *components.SessionData {
	entry, ok := components.Session.First(w)
	if !ok {
		panic("session not created")
	}
	return components.Session.Get(entry)
}

// MustFX returns the singleton presentation-effect record.
func MustFX(w donburi.World) *components.FXData {
	entry, ok := components.FX.First(w)
	if !ok {
		panic("fx not created")
	}
	return components.FX.Get(entry)
}

// HostileDT is the tick duration experienced by enemies and their
// projectiles: halved while a slow-time power-up is active. The
// player, the timers and the player's own shots run at full speed.
func HostileDT(session *components.SessionData) float64 {
	if session.EffectActive(cfg.PowerSlowTime) {
		return cfg.Sim.TickMS * cfg.PowerUp.SlowFactor
	}
	return cfg.Sim.TickMS
}
