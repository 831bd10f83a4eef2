package systems

import (
	"testing"

	"github.com/automoto/cyber-defender/components"
	cfg "github.com/automoto/cyber-defender/config"
	"github.com/automoto/cyber-defender/systems/factory"
	"github.com/automoto/cyber-defender/tags"
)

// TestPhaseMachine walks the full lifecycle:
// ready -> running -> game over -> (restart) -> ready.
func TestPhaseMachine(t *testing.T) {
	e := newTestArena(t, 1)
	session := MustSession(e.World)

	if session.Phase != components.PhaseReady {
		t.Fatalf("initial phase %v, want ready", session.Phase)
	}

	startRun(t, e)

	SetGameOver(session)
	if session.Phase != components.PhaseGameOver {
		t.Fatalf("phase %v, want game over", session.Phase)
	}

	// Fire restarts from the terminal screen.
	latch(e, cfg.ActionFire)
	UpdateSession(e)
	if session.Phase != components.PhaseReady {
		t.Fatalf("phase after restart %v, want ready", session.Phase)
	}
}

// TestTerminalExclusivity verifies the first terminal transition wins:
// a session cannot be both lost and won.
func TestTerminalExclusivity(t *testing.T) {
	e := newTestArena(t, 1)
	session := startRun(t, e)

	SetGameOver(session)
	SetWon(session)
	if session.Phase != components.PhaseGameOver {
		t.Fatalf("won overwrote game over: phase %v", session.Phase)
	}

	e2 := newTestArena(t, 1)
	session2 := startRun(t, e2)
	SetWon(session2)
	SetGameOver(session2)
	if session2.Phase != components.PhaseWon {
		t.Fatalf("game over overwrote won: phase %v", session2.Phase)
	}
}

// TestPauseFreezesClock verifies pausing stops the session clock and
// unpausing resumes it.
func TestPauseFreezesClock(t *testing.T) {
	e := newTestArena(t, 1)
	session := startRun(t, e)

	latch(e)
	UpdateSession(e)
	clockAfterTick := session.Clock
	if clockAfterTick <= 0 {
		t.Fatal("clock did not advance while running")
	}

	latch(e, cfg.ActionPause)
	UpdateSession(e)
	if !session.Paused {
		t.Fatal("pause press did not pause")
	}
	latch(e)
	UpdateSession(e)
	UpdateSession(e)
	if session.Clock != clockAfterTick {
		t.Fatalf("clock advanced while paused: %v -> %v", clockAfterTick, session.Clock)
	}

	latch(e, cfg.ActionPause)
	UpdateSession(e)
	latch(e)
	UpdateSession(e)
	if session.Clock <= clockAfterTick {
		t.Fatal("clock did not resume after unpause")
	}
}

// TestComboMultiplierSteps verifies the multiplier step function and
// its cap.
func TestComboMultiplierSteps(t *testing.T) {
	cases := []struct {
		combo int
		want  int
	}{
		{0, 1},
		{4, 1},
		{5, 2},
		{9, 2},
		{10, 3},
		{20, 5},
		{25, 5}, // capped
		{100, 5},
	}
	for _, tc := range cases {
		if got := ComboMultiplier(tc.combo); got != tc.want {
			t.Errorf("ComboMultiplier(%d) = %d, want %d", tc.combo, got, tc.want)
		}
	}
}

// TestScoreMonotonic verifies score never decreases across kills and
// combo expiry.
func TestScoreMonotonic(t *testing.T) {
	e := newTestArena(t, 1)
	session := startRun(t, e)

	prev := 0
	for i := 0; i < 30; i++ {
		AddKillScore(session, 100)
		if session.Score < prev {
			t.Fatalf("score decreased: %d -> %d", prev, session.Score)
		}
		prev = session.Score

		// Let the combo window lapse every few kills.
		if i%7 == 6 {
			session.ComboTimerMS = 1
			latch(e)
			UpdateSession(e)
			if session.Combo != 0 {
				t.Fatal("combo did not expire")
			}
			if session.Score < prev {
				t.Fatalf("score decreased on combo expiry: %d -> %d", prev, session.Score)
			}
		}
	}
}

// TestLevelFollowsScore verifies the level is score-derived.
func TestLevelFollowsScore(t *testing.T) {
	e := newTestArena(t, 1)
	session := startRun(t, e)

	session.Score = cfg.Rules.LevelScoreStep*3 + 1
	latch(e)
	UpdateSession(e)
	if session.Level != 4 {
		t.Fatalf("level %d, want 4", session.Level)
	}
}

// TestEffectExpiry verifies power-up timers count down and expire.
func TestEffectExpiry(t *testing.T) {
	e := newTestArena(t, 1)
	session := startRun(t, e)

	session.Effects[cfg.PowerRapidFire] = cfg.Sim.TickMS * 2.5
	latch(e)
	UpdateSession(e)
	UpdateSession(e)
	if !session.EffectActive(cfg.PowerRapidFire) {
		t.Fatal("effect expired early")
	}
	UpdateSession(e)
	if session.EffectActive(cfg.PowerRapidFire) {
		t.Fatal("effect outlived its duration")
	}
}

// TestResetClearsWorld verifies a reset releases every pool slot,
// restores the player and keeps only the high score.
func TestResetClearsWorld(t *testing.T) {
	e := newTestArena(t, 1)
	session := startRun(t, e)

	factory.SpawnEnemy(e, cfg.EnemyGrunt, 100, 50)
	factory.FireProjectile(e, components.FromPlayer, components.PatternStraight, 200, 300, 0, -0.5, 1)
	factory.SpawnPowerUp(e, cfg.PowerShield, 150, 10)
	session.Score = 4200
	session.HighScore = 9000
	session.Combo = 7
	playerData(t, e).Lives = 1

	ResetSession(e)

	if n := activeEnemies(e); n != 0 {
		t.Errorf("%d enemies survived reset", n)
	}
	if n := factory.CountActive(e.World, tags.Projectile); n != 0 {
		t.Errorf("%d projectiles survived reset", n)
	}
	if n := factory.CountActive(e.World, tags.PowerUp); n != 0 {
		t.Errorf("%d power-ups survived reset", n)
	}
	if session.Phase != components.PhaseReady {
		t.Errorf("phase %v after reset, want ready", session.Phase)
	}
	if session.Score != 0 || session.Combo != 0 || session.Clock != 0 {
		t.Errorf("run state survived reset: score %d combo %d clock %v",
			session.Score, session.Combo, session.Clock)
	}
	if session.HighScore != 9000 {
		t.Errorf("high score lost on reset: %d", session.HighScore)
	}
	if lives := playerData(t, e).Lives; lives != cfg.Player.StartingLives {
		t.Errorf("lives %d after reset, want %d", lives, cfg.Player.StartingLives)
	}
}

// TestResetDeterminism verifies two sessions with the same seed
// produce identical spawn sequences.
func TestResetDeterminism(t *testing.T) {
	run := func() []float64 {
		e := newTestArena(t, 77)
		startRun(t, e)
		var xs []float64
		for i := 0; i < 6; i++ {
			entry := factory.SpawnEnemy(e, cfg.EnemyStriker, 100, 0)
			if entry == nil {
				t.Fatal("spawn failed")
			}
			enemy := components.Enemy.Get(entry)
			xs = append(xs, enemy.PhaseOffset, enemy.DriftDir)
		}
		return xs
	}

	a := run()
	b := run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded runs diverged at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

// TestExitRequestedFromTerminal verifies escape from a terminal screen
// flags a menu exit but escape mid-run only pauses.
func TestExitRequestedFromTerminal(t *testing.T) {
	e := newTestArena(t, 1)
	session := startRun(t, e)

	latch(e, cfg.ActionPause)
	UpdateSession(e)
	if session.ExitRequested {
		t.Fatal("escape mid-run requested exit")
	}
	if !session.Paused {
		t.Fatal("escape mid-run did not pause")
	}

	session.Paused = false
	SetGameOver(session)
	latch(e)
	UpdateSession(e)
	latch(e, cfg.ActionMenuBack)
	UpdateSession(e)
	if !session.ExitRequested {
		t.Fatal("escape on terminal screen did not request exit")
	}
}
