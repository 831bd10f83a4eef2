package systems

import (
	"testing"

	"github.com/automoto/cyber-defender/components"
	cfg "github.com/automoto/cyber-defender/config"
	"github.com/automoto/cyber-defender/systems/factory"
	"github.com/automoto/cyber-defender/tags"
)

// TestShotKillsGrunt runs the basic kill path end to end: a player
// shot overlapping a one-health enemy releases both, scores the kill
// and bumps the combo.
func TestShotKillsGrunt(t *testing.T) {
	e := newTestArena(t, 1)
	session := startRun(t, e)

	enemy := factory.SpawnEnemy(e, cfg.EnemyGrunt, 200, 100)
	if enemy == nil {
		t.Fatal("spawn failed")
	}
	obj := components.Object.Get(enemy)

	// Drop a shot dead center on the enemy.
	factory.FireProjectile(e, components.FromPlayer, components.PatternStraight,
		obj.X+obj.W/2, obj.Y+obj.H/2, 0, -cfg.Player.ShotSpeedY, 1)

	UpdateProjectiles(e)

	if activeEnemies(e) != 0 {
		t.Error("enemy survived a lethal hit")
	}
	if n := factory.CountActive(e.World, tags.Projectile); n != 0 {
		t.Errorf("%d projectiles still live after impact", n)
	}
	if session.Score != cfg.Enemy.Types[cfg.EnemyGrunt].Points {
		t.Errorf("score %d, want %d", session.Score, cfg.Enemy.Types[cfg.EnemyGrunt].Points)
	}
	if session.Combo != 1 {
		t.Errorf("combo %d, want 1", session.Combo)
	}
	if n := factory.CountActive(e.World, tags.Particle); n == 0 {
		t.Error("no death burst particles at the kill site")
	}
}

// TestTankSoaksDamage verifies a multi-health enemy survives partial
// damage and dies at zero.
func TestTankSoaksDamage(t *testing.T) {
	e := newTestArena(t, 1)
	session := startRun(t, e)

	entry := factory.SpawnEnemy(e, cfg.EnemyTank, 200, 100)
	hp := cfg.Enemy.Types[cfg.EnemyTank].Health

	for i := 0; i < hp-1; i++ {
		HitEnemy(e, session, entry, 1)
		if activeEnemies(e) != 1 {
			t.Fatalf("tank died after %d of %d hits", i+1, hp)
		}
	}
	if session.Score != 0 {
		t.Error("partial damage scored points")
	}

	HitEnemy(e, session, entry, 1)
	if activeEnemies(e) != 0 {
		t.Fatal("tank survived lethal damage")
	}
	if session.Score != cfg.Enemy.Types[cfg.EnemyTank].Points {
		t.Errorf("score %d, want %d", session.Score, cfg.Enemy.Types[cfg.EnemyTank].Points)
	}
}

// TestDamagePlayerLifeAndInvuln verifies the hit sequence: life lost,
// invulnerability window opened, further hits ignored until it decays.
func TestDamagePlayerLifeAndInvuln(t *testing.T) {
	e := newTestArena(t, 1)
	session := startRun(t, e)
	player := playerData(t, e)

	DamagePlayer(e, session)
	if player.Lives != cfg.Player.StartingLives-1 {
		t.Fatalf("lives %d, want %d", player.Lives, cfg.Player.StartingLives-1)
	}
	if player.InvulnMS != cfg.Player.InvulnMS {
		t.Fatalf("invuln %v, want %v", player.InvulnMS, cfg.Player.InvulnMS)
	}

	// A second hit inside the window costs nothing.
	DamagePlayer(e, session)
	if player.Lives != cfg.Player.StartingLives-1 {
		t.Fatal("invulnerable player lost a life")
	}

	// The window only decays, never grows, while it runs down.
	latch(e)
	prev := player.InvulnMS
	for i := 0; i < 200 && player.InvulnMS > 0; i++ {
		UpdatePlayer(e)
		if player.InvulnMS > prev {
			t.Fatalf("invuln grew: %v -> %v", prev, player.InvulnMS)
		}
		prev = player.InvulnMS
	}
	if player.InvulnMS != 0 {
		t.Fatal("invuln never decayed to zero")
	}

	DamagePlayer(e, session)
	if player.Lives != cfg.Player.StartingLives-2 {
		t.Fatal("post-window hit did not cost a life")
	}
}

// TestLastLifeEndsRun verifies losing the final life moves the session
// to game over.
func TestLastLifeEndsRun(t *testing.T) {
	e := newTestArena(t, 1)
	session := startRun(t, e)
	player := playerData(t, e)

	player.Lives = 1
	DamagePlayer(e, session)

	if session.Phase != components.PhaseGameOver {
		t.Fatalf("phase %v after final life, want game over", session.Phase)
	}
}

// TestShieldBlocksDamage verifies an active shield absorbs hits
// without costing a life.
func TestShieldBlocksDamage(t *testing.T) {
	e := newTestArena(t, 1)
	session := startRun(t, e)
	player := playerData(t, e)

	session.Effects[cfg.PowerShield] = 1000
	DamagePlayer(e, session)
	if player.Lives != cfg.Player.StartingLives {
		t.Fatal("shielded player lost a life")
	}
}

// TestBossKillWins verifies destroying the boss ends the run in the
// won state.
func TestBossKillWins(t *testing.T) {
	e := newTestArena(t, 1)
	session := startRun(t, e)

	entry := factory.SpawnEnemy(e, cfg.EnemyBoss, 200, 80)
	session.BossActive = true

	KillEnemy(e, session, entry)

	if session.Phase != components.PhaseWon {
		t.Fatalf("phase %v after boss kill, want won", session.Phase)
	}
	if session.BossActive {
		t.Error("boss still flagged active after dying")
	}
}

// TestRepairCapsAtMaxLives verifies the repair pickup never exceeds
// the life cap.
func TestRepairCapsAtMaxLives(t *testing.T) {
	e := newTestArena(t, 1)
	session := startRun(t, e)
	player := playerData(t, e)

	player.Lives = player.MaxLives
	pu := factory.SpawnPowerUp(e, cfg.PowerRepair, 100, 100)
	CollectPowerUp(e, session, pu)
	if player.Lives != player.MaxLives {
		t.Fatalf("lives %d beyond cap %d", player.Lives, player.MaxLives)
	}

	player.Lives = 1
	pu = factory.SpawnPowerUp(e, cfg.PowerRepair, 100, 100)
	CollectPowerUp(e, session, pu)
	if player.Lives != 2 {
		t.Fatalf("repair gave %d lives, want 2", player.Lives)
	}
}

// TestCollectTimedPowerUp verifies timed pickups set their duration.
func TestCollectTimedPowerUp(t *testing.T) {
	e := newTestArena(t, 1)
	session := startRun(t, e)

	pu := factory.SpawnPowerUp(e, cfg.PowerRapidFire, 100, 100)
	CollectPowerUp(e, session, pu)

	if got := session.Effects[cfg.PowerRapidFire]; got != cfg.PowerUp.DurationMS[cfg.PowerRapidFire] {
		t.Fatalf("rapid fire duration %v, want %v", got, cfg.PowerUp.DurationMS[cfg.PowerRapidFire])
	}
	if n := factory.CountActive(e.World, tags.PowerUp); n != 0 {
		t.Error("collected pickup still active")
	}
}

// TestEnemyLeakCostsLife verifies the default leak policy: an enemy
// past the bottom edge is released and the player pays a life.
func TestEnemyLeakCostsLife(t *testing.T) {
	e := newTestArena(t, 1)
	startRun(t, e)
	player := playerData(t, e)

	entry := factory.SpawnEnemy(e, cfg.EnemyGrunt, 200, 100)
	obj := components.Object.Get(entry)
	obj.Y = float64(cfg.C.Height) + 1
	obj.Update()

	UpdateCollisions(e)

	if activeEnemies(e) != 0 {
		t.Error("leaked enemy not released")
	}
	if player.Lives != cfg.Player.StartingLives-1 {
		t.Errorf("lives %d after leak, want %d", player.Lives, cfg.Player.StartingLives-1)
	}
}
