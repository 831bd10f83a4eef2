package systems

import (
	"testing"

	"github.com/automoto/cyber-defender/components"
	cfg "github.com/automoto/cyber-defender/config"
	"github.com/automoto/cyber-defender/systems/factory"
	"github.com/automoto/cyber-defender/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestArena builds a headless session world: space, session with a
// pinned seed, player and all pools. No renderers and no real input
// devices are involved.
func newTestArena(t *testing.T, seed int64) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateSession(e, seed, 0)
	factory.CreatePlayer(e)
	factory.PreSpawnPools(e)
	return e
}

// latch drives the input singleton with a synthetic frame, as if the
// given actions were the only ones held.
func latch(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	var f [cfg.ActionCount]bool
	for _, a := range actions {
		f[a] = true
	}
	LatchFrame(input, f)
}

// startRun walks the session from ready into running with a single
// fire press.
func startRun(t *testing.T, e *ecs.ECS) *components.SessionData {
	t.Helper()
	session := MustSession(e.World)
	latch(e, cfg.ActionFire)
	UpdateSession(e)
	if session.Phase != components.PhaseRunning {
		t.Fatalf("session did not start: phase %v", session.Phase)
	}
	latch(e)
	return session
}

func playerData(t *testing.T, e *ecs.ECS) *components.PlayerData {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	if !ok {
		t.Fatal("no player entity")
	}
	return components.Player.Get(entry)
}

func activeEnemies(e *ecs.ECS) int {
	return factory.CountActive(e.World, tags.Enemy)
}
