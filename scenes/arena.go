package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/automoto/cyber-defender/assets"
	cfg "github.com/automoto/cyber-defender/config"
	"github.com/automoto/cyber-defender/systems"
	"github.com/automoto/cyber-defender/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs one game session. The ebiten frame rate drives a
// fixed-timestep accumulator: each frame runs zero or more full
// simulation ticks so gameplay speed is independent of display rate.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	clock        *systems.Clock
	seed         int64
	once         sync.Once
}

// NewArenaScene creates a new game session scene
func NewArenaScene(sc SceneChanger) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, seed: time.Now().UnixNano()}
}

// NewArenaSceneWithSeed pins the session RNG, for replays and tests.
func NewArenaSceneWithSeed(sc SceneChanger, seed int64) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, seed: seed}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)

	steps := as.clock.Steps(time.Now())
	for i := 0; i < steps; i++ {
		as.ecs.Update()
	}

	session := systems.MustSession(as.ecs.World)
	if session.ExitRequested {
		as.sceneChanger.ChangeScene(NewMenuScene(as.sceneChanger))
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	as.clock = systems.NewClock()
	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSession)

	// Gameplay systems, frozen outside the running phase
	e.AddSystem(systems.WithPhase(systems.UpdatePlayer))
	e.AddSystem(systems.WithPhase(systems.UpdateEnemies))
	e.AddSystem(systems.WithPhase(systems.UpdateProjectiles))
	e.AddSystem(systems.WithPhase(systems.UpdateCollisions))
	e.AddSystem(systems.WithPhase(systems.UpdatePowerUps))
	e.AddSystem(systems.WithPhase(systems.UpdateParticles))
	e.AddSystem(systems.WithPhase(systems.UpdateSpawner))

	// Presentation state keeps animating over frozen screens
	e.AddSystem(systems.UpdateEffects)

	// Renderers, back to front
	e.AddRenderer(cfg.Default, systems.DrawBackdrop)
	e.AddRenderer(cfg.Default, systems.DrawParticles)
	e.AddRenderer(cfg.Default, systems.DrawProjectiles)
	e.AddRenderer(cfg.Default, systems.DrawEnemies)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.DrawPowerUps)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawOverlay)

	as.ecs = e

	arena := assets.MustLoadArena()
	factory.CreateBackdrop(e, arena)
	factory.CreateSpace(e, arena.Width, arena.Height, 16, 16)
	factory.CreateSession(e, as.seed, systems.LoadHighScore())
	factory.CreatePlayer(e)
	factory.PreSpawnPools(e)
}
