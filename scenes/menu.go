package scenes

import (
	"image/color"
	"os"

	"github.com/automoto/cyber-defender/systems"
	"github.com/automoto/cyber-defender/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title screen. It has no ECS; the ebitenui
// tree and a couple of key shortcuts are all it needs.
type MenuScene struct {
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	shouldStart  bool
}

// NewMenuScene creates a new title scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	if ms.menuUI == nil {
		ms.menuUI = ui.NewMenuUI(
			systems.LoadHighScore(),
			systems.LoadGamesPlayed(),
			func() { ms.shouldStart = true },
			func() { os.Exit(0) },
		)
	}

	ms.menuUI.Update()

	// Keyboard shortcut alongside the button.
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		ms.shouldStart = true
	}

	if ms.shouldStart {
		ms.sceneChanger.ChangeScene(NewArenaScene(ms.sceneChanger))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}
