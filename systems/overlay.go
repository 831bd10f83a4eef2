package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/cyber-defender/components"
	cfg "github.com/automoto/cyber-defender/config"
	"github.com/automoto/cyber-defender/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawOverlay renders the full-screen state screens: the ready prompt,
// the pause veil and the two terminal screens. Terminal screens fade
// in over the frozen field.
func DrawOverlay(e *ecs.ECS, screen *ebiten.Image) {
	session := MustSession(e.World)
	fx := MustFX(e.World)

	switch session.Phase {
	case components.PhaseReady:
		drawOverlayScreen(screen, 1,
			"CYBER DEFENDER", cfg.Overlay.TitleColor,
			"PRESS SPACE TO START", "")

	case components.PhaseRunning:
		if session.Paused {
			drawOverlayScreen(screen, 1,
				"PAUSED", cfg.Overlay.PromptColor,
				"ESC TO RESUME", "")
		}

	case components.PhaseGameOver:
		drawOverlayScreen(screen, fx.FadeAlpha,
			"SYSTEM FAILURE", cfg.Overlay.TitleColor,
			"PRESS SPACE TO RETRY",
			fmt.Sprintf("SCORE %d   BEST %d", session.Score, session.HighScore))

	case components.PhaseWon:
		drawOverlayScreen(screen, fx.FadeAlpha,
			"SECTOR CLEARED", cfg.Overlay.WonTitleColor,
			"PRESS SPACE TO PLAY AGAIN",
			fmt.Sprintf("SCORE %d   BEST %d", session.Score, session.HighScore))
	}
}

func drawOverlayScreen(screen *ebiten.Image, alpha float32, title string, titleColor color.RGBA, prompt, detail string) {
	if alpha <= 0 {
		return
	}

	bg := cfg.Overlay.BackgroundColor
	bg.A = uint8(float32(bg.A) * alpha)
	vector.FillRect(screen, 0, 0, float32(cfg.C.Width), float32(cfg.C.Height), bg, false)

	titleX := (cfg.C.Width - len(title)*20) / 2
	text.Draw(screen, title, fonts.Title.Get(), titleX, int(cfg.Overlay.TitleY), fade(titleColor, alpha))

	promptX := (cfg.C.Width - len(prompt)*8) / 2
	text.Draw(screen, prompt, fonts.Bold.Get(), promptX, int(cfg.Overlay.PromptY), fade(cfg.Overlay.PromptColor, alpha))

	if detail != "" {
		detailX := (cfg.C.Width - len(detail)*8) / 2
		text.Draw(screen, detail, fonts.HUD.Get(), detailX, int(cfg.Overlay.PromptY)+28, fade(cfg.Overlay.PromptColor, alpha))
	}
}

func fade(clr color.RGBA, alpha float32) color.RGBA {
	clr.A = uint8(float32(clr.A) * alpha)
	return clr
}
