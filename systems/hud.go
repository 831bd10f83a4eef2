package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/cyber-defender/components"
	cfg "github.com/automoto/cyber-defender/config"
	"github.com/automoto/cyber-defender/fonts"
	"github.com/automoto/cyber-defender/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders score, level, lives and the active power-up readout
// along the top of the screen, plus the combo banner when a streak is
// running.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	session := MustSession(e.World)
	fx := MustFX(e.World)

	m := cfg.HUD.Margin
	line := cfg.HUD.LineHeight
	hudFont := fonts.HUD.Get()

	text.Draw(screen, fmt.Sprintf("SCORE %d", session.Score), hudFont,
		int(m), int(m+line), cfg.HUD.TextColor)
	text.Draw(screen, fmt.Sprintf("BEST %d", session.HighScore), hudFont,
		int(m), int(m+line*2), cfg.HUD.DimTextColor)

	levelLabel := fmt.Sprintf("LV %d", session.Level)
	levelX := cfg.C.Width - int(m) - len(levelLabel)*8
	text.Draw(screen, levelLabel, hudFont, levelX, int(m+line), cfg.HUD.AccentColor)

	drawLives(e, screen)
	drawEffectBars(screen, session)

	if session.Combo >= 2 {
		banner := fmt.Sprintf("x%d COMBO (%d)", ComboMultiplier(session.Combo), session.Combo)
		x := (cfg.C.Width - len(banner)*8) / 2
		y := int(m + line*2 - float64(fx.PopOffset))
		text.Draw(screen, banner, fonts.Bold.Get(), x, y, cfg.HUD.AccentColor)
	}
}

func drawLives(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	m := float32(cfg.HUD.Margin)
	size := float32(10)
	y := float32(cfg.C.Height) - m - size
	for i := 0; i < player.Lives; i++ {
		x := m + float32(i)*(size+4)
		vector.FillRect(screen, x, y, size, size, cfg.HUD.LifeColor, false)
	}
}

// drawEffectBars stacks a small labeled countdown bar per active
// power-up in the top-right corner.
func drawEffectBars(screen *ebiten.Image, session *components.SessionData) {
	barW := float32(64)
	barH := float32(5)
	x := float32(cfg.C.Width) - float32(cfg.HUD.Margin) - barW
	y := float32(cfg.HUD.Margin) + float32(cfg.HUD.LineHeight)*1.5

	for kind := cfg.PowerUpKind(0); kind < cfg.PowerUpKindCount; kind++ {
		remaining, ok := session.Effects[kind]
		if !ok || remaining <= 0 {
			continue
		}
		total := cfg.PowerUp.DurationMS[kind]
		frac := float32(remaining / total)

		text.Draw(screen, cfg.PowerUp.Labels[kind], fonts.Small.Get(),
			int(x), int(y+barH), cfg.PowerUp.Colors[kind])
		vector.FillRect(screen, x, y+barH+3, barW, barH, cfg.HUD.EffectColor, false)
		vector.FillRect(screen, x, y+barH+3, barW*frac, barH, cfg.PowerUp.Colors[kind], false)
		y += barH*2 + 14
	}
}

// drawTinyText is the shared small-font helper for in-world labels.
func drawTinyText(screen *ebiten.Image, s string, x, y float32, clr color.RGBA) {
	text.Draw(screen, s, fonts.Small.Get(), int(x), int(y), clr)
}
