package spacallax

import (
	"fmt"

	"github.com/vovakirdan/spacallax/internal/config"
	"github.com/vovakirdan/spacallax/internal/core"
)

// Version is shown on the title screen.
const Version = "1.0.0"

var (
	colorBackground = core.RGB(10, 10, 20)
	colorPlayer     = core.RGB(50, 205, 50)
	colorLightGray  = core.RGB(211, 211, 211)
	colorLightGreen = core.RGB(144, 238, 144)
)

// Draw renders the current frame. It does not mutate the game.
func (g *Game) Draw(r Renderer) {
	r.Clear(colorBackground)
	g.drawStars(r)

	if g.world != nil && g.state != StateMenu && g.state != StateSettings {
		g.drawWorld(r)
	}

	switch g.state {
	case StateMenu:
		g.drawMenu(r)
	case StatePlaying:
		g.drawHUD(r)
	case StateGameOver:
		g.drawGameOver(r)
	case StateSettings:
		g.drawSettings(r)
	}
}

func (g *Game) drawStars(r Renderer) {
	for _, s := range g.stars.Stars {
		r.DrawSprite(Sprite{
			Kind:  SpriteStar,
			Pos:   s.Pos,
			Size:  s.Size,
			Color: core.ColorWhite.Scale(s.Brightness),
		})
	}
}

func (g *Game) drawWorld(r Renderer) {
	w := g.world

	for _, p := range w.Particles {
		r.DrawSprite(Sprite{Kind: SpriteParticle, Pos: p.Pos, Size: 6, Color: p.Color.WithAlpha(p.Life)})
	}
	for _, pu := range w.PowerUps {
		r.DrawSprite(Sprite{Kind: SpritePowerUp, Pos: pu.Pos, Size: pu.Size, Color: pu.Kind.Color()})
	}

	pool := w.pools[OwnerPlayer]
	for _, ref := range w.PlayerBullets {
		b := pool.Get(ref)
		r.DrawSprite(Sprite{Kind: SpritePlayerBullet, Pos: b.Pos, Size: b.Size, Color: core.ColorYellow})
	}
	pool = w.pools[OwnerEnemy]
	for _, ref := range w.EnemyBullets {
		b := pool.Get(ref)
		r.DrawSprite(Sprite{Kind: SpriteEnemyBullet, Pos: b.Pos, Size: b.Size, Color: core.ColorMagenta})
	}

	for _, e := range w.Enemies {
		r.DrawSprite(Sprite{Kind: SpriteEnemy, Pos: e.Pos, Size: e.Size, Angle: e.Angle, Color: core.ColorRed})
	}

	if g.state == StatePlaying {
		p := w.Player
		if w.Timers.Shield > 0 {
			r.DrawSprite(Sprite{Kind: SpriteShield, Pos: p.Pos, Size: p.Size * 0.8, Color: core.ColorCyan})
		}
		if playerVisible(w.Timers.Invincible) {
			r.DrawSprite(Sprite{Kind: SpritePlayer, Pos: p.Pos, Size: p.Size, Color: colorPlayer})
		}
	}

	for _, s := range w.Popups {
		r.DrawText(s.Pos, s.Text, TextSmall, s.Color.WithAlpha(s.Life))
	}
}

// playerVisible implements the invincibility blink: the ship is hidden on
// every other tenth of a second.
func playerVisible(invincible float64) bool {
	return invincible <= 0 || int(invincible*10)%2 != 0
}

func (g *Game) drawMenu(r Renderer) {
	_, h := g.bounds()
	r.DrawTextCentered(150, "SPACALLAX "+Version, TextTitle, core.ColorCyan)
	r.DrawTextCentered(250, "Select Difficulty:", TextNormal, core.ColorWhite)
	r.DrawTextCentered(300, fmt.Sprintf("< %s >", g.selected), TextLarge, core.ColorYellow)
	r.DrawTextCentered(400, "Press SPACE or ENTER to start", TextNormal, colorLightGray)
	r.DrawTextCentered(450, "Press S for Settings", TextNormal, colorLightGray)
	r.DrawText(core.Vec2{X: 10, Y: h - 30}, "F11: Fullscreen", TextSmall, core.ColorGray)
}

func (g *Game) drawHUD(r Renderer) {
	w := g.world
	width, _ := g.bounds()
	at := func(x, y float64) core.Vec2 { return core.Vec2{X: x, Y: y} }

	r.DrawText(at(10, 10), fmt.Sprintf("Score: %d  High Score: %d", w.Score, max(g.highScore, w.Score)), TextNormal, core.ColorWhite)
	r.DrawText(at(10, 35), fmt.Sprintf("Health: %d/%d", w.Player.Health, w.Player.MaxHealth), TextSmall, colorLightGreen)

	r.DrawText(at(width-300, 10), "Difficulty: "+w.difficulty.String(), TextSmall, core.ColorOrange)

	lock := w.Timers.ShotLockout
	switch {
	case w.profile.Blind:
		if lock > 0 {
			r.DrawText(at(width-250, 35), fmt.Sprintf("Blind shot: %.1fs", lock), TextSmall, core.ColorMagenta)
		} else {
			r.DrawText(at(width-200, 35), "Blind shot ready!", TextSmall, core.ColorGreen)
		}
	case w.profile.HasShotLockout():
		if lock > 0 {
			r.DrawText(at(width-250, 35), fmt.Sprintf("Shot ready in: %.1fs", lock), TextSmall, core.ColorMagenta)
		} else {
			r.DrawText(at(width-200, 35), "Shot ready!", TextSmall, core.ColorGreen)
		}
	case w.difficulty == config.Unbeatable:
		r.DrawText(at(width-200, 35), "GOOD LUCK", TextSmall, core.ColorRed)
	}

	t := w.Timers
	if t.RapidFire > 0 {
		r.DrawText(at(width-200, 55), fmt.Sprintf("Rapid Fire: %.1fs", t.RapidFire), TextSmall, core.ColorOrange)
	}
	if t.Shield > 0 {
		r.DrawText(at(width-200, 70), fmt.Sprintf("Shield: %.1fs", t.Shield), TextSmall, core.ColorCyan)
	}
	if t.ScoreMult > 0 {
		r.DrawText(at(width-200, 85), fmt.Sprintf("2X Score: %.1fs", t.ScoreMult), TextSmall, core.ColorGold)
	}
}

func (g *Game) drawGameOver(r Renderer) {
	r.DrawTextCentered(200, "GAME OVER", TextTitle, core.ColorRed)
	r.DrawTextCentered(280, fmt.Sprintf("Your Score: %d  High Score: %d", g.world.Score, g.highScore), TextNormal, core.ColorWhite)
	r.DrawTextCentered(330, "Press SPACE to restart", TextNormal, colorLightGreen)
	r.DrawTextCentered(370, "Press R to return to menu", TextNormal, colorLightGray)
}

func (g *Game) drawSettings(r Renderer) {
	const (
		startY     = 150
		lineHeight = 40
	)
	r.DrawTextCentered(80, "SETTINGS", TextTitle, core.ColorCyan)

	items := SettingItems()
	for i, item := range items {
		c := core.ColorWhite
		if i == g.settingIndex {
			c = core.ColorYellow
		}
		text := item.String()
		if v := g.settingValue(item); v != "" {
			text += ": " + v
		}
		r.DrawTextCentered(float64(startY+i*lineHeight), text, TextNormal, c)
	}

	bottom := float64(startY + len(items)*lineHeight)
	r.DrawTextCentered(bottom+40, "Use Arrow Keys to navigate, Left/Right to change", TextSmall, core.ColorGray)
	r.DrawTextCentered(bottom+70, "Escape to return to menu", TextSmall, core.ColorGray)
}

func (g *Game) settingValue(item SettingItem) string {
	s := g.settings
	switch item {
	case SettingResolution:
		return config.Resolution{Width: s.Width, Height: s.Height}.String()
	case SettingFullscreen:
		return onOff(s.Fullscreen)
	case SettingVSync:
		return onOff(s.VSync)
	case SettingMasterVolume:
		return percent(s.MasterVolume)
	case SettingSoundVolume:
		return percent(s.SoundVolume)
	case SettingMusicVolume:
		return percent(s.MusicVolume)
	default:
		return ""
	}
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

func percent(v float64) string {
	return fmt.Sprintf("%d%%", int(v*100+0.5))
}
