package spacallax

import (
	"math"

	"github.com/vovakirdan/spacallax/internal/config"
	"github.com/vovakirdan/spacallax/internal/core"
)

// SettingItem is a row of the settings menu.
type SettingItem int

const (
	SettingResolution SettingItem = iota
	SettingFullscreen
	SettingVSync
	SettingMasterVolume
	SettingSoundVolume
	SettingMusicVolume
	SettingBack
	settingCount
)

func (s SettingItem) String() string {
	switch s {
	case SettingResolution:
		return "Resolution"
	case SettingFullscreen:
		return "Fullscreen"
	case SettingVSync:
		return "VSync"
	case SettingMasterVolume:
		return "Master Volume"
	case SettingSoundVolume:
		return "Sound Volume"
	case SettingMusicVolume:
		return "Music Volume"
	case SettingBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// SettingItems returns the settings rows in display order.
func SettingItems() []SettingItem {
	items := make([]SettingItem, settingCount)
	for i := range items {
		items[i] = SettingItem(i)
	}
	return items
}

// SelectedSetting returns the highlighted settings row.
func (g *Game) SelectedSetting() SettingItem {
	return SettingItem(g.settingIndex)
}

func (g *Game) updateMenu(in Input) {
	switch {
	case in.Pressed(core.KeyLeft):
		g.selected = g.selected.Prev()
	case in.Pressed(core.KeyRight):
		g.selected = g.selected.Next()
	case in.Pressed(core.KeyConfirm) || in.Pressed(core.KeyFire):
		g.StartGame()
	case in.Pressed(core.KeySettings):
		g.settingIndex = 0
		g.state = StateSettings
	}
}

func (g *Game) updateSettings(in Input) {
	n := int(settingCount)
	switch {
	case in.Pressed(core.KeyEscape):
		g.leaveSettings()
	case in.Pressed(core.KeyUp):
		g.settingIndex = (g.settingIndex - 1 + n) % n
	case in.Pressed(core.KeyDown):
		g.settingIndex = (g.settingIndex + 1) % n
	case in.Pressed(core.KeyLeft):
		g.adjustSetting(-1)
	case in.Pressed(core.KeyRight):
		g.adjustSetting(1)
	case in.Pressed(core.KeyConfirm) && g.SelectedSetting() == SettingBack:
		g.leaveSettings()
	}
}

func (g *Game) leaveSettings() {
	g.saveSettings()
	g.state = StateMenu
}

// adjustSetting changes the highlighted setting one step in dir.
func (g *Game) adjustSetting(dir int) {
	s := &g.settings
	switch g.SelectedSetting() {
	case SettingResolution:
		n := len(config.Resolutions)
		r := config.Resolutions[(s.ResolutionIndex()+dir+n)%n]
		s.Width, s.Height = r.Width, r.Height
		g.display.Resize(r.Width, r.Height)
		w, h := g.bounds()
		g.stars.Regenerate(g.rng, w, h)
	case SettingFullscreen:
		// toggled by the global fullscreen key only
	case SettingVSync:
		s.VSync = !s.VSync
		g.display.SetVSync(s.VSync)
	case SettingMasterVolume:
		s.MasterVolume = stepVolume(s.MasterVolume, dir)
	case SettingSoundVolume:
		s.SoundVolume = stepVolume(s.SoundVolume, dir)
	case SettingMusicVolume:
		s.MusicVolume = stepVolume(s.MusicVolume, dir)
	default:
		return
	}
	g.audio.SetVolumes(s.MasterVolume, s.SoundVolume, s.MusicVolume)
}

// stepVolume moves v by one VolumeStep, rounded to two decimals so that
// repeated steps land on exact percentages.
func stepVolume(v float64, dir int) float64 {
	v = config.ClampVolume(v + float64(dir)*config.VolumeStep)
	return math.Round(v*100) / 100
}
