package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings is the persisted display and audio record.
type Settings struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Fullscreen   bool    `yaml:"fullscreen"`
	VSync        bool    `yaml:"vsync"`
	MasterVolume float64 `yaml:"master_volume"`
	SoundVolume  float64 `yaml:"sound_volume"`
	MusicVolume  float64 `yaml:"music_volume"`
}

// Resolution is a selectable playfield size.
type Resolution struct {
	Width, Height int
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Resolutions lists the sizes offered in the settings menu.
var Resolutions = []Resolution{
	{800, 600},
	{1024, 768},
	{1280, 720},
	{1920, 1080},
	{3840, 2160},
	{7680, 4320},
}

// VolumeStep is the amount one settings-menu adjustment changes a volume.
const VolumeStep = 0.05

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		Width:        800,
		Height:       600,
		Fullscreen:   false,
		VSync:        true,
		MasterVolume: 0.8,
		SoundVolume:  0.8,
		MusicVolume:  0.8,
	}
}

// Normalize clamps volumes to [0, 1] and replaces a non-positive
// resolution with the default one.
func (s Settings) Normalize() Settings {
	if s.Width <= 0 || s.Height <= 0 {
		d := DefaultSettings()
		s.Width, s.Height = d.Width, d.Height
	}
	s.MasterVolume = ClampVolume(s.MasterVolume)
	s.SoundVolume = ClampVolume(s.SoundVolume)
	s.MusicVolume = ClampVolume(s.MusicVolume)
	return s
}

// ResolutionIndex returns the index of the current size in Resolutions,
// or 0 when the size is not one of them.
func (s Settings) ResolutionIndex() int {
	for i, r := range Resolutions {
		if r.Width == s.Width && r.Height == s.Height {
			return i
		}
	}
	return 0
}

// EffectiveSound is the gain applied to sound effects.
func (s Settings) EffectiveSound() float64 {
	return s.MasterVolume * s.SoundVolume
}

// EffectiveMusic is the gain applied to music.
func (s Settings) EffectiveMusic() float64 {
	return s.MasterVolume * s.MusicVolume
}

// ClampVolume restricts a volume to [0, 1].
func ClampVolume(v float64) float64 {
	return clampF(v, 0, 1)
}

// SettingsFile persists Settings as YAML at a fixed path.
type SettingsFile struct {
	path string
}

// DefaultSettingsPath returns ~/.spacallax/settings.yaml, or settings.yaml
// in the working directory if home is unavailable.
func DefaultSettingsPath() string {
	dir := UserDir()
	if dir == "" {
		return "settings.yaml"
	}
	return filepath.Join(dir, "settings.yaml")
}

// NewSettingsFile creates a store for path. A leading ~ is expanded.
func NewSettingsFile(path string) *SettingsFile {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return &SettingsFile{path: path}
}

// Path returns the file location.
func (f *SettingsFile) Path() string {
	return f.path
}

// Load reads the settings. A missing file yields the defaults and no error.
// An unreadable or malformed file yields the defaults and the error, so the
// caller can log it and carry on.
func (f *SettingsFile) Load() (Settings, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return DefaultSettings(), fmt.Errorf("failed to read settings %s: %w", f.path, err)
	}

	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to parse settings %s: %w", f.path, err)
	}
	return s.Normalize(), nil
}

// Save writes the settings, creating the parent directory if needed.
func (f *SettingsFile) Save(s Settings) error {
	data, err := yaml.Marshal(s.Normalize())
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to save settings %s: %w", f.path, err)
	}
	return nil
}
