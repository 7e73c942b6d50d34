package core

// Sound identifies an audio cue the simulation can request.
type Sound int

const (
	SoundShoot Sound = iota
	SoundExplode
	SoundMusic
)

// String returns the cue name.
func (s Sound) String() string {
	switch s {
	case SoundShoot:
		return "shoot"
	case SoundExplode:
		return "explode"
	case SoundMusic:
		return "music"
	default:
		return "unknown"
	}
}
