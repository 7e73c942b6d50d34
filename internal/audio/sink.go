// Package audio plays the game's synthesized sound cues through the system
// speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/spacallax/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Sink mixes sound cues into a single speaker stream. Until Init succeeds
// every request is dropped, so a machine without an audio device plays
// silently.
type Sink struct {
	mu     sync.Mutex
	logger *log.Logger

	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicVolume *effects.Volume
	initialized bool
	explosions  uint32

	masterGain, soundGain, musicGain float64
}

// NewSink creates a sink at full volume.
func NewSink(logger *log.Logger) *Sink {
	return &Sink{
		logger:     logger,
		mixer:      &beep.Mixer{},
		masterGain: 1,
		soundGain:  1,
		musicGain:  1,
	}
}

// Init opens the speaker.
func (s *Sink) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Close silences everything. The speaker itself stays open.
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.dropMusic()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

// Play starts a one-shot cue. Music is started with Loop instead.
func (s *Sink) Play(cue core.Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	var st beep.Streamer
	switch cue {
	case core.SoundShoot:
		st = newLaserGenerator(sampleRate)
	case core.SoundExplode:
		s.explosions++
		st = newExplosionGenerator(sampleRate, s.explosions*2654435761)
	default:
		s.logger.Debug("audio: ignoring play request", "sound", cue)
		return
	}
	s.add(newVolume(st, s.masterGain*s.soundGain))
}

// Loop starts the music from the beginning, replacing a running loop.
func (s *Sink) Loop(cue core.Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || cue != core.SoundMusic {
		return
	}
	speaker.Lock()
	s.dropMusic()
	speaker.Unlock()

	vol := newVolume(newMusicGenerator(sampleRate), s.masterGain*s.musicGain)
	s.musicVolume = vol
	s.music = &beep.Ctrl{Streamer: vol}
	s.add(s.music)
}

// Stop ends the music. The next Loop starts it from the beginning.
func (s *Sink) Stop(cue core.Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.music == nil || cue != core.SoundMusic {
		return
	}
	speaker.Lock()
	s.dropMusic()
	speaker.Unlock()
}

// dropMusic detaches the running loop. A Ctrl without a streamer reports
// it is drained, so the mixer removes it on its next pass. The caller
// holds the speaker lock.
func (s *Sink) dropMusic() {
	if s.music != nil {
		s.music.Streamer = nil
	}
	s.music = nil
	s.musicVolume = nil
}

// SetVolumes sets the gains in [0, 1]. The running music follows at once;
// sound effects pick the new gain up on their next cue.
func (s *Sink) SetVolumes(master, sound, music float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.masterGain = core.ClampF(master, 0, 1)
	s.soundGain = core.ClampF(sound, 0, 1)
	s.musicGain = core.ClampF(music, 0, 1)

	if s.musicVolume == nil {
		return
	}
	speaker.Lock()
	setGain(s.musicVolume, s.masterGain*s.musicGain)
	speaker.Unlock()
}

// Gains returns the effective sound and music gains.
func (s *Sink) Gains() (sound, music float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.masterGain * s.soundGain, s.masterGain * s.musicGain
}

func (s *Sink) add(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// newVolume wraps s in a volume effect. math.Log2(0) is -Inf, so zero gain
// is expressed as silence.
func newVolume(s beep.Streamer, gain float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setGain(v, gain)
	return v
}

func setGain(v *effects.Volume, gain float64) {
	if gain <= 0 {
		v.Volume, v.Silent = 0, true
		return
	}
	v.Volume, v.Silent = math.Log2(gain), false
}
