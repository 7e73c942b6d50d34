package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	shootDuration   = 120 * time.Millisecond
	explodeDuration = 450 * time.Millisecond
	beatDuration    = 500 * time.Millisecond // 120 BPM
)

// laserGenerator is a square wave sweeping down from 900 Hz to 300 Hz.
type laserGenerator struct {
	sr    beep.SampleRate
	pos   int
	total int
	phase float64
}

func newLaserGenerator(sr beep.SampleRate) *laserGenerator {
	return &laserGenerator{sr: sr, total: sr.N(shootDuration)}
}

func (g *laserGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.total)
		freq := 900 - 600*progress

		val := -1.0
		if g.phase < 0.5 {
			val = 1.0
		}
		sample := 0.25 * (1 - progress) * val

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *laserGenerator) Err() error { return nil }

// explosionGenerator is decaying noise over a low rumble.
type explosionGenerator struct {
	sr    beep.SampleRate
	pos   int
	total int
	seed  uint32
}

func newExplosionGenerator(sr beep.SampleRate, seed uint32) *explosionGenerator {
	return &explosionGenerator{sr: sr, total: sr.N(explodeDuration), seed: seed | 1}
}

func (g *explosionGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-t * 9)

		g.seed = g.seed*1664525 + 1013904223
		noise := float64(g.seed>>8)/float64(1<<24)*2 - 1
		rumble := math.Sin(2 * math.Pi * 55 * t)

		sample := env * (0.35*noise + 0.25*rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *explosionGenerator) Err() error { return nil }

// musicGenerator is an endless kick and bass arpeggio.
type musicGenerator struct {
	sr   beep.SampleRate
	pos  int
	beat int
	kick int
}

// bassline in Hz, one note per beat.
var bassline = [...]float64{110, 110, 130.81, 98}

func newMusicGenerator(sr beep.SampleRate) *musicGenerator {
	return &musicGenerator{
		sr:   sr,
		beat: sr.N(beatDuration),
		kick: sr.N(90 * time.Millisecond),
	}
}

func (g *musicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.beat
		note := bassline[(g.pos/g.beat)%len(bassline)]
		t := float64(beatPos) / float64(g.sr)

		kick := 0.0
		if beatPos < g.kick {
			env := 1 - float64(beatPos)/float64(g.kick)
			kick = 0.35 * env * math.Sin(2*math.Pi*55*(1+2*env)*t)
		}
		bass := 0.12 * math.Sin(2*math.Pi*note*t)

		sample := kick + bass
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *musicGenerator) Err() error { return nil }
