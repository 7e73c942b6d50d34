package spacallax

import (
	"testing"

	"github.com/vovakirdan/spacallax/internal/core"
)

func TestLit(t *testing.T) {
	center := core.Vec2{X: 400, Y: 500}
	far := core.Vec2{X: 0, Y: 0}
	near := core.Vec2{X: 450, Y: 450}

	tests := []struct {
		name   string
		s      Sprite
		radius float64
		want   bool
	}{
		{"no spotlight", Sprite{Kind: SpriteEnemy, Pos: far}, 0, true},
		{"enemy outside", Sprite{Kind: SpriteEnemy, Pos: far}, 150, false},
		{"enemy inside", Sprite{Kind: SpriteEnemy, Pos: near}, 150, true},
		{"star outside", Sprite{Kind: SpriteStar, Pos: far}, 150, false},
		{"player always", Sprite{Kind: SpritePlayer, Pos: far}, 150, true},
		{"shield always", Sprite{Kind: SpriteShield, Pos: far}, 150, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lit(tt.s, center, tt.radius); got != tt.want {
				t.Errorf("Lit = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestFixedDisplay(t *testing.T) {
	d := NewFixedDisplay(800, 600)
	if !d.VSync {
		t.Error("VSync should default on")
	}
	d.Resize(1280, 720)
	if w, h := d.Size(); w != 1280 || h != 720 {
		t.Errorf("Size = %dx%d, expected 1280x720", w, h)
	}
	d.Spotlight(core.Vec2{X: 1, Y: 2}, 150)
	d.Distortion(15, 3)
	if d.SpotlightRadius != 150 || d.DistortAmp != 15 || d.DistortFreq != 3 {
		t.Errorf("display = %+v", d)
	}
}
