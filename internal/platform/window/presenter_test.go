package window

import (
	"math"
	"testing"

	"github.com/vovakirdan/spacallax/internal/core"
	"github.com/vovakirdan/spacallax/internal/games/spacallax"
)

func TestShipOutline(t *testing.T) {
	pts := shipOutline(core.Vec2{X: 100, Y: 100}, 20)
	if len(pts) != 3 {
		t.Fatalf("len = %d, expected 3", len(pts))
	}
	if pts[0] != (core.Vec2{X: 100, Y: 80}) {
		t.Errorf("nose = %v, expected (100, 80)", pts[0])
	}
	if pts[1].X != 116 || pts[2].X != 84 || pts[1].Y != 110 {
		t.Errorf("base = %v %v", pts[1], pts[2])
	}
}

func TestPresenterOffset(t *testing.T) {
	p, err := NewPresenter(800, 600)
	if err != nil {
		t.Fatalf("NewPresenter: %v", err)
	}

	if d := p.offset(core.Vec2{X: 10, Y: 10}); d != (core.Vec2{}) {
		t.Errorf("offset at rest = %v, expected zero", d)
	}

	p.Shake(15, 0.4)
	d := p.offset(core.Vec2{})
	if got := math.Hypot(d.X, d.Y); math.Abs(got-15) > 1e-9 {
		t.Errorf("shake offset length = %v, expected 15", got)
	}

	for range 10 {
		p.Tick(0.05)
	}
	if d := p.offset(core.Vec2{}); d != (core.Vec2{}) {
		t.Errorf("offset after shake = %v, expected zero", d)
	}

	p.Distortion(5, 2)
	d = p.offset(core.Vec2{X: 0, Y: 300})
	if math.Abs(d.X) > 5 || math.Abs(d.Y) > 2.5 {
		t.Errorf("distortion offset %v exceeds amplitude", d)
	}
}

func TestPresenterFaces(t *testing.T) {
	p, err := NewPresenter(800, 600)
	if err != nil {
		t.Fatalf("NewPresenter: %v", err)
	}
	if f := p.face(spacallax.TextTitle); f.Size != 48 {
		t.Errorf("title size = %v, expected 48", f.Size)
	}
	if f := p.face(spacallax.TextSize(99)); f.Size != 20 {
		t.Errorf("fallback size = %v, expected 20", f.Size)
	}
	if w, h := p.Size(); w != 800 || h != 600 {
		t.Errorf("Size = %dx%d, expected 800x600", w, h)
	}
}
