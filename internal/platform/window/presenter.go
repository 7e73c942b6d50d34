package window

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/spacallax/internal/core"
	"github.com/vovakirdan/spacallax/internal/games/spacallax"
)

// Font sizes per text size hint.
var fontSizes = [...]float64{
	spacallax.TextSmall:  14,
	spacallax.TextNormal: 20,
	spacallax.TextLarge:  32,
	spacallax.TextTitle:  48,
}

// Presenter draws the game with vector shapes. It is both the game's
// Renderer and its Display. The window follows the logical size and the
// game is laid out at exactly that size.
type Presenter struct {
	dst   *ebiten.Image
	w, h  int
	faces [len(fontSizes)]*text.GoTextFace

	fullscreen bool
	vsync      bool

	shake      *gween.Tween
	shakeNow   float64
	frame      int
	clock      float64
	spotCenter core.Vec2
	spotRadius float64
	distAmp    float64
	distFreq   float64
}

// NewPresenter creates a presenter for a w x h playfield.
func NewPresenter(w, h int) (*Presenter, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	p := &Presenter{w: w, h: h, vsync: true}
	for i, size := range fontSizes {
		p.faces[i] = &text.GoTextFace{Source: src, Size: size}
	}
	return p, nil
}

// Begin directs the following draw calls to dst.
func (p *Presenter) Begin(dst *ebiten.Image) {
	p.dst = dst
}

// End draws the spotlight rim over the finished frame.
func (p *Presenter) End() {
	if p.dst == nil || p.spotRadius <= 0 {
		return
	}
	c := p.spotCenter.Add(p.offset(p.spotCenter))
	vector.StrokeCircle(p.dst, float32(c.X), float32(c.Y), float32(p.spotRadius), 2,
		core.ColorGray.WithAlpha(0.4).NRGBA(), true)
}

// Tick advances the shake and distortion clocks.
func (p *Presenter) Tick(dt float64) {
	p.frame++
	p.clock += dt
	if p.shake == nil {
		return
	}
	v, done := p.shake.Update(float32(dt))
	p.shakeNow = float64(v)
	if done {
		p.shake = nil
		p.shakeNow = 0
	}
}

// Display

func (p *Presenter) Size() (int, int) {
	return p.w, p.h
}

func (p *Presenter) Resize(w, h int) {
	p.w, p.h = w, h
	if !p.fullscreen {
		ebiten.SetWindowSize(w, h)
	}
}

func (p *Presenter) SetFullscreen(on bool) {
	p.fullscreen = on
	ebiten.SetFullscreen(on)
	if !on {
		ebiten.SetWindowSize(p.w, p.h)
	}
}

func (p *Presenter) SetVSync(on bool) {
	p.vsync = on
	ebiten.SetVsyncEnabled(on)
}

// Shake starts a decaying shake, replacing one in progress.
func (p *Presenter) Shake(magnitude, duration float64) {
	if magnitude <= 0 || duration <= 0 {
		p.shake, p.shakeNow = nil, 0
		return
	}
	p.shake = gween.New(float32(magnitude), 0, float32(duration), ease.OutQuad)
	p.shakeNow = magnitude
}

func (p *Presenter) Spotlight(center core.Vec2, radius float64) {
	p.spotCenter, p.spotRadius = center, radius
}

func (p *Presenter) Distortion(amplitude, frequency float64) {
	p.distAmp, p.distFreq = amplitude, frequency
}

// offset is the shake and distortion displacement of a point.
func (p *Presenter) offset(pos core.Vec2) core.Vec2 {
	var d core.Vec2
	if p.shakeNow > 0 {
		a := float64(p.frame) * 2.4
		d.X = p.shakeNow * math.Cos(a)
		d.Y = p.shakeNow * math.Sin(a)
	}
	if p.distAmp > 0 {
		d.X += p.distAmp * math.Sin(2*math.Pi*p.distFreq*p.clock+pos.Y/40)
		d.Y += p.distAmp / 2 * math.Cos(2*math.Pi*p.distFreq*p.clock+pos.X/40)
	}
	return d
}

// Renderer

func (p *Presenter) Clear(c core.Color) {
	p.dst.Fill(c.NRGBA())
}

func (p *Presenter) DrawSprite(s spacallax.Sprite) {
	if !spacallax.Lit(s, p.spotCenter, p.spotRadius) {
		return
	}
	pos := s.Pos.Add(p.offset(s.Pos))
	x, y := float32(pos.X), float32(pos.Y)
	size := float32(s.Size)
	clr := s.Color.NRGBA()

	switch s.Kind {
	case spacallax.SpriteStar:
		vector.FillRect(p.dst, x, y, size, size, clr, false)
	case spacallax.SpriteParticle:
		vector.FillCircle(p.dst, x, y, size/2, clr, true)
	case spacallax.SpritePlayerBullet, spacallax.SpriteEnemyBullet:
		vector.FillRect(p.dst, x-size/2, y-size/2, size, size, clr, false)
	case spacallax.SpritePowerUp:
		p.fillPolygon(core.Polygon(pos, s.Size/2, 4, -90), s.Color)
	case spacallax.SpriteEnemy:
		p.fillPolygon(core.Polygon(pos, s.Size/2, 6, s.Angle), s.Color)
	case spacallax.SpriteShield:
		vector.StrokeCircle(p.dst, x, y, size, 2, clr, true)
	case spacallax.SpritePlayer:
		p.fillPolygon(shipOutline(pos, s.Size), s.Color)
	}
}

// shipOutline is the player's triangle, nose up.
func shipOutline(pos core.Vec2, size float64) []core.Vec2 {
	return []core.Vec2{
		{X: pos.X, Y: pos.Y - size},
		{X: pos.X + size*0.8, Y: pos.Y + size*0.5},
		{X: pos.X - size*0.8, Y: pos.Y + size*0.5},
	}
}

func (p *Presenter) fillPolygon(pts []core.Vec2, c core.Color) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, v := range pts[1:] {
		path.LineTo(float32(v.X), float32(v.Y))
	}
	path.Close()

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c.NRGBA())
	vector.FillPath(p.dst, &path, &vector.FillOptions{}, op)
}

func (p *Presenter) face(size spacallax.TextSize) *text.GoTextFace {
	if size < 0 || int(size) >= len(p.faces) {
		size = spacallax.TextNormal
	}
	return p.faces[size]
}

func (p *Presenter) DrawText(pos core.Vec2, s string, size spacallax.TextSize, c core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(c.NRGBA())
	text.Draw(p.dst, s, p.face(size), op)
}

func (p *Presenter) DrawTextCentered(y float64, s string, size spacallax.TextSize, c core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(p.w)/2, y)
	op.ColorScale.ScaleWithColor(c.NRGBA())
	op.PrimaryAlign = text.AlignCenter
	text.Draw(p.dst, s, p.face(size), op)
}

var (
	_ spacallax.Renderer = (*Presenter)(nil)
	_ spacallax.Display  = (*Presenter)(nil)
)
