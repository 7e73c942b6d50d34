package tui

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/spacallax/internal/core"
	"github.com/vovakirdan/spacallax/internal/games/spacallax"
)

// Presenter draws the game onto a character grid. It is both the game's
// Renderer and its Display: the playfield keeps its logical pixel size and
// is scaled onto whatever terminal size is available. Outside fullscreen the
// playfield sits inside a one-cell frame.
type Presenter struct {
	screen  *core.Screen
	logical struct{ w, h int }

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

// NewPresenter creates a presenter for a cols x rows terminal showing a
// playfield of w x h logical pixels.
func NewPresenter(cols, rows, w, h int) *Presenter {
	p := &Presenter{screen: core.NewScreen(max(cols, 1), max(rows, 1)), vsync: true}
	p.logical.w, p.logical.h = w, h
	return p
}

// Screen returns the cell buffer of the last drawn frame.
func (p *Presenter) Screen() *core.Screen {
	return p.screen
}

// SetCells resizes the character grid after a terminal resize.
func (p *Presenter) SetCells(cols, rows int) {
	p.screen.Resize(max(cols, 1), max(rows, 1))
}

// Fullscreen reports whether the playfield uses the whole terminal.
func (p *Presenter) Fullscreen() bool {
	return p.fullscreen
}

// area returns the cells the playfield maps onto.
func (p *Presenter) area() core.Rect {
	w, h := p.screen.Width(), p.screen.Height()
	if p.fullscreen || w < 3 || h < 3 {
		return core.NewRect(0, 0, w, h)
	}
	return core.NewRect(1, 1, w-2, h-2)
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
	return p.logical.w, p.logical.h
}

func (p *Presenter) Resize(w, h int) {
	p.logical.w, p.logical.h = w, h
}

func (p *Presenter) SetFullscreen(on bool) { p.fullscreen = on }

func (p *Presenter) SetVSync(on bool) { p.vsync = on }

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

// Renderer

func (p *Presenter) Clear(core.Color) {
	p.screen.Clear()
	if a := p.area(); a.X > 0 {
		p.screen.DrawBox(core.NewRect(0, 0, p.screen.Width(), p.screen.Height()), core.ColorGray)
	}
}

// cellOf maps a logical position to a cell.
func (p *Presenter) cellOf(pos core.Vec2) (int, int) {
	a := p.area()
	x := a.X + int(math.Floor(pos.X*float64(a.W)/float64(max(p.logical.w, 1))))
	y := a.Y + int(math.Floor(pos.Y*float64(a.H)/float64(max(p.logical.h, 1))))
	return x, y
}

// set draws a glyph, clipped to the playfield.
func (p *Presenter) set(x, y int, r rune, c core.Color) {
	if p.area().Contains(x, y) {
		p.screen.SetCell(x, y, r, c)
	}
}

// offset is the shake and distortion displacement of a point.
func (p *Presenter) offset(pos core.Vec2) core.Vec2 {
	var d core.Vec2
	if p.shakeNow > 0 {
		sign := 1.0
		if p.frame%2 == 1 {
			sign = -1
		}
		d.X = sign * p.shakeNow
		d.Y = -sign * p.shakeNow / 2
	}
	if p.distAmp > 0 {
		d.X += p.distAmp * math.Sin(2*math.Pi*p.distFreq*p.clock+pos.Y/40)
	}
	return d
}

func spriteRune(k spacallax.SpriteKind, size float64) rune {
	switch k {
	case spacallax.SpritePlayer:
		return '▲'
	case spacallax.SpriteEnemy:
		return '█'
	case spacallax.SpritePlayerBullet:
		return '|'
	case spacallax.SpriteEnemyBullet:
		return '•'
	case spacallax.SpritePowerUp:
		return '◆'
	case spacallax.SpriteParticle:
		return '·'
	case spacallax.SpriteShield:
		return 'o'
	case spacallax.SpriteStar:
		if size > 1 {
			return '+'
		}
		return '.'
	default:
		return '?'
	}
}

func (p *Presenter) DrawSprite(s spacallax.Sprite) {
	if !spacallax.Lit(s, p.spotCenter, p.spotRadius) {
		return
	}
	pos := s.Pos.Add(p.offset(s.Pos))
	r := spriteRune(s.Kind, s.Size)

	switch s.Kind {
	case spacallax.SpriteEnemy, spacallax.SpritePlayer, spacallax.SpritePowerUp:
		p.fillCircle(pos, s.Size/2, r, s.Color)
	case spacallax.SpriteShield:
		p.strokeCircle(pos, s.Size, r, s.Color)
	default:
		x, y := p.cellOf(pos)
		p.set(x, y, r, s.Color)
	}
}

// fillCircle sets every cell whose center lies in the circle, and at least
// the center cell.
func (p *Presenter) fillCircle(center core.Vec2, radius float64, r rune, c core.Color) {
	a := p.area()
	cw, ch := p.cellSize()
	x0, y0 := p.cellOf(core.Vec2{X: center.X - radius, Y: center.Y - radius})
	x1, y1 := p.cellOf(core.Vec2{X: center.X + radius, Y: center.Y + radius})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			mid := core.Vec2{X: (float64(x-a.X) + 0.5) * cw, Y: (float64(y-a.Y) + 0.5) * ch}
			if core.Dist(mid, center) <= radius {
				p.set(x, y, r, c)
			}
		}
	}
	cx, cy := p.cellOf(center)
	p.set(cx, cy, r, c)
}

func (p *Presenter) strokeCircle(center core.Vec2, radius float64, r rune, c core.Color) {
	for _, v := range core.Polygon(center, radius, 16, 0) {
		x, y := p.cellOf(v)
		if p.screen.GetCell(x, y).Rune == ' ' {
			p.set(x, y, r, c)
		}
	}
}

// cellSize returns the logical size of one cell.
func (p *Presenter) cellSize() (float64, float64) {
	a := p.area()
	return float64(p.logical.w) / float64(a.W), float64(p.logical.h) / float64(a.H)
}

func (p *Presenter) DrawText(pos core.Vec2, text string, _ spacallax.TextSize, c core.Color) {
	a := p.area()
	x, y := p.cellOf(pos)
	// Keep right-anchored HUD text inside the playfield in narrow terminals.
	if n := len([]rune(text)); x+n > a.Right() {
		x = max(a.X, a.Right()-n)
	}
	p.screen.DrawText(x, y, text, c)
}

func (p *Presenter) DrawTextCentered(y float64, text string, _ spacallax.TextSize, c core.Color) {
	_, row := p.cellOf(core.Vec2{Y: y})
	p.screen.DrawTextCentered(row, text, c)
}

var (
	_ spacallax.Renderer = (*Presenter)(nil)
	_ spacallax.Display  = (*Presenter)(nil)
)
