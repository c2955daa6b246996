package tui

import (
	"github.com/dmarkhas/novafall/internal/core"
)

// Starfield is the cosmetic scrolling background. It lives entirely in
// the platform layer: the simulation never sees it, and it freezes when
// the run ends.
type Starfield struct {
	stars []star
	rng   *core.RNG
	w, h  int
}

type star struct {
	x, y  float64 // Cell coordinates
	speed float64 // Cells per second
	glyph rune
	color core.Color
}

var starGlyphs = []rune{'.', '.', '.', '+', '*'}

// NewStarfield seeds a field of drifting stars sized to the screen.
func NewStarfield(w, h int, seed int64) *Starfield {
	sf := &Starfield{
		rng: core.NewRNG(seed),
		w:   w,
		h:   h,
	}
	count := w * h / 40
	if count < 8 {
		count = 8
	}
	sf.stars = make([]star, count)
	for i := range sf.stars {
		sf.stars[i] = sf.newStar(true)
	}
	return sf
}

func (sf *Starfield) newStar(anywhere bool) star {
	y := 0.0
	if anywhere {
		y = sf.rng.Range(0, float64(sf.h))
	}
	return star{
		x:     sf.rng.Range(0, float64(sf.w)),
		y:     y,
		speed: sf.rng.Range(1.5, 6),
		glyph: starGlyphs[sf.rng.Intn(len(starGlyphs))],
		color: core.ColorGray,
	}
}

// Resize adapts the field to a new screen size.
func (sf *Starfield) Resize(w, h int) {
	sf.w = w
	sf.h = h
	for i := range sf.stars {
		if sf.stars[i].x >= float64(w) || sf.stars[i].y >= float64(h) {
			sf.stars[i] = sf.newStar(true)
		}
	}
}

// Update scrolls the stars downward, recycling ones that leave the screen.
func (sf *Starfield) Update(dt float64) {
	for i := range sf.stars {
		sf.stars[i].y += sf.stars[i].speed * dt
		if sf.stars[i].y >= float64(sf.h) {
			sf.stars[i] = sf.newStar(false)
		}
	}
}

// Draw paints the stars onto the screen buffer.
func (sf *Starfield) Draw(s *core.Screen) {
	for _, st := range sf.stars {
		s.SetCell(int(st.x), int(st.y), st.glyph, st.color)
	}
}
