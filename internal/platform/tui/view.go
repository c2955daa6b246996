package tui

import (
	"fmt"
	"math"

	"github.com/dmarkhas/novafall/internal/core"
	"github.com/dmarkhas/novafall/internal/sim"
)

// hudRows is the number of screen rows reserved for the HUD above the
// playfield.
const hudRows = 2

// playBounds converts a screen size to the world-unit play area below
// the HUD.
func playBounds(w, h int) core.Bounds {
	rows := h - hudRows
	if rows < 1 {
		rows = 1
	}
	return core.BoundsForScreen(w, rows)
}

// toCell maps a world position to a screen cell inside the playfield.
func toCell(p core.Vec2) (int, int) {
	return int(p.X / core.CellW), hudRows + int(p.Y/core.CellH)
}

// drawSnapshot paints one frame: background, entities, HUD, and any
// state overlay.
func drawSnapshot(s *core.Screen, snap *sim.Snapshot, stars *Starfield) {
	s.Clear()
	stars.Draw(s)

	for _, n := range snap.Pulses {
		drawPulse(s, n)
	}
	for _, p := range snap.PowerUps {
		drawPowerUp(s, p)
	}
	for _, h := range snap.Hazards {
		drawHazard(s, h)
	}
	for _, p := range snap.Shots {
		drawShot(s, p)
	}
	for _, p := range snap.Pieces {
		drawParticle(s, p)
	}
	if snap.Status != sim.StatusGameOver {
		drawPlayer(s, snap)
	}

	drawHUD(s, snap)

	switch snap.Status {
	case sim.StatusStart:
		drawStartOverlay(s)
	case sim.StatusGameOver:
		drawGameOverOverlay(s, snap)
	}
}

func drawPulse(s *core.Screen, n sim.PulseView) {
	steps := int(n.Radius/4) + 16
	for i := 0; i < steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		x, y := toCell(core.Vec2{
			X: n.Origin.X + n.Radius*math.Cos(angle),
			Y: n.Origin.Y + n.Radius*math.Sin(angle),
		})
		s.SetCell(x, y, '*', core.ColorBrightYellow)
	}
}

func drawPowerUp(s *core.Screen, p sim.PowerUpView) {
	x, y := toCell(p.Pos)
	switch p.Kind {
	case sim.PowerShield:
		s.SetCell(x, y, 'S', core.ColorBrightGreen)
	case sim.PowerNova:
		s.SetCell(x, y, 'N', core.ColorBrightYellow)
	}
}

func drawHazard(s *core.Screen, h sim.HazardView) {
	cx, cy := toCell(h.Pos)
	rx := int(h.Size / 2 / core.CellW)
	ry := int(h.Size / 2 / core.CellH)
	if rx < 1 {
		rx = 1
	}

	glyph, color := '@', core.ColorGray
	if h.Kind == sim.HazardRaider {
		glyph, color = 'M', core.ColorBrightMagenta
	}

	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			fx := float64(dx) / float64(rx)
			fy := 0.0
			if ry > 0 {
				fy = float64(dy) / float64(ry)
			}
			if fx*fx+fy*fy <= 1.0 {
				s.SetCell(cx+dx, cy+dy, glyph, color)
			}
		}
	}
}

func drawShot(s *core.Screen, p sim.ShotView) {
	x, y := toCell(p.Pos)
	if p.Hostile {
		s.SetCell(x, y, '!', core.ColorBrightRed)
		return
	}
	s.SetCell(x, y, '|', core.ColorBrightCyan)
}

func drawParticle(s *core.Screen, p sim.ParticleView) {
	x, y := toCell(p.Pos)
	glyph := '.'
	if p.Alpha > 0.5 {
		glyph = '*'
	}
	s.SetCell(x, y, glyph, p.Color)
}

func drawPlayer(s *core.Screen, snap *sim.Snapshot) {
	x, y := toCell(snap.Player.Pos)

	color := core.ColorBrightWhite
	if snap.Player.Invulnerable {
		// Blink while the invulnerability window is open
		if int(snap.Elapsed*10)%2 == 0 {
			return
		}
		color = core.ColorBrightCyan
	}

	s.SetCell(x, y, '▲', color)
	s.SetCell(x-1, y, '=', color)
	s.SetCell(x+1, y, '=', color)
}

func drawHUD(s *core.Screen, snap *sim.Snapshot) {
	line := fmt.Sprintf(" SCORE %6d   BEST %6d   LVL %d   COMBO x%d",
		int(snap.Score), int(snap.Best), snap.Level, snap.Combo)
	s.DrawTextColor(0, 0, line, core.ColorBrightWhite)

	x := 1
	x = drawMeter(s, x, 1, "SHD", snap.Shields, snap.ShieldsMax, core.ColorBrightGreen)
	x = drawMeter(s, x, 1, "ENR", snap.Energy, snap.EnergyMax, core.ColorBrightBlue)
	if snap.Nova >= snap.NovaMax {
		s.DrawTextColor(x, 1, "NOVA READY", core.ColorBrightYellow)
	} else {
		drawMeter(s, x, 1, "NOVA", snap.Nova, snap.NovaMax, core.ColorYellow)
	}
}

// drawMeter renders a labelled bar and returns the x position after it.
func drawMeter(s *core.Screen, x, y int, label string, value, max float64, c core.Color) int {
	const width = 10

	s.DrawTextColor(x, y, label, core.ColorGray)
	x += len(label) + 1

	filled := 0
	if max > 0 {
		filled = int(core.ClampF(value/max, 0, 1) * width)
	}
	s.Set(x, y, '[')
	for i := 0; i < width; i++ {
		if i < filled {
			s.SetCell(x+1+i, y, '=', c)
		} else {
			s.SetCell(x+1+i, y, '-', core.ColorGray)
		}
	}
	s.Set(x+width+1, y, ']')

	return x + width + 4
}

func drawStartOverlay(s *core.Screen) {
	cy := s.Height() / 2
	drawCenteredBox(s, cy-3, 44, 7)
	s.DrawTextCentered(cy-2, "N O V A F A L L")
	s.DrawTextCentered(cy, "arrows/wasd move   space fire   b boost")
	s.DrawTextCentered(cy+1, "full nova charge: press fire to pulse")
	s.DrawTextCentered(cy+3, "press enter to launch")
}

func drawGameOverOverlay(s *core.Screen, snap *sim.Snapshot) {
	cy := s.Height() / 2
	drawCenteredBox(s, cy-3, 36, 7)
	s.DrawTextCentered(cy-2, "G A M E  O V E R")
	s.DrawTextCentered(cy, fmt.Sprintf("score %d   best %d", int(snap.Score), int(snap.Best)))
	s.DrawTextCentered(cy+1, fmt.Sprintf("level %d   %.0fs survived", snap.Level, snap.Elapsed))
	s.DrawTextCentered(cy+3, "r restart   q quit")
}

func drawCenteredBox(s *core.Screen, y, w, h int) {
	x := (s.Width() - w) / 2
	if x < 0 {
		x = 0
	}
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			s.Set(i, j, ' ')
		}
	}
	s.DrawBox(x, y, w, h)
}
