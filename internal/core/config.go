package core

// Cell dimensions in world units. The simulation runs in a pixel-like
// coordinate space; the platform maps terminal cells onto it so that the
// gameplay formulas keep their native scale regardless of font geometry.
const (
	CellW = 8.0
	CellH = 16.0
)

// RuntimeConfig contains configuration passed to the simulation at
// initialization. The platform derives it from terminal size and CLI flags.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed, 0 means use current time in platform layer
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// Bounds is the play area in world units. It is owned by the render
// collaborator, derived from the viewport, and handed to the simulation
// every tick; the simulation treats it as a frame-varying parameter.
type Bounds struct {
	W, H float64
}

// BoundsForScreen converts a terminal size to world-unit bounds.
func BoundsForScreen(screenW, screenH int) Bounds {
	return Bounds{
		W: float64(screenW) * CellW,
		H: float64(screenH) * CellH,
	}
}
