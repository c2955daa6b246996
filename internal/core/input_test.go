package core

import (
	"math"
	"testing"
)

func TestInputSanitizeClamp(t *testing.T) {
	tests := []struct {
		name       string
		in         Input
		wantH      float64
		wantV      float64
	}{
		{"in range", Input{Horizontal: 0.5, Vertical: -0.5}, 0.5, -0.5},
		{"above max", Input{Horizontal: 3, Vertical: 0}, 1, 0},
		{"below min", Input{Horizontal: -7, Vertical: 0}, -1, 0},
		{"nan repaired", Input{Horizontal: math.NaN(), Vertical: 0.25}, 0, 0.25},
		{"inf repaired", Input{Horizontal: math.Inf(1), Vertical: 0}, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := tc.in
			in.Sanitize()
			if in.Horizontal != tc.wantH || in.Vertical != tc.wantV {
				t.Errorf("Sanitize() = (%f, %f), expected (%f, %f)",
					in.Horizontal, in.Vertical, tc.wantH, tc.wantV)
			}
		})
	}
}

func TestInputSanitizeRenormalizes(t *testing.T) {
	// Diagonal (1, 1) exceeds unit length and must be re-normalized.
	in := Input{Horizontal: 1, Vertical: 1}
	in.Sanitize()

	mag := math.Hypot(in.Horizontal, in.Vertical)
	if mag > 1+1e-9 {
		t.Errorf("Sanitize left magnitude %f > 1", mag)
	}
	if in.Horizontal <= 0 || in.Vertical <= 0 {
		t.Errorf("Sanitize changed direction: (%f, %f)", in.Horizontal, in.Vertical)
	}
}

func TestInputSanitizeKeepsShortVectors(t *testing.T) {
	in := Input{Horizontal: 0.3, Vertical: 0.4}
	in.Sanitize()
	if in.Horizontal != 0.3 || in.Vertical != 0.4 {
		t.Errorf("Sanitize modified in-range vector: (%f, %f)", in.Horizontal, in.Vertical)
	}
}
