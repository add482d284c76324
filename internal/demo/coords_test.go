package demo

import (
	"testing"

	"github.com/jakecoffman/cp/v2"
)

func TestCoordinateFlip(t *testing.T) {
	tests := []struct {
		sx, sy float32
		world  cp.Vector
	}{
		{0, 0, cp.Vector{X: 0, Y: 400}},
		{0, 400, cp.Vector{X: 0, Y: 0}},
		{200, 80, cp.Vector{X: 200, Y: 320}},
	}
	for _, tt := range tests {
		got := ToWorld(tt.sx, tt.sy, 400)
		if got != tt.world {
			t.Fatalf("ToWorld(%g, %g) = %v, want %v", tt.sx, tt.sy, got, tt.world)
		}
		x, y := ToScreen(got, 400)
		if x != tt.sx || y != tt.sy {
			t.Fatalf("ToScreen(%v) = (%g, %g), want (%g, %g)", got, x, y, tt.sx, tt.sy)
		}
	}
}
