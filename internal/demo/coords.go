package demo

import "github.com/jakecoffman/cp/v2"

// ToWorld converts a y-down screen position into y-up world units for a window of the given height.
func ToWorld(x, y float32, height float64) cp.Vector {
	return cp.Vector{X: float64(x), Y: height - float64(y)}
}

// ToScreen converts a y-up world position into y-down screen pixels.
func ToScreen(p cp.Vector, height float64) (x, y float32) {
	return float32(p.X), float32(height - p.Y)
}
