package physics

import (
	"math"

	"github.com/jakecoffman/cp/v2"
)

// FloorPoints returns the five endpoints of the V-shaped floor for a width x height scene, in y-up world units.
// The floor is flat for the outer quarters at y = 0.6*height and dips to a point at the center,
// whose depth comes from angleDeg. Segment i runs from points[i] to points[i+1].
func FloorPoints(width, height, angleDeg float64) [5]cp.Vector {
	dx := width * 0.25
	y0 := height * 0.6
	dy := dx * math.Tan(angleDeg*math.Pi/180)
	return [5]cp.Vector{
		{X: 0, Y: y0},
		{X: dx, Y: y0},
		{X: 2 * dx, Y: y0 - dy},
		{X: 3 * dx, Y: y0},
		{X: width, Y: y0},
	}
}

// addFloor creates the four static floor segments on the space's static body.
func (w *World) addFloor(width, height float64) {
	pts := FloorPoints(width, height, w.cfg.Floor.AngleDeg)
	w.Floor = w.Floor[:0]
	for i := 0; i < len(pts)-1; i++ {
		seg := cp.NewSegment(w.Space.StaticBody, pts[i], pts[i+1], w.cfg.Floor.Radius)
		seg.SetFriction(w.cfg.Floor.Friction)
		seg.SetCollisionType(CollisionFloor)
		w.Floor = append(w.Floor, w.Space.AddShape(seg))
	}
}
