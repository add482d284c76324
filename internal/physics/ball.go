package physics

import "github.com/jakecoffman/cp/v2"

// MinBodyMass is the mass handed to the engine when the requested mass is clamped to zero;
// a zero mass would make the body's inverse mass infinite.
const MinBodyMass = 1e-3

// Ball is the single dynamic body of the scene. Mass is the requested (clamped) mass shown to the user;
// the body may carry MinBodyMass instead when Mass is zero.
type Ball struct {
	Body   *cp.Body
	Shape  *cp.Shape
	Start  cp.Vector
	Radius float64

	mass     float64
	attached bool
	held     bool
	target   cp.Vector
}

func newBall(space *cp.Space, mass, radius float64, start cp.Vector, elasticity float64) *Ball {
	body := space.AddBody(cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{})))
	body.SetPosition(start)
	shape := space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.SetCollisionType(CollisionBall)
	shape.SetElasticity(elasticity)
	return &Ball{Body: body, Shape: shape, Start: start, Radius: radius, mass: mass}
}

// Mass returns the requested mass, which may be zero.
func (b *Ball) Mass() float64 {
	return b.mass
}

// Attached reports whether a spring currently ties the ball to the floor.
func (b *Ball) Attached() bool {
	return b.attached
}

// Held reports whether the mouse is holding the ball.
func (b *Ball) Held() bool {
	return b.held
}

// Position returns the ball's center in world units.
func (b *Ball) Position() cp.Vector {
	return b.Body.Position()
}

func (b *Ball) setMass(mass float64) {
	b.mass = mass
	m := max(mass, MinBodyMass)
	b.Body.SetMass(m)
	b.Body.SetMoment(cp.MomentForCircle(m, 0, b.Radius, cp.Vector{}))
}

// stop removes all motion and accumulated forces from the body.
func (b *Ball) stop() {
	b.Body.SetVelocity(0, 0)
	b.Body.SetAngularVelocity(0)
	b.Body.SetForce(cp.Vector{})
	b.Body.SetTorque(0)
}

// pin moves the body to p with no motion. Used while the ball is held.
func (b *Ball) pin(p cp.Vector) {
	b.Body.SetPosition(p)
	b.stop()
}

// Grab picks up the ball when p lies on it. It returns false for the floor or empty space.
func (w *World) Grab(p cp.Vector) bool {
	info := w.Space.PointQueryNearest(p, 0, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil || info.Shape != w.Ball.Shape {
		return false
	}
	w.Ball.held = true
	w.Ball.target = p
	w.Ball.pin(p)
	return true
}

// Drag moves the held ball's target to p. It does nothing when the ball is not held.
func (w *World) Drag(p cp.Vector) {
	if !w.Ball.held {
		return
	}
	w.Ball.target = p
	w.Ball.pin(p)
}

// Release lets go of the ball and wakes it so the simulation picks it up again.
func (w *World) Release() bool {
	if !w.Ball.held {
		return false
	}
	w.Ball.held = false
	w.Ball.Body.Activate()
	return true
}
