package physics

import (
	"github.com/jakecoffman/cp/v2"

	"github.com/davidbecerra/Notes/internal/config"
)

// Collision types registered with the engine. The floor×ball handler drives spring attachment.
const (
	CollisionFloor cp.CollisionType = iota + 1
	CollisionBall
)

// World owns the physics space: a static V floor, one ball, and at most one spring between them.
// All simulation (integration, contacts, constraint solving) is done by cp; World only wires
// user actions to it and enforces the one-spring and breaking rules.
type World struct {
	Space *cp.Space
	Floor []*cp.Shape
	Ball  *Ball

	cfg           config.Config
	spring        *cp.Constraint
	stiffness     float64
	maxBreak      float64
	attachEnabled bool
	breakable     bool
}

// NewWorld builds the scene described by cfg. Breaking is off until SetBreakable is called.
func NewWorld(cfg config.Config) *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: cfg.Physics.Gravity[0], Y: cfg.Physics.Gravity[1]})
	if cfg.Physics.Iterations > 0 {
		space.Iterations = cfg.Physics.Iterations
	}
	w := &World{Space: space, cfg: cfg}
	w.addFloor(float64(cfg.Window.Width), float64(cfg.Window.Height))
	start := cp.Vector{X: cfg.Ball.Start[0], Y: cfg.Ball.Start[1]}
	w.Ball = newBall(space, cfg.Ball.Mass, cfg.Ball.Radius, start, cfg.Ball.Elasticity)
	w.setStiffness(cfg.Spring.Stiffness)

	handler := space.NewCollisionHandler(CollisionFloor, CollisionBall)
	handler.BeginFunc = w.beginContact
	return w
}

// Step advances the simulation by dt seconds. A held ball stays pinned to its target.
// When breaking is enabled it reports whether the spring snapped during this step.
func (w *World) Step(dt float64) (broke bool) {
	if w.Ball.held {
		w.Ball.pin(w.Ball.target)
	}
	w.Space.Step(dt)
	if w.Ball.held {
		w.Ball.pin(w.Ball.target)
	}
	if w.breakable {
		return w.CheckTension()
	}
	return false
}

// Reset returns the ball to its start position with no motion or forces and removes every constraint.
// Attachment stays armed or disarmed as it was.
func (w *World) Reset() {
	w.Ball.held = false
	w.Ball.Body.SetPosition(w.Ball.Start)
	w.Ball.stop()
	w.Ball.Body.Activate()
	w.detach()
}

// Constraints returns the constraints currently in the space.
func (w *World) Constraints() []*cp.Constraint {
	var out []*cp.Constraint
	w.Space.EachConstraint(func(c *cp.Constraint) {
		out = append(out, c)
	})
	return out
}

// removeConstraints removes every constraint from the space. Must not run during Step.
func (w *World) removeConstraints() {
	for _, c := range w.Constraints() {
		w.Space.RemoveConstraint(c)
	}
}

// ClampedAdd returns v+delta, never less than floor.
func ClampedAdd(v, delta, floor float64) float64 {
	return max(v+delta, floor)
}

// AdjustMass changes the ball's mass by delta, clamped at zero, and returns the new mass.
func (w *World) AdjustMass(delta float64) float64 {
	w.Ball.setMass(ClampedAdd(w.Ball.mass, delta, 0))
	return w.Ball.mass
}
