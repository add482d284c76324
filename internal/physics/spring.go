package physics

import "github.com/jakecoffman/cp/v2"

// AttachEnabled reports whether touching the floor attaches the ball with a spring.
func (w *World) AttachEnabled() bool {
	return w.attachEnabled
}

// SetAttachEnabled arms or disarms attachment. Disarming also removes every constraint
// and marks the ball as free.
func (w *World) SetAttachEnabled(on bool) {
	if !on {
		w.detach()
	}
	w.attachEnabled = on
}

// ToggleAttach flips attachment and returns the new state.
func (w *World) ToggleAttach() bool {
	w.SetAttachEnabled(!w.attachEnabled)
	return w.attachEnabled
}

// SetBreakable enables the per-step tension check.
func (w *World) SetBreakable(on bool) {
	w.breakable = on
}

// Spring returns the live floor-ball spring, or nil.
func (w *World) Spring() *cp.Constraint {
	return w.spring
}

// Stiffness returns the stiffness used for new and live springs.
func (w *World) Stiffness() float64 {
	return w.stiffness
}

// MaxBreak returns the impulse magnitude above which the spring breaks.
func (w *World) MaxBreak() float64 {
	return w.maxBreak
}

// AdjustStiffness changes the spring stiffness by delta, clamped at zero, rescales the breaking
// threshold and applies both to the live spring. It returns the new stiffness.
func (w *World) AdjustStiffness(delta float64) float64 {
	w.setStiffness(ClampedAdd(w.stiffness, delta, 0))
	if w.spring != nil {
		w.spring.Class.(*cp.DampedSpring).Stiffness = w.stiffness
	}
	return w.stiffness
}

func (w *World) setStiffness(k float64) {
	w.stiffness = k
	w.maxBreak = k * w.cfg.Spring.BreakRatio
}

// attach ties the ball to the floor with a damped spring anchored at the world point p.
// It is a no-op when the ball already has a spring. The constraint goes in immediately,
// so attach must not be called while the space is stepping.
func (w *World) attach(p cp.Vector) bool {
	spring := w.newSpring(w.Space.StaticBody, p)
	if spring == nil {
		return false
	}
	w.Space.AddConstraint(spring)
	return true
}

func (w *World) newSpring(floor *cp.Body, p cp.Vector) *cp.Constraint {
	if w.Ball.attached {
		return nil
	}
	ball := w.Ball.Body
	s := w.cfg.Spring
	w.spring = cp.NewDampedSpring(floor, ball, floor.WorldToLocal(p), ball.WorldToLocal(p), s.RestLength, w.stiffness, s.Damping)
	w.Ball.attached = true
	return w.spring
}

// beginContact runs when a floor segment and the ball start touching. It always lets the collision proceed.
func (w *World) beginContact(arb *cp.Arbiter, space *cp.Space, _ interface{}) bool {
	if !w.attachEnabled || w.Ball.attached {
		return true
	}
	a, b := arb.Shapes()
	floor := a
	if a == w.Ball.Shape {
		floor = b
	}
	set := arb.ContactPointSet()
	if set.Count == 0 {
		return true
	}
	// use the contact point on the floor's surface
	p := set.Points[0].PointA
	if a == w.Ball.Shape {
		p = set.Points[0].PointB
	}
	spring := w.newSpring(floor.Body(), p)
	space.AddPostStepCallback(addConstraint, spring, nil)
	return true
}

func addConstraint(space *cp.Space, key, _ interface{}) {
	space.AddConstraint(key.(*cp.Constraint))
}

// CheckTension removes the spring when the magnitude of its last impulse exceeds MaxBreak.
// It reports whether the spring broke.
func (w *World) CheckTension() bool {
	if w.spring == nil {
		return false
	}
	impulse := w.spring.Class.GetImpulse()
	if impulse < 0 {
		impulse = -impulse
	}
	if impulse <= w.maxBreak {
		return false
	}
	w.Space.RemoveConstraint(w.spring)
	w.spring = nil
	w.Ball.attached = false
	return true
}

// detach drops every constraint and frees the ball.
func (w *World) detach() {
	w.removeConstraints()
	w.spring = nil
	w.Ball.attached = false
}
