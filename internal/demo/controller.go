package demo

import (
	"fmt"

	"github.com/jakecoffman/cp/v2"

	"github.com/davidbecerra/Notes/internal/config"
	"github.com/davidbecerra/Notes/internal/logger"
	"github.com/davidbecerra/Notes/internal/physics"
)

var basicHelp = []string{
	"ESC or Q: Quit",
	"R: reset simulation",
	"A: Toggle floor-ball attachment on collision",
}

var breakableHelp = []string{
	"UP/DOWN: ball mass",
	"LEFT/RIGHT: spring stiffness",
}

// Controller maps input events to changes in the physics world and keeps the status text.
// It owns no rendering; the caller draws World.Space and StatusLines each frame.
type Controller struct {
	World *physics.World

	mode     Mode
	tuning   config.Tuning
	dt       float64
	log      *logger.Logger
	handlers map[Action]func(Event)

	done        bool
	breaks      int
	wasAttached bool
	status      []string
	statusDirty bool
}

// New returns a controller for mode over a fresh world built from cfg. Events are logged to log.
func New(mode Mode, cfg config.Config, log *logger.Logger) *Controller {
	w := physics.NewWorld(cfg)
	w.SetBreakable(mode == Breakable)
	c := &Controller{
		World:       w,
		mode:        mode,
		tuning:      cfg.Tuning,
		dt:          1 / float64(cfg.Window.FPS),
		log:         log,
		statusDirty: true,
	}
	c.handlers = map[Action]func(Event){
		Quit:         func(Event) { c.done = true },
		Reset:        func(Event) { c.World.Reset() },
		ToggleAttach: func(Event) { c.logf("attach on contact: %s", onOff(c.World.ToggleAttach())) },
		Grab: func(ev Event) {
			if c.World.Grab(ev.Pos) {
				c.logf("grabbed ball at (%.0f, %.0f)", ev.Pos.X, ev.Pos.Y)
			}
		},
		Release: func(Event) {
			if c.World.Release() {
				c.logf("released ball")
			}
		},
	}
	if mode == Breakable {
		c.handlers[MassUp] = func(Event) { c.logf("mass %.1f", c.World.AdjustMass(c.tuning.MassStep)) }
		c.handlers[MassDown] = func(Event) { c.logf("mass %.1f", c.World.AdjustMass(-c.tuning.MassStep)) }
		c.handlers[StiffnessUp] = func(Event) {
			c.logf("stiffness %.1f", c.World.AdjustStiffness(c.tuning.StiffnessStep))
		}
		c.handlers[StiffnessDown] = func(Event) {
			c.logf("stiffness %.1f", c.World.AdjustStiffness(-c.tuning.StiffnessStep))
		}
	}
	c.logf("%s demo started", mode)
	return c
}

// Handle applies one event. Events with no effect in the current mode are ignored.
// It reports whether the event was handled.
func (c *Controller) Handle(ev Event) bool {
	h, ok := c.handlers[ev.Action]
	if !ok {
		return false
	}
	if ev.Action == Reset {
		c.log.Log("reset")
	}
	h(ev)
	c.statusDirty = true
	return true
}

// Frame moves a held ball to mouse and advances the simulation by one fixed step.
func (c *Controller) Frame(mouse cp.Vector) {
	c.World.Drag(mouse)
	if c.World.Step(c.dt) {
		c.breaks++
		c.logf("spring broke (limit %.1f)", c.World.MaxBreak())
		c.statusDirty = true
	}
	if attached := c.World.Ball.Attached(); attached != c.wasAttached {
		if attached {
			c.log.Log("ball attached to floor")
		}
		c.wasAttached = attached
		c.statusDirty = true
	}
}

// Done reports whether a Quit event was handled.
func (c *Controller) Done() bool {
	return c.done
}

// Breaks returns how many times the spring has snapped.
func (c *Controller) Breaks() int {
	return c.breaks
}

// StatusLines returns the on-screen text. Lines are rebuilt only after a change.
func (c *Controller) StatusLines() []string {
	if !c.statusDirty {
		return c.status
	}
	// fresh slice so lines handed out earlier never change under the caller
	status := make([]string, 0, len(basicHelp)+len(breakableHelp)+3)
	status = append(status, basicHelp...)
	if c.mode == Breakable {
		w := c.World
		status = append(status, breakableHelp...)
		status = append(status,
			fmt.Sprintf("Mass: %.1f  Stiffness: %.1f", w.Ball.Mass(), w.Stiffness()),
			fmt.Sprintf("Break at: %.1f  Breaks: %d", w.MaxBreak(), c.breaks),
			fmt.Sprintf("Attach: %s  Spring: %s", onOff(w.AttachEnabled()), springState(w.Ball.Attached())),
		)
	}
	c.status = status
	c.statusDirty = false
	return c.status
}

func (c *Controller) logf(format string, args ...any) {
	c.log.Logf(format, args...)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func springState(attached bool) string {
	if attached {
		return "attached"
	}
	return "free"
}
