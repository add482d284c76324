package demo

import "github.com/jakecoffman/cp/v2"

// Mode selects which demo the controller runs.
type Mode int

const (
	// Basic: drop, drag, reset and toggle attachment.
	Basic Mode = iota
	// Breakable adds mass/stiffness tuning and a spring that snaps under tension.
	Breakable
)

func (m Mode) String() string {
	switch m {
	case Basic:
		return "basic"
	case Breakable:
		return "breakable"
	}
	return "unknown"
}

// Action is one discrete user intent, decoded from keyboard or mouse input.
type Action int

const (
	Quit Action = iota
	Reset
	ToggleAttach
	MassUp
	MassDown
	StiffnessUp
	StiffnessDown
	Grab
	Release
)

var actionNames = [...]string{
	Quit:          "quit",
	Reset:         "reset",
	ToggleAttach:  "toggle-attach",
	MassUp:        "mass-up",
	MassDown:      "mass-down",
	StiffnessUp:   "stiffness-up",
	StiffnessDown: "stiffness-down",
	Grab:          "grab",
	Release:       "release",
}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Event is an Action plus the world position it happened at (only meaningful for Grab).
type Event struct {
	Action Action
	Pos    cp.Vector
}
