package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jakecoffman/cp/v2"

	"github.com/davidbecerra/Notes/internal/demo"
)

// keyBindings maps a pressed key to the action it triggers. Several keys may share an action.
var keyBindings = []struct {
	key    int32
	action demo.Action
}{
	{rl.KeyEscape, demo.Quit},
	{rl.KeyQ, demo.Quit},
	{rl.KeyR, demo.Reset},
	{rl.KeyA, demo.ToggleAttach},
	{rl.KeyUp, demo.MassUp},
	{rl.KeyDown, demo.MassDown},
	{rl.KeyRight, demo.StiffnessUp},
	{rl.KeyLeft, demo.StiffnessDown},
}

// Poll returns this frame's events in a fixed order: keys first, then mouse button changes.
// height is the window height used to flip mouse coordinates into world space.
func Poll(height float64) []demo.Event {
	var events []demo.Event
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			events = append(events, demo.Event{Action: b.action})
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		events = append(events, demo.Event{Action: demo.Grab, Pos: Mouse(height)})
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		events = append(events, demo.Event{Action: demo.Release})
	}
	return events
}

// Mouse returns the cursor position in world space.
func Mouse(height float64) cp.Vector {
	p := rl.GetMousePosition()
	return demo.ToWorld(p.X, p.Y, height)
}
