package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/davidbecerra/Notes/internal/config"
)

// Run opens the window described by cfg and runs the main loop. Each frame it calls update (input and physics),
// then clears to the background color and calls draw. The loop ends when the window is closed or done reports true.
// ESC is left to the caller as a regular key; raylib's own exit key is disabled.
func Run(cfg config.Window, update, draw func(), done func() bool) {
	if cfg.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable)
	}
	rl.InitWindow(cfg.Width, cfg.Height, cfg.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(cfg.FPS)
	bg := rl.NewColor(cfg.Background[0], cfg.Background[1], cfg.Background[2], 255)

	for !rl.WindowShouldClose() && !done() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(bg)
		draw()
		rl.EndDrawing()
	}
}
