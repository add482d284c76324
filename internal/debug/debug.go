package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds runtime debugging features: the "fps: N" window caption and optional
// top-right overlays. Overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	TitleFPS     bool
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastTitle    string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden and the FPS caption enabled.
func New() *Debug {
	return &Debug{TitleFPS: true}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the memory allocation counter is drawn (top-right, under FPS).
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

func titleText(fps int32) string {
	return fmt.Sprintf("fps: %d", fps)
}

// Draw refreshes the FPS caption and renders any enabled overlays. Call last in the draw loop.
// Text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw() {
	d.frameCount++
	update := d.frameCount%updateInterval == 0 ||
		(d.TitleFPS && d.lastTitle == "") ||
		(d.ShowFPS && d.lastFpsText == "") ||
		(d.ShowMemAlloc && d.lastMemText == "")

	if update {
		fps := rl.GetFPS()
		if d.TitleFPS {
			if title := titleText(fps); title != d.lastTitle {
				rl.SetWindowTitle(title)
				d.lastTitle = title
			}
		}
		if d.ShowFPS {
			d.lastFpsText = fmt.Sprintf("FPS: %d", fps)
		}
		if d.ShowMemAlloc {
			runtime.ReadMemStats(&d.lastMemStats)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(d.lastMemStats.Alloc)/(1024*1024))
		}
	}

	y := int32(fpsPadding)
	if d.ShowFPS {
		drawRight(d.lastFpsText, y)
		y += fpsLineHeight
	}
	if d.ShowMemAlloc {
		drawRight(d.lastMemText, y)
	}
}

func drawRight(text string, y int32) {
	if text == "" {
		return
	}
	x := int32(rl.GetScreenWidth()) - rl.MeasureText(text, fpsFontSize) - fpsPadding
	rl.DrawText(text, x, y, fpsFontSize, rl.Green)
}
