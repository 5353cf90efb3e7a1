package debug

import (
	"fmt"

	"dodeca/internal/sim"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

var readoutColor = rl.NewColor(180, 180, 180, 255)

// Debug holds the on-screen overlays: FPS at the top-right and a one-line world readout
// at the bottom-left. Both are off by default.
type Debug struct {
	ShowFPS     bool
	ShowReadout bool
	frameCount  uint32
	lastFPS     string
	lastReadout string
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Toggle flips both overlays.
func (d *Debug) Toggle() {
	d.ShowFPS = !d.ShowFPS
	d.ShowReadout = d.ShowFPS
}

// Update toggles the overlays on F3. Call once per frame.
func (d *Debug) Update() {
	if rl.IsKeyPressed(rl.KeyF3) {
		d.Toggle()
	}
}

// Draw renders any enabled overlay. Call after the scene in the draw loop.
// Text is only recomputed every updateInterval frames unless a drag is in progress.
func (d *Debug) Draw(snap sim.Snapshot) {
	d.frameCount++
	update := d.frameCount%updateInterval == 0 || snap.Highlighted
	if d.ShowFPS && d.lastFPS == "" || d.ShowReadout && d.lastReadout == "" {
		update = true
	}

	if d.ShowFPS {
		if update {
			d.lastFPS = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		w := rl.MeasureText(d.lastFPS, fontSize)
		rl.DrawText(d.lastFPS, int32(rl.GetScreenWidth())-w-padding, padding, fontSize, rl.Green)
	}

	if d.ShowReadout {
		if update {
			d.lastReadout = snap.String()
		}
		y := int32(rl.GetScreenHeight()) - lineHeight - padding
		rl.DrawText(d.lastReadout, padding, y, fontSize, readoutColor)
	}
}
