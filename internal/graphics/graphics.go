package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// WindowConfig describes the window opened by Run.
type WindowConfig struct {
	Title     string
	Width     int
	Height    int
	TargetFPS int
}

// Run opens a resizable window and runs the main loop until it is closed.
// resize is called once with the initial drawable size and again on every window resize,
// before that frame's update, so new bounds apply to the same frame. Each frame then calls
// update (input and simulation), clears the screen to black and calls draw.
func Run(cfg WindowConfig, resize func(width, height int), update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.TargetFPS))
	resize(rl.GetScreenWidth(), rl.GetScreenHeight())

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			resize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
