package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Run starts the window and main loop. Each frame it calls update (input and
// simulation stepping), then clears the screen and calls draw (3D scene plus
// overlay). This keeps the graphics layer separate from simulation content.
func Run(update, draw func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, "vehicle playground")
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(95, 140, 190, 255))
		draw()
		rl.EndDrawing()
	}
}
