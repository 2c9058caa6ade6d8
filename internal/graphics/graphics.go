package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// WindowOptions configures the window opened by Run.
type WindowOptions struct {
	Title      string
	Width      int32
	Height     int32
	Fullscreen bool // use the monitor size and FlagFullscreenMode; Width and Height are ignored
}

// Hooks are the callbacks Run makes into the view. Nil hooks are skipped.
type Hooks struct {
	Appear    func()           // window is open, before the first frame
	Disappear func()           // loop ended, before the window closes
	Interrupt func()           // window was minimized or lost focus
	Resume    func()           // window is restored and focused again
	Update    func(dt float32) // once per frame while not suspended
	Draw      func()           // between BeginDrawing and EndDrawing
}

// Run opens the window and runs the main loop until it is closed. Each frame it checks
// whether the window is suspended (minimized or unfocused), calls Update unless it is,
// then clears the screen and calls Draw. Suspended windows still draw so the last frame
// stays visible.
func Run(opts WindowOptions, h Hooks) {
	width, height := opts.Width, opts.Height
	if opts.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode | rl.FlagMsaa4xHint)
		width, height = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	} else {
		rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	}
	rl.InitWindow(width, height, opts.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	call(h.Appear)
	suspended := false
	for !rl.WindowShouldClose() {
		now := rl.IsWindowMinimized() || !rl.IsWindowFocused()
		if now != suspended {
			suspended = now
			if suspended {
				call(h.Interrupt)
			} else {
				call(h.Resume)
			}
		}
		if !suspended && h.Update != nil {
			h.Update(rl.GetFrameTime())
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		call(h.Draw)
		rl.EndDrawing()
	}
	call(h.Disappear)
}

func call(f func()) {
	if f != nil {
		f()
	}
}
