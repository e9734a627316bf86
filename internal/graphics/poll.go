package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"brick-builder/internal/input"
)

var shortcuts = []struct {
	raylib int32
	key    input.Key
}{
	{rl.KeyR, input.KeyRotate},
	{rl.KeyOne, input.KeyModeAdd},
	{rl.KeyTwo, input.KeyModeMove},
	{rl.KeyThree, input.KeyModeDelete},
	{rl.KeyFour, input.KeyModePaint},
	{rl.KeyQ, input.KeyPrevColor},
	{rl.KeyE, input.KeyNextColor},
}

// Poll samples the window's mouse and keyboard for this frame. Call between frames, inside the
// update callback.
func Poll() input.Frame {
	mouse := rl.GetMousePosition()
	f := input.Frame{
		ScreenW:     float32(rl.GetScreenWidth()),
		ScreenH:     float32(rl.GetScreenHeight()),
		MouseX:      mouse.X,
		MouseY:      mouse.Y,
		LeftPressed: rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		Wheel:       rl.GetMouseWheelMove(),
	}
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		f.DragX, f.DragY = d.X, d.Y
	}
	for _, s := range shortcuts {
		if rl.IsKeyPressed(s.raylib) {
			f.Keys = append(f.Keys, s.key)
		}
	}
	return f
}
