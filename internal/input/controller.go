// Package input turns one frame of mouse and keyboard state into editor and camera calls.
// HUD clicks are routed to the toolbar and never reach the scene. Polling the window lives in
// graphics, so everything here runs without a GL context.
package input

import (
	"io"

	"github.com/sirupsen/logrus"

	"brick-builder/internal/editor"
	"brick-builder/internal/raycast"
	"brick-builder/internal/ui"
)

const (
	// DefaultOrbitSpeed is radians of orbit per pixel of right-drag.
	DefaultOrbitSpeed = 0.005
	// DefaultZoomStep is the distance factor per wheel notch towards the target.
	DefaultZoomStep = 0.9
)

// Key is a builder shortcut.
type Key int

const (
	KeyRotate Key = iota
	KeyModeAdd
	KeyModeMove
	KeyModeDelete
	KeyModePaint
	KeyPrevColor
	KeyNextColor
)

// Frame is the input sampled for one frame. Mouse coordinates are pixels, origin top-left.
type Frame struct {
	ScreenW, ScreenH float32
	MouseX, MouseY   float32
	// LeftPressed is true on the frame the primary button goes down.
	LeftPressed bool
	// Drag is the mouse movement while the secondary button is held.
	DragX, DragY float32
	Wheel        float32
	Keys         []Key
}

// Controller drives the editor and the camera from sampled frames.
type Controller struct {
	ed  *editor.Editor
	hud *ui.HUD
	cam *raycast.Camera
	log logrus.FieldLogger

	OrbitSpeed float32
	ZoomStep   float32
}

// New returns a controller for ed. hud may be nil when no toolbar is shown.
func New(ed *editor.Editor, hud *ui.HUD, cam *raycast.Camera, log logrus.FieldLogger) *Controller {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Controller{
		ed:         ed,
		hud:        hud,
		cam:        cam,
		log:        log.WithField("component", "input"),
		OrbitSpeed: DefaultOrbitSpeed,
		ZoomStep:   DefaultZoomStep,
	}
}

// Update applies one frame. When the terminal is open the keyboard belongs to it, so f.Keys is
// ignored and only the mouse is handled.
func (c *Controller) Update(f Frame, terminalOpen bool) {
	if f.ScreenH > 0 {
		c.cam.Aspect = f.ScreenW / f.ScreenH
	}
	if f.DragX != 0 || f.DragY != 0 {
		c.cam.Orbit(-f.DragX*c.OrbitSpeed, -f.DragY*c.OrbitSpeed)
	}
	if f.Wheel != 0 {
		factor := c.ZoomStep
		if f.Wheel < 0 {
			factor = 1 / factor
		}
		c.cam.Zoom(factor)
	}

	p := editor.Pointer{
		NDC:    raycast.ToNDC(f.MouseX, f.MouseY, f.ScreenW, f.ScreenH),
		Button: editor.ButtonPrimary,
		OverUI: c.hud != nil && c.hud.Contains(f.MouseX, f.MouseY),
	}
	c.ed.PointerMove(p)

	if f.LeftPressed {
		if p.OverUI {
			if click, ok := c.hud.Click(f.MouseX, f.MouseY); ok {
				if err := c.Apply(click); err != nil {
					c.log.WithError(err).Warn("toolbar action failed")
				}
			}
		} else {
			c.ed.PointerDown(p)
		}
	}

	if !terminalOpen {
		for _, k := range f.Keys {
			c.key(k)
		}
	}
}

func (c *Controller) key(k Key) {
	var err error
	switch k {
	case KeyRotate:
		c.ed.RotateBrick()
	case KeyModeAdd, KeyModeMove, KeyModeDelete, KeyModePaint:
		if m, ok := keyMode(int(k - KeyModeAdd + 1)); ok {
			c.ed.SetMode(m)
		}
	case KeyPrevColor:
		err = c.CycleColor(-1)
	case KeyNextColor:
		err = c.CycleColor(1)
	}
	if err != nil {
		c.log.WithError(err).Warn("colour change failed")
	}
}
