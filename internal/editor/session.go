package editor

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"brick-builder/internal/scene"
)

// PendingPlacement is what a move pick-up hands to the next add: the picked brick's colour and
// orientation.
type PendingPlacement struct {
	Color       colorful.Color
	Orientation scene.Orientation
}

// Session is the per-editor editing state. Two editors never share a session.
type Session struct {
	Mode        Mode
	Color       colorful.Color
	Orientation scene.Orientation
	// Pending is set by a move pick-up and cleared by the add that places it.
	Pending *PendingPlacement
}

// NewSession starts in add mode with colour c and no rotation.
func NewSession(c colorful.Color) Session {
	return Session{Mode: ModeAdd, Color: c, Orientation: scene.Yaw0}
}

// Carrying reports whether a picked-up brick is waiting to be placed.
func (s Session) Carrying() bool {
	return s.Pending != nil
}

// adopt makes p the selected colour and rotation and remembers it as pending.
func (s *Session) adopt(p PendingPlacement) {
	s.Color = p.Color
	s.Orientation = p.Orientation
	s.Pending = &p
}
