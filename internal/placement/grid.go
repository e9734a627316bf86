// Package placement turns ray hits into brick placements: the snap lattice and the ghost that
// previews where the next brick will land.
package placement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultCell        = 10
	DefaultUpThreshold = 0.5
)

// Grid is the placement lattice. Brick centres land on cell centres (multiples of Cell offset by
// half a cell), independent of the grid overlay drawn on the ground.
type Grid struct {
	Cell float32
	// UpThreshold is the minimum normal.y for a hit to count as resting on an upward face.
	UpThreshold float32
}

// DefaultGrid returns a 10-unit lattice.
func DefaultGrid() Grid {
	return Grid{Cell: DefaultCell, UpThreshold: DefaultUpThreshold}
}

// SnapAxis maps v to the centre of the cell containing it.
func (g Grid) SnapAxis(v float32) float32 {
	return math32.Floor(v/g.Cell)*g.Cell + g.Cell/2
}

// OnUpwardFace reports whether a hit with this normal lies on a face pointing up (a brick top or
// the ground), which is where stacking happens.
func (g Grid) OnUpwardFace(normal mgl32.Vec3) bool {
	return normal.Y() > g.UpThreshold
}

// Snap returns the placement for a hit at point with surface normal. X and Z snap to the lattice.
// Y is the hit height: on an upward face that is the face's height, so a brick dropped on another
// brick's top stacks on it and one dropped on the ground sits at 0. Side-face hits keep the raw
// hit height.
func (g Grid) Snap(point, normal mgl32.Vec3) mgl32.Vec3 {
	y := point.Y()
	if g.OnUpwardFace(normal) {
		y = math32.Round(y*1000) / 1000 // strip float noise from the face height
	}
	return mgl32.Vec3{g.SnapAxis(point.X()), y, g.SnapAxis(point.Z())}
}
