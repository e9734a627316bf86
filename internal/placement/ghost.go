package placement

import (
	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"

	"brick-builder/internal/scene"
)

// Ghost opacities. Purely visual: nothing reads them except the renderer.
const (
	AddOpacity  = 0.5
	MoveOpacity = 0.7
)

// Ghost previews the pending placement. It is not a brick: it has no primitives, is never
// registered for hit testing and never enters the scene graph.
type Ghost struct {
	Visible     bool
	Position    mgl32.Vec3
	Orientation scene.Orientation
	Color       colorful.Color
	Opacity     float32
	// Extent is the (length, height, width) of the previewed brick before rotation.
	Extent mgl32.Vec3
}

// NewGhost returns a hidden ghost for bricks of the given extent.
func NewGhost(extent mgl32.Vec3) *Ghost {
	return &Ghost{Extent: extent, Opacity: AddOpacity}
}

// Show places the ghost at position and makes it visible.
func (g *Ghost) Show(position mgl32.Vec3, o scene.Orientation, c colorful.Color, opacity float32) {
	g.Visible = true
	g.Position = position
	g.Orientation = o
	g.Color = c
	g.Opacity = opacity
}

// Hide makes the ghost invisible. Its last position is kept.
func (g *Ghost) Hide() {
	g.Visible = false
}

// SetOrientation updates the previewed yaw in place, visible or not.
func (g *Ghost) SetOrientation(o scene.Orientation) {
	g.Orientation = o
}

// Footprint returns the ghost's horizontal (x, z) extent for its current orientation.
func (g *Ghost) Footprint() (x, z float32) {
	return scene.Footprint(g.Extent, g.Orientation)
}
