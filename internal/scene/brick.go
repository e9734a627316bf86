package scene

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Orientation is a brick's discrete yaw.
type Orientation int

const (
	Yaw0 Orientation = iota
	Yaw90
)

// Radians returns the yaw angle about +Y.
func (o Orientation) Radians() float32 {
	if o == Yaw90 {
		return math.Pi / 2
	}
	return 0
}

// Toggle returns the other orientation.
func (o Orientation) Toggle() Orientation {
	if o == Yaw90 {
		return Yaw0
	}
	return Yaw90
}

func (o Orientation) String() string {
	if o == Yaw90 {
		return "90°"
	}
	return "0°"
}

// Footprint returns the horizontal (x, z) extent of a brick with the given extent
// (length, height, width) when placed with orientation o.
func Footprint(extent mgl32.Vec3, o Orientation) (x, z float32) {
	if o == Yaw90 {
		return extent.Z(), extent.X()
	}
	return extent.X(), extent.Z()
}

// Part describes one primitive of a brick at construction time.
type Part struct {
	Shape  Shape
	Offset mgl32.Vec3
	Size   mgl32.Vec3
}

// Brick is a placed brick. Position is bottom-centre anchored. The primitive set is fixed at
// construction: one body followed by the studs, all sharing one Material.
type Brick struct {
	Position    mgl32.Vec3
	Orientation Orientation
	Color       colorful.Color
	// Extent is (length, height, width) of the body before rotation.
	Extent mgl32.Vec3

	material   *Material
	primitives []*Primitive
}

// NewBrick builds a brick and its primitives from parts. The brick is not in any graph yet.
func NewBrick(position mgl32.Vec3, o Orientation, color colorful.Color, extent mgl32.Vec3, parts []Part) *Brick {
	b := &Brick{
		Position:    position,
		Orientation: o,
		Color:       color,
		Extent:      extent,
		material:    &Material{Color: color},
	}
	b.primitives = make([]*Primitive, 0, len(parts))
	for _, part := range parts {
		b.primitives = append(b.primitives, &Primitive{
			Shape:    part.Shape,
			Offset:   part.Offset,
			Size:     part.Size,
			Material: b.material,
			owner:    b,
		})
	}
	return b
}

// Primitives returns the brick's primitives, body first.
func (b *Brick) Primitives() []*Primitive {
	return slices.Clone(b.primitives)
}

// Material returns the material shared by all of the brick's primitives.
func (b *Brick) Material() *Material {
	return b.material
}

// Recolor changes the brick's colour metadata and its shared material in place.
func (b *Brick) Recolor(c colorful.Color) {
	b.Color = c
	b.material.Color = c
}

// Footprint returns the brick's horizontal (x, z) extent for its current orientation.
func (b *Brick) Footprint() (x, z float32) {
	return Footprint(b.Extent, b.Orientation)
}

func (b *Brick) String() string {
	return fmt.Sprintf("brick %s at (%.1f, %.1f, %.1f) yaw %s",
		strings.ToUpper(b.Color.Hex()), b.Position.X(), b.Position.Y(), b.Position.Z(), b.Orientation)
}
