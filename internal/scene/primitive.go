package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Shape is the geometric kind of a primitive.
type Shape int

const (
	ShapeBox Shape = iota
	ShapeCylinder
	ShapePlane
)

func (s Shape) String() string {
	switch s {
	case ShapeBox:
		return "box"
	case ShapeCylinder:
		return "cylinder"
	case ShapePlane:
		return "plane"
	}
	return "unknown"
}

// Material is the surface description shared by all primitives of one brick. Only colour is
// modelled; recolouring a brick mutates its single Material in place.
type Material struct {
	Color colorful.Color
}

// Primitive is one renderable, hit-testable sub-shape of an entity.
// Offset is the shape's centre in the owner's local frame. Size is the full extent:
// box (x, y, z), cylinder (diameter, height, diameter) with its axis along Y, plane (x, 0, z).
type Primitive struct {
	Shape    Shape
	Offset   mgl32.Vec3
	Size     mgl32.Vec3
	Material *Material
	owner    Entity
}

// Owner returns the entity this primitive belongs to.
func (p *Primitive) Owner() Entity {
	return p.owner
}

// Brick returns the owning brick, or false when the primitive belongs to something else (ground).
func (p *Primitive) Brick() (*Brick, bool) {
	b, ok := p.owner.(*Brick)
	return b, ok
}

// IsGround reports whether the primitive is the ground plane.
func (p *Primitive) IsGround() bool {
	_, ok := p.owner.(*Ground)
	return ok
}

// Frame returns the world origin and yaw (radians) of the primitive's local frame, i.e. its
// owner's placement. Ground primitives sit at the world origin without rotation.
func (p *Primitive) Frame() (origin mgl32.Vec3, yaw float32) {
	if b, ok := p.owner.(*Brick); ok {
		return b.Position, b.Orientation.Radians()
	}
	return mgl32.Vec3{}, 0
}

// Radius returns the radius of a cylinder primitive.
func (p *Primitive) Radius() float32 {
	return p.Size.X() * 0.5
}
