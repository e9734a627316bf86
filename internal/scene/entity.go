// Package scene holds the editable world: an ordered graph of entities (ground, grid overlay,
// bricks) and the primitives each entity owns. It has no rendering dependency; the renderer and
// the ray caster both read it.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Entity is anything that can live in a Graph. The set is closed: *Ground, *GridOverlay and *Brick
// are the only implementations, so a type switch over Entity is exhaustive.
type Entity interface {
	entity()
}

func (*Ground) entity()      {}
func (*GridOverlay) entity() {}
func (*Brick) entity()       {}

// Ground is the invisible placement plane at Y=0. It owns a single plane primitive so pointer rays
// that miss every brick still land somewhere.
type Ground struct {
	Size  float32
	plane *Primitive
}

// NewGround returns a square ground plane of the given side length centred on the origin.
func NewGround(size float32) *Ground {
	g := &Ground{Size: size}
	g.plane = &Primitive{
		Shape:    ShapePlane,
		Size:     mgl32.Vec3{size, 0, size},
		Material: &Material{},
		owner:    g,
	}
	return g
}

// Primitive returns the ground's plane primitive.
func (g *Ground) Primitive() *Primitive {
	return g.plane
}

// GridOverlay is the visual grid drawn on the ground. It is never hit-tested; Divisions is
// independent of the placement lattice.
type GridOverlay struct {
	Size      float32
	Divisions int
}

// NewGridOverlay returns a grid overlay of the given size and subdivision count.
func NewGridOverlay(size float32, divisions int) *GridOverlay {
	if divisions < 1 {
		divisions = 1
	}
	return &GridOverlay{Size: size, Divisions: divisions}
}

// Step returns the world distance between two grid lines.
func (g *GridOverlay) Step() float32 {
	return g.Size / float32(g.Divisions)
}
