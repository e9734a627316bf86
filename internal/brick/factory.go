package brick

import (
	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"

	"brick-builder/internal/scene"
)

// Factory builds bricks of one fixed size. The part list is computed once; every brick gets its
// own primitives and material.
type Factory struct {
	dims  Dimensions
	parts []scene.Part
}

// NewFactory returns a factory for bricks with dimensions d.
func NewFactory(d Dimensions) *Factory {
	return &Factory{dims: d, parts: layout(d)}
}

// Dimensions returns the brick dimensions this factory builds.
func (f *Factory) Dimensions() Dimensions {
	return f.dims
}

// New returns a brick of colour c anchored (bottom centre) at position with orientation o.
// The brick is not added to any graph; callers register it through the editor.
func (f *Factory) New(c colorful.Color, position mgl32.Vec3, o scene.Orientation) *scene.Brick {
	return scene.NewBrick(position, o, c, f.dims.Extent(), f.parts)
}

// layout returns the body followed by the studs, row-major over X then Z.
// Body: (L-inset) × H × (W-inset), centred at H/2.
// Studs: first stud centre at (-L/2 + pitch/2, H + studH/2, -W/2 + pitch/2).
func layout(d Dimensions) []scene.Part {
	parts := make([]scene.Part, 0, 1+d.StudCount())
	parts = append(parts, scene.Part{
		Shape:  scene.ShapeBox,
		Offset: mgl32.Vec3{0, d.Height / 2, 0},
		Size:   mgl32.Vec3{d.Length - d.Inset, d.Height, d.Width - d.Inset},
	})

	startX := -d.Length/2 + d.StudPitch/2
	startZ := -d.Width/2 + d.StudPitch/2
	studY := d.Height + d.StudHeight/2
	studSize := mgl32.Vec3{d.StudRadius * 2, d.StudHeight, d.StudRadius * 2}
	for i := 0; i < d.StudsX; i++ {
		for j := 0; j < d.StudsZ; j++ {
			parts = append(parts, scene.Part{
				Shape:  scene.ShapeCylinder,
				Offset: mgl32.Vec3{startX + float32(i)*d.StudPitch, studY, startZ + float32(j)*d.StudPitch},
				Size:   studSize,
			})
		}
	}
	return parts
}
