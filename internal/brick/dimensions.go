// Package brick builds brick entities: fixed dimensions, the stud layout on top of the body, and
// the colour palette bricks are painted from.
package brick

import "github.com/go-gl/mathgl/mgl32"

// Dimensions are the fixed measurements of a brick in world units. Length runs along X and Width
// along Z before rotation; studs sit on a StudsX × StudsZ sub-grid with StudPitch spacing.
type Dimensions struct {
	Length     float32 `yaml:"length,omitempty"`
	Width      float32 `yaml:"width,omitempty"`
	Height     float32 `yaml:"height,omitempty"`
	Inset      float32 `yaml:"inset,omitempty"` // body is shrunk by this on X and Z so neighbours don't z-fight
	StudRadius float32 `yaml:"stud_radius,omitempty"`
	StudHeight float32 `yaml:"stud_height,omitempty"`
	StudPitch  float32 `yaml:"stud_pitch,omitempty"`
	StudsX     int     `yaml:"studs_x,omitempty"`
	StudsZ     int     `yaml:"studs_z,omitempty"`
}

// DefaultDimensions returns the classic 2×4 brick: 40 × 20 × 12 with eight studs of radius 3 and
// height 4 on a 10-unit pitch.
func DefaultDimensions() Dimensions {
	return Dimensions{
		Length:     40,
		Width:      20,
		Height:     12,
		Inset:      0.2,
		StudRadius: 3,
		StudHeight: 4,
		StudPitch:  10,
		StudsX:     4,
		StudsZ:     2,
	}
}

// Extent returns (length, height, width): the unrotated bounding size of the body.
func (d Dimensions) Extent() mgl32.Vec3 {
	return mgl32.Vec3{d.Length, d.Height, d.Width}
}

// StudCount returns the number of studs on one brick.
func (d Dimensions) StudCount() int {
	return d.StudsX * d.StudsZ
}
