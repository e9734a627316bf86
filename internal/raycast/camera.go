// Package raycast turns a pointer position into a world ray and intersects it with scene
// primitives. It stands in for the rendering pipeline's picking so the editor can be driven and
// tested without a window.
package raycast

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half-line. Direction is unit length.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Camera is a perspective camera. FovY is the vertical field of view in degrees; Aspect is
// width/height and is refreshed by the host whenever the window size changes.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	FovY     float32
	Aspect   float32
}

const (
	minOrbitPolar = 0.05 // radians from straight down / straight up
	maxOrbitPolar = math32.Pi/2 - 0.05
	minDistance   = 20
	maxDistance   = 2000

	parallelEpsilon = 1e-6
)

// DefaultCamera looks at the origin from (150, 200, 150) with a 45° field of view.
func DefaultCamera() Camera {
	return Camera{
		Position: mgl32.Vec3{150, 200, 150},
		Target:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		FovY:     45,
		Aspect:   16.0 / 9.0,
	}
}

// Basis returns the camera's unit forward, right and up vectors. When Up is zero or parallel to
// the view direction (a camera straight above its target with Up +Y), -Z stands in for it, so
// screen-up faces away from the viewer the way an orbit from +Z would.
func (c *Camera) Basis() (forward, right, up mgl32.Vec3) {
	forward = c.Target.Sub(c.Position).Normalize()
	cross := forward.Cross(c.Up)
	if cross.Len() < parallelEpsilon {
		cross = forward.Cross(mgl32.Vec3{0, 0, -1})
		if cross.Len() < parallelEpsilon {
			cross = forward.Cross(mgl32.Vec3{0, 1, 0})
		}
	}
	right = cross.Normalize()
	up = right.Cross(forward)
	return forward, right, up
}

// PickRay returns the world ray through the pointer at ndc (x right, y up, both in [-1, 1]).
func (c *Camera) PickRay(ndc mgl32.Vec2) Ray {
	forward, right, up := c.Basis()
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	tanHalfFov := math32.Tan(mgl32.DegToRad(c.FovY) / 2)
	dir := forward.
		Add(right.Mul(ndc.X() * aspect * tanHalfFov)).
		Add(up.Mul(ndc.Y() * tanHalfFov)).
		Normalize()
	return Ray{Origin: c.Position, Direction: dir}
}

// Orbit rotates the camera around its target by yaw (about +Y) and pitch (towards the pole),
// both in radians. The polar angle is clamped so the camera never flips over the top.
func (c *Camera) Orbit(yaw, pitch float32) {
	off := c.Position.Sub(c.Target)
	r := off.Len()
	if r == 0 {
		return
	}
	theta := math32.Atan2(off.X(), off.Z()) + yaw
	phi := math32.Acos(mgl32.Clamp(off.Y()/r, -1, 1)) - pitch
	phi = mgl32.Clamp(phi, minOrbitPolar, maxOrbitPolar)
	sinPhi := math32.Sin(phi)
	c.Position = c.Target.Add(mgl32.Vec3{
		r * sinPhi * math32.Sin(theta),
		r * math32.Cos(phi),
		r * sinPhi * math32.Cos(theta),
	})
}

// Zoom scales the distance to the target by factor, clamped to a sane range.
func (c *Camera) Zoom(factor float32) {
	off := c.Position.Sub(c.Target)
	r := off.Len()
	if r == 0 || factor <= 0 {
		return
	}
	nr := mgl32.Clamp(r*factor, minDistance, maxDistance)
	c.Position = c.Target.Add(off.Mul(nr / r))
}

// ToNDC converts a pixel position in a w×h viewport (origin top-left, y down) to normalised
// device coordinates.
func ToNDC(x, y, w, h float32) mgl32.Vec2 {
	if w <= 0 || h <= 0 {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{x/w*2 - 1, -(y/h)*2 + 1}
}
