package raycast

import (
	"cmp"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"brick-builder/internal/scene"
)

// Clip planes shared by picking and drawing. The renderer sets the same planes, so nothing is
// pickable that is not drawn.
const (
	NearPlane = 1
	FarPlane  = 5000
)

// DefaultMaxDistance matches FarPlane.
const DefaultMaxDistance = FarPlane

// Hit is one ray/primitive intersection in world space. Primitive is the specific shape that was
// hit (a stud or a body), not the owning brick.
type Hit struct {
	Primitive *scene.Primitive
	Point     mgl32.Vec3
	Normal    mgl32.Vec3
	Distance  float32
}

// IsGround reports whether the hit landed on the ground plane.
func (h Hit) IsGround() bool {
	return h.Primitive.IsGround()
}

// Brick returns the brick that owns the hit primitive.
func (h Hit) Brick() (*scene.Brick, bool) {
	return h.Primitive.Brick()
}

// Caster casts pointer rays from Camera. The camera is shared with the host, which keeps its
// position and aspect current.
type Caster struct {
	Camera      *Camera
	MaxDistance float32
}

// NewCaster returns a caster that picks through cam.
func NewCaster(cam *Camera) *Caster {
	return &Caster{Camera: cam, MaxDistance: DefaultMaxDistance}
}

// CastRay intersects the pick ray through ndc with targets and returns the hits nearest first.
func (c *Caster) CastRay(ndc mgl32.Vec2, targets []*scene.Primitive) []Hit {
	return Cast(c.Camera.PickRay(ndc), targets, c.MaxDistance)
}

// Cast intersects ray with every target and returns hits within maxDistance, nearest first.
// An empty result is not an error.
func Cast(ray Ray, targets []*scene.Primitive, maxDistance float32) []Hit {
	var hits []Hit
	for _, p := range targets {
		h, ok := intersect(ray, p)
		if !ok || h.Distance > maxDistance {
			continue
		}
		hits = append(hits, h)
	}
	slices.SortStableFunc(hits, func(a, b Hit) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	return hits
}

// intersect moves the ray into the primitive's local frame (undo the owner's yaw and position,
// then the primitive offset), tests the shape there and moves the result back out.
func intersect(ray Ray, p *scene.Primitive) (Hit, bool) {
	origin, yaw := p.Frame()
	toLocal := mgl32.Rotate3DY(-yaw)
	toWorld := mgl32.Rotate3DY(yaw)

	o := toLocal.Mul3x1(ray.Origin.Sub(origin)).Sub(p.Offset)
	d := toLocal.Mul3x1(ray.Direction)

	var (
		lh localHit
		ok bool
	)
	switch p.Shape {
	case scene.ShapeBox:
		lh, ok = intersectBox(o, d, p.Size.Mul(0.5))
	case scene.ShapeCylinder:
		lh, ok = intersectCylinder(o, d, p.Radius(), p.Size.Y()/2)
	case scene.ShapePlane:
		lh, ok = intersectPlane(o, d, p.Size.X()/2, p.Size.Z()/2)
	}
	if !ok {
		return Hit{}, false
	}
	return Hit{
		Primitive: p,
		Point:     toWorld.Mul3x1(lh.point.Add(p.Offset)).Add(origin),
		Normal:    toWorld.Mul3x1(lh.normal),
		Distance:  lh.t,
	}, true
}
