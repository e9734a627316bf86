package raycast

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brick-builder/internal/scene"
)

const delta = 1e-3

var (
	down = mgl32.Vec3{0, -1, 0}
	body = scene.Part{Shape: scene.ShapeBox, Offset: mgl32.Vec3{0, 6, 0}, Size: mgl32.Vec3{40, 12, 20}}
	stud = scene.Part{Shape: scene.ShapeCylinder, Offset: mgl32.Vec3{0, 14, 0}, Size: mgl32.Vec3{6, 4, 6}}
)

func newBrick(pos mgl32.Vec3, o scene.Orientation, parts ...scene.Part) *scene.Brick {
	return scene.NewBrick(pos, o, colorful.Color{R: 1}, mgl32.Vec3{40, 12, 20}, parts)
}

func assertVecInDelta(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], delta, "component %d of %v", i, got)
	}
}

func TestCastBoxTopFace(t *testing.T) {
	b := newBrick(mgl32.Vec3{}, scene.Yaw0, body)
	hits := Cast(Ray{Origin: mgl32.Vec3{3, 100, 2}, Direction: down}, b.Primitives(), DefaultMaxDistance)
	require.Len(t, hits, 1)

	h := hits[0]
	assert.Equal(t, mgl32.Vec3{3, 12, 2}, h.Point)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, h.Normal)
	assert.Equal(t, float32(88), h.Distance)
	got, ok := h.Brick()
	assert.True(t, ok)
	assert.Same(t, b, got)
	assert.False(t, h.IsGround())
}

func TestCastBoxSideFace(t *testing.T) {
	b := newBrick(mgl32.Vec3{10, 0, 0}, scene.Yaw0, body)
	hits := Cast(Ray{Origin: mgl32.Vec3{100, 6, 0}, Direction: mgl32.Vec3{-1, 0, 0}}, b.Primitives(), DefaultMaxDistance)
	require.Len(t, hits, 1)
	assert.Equal(t, mgl32.Vec3{30, 6, 0}, hits[0].Point)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, hits[0].Normal)
}

func TestCastRotatedBox(t *testing.T) {
	b := newBrick(mgl32.Vec3{}, scene.Yaw90, body)

	// Rotated 90°, the 40-long body runs along Z and is only 20 wide in X.
	miss := Cast(Ray{Origin: mgl32.Vec3{15, 100, 0}, Direction: down}, b.Primitives(), DefaultMaxDistance)
	assert.Empty(t, miss)

	hits := Cast(Ray{Origin: mgl32.Vec3{0, 100, 15}, Direction: down}, b.Primitives(), DefaultMaxDistance)
	require.Len(t, hits, 1)
	assertVecInDelta(t, mgl32.Vec3{0, 12, 15}, hits[0].Point)
	assertVecInDelta(t, mgl32.Vec3{0, 1, 0}, hits[0].Normal)

	side := Cast(Ray{Origin: mgl32.Vec3{0, 6, -100}, Direction: mgl32.Vec3{0, 0, 1}}, b.Primitives(), DefaultMaxDistance)
	require.Len(t, side, 1)
	assertVecInDelta(t, mgl32.Vec3{0, 6, -20}, side[0].Point)
	assertVecInDelta(t, mgl32.Vec3{0, 0, -1}, side[0].Normal)
}

func TestCastFromInsideBoxMisses(t *testing.T) {
	b := newBrick(mgl32.Vec3{}, scene.Yaw0, body)
	hits := Cast(Ray{Origin: mgl32.Vec3{0, 6, 0}, Direction: down}, b.Primitives(), DefaultMaxDistance)
	assert.Empty(t, hits)
}

func TestCastCylinder(t *testing.T) {
	b := newBrick(mgl32.Vec3{}, scene.Yaw0, stud)

	top := Cast(Ray{Origin: mgl32.Vec3{1, 100, 1}, Direction: down}, b.Primitives(), DefaultMaxDistance)
	require.Len(t, top, 1)
	assert.Equal(t, mgl32.Vec3{1, 16, 1}, top[0].Point)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, top[0].Normal)

	side := Cast(Ray{Origin: mgl32.Vec3{100, 14, 0}, Direction: mgl32.Vec3{-1, 0, 0}}, b.Primitives(), DefaultMaxDistance)
	require.Len(t, side, 1)
	assertVecInDelta(t, mgl32.Vec3{3, 14, 0}, side[0].Point)
	assertVecInDelta(t, mgl32.Vec3{1, 0, 0}, side[0].Normal)

	wide := Cast(Ray{Origin: mgl32.Vec3{4, 100, 0}, Direction: down}, b.Primitives(), DefaultMaxDistance)
	assert.Empty(t, wide)
}

func TestCastGroundPlane(t *testing.T) {
	g := scene.NewGround(2000)
	targets := []*scene.Primitive{g.Primitive()}

	hits := Cast(Ray{Origin: mgl32.Vec3{10, 50, -20}, Direction: down}, targets, DefaultMaxDistance)
	require.Len(t, hits, 1)
	assert.Equal(t, mgl32.Vec3{10, 0, -20}, hits[0].Point)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, hits[0].Normal)
	assert.True(t, hits[0].IsGround())
	_, ok := hits[0].Brick()
	assert.False(t, ok)

	fromBelow := Cast(Ray{Origin: mgl32.Vec3{0, -10, 0}, Direction: mgl32.Vec3{0, 1, 0}}, targets, DefaultMaxDistance)
	assert.Empty(t, fromBelow)

	outside := Cast(Ray{Origin: mgl32.Vec3{1500, 50, 0}, Direction: down}, targets, DefaultMaxDistance)
	assert.Empty(t, outside)
}

func TestCastSortsNearestFirst(t *testing.T) {
	g := scene.NewGround(2000)
	b := newBrick(mgl32.Vec3{}, scene.Yaw0, body, stud)
	targets := append([]*scene.Primitive{g.Primitive()}, b.Primitives()...)

	hits := Cast(Ray{Origin: mgl32.Vec3{0, 100, 0}, Direction: down}, targets, DefaultMaxDistance)
	require.Len(t, hits, 3)
	assert.Equal(t, scene.ShapeCylinder, hits[0].Primitive.Shape)
	assert.Equal(t, scene.ShapeBox, hits[1].Primitive.Shape)
	assert.True(t, hits[2].IsGround())
	for i := 1; i < len(hits); i++ {
		assert.LessOrEqual(t, hits[i-1].Distance, hits[i].Distance)
	}
}

func TestCastRespectsMaxDistance(t *testing.T) {
	g := scene.NewGround(2000)
	hits := Cast(Ray{Origin: mgl32.Vec3{0, 100, 0}, Direction: down}, []*scene.Primitive{g.Primitive()}, 50)
	assert.Empty(t, hits)
}

func TestCasterCastRay(t *testing.T) {
	cam := Camera{
		Position: mgl32.Vec3{5, 500, 5},
		Target:   mgl32.Vec3{5, 0, 5},
		Up:       mgl32.Vec3{0, 0, -1},
		FovY:     45,
		Aspect:   1,
	}
	c := NewCaster(&cam)
	g := scene.NewGround(2000)

	hits := c.CastRay(mgl32.Vec2{}, []*scene.Primitive{g.Primitive()})
	require.Len(t, hits, 1)
	assertVecInDelta(t, mgl32.Vec3{5, 0, 5}, hits[0].Point)
	assert.InDelta(t, 500, hits[0].Distance, delta)

	assert.Empty(t, c.CastRay(mgl32.Vec2{}, nil))
}

func TestPickRay(t *testing.T) {
	cam := DefaultCamera()
	cam.Aspect = 1

	center := cam.PickRay(mgl32.Vec2{})
	forward, right, up := cam.Basis()
	assert.Equal(t, cam.Position, center.Origin)
	assertVecInDelta(t, forward, center.Direction)
	assert.InDelta(t, 1, center.Direction.Len(), delta)

	// The right edge of the view is half the field of view off the forward axis.
	edge := cam.PickRay(mgl32.Vec2{1, 0})
	angle := math32.Acos(edge.Direction.Dot(forward))
	assert.InDelta(t, mgl32.DegToRad(cam.FovY)/2, angle, delta)
	assert.Greater(t, edge.Direction.Dot(right), float32(0))

	top := cam.PickRay(mgl32.Vec2{0, 1})
	assert.Greater(t, top.Direction.Dot(up), float32(0))
}

func TestToNDC(t *testing.T) {
	assert.Equal(t, mgl32.Vec2{0, 0}, ToNDC(400, 300, 800, 600))
	assert.Equal(t, mgl32.Vec2{-1, 1}, ToNDC(0, 0, 800, 600))
	assert.Equal(t, mgl32.Vec2{1, -1}, ToNDC(800, 600, 800, 600))
	assert.Equal(t, mgl32.Vec2{}, ToNDC(10, 10, 0, 0))
}

func TestOrbitAndZoom(t *testing.T) {
	cam := DefaultCamera()
	r := cam.Position.Sub(cam.Target).Len()

	cam.Orbit(0.3, 0.1)
	assert.InDelta(t, r, cam.Position.Sub(cam.Target).Len(), 0.01)
	assert.Greater(t, cam.Position.Y(), float32(0))

	cam.Orbit(0, -10) // pitch clamps above the ground
	assert.Greater(t, cam.Position.Y(), float32(0))

	cam.Zoom(0.5)
	assert.InDelta(t, r/2, cam.Position.Sub(cam.Target).Len(), 0.01)

	cam.Zoom(0.0001)
	assert.InDelta(t, minDistance, cam.Position.Sub(cam.Target).Len(), 0.01)
}

func TestRayAt(t *testing.T) {
	r := Ray{Origin: mgl32.Vec3{1, 2, 3}, Direction: mgl32.Vec3{0, 0, 1}}
	assert.Equal(t, mgl32.Vec3{1, 2, 8}, r.At(5))
}

func TestPickDistanceCoversZoomRange(t *testing.T) {
	require.LessOrEqual(t, maxDistance, DefaultMaxDistance)
	require.Equal(t, FarPlane, DefaultMaxDistance)

	cam := DefaultCamera()
	cam.Zoom(100)
	require.InDelta(t, maxDistance, cam.Position.Sub(cam.Target).Len(), 0.01)

	c := NewCaster(&cam)
	assert.Equal(t, float32(FarPlane), c.MaxDistance)
	hits := c.CastRay(mgl32.Vec2{}, []*scene.Primitive{scene.NewGround(2000).Primitive()})
	require.Len(t, hits, 1)
	assert.InDelta(t, maxDistance, hits[0].Distance, 0.1)
}

func TestBasisStraightAboveTarget(t *testing.T) {
	cam := Camera{
		Position: mgl32.Vec3{0, 300, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		FovY:     45,
		Aspect:   1,
	}
	forward, right, up := cam.Basis()
	assertVecInDelta(t, mgl32.Vec3{0, -1, 0}, forward)
	assertVecInDelta(t, mgl32.Vec3{1, 0, 0}, right)
	assertVecInDelta(t, mgl32.Vec3{0, 0, -1}, up)

	ground := []*scene.Primitive{scene.NewGround(2000).Primitive()}
	c := NewCaster(&cam)
	hits := c.CastRay(mgl32.Vec2{}, ground)
	require.Len(t, hits, 1)
	assertVecInDelta(t, mgl32.Vec3{}, hits[0].Point)

	hits = c.CastRay(mgl32.Vec2{0.5, 0}, ground)
	require.Len(t, hits, 1)
	assert.Greater(t, hits[0].Point.X(), float32(0))
	assert.False(t, math32.IsNaN(hits[0].Point.X()))
}
