package raycast

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-6

// localHit is an intersection in a primitive's local frame (shape centred on the origin).
type localHit struct {
	t      float32
	point  mgl32.Vec3
	normal mgl32.Vec3
}

// intersectBox is a slab test against an axis-aligned box with half extents h. Only front faces
// count: a ray starting inside the box misses.
func intersectBox(o, d, h mgl32.Vec3) (localHit, bool) {
	tNear := math32.Inf(-1)
	tFar := math32.Inf(1)
	axis := -1
	for i := 0; i < 3; i++ {
		if math32.Abs(d[i]) < epsilon {
			if o[i] < -h[i] || o[i] > h[i] {
				return localHit{}, false
			}
			continue
		}
		t1 := (-h[i] - o[i]) / d[i]
		t2 := (h[i] - o[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tNear {
			tNear = t1
			axis = i
		}
		if t2 < tFar {
			tFar = t2
		}
		if tNear > tFar || tFar < 0 {
			return localHit{}, false
		}
	}
	if axis < 0 || tNear < 0 {
		return localHit{}, false
	}
	var n mgl32.Vec3
	n[axis] = -sign(d[axis])
	p := o.Add(d.Mul(tNear))
	p[axis] = n[axis] * h[axis] // exactly on the face
	return localHit{t: tNear, point: p, normal: n}, true
}

// intersectCylinder tests a capped cylinder with its axis along Y, radius r and half height hh.
func intersectCylinder(o, d mgl32.Vec3, r, hh float32) (localHit, bool) {
	best := localHit{t: math32.Inf(1)}
	found := false

	a := d.X()*d.X() + d.Z()*d.Z()
	c := o.X()*o.X() + o.Z()*o.Z() - r*r
	if a > epsilon && c > 0 {
		b := 2 * (o.X()*d.X() + o.Z()*d.Z())
		disc := b*b - 4*a*c
		if disc >= 0 {
			t := (-b - math32.Sqrt(disc)) / (2 * a)
			if t >= 0 {
				p := o.Add(d.Mul(t))
				if p.Y() >= -hh && p.Y() <= hh {
					best = localHit{t: t, point: p, normal: mgl32.Vec3{p.X() / r, 0, p.Z() / r}}
					found = true
				}
			}
		}
	}

	if math32.Abs(d.Y()) > epsilon {
		for _, capY := range [2]float32{hh, -hh} {
			ny := sign(capY)
			if d.Y()*ny >= 0 {
				continue // looking at the back of this cap
			}
			t := (capY - o.Y()) / d.Y()
			if t < 0 || t >= best.t {
				continue
			}
			p := o.Add(d.Mul(t))
			if p.X()*p.X()+p.Z()*p.Z() > r*r {
				continue
			}
			p[1] = capY
			best = localHit{t: t, point: p, normal: mgl32.Vec3{0, ny, 0}}
			found = true
		}
	}
	return best, found
}

// intersectPlane tests the upward-facing plane y=0 bounded to |x| <= hw, |z| <= hd.
func intersectPlane(o, d mgl32.Vec3, hw, hd float32) (localHit, bool) {
	if d.Y() > -epsilon {
		return localHit{}, false
	}
	t := -o.Y() / d.Y()
	if t < 0 {
		return localHit{}, false
	}
	p := o.Add(d.Mul(t))
	if math32.Abs(p.X()) > hw || math32.Abs(p.Z()) > hd {
		return localHit{}, false
	}
	p[1] = 0
	return localHit{t: t, point: p, normal: mgl32.Vec3{0, 1, 0}}, true
}

func sign(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}
