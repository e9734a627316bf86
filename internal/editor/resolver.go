package editor

import (
	"github.com/go-gl/mathgl/mgl32"

	"brick-builder/internal/hittest"
	"brick-builder/internal/raycast"
	"brick-builder/internal/scene"
)

// Caster is the ray-casting collaborator: intersect the pick ray through ndc with targets and
// return the hits nearest first. raycast.Caster implements it.
type Caster interface {
	CastRay(ndc mgl32.Vec2, targets []*scene.Primitive) []raycast.Hit
}

// Resolver casts pointer rays against whatever the registry currently holds.
type Resolver struct {
	caster   Caster
	registry *hittest.Registry
}

// NewResolver returns a resolver over registry.
func NewResolver(caster Caster, registry *hittest.Registry) *Resolver {
	return &Resolver{caster: caster, registry: registry}
}

// Resolve returns every hit under the pointer, nearest first. No hit is not an error.
func (r *Resolver) Resolve(ndc mgl32.Vec2) []raycast.Hit {
	return r.caster.CastRay(ndc, r.registry.Targets())
}

// Nearest returns the closest hit under the pointer.
func (r *Resolver) Nearest(ndc mgl32.Vec2) (raycast.Hit, bool) {
	hits := r.Resolve(ndc)
	if len(hits) == 0 {
		return raycast.Hit{}, false
	}
	return hits[0], true
}
