// Package hittest keeps the set of primitives that pointer rays are tested against.
package hittest

import "brick-builder/internal/scene"

// Registry is an unordered set of ray-cast targets. It is the only record of which primitives
// are live for picking: the editor registers a brick's primitives when the brick enters the scene
// and unregisters them when it leaves. Removal is O(1) (index map + swap-remove).
// Registry is not safe for concurrent use.
type Registry struct {
	targets []*scene.Primitive
	index   map[*scene.Primitive]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[*scene.Primitive]int)}
}

// Register adds prims. A primitive that is already registered is skipped, so the registry never
// holds duplicates. Returns how many were added.
func (r *Registry) Register(prims ...*scene.Primitive) int {
	added := 0
	for _, p := range prims {
		if p == nil {
			continue
		}
		if _, ok := r.index[p]; ok {
			continue
		}
		r.index[p] = len(r.targets)
		r.targets = append(r.targets, p)
		added++
	}
	return added
}

// Unregister removes each of prims once. Primitives that are not registered are ignored.
// Returns how many were removed.
func (r *Registry) Unregister(prims ...*scene.Primitive) int {
	removed := 0
	for _, p := range prims {
		i, ok := r.index[p]
		if !ok {
			continue
		}
		last := len(r.targets) - 1
		if i != last {
			moved := r.targets[last]
			r.targets[i] = moved
			r.index[moved] = i
		}
		r.targets[last] = nil
		r.targets = r.targets[:last]
		delete(r.index, p)
		removed++
	}
	return removed
}

// Contains reports whether p is registered.
func (r *Registry) Contains(p *scene.Primitive) bool {
	_, ok := r.index[p]
	return ok
}

// Len returns the number of registered primitives.
func (r *Registry) Len() int {
	return len(r.targets)
}

// Targets returns a snapshot of the registered primitives in no particular order.
func (r *Registry) Targets() []*scene.Primitive {
	out := make([]*scene.Primitive, len(r.targets))
	copy(out, r.targets)
	return out
}
