package scene

import "slices"

// Graph is the ordered set of entities that make up the world. Walk order is insertion order,
// which is also draw order. Graph is not safe for concurrent use; the editor owns it.
type Graph struct {
	entities []Entity
	members  map[Entity]struct{}
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{members: make(map[Entity]struct{})}
}

// Add appends e. Adding an entity that is already present does nothing and returns false.
func (g *Graph) Add(e Entity) bool {
	if _, ok := g.members[e]; ok {
		return false
	}
	g.members[e] = struct{}{}
	g.entities = append(g.entities, e)
	return true
}

// Remove deletes e, keeping the order of the remaining entities. Returns false if e was absent.
func (g *Graph) Remove(e Entity) bool {
	if _, ok := g.members[e]; !ok {
		return false
	}
	delete(g.members, e)
	if i := slices.Index(g.entities, e); i >= 0 {
		g.entities = slices.Delete(g.entities, i, i+1)
	}
	return true
}

// Contains reports whether e is in the graph.
func (g *Graph) Contains(e Entity) bool {
	_, ok := g.members[e]
	return ok
}

// Len returns the number of entities.
func (g *Graph) Len() int {
	return len(g.entities)
}

// Walk calls fn for every entity in order until fn returns false. The graph may be modified
// from fn; Walk iterates over a snapshot.
func (g *Graph) Walk(fn func(Entity) bool) {
	for _, e := range slices.Clone(g.entities) {
		if !fn(e) {
			return
		}
	}
}

// Bricks returns every brick in the graph in order.
func (g *Graph) Bricks() []*Brick {
	var out []*Brick
	for _, e := range g.entities {
		if b, ok := e.(*Brick); ok {
			out = append(out, b)
		}
	}
	return out
}

// Ground returns the first ground entity, if any.
func (g *Graph) Ground() (*Ground, bool) {
	for _, e := range g.entities {
		if gr, ok := e.(*Ground); ok {
			return gr, true
		}
	}
	return nil, false
}

// GridOverlay returns the first grid overlay entity, if any.
func (g *Graph) GridOverlay() (*GridOverlay, bool) {
	for _, e := range g.entities {
		if gr, ok := e.(*GridOverlay); ok {
			return gr, true
		}
	}
	return nil, false
}
