// Package editor is the brick-building state machine. It turns pointer events into scene edits
// (add, move, delete, paint) and keeps the hit-test registry in step with the scene graph.
//
// An Editor is driven from a single goroutine (the frame loop) and is not safe for concurrent use.
package editor

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/sirupsen/logrus"

	"brick-builder/internal/brick"
	"brick-builder/internal/hittest"
	"brick-builder/internal/placement"
	"brick-builder/internal/scene"
)

var ErrColorNotInPalette = errors.New("colour not in palette")

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Pointer is one pointer event. NDC is x right, y up, both in [-1, 1]. OverUI is set by the host
// when the pointer is on a HUD surface.
type Pointer struct {
	NDC    mgl32.Vec2
	Button Button
	OverUI bool
}

// Options configures New. Zero fields fall back to the default palette, brick size and lattice.
type Options struct {
	Palette brick.Palette
	Factory *brick.Factory
	Grid    placement.Grid
	Log     logrus.FieldLogger
}

// Editor owns the session, the ghost and the hit-test registry for one scene graph.
type Editor struct {
	graph    *scene.Graph
	registry *hittest.Registry
	resolver *Resolver
	factory  *brick.Factory
	palette  brick.Palette
	grid     placement.Grid
	ghost    *placement.Ghost
	session  Session
	log      logrus.FieldLogger
}

// New returns an editor over graph. The ground and any bricks already in graph are registered for
// hit testing; the grid overlay never is.
func New(graph *scene.Graph, caster Caster, opts Options) *Editor {
	if opts.Palette.Len() == 0 {
		opts.Palette = brick.DefaultPalette()
	}
	if opts.Factory == nil {
		opts.Factory = brick.NewFactory(brick.DefaultDimensions())
	}
	if opts.Grid.Cell <= 0 {
		opts.Grid = placement.DefaultGrid()
	}
	if opts.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Log = l
	}

	registry := hittest.NewRegistry()
	e := &Editor{
		graph:    graph,
		registry: registry,
		resolver: NewResolver(caster, registry),
		factory:  opts.Factory,
		palette:  opts.Palette,
		grid:     opts.Grid,
		ghost:    placement.NewGhost(opts.Factory.Dimensions().Extent()),
		session:  NewSession(opts.Palette.First()),
		log:      opts.Log.WithField("component", "editor"),
	}

	graph.Walk(func(ent scene.Entity) bool {
		switch ent := ent.(type) {
		case *scene.Ground:
			registry.Register(ent.Primitive())
		case *scene.Brick:
			registry.Register(ent.Primitives()...)
		case *scene.GridOverlay:
		}
		return true
	})
	return e
}

// PointerMove repositions the ghost under the pointer in add and move mode and hides it otherwise
// or when nothing is under the pointer.
func (e *Editor) PointerMove(p Pointer) {
	if !e.session.Mode.Previews() {
		e.ghost.Hide()
		return
	}
	hit, ok := e.resolver.Nearest(p.NDC)
	if !ok {
		e.ghost.Hide()
		return
	}
	e.showGhost(e.grid.Snap(hit.Point, hit.Normal))
}

// PointerDown runs the active mode's operation on the nearest hit. Secondary buttons, clicks on
// the HUD and clicks on empty space do nothing. Add accepts a ground hit; the other modes need a
// brick.
func (e *Editor) PointerDown(p Pointer) {
	if p.Button != ButtonPrimary || p.OverUI {
		return
	}
	hit, ok := e.resolver.Nearest(p.NDC)
	if !ok {
		return
	}

	if e.session.Mode == ModeAdd {
		e.showGhost(e.grid.Snap(hit.Point, hit.Normal))
		e.placeBrick()
		return
	}

	b, ok := hit.Brick()
	if !ok {
		return
	}
	switch e.session.Mode {
	case ModeDelete:
		e.removeBrick(b)
	case ModePaint:
		e.recolor(b, e.session.Color)
	case ModeMove:
		pending := e.pickUp(b)
		e.session.adopt(pending)
		e.ghost.Color = pending.Color
		e.ghost.SetOrientation(pending.Orientation)
		e.SetMode(ModeAdd)
		e.log.WithFields(logrus.Fields{
			"color":       brick.Hex(pending.Color),
			"orientation": pending.Orientation,
		}).Debug("picked up brick")
	}
}

// SetMode switches the active mode. m is stored verbatim even when it is not a known mode.
func (e *Editor) SetMode(m Mode) {
	e.session.Mode = m
	switch m {
	case ModeAdd:
		e.ghost.Opacity = placement.AddOpacity
	case ModeMove:
		e.ghost.Opacity = placement.MoveOpacity
	default:
		e.ghost.Hide()
	}
	e.log.WithField("mode", m).Debug("mode changed")
}

// SetSelectedColor selects c for new and painted bricks. c must be a palette colour.
func (e *Editor) SetSelectedColor(c colorful.Color) error {
	i := e.palette.Index(c)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrColorNotInPalette, brick.Hex(c))
	}
	c, _ = e.palette.At(i)
	e.session.Color = c
	e.ghost.Color = c
	return nil
}

// RotateBrick toggles the rotation applied to the next placement. The ghost turns immediately.
func (e *Editor) RotateBrick() {
	e.session.Orientation = e.session.Orientation.Toggle()
	e.ghost.SetOrientation(e.session.Orientation)
}

// ClearScene removes every brick through the same path as delete. Ground and grid stay.
func (e *Editor) ClearScene() {
	bricks := e.graph.Bricks()
	for _, b := range bricks {
		e.removeBrick(b)
	}
	e.log.WithField("count", len(bricks)).Info("scene cleared")
}

// Session returns a copy of the current editing state. The pending placement is copied too, so
// callers cannot change what the next add will place.
func (e *Editor) Session() Session {
	s := e.session
	if s.Pending != nil {
		p := *s.Pending
		s.Pending = &p
	}
	return s
}

// Ghost returns the placement preview. The renderer reads it; only the editor writes it.
func (e *Editor) Ghost() *placement.Ghost {
	return e.ghost
}

// Palette returns the colours the editor accepts.
func (e *Editor) Palette() brick.Palette {
	return e.palette
}

// Bricks returns the live bricks in placement order.
func (e *Editor) Bricks() []*scene.Brick {
	return e.graph.Bricks()
}

// Graph returns the scene graph being edited.
func (e *Editor) Graph() *scene.Graph {
	return e.graph
}

// Targets returns a snapshot of the primitives currently eligible for hit testing.
func (e *Editor) Targets() []*scene.Primitive {
	return e.registry.Targets()
}

// IsTarget reports whether p is registered for hit testing.
func (e *Editor) IsTarget(p *scene.Primitive) bool {
	return e.registry.Contains(p)
}

func (e *Editor) showGhost(position mgl32.Vec3) {
	opacity := float32(placement.AddOpacity)
	if e.session.Mode == ModeMove {
		opacity = placement.MoveOpacity
	}
	e.ghost.Show(position, e.session.Orientation, e.session.Color, opacity)
}
