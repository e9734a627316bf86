package editor

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/sirupsen/logrus"

	"brick-builder/internal/brick"
	"brick-builder/internal/scene"
)

// Scene mutations. Each one updates the graph and the registry together so that a brick is in
// the graph exactly when its primitives are registered.

// placeBrick builds a brick where the ghost is and consumes any pending pick-up.
func (e *Editor) placeBrick() *scene.Brick {
	b := e.factory.New(e.ghost.Color, e.ghost.Position, e.ghost.Orientation)
	e.addBrick(b)
	e.session.Pending = nil
	return b
}

func (e *Editor) addBrick(b *scene.Brick) {
	if !e.graph.Add(b) {
		return
	}
	e.registry.Register(b.Primitives()...)
	e.log.WithFields(brickFields(b)).Debug("brick added")
}

func (e *Editor) removeBrick(b *scene.Brick) {
	e.registry.Unregister(b.Primitives()...)
	if e.graph.Remove(b) {
		e.log.WithFields(brickFields(b)).Debug("brick removed")
	}
}

func (e *Editor) recolor(b *scene.Brick, c colorful.Color) {
	b.Recolor(c)
	e.log.WithFields(brickFields(b)).Debug("brick painted")
}

// pickUp removes b and returns its colour and orientation for the next placement.
func (e *Editor) pickUp(b *scene.Brick) PendingPlacement {
	p := PendingPlacement{Color: b.Color, Orientation: b.Orientation}
	e.removeBrick(b)
	return p
}

func brickFields(b *scene.Brick) logrus.Fields {
	return logrus.Fields{
		"color":       brick.Hex(b.Color),
		"orientation": b.Orientation,
		"position":    b.Position,
	}
}
