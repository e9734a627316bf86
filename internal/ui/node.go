package ui

import (
	"image/color"
	"slices"
	"strings"
)

// Rect is a screen rectangle in pixels, origin top-left.
type Rect struct {
	X, Y, Width, Height float32
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Node is a single UI element: panel, label, button. Class may hold several space-separated
// classes; ID is matched by #id rules. Bounds is filled in by Engine.Layout.
type Node struct {
	Type   string // "panel", "label", "button"
	Class  string // e.g. "mode-btn active"
	ID     string // e.g. "btn-add"
	Text   string
	Bounds Rect

	// OffsetX/OffsetY shift the node from its styled position, so a row of nodes can share one rule.
	OffsetX, OffsetY float32
	// Fill, when set, replaces the styled background (palette swatches).
	Fill   *color.RGBA
	Hidden bool
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}

// HasClass reports whether c is one of the node's classes.
func (n *Node) HasClass(c string) bool {
	return slices.Contains(strings.Fields(n.Class), c)
}

// SetClass adds or removes class c and reports whether the class list changed.
func (n *Node) SetClass(c string, on bool) bool {
	classes := strings.Fields(n.Class)
	i := slices.Index(classes, c)
	switch {
	case on && i < 0:
		classes = append(classes, c)
	case !on && i >= 0:
		classes = slices.Delete(classes, i, i+1)
	default:
		return false
	}
	n.Class = strings.Join(classes, " ")
	return true
}

// matches reports whether a simple selector (.class or #id) applies to n.
func (n *Node) matches(selector string) bool {
	if len(selector) < 2 {
		return false
	}
	switch selector[0] {
	case '.':
		return n.HasClass(selector[1:])
	case '#':
		return n.ID == selector[1:]
	}
	return false
}
