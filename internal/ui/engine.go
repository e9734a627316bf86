// Package ui lays out CSS-styled HUD nodes and answers "what is under the pointer". It does no
// drawing itself: the renderer paints the laid-out Items.
package ui

import (
	"os"
)

// Item is a laid-out node ready to paint.
type Item struct {
	Node  *Node
	Style ComputedStyle
}

// Engine holds the current stylesheet and nodes. Paint order is node order (first node drawn
// first, later nodes on top). Resolved styles are cached and only recomputed when the sheet or
// nodes change, or after Invalidate.
type Engine struct {
	sheet        *Stylesheet
	nodes        []*Node
	cachedStyles []ComputedStyle
	cacheValid   bool
	screenW      int32
	screenH      int32
}

// New creates an empty UI engine (no stylesheet, no nodes).
func New() *Engine {
	return &Engine{}
}

// LoadCSS loads and parses a CSS file from path. Replaces the current stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return err
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet sets the stylesheet directly (e.g. from embedded CSS).
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.cacheValid = false
}

// HasStylesheet returns whether a non-empty stylesheet is loaded.
func (e *Engine) HasStylesheet() bool {
	return e.sheet != nil && len(e.sheet.Rules) > 0
}

// Stylesheet returns the current stylesheet (may be nil).
func (e *Engine) Stylesheet() *Stylesheet {
	return e.sheet
}

// AddNode appends a node. Nodes are drawn in order.
func (e *Engine) AddNode(n *Node) {
	e.nodes = append(e.nodes, n)
	e.cacheValid = false
}

// SetNodes replaces all nodes.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
	e.cacheValid = false
}

// Nodes returns the nodes in paint order.
func (e *Engine) Nodes() []*Node {
	return e.nodes
}

// Invalidate forces styles to be recomputed on the next Layout (e.g. after a class change).
func (e *Engine) Invalidate() {
	e.cacheValid = false
}

// resolveProps returns merged properties for a node: every matching rule in sheet order, last wins.
func (e *Engine) resolveProps(n *Node) map[string]string {
	merged := make(map[string]string)
	if e.sheet == nil {
		return merged
	}
	for _, rule := range e.sheet.Rules {
		if !n.matches(rule.Selector) {
			continue
		}
		for k, v := range rule.Props {
			merged[k] = v
		}
	}
	return merged
}

// Layout resolves styles (cached) and places every node for a screenW×screenH viewport.
func (e *Engine) Layout(screenW, screenH int32) {
	if e.cacheValid && screenW == e.screenW && screenH == e.screenH {
		return
	}
	if !e.cacheValid {
		e.cachedStyles = make([]ComputedStyle, len(e.nodes))
		for i, n := range e.nodes {
			e.cachedStyles[i] = ResolveProps(e.resolveProps(n))
		}
		e.cacheValid = true
	}
	e.screenW, e.screenH = screenW, screenH
	for i, n := range e.nodes {
		place(n, e.cachedStyles[i], screenW, screenH)
	}
}

// place sets n.Bounds from style and the node offset. Percent positions are relative to the space
// left over after the node's own size, so 100% puts the node flush with the right/bottom edge.
func place(n *Node, style ComputedStyle, screenW, screenH int32) {
	w, h := style.Width, style.Height
	x, y := style.Left, style.Top
	if style.LeftPct >= 0 {
		x = (screenW - w) * style.LeftPct / 100
	}
	if style.TopPct >= 0 {
		y = (screenH - h) * style.TopPct / 100
	}
	n.Bounds = Rect{
		X:      float32(x) + n.OffsetX,
		Y:      float32(y) + n.OffsetY,
		Width:  float32(w),
		Height: float32(h),
	}
}

// Items returns the visible nodes with their styles, in paint order. Call Layout first.
func (e *Engine) Items() []Item {
	items := make([]Item, 0, len(e.nodes))
	for i, n := range e.nodes {
		if n.Hidden || i >= len(e.cachedStyles) {
			continue
		}
		items = append(items, Item{Node: n, Style: e.cachedStyles[i]})
	}
	return items
}

// HitTest returns the topmost visible node with a non-empty area under (x, y), or nil.
// Uses the bounds from the last Layout.
func (e *Engine) HitTest(x, y float32) *Node {
	for i := len(e.nodes) - 1; i >= 0; i-- {
		n := e.nodes[i]
		if n.Hidden || n.Bounds.Width <= 0 || n.Bounds.Height <= 0 {
			continue
		}
		if n.Bounds.Contains(x, y) {
			return n
		}
	}
	return nil
}
