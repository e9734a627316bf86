package ui

import (
	_ "embed"
	"fmt"
	"image/color"
	"strings"
)

//go:embed hud.css
var defaultCSS string

// HUDStylePath is an optional stylesheet that replaces the embedded one.
const HUDStylePath = "assets/ui/hud.css"

// Row steps for repeated HUD nodes. The stylesheet places the first node of each row.
const (
	modeStep   = 92
	swatchStep = 34
	actionStep = 118
)

// DefaultStylesheet returns the embedded HUD stylesheet.
func DefaultStylesheet() *Stylesheet {
	sheet, _ := ParseCSS(defaultCSS)
	return sheet
}

// Action is what a HUD click asks the editor to do.
type Action int

const (
	ActionNone Action = iota // over the HUD but not on a control
	ActionMode
	ActionColor
	ActionRotate
	ActionClear
)

// Click is the control under the pointer.
type Click struct {
	Action     Action
	Mode       string
	ColorIndex int
}

// State is what the HUD reflects. ui does not depend on the editor; the host copies these in.
type State struct {
	Mode       string
	ColorIndex int
	Rotated    bool
	Bricks     int
	Carrying   bool
}

// HUD is the toolbar: one button per mode, one swatch per palette colour, rotate and clear
// buttons and a status line. It owns its nodes and installs them in the engine.
type HUD struct {
	engine    *Engine
	bar       *Node
	modeNames []string
	modes     []*Node
	swatches  []*Node
	rotate    *Node
	clear     *Node
	status    *Node
}

// NewHUD builds the toolbar nodes for modes and palette and replaces the engine's nodes with them.
// If the engine has no stylesheet yet, the embedded one is used.
func NewHUD(engine *Engine, modes []string, palette []color.RGBA) *HUD {
	if !engine.HasStylesheet() {
		engine.SetStylesheet(DefaultStylesheet())
	}
	h := &HUD{
		engine:    engine,
		bar:       NewNode("panel", "hud-bar", "hud", ""),
		modeNames: modes,
		rotate:    NewNode("button", "hud-btn action-btn", "btn-rotate", "Rotate (R)"),
		clear:     NewNode("button", "hud-btn action-btn", "btn-clear", "Clear"),
		status:    NewNode("label", "hud-status", "status", ""),
	}
	h.clear.OffsetX = actionStep

	nodes := []*Node{h.bar}
	for i, m := range modes {
		n := NewNode("button", "hud-btn mode-btn", "btn-"+m, title(m))
		n.OffsetX = float32(i * modeStep)
		h.modes = append(h.modes, n)
		nodes = append(nodes, n)
	}
	for i, c := range palette {
		n := NewNode("button", "swatch", fmt.Sprintf("swatch-%d", i), "")
		n.OffsetX = float32(i * swatchStep)
		fill := c
		n.Fill = &fill
		h.swatches = append(h.swatches, n)
		nodes = append(nodes, n)
	}
	nodes = append(nodes, h.rotate, h.clear, h.status)
	engine.SetNodes(nodes)
	return h
}

// Sync highlights the active mode button and selected swatch and refreshes the status line.
// A mode with no button highlights nothing.
func (h *HUD) Sync(st State) {
	changed := false
	for i, n := range h.modes {
		changed = n.SetClass("active", h.modeNames[i] == st.Mode) || changed
	}
	for i, n := range h.swatches {
		changed = n.SetClass("selected", i == st.ColorIndex) || changed
	}
	changed = h.rotate.SetClass("active", st.Rotated) || changed
	if changed {
		h.engine.Invalidate()
	}
	h.status.Text = statusLine(st)
}

// Click returns the control under (x, y). ok is false when the pointer is not over the HUD.
func (h *HUD) Click(x, y float32) (c Click, ok bool) {
	n := h.engine.HitTest(x, y)
	if n == nil {
		return Click{}, false
	}
	for i, m := range h.modes {
		if n == m {
			return Click{Action: ActionMode, Mode: h.modeNames[i]}, true
		}
	}
	for i, s := range h.swatches {
		if n == s {
			return Click{Action: ActionColor, ColorIndex: i}, true
		}
	}
	switch n {
	case h.rotate:
		return Click{Action: ActionRotate}, true
	case h.clear:
		return Click{Action: ActionClear}, true
	}
	return Click{Action: ActionNone}, true
}

// Contains reports whether (x, y) is over any HUD surface.
func (h *HUD) Contains(x, y float32) bool {
	return h.engine.HitTest(x, y) != nil
}

// Status returns the current status line.
func (h *HUD) Status() string {
	return h.status.Text
}

func statusLine(st State) string {
	rot := "0°"
	if st.Rotated {
		rot = "90°"
	}
	s := fmt.Sprintf("%s | %d bricks | rotation %s", title(st.Mode), st.Bricks, rot)
	if st.Carrying {
		s += " | carrying"
	}
	return s
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
