package ui

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var modes = []string{"add", "move", "delete", "paint"}

func testPalette() []color.RGBA {
	out := make([]color.RGBA, 8)
	for i := range out {
		out[i] = color.RGBA{R: uint8(i * 30), A: 255}
	}
	return out
}

func TestParseCSS(t *testing.T) {
	sheet, err := ParseCSS(`
/* header */
.a, #b { color: #FFF; width: 10px }
.c .d { color: #000; }
div { color: #000; }
#e { left: 50%; /* inline */ top: 4 }
`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 3)
	assert.Equal(t, ".a", sheet.Rules[0].Selector)
	assert.Equal(t, "#b", sheet.Rules[1].Selector)
	assert.Equal(t, "10px", sheet.Rules[1].Props["width"])
	assert.Equal(t, "#e", sheet.Rules[2].Selector)
	assert.Equal(t, "50%", sheet.Rules[2].Props["left"])
	assert.Equal(t, "4", sheet.Rules[2].Props["top"])
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#FFFFFF", color.RGBA{255, 255, 255, 255}, true},
		{"#e32822", color.RGBA{0xE3, 0x28, 0x22, 255}, true},
		{"#fff", color.RGBA{255, 255, 255, 255}, true},
		{"#1E1E1EC8", color.RGBA{0x1E, 0x1E, 0x1E, 0xC8}, true},
		{"red", color.RGBA{A: 255}, false},
		{"#12", color.RGBA{A: 255}, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseHexColor(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveProps(t *testing.T) {
	st := ResolveProps(map[string]string{
		"background": "#0055BF",
		"border":     "#FFFFFF",
		"width":      "84px",
		"height":     "32",
		"left":       "100%",
		"top":        "7px",
		"font-size":  "16",
		"padding":    "-3",
	})
	assert.Equal(t, color.RGBA{0x00, 0x55, 0xBF, 255}, st.Background)
	assert.True(t, st.HasBorder)
	assert.Equal(t, int32(84), st.Width)
	assert.Equal(t, int32(32), st.Height)
	assert.Equal(t, int32(100), st.LeftPct)
	assert.Equal(t, int32(-1), st.TopPct)
	assert.Equal(t, int32(7), st.Top)
	assert.Equal(t, int32(16), st.FontSize)
	assert.Equal(t, int32(4), st.Padding, "negative padding ignored")
}

func TestNodeClasses(t *testing.T) {
	n := NewNode("button", "hud-btn mode-btn", "btn-add", "Add")
	assert.True(t, n.HasClass("mode-btn"))
	assert.False(t, n.HasClass("mode"))

	assert.True(t, n.SetClass("active", true))
	assert.False(t, n.SetClass("active", true))
	assert.Equal(t, "hud-btn mode-btn active", n.Class)
	assert.True(t, n.SetClass("hud-btn", false))
	assert.Equal(t, "mode-btn active", n.Class)

	assert.True(t, n.matches(".active"))
	assert.True(t, n.matches("#btn-add"))
	assert.False(t, n.matches("#btn"))
}

func TestLayoutAndHitTest(t *testing.T) {
	sheet, err := ParseCSS(`
.box { left: 10; top: 10; width: 100; height: 50 }
.corner { left: 100%; top: 100%; width: 20; height: 20 }
.over { left: 20; top: 20; width: 10; height: 10 }
`)
	require.NoError(t, err)
	e := New()
	e.SetStylesheet(sheet)
	box := NewNode("panel", "box", "", "")
	corner := NewNode("panel", "corner", "", "")
	over := NewNode("button", "over", "", "")
	shifted := NewNode("button", "over", "", "")
	shifted.OffsetX = 40
	e.SetNodes([]*Node{box, corner, over, shifted})
	e.Layout(800, 600)

	assert.Equal(t, Rect{X: 780, Y: 580, Width: 20, Height: 20}, corner.Bounds)
	assert.Equal(t, Rect{X: 60, Y: 20, Width: 10, Height: 10}, shifted.Bounds)

	assert.Same(t, over, e.HitTest(25, 25), "topmost wins")
	assert.Same(t, box, e.HitTest(15, 15))
	assert.Same(t, shifted, e.HitTest(65, 25))
	assert.Same(t, corner, e.HitTest(790, 590))
	assert.Nil(t, e.HitTest(400, 300))

	over.Hidden = true
	assert.Same(t, box, e.HitTest(25, 25))
	assert.Len(t, e.Items(), 3)

	// A resize re-places nodes without re-resolving styles.
	e.Layout(400, 300)
	assert.Equal(t, Rect{X: 380, Y: 280, Width: 20, Height: 20}, corner.Bounds)
}

func TestLoadCSS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hud.css")
	require.NoError(t, os.WriteFile(path, []byte(".x { color: #000 }"), 0644))
	e := New()
	require.NoError(t, e.LoadCSS(path))
	assert.True(t, e.HasStylesheet())
	assert.Error(t, e.LoadCSS(filepath.Join(t.TempDir(), "missing.css")))
}

func TestHUDClick(t *testing.T) {
	e := New()
	h := NewHUD(e, modes, testPalette())
	require.True(t, e.HasStylesheet(), "embedded stylesheet installed")
	e.Layout(1280, 720)

	cases := []struct {
		name string
		x, y float32
		want Click
	}{
		{"add", 30, 30, Click{Action: ActionMode, Mode: "add"}},
		{"move", 30 + modeStep, 30, Click{Action: ActionMode, Mode: "move"}},
		{"paint", 30 + 3*modeStep, 30, Click{Action: ActionMode, Mode: "paint"}},
		{"first swatch", 30, 70, Click{Action: ActionColor, ColorIndex: 0}},
		{"third swatch", 30 + 2*swatchStep, 70, Click{Action: ActionColor, ColorIndex: 2}},
		{"rotate", 410, 30, Click{Action: ActionRotate}},
		{"clear", 410 + actionStep, 30, Click{Action: ActionClear}},
		{"bar background", 640, 100, Click{Action: ActionNone}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := h.Click(tc.x, tc.y)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
			assert.True(t, h.Contains(tc.x, tc.y))
		})
	}

	_, ok := h.Click(900, 400)
	assert.False(t, ok)
	assert.False(t, h.Contains(900, 400))
}

func TestHUDSync(t *testing.T) {
	e := New()
	h := NewHUD(e, modes, testPalette())

	h.Sync(State{Mode: "delete", ColorIndex: 3, Rotated: true, Bricks: 2})
	e.Layout(1280, 720)

	active := map[string]bool{}
	selected := -1
	for _, it := range e.Items() {
		if it.Node.HasClass("active") {
			active[it.Node.ID] = true
			assert.Equal(t, color.RGBA{0x00, 0x55, 0xBF, 255}, it.Style.Background)
		}
		if it.Node.HasClass("selected") {
			assert.Equal(t, -1, selected, "one swatch selected")
			selected = 3
			assert.Equal(t, "swatch-3", it.Node.ID)
		}
	}
	assert.Equal(t, map[string]bool{"btn-delete": true, "btn-rotate": true}, active)
	assert.Equal(t, 3, selected)
	assert.Equal(t, "Delete | 2 bricks | rotation 90°", h.Status())

	h.Sync(State{Mode: "sculpt", ColorIndex: 0, Carrying: true})
	for _, n := range h.modes {
		assert.False(t, n.HasClass("active"), "unknown mode highlights nothing")
	}
	assert.Equal(t, "Sculpt | 0 bricks | rotation 0° | carrying", h.Status())
}
