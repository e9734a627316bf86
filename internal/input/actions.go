package input

import (
	"fmt"
	"image/color"

	"brick-builder/internal/brick"
	"brick-builder/internal/editor"
	"brick-builder/internal/scene"
	"brick-builder/internal/ui"
)

// Apply performs a HUD click on the editor. Clicks on the bar background do nothing.
func (c *Controller) Apply(click ui.Click) error {
	switch click.Action {
	case ui.ActionMode:
		m, err := editor.ParseMode(click.Mode)
		if err != nil {
			return err
		}
		c.ed.SetMode(m)
	case ui.ActionColor:
		return c.SelectColor(click.ColorIndex)
	case ui.ActionRotate:
		c.ed.RotateBrick()
	case ui.ActionClear:
		c.ed.ClearScene()
	}
	return nil
}

// SelectColor selects palette entry i.
func (c *Controller) SelectColor(i int) error {
	col, ok := c.ed.Palette().At(i)
	if !ok {
		return fmt.Errorf("palette index %d out of range [0, %d)", i, c.ed.Palette().Len())
	}
	return c.ed.SetSelectedColor(col)
}

// CycleColor moves the selection delta entries through the palette, wrapping at both ends.
// A selection that is not in the palette starts from the first entry.
func (c *Controller) CycleColor(delta int) error {
	n := c.ed.Palette().Len()
	if n == 0 {
		return nil
	}
	i := max(c.ColorIndex(), 0)
	return c.SelectColor(((i+delta)%n + n) % n)
}

// ColorIndex is the palette index of the selected colour, or -1.
func (c *Controller) ColorIndex() int {
	return c.ed.Palette().Index(c.ed.Session().Color)
}

// State snapshots the editor for the HUD.
func (c *Controller) State() ui.State {
	s := c.ed.Session()
	return ui.State{
		Mode:       s.Mode.String(),
		ColorIndex: c.ColorIndex(),
		Rotated:    s.Orientation != scene.Yaw0,
		Bricks:     len(c.ed.Bricks()),
		Carrying:   s.Carrying(),
	}
}

// keyMode maps the number keys to modes in toolbar order.
func keyMode(n int) (editor.Mode, bool) {
	if n < 1 || n > len(editor.Modes) {
		return "", false
	}
	return editor.Modes[n-1], true
}

// ModeNames lists the toolbar's mode buttons.
func ModeNames() []string {
	names := make([]string, len(editor.Modes))
	for i, m := range editor.Modes {
		names[i] = m.String()
	}
	return names
}

// Swatches converts the palette to opaque toolbar colours.
func Swatches(p brick.Palette) []color.RGBA {
	out := make([]color.RGBA, 0, p.Len())
	for _, c := range p.Colors() {
		r, g, b := c.Clamped().RGB255()
		out = append(out, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return out
}
