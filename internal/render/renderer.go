// Package render draws the brick scene, the placement ghost and the HUD with raylib.
// It only reads scene state; nothing here mutates the graph or the editor.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	colorful "github.com/lucasb-eyer/go-colorful"

	"brick-builder/internal/placement"
	"brick-builder/internal/raycast"
	"brick-builder/internal/scene"
	"brick-builder/internal/ui"
)

const (
	gridMajorEvery = 10
	gridMinorAlpha = 38 // ~0.15 opacity
	gridMajorAlpha = 70
	axisLineAlpha  = 160
)

// Background is the clear colour behind the scene.
var Background = rl.NewColor(0x2a, 0x2a, 0x2a, 255)

// Renderer draws one frame of the builder. GridVisible toggles the grid overlay.
type Renderer struct {
	meshes      *meshes
	font        rl.Font
	GridVisible bool
}

// New returns a renderer with the grid shown. GPU resources are created on first draw.
func New() *Renderer {
	return &Renderer{meshes: newMeshes(), GridVisible: true}
}

// SetFont sets the font used for HUD text. Zero texture ID = use raylib default.
func (r *Renderer) SetFont(font rl.Font) {
	r.font = font
}

// Camera3D converts the picking camera to raylib's camera so what is drawn is what is picked.
func Camera3D(c *raycast.Camera) rl.Camera3D {
	_, _, up := c.Basis()
	return rl.Camera3D{
		Position:   rl.NewVector3(c.Position.X(), c.Position.Y(), c.Position.Z()),
		Target:     rl.NewVector3(c.Target.X(), c.Target.Y(), c.Target.Z()),
		Up:         rl.NewVector3(up.X(), up.Y(), up.Z()),
		Fovy:       c.FovY,
		Projection: rl.CameraPerspective,
	}
}

// DrawScene draws the graph in insertion order and then the ghost. The ground plane is invisible.
// Call after ClearBackground and before 2D overlays.
func (r *Renderer) DrawScene(cam *raycast.Camera, graph *scene.Graph, ghost *placement.Ghost) {
	rl.SetClipPlanes(raycast.NearPlane, raycast.FarPlane)
	rl.BeginMode3D(Camera3D(cam))
	r.meshes.setView([3]float32(cam.Position), defaultLightDir)

	graph.Walk(func(e scene.Entity) bool {
		switch e := e.(type) {
		case *scene.Ground:
		case *scene.GridOverlay:
			if r.GridVisible {
				drawGrid(e)
			}
		case *scene.Brick:
			r.drawBrick(e)
		}
		return true
	})
	if ghost != nil && ghost.Visible {
		r.drawGhost(ghost)
	}
	rl.EndMode3D()
}

func (r *Renderer) drawBrick(b *scene.Brick) {
	place := chain(rl.MatrixRotateY(b.Orientation.Radians()), rl.MatrixTranslate(b.Position.X(), b.Position.Y(), b.Position.Z()))
	col := toRL(b.Material().Color, 1)
	for _, p := range b.Primitives() {
		model := chain(rl.MatrixTranslate(p.Offset.X(), p.Offset.Y(), p.Offset.Z()), place)
		r.meshes.draw(p.Shape, [3]float32(p.Size), model, col)
	}
}

// drawGhost draws the preview as one translucent box the size of a whole brick.
func (r *Renderer) drawGhost(g *placement.Ghost) {
	h := g.Extent.Y()
	model := chain(
		rl.MatrixTranslate(0, h/2, 0),
		rl.MatrixRotateY(g.Orientation.Radians()),
		rl.MatrixTranslate(g.Position.X(), g.Position.Y(), g.Position.Z()),
	)
	rl.DisableDepthMask()
	r.meshes.draw(scene.ShapeBox, [3]float32(g.Extent), model, toRL(g.Color, g.Opacity))
	rl.EnableDepthMask()
}

// drawGrid draws the overlay on the XZ plane with a brighter line every gridMajorEvery divisions
// and the X/Z axes through the origin.
func drawGrid(g *scene.GridOverlay) {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	half := g.Size / 2
	step := g.Step()
	var start, end rl.Vector3
	for i := 0; i <= g.Divisions; i++ {
		v := -half + float32(i)*step
		c := minor
		if (i-g.Divisions/2)%gridMajorEvery == 0 {
			c = major
		}
		start.X, start.Y, start.Z = v, 0, -half
		end.X, end.Y, end.Z = v, 0, half
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -half, 0, v
		end.X, end.Y, end.Z = half, 0, v
		rl.DrawLine3D(start, end, c)
	}

	rl.DrawLine3D(rl.NewVector3(-half, 0.01, 0), rl.NewVector3(half, 0.01, 0), axisX)
	rl.DrawLine3D(rl.NewVector3(0, 0.01, -half), rl.NewVector3(0, 0.01, half), axisZ)
}

// DrawUI paints laid-out HUD items in order: background (or swatch fill), 1px border, text.
func (r *Renderer) DrawUI(items []ui.Item) {
	for _, it := range items {
		n, style := it.Node, it.Style
		x, y := int32(n.Bounds.X), int32(n.Bounds.Y)
		w, h := int32(n.Bounds.Width), int32(n.Bounds.Height)

		bg := style.Background
		if n.Fill != nil {
			bg = *n.Fill
		}
		if bg.A > 0 && w > 0 && h > 0 {
			rl.DrawRectangle(x, y, w, h, bg)
		}
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, style.Border)
		}
		if n.Text == "" {
			continue
		}
		tx, ty := x+style.Padding, y+style.Padding
		if r.font.Texture.ID != 0 {
			rl.DrawTextEx(r.font, n.Text, rl.NewVector2(float32(tx), float32(ty)), float32(style.FontSize), 1, style.Color)
		} else {
			rl.DrawText(n.Text, tx, ty, style.FontSize, style.Color)
		}
	}
}

// Close releases GPU resources. Call before the window closes.
func (r *Renderer) Close() {
	r.meshes.unload()
}

func toRL(c colorful.Color, alpha float32) rl.Color {
	cr, cg, cb := c.Clamped().RGB255()
	return rl.NewColor(cr, cg, cb, uint8(alpha*255+0.5))
}
