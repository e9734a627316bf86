package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brick-builder/internal/brick"
	"brick-builder/internal/editor"
	"brick-builder/internal/raycast"
	"brick-builder/internal/scene"
	"brick-builder/internal/ui"
)

const screen = 800

// modeButton returns the centre of the i-th mode button in the embedded toolbar layout.
func modeButton(i int) (x, y float32) {
	return 30 + float32(i*92), 30
}

func swatch(i int) (x, y float32) {
	return 30 + float32(i*34), 70
}

type fixture struct {
	cam *raycast.Camera
	ed  *editor.Editor
	c   *Controller
}

// newFixture looks straight down at the origin so the screen centre hits the ground at (0, 0, 0).
func newFixture(t *testing.T) *fixture {
	t.Helper()
	graph := scene.NewGraph()
	graph.Add(scene.NewGround(2000))
	cam := &raycast.Camera{
		Position: mgl32.Vec3{0, 500, 0},
		Up:       mgl32.Vec3{0, 0, -1},
		FovY:     45,
		Aspect:   16.0 / 9.0,
	}
	ed := editor.New(graph, raycast.NewCaster(cam), editor.Options{})
	engine := ui.New()
	hud := ui.NewHUD(engine, ModeNames(), Swatches(ed.Palette()))
	engine.Layout(screen, screen)
	return &fixture{cam: cam, ed: ed, c: New(ed, hud, cam, nil)}
}

func frameAt(x, y float32) Frame {
	return Frame{ScreenW: screen, ScreenH: screen, MouseX: x, MouseY: y}
}

func click(x, y float32) Frame {
	f := frameAt(x, y)
	f.LeftPressed = true
	return f
}

func TestClickOnScenePlacesBrick(t *testing.T) {
	fx := newFixture(t)
	fx.c.Update(click(screen/2, screen/2), false)

	bricks := fx.ed.Bricks()
	require.Len(t, bricks, 1)
	assert.Equal(t, mgl32.Vec3{5, 0, 5}, bricks[0].Position)
	assert.InDelta(t, 1.0, fx.cam.Aspect, 1e-6, "aspect follows the screen")
}

func TestPointerMoveShowsGhost(t *testing.T) {
	fx := newFixture(t)
	fx.c.Update(frameAt(screen/2, screen/2), false)

	g := fx.ed.Ghost()
	assert.True(t, g.Visible)
	assert.Equal(t, mgl32.Vec3{5, 0, 5}, g.Position)
	assert.Empty(t, fx.ed.Bricks())
}

func TestHUDClicksNeverReachScene(t *testing.T) {
	fx := newFixture(t)

	x, y := modeButton(2)
	fx.c.Update(click(x, y), false)
	assert.Equal(t, editor.ModeDelete, fx.ed.Session().Mode)

	x, y = swatch(2)
	fx.c.Update(click(x, y), false)
	assert.Equal(t, 2, fx.c.ColorIndex())

	// bar background
	fx.c.Update(click(640, 100), false)
	assert.Empty(t, fx.ed.Bricks())
	assert.Equal(t, editor.ModeDelete, fx.ed.Session().Mode)
}

func TestApply(t *testing.T) {
	fx := newFixture(t)

	require.NoError(t, fx.c.Apply(ui.Click{Action: ui.ActionMode, Mode: "paint"}))
	assert.Equal(t, editor.ModePaint, fx.ed.Session().Mode)

	require.NoError(t, fx.c.Apply(ui.Click{Action: ui.ActionRotate}))
	assert.Equal(t, scene.Yaw90, fx.ed.Session().Orientation)

	assert.ErrorIs(t, fx.c.Apply(ui.Click{Action: ui.ActionMode, Mode: "sculpt"}), editor.ErrUnknownMode)
	assert.Equal(t, editor.ModePaint, fx.ed.Session().Mode)

	assert.Error(t, fx.c.Apply(ui.Click{Action: ui.ActionColor, ColorIndex: 99}))

	require.NoError(t, fx.c.Apply(ui.Click{Action: ui.ActionMode, Mode: "add"}))
	fx.c.Update(click(screen/2, screen/2), false)
	require.Len(t, fx.ed.Bricks(), 1)
	require.NoError(t, fx.c.Apply(ui.Click{Action: ui.ActionClear}))
	assert.Empty(t, fx.ed.Bricks())
}

func TestShortcutsIgnoredWhileTerminalOpen(t *testing.T) {
	fx := newFixture(t)
	f := frameAt(screen/2, screen/2)
	f.Keys = []Key{KeyModePaint, KeyRotate, KeyNextColor}

	fx.c.Update(f, true)
	s := fx.ed.Session()
	assert.Equal(t, editor.ModeAdd, s.Mode)
	assert.Equal(t, scene.Yaw0, s.Orientation)
	assert.Equal(t, 0, fx.c.ColorIndex())

	fx.c.Update(f, false)
	s = fx.ed.Session()
	assert.Equal(t, editor.ModePaint, s.Mode)
	assert.Equal(t, scene.Yaw90, s.Orientation)
	assert.Equal(t, 1, fx.c.ColorIndex())
}

func TestCycleColorWraps(t *testing.T) {
	fx := newFixture(t)
	n := fx.ed.Palette().Len()

	require.NoError(t, fx.c.CycleColor(-1))
	assert.Equal(t, n-1, fx.c.ColorIndex())
	require.NoError(t, fx.c.CycleColor(1))
	assert.Equal(t, 0, fx.c.ColorIndex())
	require.NoError(t, fx.c.CycleColor(n+2))
	assert.Equal(t, 2, fx.c.ColorIndex())
}

func TestWheelAndDragMoveCamera(t *testing.T) {
	fx := newFixture(t)
	cam := raycast.DefaultCamera()
	fx.c.cam = &cam
	before := cam.Position.Len()

	f := frameAt(screen-1, screen-1)
	f.Wheel = 1
	fx.c.Update(f, false)
	assert.InDelta(t, before*DefaultZoomStep, cam.Position.Len(), 1e-2)

	f.Wheel = -1
	fx.c.Update(f, false)
	assert.InDelta(t, before, cam.Position.Len(), 1e-2)

	start := cam.Position
	f = frameAt(screen-1, screen-1)
	f.DragX = 40
	fx.c.Update(f, false)
	assert.NotEqual(t, start, cam.Position)
	assert.InDelta(t, before, cam.Position.Len(), 1e-2, "orbit keeps the distance")
}

func TestState(t *testing.T) {
	fx := newFixture(t)
	fx.c.Update(click(screen/2, screen/2), false)
	fx.ed.SetMode(editor.ModeMove)
	fx.c.Update(click(screen/2, screen/2), false)

	st := fx.c.State()
	assert.Equal(t, ui.State{Mode: "add", ColorIndex: 0, Bricks: 0, Carrying: true}, st)
}

func TestSwatches(t *testing.T) {
	p := brick.DefaultPalette()
	sw := Swatches(p)
	require.Len(t, sw, p.Len())
	assert.Equal(t, uint8(0xE3), sw[0].R)
	assert.Equal(t, uint8(255), sw[0].A)
	assert.Equal(t, []string{"add", "move", "delete", "paint"}, ModeNames())
}
