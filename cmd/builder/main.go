package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"

	"brick-builder/internal/brick"
	"brick-builder/internal/commands"
	"brick-builder/internal/debug"
	"brick-builder/internal/editor"
	"brick-builder/internal/env"
	"brick-builder/internal/fonts"
	"brick-builder/internal/graphics"
	"brick-builder/internal/input"
	"brick-builder/internal/logger"
	"brick-builder/internal/placement"
	"brick-builder/internal/prefs"
	"brick-builder/internal/raycast"
	"brick-builder/internal/render"
	"brick-builder/internal/scene"
	"brick-builder/internal/terminal"
	"brick-builder/internal/ui"
)

const (
	title        = "Brick Builder"
	groundSize   = 2000
	gridDivision = 200
	fontLoadSize = 32
)

// app is everything one builder window owns.
type app struct {
	log      *logger.Logger
	prefs    prefs.Prefs
	cam      *raycast.Camera
	ed       *editor.Editor
	ctl      *input.Controller
	engine   *ui.Engine
	hud      *ui.HUD
	renderer *render.Renderer
	dbg      *debug.Debug
	term     *terminal.Terminal
	reg      *commands.Registry
	font     rl.Font
}

func main() {
	envErr := env.Load(".env")
	p, prefsErr := prefs.Load()
	log := logger.New(env.Get(env.LogLevelKey, p.LogLevel))
	defer log.Close()
	if envErr != nil {
		log.WithError(envErr).Warn("could not read .env")
	}
	if prefsErr != nil {
		log.WithError(prefsErr).Warn("using default preferences")
	}

	a := newApp(log, p)
	graphics.Run(graphics.Window{
		Title:      title,
		Width:      int32(p.WindowWidth),
		Height:     int32(p.WindowHeight),
		Fullscreen: p.Fullscreen,
		Background: render.Background,
	}, a.update, a.draw, a.close)
}

func newApp(log *logger.Logger, p prefs.Prefs) *app {
	cat, err := brick.LoadCatalog(brick.CatalogPath)
	if err != nil {
		log.WithError(err).Warn("using built-in brick catalog")
	}
	palette, err := brick.NewPalette(cat.Palette)
	if err != nil {
		log.WithError(err).Warn("invalid catalog palette, using defaults")
		palette = brick.DefaultPalette()
	}
	factory := brick.NewFactory(cat.Dimensions)

	graph := scene.NewGraph()
	graph.Add(scene.NewGround(groundSize))
	graph.Add(scene.NewGridOverlay(groundSize, gridDivision))

	cam := raycast.DefaultCamera()
	cam.Position = p.CameraPosition()

	ed := editor.New(graph, raycast.NewCaster(&cam), editor.Options{
		Palette: palette,
		Factory: factory,
		Grid:    placement.Grid{Cell: cat.Cell, UpThreshold: placement.DefaultUpThreshold},
		Log:     log,
	})

	engine := ui.New()
	if err := engine.LoadCSS(ui.HUDStylePath); err != nil {
		log.WithError(err).Debug("using embedded HUD stylesheet")
	}
	hud := ui.NewHUD(engine, input.ModeNames(), input.Swatches(palette))

	renderer := render.New()
	renderer.GridVisible = p.GridVisible

	dbg := debug.New()
	dbg.ShowFPS = p.ShowFPS
	dbg.ShowMemAlloc = p.ShowMemAlloc

	a := &app{
		log:      log,
		prefs:    p,
		cam:      &cam,
		ed:       ed,
		ctl:      input.New(ed, hud, &cam, log),
		engine:   engine,
		hud:      hud,
		renderer: renderer,
		dbg:      dbg,
		reg:      commands.NewRegistry(),
	}
	dbg.SetStats(func() string {
		return fmt.Sprintf("%d bricks | %s", len(a.ed.Bricks()), a.ed.Session().Mode)
	})
	a.term = terminal.New(log, a.reg)
	a.registerCommands()

	log.WithFields(logrus.Fields{
		"colors": palette.Len(),
		"cell":   cat.Cell,
	}).Info("builder ready")
	return a
}

func (a *app) update() {
	if a.font.Texture.ID == 0 && a.prefs.Font != "" {
		if err := a.loadFont(a.prefs.Font); err != nil {
			a.log.WithError(err).Warn("font not loaded")
			a.prefs.Font = ""
		}
	}
	a.term.Update()
	a.engine.Layout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	a.ctl.Update(graphics.Poll(), a.term.IsOpen())
	a.hud.Sync(a.ctl.State())
	a.engine.Layout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
}

func (a *app) draw() {
	a.renderer.DrawScene(a.cam, a.ed.Graph(), a.ed.Ghost())
	a.renderer.DrawUI(a.engine.Items())
	a.term.Draw()
	a.dbg.Draw()
}

func (a *app) close() {
	a.renderer.Close()
	if a.font.Texture.ID != 0 {
		rl.UnloadFont(a.font)
	}
	a.log.Info("builder closed")
}

// loadFont resolves name through the font directories and switches every overlay to it.
// Needs the GL context, so it runs from update.
func (a *app) loadFont(name string) error {
	path, err := fonts.Resolve(name)
	if err != nil {
		return err
	}
	f := rl.LoadFontEx(path, fontLoadSize, nil)
	if f.Texture.ID == 0 {
		return fmt.Errorf("load font %s: no texture", path)
	}
	if a.font.Texture.ID != 0 {
		rl.UnloadFont(a.font)
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	a.font = f
	a.renderer.SetFont(f)
	a.term.SetFont(f)
	a.dbg.SetFont(f)
	a.log.WithField("path", path).Info("font loaded")
	return nil
}
