package main

import (
	"errors"
	"fmt"
	"strings"

	"brick-builder/internal/brick"
	"brick-builder/internal/commands"
	"brick-builder/internal/editor"
	"brick-builder/internal/prefs"
)

var errUsage = errors.New("usage")

// registerCommands wires the "cmd ..." subcommands typed into the terminal.
func (a *app) registerCommands() {
	a.reg.Register("help", "list commands", nil, func([]string) error {
		for _, line := range a.reg.Help() {
			a.log.Info(line)
		}
		return nil
	})

	a.reg.Register("mode", "<add|move|delete|paint>", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("%w: cmd mode <add|move|delete|paint>", errUsage)
		}
		m, err := editor.ParseMode(args[0])
		if err != nil {
			return err
		}
		a.ed.SetMode(m)
		return nil
	})

	a.reg.Register("color", "<index|#RRGGBB> selects a palette colour; no argument lists them", nil, func(args []string) error {
		pal := a.ed.Palette()
		if len(args) == 0 {
			hexes := make([]string, 0, pal.Len())
			for i, c := range pal.Colors() {
				hexes = append(hexes, fmt.Sprintf("%d=%s", i, brick.Hex(c)))
			}
			a.log.Info("palette: " + strings.Join(hexes, " "))
			return nil
		}
		c, err := pal.Parse(args[0])
		if err != nil {
			return err
		}
		return a.ed.SetSelectedColor(c)
	})

	a.reg.Register("rotate", "toggle the brick orientation", nil, func([]string) error {
		a.ed.RotateBrick()
		return nil
	})

	a.reg.Register("clear", "remove every brick", nil, func([]string) error {
		a.ed.ClearScene()
		return nil
	})

	a.reg.Register("bricks", "list placed bricks", nil, func([]string) error {
		bricks := a.ed.Bricks()
		a.log.Infof("%d bricks", len(bricks))
		for _, b := range bricks {
			a.log.Info(b.String())
		}
		return nil
	})

	gridFS := commands.NewFlagSet("grid")
	gridShow := gridFS.Bool("show", false, "show the grid overlay")
	gridHide := gridFS.Bool("hide", false, "hide the grid overlay")
	a.reg.Register("grid", "--show | --hide", gridFS, func([]string) error {
		visible, err := showHide(*gridShow, *gridHide, "grid")
		if err != nil {
			return err
		}
		a.renderer.GridVisible = visible
		a.prefs.GridVisible = visible
		return nil
	})

	fpsFS := commands.NewFlagSet("fps")
	fpsShow := fpsFS.Bool("show", false, "show the FPS counter")
	fpsHide := fpsFS.Bool("hide", false, "hide the FPS counter")
	a.reg.Register("fps", "--show | --hide", fpsFS, func([]string) error {
		visible, err := showHide(*fpsShow, *fpsHide, "fps")
		if err != nil {
			return err
		}
		a.dbg.ShowFPS = visible
		a.prefs.ShowFPS = visible
		return nil
	})

	memFS := commands.NewFlagSet("memalloc")
	memShow := memFS.Bool("show", false, "show heap usage")
	memHide := memFS.Bool("hide", false, "hide heap usage")
	a.reg.Register("memalloc", "--show | --hide", memFS, func([]string) error {
		visible, err := showHide(*memShow, *memHide, "memalloc")
		if err != nil {
			return err
		}
		a.dbg.ShowMemAlloc = visible
		a.prefs.ShowMemAlloc = visible
		return nil
	})

	statsFS := commands.NewFlagSet("stats")
	statsShow := statsFS.Bool("show", false, "show the scene summary")
	statsHide := statsFS.Bool("hide", false, "hide the scene summary")
	a.reg.Register("stats", "--show | --hide", statsFS, func([]string) error {
		visible, err := showHide(*statsShow, *statsHide, "stats")
		if err != nil {
			return err
		}
		a.dbg.ShowStats = visible
		return nil
	})

	a.reg.Register("font", "<name or path> draws overlays with a font from assets/fonts", nil, func(args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("%w: cmd font <name>", errUsage)
		}
		name := strings.Join(args, " ")
		if err := a.loadFont(name); err != nil {
			return err
		}
		a.prefs.Font = name
		return nil
	})

	a.reg.Register("save", "store overlay, grid, font and camera preferences", nil, func([]string) error {
		a.prefs.Camera = [3]float32(a.cam.Position)
		if err := prefs.Save(a.prefs); err != nil {
			return err
		}
		a.log.WithField("path", prefs.Path).Info("preferences saved")
		return nil
	})
}

func showHide(show, hide bool, name string) (bool, error) {
	if show == hide {
		return false, fmt.Errorf("%w: cmd %s --show | --hide", errUsage, name)
	}
	return show, nil
}
