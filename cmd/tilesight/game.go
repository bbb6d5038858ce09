package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tilesight/arena"
	"github.com/lixenwraith/tilesight/config"
	"github.com/lixenwraith/tilesight/control"
	"github.com/lixenwraith/tilesight/dungeon"
	"github.com/lixenwraith/tilesight/fov"
	"github.com/lixenwraith/tilesight/logger"
	"github.com/lixenwraith/tilesight/render"
	"github.com/lixenwraith/tilesight/spatial"
	"github.com/lixenwraith/tilesight/world"
	"github.com/sirupsen/logrus"
)

// game owns the world and the per-frame scratch arena
type game struct {
	screen     tcell.Screen
	view       *render.Screen
	translator *control.Translator
	fovOpts    fov.Options

	worldArena *arena.Arena
	scratch    *arena.Arena
	m          *world.Map
	player     spatial.Handle

	stats  fov.Stats
	last   control.Action
	frames int
}

func newGame(cfg *config.Config, screen tcell.Screen) (*game, error) {
	keys := control.DefaultKeyTable()
	if len(cfg.Keys) > 0 {
		override, err := control.LoadKeyConfig(cfg.Keys)
		if err != nil {
			return nil, fmt.Errorf("key bindings: %w", err)
		}
		keys = control.MergeKeyTable(keys, override)
	}

	g := &game{
		screen:     screen,
		view:       render.NewScreen(screen, nil),
		translator: control.NewTranslator(keys),
		fovOpts:    cfg.FOVOptions(),
		worldArena: arena.NewArena(cfg.Arena.WorldBytes),
		scratch:    arena.NewArena(cfg.Arena.ScratchBytes),
	}
	g.m = world.New(g.worldArena, cfg.WorldOptions())

	layout := dungeon.Build(g.m, dungeon.Config{
		Width:    cfg.Dungeon.Width,
		Height:   cfg.Dungeon.Height,
		Braiding: cfg.Dungeon.Braiding,
		Seed:     cfg.Dungeon.Seed,
	}, g.scratch)
	handles, err := dungeon.Populate(g.m, layout, dungeon.DefaultCast())
	if err != nil {
		return nil, err
	}
	g.player = handles[0]
	g.scratch.Reset()

	logger.Component("game").WithFields(logrus.Fields{
		"world_bytes": g.worldArena.SizeInUse(),
		"mobiles":     g.m.Mobs().Len(),
	}).Info("level ready")
	return g, nil
}

// draw renders one frame centered on the player
func (g *game) draw() {
	g.scratch.Reset()
	x, y := g.m.MobilePos(g.player)
	g.view.Begin(x, y)
	g.stats = fov.DrawWorld(g.m, x, y, g.view, g.fovOpts, g.scratch)
	g.view.Status(g.statusLine(x, y))
	g.view.Show()
	g.frames++
}

func (g *game) statusLine(x, y int) string {
	return fmt.Sprintf(" %d,%d  tiles:%d mobs:%d portals:%d  world:%.1f%%  %s",
		x, y, g.stats.Tiles, g.stats.Mobs, g.stats.Portals,
		g.worldArena.Utilization()*100, g.last)
}

// handle applies ev and reports whether the game should quit and whether
// the frame needs redrawing
func (g *game) handle(ev tcell.Event) (quit, redraw bool) {
	if _, ok := ev.(*tcell.EventResize); ok {
		g.screen.Sync()
		return false, true
	}
	w, h := g.view.Size()
	a := g.translator.Translate(ev, w, h)
	switch a {
	case control.ActionNone:
		return false, false
	case control.ActionQuit:
		return true, false
	}
	g.last = a
	control.Apply(g.m, g.player, a, g.scratch)
	return false, true
}

// run draws and handles events until quit or the event source closes
func (g *game) run(poller *control.Poller) {
	g.draw()
	for {
		ev, ok, closed := poller.Poll()
		if closed {
			return
		}
		if !ok {
			continue
		}
		quit, redraw := g.handle(ev)
		if quit {
			return
		}
		if redraw {
			g.draw()
		}
	}
}
