package main

import (
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/portalroom/common"
	"github.com/milk9111/portalroom/ecs"
	"github.com/milk9111/portalroom/ecs/system"
	"github.com/milk9111/portalroom/prefabs"
	"github.com/sirupsen/logrus"
	"golang.design/x/clipboard"
)

type Game struct {
	debug  bool
	paused bool
	quit   bool

	preset   string
	world    *ecs.World
	input    *Input
	renderer *Renderer
	watcher  *prefabs.Watcher

	pauseUI *menu
	winUI   *menu

	clipboardReady bool
	log            *logrus.Entry
}

func NewGame(preset string, debug, watch bool) (*Game, error) {
	g := &Game{
		debug:  debug,
		preset: preset,
		input:  NewInput(),
		log:    logrus.WithField("component", "game"),
	}

	w, err := g.loadWorld()
	if err != nil {
		return nil, err
	}
	g.setWorld(w)

	if watch {
		dir := "prefabs"
		watcher, err := prefabs.NewWatcher(dir, filepath.Join(dir, "scripts"))
		if err != nil {
			g.log.WithError(err).Warn("hot reload disabled")
		} else {
			g.watcher = watcher
		}
	}

	g.pauseUI = newPauseUI(g)
	g.winUI = newWinUI(g)
	return g, nil
}

func (g *Game) loadWorld() (*ecs.World, error) {
	return system.LoadSession(g.preset, ecs.WithLogger(logrus.WithField("preset", g.preset)))
}

func (g *Game) setWorld(w *ecs.World) {
	g.world = w
	g.renderer = NewRenderer(w.Spec(), g.debug)
}

func (g *Game) World() *ecs.World {
	return g.world
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.pollReload()

	if g.world.Puzzle.Won {
		g.winUI.ui.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.paused {
			g.Resume()
		} else {
			g.pause()
		}
	}
	if g.paused {
		g.pauseUI.ui.Update()
		return nil
	}

	g.input.Update(g.world)
	g.world.Tick(g.world.Spec().TickSeconds)

	for _, ev := range g.world.Events() {
		g.log.WithField("tick", g.world.Ticks()).Debugf("event %s %+v", ev.Type, ev.Data)
		if ev.Type == ecs.EventWon {
			g.releaseCursor()
		}
	}

	return nil
}

func (g *Game) pause() {
	g.paused = true
	g.pauseUI.SetStatus("")
	g.releaseCursor()
}

func (g *Game) releaseCursor() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	g.input.Release()
}

// Resume closes the pause menu and recaptures the cursor.
func (g *Game) Resume() {
	g.paused = false
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
}

// Restart rebuilds the session from its preset.
func (g *Game) Restart() {
	w, err := g.loadWorld()
	if err != nil {
		g.log.WithError(err).Error("restart failed")
		g.winUI.SetStatus("restart failed")
		return
	}
	g.setWorld(w)
	g.Resume()
}

func (g *Game) Quit() {
	g.quit = true
}

// CopyState writes the current snapshot as yaml to the system clipboard.
func (g *Game) CopyState() {
	status := g.copyState()
	g.pauseUI.SetStatus(status)
	g.winUI.SetStatus(status)
}

func (g *Game) copyState() string {
	if !g.clipboardReady {
		if err := clipboard.Init(); err != nil {
			g.log.WithError(err).Warn("clipboard unavailable")
			return "clipboard unavailable"
		}
		g.clipboardReady = true
	}

	data, err := g.world.Snapshot().YAML()
	if err != nil {
		g.log.WithError(err).Error("snapshot yaml")
		return "copy failed"
	}
	clipboard.Write(clipboard.FmtText, data)
	return fmt.Sprintf("copied %d bytes", len(data))
}

// pollReload rebuilds the world between ticks when its preset or win script
// changes on disk. A broken edit keeps the running world.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}

	changed, errs := g.watcher.Poll()
	for _, err := range errs {
		g.log.WithError(err).Warn("watch")
	}

	reload := false
	for _, c := range changed {
		if prefabs.Affects(c, g.world.Spec(), g.preset) {
			reload = true
		}
	}
	if !reload {
		return
	}

	w, err := g.loadWorld()
	if err != nil {
		g.log.WithError(err).Error("reload failed, keeping current room")
		return
	}
	g.setWorld(w)
	g.log.WithField("preset", w.Name()).Info("preset reloaded")
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world.Snapshot())

	switch {
	case g.world.Puzzle.Won:
		g.winUI.ui.Draw(screen)
	case g.paused:
		g.pauseUI.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
