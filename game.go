package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/boxworld/common"
	"github.com/milk9111/boxworld/obj"
	"github.com/milk9111/boxworld/prefabs"
	"github.com/milk9111/boxworld/system"
)

type gameConfig struct {
	Level string
	Debug bool
	Watch bool
	Log   *logrus.Logger
}

type Game struct {
	frames int

	world   *system.World
	input   *obj.Input
	camera  *obj.Camera
	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI
	player  playerState

	paused bool
	debug  bool
	log    *logrus.Logger
}

func NewGame(cfg gameConfig) (*Game, error) {
	world, err := system.NewWorld(cfg.Level, cfg.Log)
	if err != nil {
		return nil, err
	}

	g := &Game{
		world:  world,
		input:  obj.NewInput(),
		camera: obj.NewCamera(common.BaseWidth, common.BaseHeight, 1),
		debug:  cfg.Debug,
		log:    cfg.Log,
	}
	g.pauseUI = NewPauseUI(g)
	g.onLevelLoaded()

	if cfg.Watch {
		w, err := prefabs.NewWatcher("levels", "prefabs")
		if err != nil {
			cfg.Log.WithError(err).Warn("file watching disabled")
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++
	g.input.Update()
	g.pollWatcher()

	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}
	if g.input.DebugPressed {
		g.debug = !g.debug
	}
	if g.input.ResetPressed {
		g.resetLevel()
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.world.Step(dt, g.input.Frame())

	if id := g.world.Player(); id.Valid() {
		g.camera.Follow(*g.world.Boxes.Actor(id))
		g.player = nextPlayerState(g.world, id)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.camera.Render(screen, func(img *ebiten.Image) {
		drawWorld(img, g.world, g.camera, g.debug)
	})

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level: %s  t=%.2f  state: %s", g.world.Level.Name, g.world.Time, g.player), 0, 16)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) resetLevel() {
	if err := g.world.Reset(); err != nil {
		g.log.WithError(err).Error("reset failed")
		return
	}
	g.onLevelLoaded()
}

func (g *Game) reloadLevel() {
	if err := g.world.Reload(); err != nil {
		g.log.WithError(err).Error("reload failed, keeping current level")
		return
	}
	g.onLevelLoaded()
}

func (g *Game) onLevelLoaded() {
	g.camera.SetWorldBounds(g.world.Level.Width, g.world.Level.Height)
	g.player = stateIdle
	if id := g.world.Player(); id.Valid() {
		c := g.world.Boxes.Actor(id).Center()
		g.camera.SnapTo(float64(c.X), float64(c.Y))
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		g.log.WithError(err).Warn("watcher error")
	default:
	}
	changed := g.watcher.Drain()
	if len(changed) == 0 {
		return
	}
	g.log.WithField("files", changed).Info("files changed, reloading level")
	g.reloadLevel()
}
