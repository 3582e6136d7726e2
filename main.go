package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/boxworld/logger"
)

func main() {
	debug := flag.Bool("debug", false, "draw ids, remainders and riding flags")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "test_room", "level name in levels/ (basename, .yaml optional)")
	watch := flag.Bool("watch", false, "reload the level when files under levels/ or prefabs/ change")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", "", "log format (text, json)")
	flag.Parse()

	log := logger.New(logger.Config{Level: *logLevel, Format: *logFormat})

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("boxworld")

	game, err := NewGame(gameConfig{
		Level: *levelName,
		Debug: *debug,
		Watch: *watch,
		Log:   log,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to start")
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Fatal("game exited")
	}
}
