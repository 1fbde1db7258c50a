package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and overlays")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	presetName := flag.String("preset", "puzzle", "room preset in prefabs/ (basename, .yaml optional)")
	watch := flag.Bool("watch", false, "reload the preset when prefabs/ changes on disk")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("portalroom")

	game, err := NewGame(*presetName, *debug, *watch)
	if err != nil {
		logrus.WithError(err).Fatal("start game")
	}
	defer game.Close()

	// Mouse look needs the cursor captured; the pause menu releases it.
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	if err := ebiten.RunGame(game); err != nil {
		logrus.WithError(err).Fatal("run game")
	}
}
