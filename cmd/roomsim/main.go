package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/milk9111/portalroom/ecs"
	"github.com/milk9111/portalroom/ecs/system"
	"github.com/sirupsen/logrus"
)

func main() {
	presetName := flag.String("preset", "", "room preset (overrides the scenario preset)")
	scriptPath := flag.String("script", "", "scenario yaml to replay")
	ticks := flag.Int("ticks", 0, "ticks to run (overrides the scenario)")
	events := flag.Bool("events", false, "print every event as it happens")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logrus.SetOutput(os.Stderr)
	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	sc := Scenario{Preset: "puzzle", Ticks: 60}
	if *scriptPath != "" {
		loaded, err := LoadScenario(*scriptPath)
		if err != nil {
			logrus.WithError(err).Fatal("load scenario")
		}
		sc = loaded
	}
	if *presetName != "" {
		sc.Preset = *presetName
	}
	if *ticks > 0 {
		sc.Ticks = *ticks
	}

	w, err := system.LoadSession(sc.Preset, ecs.WithLogger(logrus.WithField("preset", sc.Preset)))
	if err != nil {
		logrus.WithError(err).Fatal("load preset")
	}

	var onTick func(int, []ecs.Event)
	if *events {
		onTick = func(tick int, evs []ecs.Event) {
			for _, ev := range evs {
				fmt.Fprintf(os.Stderr, "%5d %-10s %+v\n", tick, ev.Type, ev.Data)
			}
		}
	}

	if err := Run(w, sc, onTick); err != nil {
		logrus.WithError(err).Fatal("run scenario")
	}

	out, err := w.Snapshot().YAML()
	if err != nil {
		logrus.WithError(err).Fatal("snapshot")
	}
	os.Stdout.Write(out)
}
