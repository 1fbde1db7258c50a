package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/milk9111/portalroom/ecs"
	"github.com/milk9111/portalroom/ecs/component"
	"gopkg.in/yaml.v3"
)

var ErrBadStep = errors.New("roomsim: bad step")

// Scenario is a scripted input timeline replayed against one preset.
type Scenario struct {
	Preset string `yaml:"preset"`
	Ticks  int    `yaml:"ticks"`
	Steps  []Step `yaml:"steps"`
}

// Step queues its intents before tick Tick and the Repeat ticks after it.
type Step struct {
	Tick   int         `yaml:"tick"`
	Repeat int         `yaml:"repeat"`
	Move   string      `yaml:"move"`
	Look   *[2]float64 `yaml:"look,flow"`
	Fire   string      `yaml:"fire"`
	Jump   bool        `yaml:"jump"`
	Reset  bool        `yaml:"reset"`
	Clear  bool        `yaml:"clear"`
}

func LoadScenario(path string) (Scenario, error) {
	var sc Scenario
	data, err := os.ReadFile(path)
	if err != nil {
		return sc, fmt.Errorf("roomsim: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return sc, fmt.Errorf("roomsim: unmarshal %s: %w", path, err)
	}
	return sc, nil
}

func (s Step) active(tick int) bool {
	return tick >= s.Tick && tick <= s.Tick+s.Repeat
}

// intents returns the step's actions in a fixed order: look, move, jump,
// fire, clear, reset.
func (s Step) intents() ([]component.Intent, error) {
	var out []component.Intent
	if s.Look != nil {
		out = append(out, component.IntentLook{DYaw: s.Look[0], DPitch: s.Look[1]})
	}
	if s.Move != "" {
		dir, err := parseMove(s.Move)
		if err != nil {
			return nil, err
		}
		out = append(out, component.IntentMove{Direction: dir})
	}
	if s.Jump {
		out = append(out, component.IntentJump{})
	}
	if s.Fire != "" {
		m, err := parseMarker(s.Fire)
		if err != nil {
			return nil, err
		}
		out = append(out, component.IntentFire{Marker: m})
	}
	if s.Clear {
		out = append(out, component.IntentClearPortals{})
	}
	if s.Reset {
		out = append(out, component.IntentReset{})
	}
	return out, nil
}

func parseMove(s string) (component.MoveDirection, error) {
	for _, d := range []component.MoveDirection{component.MoveForward, component.MoveBack, component.MoveLeft, component.MoveRight} {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("move %q: %w", s, ErrBadStep)
}

func parseMarker(s string) (component.Marker, error) {
	switch strings.ToLower(s) {
	case "a", "blue":
		return component.MarkerA, nil
	case "b", "yellow":
		return component.MarkerB, nil
	}
	return 0, fmt.Errorf("fire %q: %w", s, ErrBadStep)
}

// Run replays sc against w for sc.Ticks fixed ticks, stopping early once the
// room is won. onTick, when set, sees the events of every tick.
func Run(w *ecs.World, sc Scenario, onTick func(tick int, events []ecs.Event)) error {
	steps := make([][]component.Intent, len(sc.Steps))
	for i, s := range sc.Steps {
		in, err := s.intents()
		if err != nil {
			return fmt.Errorf("roomsim: step %d: %w", i, err)
		}
		steps[i] = in
	}

	dt := w.Spec().TickSeconds
	for tick := 0; tick < sc.Ticks; tick++ {
		for i, s := range sc.Steps {
			if !s.active(tick) {
				continue
			}
			for _, in := range steps[i] {
				w.Enqueue(in)
			}
		}

		w.Tick(dt)
		if onTick != nil {
			onTick(tick, w.Events())
		}
		if w.Puzzle.Won {
			break
		}
	}
	return nil
}
