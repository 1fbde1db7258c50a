package system

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/portalroom/prefabs"
)

var ErrWinScript = errors.New("system: invalid win script")

// WinInput is what a win script can see.
type WinInput struct {
	InGoal          bool
	ButtonActivated bool
	Elapsed         float64
	X, Y, Z         float64
	Falling         bool
	PaintedA        int
	PaintedB        int
}

// WinScript is a compiled tengo predicate that assigns the global `won`.
type WinScript struct {
	name     string
	compiled *tengo.Compiled
}

var winScriptInputs = []string{
	"in_goal",
	"button_activated",
	"elapsed",
	"player_x",
	"player_y",
	"player_z",
	"falling",
	"painted_a",
	"painted_b",
}

// LoadWinScript reads and compiles a script from prefabs/scripts.
func LoadWinScript(name string) (*WinScript, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("system: load win script %s: %w", name, err)
	}
	return CompileWinScript(name, src)
}

func CompileWinScript(name string, src []byte) (*WinScript, error) {
	script := tengo.NewScript(src)
	for _, in := range winScriptInputs {
		if err := script.Add(in, false); err != nil {
			return nil, fmt.Errorf("system: win script %s: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("system: compile win script %s: %w", name, err)
	}
	if !declaresWon(compiled) {
		return nil, fmt.Errorf("system: win script %s never assigns won: %w", name, ErrWinScript)
	}
	return &WinScript{name: name, compiled: compiled}, nil
}

// declaresWon reports whether the script has a global named won. Globals
// hold no value until the first run, so only the name is checked here.
func declaresWon(c *tengo.Compiled) bool {
	for _, v := range c.GetAll() {
		if v.Name() == "won" {
			return true
		}
	}
	return false
}

func (s *WinScript) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Eval runs the script against in and returns its verdict.
func (s *WinScript) Eval(in WinInput) (bool, error) {
	if s == nil || s.compiled == nil {
		return in.InGoal && in.ButtonActivated, nil
	}

	values := map[string]any{
		"in_goal":          in.InGoal,
		"button_activated": in.ButtonActivated,
		"elapsed":          in.Elapsed,
		"player_x":         in.X,
		"player_y":         in.Y,
		"player_z":         in.Z,
		"falling":          in.Falling,
		"painted_a":        in.PaintedA,
		"painted_b":        in.PaintedB,
	}
	for name, v := range values {
		if err := s.compiled.Set(name, v); err != nil {
			return false, fmt.Errorf("system: win script %s: set %s: %w", s.name, name, err)
		}
	}
	if err := s.compiled.Run(); err != nil {
		return false, fmt.Errorf("system: run win script %s: %w", s.name, err)
	}
	if !s.compiled.IsDefined("won") {
		return false, fmt.Errorf("system: win script %s left won undefined: %w", s.name, ErrWinScript)
	}
	return s.compiled.Get("won").Bool(), nil
}
