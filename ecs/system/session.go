package system

import (
	"fmt"

	"github.com/milk9111/portalroom/ecs"
	"github.com/milk9111/portalroom/prefabs"
)

// NewSession builds a world for preset with the systems in tick order:
// input, physics, teleport, goal, hazards, button, projectiles.
func NewSession(preset *prefabs.RoomSpec, opts ...ecs.Option) (*ecs.World, error) {
	if preset == nil {
		return nil, ecs.ErrNilPreset
	}

	var script *WinScript
	if preset.WinScript != "" {
		var err error
		script, err = LoadWinScript(preset.WinScript)
		if err != nil {
			return nil, err
		}
	}

	systems := []ecs.System{
		NewPlayerControllerSystem(),
		NewPhysicsSystem(),
		NewTeleportSystem(),
		NewGoalSystem(script),
		NewHazardSystem(),
		NewButtonSystem(),
		NewProjectileSystem(),
	}

	all := make([]ecs.Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, ecs.WithSystems(systems...))
	return ecs.NewWorld(preset, all...)
}

// LoadSession loads a preset by name and builds its session.
func LoadSession(name string, opts ...ecs.Option) (*ecs.World, error) {
	spec, err := prefabs.LoadRoomSpec(name)
	if err != nil {
		return nil, err
	}
	w, err := NewSession(spec, opts...)
	if err != nil {
		return nil, fmt.Errorf("system: preset %s: %w", name, err)
	}
	return w, nil
}
