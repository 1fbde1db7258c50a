package ecs

import "github.com/milk9111/portalroom/ecs/component"

// ProjectileSet holds the live projectiles in spawn order.
type ProjectileSet struct {
	items []component.Projectile
}

func NewProjectileSet() *ProjectileSet {
	return &ProjectileSet{}
}

func (s *ProjectileSet) Spawn(p component.Projectile) {
	if s == nil {
		return
	}
	s.items = append(s.items, p)
}

func (s *ProjectileSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// All returns a copy of the live projectiles.
func (s *ProjectileSet) All() []component.Projectile {
	if s == nil {
		return nil
	}
	return append([]component.Projectile(nil), s.items...)
}

// Replace swaps in the survivors of a simulation step.
func (s *ProjectileSet) Replace(items []component.Projectile) {
	if s == nil {
		return
	}
	s.items = items
}

// DropMarker removes every live projectile of marker m and returns how many
// were removed.
func (s *ProjectileSet) DropMarker(m component.Marker) int {
	if s == nil {
		return 0
	}
	kept := s.items[:0]
	for _, p := range s.items {
		if p.Marker != m {
			kept = append(kept, p)
		}
	}
	dropped := len(s.items) - len(kept)
	s.items = kept
	return dropped
}

func (s *ProjectileSet) CountMarker(m component.Marker) int {
	if s == nil {
		return 0
	}
	n := 0
	for _, p := range s.items {
		if p.Marker == m {
			n++
		}
	}
	return n
}

func (s *ProjectileSet) Clear() {
	if s == nil {
		return
	}
	s.items = nil
}
