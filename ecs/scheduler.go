package ecs

// System advances one concern of the world by one tick.
type System interface {
	Update(w *World)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) {
	if f == nil {
		return
	}
	f(w)
}

// Scheduler runs systems in registration order.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if s == nil || system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs each system once, stopping early when halt reports true
// after a system.
func (s *Scheduler) Update(w *World, halt func() bool) {
	if s == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w)
		if halt != nil && halt() {
			return
		}
	}
}
