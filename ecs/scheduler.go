package ecs

// System is one stage of a simulation tick.
type System interface {
	Update(w *World)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) { f(w) }

// Scheduler runs its systems in a fixed order, once per tick.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{systems: make([]System, 0, len(systems))}
	for _, sys := range systems {
		if sys != nil {
			s.systems = append(s.systems, sys)
		}
	}
	return s
}

func (s *Scheduler) Len() int { return len(s.systems) }

// Update runs every system against the current clock without advancing it.
func (s *Scheduler) Update(w *World) {
	for _, sys := range s.systems {
		sys.Update(w)
	}
}

// Tick advances w by dt. Systems see Now at the start of the tick; afterwards
// the clock moves forward and the tick's events are drained and returned.
func (s *Scheduler) Tick(w *World, dt float64) []Event {
	w.BeginTick(dt)
	s.Update(w)
	w.EndTick()
	return w.Events().Drain()
}
