package ecs

import (
	"sort"

	"github.com/milk9111/hordecore/ecs/component"
)

var (
	ErrEntityNotAlive       = component.ErrEntityNotAlive
	ErrNilComponent         = component.ErrNilComponent
	ErrInvalidComponentKind = component.ErrInvalidComponentKind
)

// Clock is the simulation time seen by systems during a tick.
type Clock struct {
	Now   float64
	Delta float64
	Frame uint64
}

// World owns entities, component stores, the event queue and the clock.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
	clock    Clock
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// BeginTick sets the delta of the tick about to run. Systems see Now as the
// time at the start of the tick.
func (w *World) BeginTick(dt float64) {
	if w == nil {
		return
	}
	w.clock.Delta = dt
}

// EndTick moves the clock to the end of the current tick.
func (w *World) EndTick() {
	if w == nil {
		return
	}
	w.clock.Now += w.clock.Delta
	w.clock.Frame++
}

func (w *World) Clock() Clock {
	if w == nil {
		return Clock{}
	}
	return w.clock
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if s, ok := w.stores[id]; ok || !create {
		return s
	}
	s := &SparseSet{}
	w.stores[id] = s
	return s
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes all of an entity's components and recycles its slot.
// It returns false for stale or unknown handles.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns every live entity in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// StoreSize is the number of components held by one store.
type StoreSize struct {
	Name string
	Len  int
}

// StoreSizes lists the non-empty component stores, sorted by name.
func StoreSizes(w *World) []StoreSize {
	if w == nil {
		return nil
	}
	var out []StoreSize
	for id, s := range w.stores {
		if n := s.Len(); n > 0 {
			out = append(out, StoreSize{Name: component.Name(id), Len: n})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Len < out[j].Len
	})
	return out
}
