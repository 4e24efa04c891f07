package component

import (
	"errors"
	"reflect"
	"sync"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID keys a component store in a world. Zero is never issued.
type ComponentID uint32

// ComponentKind is the typed key for one component store.
type ComponentKind[T any] struct {
	id ComponentID
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// Name is the label the kind was registered under.
func (k ComponentKind[T]) Name() string { return Name(k.id) }

// ComponentHandle is the package-level declaration of a component type.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

// NewComponent registers a component type under name. Names label debug
// output and need not be unique.
func NewComponent[T any](name string) ComponentHandle[T] {
	return ComponentHandle[T]{kind: register[T](name)}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }

// NewComponentKind registers an ad hoc kind labelled with its Go type.
func NewComponentKind[T any]() ComponentKind[T] {
	return register[T](reflect.TypeOf((*T)(nil)).Elem().String())
}

var registry struct {
	sync.Mutex
	names []string
}

func register[T any](name string) ComponentKind[T] {
	registry.Lock()
	defer registry.Unlock()
	registry.names = append(registry.names, name)
	return ComponentKind[T]{id: ComponentID(len(registry.names))}
}

// Name returns the label registered for id, or "" when id was never issued.
func Name(id ComponentID) string {
	registry.Lock()
	defer registry.Unlock()
	if id == 0 || int(id) > len(registry.names) {
		return ""
	}
	return registry.names[id-1]
}
