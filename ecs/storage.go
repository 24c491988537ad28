package ecs

import (
	"fmt"
	"reflect"

	"github.com/kamstrup/intmap"
)

// Storage owns every entity and singleton of one world. It is not safe for
// concurrent use.
type Storage struct {
	registry   *ComponentRegistry
	archetypes *intmap.Map[uint32, *Archetype]
	// ordered lists archetypes by creation so queries iterate
	// deterministically.
	ordered    []*Archetype
	signatures map[string]uint32
	singletons map[reflect.Type]any
}

func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		archetypes: intmap.New[uint32, *Archetype](16),
		signatures: make(map[string]uint32),
		singletons: make(map[reflect.Type]any),
	}
}

// Spawn creates an entity from components, given by value or by pointer.
// Each component type may appear once.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("ecs: spawn without components")
	}
	types := make([]reflect.Type, len(components))
	for i, c := range components {
		types[i] = componentType(c)
	}
	sig := signature(types)
	for i := 1; i < len(types); i++ {
		if types[i] == types[i-1] {
			panic(fmt.Sprintf("ecs: duplicate component %s in spawn", types[i]))
		}
	}
	archetype := s.archetypeFor(sig, types)
	return NewEntityId(archetype.id, archetype.spawn(components))
}

// archetypeFor returns the archetype for sorted types, creating it on first
// use.
func (s *Storage) archetypeFor(sig string, types []reflect.Type) *Archetype {
	if id, ok := s.signatures[sig]; ok {
		archetype, _ := s.archetypes.Get(id)
		return archetype
	}

	id := uint32(len(s.ordered) + 1)
	archetype := newArchetype(id, types, s.registry)
	s.archetypes.Put(id, archetype)
	s.ordered = append(s.ordered, archetype)
	s.signatures[sig] = id
	return archetype
}

func (s *Storage) archetype(id EntityId) (*Archetype, bool) {
	return s.archetypes.Get(id.ArchetypeId())
}

// Delete removes the entity and reports whether it was alive.
func (s *Storage) Delete(id EntityId) bool {
	archetype, ok := s.archetype(id)
	if !ok {
		return false
	}
	return archetype.delete(id.Row())
}

func (s *Storage) Alive(id EntityId) bool {
	archetype, ok := s.archetype(id)
	return ok && archetype.alive(id.Row())
}

// GetComponent returns a pointer to the entity's component of type t, or
// nil when the entity is gone or lacks it.
func (s *Storage) GetComponent(id EntityId, t reflect.Type) any {
	archetype, ok := s.archetype(id)
	if !ok || !archetype.alive(id.Row()) {
		return nil
	}
	col, ok := archetype.column(t)
	if !ok {
		return nil
	}
	return col.get(id.Row())
}

// ReadComponent is the typed form of GetComponent.
func ReadComponent[T any](s *Storage, id EntityId) *T {
	c := s.GetComponent(id, reflect.TypeFor[T]())
	if c == nil {
		return nil
	}
	return c.(*T)
}

// Count returns the number of live entities.
func (s *Storage) Count() int {
	n := 0
	for _, a := range s.ordered {
		n += a.Len()
	}
	return n
}

// Archetypes returns every archetype in creation order.
func (s *Storage) Archetypes() []*Archetype {
	return s.ordered
}

// AddSingleton stores value as the one instance of its type. Replacing an
// existing singleton overwrites it in place, so pointers held by bound
// Singleton fields see the new value.
func (s *Storage) AddSingleton(value any) {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Pointer {
		panic(fmt.Sprintf("ecs: singleton %T must be given by value", value))
	}
	if existing, ok := s.singletons[v.Type()]; ok {
		reflect.ValueOf(existing).Elem().Set(v)
		return
	}
	ptr := reflect.New(v.Type())
	ptr.Elem().Set(v)
	s.singletons[v.Type()] = ptr.Interface()
}

// singleton returns the stored *T for type t, or nil.
func (s *Storage) singleton(t reflect.Type) any {
	return s.singletons[t]
}
