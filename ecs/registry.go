package ecs

import (
	"fmt"
	"reflect"
)

// ComponentRegistry maps component types to their column constructors.
// Every type passed to Spawn must be registered first.
type ComponentRegistry struct {
	columns map[reflect.Type]func() column
}

func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{columns: make(map[reflect.Type]func() column)}
}

// RegisterComponent makes T storable. Components are plain values; pointer,
// interface, map, channel and function types are rejected.
func RegisterComponent[T any](registry *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Chan, reflect.Func:
		panic(fmt.Sprintf("ecs: %s cannot be a component", t))
	}
	registry.columns[t] = func() column { return &chunkedColumn[T]{} }
}

func (r *ComponentRegistry) newColumn(t reflect.Type) column {
	ctor, ok := r.columns[t]
	if !ok {
		panic(fmt.Sprintf("ecs: component %s is not registered", t))
	}
	return ctor()
}

const chunkSize = 64

// column holds one component type for every row of an archetype. Liveness
// is tracked by the archetype, not the column.
type column interface {
	set(row uint32, value any)
	get(row uint32) any
	clear(row uint32)
}

// chunkedColumn stores values in fixed-size chunks. Growing appends a chunk
// and never moves existing ones, so pointers returned by get stay valid for
// the life of the row.
type chunkedColumn[T any] struct {
	chunks []*[chunkSize]T
}

func (c *chunkedColumn[T]) slot(row uint32) *T {
	chunk := int(row / chunkSize)
	for chunk >= len(c.chunks) {
		c.chunks = append(c.chunks, new([chunkSize]T))
	}
	return &c.chunks[chunk][row%chunkSize]
}

func (c *chunkedColumn[T]) set(row uint32, value any) {
	switch v := value.(type) {
	case T:
		*c.slot(row) = v
	case *T:
		*c.slot(row) = *v
	default:
		panic(fmt.Sprintf("ecs: cannot store %T as %s", value, reflect.TypeFor[T]()))
	}
}

// get returns a *T.
func (c *chunkedColumn[T]) get(row uint32) any {
	return c.slot(row)
}

func (c *chunkedColumn[T]) clear(row uint32) {
	var zero T
	*c.slot(row) = zero
}
