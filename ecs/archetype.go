package ecs

import (
	"iter"
	"reflect"
	"slices"
	"strings"
)

// Archetype stores every entity that has exactly one component set. Rows
// freed by Delete are reused by later spawns.
type Archetype struct {
	id      uint32
	types   []reflect.Type
	columns []column
	live    []bool
	free    []uint32
	count   int
}

func newArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:      id,
		types:   types,
		columns: make([]column, len(types)),
	}
	for i, t := range types {
		a.columns[i] = registry.newColumn(t)
	}
	return a
}

func (a *Archetype) Id() uint32 {
	return a.id
}

// Types returns the component types in signature order.
func (a *Archetype) Types() []reflect.Type {
	return slices.Clone(a.types)
}

// Len returns the number of live entities.
func (a *Archetype) Len() int {
	return a.count
}

func (a *Archetype) column(t reflect.Type) (column, bool) {
	for i, have := range a.types {
		if have == t {
			return a.columns[i], true
		}
	}
	return nil, false
}

func (a *Archetype) has(t reflect.Type) bool {
	_, ok := a.column(t)
	return ok
}

func (a *Archetype) alive(row uint32) bool {
	return int(row) < len(a.live) && a.live[row]
}

func (a *Archetype) spawn(components []any) uint32 {
	var row uint32
	if n := len(a.free); n > 0 {
		row = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		row = uint32(len(a.live))
		a.live = append(a.live, false)
	}

	for _, c := range components {
		col, _ := a.column(componentType(c))
		col.set(row, c)
	}
	a.live[row] = true
	a.count++
	return row
}

func (a *Archetype) delete(row uint32) bool {
	if !a.alive(row) {
		return false
	}
	for _, col := range a.columns {
		col.clear(row)
	}
	a.live[row] = false
	a.free = append(a.free, row)
	a.count--
	return true
}

// rows yields live rows in ascending order. Rows spawned during iteration
// may or may not be visited.
func (a *Archetype) rows() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for i := 0; i < len(a.live); i++ {
			if a.live[i] && !yield(uint32(i)) {
				return
			}
		}
	}
}

// componentType is the stored type of c; pointers are stored by value.
func componentType(c any) reflect.Type {
	t := reflect.TypeOf(c)
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

func typeKey(t reflect.Type) string {
	return t.PkgPath() + "." + t.String()
}

// signature sorts types into canonical order and returns the key naming
// their archetype.
func signature(types []reflect.Type) string {
	slices.SortFunc(types, func(a, b reflect.Type) int {
		return strings.Compare(typeKey(a), typeKey(b))
	})
	keys := make([]string, len(types))
	for i, t := range types {
		keys[i] = typeKey(t)
	}
	return strings.Join(keys, "|")
}
