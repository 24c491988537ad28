package ecs

import (
	"fmt"
	"iter"
	"reflect"
)

// Query iterates entities by component set. T is a struct whose exported
// pointer fields name the components to match; embedding is the usual way
// to declare them:
//
//	ecs.Query[struct {
//		ecs.EntityId
//		*Position
//		*Velocity
//	}]
//
// A field of type EntityId receives the entity's id. A pointer field tagged
// `ecs:"optional"` does not restrict the match and is nil when absent.
type Query[T any] struct {
	storage *Storage
	fields  []queryField
	idField int
}

type queryField struct {
	index    int
	typ      reflect.Type
	optional bool
}

var entityIdType = reflect.TypeFor[EntityId]()

// NewQuery returns a query bound to storage. Systems normally declare a
// Query field and let the scheduler bind it instead.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.bind(storage)
	return q
}

func (q *Query[T]) bind(storage *Storage) {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("ecs: query type %s is not a struct", t))
	}

	q.storage = storage
	q.fields = q.fields[:0]
	q.idField = -1
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			panic(fmt.Sprintf("ecs: query field %s.%s is unexported", t, f.Name))
		}
		switch {
		case f.Type == entityIdType:
			q.idField = i
		case f.Type.Kind() == reflect.Pointer:
			q.fields = append(q.fields, queryField{
				index:    i,
				typ:      f.Type.Elem(),
				optional: f.Tag.Get("ecs") == "optional",
			})
		default:
			panic(fmt.Sprintf("ecs: query field %s.%s must be a pointer or EntityId", t, f.Name))
		}
	}
}

func (q *Query[T]) matches(a *Archetype) bool {
	for _, f := range q.fields {
		if !f.optional && !a.has(f.typ) {
			return false
		}
	}
	return true
}

// Iter yields every matching entity with its view. Component pointers in
// the view write through to storage.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	if q.storage == nil {
		panic("ecs: query used before it was bound to a storage")
	}
	return func(yield func(EntityId, T) bool) {
		for _, a := range q.storage.ordered {
			if a.Len() == 0 || !q.matches(a) {
				continue
			}
			for row := range a.rows() {
				id := NewEntityId(a.id, row)
				if !yield(id, q.view(a, id)) {
					return
				}
			}
		}
	}
}

func (q *Query[T]) view(a *Archetype, id EntityId) T {
	var item T
	v := reflect.ValueOf(&item).Elem()
	for _, f := range q.fields {
		if col, ok := a.column(f.typ); ok {
			v.Field(f.index).Set(reflect.ValueOf(col.get(id.Row())))
		}
	}
	if q.idField >= 0 {
		v.Field(q.idField).SetUint(uint64(id))
	}
	return item
}

// Values yields views only.
func (q *Query[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range q.Iter() {
			if !yield(item) {
				return
			}
		}
	}
}

// First returns the first match, for queries expected to match at most one
// entity.
func (q *Query[T]) First() (T, bool) {
	for _, item := range q.Iter() {
		return item, true
	}
	var zero T
	return zero, false
}

func (q *Query[T]) Count() int {
	n := 0
	for range q.Iter() {
		n++
	}
	return n
}
