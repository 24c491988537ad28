package ecs

import "reflect"

// Singleton gives a system access to the one stored instance of T.
type Singleton[T any] struct {
	storage *Storage
	value   *T
}

// NewSingleton stores initial (or the zero T) unless a T already exists,
// and returns a handle bound to storage.
func NewSingleton[T any](storage *Storage, initial ...T) *Singleton[T] {
	if storage.singleton(reflect.TypeFor[T]()) == nil {
		var value T
		if len(initial) > 0 {
			value = initial[0]
		}
		storage.AddSingleton(value)
	}
	s := &Singleton[T]{}
	s.bind(storage)
	return s
}

func (s *Singleton[T]) bind(storage *Storage) {
	s.storage = storage
	s.value = nil
}

// Get returns the stored value, or nil when no T has been added.
func (s *Singleton[T]) Get() *T {
	if s.value == nil && s.storage != nil {
		if v := s.storage.singleton(reflect.TypeFor[T]()); v != nil {
			s.value = v.(*T)
		}
	}
	return s.value
}

func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}
