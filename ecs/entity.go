// Package ecs is a small entity component system: entities grouped into
// archetypes by their component set, process-wide singletons, typed queries,
// a deferred command buffer, and a scheduler that runs systems in order.
//
// Systems declare what they read as Query and Singleton fields. The
// scheduler binds those fields to its storage when the system is registered.
package ecs

import "fmt"

// EntityId packs the archetype id into the upper 32 bits and the row within
// that archetype into the lower 32. Archetype ids start at 1 so the zero
// EntityId never names an entity.
type EntityId uint64

func NewEntityId(archetype, row uint32) EntityId {
	return EntityId(uint64(archetype)<<32 | uint64(row))
}

func (e EntityId) ArchetypeId() uint32 {
	return uint32(e >> 32)
}

func (e EntityId) Row() uint32 {
	return uint32(e)
}

func (e EntityId) String() string {
	return fmt.Sprintf("%d:%d", e.ArchetypeId(), e.Row())
}
