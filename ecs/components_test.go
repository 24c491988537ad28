package ecs_test

import "github.com/plus3/blockfall/ecs"

type Position struct {
	X, Y int
}

type Velocity struct {
	DX, DY int
}

type Health struct {
	Current, Max int
}

type Marker struct{}

type Score int32

func newTestRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Health](registry)
	ecs.RegisterComponent[Marker](registry)
	ecs.RegisterComponent[Score](registry)
	return registry
}
