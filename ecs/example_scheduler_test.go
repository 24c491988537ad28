package ecs_test

import (
	"fmt"

	"github.com/plus3/blockfall/ecs"
)

type Mana struct {
	Current, Max int
}

type RegenSystem struct {
	Entities ecs.Query[struct{ *Mana }]
	Rate     int
}

func (s *RegenSystem) Execute(frame *ecs.UpdateFrame) {
	for item := range s.Entities.Values() {
		item.Mana.Current = min(item.Mana.Current+s.Rate, item.Mana.Max)
	}
}

// ExampleScheduler registers a system whose Query field is bound by the
// scheduler, then runs two passes.
func ExampleScheduler() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Mana](registry)
	storage := ecs.NewStorage(registry)

	id := storage.Spawn(Mana{Current: 2, Max: 10})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&RegenSystem{Rate: 5})

	scheduler.Once(0)
	scheduler.Once(1)

	fmt.Println(ecs.ReadComponent[Mana](storage, id).Current)
	fmt.Println(scheduler.GetStats().TotalExecutions)
	// Output:
	// 10
	// 2
}
