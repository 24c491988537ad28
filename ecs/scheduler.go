package ecs

import (
	"reflect"
	"time"
)

// System is one stage of a pipeline.
type System interface {
	Execute(frame *UpdateFrame)
}

// UpdateFrame is shared by every system in one pass. Structural changes go
// through Commands and land after the last system returns.
type UpdateFrame struct {
	Tick     uint64
	Storage  *Storage
	Commands *Commands
}

// Scheduler runs registered systems in order against one storage and keeps
// per-system timing.
type Scheduler struct {
	storage  *Storage
	commands Commands
	systems  []System
	stats    []SystemStats
}

func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{storage: storage}
}

// Register appends system to the pipeline and binds its Query and Singleton
// fields, including those of embedded structs, to the scheduler's storage.
// system should be a pointer; fields of a struct passed by value cannot be
// bound.
func (s *Scheduler) Register(system System) {
	Bind(system, s.storage)

	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	s.systems = append(s.systems, system)
	s.stats = append(s.stats, SystemStats{Name: t.Name()})
}

type binder interface {
	bind(storage *Storage)
}

// Bind initializes every Query and Singleton field reachable from target, a
// pointer to a struct, through embedded structs.
func Bind(target any, storage *Storage) {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return
	}
	bindFields(v.Elem(), storage)
}

func bindFields(v reflect.Value, storage *Storage) {
	if v.Kind() != reflect.Struct {
		return
	}
	t := v.Type()
	for i := range v.NumField() {
		field := v.Field(i)
		if field.Kind() != reflect.Struct || !field.CanSet() {
			continue
		}
		if b, ok := field.Addr().Interface().(binder); ok {
			b.bind(storage)
			continue
		}
		if t.Field(i).Anonymous {
			bindFields(field, storage)
		}
	}
}

// Once runs every system for tick, then flushes the commands they buffered.
func (s *Scheduler) Once(tick uint64) {
	frame := &UpdateFrame{
		Tick:     tick,
		Storage:  s.storage,
		Commands: &s.commands,
	}

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.stats[i].record(time.Since(start))
	}

	s.commands.Flush(s.storage)
}

// SystemStats describes one system's run times. AvgDuration is derived
// when the stats are read.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	LastDuration   time.Duration
	MinDuration    time.Duration
	MaxDuration    time.Duration
	TotalDuration  time.Duration
	AvgDuration    time.Duration
}

func (st *SystemStats) record(d time.Duration) {
	if st.ExecutionCount == 0 || d < st.MinDuration {
		st.MinDuration = d
	}
	st.MaxDuration = max(st.MaxDuration, d)
	st.LastDuration = d
	st.TotalDuration += d
	st.ExecutionCount++
}

// SchedulerStats lists systems in execution order.
type SchedulerStats struct {
	Systems         []SystemStats
	SystemCount     int
	TotalExecutions int64
}

// GetStats returns a copy of the current statistics.
func (s *Scheduler) GetStats() *SchedulerStats {
	out := &SchedulerStats{
		Systems:     make([]SystemStats, len(s.stats)),
		SystemCount: len(s.systems),
	}
	for i, st := range s.stats {
		if st.ExecutionCount > 0 {
			st.AvgDuration = st.TotalDuration / time.Duration(st.ExecutionCount)
		}
		out.Systems[i] = st
		out.TotalExecutions += st.ExecutionCount
	}
	return out
}
