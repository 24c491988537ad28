package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/ecs"
)

type Clock struct {
	Ticks int
}

func TestSingleton(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	clock := ecs.NewSingleton(storage, Clock{Ticks: 3})
	require.True(t, clock.Exists())
	assert.Equal(t, 3, clock.Get().Ticks)

	clock.Get().Ticks++

	other := ecs.NewSingleton[Clock](storage)
	assert.Equal(t, 4, other.Get().Ticks, "existing value is kept")
	assert.Same(t, clock.Get(), other.Get())
}

func TestAddSingletonReplacesInPlace(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	clock := ecs.NewSingleton(storage, Clock{Ticks: 1})
	held := clock.Get()

	storage.AddSingleton(Clock{Ticks: 10})
	assert.Equal(t, 10, held.Ticks)
	assert.Panics(t, func() { storage.AddSingleton(&Clock{}) })
}

func TestSingletonMissing(t *testing.T) {
	var clock ecs.Singleton[Clock]
	assert.Nil(t, clock.Get())
	assert.False(t, clock.Exists())
}
