package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGravityInterval(t *testing.T) {
	assert.Equal(t, time.Second, GravityInterval(time.Second, 0))
	assert.Equal(t, 500*time.Millisecond, GravityInterval(time.Second, 1))
	assert.Equal(t, 100*time.Millisecond, GravityInterval(time.Second, 9))
	assert.Equal(t, time.Second, GravityInterval(time.Second, -3))
}

func TestTickClockAccumulates(t *testing.T) {
	c := NewTickClock(time.Second)

	assert.Equal(t, uint32(0), c.Advance(400*time.Millisecond, 0))
	assert.Equal(t, uint32(0), c.Advance(400*time.Millisecond, 0))
	assert.Equal(t, uint32(1), c.Advance(400*time.Millisecond, 0))
	assert.Equal(t, uint32(0), c.Advance(500*time.Millisecond, 0), "remainder carries over")
	assert.Equal(t, uint32(1), c.Advance(100*time.Millisecond, 0))
}

func TestTickClockFasterAtHigherLevel(t *testing.T) {
	c := NewTickClock(time.Second)
	assert.Equal(t, uint32(5), c.Advance(time.Second, 4))
}

func TestTickClockReset(t *testing.T) {
	c := NewTickClock(time.Second)
	c.Advance(900*time.Millisecond, 0)
	c.Reset()
	assert.Equal(t, uint32(0), c.Advance(200*time.Millisecond, 0))
}

func TestGameGravityInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartLevel = 3
	g, err := New(cfg, WithSource(inOrder{}))
	assert.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, g.GravityInterval())
}
