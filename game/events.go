package game

import (
	"fmt"

	"github.com/plus3/blockfall/tetromino"
)

// EventKind names a state change reported to subscribers.
type EventKind uint8

const (
	EventMoved EventKind = iota
	EventRotated
	EventDropped
	EventLocked
	EventRowsFull
	EventRowsCleared
	EventSpawned
	EventLevelUp
	EventPaused
	EventResumed
	EventGameOver
	EventQuit
)

var eventNames = [...]string{
	"Moved", "Rotated", "Dropped", "Locked", "RowsFull", "RowsCleared",
	"Spawned", "LevelUp", "Paused", "Resumed", "GameOver", "Quit",
}

func (k EventKind) String() string {
	if int(k) >= len(eventNames) {
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
	return eventNames[k]
}

// Event describes one change. Only the fields relevant to Kind are set.
type Event struct {
	Kind  EventKind
	Tick  uint64
	Piece tetromino.Piece

	// Rows holds visible row indices for RowsFull and RowsCleared.
	Rows []int

	// Distance is the number of rows a hard drop fell.
	Distance int

	Score int
	Level int
}

// Listener receives events after the call that produced them returns.
// Listeners must not call back into the Game.
type Listener func(Event)

// eventBuffer defers delivery until the end of a tick or input so that
// listeners never observe a half-applied step.
type eventBuffer struct {
	events []Event
}

func (b *eventBuffer) push(e Event) {
	b.events = append(b.events, e)
}

// flush hands every buffered event to each listener in order and resets the
// buffer.
func (b *eventBuffer) flush(listeners []Listener) {
	for _, e := range b.events {
		for _, l := range listeners {
			l(e)
		}
	}
	b.events = b.events[:0]
}
