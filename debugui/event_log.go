package debugui

import (
	"fmt"

	"github.com/plus3/blockfall/game"
)

// EventLog keeps the most recent game events as display lines, newest
// first.
type EventLog struct {
	limit int
	lines []string
}

// NewEventLog keeps up to limit lines; a limit below one keeps one.
func NewEventLog(limit int) *EventLog {
	return &EventLog{limit: max(limit, 1)}
}

// Record formats e and keeps it, dropping the oldest line past the limit.
func (l *EventLog) Record(e game.Event) {
	l.lines = append([]string{formatEvent(e)}, l.lines...)
	if len(l.lines) > l.limit {
		l.lines = l.lines[:l.limit]
	}
}

func (l *EventLog) Lines() []string {
	return l.lines
}

func formatEvent(e game.Event) string {
	switch e.Kind {
	case game.EventMoved, game.EventRotated, game.EventLocked, game.EventSpawned:
		return fmt.Sprintf("[%d] %s %s", e.Tick, e.Kind, e.Piece.Kind)
	case game.EventDropped:
		return fmt.Sprintf("[%d] %s %s by %d", e.Tick, e.Kind, e.Piece.Kind, e.Distance)
	case game.EventRowsFull, game.EventRowsCleared:
		return fmt.Sprintf("[%d] %s %v", e.Tick, e.Kind, e.Rows)
	case game.EventLevelUp:
		return fmt.Sprintf("[%d] %s %d", e.Tick, e.Kind, e.Level)
	case game.EventGameOver:
		return fmt.Sprintf("[%d] %s score=%d", e.Tick, e.Kind, e.Score)
	default:
		return fmt.Sprintf("[%d] %s", e.Tick, e.Kind)
	}
}
