package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging simulation events.
type EventLogger interface {
	Log(event SimEvent)
	Events() []SimEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []SimEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event SimEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []SimEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []SimEvent {
	var result []SimEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() SimEvent {
	if len(l.events) == 0 {
		return SimEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event SimEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e SimEvent) string {
	civ := e.Civ
	// Pad civ name to 14 chars for alignment
	for len(civ) < 14 {
		civ += " "
	}

	return fmt.Sprintf("T%-2d %s| %s", e.Turn, civ, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []SimEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewTurnEvent(turn int) SimEvent {
	return SimEvent{
		Turn:    turn,
		Type:    EventNewTurn,
		Details: fmt.Sprintf("=== Turn %d ===", turn),
	}
}

func NewCivFoundedEvent(turn int, civ string, survival, tech, faith int) SimEvent {
	return SimEvent{
		Turn:    turn,
		Civ:     civ,
		Type:    EventCivFounded,
		Details: fmt.Sprintf("%s is founded (Survival %d / Tech %d / Faith %d)", civ, survival, tech, faith),
	}
}

func NewCardGrantedEvent(turn int, civ, cardName string) SimEvent {
	return SimEvent{
		Turn:    turn,
		Civ:     civ,
		Type:    EventCardGranted,
		Card:    cardName,
		Details: fmt.Sprintf("%s receives %s", civ, cardName),
	}
}

func NewCardPlayedEvent(turn int, civ, cardName string) SimEvent {
	return SimEvent{
		Turn:    turn,
		Civ:     civ,
		Type:    EventCardPlayed,
		Card:    cardName,
		Details: fmt.Sprintf("%s plays %s", civ, cardName),
	}
}

func NewStatChangeEvent(turn int, civ, stat string, oldVal, newVal int) SimEvent {
	return SimEvent{
		Turn:    turn,
		Civ:     civ,
		Type:    EventStatChange,
		Details: fmt.Sprintf("%s %s: %d → %d", civ, stat, oldVal, newVal),
	}
}

func NewExtinctionEvent(turn int, civ string) SimEvent {
	return SimEvent{
		Turn:    turn,
		Civ:     civ,
		Type:    EventExtinction,
		Details: fmt.Sprintf("%s has gone extinct (Survival reached 0)", civ),
	}
}

func NewSimOverEvent(turn int, result string) SimEvent {
	return SimEvent{
		Turn:    turn,
		Type:    EventSimOver,
		Details: result,
	}
}
