package trace

import (
	"fmt"
	"io"
	"strings"
)

// Logger is the interface for recording composition events.
type Logger interface {
	Log(event BuildEvent)
	Events() []BuildEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []BuildEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event BuildEvent) {
	l.seq++
	event.Seq = l.seq
	event.Kind = event.Type.String()
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []BuildEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []BuildEvent {
	var result []BuildEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() BuildEvent {
	if len(l.events) == 0 {
		return BuildEvent{}
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

func (l *TextLogger) Log(event BuildEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(l.LastEvent()))
}

// --- ChannelLogger: forwards events to a channel for live consumers ---

type ChannelLogger struct {
	MemoryLogger
	ch chan<- BuildEvent
}

func NewChannelLogger(ch chan<- BuildEvent) *ChannelLogger {
	return &ChannelLogger{ch: ch}
}

func (l *ChannelLogger) Log(event BuildEvent) {
	l.MemoryLogger.Log(event)
	l.ch <- l.LastEvent()
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e BuildEvent) string {
	kind := e.Type.String()
	for len(kind) < 12 {
		kind += " "
	}
	return fmt.Sprintf("P%-2d %s| [%2d] %s", e.Pass, kind, e.Size, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []BuildEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewPickEvent(pass int, card string, weight float64, size int) BuildEvent {
	return BuildEvent{
		Pass:    pass,
		Type:    EventPick,
		Card:    card,
		Size:    size,
		Details: fmt.Sprintf("picked %s (weight %.2f)", card, weight),
	}
}

func NewRemoveEvent(pass int, card string, size int) BuildEvent {
	return BuildEvent{
		Pass:    pass,
		Type:    EventRemove,
		Card:    card,
		Size:    size,
		Details: fmt.Sprintf("removed %s (requirements unmet)", card),
	}
}

func NewRepairPassEvent(pass int, removed int, size int) BuildEvent {
	return BuildEvent{
		Pass:    pass,
		Type:    EventRepairPass,
		Size:    size,
		Details: fmt.Sprintf("repair pass removed %d card(s)", removed),
	}
}

func NewRetryEvent(pass int, remaining int, size int) BuildEvent {
	return BuildEvent{
		Pass:    pass,
		Type:    EventRetry,
		Size:    size,
		Details: fmt.Sprintf("deck short after repair, regenerating (%d retries left)", remaining),
	}
}

func NewPoolEmptyEvent(pass int, size int) BuildEvent {
	return BuildEvent{
		Pass:    pass,
		Type:    EventPoolEmpty,
		Size:    size,
		Details: "no pickable candidates remain",
	}
}

func NewCompleteEvent(pass int, size int) BuildEvent {
	return BuildEvent{
		Pass:    pass,
		Type:    EventComplete,
		Size:    size,
		Details: fmt.Sprintf("composition finished with %d card(s)", size),
	}
}
