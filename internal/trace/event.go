package trace

// EventType enumerates all observable composition events.
type EventType int

const (
	EventPick EventType = iota
	EventRemove
	EventRepairPass
	EventRetry
	EventPoolEmpty
	EventComplete
)

func (e EventType) String() string {
	switch e {
	case EventPick:
		return "Pick"
	case EventRemove:
		return "Remove"
	case EventRepairPass:
		return "RepairPass"
	case EventRetry:
		return "Retry"
	case EventPoolEmpty:
		return "PoolEmpty"
	case EventComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// BuildEvent is a single observable step in a deck composition run.
type BuildEvent struct {
	Seq     int       `json:"seq"`     // monotonic sequence number
	Pass    int       `json:"pass"`    // generation pass (1-based; bumps on retry)
	Type    EventType `json:"-"`       // event type
	Kind    string    `json:"kind"`    // event type name, for JSON consumers
	Card    string    `json:"card,omitempty"`    // card title (if applicable)
	Size    int       `json:"size"`    // deck size after the event
	Details string    `json:"details"` // human-readable detail string
}
