package log

// EventType enumerates all observable simulation events.
type EventType int

const (
	EventNewTurn EventType = iota
	EventCivFounded
	EventCardGranted
	EventCardPlayed
	EventStatChange
	EventExtinction
	EventSimOver
)

func (e EventType) String() string {
	switch e {
	case EventNewTurn:
		return "NewTurn"
	case EventCivFounded:
		return "CivFounded"
	case EventCardGranted:
		return "CardGranted"
	case EventCardPlayed:
		return "CardPlayed"
	case EventStatChange:
		return "StatChange"
	case EventExtinction:
		return "Extinction"
	case EventSimOver:
		return "SimOver"
	default:
		return "Unknown"
	}
}

// SimEvent represents a single observable event in a simulation run.
type SimEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // which turn (1-based, 0 before the first turn)
	Civ     string    // civilization name (if applicable)
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
