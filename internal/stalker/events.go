package stalker

// Event is a discrete fire-and-forget notification emitted by the simulation,
// consumed by an audio backend. Events carry no payload and have no return
// value; the simulation never waits on a notifier.
type Event int

const (
	EventStep         Event = iota // Footstep cadence while the player moves
	EventCollect                   // Pickup collected
	EventGameOver                  // Run ended
	EventConcealEnter              // Player just became concealed (edge-triggered)
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventStep:
		return "step"
	case EventCollect:
		return "collect"
	case EventGameOver:
		return "game_over"
	case EventConcealEnter:
		return "conceal_enter"
	default:
		return "unknown"
	}
}

// Notifier receives game events. Implementations must be non-blocking.
type Notifier interface {
	Notify(Event)
}

// NopNotifier discards all events. It is the default when no notifier is set.
type NopNotifier struct{}

// Notify implements Notifier.
func (NopNotifier) Notify(Event) {}
