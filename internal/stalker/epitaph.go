package stalker

import "context"

// FallbackEpitaph is displayed when the narrative provider fails or is
// absent. Provider errors never surface to the player.
const FallbackEpitaph = "Caught by the only one who knows all your moves."

// Provider supplies a short narrative line for a finished run, keyed on the
// final score. It may be slow and it may fail; the engine calls it from a
// goroutine and never blocks the tick loop on it.
type Provider interface {
	Epitaph(ctx context.Context, score int) (string, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, score int) (string, error)

// Epitaph implements Provider.
func (f ProviderFunc) Epitaph(ctx context.Context, score int) (string, error) {
	return f(ctx, score)
}

// epitaphResult carries a resolved epitaph back to the tick loop. The run
// generation recorded at request time lets the engine discard responses that
// arrive after a new run has started: cancellation by staleness, not true
// cancellation.
type epitaphResult struct {
	gen  uint64
	line string
}
