package tui

import (
	"io"

	"github.com/sakhare12/selfstalker/internal/stalker"
)

// BellNotifier turns game events into terminal bells. Footsteps stay silent;
// a bell every dozen ticks would be unbearable.
type BellNotifier struct {
	w io.Writer
}

// NewBellNotifier creates a notifier writing BEL characters to w.
func NewBellNotifier(w io.Writer) *BellNotifier {
	return &BellNotifier{w: w}
}

// Notify implements stalker.Notifier.
func (b *BellNotifier) Notify(e stalker.Event) {
	switch e {
	case stalker.EventCollect, stalker.EventGameOver:
		//nolint:errcheck // Best-effort, a lost bell is fine
		b.w.Write([]byte{'\a'})
	}
}
