package stalker

import "github.com/sakhare12/selfstalker/internal/core"

// Trail is a fixed-capacity ring of past player positions, recorded once per
// tick. The oldest entry is the shadow's position: the shadow is never stored
// as independent state, only derived from the ring. With capacity delay+1,
// once the ring is full the head is exactly delay ticks older than the tail.
type Trail struct {
	buf   []core.Vec2
	start int
	count int
}

// NewTrail creates a trail holding up to capacity positions.
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{buf: make([]core.Vec2, capacity)}
}

// Record appends a position, evicting the oldest entry once full.
func (t *Trail) Record(p core.Vec2) {
	if t.count < len(t.buf) {
		t.buf[(t.start+t.count)%len(t.buf)] = p
		t.count++
		return
	}
	t.buf[t.start] = p
	t.start = (t.start + 1) % len(t.buf)
}

// Shadow returns the oldest recorded position. It reports false until the
// ring has filled, which yields the startup grace period before a shadow
// exists at all.
func (t *Trail) Shadow() (core.Vec2, bool) {
	if !t.Full() {
		return core.Vec2{}, false
	}
	return t.buf[t.start], true
}

// Full reports whether the ring holds its full capacity of positions.
func (t *Trail) Full() bool {
	return t.count == len(t.buf)
}

// Len returns the number of recorded positions.
func (t *Trail) Len() int {
	return t.count
}

// Cap returns the ring capacity.
func (t *Trail) Cap() int {
	return len(t.buf)
}

// Positions returns a copy of the recorded positions, oldest first.
func (t *Trail) Positions() []core.Vec2 {
	out := make([]core.Vec2, t.count)
	for i := 0; i < t.count; i++ {
		out[i] = t.buf[(t.start+i)%len(t.buf)]
	}
	return out
}
