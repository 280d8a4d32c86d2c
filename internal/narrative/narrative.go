// Package narrative generates the short epitaph line shown when a run ends.
// The built-in provider picks from canned lines keyed on the final score;
// the interface leaves room for slower external generators, which is why
// requests carry a context and run asynchronously in the engine.
package narrative

import (
	"context"
	"math/rand"
	"sync"
)

var tiers = []struct {
	minScore int
	lines    []string
}{
	{0, []string{
		"You barely left the starting square. It found you anyway.",
		"The shortest chase is the one you never ran.",
		"Standing still is also a trail.",
	}},
	{3, []string{
		"A few steps ahead, always a few steps behind yourself.",
		"You turned left. So did it, eventually.",
		"Every pickup was a breadcrumb for the thing behind you.",
	}},
	{8, []string{
		"You knew every trick. Unfortunately, so did it.",
		"A long run. It remembered all of it.",
		"You hid well. You just could not hide forever.",
	}},
	{15, []string{
		"A masterful run, undone by its own echo.",
		"It studied you for a thousand ticks. It only needed one.",
		"Nobody outruns their past. You came closer than most.",
	}},
}

// StaticProvider serves epitaphs from the built-in line pool. Safe for
// concurrent use; the engine calls it from a fresh goroutine per run.
type StaticProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewStaticProvider creates a provider drawing lines with the given seed.
func NewStaticProvider(seed int64) *StaticProvider {
	return &StaticProvider{rng: rand.New(rand.NewSource(seed))}
}

// Epitaph returns a line matching the score tier.
func (p *StaticProvider) Epitaph(ctx context.Context, score int) (string, error) {
	pool := tiers[0].lines
	for _, tier := range tiers {
		if score >= tier.minScore {
			pool = tier.lines
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return pool[p.rng.Intn(len(pool))], nil
}
