package stalker

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/sakhare12/selfstalker/internal/config"
	"github.com/sakhare12/selfstalker/internal/core"
)

// recordingNotifier captures events for assertions.
type recordingNotifier struct {
	events []Event
}

func (n *recordingNotifier) Notify(e Event) {
	n.events = append(n.events, e)
}

func (n *recordingNotifier) count(e Event) int {
	c := 0
	for _, got := range n.events {
		if got == e {
			c++
		}
	}
	return c
}

// fakeStore is an in-memory ScoreStore counting writes.
type fakeStore struct {
	high     int
	setCalls int
	err      error
}

func (s *fakeStore) HighScore() (int, error) {
	return s.high, s.err
}

func (s *fakeStore) SetHighScore(score int) error {
	s.setCalls++
	s.high = score
	return s.err
}

// emptyCfg returns the defaults with a zero-density field so tests control
// obstacle placement directly.
func emptyCfg() config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.Obstacles.Density = 0
	return cfg
}

func newRunningGame(t *testing.T, cfg config.GameConfig, opts ...Option) *Game {
	t.Helper()
	g := New(cfg, opts...)
	g.Reset(core.RuntimeConfig{Seed: 1, TickRate: 60})
	g.Step(frame(core.ActionConfirm))
	if g.Phase() != PhasePlaying {
		t.Fatalf("phase after confirm = %v, want playing", g.Phase())
	}
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestPhaseTransitions(t *testing.T) {
	g := New(emptyCfg())
	g.Reset(core.RuntimeConfig{Seed: 1})

	if g.Phase() != PhaseMenu {
		t.Fatalf("initial phase = %v, want menu", g.Phase())
	}

	// Menu ignores everything but confirm
	g.Step(frame(core.ActionPause))
	g.Step(frame(core.ActionUp))
	if g.Phase() != PhaseMenu {
		t.Fatalf("phase = %v, menu should only react to confirm", g.Phase())
	}

	g.Step(frame(core.ActionConfirm))
	if g.Phase() != PhasePlaying {
		t.Fatalf("phase after confirm = %v, want playing", g.Phase())
	}

	g.Step(frame(core.ActionPause))
	if g.Phase() != PhasePaused {
		t.Fatalf("phase after pause = %v, want paused", g.Phase())
	}

	// Paused ticks do not advance the world
	before := g.Snapshot().Tick
	g.Step(frame(core.ActionUp))
	if got := g.Snapshot().Tick; got != before {
		t.Fatalf("tick advanced from %d to %d while paused", before, got)
	}

	g.Step(frame(core.ActionPause))
	if g.Phase() != PhasePlaying {
		t.Fatalf("phase after unpause = %v, want playing", g.Phase())
	}

	g.Step(frame(core.ActionPause))
	g.Step(frame(core.ActionBack))
	if g.Phase() != PhaseMenu {
		t.Fatalf("phase after back from pause = %v, want menu", g.Phase())
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	cfg := emptyCfg()
	g := newRunningGame(t, cfg)

	r := cfg.Player.Radius
	hold := frame(core.ActionLeft, core.ActionUp)
	for i := 0; i < 500; i++ {
		g.Step(hold)
		p := g.Snapshot().Player
		if p.X < r || p.X > cfg.Arena.Width-r || p.Y < r || p.Y > cfg.Arena.Height-r {
			t.Fatalf("tick %d: player at %v escaped bounds", i, p)
		}
	}

	// Should have pinned into the top-left corner by now
	p := g.Snapshot().Player
	if p.X != r || p.Y != r {
		t.Fatalf("player at %v, want corner {%g %g}", p, r, r)
	}
}

func TestDiagonalSpeedNormalized(t *testing.T) {
	cfg := emptyCfg()
	g := newRunningGame(t, cfg)

	start := g.Snapshot().Player
	g.Step(frame(core.ActionUp, core.ActionRight))
	moved := core.Dist(start, g.Snapshot().Player)
	if math.Abs(moved-cfg.Player.Speed) > 1e-9 {
		t.Fatalf("diagonal displacement = %.12f, want %.12f", moved, cfg.Player.Speed)
	}
}

func TestOpposedDirectionsCancel(t *testing.T) {
	g := newRunningGame(t, emptyCfg())

	start := g.Snapshot().Player
	g.Step(frame(core.ActionLeft, core.ActionRight))
	if got := g.Snapshot().Player; got != start {
		t.Fatalf("player moved from %v to %v on cancelling input", start, got)
	}
}

func TestStationaryPlayerCaughtWhenTrailFills(t *testing.T) {
	cfg := emptyCfg()
	g := newRunningGame(t, cfg)

	// Standing still, the shadow materializes on top of the player the
	// moment the trail fills: delay+1 recorded positions. The grace window
	// (60 ticks) has passed by then.
	idle := frame()
	for i := 0; i < cfg.Shadow.DelayTicks; i++ {
		res := g.Step(idle)
		if res.State.GameOver {
			t.Fatalf("run ended at tick %d, before the trail filled", i+1)
		}
	}

	res := g.Step(idle)
	if !res.State.GameOver {
		t.Fatalf("run still alive at tick %d with shadow on player", cfg.Shadow.DelayTicks+1)
	}
	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, want game over", g.Phase())
	}
}

func TestGraceWindowSuppressesShadow(t *testing.T) {
	cfg := emptyCfg()
	cfg.Shadow.DelayTicks = 5 // Trail fills long before grace ends
	cfg.Shadow.GraceTicks = 60
	g := newRunningGame(t, cfg)

	idle := frame()
	for i := 0; i < cfg.Shadow.GraceTicks; i++ {
		if res := g.Step(idle); res.State.GameOver {
			t.Fatalf("caught at tick %d, inside the grace window", i+1)
		}
	}
	if res := g.Step(idle); !res.State.GameOver {
		t.Fatal("shadow inert after grace window expired")
	}
}

func TestConcealmentBlocksShadow(t *testing.T) {
	cfg := emptyCfg()
	g := newRunningGame(t, cfg)

	// An obstacle inside hide range but outside lethal range keeps the
	// stationary player concealed while the shadow sits on top of them.
	g.obstacles = []Obstacle{{Pos: g.player.Add(core.Vec2{X: 30}), Symbol: '◆'}}
	g.hasPickup = false // Keep the pickup out of the way

	idle := frame()
	for i := 0; i < 300; i++ {
		if res := g.Step(idle); res.State.GameOver {
			t.Fatalf("caught at tick %d while concealed", i+1)
		}
	}
	if !g.Snapshot().Hidden {
		t.Fatal("snapshot should report the player as hidden")
	}
}

func TestObstacleContactLethalEvenConcealed(t *testing.T) {
	cfg := emptyCfg()
	g := newRunningGame(t, cfg)

	// Contact range is inside hide range, so this position is both
	// concealed and lethal. Lethal wins.
	g.obstacles = []Obstacle{{Pos: g.player.Add(core.Vec2{X: 10}), Symbol: '♠'}}

	res := g.Step(frame())
	if !res.State.GameOver {
		t.Fatal("obstacle contact should end the run regardless of concealment")
	}
}

func TestPickupCollection(t *testing.T) {
	cfg := emptyCfg()
	notif := &recordingNotifier{}
	g := newRunningGame(t, cfg, WithNotifier(notif))

	g.pickup = Pickup{ID: g.pickup.ID, Pos: g.player}
	prevID := g.pickup.ID

	res := g.Step(frame())
	if res.State.Score != 1 {
		t.Fatalf("score = %d after collection, want 1", res.State.Score)
	}
	if notif.count(EventCollect) != 1 {
		t.Fatalf("collect events = %d, want 1", notif.count(EventCollect))
	}

	snap := g.Snapshot()
	if !snap.HasPickup {
		t.Fatal("a replacement pickup should spawn immediately")
	}
	if snap.Pickup.ID != prevID+1 {
		t.Fatalf("replacement pickup ID = %d, want %d", snap.Pickup.ID, prevID+1)
	}
	if snap.Shake != cfg.Effects.ShakeBurst {
		t.Fatalf("shake = %g after collection, want %g", snap.Shake, cfg.Effects.ShakeBurst)
	}
	// The burst decays one tick before the snapshot, so the count may be
	// slightly below the emitted total but never above it.
	if len(snap.Particles) == 0 || len(snap.Particles) > cfg.Effects.BurstCount {
		t.Fatalf("particle count = %d, want in (0, %d]", len(snap.Particles), cfg.Effects.BurstCount)
	}
}

func TestShakeDecay(t *testing.T) {
	cfg := emptyCfg()
	g := newRunningGame(t, cfg)

	g.pickup = Pickup{Pos: g.player}
	g.Step(frame())
	if g.Snapshot().Shake != cfg.Effects.ShakeBurst {
		t.Fatalf("shake = %g, want %g", g.Snapshot().Shake, cfg.Effects.ShakeBurst)
	}
	g.hasPickup = false // Only the first collection should shake

	g.Step(frame(core.ActionUp))
	want := cfg.Effects.ShakeBurst * cfg.Effects.ShakeDecay
	if got := g.Snapshot().Shake; math.Abs(got-want) > 1e-12 {
		t.Fatalf("shake after one tick = %g, want %g", got, want)
	}

	for i := 0; i < 100; i++ {
		g.Step(frame(core.ActionUp))
	}
	if got := g.Snapshot().Shake; got != 0 {
		t.Fatalf("shake = %g after long decay, want exactly 0", got)
	}
}

func TestConcealEnterEdgeTriggered(t *testing.T) {
	cfg := emptyCfg()
	notif := &recordingNotifier{}
	g := newRunningGame(t, cfg, WithNotifier(notif))
	g.hasPickup = false

	hideout := []Obstacle{{Pos: g.player.Add(core.Vec2{X: 30}), Symbol: '¶'}}
	g.obstacles = hideout

	for i := 0; i < 5; i++ {
		g.Step(frame())
	}
	if got := notif.count(EventConcealEnter); got != 1 {
		t.Fatalf("conceal events = %d after staying hidden, want 1", got)
	}

	// Leaving and re-entering concealment fires again
	g.obstacles = nil
	g.Step(frame())
	g.obstacles = hideout
	g.Step(frame())
	if got := notif.count(EventConcealEnter); got != 2 {
		t.Fatalf("conceal events = %d after re-entry, want 2", got)
	}
}

func TestFootstepCadence(t *testing.T) {
	cfg := emptyCfg()
	notif := &recordingNotifier{}
	g := newRunningGame(t, cfg, WithNotifier(notif))
	g.hasPickup = false

	for i := 0; i < 2*cfg.Effects.FootstepTicks; i++ {
		g.Step(frame(core.ActionRight, core.ActionLeft)) // Moving input, net zero
	}
	if got := notif.count(EventStep); got != 0 {
		t.Fatalf("step events = %d for cancelled movement, want 0", got)
	}

	for i := 0; i < 2*cfg.Effects.FootstepTicks; i++ {
		g.Step(frame(core.ActionDown))
	}
	if got := notif.count(EventStep); got != 2 {
		t.Fatalf("step events = %d after %d moving ticks, want 2",
			got, 2*cfg.Effects.FootstepTicks)
	}
}

func TestEndRunIdempotent(t *testing.T) {
	cfg := emptyCfg()
	notif := &recordingNotifier{}
	store := &fakeStore{}
	g := newRunningGame(t, cfg, WithNotifier(notif), WithScoreStore(store))

	g.score = 3
	g.endRun()
	g.endRun()
	g.endRun()

	if got := notif.count(EventGameOver); got != 1 {
		t.Fatalf("game over events = %d, want 1", got)
	}
	if store.setCalls != 1 {
		t.Fatalf("store writes = %d, want 1", store.setCalls)
	}
	if g.Snapshot().Score != 3 {
		t.Fatalf("final score = %d, want 3", g.Snapshot().Score)
	}
}

func TestHighScoreStrictlyGreater(t *testing.T) {
	cases := []struct {
		name      string
		final     int
		stored    int
		wantCalls int
		wantHigh  int
	}{
		{"below", 3, 5, 0, 5},
		{"equal", 5, 5, 0, 5},
		{"above", 6, 5, 1, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeStore{high: tc.stored}
			g := newRunningGame(t, emptyCfg(), WithScoreStore(store))

			g.score = tc.final
			g.endRun()

			if store.setCalls != tc.wantCalls {
				t.Errorf("store writes = %d, want %d", store.setCalls, tc.wantCalls)
			}
			if store.high != tc.wantHigh {
				t.Errorf("stored high = %d, want %d", store.high, tc.wantHigh)
			}
			if g.Snapshot().HighScore != tc.wantHigh {
				t.Errorf("snapshot high = %d, want %d", g.Snapshot().HighScore, tc.wantHigh)
			}
		})
	}
}

func TestStoreErrorsIgnored(t *testing.T) {
	store := &fakeStore{err: errors.New("db locked")}
	g := newRunningGame(t, emptyCfg(), WithScoreStore(store))

	g.score = 10
	g.endRun()
	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, store errors must not block the run ending", g.Phase())
	}
	if g.Snapshot().Score != 10 {
		t.Fatalf("final score = %d, want 10", g.Snapshot().Score)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	cfg := emptyCfg()
	g := newRunningGame(t, cfg)

	g.score = 4
	g.endRun()

	g.Step(frame(core.ActionRestart))
	if g.Phase() != PhasePlaying {
		t.Fatalf("phase after restart = %v, want playing", g.Phase())
	}
	snap := g.Snapshot()
	if snap.Score != 0 || snap.Tick != 0 {
		t.Fatalf("restart did not reset run state: score=%d tick=%d", snap.Score, snap.Tick)
	}
	if snap.Player != (core.Vec2{X: cfg.Arena.Width / 2, Y: cfg.Arena.Height / 2}) {
		t.Fatalf("player at %v after restart, want arena center", snap.Player)
	}
	if snap.HasShadow {
		t.Fatal("shadow should not exist at the start of a fresh run")
	}
}

func TestEpitaphFallbackWithoutProvider(t *testing.T) {
	g := newRunningGame(t, emptyCfg())

	g.endRun()
	snap := g.Snapshot()
	if snap.Epitaph != FallbackEpitaph {
		t.Fatalf("epitaph = %q, want fallback", snap.Epitaph)
	}
	if snap.EpitaphPending {
		t.Fatal("no provider means nothing is pending")
	}
}

func TestEpitaphProviderErrorFallsBack(t *testing.T) {
	provider := ProviderFunc(func(ctx context.Context, score int) (string, error) {
		return "", errors.New("model unavailable")
	})
	g := newRunningGame(t, emptyCfg(), WithEpitaphProvider(provider))

	g.endRun()
	if !g.Snapshot().EpitaphPending {
		t.Fatal("epitaph should be pending right after the run ends")
	}

	waitForEpitaphs(t, g, 1)
	g.Step(frame())
	snap := g.Snapshot()
	if snap.Epitaph != FallbackEpitaph {
		t.Fatalf("epitaph = %q, want fallback after provider error", snap.Epitaph)
	}
	if snap.EpitaphPending {
		t.Fatal("epitaph still pending after drain")
	}
}

func TestEpitaphDelivered(t *testing.T) {
	provider := ProviderFunc(func(ctx context.Context, score int) (string, error) {
		return fmt.Sprintf("Undone at %d.", score), nil
	})
	g := newRunningGame(t, emptyCfg(), WithEpitaphProvider(provider))

	g.score = 7
	g.endRun()
	waitForEpitaphs(t, g, 1)
	g.Step(frame())
	if got := g.Snapshot().Epitaph; got != "Undone at 7." {
		t.Fatalf("epitaph = %q, want the provider's line", got)
	}
}

func TestStaleEpitaphDiscarded(t *testing.T) {
	release := make(chan struct{})
	provider := ProviderFunc(func(ctx context.Context, score int) (string, error) {
		<-release
		return fmt.Sprintf("Run worth %d.", score), nil
	})
	g := newRunningGame(t, emptyCfg(), WithEpitaphProvider(provider))

	// First run ends with score 1, its epitaph request stays in flight
	g.score = 1
	g.endRun()

	// Restart and end a second run with score 2
	g.Step(frame(core.ActionRestart))
	g.score = 2
	g.endRun()

	close(release)
	waitForEpitaphs(t, g, 2)

	g.Step(frame())
	snap := g.Snapshot()
	if snap.Epitaph != "Run worth 2." {
		t.Fatalf("epitaph = %q, the stale first-run line must not win", snap.Epitaph)
	}
	if snap.EpitaphPending {
		t.Fatal("epitaph still pending after both responses drained")
	}
}

// waitForEpitaphs polls until n provider responses are buffered. The tick
// loop never blocks on the provider, so tests have to wait off to the side.
func waitForEpitaphs(t *testing.T, g *Game, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for len(g.epitaphCh) < n {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d epitaph responses", n)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestDeterministicReplay(t *testing.T) {
	script := func(i int) core.InputFrame {
		switch {
		case i%7 == 0:
			return frame(core.ActionUp, core.ActionRight)
		case i%3 == 0:
			return frame(core.ActionDown)
		default:
			return frame(core.ActionRight)
		}
	}

	cfg := config.DefaultGameConfig()
	a := New(cfg)
	b := New(cfg)
	a.Reset(core.RuntimeConfig{Seed: 99})
	b.Reset(core.RuntimeConfig{Seed: 99})
	a.Step(frame(core.ActionConfirm))
	b.Step(frame(core.ActionConfirm))

	for i := 0; i < 400; i++ {
		in := script(i)
		a.Step(in)
		b.Step(in.Clone())
		sa, sb := a.Snapshot(), b.Snapshot()
		if sa.Hash() != sb.Hash() {
			t.Fatalf("tick %d: snapshots diverged (%d vs %d)", i, sa.Hash(), sb.Hash())
		}
	}
}

func TestResetReturnsToMenu(t *testing.T) {
	g := newRunningGame(t, emptyCfg())
	g.score = 2
	g.endRun()

	g.Reset(core.RuntimeConfig{Seed: 1})
	if g.Phase() != PhaseMenu {
		t.Fatalf("phase after reset = %v, want menu", g.Phase())
	}
	snap := g.Snapshot()
	if snap.Score != 0 || snap.Tick != 0 || snap.Epitaph != "" {
		t.Fatalf("reset left run state behind: %+v", snap)
	}
}
