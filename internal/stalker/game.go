// Package stalker implements the Self Stalker simulation engine: a player
// crosses a procedurally generated obstacle field collecting pickups while
// being pursued by its own position history replayed on a fixed delay.
// The package contains pure game logic with no platform dependencies
// (especially no Bubble Tea); the platform handles input mapping, timing,
// and rendering.
package stalker

import (
	"context"
	"math/rand"

	"github.com/sakhare12/selfstalker/internal/config"
	"github.com/sakhare12/selfstalker/internal/core"
)

// Phase is the run/game state machine. Simulation ticks only advance the
// world while PhasePlaying; ticks received in any other phase are dropped
// (the external tick driver runs continuously, the gate is here).
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ScoreStore persists the all-time high score. Implementations are
// best-effort: the engine ignores store errors and keeps playing.
type ScoreStore interface {
	HighScore() (int, error)
	SetHighScore(score int) error
}

// Game is the Self Stalker engine. All mutation happens on the caller's
// goroutine via Step; the only internal concurrency is the epitaph request,
// whose result is delivered over a channel drained at the top of Step.
type Game struct {
	cfg config.GameConfig
	rng *rand.Rand

	notifier Notifier
	scores   ScoreStore
	epitaphs Provider

	phase  Phase
	runGen uint64 // Incremented per run; tags epitaph requests

	tick         uint64
	player       core.Vec2
	trail        *Trail
	obstacles    []Obstacle
	pickup       Pickup
	hasPickup    bool
	nextPickupID uint64
	particles    ParticleSystem
	score        int
	highScore    int
	finalScore   int
	shake        float64
	hidden       bool
	wasHidden    bool
	moveTicks    int

	epitaph        string
	epitaphPending bool
	epitaphCh      chan epitaphResult
}

// Option configures optional engine collaborators.
type Option func(*Game)

// WithNotifier sets the audio event notifier.
func WithNotifier(n Notifier) Option {
	return func(g *Game) { g.notifier = n }
}

// WithScoreStore sets the high-score persistence backend.
func WithScoreStore(s ScoreStore) Option {
	return func(g *Game) { g.scores = s }
}

// WithEpitaphProvider sets the narrative text provider. Without one, the
// fallback line is shown immediately on game over.
func WithEpitaphProvider(p Provider) Option {
	return func(g *Game) { g.epitaphs = p }
}

// New creates an engine with the given configuration. The config must have
// passed Validate; the tick path assumes finite, positive tunables.
func New(cfg config.GameConfig, opts ...Option) *Game {
	g := &Game{
		cfg:       cfg,
		notifier:  NopNotifier{},
		epitaphCh: make(chan epitaphResult, 8),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GameID identifies the game in score storage.
const GameID = "selfstalker"

// ID returns the game identifier used for score storage.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Self Stalker"
}

// Config returns the engine's configuration.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}

// Reset initializes the engine to the menu with a fresh RNG. Called once at
// startup; restarting a run goes through StartRun.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.phase = PhaseMenu
	g.tick = 0
	g.score = 0
	g.finalScore = 0
	g.shake = 0
	g.hidden = false
	g.wasHidden = false
	g.hasPickup = false
	g.epitaph = ""
	g.epitaphPending = false
	g.trail = nil
	g.obstacles = nil
	g.particles.Clear()
	g.loadHighScore()
}

// StartRun performs full run initialization and enters PhasePlaying: fresh
// player, trail, obstacle field, pickup, particles, score, tick counter, and
// shake. Each run gets a new generation so late epitaph responses from a
// previous run cannot leak into this one.
func (g *Game) StartRun() {
	g.runGen++
	g.phase = PhasePlaying
	g.tick = 0
	g.score = 0
	g.finalScore = 0
	g.shake = 0
	g.hidden = false
	g.wasHidden = false
	g.moveTicks = 0
	g.epitaph = ""
	g.epitaphPending = false

	g.player = core.Vec2{X: g.cfg.Arena.Width / 2, Y: g.cfg.Arena.Height / 2}
	g.trail = NewTrail(g.cfg.Shadow.DelayTicks + 1)
	g.obstacles = GenerateField(g.rng, g.cfg, g.player)
	g.particles.Clear()
	g.nextPickupID = 0
	g.respawnPickup()
	g.loadHighScore()
}

// TogglePause flips between PhasePlaying and PhasePaused. A no-op in other
// phases.
func (g *Game) TogglePause() {
	switch g.phase {
	case PhasePlaying:
		g.phase = PhasePaused
	case PhasePaused:
		g.phase = PhasePlaying
	}
}

// ExitToMenu leaves a paused or finished run. A no-op while playing.
func (g *Game) ExitToMenu() {
	if g.phase == PhasePaused || g.phase == PhaseGameOver {
		g.phase = PhaseMenu
	}
}

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Step advances the engine by one tick. Must be invoked at most once per
// logical frame. Control actions (start, pause, restart, exit) are handled in
// every phase; the simulation itself only advances while PhasePlaying.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.drainEpitaphs()

	switch g.phase {
	case PhaseMenu:
		if in.Has(core.ActionConfirm) {
			g.StartRun()
		}
	case PhasePlaying:
		if in.Has(core.ActionPause) {
			g.phase = PhasePaused
			break
		}
		g.simulate(in)
	case PhasePaused:
		switch {
		case in.Has(core.ActionPause):
			g.phase = PhasePlaying
		case in.Has(core.ActionBack):
			g.phase = PhaseMenu
		}
	case PhaseGameOver:
		switch {
		case in.Has(core.ActionRestart), in.Has(core.ActionConfirm):
			g.StartRun()
		case in.Has(core.ActionBack):
			g.phase = PhaseMenu
		}
	}

	return core.StepResult{State: g.State()}
}

// simulate runs one tick of the world. The order of operations is a
// contract: collision and concealment use the post-movement position, and
// pickup collection uses that same position before the tick ends.
func (g *Game) simulate(in core.InputFrame) {
	g.tick++

	g.shake *= g.cfg.Effects.ShakeDecay
	if g.shake < 0.01 {
		g.shake = 0
	}

	// Movement: diagonals normalize to unit speed, not sqrt(2) times it.
	var dir core.Vec2
	if in.Has(core.ActionUp) {
		dir.Y--
	}
	if in.Has(core.ActionDown) {
		dir.Y++
	}
	if in.Has(core.ActionLeft) {
		dir.X--
	}
	if in.Has(core.ActionRight) {
		dir.X++
	}
	moving := dir.X != 0 || dir.Y != 0
	if moving {
		g.player = g.player.Add(dir.Normalized().Scale(g.cfg.Player.Speed))
		g.moveTicks++
		if g.cfg.Effects.FootstepTicks > 0 && g.moveTicks%g.cfg.Effects.FootstepTicks == 0 {
			g.notifier.Notify(EventStep)
		}
	} else {
		g.moveTicks = 0
	}

	r := g.cfg.Player.Radius
	g.player.X = core.ClampF(g.player.X, r, g.cfg.Arena.Width-r)
	g.player.Y = core.ClampF(g.player.Y, r, g.cfg.Arena.Height-r)

	g.trail.Record(g.player)

	// Obstacle sweep: concealment and lethality in one pass. Obstacle
	// contact kills even while concealed.
	hidden := false
	for _, ob := range g.obstacles {
		d := core.Dist(g.player, ob.Pos)
		if d < g.cfg.Obstacles.CollisionRadius {
			g.endRun()
			return
		}
		if d < g.cfg.Obstacles.HideRadius {
			hidden = true
		}
	}
	g.hidden = hidden
	if hidden && !g.wasHidden {
		g.notifier.Notify(EventConcealEnter)
	}
	g.wasHidden = hidden

	// Shadow collision: suppressed entirely while concealed, and inert until
	// both the grace window has passed and the trail has filled.
	if !hidden && g.tick > uint64(g.cfg.Shadow.GraceTicks) {
		if shadow, ok := g.trail.Shadow(); ok {
			if core.Dist(g.player, shadow) < g.cfg.Shadow.CatchScale*r {
				g.endRun()
				return
			}
		}
	}

	// Pickup collection.
	if g.hasPickup && core.Dist(g.player, g.pickup.Pos) < r+g.cfg.Pickup.Radius {
		g.score++
		g.notifier.Notify(EventCollect)
		g.particles.EmitBurst(g.rng, g.pickup.Pos, core.ColorBrightYellow,
			g.cfg.Effects.BurstCount, g.cfg.Effects.BurstSpeed)
		g.shake = g.cfg.Effects.ShakeBurst
		g.respawnPickup()
	}

	g.particles.Update(g.cfg.Effects.ParticleDecay)
}

// endRun transitions to PhaseGameOver. Idempotent: a second trigger within or
// across ticks is a no-op, so a tick where both the obstacle and shadow
// checks fire settles on one transition.
func (g *Game) endRun() {
	if g.phase != PhasePlaying {
		return
	}
	g.phase = PhaseGameOver
	g.finalScore = g.score
	g.shake = g.cfg.Effects.ShakeBurst
	g.notifier.Notify(EventGameOver)

	if g.finalScore > g.highScore {
		g.highScore = g.finalScore
		if g.scores != nil {
			// Best-effort persistence, the run result stands either way.
			_ = g.scores.SetHighScore(g.finalScore)
		}
	}

	g.requestEpitaph(g.finalScore)
}

// respawnPickup requests a replacement pickup from the spawner with a fresh
// identifier.
func (g *Game) respawnPickup() {
	g.pickup = PlacePickup(g.rng, g.cfg, g.obstacles, g.nextPickupID)
	g.nextPickupID++
	g.hasPickup = true
}

// loadHighScore refreshes the cached high score from the store.
func (g *Game) loadHighScore() {
	if g.scores == nil {
		return
	}
	if hs, err := g.scores.HighScore(); err == nil {
		g.highScore = hs
	}
}

// requestEpitaph asks the narrative provider for a line, tagged with the
// current run generation. The tick loop never blocks on the provider.
func (g *Game) requestEpitaph(score int) {
	if g.epitaphs == nil {
		g.epitaph = FallbackEpitaph
		g.epitaphPending = false
		return
	}
	g.epitaph = ""
	g.epitaphPending = true
	gen := g.runGen
	provider := g.epitaphs
	ch := g.epitaphCh
	go func() {
		line, err := provider.Epitaph(context.Background(), score)
		if err != nil || line == "" {
			line = FallbackEpitaph
		}
		ch <- epitaphResult{gen: gen, line: line}
	}()
}

// drainEpitaphs applies any resolved epitaph requests. Responses tagged with
// an earlier run generation are discarded so a stale line can never
// overwrite the current run's text.
func (g *Game) drainEpitaphs() {
	for {
		select {
		case res := <-g.epitaphCh:
			if res.gen != g.runGen {
				continue
			}
			g.epitaph = res.line
			g.epitaphPending = false
		default:
			return
		}
	}
}

// State returns the platform-facing game status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
	}
}
