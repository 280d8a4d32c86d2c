package stalker

import (
	"math/rand"
	"testing"

	"github.com/sakhare12/selfstalker/internal/config"
	"github.com/sakhare12/selfstalker/internal/core"
)

func TestPlacePickupInsideInset(t *testing.T) {
	cfg := config.DefaultGameConfig()
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 50; i++ {
		p := PlacePickup(rng, cfg, nil, uint64(i))
		if p.ID != uint64(i) {
			t.Fatalf("pickup ID = %d, want %d", p.ID, i)
		}
		inset := cfg.Pickup.EdgeInset
		if p.Pos.X < inset || p.Pos.X > cfg.Arena.Width-inset ||
			p.Pos.Y < inset || p.Pos.Y > cfg.Arena.Height-inset {
			t.Fatalf("pickup at %v outside inset box", p.Pos)
		}
	}
}

func TestPlacePickupClearsObstacles(t *testing.T) {
	cfg := config.DefaultGameConfig()
	rng := rand.New(rand.NewSource(11))

	// A single obstacle in the middle leaves plenty of clear space, so
	// placement must always succeed within the retry budget.
	obstacles := []Obstacle{{Pos: core.Vec2{X: cfg.Arena.Width / 2, Y: cfg.Arena.Height / 2}}}
	for i := 0; i < 50; i++ {
		p := PlacePickup(rng, cfg, obstacles, uint64(i))
		if d := core.Dist(p.Pos, obstacles[0].Pos); d < cfg.Pickup.MinObstacleDist {
			t.Fatalf("pickup at %v only %g from obstacle, want >= %g",
				p.Pos, d, cfg.Pickup.MinObstacleDist)
		}
	}
}

func TestPlacePickupExhaustedBudgetStillPlaces(t *testing.T) {
	cfg := config.DefaultGameConfig()
	rng := rand.New(rand.NewSource(11))

	// An absurd clearance requirement makes every sample fail. The last
	// sample is accepted anyway so the arena never lacks a pickup.
	cfg.Pickup.MinObstacleDist = cfg.Arena.Width * 10
	obstacles := []Obstacle{{Pos: core.Vec2{X: 100, Y: 100}}}

	p := PlacePickup(rng, cfg, obstacles, 3)
	inset := cfg.Pickup.EdgeInset
	if p.Pos.X < inset || p.Pos.X > cfg.Arena.Width-inset ||
		p.Pos.Y < inset || p.Pos.Y > cfg.Arena.Height-inset {
		t.Fatalf("fallback pickup at %v outside inset box", p.Pos)
	}
}
