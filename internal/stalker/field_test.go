package stalker

import (
	"math/rand"
	"testing"

	"github.com/sakhare12/selfstalker/internal/config"
	"github.com/sakhare12/selfstalker/internal/core"
)

func TestGenerateFieldRespectsKeepOut(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Obstacles.Density = 1.0 // Every eligible cell becomes an obstacle
	spawn := core.Vec2{X: cfg.Arena.Width / 2, Y: cfg.Arena.Height / 2}

	field := GenerateField(rand.New(rand.NewSource(7)), cfg, spawn)
	if len(field) == 0 {
		t.Fatal("density 1.0 should produce obstacles")
	}

	// Jitter can move an obstacle slightly toward spawn, but no further
	// than the jitter range past the keep-out boundary.
	minAllowed := cfg.Obstacles.SpawnKeepOut - 2*cfg.Obstacles.Jitter
	for _, ob := range field {
		if d := core.Dist(ob.Pos, spawn); d < minAllowed {
			t.Errorf("obstacle at %v is %g from spawn, keep-out is %g",
				ob.Pos, d, cfg.Obstacles.SpawnKeepOut)
		}
	}
}

func TestGenerateFieldBorderStaysEmpty(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Obstacles.Density = 1.0
	cfg.Obstacles.SpawnKeepOut = 0
	spawn := core.Vec2{X: -1000, Y: -1000} // Keep-out never triggers

	field := GenerateField(rand.New(rand.NewSource(7)), cfg, spawn)

	cell := cfg.Obstacles.CellSize
	maxX := (float64(int(cfg.Arena.Width/cell))-1)*cell + cfg.Obstacles.Jitter
	maxY := (float64(int(cfg.Arena.Height/cell))-1)*cell + cfg.Obstacles.Jitter
	for _, ob := range field {
		if ob.Pos.X < cell-cfg.Obstacles.Jitter || ob.Pos.X > maxX ||
			ob.Pos.Y < cell-cfg.Obstacles.Jitter || ob.Pos.Y > maxY {
			t.Errorf("obstacle at %v lies in the border band", ob.Pos)
		}
	}
}

func TestGenerateFieldZeroDensity(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Obstacles.Density = 0
	spawn := core.Vec2{X: cfg.Arena.Width / 2, Y: cfg.Arena.Height / 2}

	if field := GenerateField(rand.New(rand.NewSource(7)), cfg, spawn); len(field) != 0 {
		t.Errorf("density 0 produced %d obstacles", len(field))
	}
}

func TestGenerateFieldDeterministic(t *testing.T) {
	cfg := config.DefaultGameConfig()
	spawn := core.Vec2{X: cfg.Arena.Width / 2, Y: cfg.Arena.Height / 2}

	a := GenerateField(rand.New(rand.NewSource(42)), cfg, spawn)
	b := GenerateField(rand.New(rand.NewSource(42)), cfg, spawn)

	if len(a) != len(b) {
		t.Fatalf("same seed produced %d vs %d obstacles", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("obstacle %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestGenerateFieldSymbolsFromSet(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Obstacles.Density = 1.0
	field := GenerateField(rand.New(rand.NewSource(3)), cfg, core.Vec2{})

	allowed := make(map[rune]bool, len(obstacleSymbols))
	for _, r := range obstacleSymbols {
		allowed[r] = true
	}
	for _, ob := range field {
		if !allowed[ob.Symbol] {
			t.Errorf("obstacle symbol %q not in the symbol set", ob.Symbol)
		}
	}
}
