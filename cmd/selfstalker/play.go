package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sakhare12/selfstalker/internal/config"
	"github.com/sakhare12/selfstalker/internal/core"
	"github.com/sakhare12/selfstalker/internal/narrative"
	"github.com/sakhare12/selfstalker/internal/platform/tui"
	"github.com/sakhare12/selfstalker/internal/stalker"
	"github.com/sakhare12/selfstalker/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a game session in the current terminal.

Controls:
  WASD/Arrows - Move
  Enter       - Start a run
  P           - Pause
  R           - Restart (after game over)
  B/Esc       - Back to menu
  Q/Ctrl+C    - Quit

Difficulty presets:
  easy   - Slower shadow, sparser obstacles
  normal - Default tuning
  hard   - Faster shadow, denser field

Examples:
  selfstalker play
  selfstalker play --difficulty easy
  selfstalker play --config ./my-config.yaml
  selfstalker play --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&gameCfg, config.DifficultyPreset(flagDifficulty))
	}
	if err := gameCfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	opts := []stalker.Option{
		stalker.WithEpitaphProvider(narrative.NewStaticProvider(rt.Seed)),
		stalker.WithNotifier(tui.NewBellNotifier(os.Stderr)),
	}
	if store != nil {
		opts = append(opts, stalker.WithScoreStore(store.ScoresFor(stalker.GameID)))
	}
	game := stalker.New(gameCfg, opts...)

	runErr := tui.Run(game, rt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
