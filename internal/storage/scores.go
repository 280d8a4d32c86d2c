package storage

// GameScores binds a Store to a single game ID, presenting the narrow
// high-score interface the engine consumes. Every new high is recorded as a
// fresh row; the all-time best is the MAX over them, so the score history
// stays queryable for the scoreboard.
type GameScores struct {
	store  *Store
	gameID string
}

// ScoresFor returns a per-game view of the store.
func (s *Store) ScoresFor(gameID string) *GameScores {
	return &GameScores{store: s, gameID: gameID}
}

// HighScore returns the all-time best score for the game.
func (g *GameScores) HighScore() (int, error) {
	return g.store.HighScore(g.gameID)
}

// SetHighScore records a new best score.
func (g *GameScores) SetHighScore(score int) error {
	_, err := g.store.SaveScore(g.gameID, score)
	return err
}
