package session

// HighScoreStore loads and saves the best score seen.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// MemoryStore keeps the high score for the life of the process.
type MemoryStore struct {
	best int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// LoadHighScore returns the stored score.
func (m *MemoryStore) LoadHighScore() (int, error) {
	return m.best, nil
}

// SaveHighScore stores score if it beats the current best.
func (m *MemoryStore) SaveHighScore(score int) error {
	if score > m.best {
		m.best = score
	}
	return nil
}
