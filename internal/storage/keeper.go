package storage

import (
	"io"

	"github.com/charmbracelet/log"
)

// ScoreStore is the persistence a Keeper needs. *Store implements it.
type ScoreStore interface {
	SaveScore(entry ScoreEntry) (int64, error)
	HighScore(modeID string) (int, error)
	RecordHighScore(modeID string, score int) (bool, error)
}

// Keeper tracks the best score of one mode for a play session.
// Storage problems never stop the game: they are logged and the keeper
// carries on with what it has in memory. A nil store keeps scores in memory
// only.
type Keeper struct {
	store  ScoreStore
	modeID string
	logger *log.Logger
	best   int
}

// NewKeeper loads the stored best score for modeID. An unreadable store
// starts from 0.
func NewKeeper(store ScoreStore, modeID string, logger *log.Logger) *Keeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	k := &Keeper{store: store, modeID: modeID, logger: logger}

	if store == nil {
		return k
	}
	best, err := store.HighScore(modeID)
	if err != nil {
		logger.Warn("cannot load high score", "mode", modeID, "error", err)
		return k
	}
	k.best = best
	return k
}

// Best returns the best score known to this keeper.
func (k *Keeper) Best() int {
	return k.best
}

// Submit records a finished game and reports whether it set a new best.
func (k *Keeper) Submit(score, length int, outcome string) bool {
	improved := score > k.best
	if improved {
		k.best = score
	}
	if k.store == nil {
		return improved
	}

	if _, err := k.store.SaveScore(ScoreEntry{
		ModeID:  k.modeID,
		Score:   score,
		Length:  length,
		Outcome: outcome,
	}); err != nil {
		k.logger.Warn("cannot save score", "mode", k.modeID, "score", score, "error", err)
	}

	if improved {
		if _, err := k.store.RecordHighScore(k.modeID, score); err != nil {
			k.logger.Warn("cannot save high score", "mode", k.modeID, "score", score, "error", err)
		} else {
			k.logger.Info("new high score", "mode", k.modeID, "score", score)
		}
	}
	return improved
}
