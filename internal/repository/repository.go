package repository

import (
	"context"
	"time"

	"github.com/ReshadVerse/english-bot/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	EnsureUserExists(ctx context.Context, userID int64) error
}

// WordRepository defines word data operations
type WordRepository interface {
	// AddWord inserts a new entry at stage 1 due in one day.
	// Returns false without mutation if (userID, word) already exists.
	AddWord(ctx context.Context, userID int64, word, translation string) (bool, error)

	// ListWords returns all of a user's entries, most recently added first.
	ListWords(ctx context.Context, userID int64) ([]domain.WordEntry, error)

	// DueWords returns every entry across all users with NextReview <= now.
	DueWords(ctx context.Context, now time.Time) ([]domain.WordEntry, error)

	// UpdateStage sets the stage and recomputes NextReview from it.
	// Unknown ids are a silent no-op.
	UpdateStage(ctx context.Context, id int64, stage int) error

	// DeleteByName removes a user's entry and reports whether a row was removed.
	DeleteByName(ctx context.Context, userID int64, word string) (bool, error)

	// DeleteByID removes an entry; absent ids are not an error.
	DeleteByID(ctx context.Context, id int64) error

	// GetByID returns the entry or nil when absent.
	GetByID(ctx context.Context, id int64) (*domain.WordEntry, error)
}
