package testutil

import (
	"time"

	"github.com/ReshadVerse/english-bot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestEntry creates a word entry at stage 1, due in one day
func NewTestEntry(id, userID int64, word, translation string) *domain.WordEntry {
	now := time.Now()
	return &domain.WordEntry{
		ID:          id,
		UserID:      userID,
		Word:        word,
		Translation: translation,
		Stage:       domain.InitialStage,
		NextReview:  domain.NextReview(domain.InitialStage, now),
		CreatedAt:   now,
	}
}

// NewDueEntry creates a word entry whose review time has already passed
func NewDueEntry(id, userID int64, word, translation string, stage int) domain.WordEntry {
	now := time.Now()
	return domain.WordEntry{
		ID:          id,
		UserID:      userID,
		Word:        word,
		Translation: translation,
		Stage:       stage,
		NextReview:  now.Add(-time.Hour),
		CreatedAt:   now.AddDate(0, 0, -2),
	}
}
