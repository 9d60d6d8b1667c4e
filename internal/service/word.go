package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ReshadVerse/english-bot/internal/ai"
	"github.com/ReshadVerse/english-bot/internal/domain"
	"github.com/ReshadVerse/english-bot/internal/repository"
)

// WordService handles the word list and its review flow
type WordService struct {
	wordRepo  repository.WordRepository
	generator ai.Generator
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository, generator ai.Generator) *WordService {
	return &WordService{
		wordRepo:  wordRepo,
		generator: generator,
	}
}

// SaveNewWord generates a concise translation for the word and stores it at
// stage 1. A failed generation never creates an entry. Returns the stored
// translation and whether a new entry was created (false means the word was
// already saved; the original translation is kept untouched).
func (s *WordService) SaveNewWord(ctx context.Context, userID int64, word string) (string, bool, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return "", false, fmt.Errorf("word cannot be empty")
	}

	prompt := fmt.Sprintf(
		"Translate the English word or phrase %q into Russian. Reply with only the translation, no explanations.",
		word,
	)
	translation, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return "", false, fmt.Errorf("generate translation: %w", err)
	}
	translation = strings.TrimSpace(translation)

	added, err := s.wordRepo.AddWord(ctx, userID, word, translation)
	if err != nil {
		return "", false, err
	}
	return translation, added, nil
}

// ListWords returns the user's saved words, most recently added first
func (s *WordService) ListWords(ctx context.Context, userID int64) ([]domain.WordEntry, error) {
	return s.wordRepo.ListWords(ctx, userID)
}

// ApplyReview records a review outcome for an entry. It reads the entry
// before mutating it so the caller can show the pre-update word and
// translation in the feedback message. A nil entry means the id is gone
// (already deleted); nothing is mutated in that case.
func (s *WordService) ApplyReview(ctx context.Context, id int64, outcome domain.ReviewOutcome) (*domain.WordEntry, error) {
	entry, err := s.wordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	if err := s.wordRepo.UpdateStage(ctx, id, outcome.TargetStage()); err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteWord removes a user's entry by name, reporting whether it existed
func (s *WordService) DeleteWord(ctx context.Context, userID int64, word string) (bool, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return false, fmt.Errorf("word cannot be empty")
	}
	return s.wordRepo.DeleteByName(ctx, userID, word)
}

// StopReviewing removes an entry by id; repeated calls are harmless
func (s *WordService) StopReviewing(ctx context.Context, id int64) error {
	return s.wordRepo.DeleteByID(ctx, id)
}
