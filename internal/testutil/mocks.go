package testutil

import (
	"context"
	"time"

	"github.com/ReshadVerse/english-bot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWordRepository is a mock for repository.WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) AddWord(ctx context.Context, userID int64, word, translation string) (bool, error) {
	args := m.Called(ctx, userID, word, translation)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordRepository) ListWords(ctx context.Context, userID int64) ([]domain.WordEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordEntry), args.Error(1)
}

func (m *MockWordRepository) DueWords(ctx context.Context, now time.Time) ([]domain.WordEntry, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordEntry), args.Error(1)
}

func (m *MockWordRepository) UpdateStage(ctx context.Context, id int64, stage int) error {
	args := m.Called(ctx, id, stage)
	return args.Error(0)
}

func (m *MockWordRepository) DeleteByName(ctx context.Context, userID int64, word string) (bool, error) {
	args := m.Called(ctx, userID, word)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWordRepository) GetByID(ctx context.Context, id int64) (*domain.WordEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WordEntry), args.Error(1)
}

// MockUserRepository is a mock for repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureUserExists(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockGenerator is a mock for ai.Generator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockGenerator) GenerateFromVoice(ctx context.Context, prompt string, audio []byte, mime string) (string, error) {
	args := m.Called(ctx, prompt, audio, mime)
	return args.String(0), args.Error(1)
}

// MockSynthesizer is a mock for tts.Synthesizer
type MockSynthesizer struct {
	mock.Mock
}

func (m *MockSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockReminderSender is a mock for dispatcher.ReminderSender
type MockReminderSender struct {
	mock.Mock
}

func (m *MockReminderSender) SendReminder(entry domain.WordEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}
