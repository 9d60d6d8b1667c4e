package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/ReshadVerse/english-bot/internal/domain"
	"github.com/ReshadVerse/english-bot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWordService_SaveNewWord(t *testing.T) {
	ctx := context.Background()

	t.Run("saves a new word with generated translation", func(t *testing.T) {
		repo := new(testutil.MockWordRepository)
		gen := new(testutil.MockGenerator)
		svc := NewWordService(repo, gen)

		gen.On("GenerateText", ctx, mock.MatchedBy(func(p string) bool {
			return strings.Contains(p, "ubiquitous")
		})).Return("повсеместный\n", nil)
		repo.On("AddWord", ctx, int64(123), "ubiquitous", "повсеместный").Return(true, nil)

		translation, added, err := svc.SaveNewWord(ctx, 123, "ubiquitous")

		assert.NoError(t, err)
		assert.True(t, added)
		assert.Equal(t, "повсеместный", translation)
		repo.AssertExpectations(t)
		gen.AssertExpectations(t)
	})

	t.Run("duplicate word is reported without mutation", func(t *testing.T) {
		repo := new(testutil.MockWordRepository)
		gen := new(testutil.MockGenerator)
		svc := NewWordService(repo, gen)

		gen.On("GenerateText", ctx, mock.Anything).Return("другой перевод", nil)
		repo.On("AddWord", ctx, int64(123), "ubiquitous", "другой перевод").Return(false, nil)

		_, added, err := svc.SaveNewWord(ctx, 123, "ubiquitous")

		assert.NoError(t, err)
		assert.False(t, added)
		repo.AssertExpectations(t)
	})

	t.Run("failed generation never creates an entry", func(t *testing.T) {
		repo := new(testutil.MockWordRepository)
		gen := new(testutil.MockGenerator)
		svc := NewWordService(repo, gen)

		gen.On("GenerateText", ctx, mock.Anything).Return("", fmt.Errorf("model unavailable"))

		_, added, err := svc.SaveNewWord(ctx, 123, "ubiquitous")

		assert.Error(t, err)
		assert.False(t, added)
		repo.AssertNotCalled(t, "AddWord", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty word is rejected", func(t *testing.T) {
		repo := new(testutil.MockWordRepository)
		gen := new(testutil.MockGenerator)
		svc := NewWordService(repo, gen)

		_, added, err := svc.SaveNewWord(ctx, 123, "   ")

		assert.Error(t, err)
		assert.False(t, added)
		gen.AssertNotCalled(t, "GenerateText", mock.Anything, mock.Anything)
	})
}

func TestWordService_ApplyReview(t *testing.T) {
	ctx := context.Background()

	t.Run("remembered moves any stage to 2", func(t *testing.T) {
		for _, stage := range []int{1, 2, 3, 4, 5} {
			repo := new(testutil.MockWordRepository)
			svc := NewWordService(repo, new(testutil.MockGenerator))

			entry := testutil.NewTestEntry(7, 123, "ubiquitous", "повсеместный")
			entry.Stage = stage

			repo.On("GetByID", ctx, int64(7)).Return(entry, nil)
			repo.On("UpdateStage", ctx, int64(7), 2).Return(nil)

			got, err := svc.ApplyReview(ctx, 7, domain.Remembered)

			assert.NoError(t, err)
			assert.Equal(t, "ubiquitous", got.Word)
			repo.AssertExpectations(t)
		}
	})

	t.Run("forgotten resets any stage to 1", func(t *testing.T) {
		repo := new(testutil.MockWordRepository)
		svc := NewWordService(repo, new(testutil.MockGenerator))

		entry := testutil.NewTestEntry(7, 123, "ubiquitous", "повсеместный")
		entry.Stage = 5

		repo.On("GetByID", ctx, int64(7)).Return(entry, nil)
		repo.On("UpdateStage", ctx, int64(7), 1).Return(nil)

		got, err := svc.ApplyReview(ctx, 7, domain.Forgotten)

		assert.NoError(t, err)
		assert.NotNil(t, got)
		repo.AssertExpectations(t)
	})

	t.Run("vanished entry mutates nothing", func(t *testing.T) {
		repo := new(testutil.MockWordRepository)
		svc := NewWordService(repo, new(testutil.MockGenerator))

		repo.On("GetByID", ctx, int64(7)).Return(nil, nil)

		got, err := svc.ApplyReview(ctx, 7, domain.Remembered)

		assert.NoError(t, err)
		assert.Nil(t, got)
		repo.AssertNotCalled(t, "UpdateStage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage error propagates", func(t *testing.T) {
		repo := new(testutil.MockWordRepository)
		svc := NewWordService(repo, new(testutil.MockGenerator))

		repo.On("GetByID", ctx, int64(7)).Return(nil, fmt.Errorf("disk on fire"))

		got, err := svc.ApplyReview(ctx, 7, domain.Remembered)

		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestWordService_DeleteWord(t *testing.T) {
	ctx := context.Background()

	t.Run("removes existing word", func(t *testing.T) {
		repo := new(testutil.MockWordRepository)
		svc := NewWordService(repo, new(testutil.MockGenerator))

		repo.On("DeleteByName", ctx, int64(123), "ubiquitous").Return(true, nil)

		removed, err := svc.DeleteWord(ctx, 123, " ubiquitous ")

		assert.NoError(t, err)
		assert.True(t, removed)
		repo.AssertExpectations(t)
	})

	t.Run("missing word reports false", func(t *testing.T) {
		repo := new(testutil.MockWordRepository)
		svc := NewWordService(repo, new(testutil.MockGenerator))

		repo.On("DeleteByName", ctx, int64(123), "ghost").Return(false, nil)

		removed, err := svc.DeleteWord(ctx, 123, "ghost")

		assert.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("empty word is rejected", func(t *testing.T) {
		repo := new(testutil.MockWordRepository)
		svc := NewWordService(repo, new(testutil.MockGenerator))

		_, err := svc.DeleteWord(ctx, 123, "")

		assert.Error(t, err)
		repo.AssertNotCalled(t, "DeleteByName", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestWordService_StopReviewing(t *testing.T) {
	ctx := context.Background()

	repo := new(testutil.MockWordRepository)
	svc := NewWordService(repo, new(testutil.MockGenerator))

	repo.On("DeleteByID", ctx, int64(7)).Return(nil).Twice()

	// idempotent: a second call on the same id is not an error
	assert.NoError(t, svc.StopReviewing(ctx, 7))
	assert.NoError(t, svc.StopReviewing(ctx, 7))
	repo.AssertExpectations(t)
}
