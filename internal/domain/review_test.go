package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInterval(t *testing.T) {
	tests := []struct {
		name     string
		stage    int
		expected time.Duration
	}{
		{"stage 1", 1, 24 * time.Hour},
		{"stage 2", 2, 3 * 24 * time.Hour},
		{"stage 3", 3, 7 * 24 * time.Hour},
		{"stage 4", 4, 14 * 24 * time.Hour},
		{"stage 5", 5, 30 * 24 * time.Hour},
		{"stage 0 falls back to default", 0, 30 * 24 * time.Hour},
		{"stage 6 falls back to default", 6, 30 * 24 * time.Hour},
		{"large stage falls back to default", 42, 30 * 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Interval(tt.stage))
		})
	}
}

func TestReviewOutcome_TargetStage(t *testing.T) {
	// Remembered lands on stage 2 from any stage, never stage+1
	assert.Equal(t, 2, Remembered.TargetStage())

	// Forgotten always resets to stage 1
	assert.Equal(t, 1, Forgotten.TargetStage())
}

func TestNextReview(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, now.Add(24*time.Hour), NextReview(1, now))
	assert.Equal(t, now.Add(3*24*time.Hour), NextReview(Remembered.TargetStage(), now))
	assert.Equal(t, now.Add(24*time.Hour), NextReview(Forgotten.TargetStage(), now))
	assert.Equal(t, now.Add(30*24*time.Hour), NextReview(9, now))
}

func TestWordEntry_Due(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		nextReview time.Time
		due        bool
	}{
		{"review in the past", now.Add(-time.Hour), true},
		{"review exactly now", now, true},
		{"review in the future", now.Add(time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := WordEntry{NextReview: tt.nextReview}
			assert.Equal(t, tt.due, w.Due(now))
		})
	}
}
