package domain

import "time"

// WordEntry is one user's saved word with its spaced-repetition state
type WordEntry struct {
	ID          int64
	UserID      int64
	Word        string
	Translation string
	Stage       int
	NextReview  time.Time
	CreatedAt   time.Time
}

// Due reports whether the entry should be offered for review at the given time
func (w WordEntry) Due(now time.Time) bool {
	return !w.NextReview.After(now)
}
