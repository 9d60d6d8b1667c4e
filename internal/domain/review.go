package domain

import "time"

// Review intervals per stage, in days. Stages outside the table
// (including 0 and everything above 5) fall back to defaultIntervalDays.
var intervalDays = map[int]int{
	1: 1,
	2: 3,
	3: 7,
	4: 14,
	5: 30,
}

const defaultIntervalDays = 30

// InitialStage is assigned to every newly saved word.
const InitialStage = 1

// ReviewOutcome is the user's answer to a review prompt.
type ReviewOutcome int

const (
	// Remembered always moves the word to stage 2, regardless of the
	// current stage. Not stage+1.
	Remembered ReviewOutcome = iota
	// Forgotten resets the word to stage 1.
	Forgotten
)

// TargetStage returns the stage an entry moves to after this outcome.
// Both outcomes drive toward fixed stages, not relative ones.
func (o ReviewOutcome) TargetStage() int {
	if o == Forgotten {
		return 1
	}
	return 2
}

func (o ReviewOutcome) String() string {
	if o == Forgotten {
		return "forgotten"
	}
	return "remembered"
}

// Interval returns the review interval for a stage.
func Interval(stage int) time.Duration {
	days, ok := intervalDays[stage]
	if !ok {
		days = defaultIntervalDays
	}
	return time.Duration(days) * 24 * time.Hour
}

// NextReview computes when a word at the given stage comes due again.
func NextReview(stage int, now time.Time) time.Time {
	return now.Add(Interval(stage))
}
