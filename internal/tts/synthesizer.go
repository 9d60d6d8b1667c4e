package tts

import (
	"context"
	"errors"
)

// ErrSynthesisFailed is returned when the provider cannot produce audio.
var ErrSynthesisFailed = errors.New("speech synthesis failed")

// Synthesizer converts text to audio.
type Synthesizer interface {
	// Synthesize returns encoded audio (MP3) for the given text.
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
