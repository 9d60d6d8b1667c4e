package ai

import (
	"context"
	"errors"
)

// Common errors returned by the ai package
var (
	// ErrGenerationFailed is returned when the model call fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate response")

	// ErrEmptyResponse is returned when the model returns no usable text
	ErrEmptyResponse = errors.New("empty response from language model")

	// ErrContentBlocked is returned when the model blocks the content via safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// Generator is the boundary between the bot and the language-model service.
// The bot treats its output as an opaque string.
type Generator interface {
	// GenerateText produces a tutor reply for a text message.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// GenerateFromVoice produces a tutor reply for a voice message.
	// audio is the raw voice payload, mime its content type (e.g. "audio/ogg").
	GenerateFromVoice(ctx context.Context, prompt string, audio []byte, mime string) (string, error)
}
