package ai

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// systemPrompt frames every request: the bot is an English tutor for
// B2-C1 learners, expected to explain nuance rather than just translate.
const systemPrompt = `You are a professional English tutor for B2-C1 learners.
Your job is not just to translate but to explain nuance. The user values
brevity and precision.

If the user sends a word or phrase:
1. Give a direct translation into Russian.
2. Give 2-3 usage examples in context (business, casual, slang).
3. If it is an idiom, explain its origin or closest equivalent.
4. If there are synonyms, note how they differ in tone.

If the user asks "how do I say...":
1. Give the most natural variant (the native speaker way).
2. Give a more formal variant.
3. Give a slang variant if appropriate.

If the user sends a VOICE message:
- Listen to the pronunciation and grammar.
- Answer the user's question.
- Put a translation at the very end.
- If there are mistakes in the speech, correct them gently.`

// Gemini implements Generator on top of the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGemini creates a Gemini-backed generator.
func NewGemini(ctx context.Context, apiKey, model string, logger *zap.Logger) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key cannot be empty", ErrInvalidConfig)
	}
	if model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create client: %v", ErrInvalidConfig, err)
	}

	return &Gemini{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// GenerateText produces a tutor reply for a text message
func (g *Gemini) GenerateText(ctx context.Context, prompt string) (string, error) {
	return g.generate(ctx, genai.Text(prompt))
}

// GenerateFromVoice produces a tutor reply for a voice message
func (g *Gemini) GenerateFromVoice(ctx context.Context, prompt string, audio []byte, mime string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(audio, mime),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}
	return g.generate(ctx, contents)
}

func (g *Gemini) generate(ctx context.Context, contents []*genai.Content) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		g.logger.Error("Gemini API call failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", ErrEmptyResponse)
	}
	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", ErrContentBlocked
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: no text parts", ErrEmptyResponse)
	}

	return text, nil
}
