package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ReshadVerse/english-bot/internal/ai"
	"github.com/ReshadVerse/english-bot/internal/domain"
	"github.com/ReshadVerse/english-bot/internal/tts"

	"go.uber.org/zap"
)

// Replies longer than this are cut before synthesis.
const maxSpeechRunes = 1000

const voicePrompt = "Listen to this voice message and answer it. " +
	"If it is a question asked in English, answer in English."

// TutorService produces tutor replies and keeps the last exchange per user
// so the follow-up Listen and Save actions have something to refer to.
type TutorService struct {
	generator   ai.Generator
	synthesizer tts.Synthesizer
	logger      *zap.Logger

	sessions   map[int64]domain.Exchange
	sessionMux sync.RWMutex
}

// NewTutorService creates a new tutor service
func NewTutorService(generator ai.Generator, synthesizer tts.Synthesizer, logger *zap.Logger) *TutorService {
	return &TutorService{
		generator:   generator,
		synthesizer: synthesizer,
		logger:      logger,
		sessions:    make(map[int64]domain.Exchange),
	}
}

// Respond generates a tutor reply for a text message and remembers the exchange
func (s *TutorService) Respond(ctx context.Context, userID int64, text string) (string, error) {
	reply, err := s.generator.GenerateText(ctx, text)
	if err != nil {
		return "", err
	}

	s.setExchange(userID, domain.Exchange{Input: text, Reply: reply})
	return reply, nil
}

// RespondVoice generates a tutor reply for a voice message. Voice exchanges
// carry no input word, so the Save action has nothing to store for them.
func (s *TutorService) RespondVoice(ctx context.Context, userID int64, audio []byte, mime string) (string, error) {
	reply, err := s.generator.GenerateFromVoice(ctx, voicePrompt, audio, mime)
	if err != nil {
		return "", err
	}

	s.setExchange(userID, domain.Exchange{Reply: reply})
	return reply, nil
}

// LastExchange returns the user's most recent exchange, if any
func (s *TutorService) LastExchange(userID int64) (domain.Exchange, bool) {
	s.sessionMux.RLock()
	defer s.sessionMux.RUnlock()

	ex, ok := s.sessions[userID]
	return ex, ok
}

// Pronounce synthesizes speech for the user's last tutor reply
func (s *TutorService) Pronounce(ctx context.Context, userID int64) ([]byte, error) {
	ex, ok := s.LastExchange(userID)
	if !ok {
		return nil, fmt.Errorf("nothing to pronounce")
	}

	text := stripMarkdown(ex.Reply)
	if runes := []rune(text); len(runes) > maxSpeechRunes {
		text = string(runes[:maxSpeechRunes])
	}

	return s.synthesizer.Synthesize(ctx, text)
}

func (s *TutorService) setExchange(userID int64, ex domain.Exchange) {
	s.sessionMux.Lock()
	defer s.sessionMux.Unlock()
	s.sessions[userID] = ex
}

// stripMarkdown drops formatting markers before synthesis so they are not
// read out loud.
func stripMarkdown(text string) string {
	replacer := strings.NewReplacer("*", "", "_", "", "`", "")
	return strings.TrimSpace(replacer.Replace(text))
}
