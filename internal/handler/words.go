package handler

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if err := h.userRepo.EnsureUserExists(context.Background(), userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	return c.Send(
		"Yo! I'm online.\n" +
			"🔹 Send me a word — I'll translate and explain it.\n" +
			"🔹 Press 🎤 and speak — I'll check your accent and answer.\n" +
			"🔹 Press 💾 under a reply to add the word to your review list.\n\n" +
			"/mywords — your saved words\n" +
			"/delete <word> — remove a word",
	)
}

// handleMyWords handles /mywords command
func (h *Handler) handleMyWords(c tele.Context) error {
	userID := c.Sender().ID

	words, err := h.wordService.ListWords(context.Background(), userID)
	if err != nil {
		h.logger.Error("Failed to list words", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Could not load your words. Please try again later.")
	}

	if len(words) == 0 {
		return c.Send("Your list is empty. Send me a word and press 💾 to save it.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📚 Your words (%d):\n\n", len(words))
	for i, w := range words {
		fmt.Fprintf(&b, "%d. %s — %s (stage %d)\n", i+1, w.Word, w.Translation, w.Stage)
	}

	return c.Send(b.String())
}

// handleDelete handles /delete <word>
func (h *Handler) handleDelete(c tele.Context) error {
	userID := c.Sender().ID
	word := strings.TrimSpace(c.Message().Payload)

	if word == "" {
		return c.Send("Usage: /delete <word>")
	}

	removed, err := h.wordService.DeleteWord(context.Background(), userID, word)
	if err != nil {
		h.logger.Error("Failed to delete word",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("word", word),
		)
		return c.Send("Could not delete the word. Please try again later.")
	}

	if !removed {
		return c.Send(fmt.Sprintf("%q is not in your list.", word))
	}

	h.logger.Info("Word deleted",
		zap.Int64("user_id", userID),
		zap.String("word", word),
	)
	return c.Send(fmt.Sprintf("🗑 %q removed.", word))
}
