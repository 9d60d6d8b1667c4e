package handler

import (
	"context"
	"io"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText sends any non-command text to the tutor
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	if err := h.userRepo.EnsureUserExists(context.Background(), userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
	}

	_ = c.Notify(tele.Typing)

	reply, err := h.tutorService.Respond(context.Background(), userID, text)
	if err != nil {
		h.logger.Error("Failed to generate reply",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send("The tutor is unavailable right now. Please try again.")
	}

	return c.Send(reply, replyMarkup())
}

// handleVoice forwards voice messages to the tutor for pronunciation feedback
func (h *Handler) handleVoice(c tele.Context) error {
	userID := c.Sender().ID
	voice := c.Message().Voice
	if voice == nil {
		return nil
	}

	if err := h.userRepo.EnsureUserExists(context.Background(), userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
	}

	_ = c.Notify(tele.Typing)

	rc, err := h.bot.File(&voice.File)
	if err != nil {
		h.logger.Error("Failed to download voice message",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send("Could not hear that one. Please try again.")
	}
	defer rc.Close()

	audio, err := io.ReadAll(rc)
	if err != nil {
		h.logger.Error("Failed to read voice message", zap.Error(err))
		return c.Send("Could not hear that one. Please try again.")
	}

	mime := voice.MIME
	if mime == "" {
		mime = "audio/ogg"
	}

	reply, err := h.tutorService.RespondVoice(context.Background(), userID, audio, mime)
	if err != nil {
		h.logger.Error("Failed to generate voice reply",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send("The tutor is unavailable right now. Please try again.")
	}

	return c.Send("🗣 Reply to your voice message:\n\n"+reply, replyMarkup())
}
