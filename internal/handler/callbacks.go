package handler

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/ReshadVerse/english-bot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Info("Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Handle specific button callbacks by Unique first
	switch callback.Unique {
	case "tts_last":
		return h.handleListen(c)
	case "save_last":
		return h.handleSave(c)
	}

	// If Unique is empty, try to handle by Data
	if callback.Unique == "" {
		switch data {
		case "tts_last":
			return h.handleListen(c)
		case "save_last":
			return h.handleSave(c)
		}
	}

	// Handle by Data prefix (dynamic review buttons)
	switch {
	case strings.HasPrefix(data, "remember_"):
		return h.handleReview(c, data, "remember_", domain.Remembered)
	case strings.HasPrefix(data, "forgot_"):
		return h.handleReview(c, data, "forgot_", domain.Forgotten)
	case strings.HasPrefix(data, "stop_"):
		return h.handleStopReview(c, data)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleListen voices the user's last tutor reply
func (h *Handler) handleListen(c tele.Context) error {
	userID := c.Sender().ID

	if _, ok := h.tutorService.LastExchange(userID); !ok {
		return c.Respond(&tele.CallbackResponse{
			Text:      "Nothing to pronounce yet.",
			ShowAlert: true,
		})
	}

	_ = c.Notify(tele.RecordingAudio)

	audio, err := h.tutorService.Pronounce(context.Background(), userID)
	if err != nil {
		h.logger.Error("Failed to synthesize speech",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Speech synthesis failed, try again."})
	}

	voice := &tele.Voice{File: tele.FromReader(bytes.NewReader(audio)), MIME: "audio/mpeg"}
	if err := c.Send(voice); err != nil {
		h.logger.Error("Failed to send voice message",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Could not send the audio."})
	}

	return c.Respond()
}

// handleSave stores the word from the user's last exchange into the review list
func (h *Handler) handleSave(c tele.Context) error {
	userID := c.Sender().ID

	ex, ok := h.tutorService.LastExchange(userID)
	if !ok || ex.Input == "" {
		return c.Respond(&tele.CallbackResponse{
			Text:      "Nothing to save — send me a word first.",
			ShowAlert: true,
		})
	}

	translation, added, err := h.wordService.SaveNewWord(context.Background(), userID, ex.Input)
	if err != nil {
		h.logger.Error("Failed to save word",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("word", ex.Input),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Could not save the word, try again."})
	}

	if !added {
		return c.Respond(&tele.CallbackResponse{
			Text: fmt.Sprintf("%q is already in your list.", ex.Input),
		})
	}

	h.logger.Info("Word saved",
		zap.Int64("user_id", userID),
		zap.String("word", ex.Input),
	)

	if err := c.Send(fmt.Sprintf("💾 Saved: %s — %s\nFirst review tomorrow.", ex.Input, translation)); err != nil {
		h.logger.Warn("Failed to confirm save", zap.Error(err))
	}
	return c.Respond()
}

// handleReview applies a remembered/forgotten answer from a reminder keyboard
func (h *Handler) handleReview(c tele.Context, data, prefix string, outcome domain.ReviewOutcome) error {
	userID := c.Sender().ID

	id, err := strconv.ParseInt(strings.TrimPrefix(data, prefix), 10, 64)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Broken button."})
	}

	entry, err := h.wordService.ApplyReview(context.Background(), id, outcome)
	if err != nil {
		h.logger.Error("Failed to apply review",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("word_id", id),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Something went wrong, try again."})
	}

	if entry == nil {
		return c.Respond(&tele.CallbackResponse{Text: "This word is no longer in your list."})
	}

	days := int(domain.Interval(outcome.TargetStage()).Hours() / 24)
	var text string
	if outcome == domain.Remembered {
		text = fmt.Sprintf("✅ %s — %s\nNext review in %d days.", entry.Word, entry.Translation, days)
	} else {
		text = fmt.Sprintf("🔁 %s — %s\nBack to the start, see you in %d day.", entry.Word, entry.Translation, days)
	}

	if err := c.Edit(text); err != nil {
		h.logger.Warn("Failed to edit reminder message", zap.Error(err))
		if err := c.Send(text); err != nil {
			h.logger.Warn("Failed to send review feedback", zap.Error(err))
		}
	}
	return c.Respond()
}

// handleStopReview removes the entry behind a reminder's delete button
func (h *Handler) handleStopReview(c tele.Context, data string) error {
	userID := c.Sender().ID

	id, err := strconv.ParseInt(strings.TrimPrefix(data, "stop_"), 10, 64)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Broken button."})
	}

	if err := h.wordService.StopReviewing(context.Background(), id); err != nil {
		h.logger.Error("Failed to stop reviewing word",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("word_id", id),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Something went wrong, try again."})
	}

	if err := c.Edit("🗑 Removed from your review list."); err != nil {
		h.logger.Warn("Failed to edit reminder message", zap.Error(err))
	}
	return c.Respond()
}
