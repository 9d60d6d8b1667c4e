package handler

import (
	"fmt"

	"github.com/ReshadVerse/english-bot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// SendReminder implements dispatcher.ReminderSender. It prompts the entry's
// owner with the word and three actions correlated to the entry id.
func (h *Handler) SendReminder(entry domain.WordEntry) error {
	text := fmt.Sprintf("🔔 Time to review:\n\n📝 %s\n\nDo you remember what it means?", entry.Word)

	_, err := h.bot.Send(&tele.User{ID: entry.UserID}, text, reminderMarkup(entry.ID))
	if err != nil {
		return fmt.Errorf("send reminder to %d: %w", entry.UserID, err)
	}
	return nil
}

// reminderMarkup builds the review keyboard for one entry
func reminderMarkup(id int64) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data("✅ Remember", fmt.Sprintf("remember_%d", id)),
			markup.Data("❌ Forgot", fmt.Sprintf("forgot_%d", id)),
		),
		markup.Row(
			markup.Data("🗑 Stop reviewing", fmt.Sprintf("stop_%d", id)),
		),
	)
	return markup
}
