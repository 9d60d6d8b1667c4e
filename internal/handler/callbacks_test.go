package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain data unchanged", "remember_42", "remember_42"},
		{"leading control byte stripped", "\fremember_42", "remember_42"},
		{"surrounding whitespace trimmed", "  stop_7\n", "stop_7"},
		{"embedded non-printables removed", "forgot_\x001\x013", "forgot_13"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanCallbackData(tt.input))
		})
	}
}

func TestReminderMarkup(t *testing.T) {
	markup := reminderMarkup(42)

	assert.Len(t, markup.InlineKeyboard, 2)
	assert.Len(t, markup.InlineKeyboard[0], 2)
	assert.Len(t, markup.InlineKeyboard[1], 1)

	// every action is correlated to the entry id
	assert.Equal(t, "remember_42", markup.InlineKeyboard[0][0].Unique)
	assert.Equal(t, "forgot_42", markup.InlineKeyboard[0][1].Unique)
	assert.Equal(t, "stop_42", markup.InlineKeyboard[1][0].Unique)
}
