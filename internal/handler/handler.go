package handler

import (
	"github.com/ReshadVerse/english-bot/internal/repository"
	"github.com/ReshadVerse/english-bot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot          *tele.Bot
	userRepo     repository.UserRepository
	wordService  *service.WordService
	tutorService *service.TutorService
	logger       *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	userRepo repository.UserRepository,
	wordService *service.WordService,
	tutorService *service.TutorService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:          bot,
		userRepo:     userRepo,
		wordService:  wordService,
		tutorService: tutorService,
		logger:       logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/mywords", h.handleMyWords)
	h.bot.Handle("/delete", h.handleDelete)

	// Messages
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnVoice, h.handleVoice)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnListen, h.handleListen)
	h.bot.Handle(&btnSave, h.handleSave)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Inline keyboard buttons
var (
	btnListen = tele.Btn{
		Unique: "tts_last",
		Text:   "🔊 Listen",
	}
	btnSave = tele.Btn{
		Unique: "save_last",
		Text:   "💾 Save word",
	}
)

// replyMarkup returns the keyboard attached to every tutor reply
func replyMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnListen, btnSave),
	)
	return menu
}
