package telegram

import (
	"subota/internal/middleware"
	"subota/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler answers countdown commands in Telegram chats
type Handler struct {
	bot              *tele.Bot
	countdownService *service.CountdownService
	logger           *zap.Logger
}

// NewHandler creates a new telegram handler instance
func NewHandler(
	bot *tele.Bot,
	countdownService *service.CountdownService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:              bot,
		countdownService: countdownService,
		logger:           logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Use(middleware.BotLogger(h.logger))

	h.bot.Handle("/start", h.handleCountdown)
	h.bot.Handle("/countdown", h.handleCountdown)
	h.bot.Handle(&btnRefresh, h.handleRefresh)
}

// Inline keyboard buttons
var btnRefresh = tele.Btn{
	Unique: "refresh",
	Text:   "🔄 Оновити",
}

func refreshMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnRefresh))
	return markup
}
