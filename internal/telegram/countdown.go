package telegram

import (
	"fmt"
	"strings"

	"subota/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleCountdown handles /start and /countdown commands
func (h *Handler) handleCountdown(c tele.Context) error {
	countdown := h.countdownService.Calculate()
	return c.Send(FormatCountdown(countdown), refreshMarkup())
}

// handleRefresh recomputes the countdown in place
func (h *Handler) handleRefresh(c tele.Context) error {
	countdown := h.countdownService.Calculate()

	if err := c.Edit(FormatCountdown(countdown), refreshMarkup()); err != nil {
		// Telegram rejects edits that do not change the text
		if strings.Contains(err.Error(), "message is not modified") {
			return c.Respond()
		}
		h.logger.Warn("Failed to edit message, sending new", zap.Error(err))
		if ackErr := c.Respond(); ackErr != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
		}
		return c.Send(FormatCountdown(countdown), refreshMarkup())
	}
	return c.Respond()
}

// FormatCountdown renders a countdown as a chat message
func FormatCountdown(c domain.Countdown) string {
	return fmt.Sprintf(
		"📅 До суботи: %d %s\n\n🗓️ Сьогодні: %s, %s\n🎉 Наступна субота: %s",
		c.DaysUntilSaturday,
		c.DayForm(),
		c.CurrentDayName,
		domain.DisplayDate(c.CurrentTime),
		domain.DisplayDate(c.NextSaturday),
	)
}
