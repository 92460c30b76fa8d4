package handler

import (
	"bytes"
	"net/http"

	"subota/internal/domain"

	"go.uber.org/zap"
)

type pageData struct {
	Days           int
	DayForm        string
	CurrentDayName string
	CurrentDate    string
	NextSaturday   string
}

func newPageData(c domain.Countdown) pageData {
	return pageData{
		Days:           c.DaysUntilSaturday,
		DayForm:        c.DayForm(),
		CurrentDayName: c.CurrentDayName,
		CurrentDate:    domain.DisplayDate(c.CurrentTime),
		NextSaturday:   domain.DisplayDate(c.NextSaturday),
	}
}

// handleIndex renders the countdown page
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	countdown := h.countdownService.Calculate()

	// Render fully before writing headers
	var buf bytes.Buffer
	if err := h.page.Execute(&buf, newPageData(countdown)); err != nil {
		h.logger.Error("Failed to render page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set(headerContentType, mimeHTML)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("Failed to write page", zap.Error(err))
	}
}
