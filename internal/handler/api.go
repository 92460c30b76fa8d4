package handler

import (
	"net/http"
	"time"

	"subota/internal/domain"
)

// CountdownResponse is the body of GET /api/countdown
type CountdownResponse struct {
	DaysUntilSaturday int    `json:"days_until_saturday"`
	CurrentDate       string `json:"current_date"`
	CurrentDay        string `json:"current_day"`
	NextSaturday      string `json:"next_saturday"`
	DayForm           string `json:"day_form"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func newCountdownResponse(c domain.Countdown) CountdownResponse {
	return CountdownResponse{
		DaysUntilSaturday: c.DaysUntilSaturday,
		CurrentDate:       domain.ISODate(c.CurrentTime),
		CurrentDay:        c.CurrentDayName,
		NextSaturday:      domain.ISODate(c.NextSaturday),
		DayForm:           c.DayForm(),
	}
}

// handleCountdown handles GET /api/countdown
func (h *Handler) handleCountdown(w http.ResponseWriter, r *http.Request) {
	countdown := h.countdownService.Calculate()
	writeJSON(w, h.logger, http.StatusOK, newCountdownResponse(countdown))
}

// handleHealth handles GET /health
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: h.clock.Now().Format(time.RFC3339Nano),
	})
}
