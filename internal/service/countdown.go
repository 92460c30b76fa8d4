package service

import (
	"time"

	"subota/internal/clock"
	"subota/internal/domain"

	"go.uber.org/zap"
)

// CountdownService computes the countdown to the next Saturday
type CountdownService struct {
	clock  clock.Clock
	logger *zap.Logger
}

// NewCountdownService creates a new countdown service
func NewCountdownService(c clock.Clock, logger *zap.Logger) *CountdownService {
	return &CountdownService{
		clock:  c,
		logger: logger,
	}
}

// Calculate reads the clock once and computes the countdown for that moment
func (s *CountdownService) Calculate() domain.Countdown {
	return s.CalculateAt(s.clock.Now())
}

// CalculateAt computes the countdown for the given moment.
// When now is already a Saturday the next one is 7 days away, never 0.
func (s *CountdownService) CalculateAt(now time.Time) domain.Countdown {
	weekday := domain.WeekdayIndexOf(now.Weekday())

	days := DaysUntilSaturday(weekday)

	countdown := domain.Countdown{
		DaysUntilSaturday: days,
		CurrentTime:       now,
		NextSaturday:      now.AddDate(0, 0, days),
		CurrentDayName:    domain.DayName(weekday),
	}

	s.logger.Debug("Countdown calculated",
		zap.Int("days_until_saturday", countdown.DaysUntilSaturday),
		zap.String("current_day", countdown.CurrentDayName),
		zap.Time("next_saturday", countdown.NextSaturday),
	)

	return countdown
}

// DaysUntilSaturday returns the number of days from weekday to the next Saturday
func DaysUntilSaturday(weekday domain.WeekdayIndex) int {
	if weekday == domain.Saturday {
		return 7
	}
	return ((int(domain.Saturday)-int(weekday))%7 + 7) % 7
}
