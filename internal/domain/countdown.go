package domain

import "time"

// Countdown is the result of a single countdown computation
type Countdown struct {
	DaysUntilSaturday int
	CurrentTime       time.Time
	NextSaturday      time.Time
	CurrentDayName    string
}

// DayForm returns the word form matching DaysUntilSaturday
func (c Countdown) DayForm() string {
	return DayForm(c.DaysUntilSaturday)
}
