package domain

import (
	"fmt"
	"time"
)

// WeekdayIndex is a day of week counted from Monday (0) to Sunday (6)
type WeekdayIndex int

const (
	Monday WeekdayIndex = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// dayNames maps WeekdayIndex to its Ukrainian name
var dayNames = [7]string{
	"понеділок",
	"вівторок",
	"середа",
	"четвер",
	"п'ятниця",
	"субота",
	"неділя",
}

// WeekdayIndexOf converts time.Weekday (Sunday = 0) to a Monday-origin index
func WeekdayIndexOf(wd time.Weekday) WeekdayIndex {
	return WeekdayIndex((int(wd) + 6) % 7)
}

// Valid reports whether the index is within Monday..Sunday
func (w WeekdayIndex) Valid() bool {
	return w >= Monday && w <= Sunday
}

// DayName returns the Ukrainian name of the day.
// An index outside [0,6] is a programming error and panics.
func DayName(w WeekdayIndex) string {
	if !w.Valid() {
		panic(fmt.Sprintf("domain: weekday index %d out of range", int(w)))
	}
	return dayNames[w]
}

// DisplayDate returns date in DD.MM.YYYY format
func DisplayDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// ISODate returns date in YYYY-MM-DD format
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}
