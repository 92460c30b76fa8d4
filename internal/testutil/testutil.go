package testutil

import (
	"time"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// Reference dates used across tests
var (
	// Monday 2024-01-01 10:15 local time
	Monday = time.Date(2024, 1, 1, 10, 15, 0, 0, time.Local)
	// Saturday 2024-01-06 18:45 local time
	Saturday = time.Date(2024, 1, 6, 18, 45, 0, 0, time.Local)
)

// NewTestDate creates a local test date with the given time of day
func NewTestDate(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.Local)
}
