package clock

import "time"

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// System reads the host local clock
type System struct{}

// NewSystem creates a clock backed by time.Now
func NewSystem() System {
	return System{}
}

// Now returns the current local time
func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant
type Fixed struct {
	t time.Time
}

// NewFixed creates a clock stuck at t
func NewFixed(t time.Time) Fixed {
	return Fixed{t: t}
}

// Now returns the fixed instant
func (f Fixed) Now() time.Time {
	return f.t
}
