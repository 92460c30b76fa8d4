package testutil

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// MockClock is a mock for clock.Clock
type MockClock struct {
	mock.Mock
}

func (m *MockClock) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}
