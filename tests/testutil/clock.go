package testutil

import (
	"time"

	"github.com/light-bringer/backoffice-service/internal/pkg/clock"
)

// ReferenceTime is the instant test clocks start at.
var ReferenceTime = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

// NewFixedClock creates a mock clock fixed at the given time.
func NewFixedClock(t time.Time) clock.Clock {
	return clock.NewMockClock(t)
}

// NewMockClock creates a mock clock that can be controlled in tests.
func NewMockClock() *clock.MockClock {
	return clock.NewMockClock(ReferenceTime)
}
