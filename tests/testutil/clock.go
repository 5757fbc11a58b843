package testutil

import (
	"time"

	"github.com/light-bringer/pawfect-catalog/internal/pkg/clock"
)

// SeedTime is the fixed start of every test clock.
var SeedTime = time.Date(2024, 11, 29, 8, 0, 0, 0, time.UTC)

// NewSteppingClock returns a clock starting at SeedTime that moves one
// second per reading, so "newest first" orderings are deterministic.
func NewSteppingClock() *clock.MockClock {
	return clock.NewSteppingClock(SeedTime, time.Second)
}
