// Package timeutil abstracts the wall clock so that expiry logic can be
// tested deterministically. The Amadeus OAuth token cache and the Secrets
// Manager credential cache both decide freshness against a Clock rather
// than calling time.Now directly.
package timeutil

import (
	"time"
)

// Clock yields the current time. Production code uses RealClock;
// tests substitute a MockClock to step through token and secret expiry.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

// NewRealClock returns a Clock backed by time.Now.
func NewRealClock() *RealClock {
	return &RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a manually advanced clock for tests. It never moves on
// its own; call the Advance helpers to cross an expiry boundary.
type MockClock struct {
	current time.Time
}

// NewMockClock starts a mock clock at the given instant.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

// NewMockClockFromString starts a mock clock at the given RFC3339
// instant. Panics on a malformed string, so it is test-only.
func NewMockClockFromString(s string) *MockClock {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic("timeutil: invalid RFC3339 time: " + err.Error())
	}
	return &MockClock{current: t}
}

// Now returns the instant the mock clock currently points at.
func (m *MockClock) Now() time.Time {
	return m.current
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}

// AdvanceMinutes moves the clock forward by whole minutes. Convenient
// for stepping past the token refresh margin.
func (m *MockClock) AdvanceMinutes(minutes int) {
	m.Advance(time.Duration(minutes) * time.Minute)
}

// AdvanceHours moves the clock forward by whole hours. Convenient for
// expiring a cached secret whose TTL is measured in hours.
func (m *MockClock) AdvanceHours(hours int) {
	m.Advance(time.Duration(hours) * time.Hour)
}

var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
