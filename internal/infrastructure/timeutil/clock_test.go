package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	clock := NewRealClock()

	before := time.Now()
	now := clock.Now()
	after := time.Now()

	assert.False(t, now.Before(before), "clock time should not be before start")
	assert.False(t, now.After(after), "clock time should not be after end")
}

func TestMockClock_Now(t *testing.T) {
	issuedAt := time.Date(2025, 11, 15, 10, 30, 0, 0, time.UTC)
	clock := NewMockClock(issuedAt)

	// Stays put until advanced.
	assert.Equal(t, issuedAt, clock.Now())
	assert.Equal(t, issuedAt, clock.Now())
}

func TestMockClock_Advance(t *testing.T) {
	clock := NewMockClockFromString("2025-11-15T10:00:00Z")

	clock.Advance(90 * time.Second)

	assert.Equal(t, time.Date(2025, 11, 15, 10, 1, 30, 0, time.UTC), clock.Now())
}

func TestMockClock_TokenExpiryWindow(t *testing.T) {
	// Amadeus access tokens live for 30 minutes; the client refreshes
	// five minutes early. Stepping 24 minutes keeps the token fresh,
	// one more minute puts it inside the refresh margin.
	issuedAt := time.Date(2025, 11, 15, 10, 0, 0, 0, time.UTC)
	expiresAt := issuedAt.Add(30*time.Minute - 5*time.Minute)
	clock := NewMockClock(issuedAt)

	clock.AdvanceMinutes(24)
	assert.True(t, clock.Now().Before(expiresAt))

	clock.AdvanceMinutes(1)
	assert.False(t, clock.Now().Before(expiresAt))
}

func TestMockClock_SecretTTL(t *testing.T) {
	// The secrets cache holds credentials for an hour.
	fetchedAt := time.Date(2025, 11, 15, 10, 0, 0, 0, time.UTC)
	staleAt := fetchedAt.Add(time.Hour)
	clock := NewMockClock(fetchedAt)

	assert.True(t, clock.Now().Before(staleAt))

	clock.AdvanceHours(1)
	assert.False(t, clock.Now().Before(staleAt))
}

func TestMockClock_NegativeAdvance(t *testing.T) {
	clock := NewMockClockFromString("2025-11-15T10:00:00Z")

	clock.Advance(-2 * time.Hour)

	assert.Equal(t, time.Date(2025, 11, 15, 8, 0, 0, 0, time.UTC), clock.Now())
}

func TestNewMockClockFromString(t *testing.T) {
	clock := NewMockClockFromString("2025-11-15T10:30:00Z")

	assert.Equal(t, time.Date(2025, 11, 15, 10, 30, 0, 0, time.UTC), clock.Now())
}

func TestNewMockClockFromString_Panic(t *testing.T) {
	assert.Panics(t, func() {
		NewMockClockFromString("15 Nov 2025")
	})
}
